// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package efm32

import (
	"fmt"
	"testing"
)

type op struct {
	write   bool
	address uintptr
	data    uint32
}

type fakeMem struct {
	t   *testing.T
	ops []op
}

func fakeMemory(t *testing.T) *fakeMem {
	return &fakeMem{t: t}
}

func opstr(o *op) string {
	k := "read"
	if o.write {
		k = "write"
	}
	return fmt.Sprintf("{%s @ %08x = %08x}", k, o.address, o.data)
}

func (m *fakeMem) next() op {
	if len(m.ops) == 0 {
		m.t.Fatalf("Unexpected register access, no more operations expected")
	}
	o := m.ops[0]
	m.ops = m.ops[1:]
	return o
}

func (m *fakeMem) MustRead32(a uintptr) uint32 {
	o := m.next()
	if o.write || o.address != a {
		m.t.Errorf("Expected %s, got read on %08x", opstr(&o), a)
	}
	return o.data
}

func (m *fakeMem) MustWrite32(a uintptr, d uint32) {
	o := m.next()
	if !o.write || o.address != a || o.data != d {
		m.t.Errorf("Expected %s, got write of %08x on %08x", opstr(&o), d, a)
	}
}

func (m *fakeMem) ExpectRead32(a uintptr, d uint32) {
	m.ops = append(m.ops, op{false, a, d})
}

func (m *fakeMem) ExpectWrite32(a uintptr, d uint32) {
	m.ops = append(m.ops, op{true, a, d})
}

func (m *fakeMem) Close() {
	if len(m.ops) != 0 {
		m.t.Errorf("%d expected operations never happened, next %s", len(m.ops), opstr(&m.ops[0]))
	}
}
