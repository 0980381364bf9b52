// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package efm32

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

type hostMem struct {
	mf *os.File
}

func openHostMemory() *hostMem {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0600)
	if err != nil {
		panic(err)
	}
	return &hostMem{f}
}

// Mapping and unmapping per access is slow, but register traffic here is
// a handful of words at configuration time plus one write per feed, so
// it does not matter.
func (m *hostMem) MustRead32(address uintptr) uint32 {
	ps := uintptr(unix.Getpagesize())
	page := address & ^(ps - 1)
	offset := address - page
	mem, err := unix.Mmap(int(m.mf.Fd()), int64(page), int(ps), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		panic(err)
	}
	v := *(*uint32)(unsafe.Pointer(&mem[offset]))
	if err := unix.Munmap(mem); err != nil {
		panic(err)
	}
	return v
}

func (m *hostMem) MustWrite32(address uintptr, data uint32) {
	ps := uintptr(unix.Getpagesize())
	page := address & ^(ps - 1)
	offset := address - page
	mem, err := unix.Mmap(int(m.mf.Fd()), int64(page), int(ps), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		panic(err)
	}
	*(*uint32)(unsafe.Pointer(&mem[offset])) = data
	if err := unix.Munmap(mem); err != nil {
		panic(err)
	}
}

func (m *hostMem) Close() {
	m.mf.Close()
}
