// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package board holds the registry of supported boards. A board entry
// supplies the same information the devicetree would in an RTOS build:
// peripheral base addresses, the interrupt line and boot-time policy.
// Boards register themselves from the platform packages.
package board

import "sort"

type Board interface {
	Name() string
	WdogBase() uintptr
	CmuBase() uintptr
	// WdogIrq is the NVIC line of the watchdog block. Host-side
	// dispatch does not vector through it, but tooling reports it.
	WdogIrq() int
	// DisableWdtAtBoot reports whether bring-up should stop a watchdog
	// the bootloader may have left running.
	DisableWdtAtBoot() bool
}

var boards = map[string]Board{}

func Register(b Board) {
	boards[b.Name()] = b
}

func Lookup(name string) (Board, bool) {
	b, ok := boards[name]
	return b, ok
}

func Names() []string {
	names := make([]string, 0, len(boards))
	for n := range boards {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
