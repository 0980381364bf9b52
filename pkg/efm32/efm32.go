// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Library for accessing peripheral blocks on Silicon Labs Gecko series
// MCUs (EFM32/EFR32) over memory mapped registers.
//
// The library does not save original register contents, so any
// modification competes with whatever firmware is otherwise managing the
// block. In particular a mis-programmed watchdog will reset the chip, so
// make sure only one party is configuring it.
//
// Call efm32.Open() and efm32.Close() as the first and last thing before
// and after you want to run any library commands. Off-target callers
// (tests, tooling) should use OpenWithMemory with their own register
// backend instead.

package efm32

type Soc struct {
	mem memProvider
}

func Open() *Soc {
	return &Soc{openMem()}
}

func OpenWithMemory(mem memProvider) *Soc {
	return &Soc{mem}
}

func (s *Soc) Close() {
	s.mem.Close()
}

func (s *Soc) Mem() memProvider {
	return s.mem
}
