// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package efm32

import (
	"github.com/gecko-go/geckofw/pkg/wdt"
)

const (
	// WDOG block base addresses. Which ones exist depends on the chip,
	// the per-board platform packages pick the right one.
	EFM32GG_WDOG_BASE    uintptr = 0x40088000
	EFR32MG12_WDOG0_BASE uintptr = 0x40052000
	EFR32MG12_WDOG1_BASE uintptr = 0x40053000

	// Register offsets within a WDOG block.
	WDOG_CTRL     uintptr = 0x000
	WDOG_CMD      uintptr = 0x004
	WDOG_SYNCBUSY uintptr = 0x008
	WDOG_IF       uintptr = 0x018
	WDOG_IFS      uintptr = 0x01c
	WDOG_IFC      uintptr = 0x020
	WDOG_IEN      uintptr = 0x024

	WDOG_CTRL_EN         uint32 = 1 << 0
	WDOG_CTRL_DEBUGRUN   uint32 = 1 << 1
	WDOG_CTRL_EM2RUN     uint32 = 1 << 2
	WDOG_CTRL_EM3RUN     uint32 = 1 << 3
	WDOG_CTRL_WDOGRSTDIS uint32 = 1 << 8

	// CLKSEL value 0 selects the ULFRCO, which is what everything in
	// this library assumes (1 cycle ~= 1 ms).
	WDOG_CTRL_PERSEL_SHIFT  = 16
	WDOG_CTRL_WARNSEL_SHIFT = 24
	WDOG_CTRL_WINSEL_SHIFT  = 28

	WDOG_CMD_CLEAR uint32 = 1 << 0

	// Interrupt flags, same bit layout in IF, IFS, IFC and IEN. TOUT
	// and WARN intentionally share values with wdt.IntTimeout and
	// wdt.IntWarn so the flags pass through unmodified.
	WDOG_IF_TOUT uint32 = 1 << 0
	WDOG_IF_WARN uint32 = 1 << 1
	WDOG_IF_WIN  uint32 = 1 << 2
)

// Wdog is one watchdog block. It implements wdt.Hardware.
type Wdog struct {
	mem  memProvider
	base uintptr
}

func (s *Soc) Wdog(base uintptr) *Wdog {
	return &Wdog{s.mem, base}
}

// Writes to CTRL and CMD are synchronized into the 1 kHz clock domain,
// so consecutive configuration writes have to wait for SYNCBUSY.
func (w *Wdog) sync() {
	for w.mem.MustRead32(w.base+WDOG_SYNCBUSY) != 0 {
	}
}

// Init programs the full configuration and starts the counter.
func (w *Wdog) Init(cfg wdt.HardwareConfig) {
	ctrl := WDOG_CTRL_EN
	if cfg.DebugRun {
		ctrl |= WDOG_CTRL_DEBUGRUN
	}
	if cfg.Em2Run {
		ctrl |= WDOG_CTRL_EM2RUN
	}
	if cfg.Em3Run {
		ctrl |= WDOG_CTRL_EM3RUN
	}
	if cfg.ResetDisable {
		ctrl |= WDOG_CTRL_WDOGRSTDIS
	}
	ctrl |= uint32(cfg.PeriodSel) << WDOG_CTRL_PERSEL_SHIFT
	ctrl |= uint32(cfg.WarnSel) << WDOG_CTRL_WARNSEL_SHIFT
	ctrl |= uint32(cfg.WindowSel) << WDOG_CTRL_WINSEL_SHIFT
	w.mem.MustWrite32(w.base+WDOG_CTRL, ctrl)
	w.sync()
}

func (w *Wdog) Enable(on bool) {
	ctrl := w.mem.MustRead32(w.base + WDOG_CTRL)
	if on {
		ctrl |= WDOG_CTRL_EN
	} else {
		ctrl &= ^WDOG_CTRL_EN
	}
	w.mem.MustWrite32(w.base+WDOG_CTRL, ctrl)
	w.sync()
}

func (w *Wdog) Feed() {
	w.mem.MustWrite32(w.base+WDOG_CMD, WDOG_CMD_CLEAR)
}

func (w *Wdog) IntGet() uint32 {
	return w.mem.MustRead32(w.base + WDOG_IF)
}

func (w *Wdog) IntClear(flags uint32) {
	w.mem.MustWrite32(w.base+WDOG_IFC, flags)
}

func (w *Wdog) IntEnable(flags uint32) {
	ien := w.mem.MustRead32(w.base + WDOG_IEN)
	w.mem.MustWrite32(w.base+WDOG_IEN, ien|flags)
}

func (w *Wdog) IntDisable(flags uint32) {
	ien := w.mem.MustRead32(w.base + WDOG_IEN)
	w.mem.MustWrite32(w.base+WDOG_IEN, ien & ^flags)
}
