// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package efm32

const (
	EFM32GG_CMU_BASE   uintptr = 0x400c8000
	EFR32MG12_CMU_BASE uintptr = 0x400e4000

	CMU_OSCENCMD uintptr = 0x060
	CMU_STATUS   uintptr = 0x074

	// The ULFRCO is the 1 kHz always-available oscillator the watchdog
	// counts on.
	CMU_OSCENCMD_ULFRCOEN uint32 = 1 << 12
	CMU_STATUS_ULFRCORDY  uint32 = 1 << 12
)

// Cmu is the clock management unit. Only the oscillator enable path is
// modelled, that is all the watchdog needs.
type Cmu struct {
	mem  memProvider
	base uintptr
}

func (s *Soc) Cmu(base uintptr) *Cmu {
	return &Cmu{s.mem, base}
}

// EnableUlfrco turns the 1 kHz oscillator on and waits for it to become
// ready. Must happen before the watchdog is started.
func (c *Cmu) EnableUlfrco() {
	c.mem.MustWrite32(c.base+CMU_OSCENCMD, CMU_OSCENCMD_ULFRCOEN)
	for c.mem.MustRead32(c.base+CMU_STATUS)&CMU_STATUS_ULFRCORDY == 0 {
	}
}
