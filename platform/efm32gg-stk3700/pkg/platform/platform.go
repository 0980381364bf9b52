// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The STK3700 starter kit carries an EFM32GG990 (Giant Gecko, series 0)
// with a single WDOG block.
package platform

import (
	"github.com/gecko-go/geckofw/pkg/efm32"
)

type Platform struct{}

func (p *Platform) Name() string {
	return "efm32gg-stk3700"
}

func (p *Platform) WdogBase() uintptr {
	return efm32.EFM32GG_WDOG_BASE
}

func (p *Platform) CmuBase() uintptr {
	return efm32.EFM32GG_CMU_BASE
}

func (p *Platform) WdogIrq() int {
	// WDOG sits on IRQ 2 in the Giant Gecko NVIC.
	return 2
}

func (p *Platform) DisableWdtAtBoot() bool {
	return true
}
