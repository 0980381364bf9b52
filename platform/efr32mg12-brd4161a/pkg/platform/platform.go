// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The BRD4161A radio board carries an EFR32MG12 (Mighty Gecko, series 1)
// with two WDOG blocks. Only WDOG0 is managed here, WDOG1 is left to the
// radio stack.
package platform

import (
	"github.com/gecko-go/geckofw/pkg/efm32"
)

type Platform struct{}

func (p *Platform) Name() string {
	return "efr32mg12-brd4161a"
}

func (p *Platform) WdogBase() uintptr {
	return efm32.EFR32MG12_WDOG0_BASE
}

func (p *Platform) CmuBase() uintptr {
	return efm32.EFR32MG12_CMU_BASE
}

func (p *Platform) WdogIrq() int {
	// WDOG0 interrupt line in the Mighty Gecko NVIC.
	return 2
}

func (p *Platform) DisableWdtAtBoot() bool {
	// The series 1 bootloader arms WDOG0 before handing over.
	return true
}
