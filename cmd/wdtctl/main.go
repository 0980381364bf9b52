// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/gecko-go/geckofw/pkg/board"
	"github.com/gecko-go/geckofw/pkg/efm32"
	"github.com/gecko-go/geckofw/pkg/logger"
	"github.com/gecko-go/geckofw/pkg/wdt"
	_ "github.com/gecko-go/geckofw/platform"
)

var (
	boardName = flag.String("board", "efr32mg12-brd4161a", "Board to operate on.")
	disable   = flag.Bool("disable", false, "Stop the watchdog.")
	feed      = flag.Bool("feed", false, "Feed the watchdog once.")
	status    = flag.Bool("status", false, "Dump the watchdog registers.")
)

var log = logger.LogContainer.GetSimpleLogger()

func main() {
	flag.Parse()

	b, ok := board.Lookup(*boardName)
	if !ok {
		log.Fatalf("Unknown board %q, supported: %v", *boardName, board.Names())
	}

	soc := efm32.Open()
	defer soc.Close()
	drv := wdt.New(soc.Wdog(b.WdogBase()))

	if *disable {
		drv.Disable()
		fmt.Printf("Watchdog disabled\n")
	}
	if *feed {
		if err := drv.Feed(0); err != nil {
			log.Fatalf("Feed failed: %v", err)
		}
		fmt.Printf("Watchdog fed\n")
	}
	if *status {
		base := b.WdogBase()
		fmt.Printf("WDOG_CTRL: %08x\n", soc.Mem().MustRead32(base+efm32.WDOG_CTRL))
		fmt.Printf("WDOG_IF:   %08x\n", soc.Mem().MustRead32(base+efm32.WDOG_IF))
		fmt.Printf("WDOG_IEN:  %08x\n", soc.Mem().MustRead32(base+efm32.WDOG_IEN))
		fmt.Printf("IRQ line:  %d\n", b.WdogIrq())
	}
}
