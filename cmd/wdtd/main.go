// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gecko-go/geckofw/config"
	"github.com/gecko-go/geckofw/pkg/board"
	"github.com/gecko-go/geckofw/pkg/efm32"
	"github.com/gecko-go/geckofw/pkg/logger"
	"github.com/gecko-go/geckofw/pkg/wdtd"
	_ "github.com/gecko-go/geckofw/platform"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

var (
	configPath = flag.String("config", "/etc/geckofw.yaml", "Path to the daemon configuration.")
	boardName  = flag.String("board", "", "Board to drive, overrides the config file.")
)

var log = logger.LogContainer.GetSimpleLogger()

func main() {
	flag.Parse()

	cfg, err := config.Load(afero.NewOsFs(), *configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	name := cfg.Board
	if *boardName != "" {
		name = *boardName
	}
	b, ok := board.Lookup(name)
	if !ok {
		log.Fatalf("Unknown board %q, supported: %v", name, board.Names())
	}

	soc := efm32.Open()
	defer soc.Close()

	drv := wdtd.Bringup(soc, b, cfg)
	d := wdtd.New(cfg, drv, fmt.Sprintf("wdog-irq%d", b.WdogIrq()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()
	if err := d.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
