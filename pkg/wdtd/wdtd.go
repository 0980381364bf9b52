// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wdtd arms the hardware watchdog and keeps it fed. As long as
// the daemon is scheduled the system stays up; if the system wedges hard
// enough that feeding stops, the watchdog does its thing.
package wdtd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gecko-go/geckofw/config"
	"github.com/gecko-go/geckofw/pkg/board"
	"github.com/gecko-go/geckofw/pkg/efm32"
	"github.com/gecko-go/geckofw/pkg/irq"
	"github.com/gecko-go/geckofw/pkg/logger"
	"github.com/gecko-go/geckofw/pkg/metric"
	"github.com/gecko-go/geckofw/pkg/wdt"
	"github.com/jpillora/backoff"
	"golang.org/x/sync/errgroup"
)

var log = logger.LogContainer.GetSimpleLogger()

// Bringup prepares the watchdog on b: applies the boot-time disable
// policy and makes sure the ULFRCO the counter runs from is up.
func Bringup(soc *efm32.Soc, b board.Board, cfg *config.Config) *wdt.Driver {
	drv := wdt.New(soc.Wdog(b.WdogBase()))
	if cfg.Watchdog.DisableAtBoot || b.DisableWdtAtBoot() {
		drv.Disable()
	}
	soc.Cmu(b.CmuBase()).EnableUlfrco()
	log.Infof("Board %s watchdog initialized", b.Name())
	return drv
}

// Daemon owns one armed watchdog.
type Daemon struct {
	cfg     *config.Config
	drv     *wdt.Driver
	irqName string
}

func New(cfg *config.Config, drv *wdt.Driver, irqName string) *Daemon {
	return &Daemon{
		cfg:     cfg,
		drv:     drv,
		irqName: irqName,
	}
}

// Run installs the configured timeout, arms the watchdog and feeds it
// until ctx is done. Once this returns with DisarmOnExit unset, the
// watchdog is still running and somebody else had better feed it.
func (d *Daemon) Run(ctx context.Context) error {
	flag, err := d.cfg.Watchdog.Flag()
	if err != nil {
		return err
	}
	tc := wdt.TimeoutConfig{
		WindowMax: d.cfg.Watchdog.WindowMaxCycles,
		WindowMin: d.cfg.Watchdog.WindowMinCycles,
		Flags:     flag,
	}
	if d.cfg.Watchdog.LogEarlyWarning {
		tc.Callback = func(channel int) {
			log.Warnf("Watchdog early warning on channel %d, reset imminent unless fed", channel)
		}
	}

	if err := d.drv.InstallTimeout(tc); err != nil {
		return fmt.Errorf("install timeout failed: %w", err)
	}
	if err := d.drv.Setup(d.cfg.Watchdog.Options()); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	log.Infof("Watchdog armed, feeding every %v", d.cfg.Feed.Interval())

	g, gctx := errgroup.WithContext(ctx)
	if tc.Callback != nil {
		line := irq.NewLine(d.irqName, d.drv, d.cfg.Feed.IrqPoll(), d.drv.ServiceInterrupt)
		g.Go(func() error { return line.Run(gctx) })
	}
	g.Go(func() error { return d.feed(gctx) })
	if d.cfg.MetricsAddr != "" {
		g.Go(func() error { return d.serveMetrics(gctx) })
	}

	err = g.Wait()
	if d.cfg.Watchdog.DisarmOnExit {
		d.drv.Disable()
		log.Infof("Watchdog disarmed")
	}
	return err
}

func (d *Daemon) feed(ctx context.Context) error {
	t := time.NewTicker(d.cfg.Feed.Interval())
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := d.drv.Feed(0); err != nil {
				return fmt.Errorf("feed failed: %w", err)
			}
		}
	}
}

func (d *Daemon) serveMetrics(ctx context.Context) error {
	// Early in boot the network stack may not be up yet, so keep
	// retrying the listen. The watchdog is already being fed by then.
	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    10 * time.Second,
		Factor: 2,
		Jitter: true,
	}
	var l net.Listener
	for {
		var err error
		l, err = net.Listen("tcp", d.cfg.MetricsAddr)
		if err == nil {
			break
		}
		dur := b.Duration()
		log.Warnf("Could not listen on %s: %v, retrying in %v", d.cfg.MetricsAddr, err, dur)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(dur):
		}
	}

	mux := http.NewServeMux()
	metric.StartMetrics(mux)
	srv := &http.Server{Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
