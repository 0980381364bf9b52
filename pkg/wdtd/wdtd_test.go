// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wdtd

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gecko-go/geckofw/config"
	"github.com/gecko-go/geckofw/pkg/wdt"
)

type fakeHardware struct {
	mu       sync.Mutex
	feeds    int
	enabled  bool
	initDone bool
	intFlags uint32
}

func (f *fakeHardware) Init(cfg wdt.HardwareConfig) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initDone = true
	f.enabled = true
}

func (f *fakeHardware) Enable(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = on
}

func (f *fakeHardware) Feed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feeds++
}

func (f *fakeHardware) IntGet() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.intFlags
}

func (f *fakeHardware) IntClear(flags uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intFlags &= ^flags
}

func (f *fakeHardware) IntEnable(flags uint32)  {}
func (f *fakeHardware) IntDisable(flags uint32) {}

func (f *fakeHardware) snapshot() fakeHardware {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fakeHardware{feeds: f.feeds, enabled: f.enabled, initDone: f.initDone, intFlags: f.intFlags}
}

func testConfig() *config.Config {
	cfg := *config.DefaultConfig
	cfg.Watchdog.LogEarlyWarning = true
	cfg.Watchdog.DisarmOnExit = true
	cfg.Feed.IntervalMs = 1
	cfg.Feed.IrqPollMs = 1
	cfg.MetricsAddr = "" // no listener in tests
	return &cfg
}

func TestDaemonFeedsAndDisarms(t *testing.T) {
	f := &fakeHardware{}
	d := New(testConfig(), wdt.New(f), "wdog0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for f.snapshot().feeds < 3 {
		select {
		case <-deadline:
			t.Fatal("daemon never fed the watchdog")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if s := f.snapshot(); s.enabled {
		t.Error("watchdog still enabled after disarm-on-exit shutdown")
	}
}

func TestDaemonServicesEarlyWarning(t *testing.T) {
	f := &fakeHardware{}
	d := New(testConfig(), wdt.New(f), "wdog0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	// Wait for the daemon to arm the hardware, then raise the warning
	// flag and watch the dispatcher clear it.
	deadline := time.After(2 * time.Second)
	for !f.snapshot().initDone {
		select {
		case <-deadline:
			t.Fatal("daemon never armed the watchdog")
		case <-time.After(time.Millisecond):
		}
	}

	f.mu.Lock()
	f.intFlags = wdt.IntWarn
	f.mu.Unlock()

	for f.snapshot().intFlags != 0 {
		select {
		case <-deadline:
			t.Fatal("warning flag never serviced")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
}

func TestDaemonRejectsBadResetMode(t *testing.T) {
	cfg := testConfig()
	cfg.Watchdog.ResetMode = "halt"
	d := New(cfg, wdt.New(&fakeHardware{}), "wdog0")
	if err := d.Run(context.Background()); err == nil {
		t.Fatal("Run accepted an unknown reset mode")
	}
}
