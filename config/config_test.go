// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/gecko-go/geckofw/pkg/wdt"
	"github.com/spf13/afero"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(DefaultConfig); err != nil {
		t.Fatalf("DefaultConfig does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/etc/geckofw.yaml", []byte(`
board: efr32mg12-brd4161a
watchdog:
  window_max_cycles: 8000
  window_min_cycles: 4000
  reset_mode: none
  pause_in_sleep: true
feed:
  interval_ms: 2000
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fs, "/etc/geckofw.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board != "efr32mg12-brd4161a" {
		t.Errorf("got board %q", cfg.Board)
	}
	if cfg.Watchdog.WindowMaxCycles != 8000 || cfg.Watchdog.WindowMinCycles != 4000 {
		t.Errorf("got window %d/%d, want 8000/4000",
			cfg.Watchdog.WindowMaxCycles, cfg.Watchdog.WindowMinCycles)
	}
	if flag, err := cfg.Watchdog.Flag(); err != nil || flag != wdt.ResetNone {
		t.Errorf("got flag %v (err %v), want ResetNone", flag, err)
	}
	if cfg.Watchdog.Options() != wdt.OptPauseInSleep {
		t.Errorf("got options %#x, want OptPauseInSleep", cfg.Watchdog.Options())
	}
	// Defaults fill what the file leaves out.
	if cfg.Feed.IrqPollMs != DefaultConfig.Feed.IrqPollMs {
		t.Errorf("got irq_poll_ms %d, want default %d", cfg.Feed.IrqPollMs, DefaultConfig.Feed.IrqPollMs)
	}
	if cfg.MetricsAddr != DefaultConfig.MetricsAddr {
		t.Errorf("got metrics_addr %q, want default %q", cfg.MetricsAddr, DefaultConfig.MetricsAddr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(afero.NewMemMapFs(), "/nope.yaml"); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/bad.yaml", []byte(`
watchdog:
  window_max_cycles: 1
  reset_mode: soc
`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fs, "/bad.yaml"); err == nil {
		t.Fatal("Load of invalid config succeeded")
	}
}
