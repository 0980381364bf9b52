// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"time"

	"github.com/gecko-go/geckofw/pkg/wdt"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type WatchdogConfig struct {
	// WindowMaxCycles is the requested timeout. With the ULFRCO one
	// cycle is roughly one millisecond.
	WindowMaxCycles uint32 `yaml:"window_max_cycles"`
	// WindowMinCycles is the earliest allowed feed point, 0 disables
	// the window.
	WindowMinCycles uint32 `yaml:"window_min_cycles"`
	// ResetMode is one of "soc", "core" or "none".
	ResetMode             string `yaml:"reset_mode"`
	PauseInSleep          bool   `yaml:"pause_in_sleep"`
	PauseHaltedByDebugger bool   `yaml:"pause_halted_by_debugger"`
	// DisableAtBoot stops a watchdog a bootloader may have left
	// running before reconfiguring it.
	DisableAtBoot bool `yaml:"disable_at_boot"`
	// DisarmOnExit disables the watchdog on clean daemon shutdown.
	// Leave false if the watchdog should outlive the daemon and reset
	// the system when feeding stops.
	DisarmOnExit bool `yaml:"disarm_on_exit"`
	// LogEarlyWarning subscribes the daemon to the 75% early warning
	// interrupt and logs when it fires.
	LogEarlyWarning bool `yaml:"log_early_warning"`
}

type FeedConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	// IrqPollMs is how often the interrupt dispatcher samples the
	// pending flags.
	IrqPollMs int `yaml:"irq_poll_ms"`
}

type Config struct {
	Board       string         `yaml:"board"`
	Watchdog    WatchdogConfig `yaml:"watchdog"`
	Feed        FeedConfig     `yaml:"feed"`
	MetricsAddr string         `yaml:"metrics_addr"`
}

var DefaultConfig = &Config{
	Watchdog: WatchdogConfig{
		// ~4 s timeout leaves room for scheduling hiccups while still
		// catching a wedged system quickly.
		WindowMaxCycles: 4097,
		ResetMode:       "soc",
		DisableAtBoot:   true,
		LogEarlyWarning: true,
	},
	Feed: FeedConfig{
		// Feed at a quarter of the default period.
		IntervalMs: 1000,
		IrqPollMs:  100,
	},
	// geckofw has no allocated port, pick something in the user range.
	MetricsAddr: "[::]:9469",
}

// Load reads a YAML config from fs, merges it over DefaultConfig and
// validates the result.
func Load(fs afero.Fs, path string) (*Config, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config %s failed: %w", path, err)
	}
	cfg := *DefaultConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s failed: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Flag maps ResetMode to the driver flag.
func (w *WatchdogConfig) Flag() (wdt.Flag, error) {
	switch w.ResetMode {
	case "soc":
		return wdt.ResetSoC, nil
	case "core":
		return wdt.ResetCPUCore, nil
	case "none":
		return wdt.ResetNone, nil
	}
	return 0, fmt.Errorf("unknown reset mode %q", w.ResetMode)
}

// Options maps the pause settings to the driver options bitmask.
func (w *WatchdogConfig) Options() wdt.Options {
	var o wdt.Options
	if w.PauseInSleep {
		o |= wdt.OptPauseInSleep
	}
	if w.PauseHaltedByDebugger {
		o |= wdt.OptPauseHaltedByDebugger
	}
	return o
}

func (f *FeedConfig) Interval() time.Duration {
	return time.Duration(f.IntervalMs) * time.Millisecond
}

func (f *FeedConfig) IrqPoll() time.Duration {
	return time.Duration(f.IrqPollMs) * time.Millisecond
}
