// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	c := *DefaultConfig
	return &c
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "window max too small",
			mutate:  func(c *Config) { c.Watchdog.WindowMaxCycles = 8 },
			wantErr: "window_max_cycles",
		},
		{
			name:    "window max too large",
			mutate:  func(c *Config) { c.Watchdog.WindowMaxCycles = 262146 },
			wantErr: "window_max_cycles",
		},
		{
			name:    "window min above max",
			mutate:  func(c *Config) { c.Watchdog.WindowMinCycles = 5000 },
			wantErr: "window_min_cycles",
		},
		{
			name:    "bad reset mode",
			mutate:  func(c *Config) { c.Watchdog.ResetMode = "halt" },
			wantErr: "reset mode",
		},
		{
			name:    "feed interval zero",
			mutate:  func(c *Config) { c.Feed.IntervalMs = 0 },
			wantErr: "interval_ms",
		},
		{
			name:    "feed slower than period",
			mutate:  func(c *Config) { c.Feed.IntervalMs = 5000 },
			wantErr: "interval_ms",
		},
		{
			name:    "irq poll zero",
			mutate:  func(c *Config) { c.Feed.IrqPollMs = 0 },
			wantErr: "irq_poll_ms",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("got %v, want error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Watchdog.WindowMaxCycles = 0
	cfg.Watchdog.ResetMode = "halt"
	cfg.Feed.IrqPollMs = -1
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"window_max_cycles", "reset mode", "irq_poll_ms"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}
