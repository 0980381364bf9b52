// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/gecko-go/geckofw/pkg/wdt"
	"github.com/hashicorp/go-multierror"
)

// Validate checks everything that can be checked without a board, and
// reports all problems at once.
func Validate(cfg *Config) error {
	var result *multierror.Error

	w := &cfg.Watchdog
	if w.WindowMaxCycles < wdt.MinTimeoutCycles || w.WindowMaxCycles > wdt.MaxTimeoutCycles {
		result = multierror.Append(result, fmt.Errorf(
			"window_max_cycles %d out of supported range [%d, %d]",
			w.WindowMaxCycles, wdt.MinTimeoutCycles, wdt.MaxTimeoutCycles))
	}
	if w.WindowMinCycles != 0 && w.WindowMinCycles >= w.WindowMaxCycles {
		result = multierror.Append(result, fmt.Errorf(
			"window_min_cycles %d must be below window_max_cycles %d",
			w.WindowMinCycles, w.WindowMaxCycles))
	}
	if _, err := w.Flag(); err != nil {
		result = multierror.Append(result, err)
	}

	f := &cfg.Feed
	if f.IntervalMs <= 0 {
		result = multierror.Append(result, fmt.Errorf(
			"feed interval_ms %d must be positive", f.IntervalMs))
	} else if uint32(f.IntervalMs) >= w.WindowMaxCycles {
		// One cycle is ~1 ms, feeding slower than the period guarantees
		// a reset.
		result = multierror.Append(result, fmt.Errorf(
			"feed interval_ms %d must be below window_max_cycles %d",
			f.IntervalMs, w.WindowMaxCycles))
	}
	if f.IrqPollMs <= 0 {
		result = multierror.Append(result, fmt.Errorf(
			"feed irq_poll_ms %d must be positive", f.IrqPollMs))
	}

	return result.ErrorOrNil()
}
