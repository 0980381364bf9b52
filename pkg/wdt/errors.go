// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wdt

import "errors"

var (
	// ErrInvalidArgument is returned for out of range timeouts, bad
	// channel ids and unsupported reset flags.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned by Setup when no timeout has been
	// installed.
	ErrInvalidState = errors.New("invalid state")

	// ErrResourceExhausted is returned by InstallTimeout when a timeout
	// is already installed. The hardware has a single timeout slot, so a
	// second install requires an intervening Disable.
	ErrResourceExhausted = errors.New("resource exhausted")
)
