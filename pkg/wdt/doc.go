// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wdt drives the watchdog timer (WDOG) block found on Silicon Labs
// Gecko series MCUs. The hardware supports 16 discrete timeout periods, an
// optional feed window with 5 discrete lower bounds and a fixed early
// warning interrupt at 75% of the period. The driver quantizes requested
// cycle counts onto those discrete settings, keeps the installed
// configuration, and talks to the registers through the Hardware interface
// so that everything above the register writes can be tested without a
// board attached.
//
// The usual sequence is InstallTimeout, Setup, then periodic Feed calls.
// Once Setup returns the hardware is counting and the first feed must
// arrive within the shortest configured window.
package wdt
