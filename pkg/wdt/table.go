// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wdt

// Timeout periods in cycles, one entry per PERSEL value. When the
// watchdog runs from the ULFRCO (the default) 1 cycle is 1 ms +/- 12%.
var timeoutCycles = [16]uint32{
	9, 17, 33, 65, 129, 257, 513, 1025, 2049, 4097,
	8193, 16385, 32769, 65537, 131073, 262145,
}

// MinTimeoutCycles and MaxTimeoutCycles bound the cycle counts
// InstallTimeout accepts for the window maximum.
const (
	MinTimeoutCycles = 9
	MaxTimeoutCycles = 262145
)

// convertTimeout returns the PERSEL index for the smallest supported
// period that is >= timeout. A timeout exactly equal to a table entry
// selects that entry. Callers must range check timeout first; values
// above the table still clamp to the last entry.
func convertTimeout(timeout uint32) int {
	idx := 0
	for idx < len(timeoutCycles) {
		if timeout > timeoutCycles[idx] {
			idx++
			continue
		}
		break
	}
	if idx == len(timeoutCycles) {
		idx = len(timeoutCycles) - 1
	}
	return idx
}

// convertWindow returns the WINSEL index for a requested minimum window
// of window cycles against the selected period. The hardware supports
// lower bounds in increments of period/8. The fixed 75% early warning
// point only leaves room for window settings up to 62.5% (= 5 * 12.5%),
// so the index saturates at 5. Index 0 disables the window.
func convertWindow(window, period uint32) int {
	idx := 0
	incrVal := period / 8
	compVal := uint32(0)

	for idx < 5 {
		if window > compVal {
			compVal += incrVal
			idx++
			continue
		}
		break
	}

	return idx
}
