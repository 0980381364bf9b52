// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !arm

package efm32

// There is no off-target bus bridge for these chips, so plain Open only
// works on the target itself.
func openMem() memProvider {
	panic("register access is only supported on-target; use OpenWithMemory")
}
