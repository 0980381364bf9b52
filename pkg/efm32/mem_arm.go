// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build arm

// Assume arm hosts sit on the target's bus

package efm32

func openMem() memProvider {
	return openHostMemory()
}
