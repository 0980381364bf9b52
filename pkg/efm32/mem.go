// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package efm32

// All Gecko peripheral registers sit on a 32 bit wide bus, so unlike
// other SoC libraries there is no need for narrower accessors.
type memProvider interface {
	MustRead32(uintptr) uint32
	MustWrite32(uintptr, uint32)
	Close()
}
