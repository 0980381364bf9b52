// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform registers all supported boards. Importing it is what
// populates the board registry, commands do so with a blank import.
package platform

import (
	"github.com/gecko-go/geckofw/pkg/board"
	stk3700 "github.com/gecko-go/geckofw/platform/efm32gg-stk3700/pkg/platform"
	brd4161a "github.com/gecko-go/geckofw/platform/efr32mg12-brd4161a/pkg/platform"
)

// init registers the boards.
func init() {
	board.Register(&stk3700.Platform{})
	board.Register(&brd4161a.Platform{})
}
