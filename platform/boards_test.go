// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"testing"

	"github.com/gecko-go/geckofw/pkg/board"
)

func TestAllBoardsRegistered(t *testing.T) {
	for _, name := range []string{"efm32gg-stk3700", "efr32mg12-brd4161a"} {
		b, ok := board.Lookup(name)
		if !ok {
			t.Errorf("board %s not registered", name)
			continue
		}
		if b.Name() != name {
			t.Errorf("board %s reports name %s", name, b.Name())
		}
		if b.WdogBase() == 0 || b.CmuBase() == 0 {
			t.Errorf("board %s has zero peripheral base", name)
		}
	}
	if got := len(board.Names()); got != 2 {
		t.Errorf("registry holds %d boards, want 2: %v", got, board.Names())
	}
}
