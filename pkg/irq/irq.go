// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package irq dispatches peripheral interrupts to handlers. On-target an
// interrupt controller would vector straight into the handler; from a
// supervising host the best available signal is the peripheral's pending
// flags, so the dispatcher polls those and invokes the handler whenever
// any are raised. Handlers run on the dispatcher goroutine and must not
// block.
package irq

import (
	"context"
	"time"

	"github.com/gecko-go/geckofw/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

// Source reports whether the peripheral has unserviced interrupt flags.
type Source interface {
	Pending() bool
}

// Handler services the interrupt. It is responsible for reading and
// clearing the pending flags, the dispatcher never touches them.
type Handler func()

// Line couples one interrupt source to one handler.
type Line struct {
	name     string
	src      Source
	handler  Handler
	interval time.Duration
}

// NewLine returns a dispatcher for src firing handler. interval is the
// flag poll period; it bounds interrupt latency, so keep it well below
// the shortest deadline the handler guards.
func NewLine(name string, src Source, interval time.Duration, handler Handler) *Line {
	return &Line{
		name:     name,
		src:      src,
		handler:  handler,
		interval: interval,
	}
}

// Run polls until ctx is done. It always returns nil so it can sit
// directly in an errgroup without tearing the group down on shutdown.
func (l *Line) Run(ctx context.Context) error {
	log.Infof("Dispatching interrupts for %s every %v", l.name, l.interval)
	t := time.NewTicker(l.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Infof("Stopping interrupt dispatch for %s", l.name)
			return nil
		case <-t.C:
			if l.src.Pending() {
				l.handler()
			}
		}
	}
}
