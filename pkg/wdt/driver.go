// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wdt

import (
	"fmt"
	"sync"

	"github.com/gecko-go/geckofw/pkg/logger"
	"github.com/gecko-go/geckofw/pkg/metric"
)

var log = logger.LogContainer.GetSimpleLogger()

var (
	feedsTotal = metric.Counter(metric.MetricOpts{
		Namespace: "geckofw",
		Subsystem: "wdt",
		Name:      "feeds_total",
		Help:      "Number of successful watchdog feeds.",
	})
	interruptsTotal = metric.CounterVec(metric.MetricOpts{
		Namespace: "geckofw",
		Subsystem: "wdt",
		Name:      "interrupts_total",
		Help:      "Watchdog interrupts serviced, by flag.",
	}, []string{"flag"})
)

// Interrupt flag bits shared by IntGet, IntClear, IntEnable and
// IntDisable. They match the layout of the WDOG IF register.
const (
	IntTimeout uint32 = 1 << 0 // counter reached the timeout period
	IntWarn    uint32 = 1 << 1 // counter passed the 75% warning point
)

// Flag selects what the watchdog does when the timeout expires.
type Flag int

const (
	// ResetSoC resets the whole system on timeout.
	ResetSoC Flag = iota
	// ResetCPUCore resets the CPU core only. The WDOG block cannot
	// distinguish this from ResetSoC, both map to reset enabled.
	ResetCPUCore
	// ResetNone disables the reset. Only the interrupt fires.
	ResetNone
)

// Options is the bitmask accepted by Setup.
type Options uint8

const (
	// OptPauseInSleep stops the counter in the EM2 and EM3 sleep modes.
	OptPauseInSleep Options = 1 << iota
	// OptPauseHaltedByDebugger stops the counter while a debugger has
	// the core halted.
	OptPauseHaltedByDebugger
)

// Callback is invoked from interrupt dispatch context with the channel
// that fired. It must not block and must not call back into the driver.
type Callback func(channel int)

// TimeoutConfig is the input to InstallTimeout.
type TimeoutConfig struct {
	// WindowMax is the requested timeout in cycles. Required. Rounded
	// up to the nearest supported period.
	WindowMax uint32
	// WindowMin is the requested earliest feed point in cycles. 0
	// leaves the watchdog in normal, non-windowed mode.
	WindowMin uint32
	Flags     Flag
	// Callback, if set, is invoked on the early warning and timeout
	// interrupts. Setup only enables the interrupt sources when a
	// callback is present.
	Callback Callback
}

// HardwareConfig carries the resolved register field values handed to
// Hardware.Init.
type HardwareConfig struct {
	Em2Run       bool // keep counting in EM2
	Em3Run       bool // keep counting in EM3
	DebugRun     bool // keep counting while halted by a debugger
	ResetDisable bool
	PeriodSel    int // index into the 16-entry period table
	WindowSel    int // 0 disables the window, 1..5 in eighths of the period
	WarnSel      int // warning point in quarters of the period, 0 disables
}

// warnSel75pct is the only warning setting the driver uses. Keeping the
// warning fixed at 75% is what limits WindowSel to 5.
const warnSel75pct = 3

// Hardware is the register level contract with one WDOG block.
// Implementations must not retain cfg.
type Hardware interface {
	// Init programs the configuration and starts the watchdog.
	Init(cfg HardwareConfig)
	// Enable starts or stops the counter without touching the rest of
	// the configuration.
	Enable(on bool)
	// Feed restarts the counter from zero.
	Feed()
	IntGet() uint32
	IntClear(flags uint32)
	IntEnable(flags uint32)
	IntDisable(flags uint32)
}

// Driver owns the software state for one watchdog instance: the installed
// configuration and its validity. The zero value is not usable, call New.
//
// All methods are safe for concurrent use. ServiceInterrupt is expected
// to be called from a different goroutine than the rest of the API, which
// is the host side analogue of interrupt context.
type Driver struct {
	hw Hardware

	mu           sync.Mutex
	cfg          HardwareConfig
	callback     Callback
	timeoutValid bool
	running      bool
}

// New returns a driver for the watchdog behind hw. Nothing is written to
// the hardware until Setup or Disable.
func New(hw Hardware) *Driver {
	return &Driver{hw: hw}
}

// InstallTimeout validates and quantizes cfg and stores it as the pending
// configuration. No register is touched, the side effects happen in
// Setup. At most one configuration can be installed at a time, a second
// install fails with ErrResourceExhausted until Disable is called.
func (d *Driver) InstallTimeout(cfg TimeoutConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timeoutValid {
		return fmt.Errorf("no more timeouts can be installed: %w", ErrResourceExhausted)
	}

	if cfg.WindowMax < timeoutCycles[0] ||
		cfg.WindowMax > timeoutCycles[len(timeoutCycles)-1] {
		return fmt.Errorf("upper limit timeout %d cycles out of range [%d, %d]: %w",
			cfg.WindowMax, timeoutCycles[0], timeoutCycles[len(timeoutCycles)-1],
			ErrInvalidArgument)
	}

	hc := HardwareConfig{}
	hc.PeriodSel = convertTimeout(cfg.WindowMax)

	if cfg.WindowMin != 0 {
		// Window mode. Use the rounded up period to place the
		// minimum window.
		hc.WindowSel = convertWindow(cfg.WindowMin, timeoutCycles[hc.PeriodSel])
	}

	// Fixed 75% early warning point, window or not.
	hc.WarnSel = warnSel75pct

	switch cfg.Flags {
	case ResetSoC, ResetCPUCore:
		hc.ResetDisable = false
		log.Debugf("Configuring reset CPU/SoC mode")
	case ResetNone:
		hc.ResetDisable = true
		log.Debugf("Configuring non-reset mode")
	default:
		return fmt.Errorf("unsupported watchdog config flag %d: %w", cfg.Flags, ErrInvalidArgument)
	}

	d.cfg = hc
	d.callback = cfg.Callback
	d.timeoutValid = true

	log.Debugf("Installed timeout: period %d cycles, window index %d",
		timeoutCycles[hc.PeriodSel], hc.WindowSel)
	return nil
}

// Setup translates options into run mode bits, wires the interrupt
// sources up or down depending on whether a callback was installed, and
// programs and starts the hardware. On return the watchdog is counting
// and the caller has at most the shortest configured window to issue the
// first Feed.
func (d *Driver) Setup(options Options) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.timeoutValid {
		return fmt.Errorf("no valid timeouts installed: %w", ErrInvalidState)
	}

	d.cfg.Em2Run = options&OptPauseInSleep == 0
	d.cfg.Em3Run = options&OptPauseInSleep == 0
	d.cfg.DebugRun = options&OptPauseHaltedByDebugger == 0

	if d.callback != nil {
		d.hw.IntEnable(IntTimeout | IntWarn)
	} else {
		d.hw.IntDisable(IntTimeout | IntWarn)
	}

	// The watchdog is started by Init.
	d.hw.Init(d.cfg)
	d.running = true
	log.Debugf("Setup the watchdog")

	return nil
}

// Disable stops the hardware and clears the installed configuration so a
// new InstallTimeout can follow. Safe to call in any state.
func (d *Driver) Disable() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hw.Enable(false)
	d.timeoutValid = false
	d.running = false
	log.Debugf("Disabled the watchdog")

	return nil
}

// Feed restarts the countdown on the given channel. The WDOG block has
// exactly one channel, 0.
func (d *Driver) Feed(channel int) error {
	if channel != 0 {
		return fmt.Errorf("invalid channel id %d: %w", channel, ErrInvalidArgument)
	}

	d.mu.Lock()
	d.hw.Feed()
	d.mu.Unlock()

	feedsTotal.Inc()
	log.Debugf("Fed the watchdog")
	return nil
}

// Running reports whether Setup has started the watchdog without a
// Disable since.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Pending reports whether the hardware has unserviced interrupt flags.
// Interrupt dispatch uses this to decide when to call ServiceInterrupt.
func (d *Driver) Pending() bool {
	return d.hw.IntGet() != 0
}

// ServiceInterrupt is the interrupt handler. It reads and clears all
// pending flags and invokes the installed callback, if any, with channel
// 0. The callback runs without the driver lock held. A hardware reset,
// if enabled, proceeds regardless of what the callback does.
func (d *Driver) ServiceInterrupt() {
	flags := d.hw.IntGet()
	d.hw.IntClear(flags)

	if flags&IntTimeout != 0 {
		interruptsTotal.WithLabelValues("timeout").Inc()
	}
	if flags&IntWarn != 0 {
		interruptsTotal.WithLabelValues("warn").Inc()
	}

	d.mu.Lock()
	cb := d.callback
	d.mu.Unlock()

	if cb != nil {
		cb(0)
	}
}
