// Package driver paces the interpreter core in wall clock time.
package driver

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// timerSpeedHz is the fixed decrement rate of the delay and sound timers.
const timerSpeedHz = 60

// Driver owns an interpreter core and advances it based on elapsed time.
// Each Tick call executes all CPU cycles and timer decrements that have
// come due since the previous call, so the caller only needs to invoke
// Tick regularly, for example once per rendered frame.
//
// Driver is not safe for concurrent use.
type Driver struct {
	core   *chip8.Chip8
	logger *log.Logger

	cpuSpeedHz int
	cpuCycle   time.Duration
	timerCycle time.Duration

	lastCPUTick   time.Time
	lastTimerTick time.Time
}

// New creates a driver around a fresh interpreter core running at the
// given CPU speed in instructions per second. A speed of 0 pauses
// execution until SetCPUSpeed raises it.
func New(logger *log.Logger, cpuSpeedHz int) (*Driver, error) {
	core, err := chip8.New()
	if err != nil {
		return nil, fmt.Errorf("creating interpreter core: %w", err)
	}

	d := &Driver{
		core:       core,
		logger:     logger,
		timerCycle: time.Second / timerSpeedHz,
	}
	d.SetCPUSpeed(cpuSpeedHz)
	d.resetClock()
	return d, nil
}

// SetCPUSpeed changes the CPU speed in instructions per second.
// A speed of 0 or lower pauses instruction execution, the timers keep
// counting down.
func (d *Driver) SetCPUSpeed(hz int) {
	d.cpuSpeedHz = hz
	if hz <= 0 {
		d.cpuCycle = 0
		return
	}
	d.cpuCycle = time.Second / time.Duration(hz)
}

// CPUSpeed returns the configured CPU speed in instructions per second.
func (d *Driver) CPUSpeed() int {
	return d.cpuSpeedHz
}

// Tick executes every CPU cycle and timer decrement that has become due
// since the last call. The first error from the core stops execution and
// is returned, the remaining due cycles are abandoned.
func (d *Driver) Tick() error {
	now := time.Now()

	if d.cpuCycle > 0 {
		for now.Sub(d.lastCPUTick) >= d.cpuCycle {
			d.traceStep()
			if err := d.core.Step(); err != nil {
				return fmt.Errorf("executing instruction: %w", err)
			}
			d.lastCPUTick = d.lastCPUTick.Add(d.cpuCycle)
		}
	} else {
		// paused: move the baseline so resuming does not burst
		d.lastCPUTick = now
	}

	for now.Sub(d.lastTimerTick) >= d.timerCycle {
		d.core.TickTimers()
		d.lastTimerTick = d.lastTimerTick.Add(d.timerCycle)
	}

	return nil
}

// LoadROM resets the core and copies the ROM into program memory.
func (d *Driver) LoadROM(rom []byte) error {
	if err := d.core.Reset(); err != nil {
		return fmt.Errorf("resetting interpreter core: %w", err)
	}
	if err := d.core.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	d.resetClock()
	return nil
}

// Reset restores the core to its power-on state. The loaded ROM is
// discarded.
func (d *Driver) Reset() error {
	if err := d.core.Reset(); err != nil {
		return fmt.Errorf("resetting interpreter core: %w", err)
	}
	d.resetClock()
	return nil
}

// KeyPress forwards a key press to the core.
func (d *Driver) KeyPress(key byte) {
	d.core.KeyPress(key)
}

// KeyRelease forwards a key release to the core.
func (d *Driver) KeyRelease(key byte) {
	d.core.KeyRelease(key)
}

// Framebuffer returns the core display buffer in row-major order.
func (d *Driver) Framebuffer() []byte {
	return d.core.Framebuffer()
}

// DisplayUpdated reports whether the framebuffer changed since the flag
// was last cleared.
func (d *Driver) DisplayUpdated() bool {
	return d.core.DisplayUpdated()
}

// ClearDisplayUpdated clears the display updated flag after a redraw.
func (d *Driver) ClearDisplayUpdated() {
	d.core.ClearDisplayUpdated()
}

// ShouldBeep reports whether the sound timer indicates audio should play.
func (d *Driver) ShouldBeep() bool {
	return d.core.ShouldBeep()
}

// resetClock restarts the cycle accounting from the current time.
func (d *Driver) resetClock() {
	now := time.Now()
	d.lastCPUTick = now
	d.lastTimerTick = now
}

// traceStep logs the instruction about to execute at debug level.
func (d *Driver) traceStep() {
	opcode, err := d.core.PeekWord()
	if err != nil {
		return
	}
	d.logger.Debug("Executing",
		log.String("pc", fmt.Sprintf("%04X", d.core.PC())),
		log.String("opcode", fmt.Sprintf("%04X", opcode)),
		log.String("mnemonic", chip8.Mnemonic(opcode)),
	)
}
