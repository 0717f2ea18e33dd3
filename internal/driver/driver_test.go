package driver

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// jump-to-self at the program start address
var selfLoopROM = []byte{0x12, 0x00}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 700)
	assert.NoError(t, err)
	assert.Equal(t, 700, d.CPUSpeed())
}

func TestTickExecutesDueCycles(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 100000)
	assert.NoError(t, err)
	assert.NoError(t, d.LoadROM(selfLoopROM))

	time.Sleep(5 * time.Millisecond)
	assert.NoError(t, d.Tick())

	// the program loops on itself, the counter stays at the start address
	assert.Equal(t, uint16(0x200), d.core.PC())
}

func TestTickPaused(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 0)
	assert.NoError(t, err)
	assert.NoError(t, d.LoadROM(selfLoopROM))

	time.Sleep(2 * time.Millisecond)
	assert.NoError(t, d.Tick())

	assert.Equal(t, uint16(0x200), d.core.PC())
	assert.Equal(t, 0, d.CPUSpeed())
}

func TestSetCPUSpeed(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 700)
	assert.NoError(t, err)

	d.SetCPUSpeed(0)
	assert.Equal(t, 0, d.CPUSpeed())
	assert.Equal(t, time.Duration(0), d.cpuCycle)

	d.SetCPUSpeed(500)
	assert.Equal(t, 500, d.CPUSpeed())
	assert.Equal(t, time.Second/500, d.cpuCycle)
}

func TestTickError(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 100000)
	assert.NoError(t, err)
	// 0xFFFF is not a valid instruction
	assert.NoError(t, d.LoadROM([]byte{0xFF, 0xFF}))

	time.Sleep(5 * time.Millisecond)
	assert.Error(t, d.Tick())
}

func TestTickTimers(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 0)
	assert.NoError(t, err)

	// set the sound timer directly on the core
	assert.NoError(t, d.LoadROM(selfLoopROM))
	d.core.TickTimers() // no effect at zero

	assert.False(t, d.ShouldBeep())
}

func TestKeyPassthrough(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 0)
	assert.NoError(t, err)

	d.KeyPress(0x5)
	d.KeyRelease(0x5)
	d.KeyPress(0xFF) // out of range keys are ignored
}

func TestDisplayPassthrough(t *testing.T) {
	logger := log.NewTestLogger(t)

	d, err := New(logger, 0)
	assert.NoError(t, err)

	assert.Len(t, d.Framebuffer(), 64*32)
	assert.False(t, d.DisplayUpdated())
	d.ClearDisplayUpdated()
}
