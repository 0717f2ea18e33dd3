package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSetIndex(t *testing.T) {
	c := newChip8(t)

	assert.NoError(t, runOpcode(t, c, 0xA123))
	assert.Equal(t, uint16(0x123), c.i)
}

func TestAddToIndex(t *testing.T) {
	c := newChip8(t)
	c.i = 0x100
	c.registers[0] = 0x10
	c.registers[0xF] = 0x7

	assert.NoError(t, runOpcode(t, c, 0xF01E))
	assert.Equal(t, uint16(0x110), c.i)
	// no flag is involved
	assert.Equal(t, byte(0x7), c.registers[0xF])
}

func TestAddToIndexWraps(t *testing.T) {
	c := newChip8(t)
	c.i = 0xFFFF
	c.registers[0] = 2

	assert.NoError(t, runOpcode(t, c, 0xF01E))
	assert.Equal(t, uint16(0x0001), c.i)
}

func TestFontAddress(t *testing.T) {
	tests := []struct {
		digit byte
		want  uint16
	}{
		{0x0, FontAddress},
		{0x1, FontAddress + 5},
		{0xF, FontAddress + 75},
		// values above 0xF are not masked and address past the table
		{0x10, FontAddress + 80},
	}

	for _, tt := range tests {
		c := newChip8(t)
		c.registers[3] = tt.digit

		assert.NoError(t, runOpcode(t, c, 0xF329))
		assert.Equal(t, tt.want, c.i)
	}
}

func TestStoreBCD(t *testing.T) {
	tests := []struct {
		value  byte
		digits []byte
	}{
		{123, []byte{1, 2, 3}},
		{7, []byte{0, 0, 7}},
		{255, []byte{2, 5, 5}},
		{0, []byte{0, 0, 0}},
	}

	for _, tt := range tests {
		c := newChip8(t)
		c.i = 0x300
		c.registers[5] = tt.value

		assert.NoError(t, runOpcode(t, c, 0xF533))

		data, err := c.memory.ReadRange(0x300, 3)
		assert.NoError(t, err)
		assert.Equal(t, tt.digits, data)
	}
}

func TestStoreBCDOutOfBounds(t *testing.T) {
	c := newChip8(t)
	c.i = MemorySize - 2
	c.registers[0] = 42

	err := runOpcode(t, c, 0xF033)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
}

func TestStoreRegisters(t *testing.T) {
	c := newChip8(t)
	c.i = 0x300
	for i := 0; i <= 3; i++ {
		c.registers[i] = byte(0x10 + i)
	}
	c.registers[4] = 0x99

	assert.NoError(t, runOpcode(t, c, 0xF355))

	data, err := c.memory.ReadRange(0x300, 5)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x11, 0x12, 0x13, 0x00}, data)
	// I is left unchanged
	assert.Equal(t, uint16(0x300), c.i)
}

func TestLoadRegisters(t *testing.T) {
	c := newChip8(t)
	c.i = 0x300
	assert.NoError(t, c.memory.WriteRange(0x300, []byte{0xAA, 0xBB, 0xCC}))
	c.registers[3] = 0x99

	assert.NoError(t, runOpcode(t, c, 0xF265))

	assert.Equal(t, byte(0xAA), c.registers[0])
	assert.Equal(t, byte(0xBB), c.registers[1])
	assert.Equal(t, byte(0xCC), c.registers[2])
	// registers past Vx are untouched
	assert.Equal(t, byte(0x99), c.registers[3])
	assert.Equal(t, uint16(0x300), c.i)
}

func TestStoreLoadRegistersRoundTrip(t *testing.T) {
	c := newChip8(t)
	c.i = 0x320
	for i := 0; i < registerCount; i++ {
		c.registers[i] = byte(i * 3)
	}

	assert.NoError(t, runOpcode(t, c, 0xFF55))

	want := c.registers
	c.registers = [registerCount]byte{}
	assert.NoError(t, runOpcode(t, c, 0xFF65))

	assert.Equal(t, want, c.registers)
}

func TestStoreRegistersOutOfBounds(t *testing.T) {
	c := newChip8(t)
	c.i = MemorySize - 2

	err := runOpcode(t, c, 0xF355)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
}

func TestDelayTimerTransfer(t *testing.T) {
	c := newChip8(t)
	c.registers[0] = 42

	assert.NoError(t, runOpcode(t, c, 0xF015)) // delay := V0
	assert.Equal(t, byte(42), c.DelayTimer())

	assert.NoError(t, runOpcode(t, c, 0xF107)) // V1 := delay
	assert.Equal(t, byte(42), c.registers[1])
}

func TestSetSoundTimer(t *testing.T) {
	c := newChip8(t)
	c.registers[0] = 9

	assert.NoError(t, runOpcode(t, c, 0xF018))
	assert.Equal(t, byte(9), c.SoundTimer())
	assert.True(t, c.ShouldBeep())
}
