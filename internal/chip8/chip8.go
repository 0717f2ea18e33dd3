// Package chip8 implements the CHIP-8 virtual machine core.
//
// The core is pure state transition logic: it owns memory, registers, stack,
// timers, framebuffer and keyboard state, and executes exactly one
// instruction per Step call. It has no notion of wall-clock time. Pacing the
// CPU and decrementing the timers at 60Hz is the caller's job, see the
// driver package.
//
// The machine is not safe for concurrent use, callers sharing it across
// goroutines must serialize access externally.
package chip8

import (
	"fmt"
	"math/rand/v2"
)

// Framebuffer dimensions of the 64x32 monochrome display.
const (
	FramebufferWidth  = 64
	FramebufferHeight = 32
)

const (
	registerCount = 16
	stackDepth    = 16
	keyCount      = 16
	flagRegister  = 0xF
)

// Chip8 is the CHIP-8 virtual machine state aggregate.
type Chip8 struct {
	memory    *Memory
	registers [registerCount]byte

	i  uint16 // index register, only the low 12 bits are meaningful
	pc uint16
	sp byte

	stack [stackDepth]uint16

	delayTimer byte
	soundTimer byte

	framebuffer [FramebufferWidth * FramebufferHeight]byte
	keyboard    [keyCount]byte

	displayUpdated bool

	randByte func() byte
}

// New returns an initialized machine: zeroed state, font table loaded and
// the program counter set to the program start address.
func New() (*Chip8, error) {
	mem, err := NewMemory()
	if err != nil {
		return nil, fmt.Errorf("initializing memory: %w", err)
	}

	return &Chip8{
		memory:   mem,
		pc:       ProgramStart,
		randByte: randomByte,
	}, nil
}

// Reset wipes the machine back to its post-construction state. All
// registers, memory, stack, timers, keyboard and framebuffer are cleared
// and the font table is reloaded.
func (c *Chip8) Reset() error {
	mem, err := NewMemory()
	if err != nil {
		return fmt.Errorf("initializing memory: %w", err)
	}

	c.memory = mem
	c.registers = [registerCount]byte{}
	c.i = 0
	c.pc = ProgramStart
	c.sp = 0
	c.stack = [stackDepth]uint16{}
	c.delayTimer = 0
	c.soundTimer = 0
	c.framebuffer = [FramebufferWidth * FramebufferHeight]byte{}
	c.keyboard = [keyCount]byte{}
	c.displayUpdated = false
	return nil
}

// LoadROM copies a program into memory starting at the program start
// address. Memory is left unmodified if the ROM does not fit.
func (c *Chip8) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, %d available", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	if err := c.memory.WriteRange(ProgramStart, rom); err != nil {
		return fmt.Errorf("writing ROM: %w", err)
	}
	return nil
}

// Step executes a single fetch-decode-execute cycle.
func (c *Chip8) Step() error {
	ins, err := c.fetch()
	if err != nil {
		return err
	}
	return c.execute(ins)
}

// fetch reads the 2-byte instruction word at the program counter, advances
// the program counter past it and decodes the word. The program counter is
// left unchanged when the word cannot be read.
func (c *Chip8) fetch() (Instruction, error) {
	opcode, err := c.memory.ReadWord(int(c.pc))
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: PC %04X", ErrFetch, c.pc)
	}
	c.pc += 2
	return Decode(opcode), nil
}

// PC returns the current program counter.
func (c *Chip8) PC() uint16 {
	return c.pc
}

// PeekWord reads the instruction word at the current program counter
// without advancing it.
func (c *Chip8) PeekWord() (uint16, error) {
	return c.memory.ReadWord(int(c.pc))
}

// pushStack saves the current program counter on the call stack.
func (c *Chip8) pushStack() error {
	if int(c.sp) >= stackDepth {
		return fmt.Errorf("%w: SP %d", ErrStackOverflow, c.sp)
	}
	c.stack[c.sp] = c.pc
	c.sp++
	return nil
}

// popStack restores the program counter from the call stack.
func (c *Chip8) popStack() error {
	if c.sp == 0 {
		return fmt.Errorf("%w: SP %d", ErrStackUnderflow, c.sp)
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

// TickTimers decrements both countdown timers by one, saturating at zero.
// It is the caller's responsibility to invoke this at a steady 60Hz,
// independent of how often Step is called.
func (c *Chip8) TickTimers() {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
	}
}

// DelayTimer returns the current delay timer value.
func (c *Chip8) DelayTimer() byte {
	return c.delayTimer
}

// SoundTimer returns the current sound timer value.
func (c *Chip8) SoundTimer() byte {
	return c.soundTimer
}

// ShouldBeep reports whether the sound timer indicates audio should play.
func (c *Chip8) ShouldBeep() bool {
	return c.soundTimer > 0
}

// KeyPress marks a key on the 16-key pad as pressed.
// Indices outside 0-15 are silently ignored.
func (c *Chip8) KeyPress(key byte) {
	if int(key) < keyCount {
		c.keyboard[key] = 1
	}
}

// KeyRelease marks a key on the 16-key pad as released.
// Indices outside 0-15 are silently ignored.
func (c *Chip8) KeyRelease(key byte) {
	if int(key) < keyCount {
		c.keyboard[key] = 0
	}
}

// Framebuffer returns the 64x32 display buffer in row-major order, one byte
// per pixel with value 0 or 1.
func (c *Chip8) Framebuffer() []byte {
	return c.framebuffer[:]
}

// DisplayUpdated reports whether the framebuffer was mutated since the flag
// was last cleared.
func (c *Chip8) DisplayUpdated() bool {
	return c.displayUpdated
}

// ClearDisplayUpdated clears the display updated flag. The consumer calls
// this after it has redrawn the screen.
func (c *Chip8) ClearDisplayUpdated() {
	c.displayUpdated = false
}

// setRegister writes a general purpose register, bounds checked.
func (c *Chip8) setRegister(x int, value byte) error {
	if x < 0 || x >= registerCount {
		return fmt.Errorf("%w: V%X", ErrInvalidRegister, x)
	}
	c.registers[x] = value
	return nil
}

// register reads a general purpose register, bounds checked.
func (c *Chip8) register(x int) (byte, error) {
	if x < 0 || x >= registerCount {
		return 0, fmt.Errorf("%w: V%X", ErrInvalidRegister, x)
	}
	return c.registers[x], nil
}

func randomByte() byte {
	return byte(rand.UintN(256))
}
