package chip8

import "fmt"

// glyphSize is the height in bytes of one font glyph.
const glyphSize = 5

// setIndex implements ANNN: I := NNN.
func (c *Chip8) setIndex(nnn uint16) error {
	c.i = nnn
	return nil
}

// addToIndex implements FX1E: I := I + Vx with 16-bit wraparound, no flag.
func (c *Chip8) addToIndex(x int) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}
	c.i += uint16(vx)
	return nil
}

// fontAddress implements FX29: I := font table address of the glyph for the
// digit in Vx. Vx is not masked to 4 bits: values above 0xF compute an
// address past the font table, matching original interpreter behavior.
func (c *Chip8) fontAddress(x int) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}
	c.i = FontAddress + uint16(vx)*glyphSize
	return nil
}

// storeBCD implements FX33: write the decimal digits of Vx to memory at
// I, I+1 and I+2.
func (c *Chip8) storeBCD(x int) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}

	digits := []byte{vx / 100, vx / 10 % 10, vx % 10}
	if err := c.memory.WriteRange(int(c.i), digits); err != nil {
		return fmt.Errorf("%w: I %04X", ErrIndexOutOfBounds, c.i)
	}
	return nil
}

// storeRegisters implements FX55: copy V0..=Vx to memory starting at I.
// I itself is left unmodified.
func (c *Chip8) storeRegisters(x int) error {
	if x < 0 || x >= registerCount {
		return fmt.Errorf("%w: V%X", ErrInvalidRegister, x)
	}
	if err := c.memory.WriteRange(int(c.i), c.registers[:x+1]); err != nil {
		return fmt.Errorf("%w: I %04X", ErrIndexOutOfBounds, c.i)
	}
	return nil
}

// loadRegisters implements FX65: copy memory starting at I into V0..=Vx.
// I itself is left unmodified.
func (c *Chip8) loadRegisters(x int) error {
	if x < 0 || x >= registerCount {
		return fmt.Errorf("%w: V%X", ErrInvalidRegister, x)
	}
	data, err := c.memory.ReadRange(int(c.i), x+1)
	if err != nil {
		return fmt.Errorf("%w: I %04X", ErrIndexOutOfBounds, c.i)
	}
	copy(c.registers[:x+1], data)
	return nil
}

// loadDelayTimer implements FX07: Vx := delay timer.
func (c *Chip8) loadDelayTimer(x int) error {
	return c.setRegister(x, c.delayTimer)
}

// setDelayTimer implements FX15: delay timer := Vx.
func (c *Chip8) setDelayTimer(x int) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}
	c.delayTimer = vx
	return nil
}

// setSoundTimer implements FX18: sound timer := Vx.
func (c *Chip8) setSoundTimer(x int) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}
	c.soundTimer = vx
	return nil
}
