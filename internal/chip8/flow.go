package chip8

// jump implements 1NNN: PC := NNN.
func (c *Chip8) jump(nnn uint16) error {
	c.pc = nnn
	return nil
}

// call implements 2NNN: push the current PC, already advanced past the call
// instruction, and jump to NNN.
func (c *Chip8) call(nnn uint16) error {
	if err := c.pushStack(); err != nil {
		return err
	}
	c.pc = nnn
	return nil
}

// returnFromSubroutine implements 00EE: pop the return address into PC.
func (c *Chip8) returnFromSubroutine() error {
	return c.popStack()
}

// jumpV0 implements BNNN: PC := NNN + V0 with 16-bit wraparound.
func (c *Chip8) jumpV0(nnn uint16) error {
	v0, err := c.register(0)
	if err != nil {
		return err
	}
	c.pc = nnn + uint16(v0)
	return nil
}

// skipIfEqualNN implements 3XNN: skip the next instruction if Vx == NN.
func (c *Chip8) skipIfEqualNN(x int, nn byte) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}
	if vx == nn {
		c.pc += 2
	}
	return nil
}

// skipIfNotEqualNN implements 4XNN: skip the next instruction if Vx != NN.
func (c *Chip8) skipIfNotEqualNN(x int, nn byte) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}
	if vx != nn {
		c.pc += 2
	}
	return nil
}

// skipIfEqual implements 5XY0: skip the next instruction if Vx == Vy.
func (c *Chip8) skipIfEqual(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}
	if vx == vy {
		c.pc += 2
	}
	return nil
}

// skipIfNotEqual implements 9XY0: skip the next instruction if Vx != Vy.
func (c *Chip8) skipIfNotEqual(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}
	if vx != vy {
		c.pc += 2
	}
	return nil
}
