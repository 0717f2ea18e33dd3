package chip8

// loadNN implements 6XNN: Vx := NN.
func (c *Chip8) loadNN(x int, nn byte) error {
	return c.setRegister(x, nn)
}

// addNN implements 7XNN: Vx := Vx + NN, wrapping, no carry flag.
func (c *Chip8) addNN(x int, nn byte) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}
	return c.setRegister(x, vx+nn)
}

// load implements 8XY0: Vx := Vy.
func (c *Chip8) load(x, y int) error {
	vy, err := c.register(y)
	if err != nil {
		return err
	}
	return c.setRegister(x, vy)
}

// or implements 8XY1: Vx |= Vy.
func (c *Chip8) or(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}
	return c.setRegister(x, vx|vy)
}

// and implements 8XY2: Vx &= Vy.
func (c *Chip8) and(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}
	return c.setRegister(x, vx&vy)
}

// xor implements 8XY3: Vx ^= Vy.
func (c *Chip8) xor(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}
	return c.setRegister(x, vx^vy)
}

// addWithCarry implements 8XY4: Vx := Vx + Vy, VF set to 1 on 8-bit
// overflow, 0 otherwise. The result wraps.
func (c *Chip8) addWithCarry(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}

	sum := uint16(vx) + uint16(vy)
	if err := c.setRegister(x, byte(sum)); err != nil {
		return err
	}
	c.registers[flagRegister] = flag(sum > 0xFF)
	return nil
}

// sub implements 8XY5: Vx := Vx - Vy, VF set to 1 when no borrow occurred
// (Vx >= Vy), 0 otherwise. The result wraps on underflow.
func (c *Chip8) sub(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}

	if err := c.setRegister(x, vx-vy); err != nil {
		return err
	}
	c.registers[flagRegister] = flag(vx >= vy)
	return nil
}

// subReverse implements 8XY7: Vx := Vy - Vx, same not-borrow convention
// relative to Vy.
func (c *Chip8) subReverse(x, y int) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}

	if err := c.setRegister(x, vy-vx); err != nil {
		return err
	}
	c.registers[flagRegister] = flag(vy >= vx)
	return nil
}

// shiftRight implements 8XY6: Vx >>= 1, VF receives the bit shifted out.
func (c *Chip8) shiftRight(x int) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}

	if err := c.setRegister(x, vx>>1); err != nil {
		return err
	}
	c.registers[flagRegister] = vx & 0x01
	return nil
}

// shiftLeft implements 8XYE: Vx <<= 1, VF receives the bit shifted out.
func (c *Chip8) shiftLeft(x int) error {
	vx, err := c.register(x)
	if err != nil {
		return err
	}

	if err := c.setRegister(x, vx<<1); err != nil {
		return err
	}
	c.registers[flagRegister] = vx >> 7
	return nil
}

// random implements CXNN: Vx := random byte masked by NN.
func (c *Chip8) random(x int, nn byte) error {
	return c.setRegister(x, c.randByte()&nn)
}

// registerPair reads two general purpose registers, bounds checked.
func (c *Chip8) registerPair(x, y int) (byte, byte, error) {
	vx, err := c.register(x)
	if err != nil {
		return 0, 0, err
	}
	vy, err := c.register(y)
	if err != nil {
		return 0, 0, err
	}
	return vx, vy, nil
}

func flag(set bool) byte {
	if set {
		return 1
	}
	return 0
}
