package chip8

import "fmt"

// skipIfKeyPressed implements EX9E: skip the next instruction if the key
// indexed by Vx is pressed.
func (c *Chip8) skipIfKeyPressed(x int) error {
	key, err := c.keyState(x)
	if err != nil {
		return err
	}
	if key != 0 {
		c.pc += 2
	}
	return nil
}

// skipIfKeyNotPressed implements EXA1: skip the next instruction if the key
// indexed by Vx is not pressed.
func (c *Chip8) skipIfKeyNotPressed(x int) error {
	key, err := c.keyState(x)
	if err != nil {
		return err
	}
	if key == 0 {
		c.pc += 2
	}
	return nil
}

// waitForKey implements FX0A: store the lowest pressed key index in Vx.
// If no key is pressed the program counter is rewound by 2 so the same
// instruction is fetched again on the next Step call. Blocking emerges from
// the caller repeating Step, the machine never waits internally.
func (c *Chip8) waitForKey(x int) error {
	for key, state := range c.keyboard {
		if state != 0 {
			return c.setRegister(x, byte(key))
		}
	}

	c.pc -= 2
	return nil
}

// keyState reads the keyboard flag for the key indexed by Vx.
func (c *Chip8) keyState(x int) (byte, error) {
	vx, err := c.register(x)
	if err != nil {
		return 0, err
	}
	if int(vx) >= keyCount {
		return 0, fmt.Errorf("%w: key %X", ErrInvalidKey, vx)
	}
	return c.keyboard[vx], nil
}
