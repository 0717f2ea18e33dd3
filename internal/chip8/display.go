package chip8

import "fmt"

const spriteWidth = 8

// clearScreen implements 00E0: zero every framebuffer cell.
func (c *Chip8) clearScreen() error {
	c.framebuffer = [FramebufferWidth * FramebufferHeight]byte{}
	c.displayUpdated = true
	return nil
}

// drawSprite implements DXYN: XOR an 8 pixel wide, N byte tall sprite read
// from memory at I onto the framebuffer at (Vx, Vy).
//
// The origin wraps modulo the screen size on entry, pixels that would fall
// outside the screen are clipped rather than wrapped. VF is set to 1 if any
// XOR turns an on-pixel off, computed fresh for this call.
func (c *Chip8) drawSprite(x, y int, n byte) error {
	vx, vy, err := c.registerPair(x, y)
	if err != nil {
		return err
	}

	originX := int(vx) % FramebufferWidth
	originY := int(vy) % FramebufferHeight

	c.registers[flagRegister] = 0

	for row := 0; row < int(n); row++ {
		posY := originY + row
		if posY >= FramebufferHeight {
			break
		}

		spriteByte, err := c.memory.ReadByte(int(c.i) + row)
		if err != nil {
			return fmt.Errorf("%w: I %04X row %d", ErrIndexOutOfBounds, c.i, row)
		}

		for col := 0; col < spriteWidth; col++ {
			posX := originX + col
			if posX >= FramebufferWidth {
				continue
			}
			if spriteByte&(0x80>>col) == 0 {
				continue
			}

			index := posY*FramebufferWidth + posX
			if index < 0 || index >= len(c.framebuffer) {
				return fmt.Errorf("%w: index %d", ErrFramebufferOutOfBounds, index)
			}

			if c.framebuffer[index] == 1 {
				c.registers[flagRegister] = 1
			}
			c.framebuffer[index] ^= 1
		}
	}

	c.displayUpdated = true
	return nil
}
