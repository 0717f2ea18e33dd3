package chip8

// execute routes a decoded instruction to its handler. The match is total
// over (primary nibble, X, Y, N): combinations without a handler are
// rejected here, before any machine state is touched, and reported as an
// invalid opcode carrying the decoded fields.
func (c *Chip8) execute(ins Instruction) error {
	switch ins.Primary {
	case 0x0:
		switch {
		case ins.X == 0x0 && ins.Y == 0xE && ins.N == 0x0:
			return c.clearScreen()
		case ins.X == 0x0 && ins.Y == 0xE && ins.N == 0xE:
			return c.returnFromSubroutine()
		}

	case 0x1:
		return c.jump(ins.NNN)
	case 0x2:
		return c.call(ins.NNN)
	case 0x3:
		return c.skipIfEqualNN(ins.X, ins.NN)
	case 0x4:
		return c.skipIfNotEqualNN(ins.X, ins.NN)
	case 0x5:
		if ins.N == 0x0 {
			return c.skipIfEqual(ins.X, ins.Y)
		}
	case 0x6:
		return c.loadNN(ins.X, ins.NN)
	case 0x7:
		return c.addNN(ins.X, ins.NN)

	case 0x8:
		switch ins.N {
		case 0x0:
			return c.load(ins.X, ins.Y)
		case 0x1:
			return c.or(ins.X, ins.Y)
		case 0x2:
			return c.and(ins.X, ins.Y)
		case 0x3:
			return c.xor(ins.X, ins.Y)
		case 0x4:
			return c.addWithCarry(ins.X, ins.Y)
		case 0x5:
			return c.sub(ins.X, ins.Y)
		case 0x6:
			return c.shiftRight(ins.X)
		case 0x7:
			return c.subReverse(ins.X, ins.Y)
		case 0xE:
			return c.shiftLeft(ins.X)
		}

	case 0x9:
		if ins.N == 0x0 {
			return c.skipIfNotEqual(ins.X, ins.Y)
		}
	case 0xA:
		return c.setIndex(ins.NNN)
	case 0xB:
		return c.jumpV0(ins.NNN)
	case 0xC:
		return c.random(ins.X, ins.NN)
	case 0xD:
		return c.drawSprite(ins.X, ins.Y, ins.N)

	case 0xE:
		switch ins.NN {
		case 0x9E:
			return c.skipIfKeyPressed(ins.X)
		case 0xA1:
			return c.skipIfKeyNotPressed(ins.X)
		}

	case 0xF:
		switch ins.NN {
		case 0x07:
			return c.loadDelayTimer(ins.X)
		case 0x0A:
			return c.waitForKey(ins.X)
		case 0x15:
			return c.setDelayTimer(ins.X)
		case 0x18:
			return c.setSoundTimer(ins.X)
		case 0x1E:
			return c.addToIndex(ins.X)
		case 0x29:
			return c.fontAddress(ins.X)
		case 0x33:
			return c.storeBCD(ins.X)
		case 0x55:
			return c.storeRegisters(ins.X)
		case 0x65:
			return c.loadRegisters(ins.X)
		}
	}

	return &InvalidOpcodeError{Instruction: ins}
}
