package chip8

// Instruction is the decoded form of a single 16-bit CHIP-8 opcode.
//
// CHIP-8 instructions embed all of their parameters in the opcode word
// itself. Decoding is total: every 16-bit value decodes into these fields,
// whether or not the combination names a defined instruction. Validity is
// decided by the dispatcher, not here.
type Instruction struct {
	// Opcode is the raw 16-bit instruction word.
	Opcode uint16
	// Primary is the most significant nibble, identifying the instruction group.
	Primary byte
	// X is the second nibble, usually a register index (V0-VF).
	X int
	// Y is the third nibble, usually a second register index.
	Y int
	// N is the least significant nibble, a 4-bit immediate.
	N byte
	// NN is the least significant byte, an 8-bit immediate.
	NN byte
	// NNN is the lower 12 bits, a memory address.
	NNN uint16
}

// Decode splits a 16-bit opcode into its structural fields.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode:  opcode,
		Primary: byte(opcode >> 12),
		X:       int(opcode & 0x0F00 >> 8),
		Y:       int(opcode & 0x00F0 >> 4),
		N:       byte(opcode & 0x000F),
		NN:      byte(opcode & 0x00FF),
		NNN:     opcode & 0x0FFF,
	}
}
