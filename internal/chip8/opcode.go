package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the assembler name of the instruction matching the given
// opcode word, looked up in the CHIP-8 instruction table by mask and value.
// It returns an empty string for words that match no table entry.
func Mnemonic(opcode uint16) string {
	firstNibble := int(opcode >> 12)
	for _, op := range chip8cpu.Opcodes[firstNibble] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}
