package chip8

import (
	"errors"
	"fmt"
)

// Execution errors. All failures are typed and surfaced synchronously from
// the operation that detected them, the machine never retries internally.
var (
	// ErrInvalidRegister indicates a register index outside V0-VF.
	ErrInvalidRegister = errors.New("invalid register")
	// ErrInvalidKey indicates a key index outside the 16-key pad.
	ErrInvalidKey = errors.New("invalid key")
	// ErrStackOverflow indicates a call with all 16 stack slots in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow indicates a return without a matching call.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrIndexOutOfBounds indicates the index register points outside memory.
	ErrIndexOutOfBounds = errors.New("index register out of bounds")
	// ErrFramebufferOutOfBounds indicates an invalid framebuffer index.
	ErrFramebufferOutOfBounds = errors.New("framebuffer index out of bounds")
	// ErrFetch indicates the program counter points past readable memory.
	ErrFetch = errors.New("program counter out of bounds")
	// ErrMemoryOutOfBounds indicates a memory access outside the 4KB space.
	ErrMemoryOutOfBounds = errors.New("memory out of bounds")
	// ErrROMTooLarge indicates a ROM that does not fit into the program region.
	ErrROMTooLarge = errors.New("ROM exceeds program memory")
)

// InvalidOpcodeError reports an instruction word that matches no dispatch
// entry. It carries the decoded fields of the offending word.
type InvalidOpcodeError struct {
	Instruction Instruction
}

func (e *InvalidOpcodeError) Error() string {
	ins := e.Instruction
	return fmt.Sprintf("invalid opcode %04X (primary %X x %X y %X n %X)",
		ins.Opcode, ins.Primary, ins.X, ins.Y, ins.N)
}
