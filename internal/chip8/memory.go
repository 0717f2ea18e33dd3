package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
// The 4KB address space is laid out as:
//
//	0x000-0x1FF: interpreter area, hosts the font table at 0x050
//	0x200-0xFFF: program ROM and work RAM
const (
	// MemorySize is the total amount of addressable memory in bytes.
	MemorySize = 4096

	// FontAddress is the memory address where the built-in font table starts.
	FontAddress = 0x050

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxROMSize is the largest program that fits between ProgramStart and
	// the end of memory.
	MaxROMSize = MemorySize - ProgramStart
)

// fontSet contains the glyphs for the hexadecimal digits 0-F.
// Each glyph is 5 bytes tall and 8 pixels wide, of which the upper 4 are used.
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the CHIP-8's 4KB of RAM with bounds-checked access.
// The capacity is fixed at construction, all out of range accesses
// return an error instead of panicking on malformed ROM behavior.
type Memory struct {
	ram [MemorySize]byte
}

// NewMemory returns zeroed memory with the font table loaded at FontAddress.
func NewMemory() (*Memory, error) {
	mem := &Memory{}
	if err := mem.loadFont(); err != nil {
		return nil, fmt.Errorf("loading font table: %w", err)
	}
	return mem, nil
}

// ReadByte reads a single byte from the given address.
func (m *Memory) ReadByte(address int) (byte, error) {
	if address < 0 || address >= MemorySize {
		return 0, fmt.Errorf("%w: address %04X", ErrMemoryOutOfBounds, address)
	}
	return m.ram[address], nil
}

// ReadWord reads a big-endian 16-bit word starting at the given address.
func (m *Memory) ReadWord(address int) (uint16, error) {
	if address < 0 || address+1 >= MemorySize {
		return 0, fmt.Errorf("%w: address %04X", ErrMemoryOutOfBounds, address)
	}
	return uint16(m.ram[address])<<8 | uint16(m.ram[address+1]), nil
}

// ReadRange copies length bytes starting at the given address.
func (m *Memory) ReadRange(address, length int) ([]byte, error) {
	if address < 0 || length < 0 || address+length > MemorySize {
		return nil, fmt.Errorf("%w: address %04X length %d", ErrMemoryOutOfBounds, address, length)
	}
	buf := make([]byte, length)
	copy(buf, m.ram[address:address+length])
	return buf, nil
}

// WriteByte writes a single byte to the given address.
func (m *Memory) WriteByte(address int, value byte) error {
	if address < 0 || address >= MemorySize {
		return fmt.Errorf("%w: address %04X", ErrMemoryOutOfBounds, address)
	}
	m.ram[address] = value
	return nil
}

// WriteRange writes data starting at the given address. The write is
// whole-or-nothing: if the data would exceed the memory capacity, no byte
// is written.
func (m *Memory) WriteRange(address int, data []byte) error {
	if address < 0 || address+len(data) > MemorySize {
		return fmt.Errorf("%w: address %04X length %d", ErrMemoryOutOfBounds, address, len(data))
	}
	copy(m.ram[address:], data)
	return nil
}

func (m *Memory) loadFont() error {
	return m.WriteRange(FontAddress, fontSet[:])
}
