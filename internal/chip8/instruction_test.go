package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint16
		primary byte
		x       int
		y       int
		n       byte
		nn      byte
		nnn     uint16
	}{
		{"all fields", 0xABCD, 0xA, 0xB, 0xC, 0xD, 0xCD, 0xBCD},
		{"zero", 0x0000, 0x0, 0x0, 0x0, 0x0, 0x00, 0x000},
		{"all ones", 0xFFFF, 0xF, 0xF, 0xF, 0xF, 0xFF, 0xFFF},
		{"jump", 0x1234, 0x1, 0x2, 0x3, 0x4, 0x34, 0x234},
		{"draw", 0xD125, 0xD, 0x1, 0x2, 0x5, 0x25, 0x125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Decode(tt.opcode)

			assert.Equal(t, tt.opcode, ins.Opcode)
			assert.Equal(t, tt.primary, ins.Primary)
			assert.Equal(t, tt.x, ins.X)
			assert.Equal(t, tt.y, ins.Y)
			assert.Equal(t, tt.n, ins.N)
			assert.Equal(t, tt.nn, ins.NN)
			assert.Equal(t, tt.nnn, ins.NNN)
		})
	}
}

func TestMnemonic(t *testing.T) {
	// spot check against the instruction table
	assert.NotEmpty(t, Mnemonic(0x00E0)) // cls
	assert.NotEmpty(t, Mnemonic(0x1234)) // jp
	assert.NotEmpty(t, Mnemonic(0xD125)) // drw
}
