package gui

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMapCoversPad(t *testing.T) {
	assert.Len(t, keyMap, 16)

	seen := map[byte]bool{}
	for _, pad := range keyMap {
		assert.True(t, pad <= 0xF)
		assert.False(t, seen[pad])
		seen[pad] = true
	}
	assert.Len(t, seen, 16)
}
