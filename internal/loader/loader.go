// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ErrEmptyROM is returned for a ROM file without any content.
var ErrEmptyROM = errors.New("ROM file is empty")

// Load reads a ROM file from disk and validates that it fits into
// program memory.
func Load(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(rom) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyROM, path)
	}
	if len(rom) > chip8.MaxROMSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, %d available",
			chip8.ErrROMTooLarge, path, len(rom), chip8.MaxROMSize)
	}

	return rom, nil
}
