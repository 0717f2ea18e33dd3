package gui

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNewPixelBuffer(t *testing.T) {
	pixels := newPixelBuffer()
	assert.Len(t, pixels, chip8.FramebufferWidth*chip8.FramebufferHeight*bytesPerPixel)

	// opaque black
	assert.Equal(t, byte(0x00), pixels[0])
	assert.Equal(t, byte(0xFF), pixels[3])
}

func TestRefreshPixels(t *testing.T) {
	logger := log.NewTestLogger(t)
	drv, err := driver.New(logger, 0)
	assert.NoError(t, err)

	fb := drv.Framebuffer()
	fb[0] = 1
	fb[5] = 1

	game := &Game{driver: drv, pixels: newPixelBuffer()}
	game.refreshPixels()

	assert.Equal(t, byte(0xFF), game.pixels[0])
	assert.Equal(t, byte(0xFF), game.pixels[1])
	assert.Equal(t, byte(0xFF), game.pixels[2])
	assert.Equal(t, byte(0xFF), game.pixels[3])

	assert.Equal(t, byte(0x00), game.pixels[1*bytesPerPixel])
	assert.Equal(t, byte(0xFF), game.pixels[5*bytesPerPixel])
}
