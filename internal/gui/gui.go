// Package gui renders the interpreter display in a desktop window.
package gui

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrogolib/log"
)

const bytesPerPixel = 4 // RGBA

// Beeper controls the audio tone tied to the sound timer.
type Beeper interface {
	SetBeeping(on bool)
}

// Options configures the window.
type Options struct {
	Scale int    // window size multiplier for the 64x32 display
	Title string // window title
}

// Game drives the interpreter from the window event loop. Update advances
// emulation and input once per frame, Draw converts the framebuffer to
// RGBA pixels when it changed.
type Game struct {
	ctx    context.Context
	logger *log.Logger
	driver *driver.Driver
	beeper Beeper

	pixels []byte
}

var _ ebiten.Game = &Game{}

// Run opens the window and blocks until it is closed, the Escape key is
// pressed or the context is cancelled.
func Run(ctx context.Context, logger *log.Logger, drv *driver.Driver, beeper Beeper, opts Options) error {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	ebiten.SetWindowSize(chip8.FramebufferWidth*scale, chip8.FramebufferHeight*scale)
	ebiten.SetWindowTitle(opts.Title)

	game := &Game{
		ctx:    ctx,
		logger: logger,
		driver: drv,
		beeper: beeper,
		pixels: newPixelBuffer(),
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window loop: %w", err)
	}
	return nil
}

// Update handles input, advances emulation and syncs the beeper.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, pad := range keyMap {
		if ebiten.IsKeyPressed(key) {
			g.driver.KeyPress(pad)
		} else {
			g.driver.KeyRelease(pad)
		}
	}

	if err := g.driver.Tick(); err != nil {
		return fmt.Errorf("advancing emulation: %w", err)
	}

	if g.beeper != nil {
		g.beeper.SetBeeping(g.driver.ShouldBeep())
	}
	return nil
}

// Draw writes the cached pixels to the screen, refreshing the cache when
// the framebuffer changed since the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.driver.DisplayUpdated() {
		g.refreshPixels()
		g.driver.ClearDisplayUpdated()
	}
	screen.WritePixels(g.pixels)
}

// Layout renders at the native display resolution, ebiten scales it to
// the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return chip8.FramebufferWidth, chip8.FramebufferHeight
}

// refreshPixels converts the 1 byte per pixel framebuffer to RGBA.
func (g *Game) refreshPixels() {
	for i, pixel := range g.driver.Framebuffer() {
		var value byte
		if pixel != 0 {
			value = 0xFF
		}
		offset := i * bytesPerPixel
		g.pixels[offset] = value
		g.pixels[offset+1] = value
		g.pixels[offset+2] = value
	}
}

// newPixelBuffer allocates an opaque black RGBA buffer for the display.
func newPixelBuffer() []byte {
	pixels := make([]byte, chip8.FramebufferWidth*chip8.FramebufferHeight*bytesPerPixel)
	for i := bytesPerPixel - 1; i < len(pixels); i += bytesPerPixel {
		pixels[i] = 0xFF
	}
	return pixels
}
