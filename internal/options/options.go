// Package options contains the program options.
package options

// DefaultCPUSpeed is the instruction rate used when no -speed flag is
// given, a comfortable pace for most ROMs.
const DefaultCPUSpeed = 700

// DefaultScale is the window size multiplier used when no -scale flag
// is given.
const DefaultScale = 10

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	CPUSpeed int  // instructions per second
	Scale    int  // window size multiplier
	Mute     bool // disable audio output

	Debug bool // enable debug logging
	Quiet bool // only log errors
}
