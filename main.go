// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/gui"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	drv, err := driver.New(logger, opts.CPUSpeed)
	if err != nil {
		return fmt.Errorf("creating driver: %w", err)
	}
	if err := drv.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM into interpreter: %w", err)
	}

	logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.Int("speed", opts.CPUSpeed),
	)

	var beeper gui.Beeper
	if !opts.Mute {
		b, err := audio.New()
		if err != nil {
			logger.Warn("Audio unavailable, continuing muted", log.Err(err))
		} else {
			beeper = b
			defer func() { _ = b.Close() }()
		}
	}

	guiOptions := gui.Options{
		Scale: opts.Scale,
		Title: "retrochip8 - " + filepath.Base(opts.Input),
	}
	return gui.Run(ctx, logger, drv, beeper, guiOptions)
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
