// ABOUTME: Entry point for the sine tone synthesizer
// ABOUTME: Parses tones and flags, then plays or writes the sequence
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/carrierpigeondev/Sound-Synthesis/internal/app"
	"github.com/carrierpigeondev/Sound-Synthesis/internal/config"
	"github.com/carrierpigeondev/Sound-Synthesis/internal/logging"
	"github.com/carrierpigeondev/Sound-Synthesis/internal/version"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio/output"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The env file seeds flag defaults, so it is read before flag.Parse
	cfg, err := config.Load(config.EnvFileFromArgs(os.Args[1:]))
	if err != nil {
		return err
	}

	cfg.RegisterFlags(flag.CommandLine)
	flag.String("env", "", "Load SYNTH_* variables from this .env file")
	listDevices := flag.Bool("list-devices", false, "List playback devices and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FREQ:SECONDS...\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Plays each tone in order, e.g. %s 440:0.5 0:0.25 880:0.5\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return nil
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Quiet:  cfg.TUI,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if *listDevices {
		return printDevices(logger)
	}

	tones, err := audio.ParseSequence(flag.Args())
	if err != nil {
		flag.Usage()
		return err
	}
	cfg.Tones = tones

	logger.Debug("Starting", zap.String("version", version.Version), zap.Int("tones", len(tones)))

	return app.New(cfg, logger).Run()
}

func printDevices(logger *zap.Logger) error {
	devices, err := output.PlaybackDevices()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		logger.Warn("No playback devices found")
		return nil
	}
	for _, d := range devices {
		fmt.Printf("%s\t%s\n", d.ID, d.Name)
	}
	return nil
}
