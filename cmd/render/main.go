// ABOUTME: Offline renderer for tone sequences
// ABOUTME: Writes WAV or FLAC files and optionally verifies them by decoding
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/carrierpigeondev/Sound-Synthesis/internal/app"
	"github.com/carrierpigeondev/Sound-Synthesis/internal/config"
	"github.com/carrierpigeondev/Sound-Synthesis/internal/logging"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio/decode"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/synth"
)

var (
	outPath  = flag.String("out", "", "Output file (.wav or .flac), required")
	rate     = flag.Int("rate", audio.DefaultSampleRate, "Sample rate in Hz")
	harsh    = flag.Bool("harsh", false, "Encode samples as UTF-8 codepoints")
	verify   = flag.Bool("verify", false, "Decode the written file and compare it with the composed buffer")
	logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -out FILE [flags] FREQ:SECONDS...\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{Level: *logLevel, Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := render(logger); err != nil {
		logger.Error("Render failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func render(logger *zap.Logger) error {
	tones, err := audio.ParseSequence(flag.Args())
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Output = *outPath
	cfg.SampleRate = *rate
	cfg.Harsh = *harsh
	cfg.Tones = tones
	if len(cfg.Tones) == 0 {
		cfg.Tones = []audio.Tone{config.DefaultTone}
	}

	if err := app.New(cfg, logger).Run(); err != nil {
		return err
	}

	if !*verify {
		return nil
	}
	return verifyFile(logger, cfg)
}

func verifyFile(logger *zap.Logger, cfg config.Config) error {
	want, err := synth.Compose(cfg.Tones, cfg.SampleRate, cfg.Harsh)
	if err != nil {
		return err
	}

	got, format, err := decode.File(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", cfg.Output, err)
	}

	rate, _ := synth.SequenceRate(cfg.Tones, cfg.SampleRate)
	if format != audio.Mono8(rate) {
		return fmt.Errorf("format mismatch: wrote %+v, read %+v", audio.Mono8(rate), format)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("sample mismatch: wrote %d frames, read %d", len(want), len(got))
	}

	logger.Info("Verified output",
		zap.String("path", cfg.Output),
		zap.Int("frames", len(got)),
		zap.Int("sample_rate", format.SampleRate))
	return nil
}
