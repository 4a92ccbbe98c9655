// ABOUTME: Invocation configuration
// ABOUTME: Loads defaults from the environment and .env files, binds CLI flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio/output"
)

// Environment variables read by Load
const (
	EnvSampleRate = "SYNTH_SAMPLE_RATE"
	EnvBackend    = "SYNTH_BACKEND"
	EnvHarsh      = "SYNTH_HARSH"
	EnvLogLevel   = "SYNTH_LOG_LEVEL"
	EnvLogFormat  = "SYNTH_LOG_FORMAT"
	EnvLogFile    = "SYNTH_LOG_FILE"
)

// DefaultTone is played when no tones are given
var DefaultTone = audio.Tone{Frequency: 500, Duration: 1}

// Config holds everything one invocation needs
type Config struct {
	SampleRate int
	Output     string // file path; empty plays on the device
	Harsh      bool
	Backend    string
	TUI        bool

	LogLevel  string
	LogFormat string
	LogFile   string

	Tones []audio.Tone
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		SampleRate: audio.DefaultSampleRate,
		Backend:    output.BackendOto,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// Load returns Default overridden by the environment. A non-empty envFile is
// loaded first; variables already set in the process win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := Default()

	rate, err := getEnvInt(EnvSampleRate, cfg.SampleRate)
	if err != nil {
		return Config{}, err
	}
	cfg.SampleRate = rate

	harsh, err := getEnvBool(EnvHarsh, cfg.Harsh)
	if err != nil {
		return Config{}, err
	}
	cfg.Harsh = harsh

	cfg.Backend = getEnv(EnvBackend, cfg.Backend)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.LogFile = getEnv(EnvLogFile, cfg.LogFile)

	return cfg, nil
}

// RegisterFlags binds the invocation flags to c, using its current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.SampleRate, "rate", c.SampleRate, "Sample rate in Hz")
	fs.StringVar(&c.Output, "out", c.Output, "Output file (.wav or .flac). If not specified, plays on the audio device")
	fs.BoolVar(&c.Harsh, "harsh", c.Harsh, "Encode samples as UTF-8 codepoints for a harsh, aliased sound")
	fs.StringVar(&c.Backend, "backend", c.Backend, "Audio backend for playback (oto, malgo)")
	fs.BoolVar(&c.TUI, "tui", c.TUI, "Show playback progress in a TUI")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log encoding (console, json)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Also write logs to this file")
}

// Validate checks the fields that do not depend on synthesis
func (c Config) Validate() error {
	var errs []error
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.SampleRate))
	}
	if c.Output == "" {
		switch c.Backend {
		case output.BackendOto, output.BackendMalgo:
		default:
			errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
		}
	}
	return errors.Join(errs...)
}

// EnvFileFromArgs finds the value of -env/--env in args without parsing
// the rest, so the file can seed flag defaults
func EnvFileFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "env="); ok {
			return value
		}
		if name == "env" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
