// ABOUTME: Synthesis application orchestration
// ABOUTME: Composes the tone sequence and hands it to the configured sink
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carrierpigeondev/Sound-Synthesis/internal/config"
	"github.com/carrierpigeondev/Sound-Synthesis/internal/ui"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/sink"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/synth"
)

// Synth runs one synthesis invocation
type Synth struct {
	config  config.Config
	logger  *zap.Logger
	runID   string
	sink    sink.Sink
	tuiProg *tea.Program
}

// Option customizes a Synth
type Option func(*Synth)

// WithSink replaces the sink chosen from the configuration
func WithSink(s sink.Sink) Option {
	return func(a *Synth) {
		a.sink = s
	}
}

// New creates a synthesis run. Every log entry carries the run id.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *Synth {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()

	s := &Synth{
		config: cfg,
		logger: logger.With(zap.String("run_id", runID)),
		runID:  runID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the identifier attached to this run's logs
func (s *Synth) RunID() string {
	return s.runID
}

// Run composes the sequence and emits it to the sink
func (s *Synth) Run() error {
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tones := s.tones()
	rate := s.config.SampleRate
	playRate := s.playbackRate(tones)

	s.logger.Info("Composing sequence",
		zap.Int("tones", len(tones)),
		zap.Int("sample_rate", rate),
		zap.Bool("harsh", s.config.Harsh))

	start := time.Now()
	samples, err := synth.Compose(tones, rate, s.config.Harsh)
	if err != nil {
		s.logger.Error("Composition failed", zap.Error(err))
		return fmt.Errorf("failed to compose sequence: %w", err)
	}
	s.logger.Debug("Sequence composed",
		zap.Int("bytes", len(samples)),
		zap.Duration("elapsed", time.Since(start)))

	var (
		quit    chan struct{}
		tuiDone <-chan error
	)
	if s.config.TUI {
		quit = make(chan struct{}, 1)
		s.tuiProg, tuiDone = ui.Start(ui.Session{
			Tones:      tones,
			SampleRate: playRate,
			Harsh:      s.config.Harsh,
			Target:     s.target(),
		}, quit)
	}

	out := s.sink
	if out == nil {
		out = s.newSink()
	}

	s.logger.Info("Emitting sequence", zap.String("sink", s.target()), zap.Int("bytes", len(samples)))
	err = out.Emit(samples, audio.Mono8(playRate))

	if s.tuiProg != nil {
		s.tuiProg.Send(ui.DoneMsg{Err: err})
		if tuiErr := <-tuiDone; tuiErr != nil {
			s.logger.Warn("TUI exited with error", zap.Error(tuiErr))
		}
		select {
		case <-quit:
			s.logger.Debug("TUI detached before playback finished")
		default:
		}
	}

	if err != nil {
		s.logger.Error("Emit failed", zap.Error(err))
		return fmt.Errorf("failed to emit sequence: %w", err)
	}

	s.logger.Info("Sequence emitted", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (s *Synth) tones() []audio.Tone {
	if len(s.config.Tones) == 0 {
		s.logger.Info("No tones given, using default", zap.Stringer("tone", config.DefaultTone))
		return []audio.Tone{config.DefaultTone}
	}
	return s.config.Tones
}

// playbackRate picks the rate the buffer is emitted at. A sequence whose
// sounding tones share one effective rate plays at it; a mixed sequence plays
// at the requested rate and each raised tone is logged.
func (s *Synth) playbackRate(tones []audio.Tone) int {
	requested := s.config.SampleRate
	rate, uniform := synth.SequenceRate(tones, requested)
	if uniform {
		if rate != requested {
			s.logger.Info("Playing at the effective sample rate",
				zap.Int("sample_rate", requested),
				zap.Int("effective_rate", rate))
		}
		return rate
	}

	for i, tone := range tones {
		effective := synth.EffectiveSampleRate(tone.Frequency, requested)
		if effective > requested {
			s.logger.Warn("Tone rendered above the requested sample rate",
				zap.Int("index", i),
				zap.Stringer("tone", tone),
				zap.Int("sample_rate", requested),
				zap.Int("effective_rate", effective))
		}
	}
	return requested
}

func (s *Synth) newSink() sink.Sink {
	if s.config.Output != "" {
		return sink.NewFile(s.config.Output)
	}
	return sink.NewDevice(s.config.Backend, s.onProgress)
}

func (s *Synth) onProgress(played, total int) {
	if s.tuiProg != nil {
		s.tuiProg.Send(ui.ProgressMsg{Played: played, Total: total})
	}
}

func (s *Synth) target() string {
	if s.config.Output != "" {
		return s.config.Output
	}
	return "device (" + s.config.Backend + ")"
}
