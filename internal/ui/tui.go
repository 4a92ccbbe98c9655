// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program that shows synthesis progress
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

// Session describes what the TUI is showing
type Session struct {
	Tones      []audio.Tone
	SampleRate int
	Harsh      bool
	Target     string // device backend or output path
}

// NewModel creates a new TUI model. quit receives a value when the user
// detaches and may be nil.
func NewModel(s Session, quit chan struct{}) Model {
	return Model{
		tones:      s.Tones,
		sampleRate: s.SampleRate,
		harsh:      s.Harsh,
		target:     s.Target,
		started:    time.Now(),
		quit:       quit,
	}
}

// Start runs the TUI in the background. The returned channel yields the
// program's exit error once it stops.
func Start(s Session, quit chan struct{}) (*tea.Program, <-chan error) {
	p := tea.NewProgram(NewModel(s, quit))

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	return p, done
}
