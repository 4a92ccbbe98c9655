// ABOUTME: Tests for TUI model and state management
// ABOUTME: Tests progress updates, completion, detaching and rendering
package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

func testSession() Session {
	return Session{
		Tones: []audio.Tone{
			{Frequency: 440, Duration: 0.5},
			{Frequency: 0, Duration: 0.25},
		},
		SampleRate: 16000,
		Target:     "oto",
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestNewModel(t *testing.T) {
	model := NewModel(testSession(), nil)

	if model.done {
		t.Error("expected done to be false initially")
	}
	if model.played != 0 || model.total != 0 {
		t.Errorf("expected empty progress, got %d/%d", model.played, model.total)
	}
	if len(model.tones) != 2 {
		t.Errorf("expected 2 tones, got %d", len(model.tones))
	}
}

func TestProgressMsg(t *testing.T) {
	model := NewModel(testSession(), nil)

	model, cmd := update(t, model, ProgressMsg{Played: 4000, Total: 12000})

	if cmd != nil {
		t.Error("progress should not schedule a command")
	}
	if model.played != 4000 || model.total != 12000 {
		t.Errorf("expected 4000/12000, got %d/%d", model.played, model.total)
	}
	if !strings.Contains(model.View(), " 33%") {
		t.Errorf("view should show 33%% progress:\n%s", model.View())
	}
}

func TestDoneMsg(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
		played   int
	}{
		{"success", nil, "Done", 12000},
		{"failure", errors.New("device gone"), "Error: device gone", 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewModel(testSession(), nil)
			model, _ = update(t, model, ProgressMsg{Played: 6000, Total: 12000})

			model, cmd := update(t, model, DoneMsg{Err: tt.err})

			if !model.done {
				t.Error("expected done after DoneMsg")
			}
			if cmd == nil {
				t.Error("expected quit command after DoneMsg")
			}
			if model.played != tt.played {
				t.Errorf("expected played %d, got %d", tt.played, model.played)
			}
			if !strings.Contains(model.View(), tt.expected) {
				t.Errorf("view missing %q:\n%s", tt.expected, model.View())
			}
		})
	}
}

func TestTickStopsWhenDone(t *testing.T) {
	model := NewModel(testSession(), nil)

	model, cmd := update(t, model, tickMsg(model.started.Add(1500*time.Millisecond)))
	if cmd == nil {
		t.Error("expected next tick while running")
	}
	if model.elapsed != 1500*time.Millisecond {
		t.Errorf("expected elapsed 1.5s, got %v", model.elapsed)
	}

	model, _ = update(t, model, DoneMsg{})
	_, cmd = update(t, model, tickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected no tick after done")
	}
}

func TestQuitKeySignals(t *testing.T) {
	quit := make(chan struct{}, 1)
	model := NewModel(testSession(), quit)

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if !model.quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	select {
	case <-quit:
	default:
		t.Error("expected quit signal")
	}

	// A second press must not block on the full channel
	update(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
}

func TestViewListsTones(t *testing.T) {
	session := testSession()
	session.Harsh = true
	view := NewModel(session, nil).View()

	for _, want := range []string{"harsh, 16000 Hz", "oto", "Tones (2, 0.75s)", "440.00 Hz for 0.50s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderTonesTruncatesList(t *testing.T) {
	tones := make([]audio.Tone, maxToneLines+3)
	for i := range tones {
		tones[i] = audio.Tone{Frequency: 100, Duration: 0.1}
	}

	out := renderTones(tones)

	if !strings.Contains(out, "... and 3 more") {
		t.Errorf("expected overflow line, got:\n%s", out)
	}
	if strings.Count(out, "\n") != maxToneLines+1 {
		t.Errorf("expected %d lines, got %d", maxToneLines+1, strings.Count(out, "\n"))
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		value, max int
		filled     int
	}{
		{0, 100, 0},
		{50, 100, 5},
		{100, 100, 10},
		{150, 100, 10},
		{5, 0, 0},
	}

	for _, tt := range tests {
		bar := renderBar(tt.value, tt.max, 10)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("renderBar(%d, %d) filled %d, want %d", tt.value, tt.max, got, tt.filled)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != 10 {
			t.Errorf("renderBar(%d, %d) width %d, want 10", tt.value, tt.max, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate kept %q", got)
	}
	if got := truncate("a much longer string", 10); got != "a much ..." {
		t.Errorf("truncate = %q, want %q", got, "a much ...")
	}
}
