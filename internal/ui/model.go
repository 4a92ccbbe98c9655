// ABOUTME: Bubbletea model for the synthesis TUI
// ABOUTME: Tracks the tone sequence, sink and playback progress
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carrierpigeondev/Sound-Synthesis/internal/version"
	"github.com/carrierpigeondev/Sound-Synthesis/pkg/audio"
)

const (
	barWidth      = 40
	maxToneLines  = 8
	tickInterval  = 100 * time.Millisecond
	toneNameWidth = 42
)

// Model represents the TUI state
type Model struct {
	tones      []audio.Tone
	sampleRate int
	harsh      bool
	target     string

	played int
	total  int

	started  time.Time
	elapsed  time.Duration
	done     bool
	err      error
	quitting bool

	quit chan struct{}
}

// ProgressMsg reports how many bytes of the buffer the device has consumed
type ProgressMsg struct {
	Played int
	Total  int
}

// DoneMsg reports that the sink finished, with its error if any
type DoneMsg struct {
	Err error
}

type tickMsg time.Time

// Init starts the elapsed-time ticker
func (m Model) Init() tea.Cmd {
	return tickEvery()
}

func tickEvery() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			if m.quit != nil {
				select {
				case m.quit <- struct{}{}:
				default:
				}
			}
			return m, tea.Quit
		}

	case tickMsg:
		if m.done {
			return m, nil
		}
		m.elapsed = time.Time(msg).Sub(m.started)
		return m, tickEvery()

	case ProgressMsg:
		m.played = msg.Played
		m.total = msg.Total

	case DoneMsg:
		m.done = true
		m.err = msg.Err
		if msg.Err == nil && m.total > 0 {
			m.played = m.total
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting && !m.done {
		return "Detached, playback continues until the sequence ends...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))

	var b strings.Builder

	b.WriteString(titleStyle.Render(version.String()))
	b.WriteString("\n")

	mode := "clean"
	if m.harsh {
		mode = "harsh"
	}
	b.WriteString(headerStyle.Render("Mode: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s, %d Hz", mode, m.sampleRate)))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Sink: "))
	b.WriteString(valueStyle.Render(m.target))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("Tones (%d, %s)", len(m.tones), formatSeconds(totalDuration(m.tones)))))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(renderTones(m.tones)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("[%s] %3d%%  %s\n",
		renderBar(m.played, m.total, barWidth), percent(m.played, m.total), formatSeconds(m.elapsed.Seconds())))

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.done:
		b.WriteString(valueStyle.Render("Done"))
		b.WriteString("\n")
	default:
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press 'q' or Ctrl+C to detach"))
		b.WriteString("\n")
	}

	return b.String()
}

func renderTones(tones []audio.Tone) string {
	var b strings.Builder
	for i, tone := range tones {
		if i == maxToneLines {
			fmt.Fprintf(&b, "  ... and %d more\n", len(tones)-maxToneLines)
			break
		}
		line := fmt.Sprintf("%.2f Hz for %s", tone.Frequency, formatSeconds(tone.Duration))
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, truncate(line, toneNameWidth))
	}
	return b.String()
}

func totalDuration(tones []audio.Tone) float64 {
	var total float64
	for _, tone := range tones {
		total += tone.Duration
	}
	return total
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.2fs", s)
}

func percent(value, max int) int {
	if max <= 0 {
		return 0
	}
	p := value * 100 / max
	if p > 100 {
		p = 100
	}
	return p
}

func renderBar(value, max, width int) string {
	filled := 0
	if max > 0 {
		filled = (value * width) / max
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
