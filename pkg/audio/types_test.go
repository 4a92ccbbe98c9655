// ABOUTME: Tests for audio types
// ABOUTME: Tests tone parsing, format validation and sample conversion
package audio

import (
	"errors"
	"testing"
)

func TestParseTone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Tone
		wantErr  bool
	}{
		{"whole seconds", "500:1", Tone{500, 1}, false},
		{"fraction", "440:0.25", Tone{440, 0.25}, false},
		{"zero frequency", "0:1", Tone{0, 1}, false},
		{"zero duration", "500:0", Tone{500, 0}, false},
		{"spaces", " 600 : 0.5 ", Tone{600, 0.5}, false},
		{"missing duration", "500", Tone{}, true},
		{"not a number", "a:1", Tone{}, true},
		{"negative frequency", "-5:1", Tone{}, true},
		{"negative duration", "500:-1", Tone{}, true},
		{"nan", "NaN:1", Tone{}, true},
		{"inf", "500:Inf", Tone{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTone(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, result)
				}
				if !errors.Is(err, ErrInvalidTone) {
					t.Errorf("expected ErrInvalidTone, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence([]string{"500:0.1", "600:0.1", "500:0.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Tone{{500, 0.1}, {600, 0.1}, {500, 0.1}}
	if len(seq) != len(expected) {
		t.Fatalf("expected %d tones, got %d", len(expected), len(seq))
	}
	for i := range expected {
		if seq[i] != expected[i] {
			t.Errorf("tone %d: expected %v, got %v", i, expected[i], seq[i])
		}
	}

	if _, err := ParseSequence([]string{"500:1", "bad"}); err == nil {
		t.Error("expected error for malformed tone in sequence")
	}
}

func TestToneString(t *testing.T) {
	if s := (Tone{Frequency: 440, Duration: 0.25}).String(); s != "440:0.25" {
		t.Errorf("expected 440:0.25, got %s", s)
	}
}

func TestFormatValidate(t *testing.T) {
	if err := Mono8(DefaultSampleRate).Validate(); err != nil {
		t.Errorf("expected default format to be valid: %v", err)
	}

	invalid := []Format{
		{SampleRate: 0, Channels: 1, BitDepth: 8},
		{SampleRate: 16000, Channels: 2, BitDepth: 8},
		{SampleRate: 16000, Channels: 1, BitDepth: 16},
	}
	for _, f := range invalid {
		if err := f.Validate(); err == nil {
			t.Errorf("expected %+v to be rejected", f)
		}
	}
}

func TestSampleFromUint8(t *testing.T) {
	tests := []struct {
		name     string
		input    uint8
		expected int32
	}{
		{"silence", Silence, 0},
		{"rest", Rest, -1},
		{"max", 255, 127},
		{"min", 0, -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := SampleFromUint8(tt.input); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSampleToUint8(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected uint8
	}{
		{"zero", 0, Silence},
		{"max", 127, 255},
		{"min", -128, 0},
		{"clamp high", 1000, 255},
		{"clamp low", -1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := SampleToUint8(tt.input); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestRoundTripUint8(t *testing.T) {
	for v := 0; v <= 255; v++ {
		original := uint8(v)
		if result := SampleToUint8(SampleFromUint8(original)); result != original {
			t.Errorf("round-trip failed: %d -> %d", original, result)
		}
	}
}
