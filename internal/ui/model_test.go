// ABOUTME: Tests for TUI key handling and display helpers
// ABOUTME: Drives the model against a real engine, no terminal required
package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavkit/wavkit-go/pkg/sampler"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyTogglesLoopMode(t *testing.T) {
	p := sampler.New()
	m := NewModel(p)

	m.handleKey(key("l"))
	if p.LoopMode() != sampler.LoopForward {
		t.Errorf("loop = %v, want forward", p.LoopMode())
	}
	m.handleKey(key("l"))
	if p.LoopMode() != sampler.LoopPingPong {
		t.Errorf("loop = %v, want pingpong", p.LoopMode())
	}
	m.handleKey(key("l"))
	if p.LoopMode() != sampler.LoopOff {
		t.Errorf("loop = %v, want off", p.LoopMode())
	}
}

func TestKeyTogglesInterpolation(t *testing.T) {
	p := sampler.New() // starts at cubic
	m := NewModel(p)

	m.handleKey(key("i"))
	if p.InterpolationQuality() != sampler.QualityNone {
		t.Errorf("quality = %v, want none", p.InterpolationQuality())
	}
	m.handleKey(key("i"))
	if p.InterpolationQuality() != sampler.QualityLinear {
		t.Errorf("quality = %v, want linear", p.InterpolationQuality())
	}
}

func TestKeyAdjustsSpeedAndPitch(t *testing.T) {
	p := sampler.New()
	m := NewModel(p)

	m.handleKey(key("+"))
	if got := p.Speed(); got != 1.1 {
		t.Errorf("speed = %v, want 1.1", got)
	}
	m.handleKey(key("]"))
	if got := p.Pitch(); got != 1.1 {
		t.Errorf("pitch = %v, want 1.1", got)
	}

	m.handleKey(key("0"))
	if p.Speed() != 1 || p.Pitch() != 1 {
		t.Errorf("reset = speed %v, pitch %v, want 1, 1",
			p.Speed(), p.Pitch())
	}
}

func TestKeyTogglesReverse(t *testing.T) {
	p := sampler.New()
	m := NewModel(p)

	m.handleKey(key("r"))
	if !p.Reverse() {
		t.Error("reverse not enabled")
	}
	m.handleKey(key("r"))
	if p.Reverse() {
		t.Error("reverse not disabled")
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(sampler.New())

	for _, k := range []string{"q"} {
		_, cmd := m.handleKey(key(k))
		if cmd == nil {
			t.Errorf("key %q: expected quit command", k)
		}
	}
}

func TestSpaceWithoutFileStaysStopped(t *testing.T) {
	p := sampler.New()
	m := NewModel(p)

	m.handleKey(key(" "))
	if p.State() != sampler.Stopped {
		t.Errorf("state = %v, want Stopped", p.State())
	}
}

func TestViewBeforeSizing(t *testing.T) {
	m := NewModel(sampler.New())
	if m.View() != "Loading..." {
		t.Errorf("View before WindowSizeMsg = %q", m.View())
	}
}

func TestViewRendersUnloadedState(t *testing.T) {
	m := NewModel(sampler.New())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	view := m.View()
	if view == "" || view == "Loading..." {
		t.Errorf("unexpected view %q", view)
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		value    int
		max      int
		width    int
		expected string
	}{
		{0, 100, 4, "░░░░"},
		{50, 100, 4, "██░░"},
		{100, 100, 4, "████"},
		{150, 100, 4, "████"}, // clamped
		{-5, 100, 4, "░░░░"},  // clamped
	}

	for _, tt := range tests {
		result := renderBar(tt.value, tt.max, tt.width)
		if result != tt.expected {
			t.Errorf("renderBar(%d, %d, %d) = %q, expected %q",
				tt.value, tt.max, tt.width, result, tt.expected)
		}
	}
}

func TestTruncateFunction(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"this is longer than allowed", 10, "this is..."},
		{"", 10, ""},
		{"abcd", 4, "abcd"},
		{"abcde", 4, "a..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q",
				tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestChannelNameFunction(t *testing.T) {
	if channelName(1) != "Mono" {
		t.Error("expected Mono for 1 channel")
	}
	if channelName(2) != "Stereo" {
		t.Error("expected Stereo for 2 channels")
	}
}
