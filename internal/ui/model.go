// ABOUTME: Bubbletea model for the player TUI
// ABOUTME: Polls the engine for position and maps keys to transport controls
package ui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavkit/wavkit-go/pkg/sampler"
)

// tickMsg drives the position readout.
type tickMsg time.Time

const tickInterval = 100 * time.Millisecond

// Model represents the TUI state. The engine itself is the source of
// truth; the model only holds display-side state.
type Model struct {
	player *sampler.Player

	width  int
	height int
}

// NewModel creates a TUI model bound to a player.
func NewModel(player *sampler.Player) Model {
	return Model{player: player}
}

// Init starts the position ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		return m, tickCmd()
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.player

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if p.IsPlaying() {
			p.Pause()
		} else {
			p.Play()
		}
	case "s":
		p.Stop()
	case "r":
		p.SetReverse(!p.Reverse())
	case "l":
		p.SetLoopMode(nextLoopMode(p.LoopMode()))
	case "i":
		p.SetInterpolationQuality(nextQuality(p.InterpolationQuality()))
	case "+", "=":
		p.SetSpeed(p.Speed() + 0.1)
	case "-":
		p.SetSpeed(p.Speed() - 0.1)
	case "]":
		p.SetPitch(p.Pitch() + 0.1)
	case "[":
		p.SetPitch(p.Pitch() - 0.1)
	case "up":
		p.SetVolume(p.Volume() + 0.1)
	case "down":
		p.SetVolume(p.Volume() - 0.1)
	case "right":
		p.Seek(p.Position() + 0.05)
	case "left":
		p.Seek(p.Position() - 0.05)
	case "0":
		p.SetSpeed(1)
		p.SetPitch(1)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderFileInfo()
	s += m.renderTransport()
	s += m.renderParams()
	s += m.renderHelp()

	return s
}

// renderHeader renders the title bar
func (m Model) renderHeader() string {
	return "┌─ Wavkit ─────────────────────────────────────────────┐\n"
}

// renderFileInfo renders the loaded file and its format
func (m Model) renderFileInfo() string {
	p := m.player
	if !p.IsLoaded() {
		return "│ No file loaded                                       │\n"
	}

	name := filepath.Base(p.Path())
	if name == "." {
		name = "(memory)"
	}

	s := fmt.Sprintf("│ File:   %-45s │\n", truncate(name, 45))
	s += fmt.Sprintf("│ Format: %dHz %s %d-bit, %.2fs%-19s │\n",
		p.SourceSampleRate(), channelName(p.Channels()), p.BitDepth(),
		p.Duration(), "")
	return s
}

// renderTransport renders state and a position bar
func (m Model) renderTransport() string {
	p := m.player

	dir := ""
	if p.Reverse() {
		dir = " ◀ reverse"
	}

	bar := renderBar(int(p.Position()*100), 100, 30)
	return fmt.Sprintf("│ State:  %-10s%-35s│\n"+
		"│ Pos:    [%s] %3.0f%%%-7s │\n",
		p.State(), dir, bar, p.Position()*100, "")
}

// renderParams renders the tweakable playback parameters
func (m Model) renderParams() string {
	p := m.player
	return fmt.Sprintf("│ Speed: %.2fx  Pitch: %.2fx  Vol: %.1f%-15s │\n"+
		"│ Loop:  %-8s  Interp: %-6s%-19s │\n",
		p.Speed(), p.Pitch(), p.Volume(), "",
		p.LoopMode(), p.InterpolationQuality(), "")
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `├──────────────────────────────────────────────────────┤
│ space:Play/Pause s:Stop r:Reverse l:Loop i:Interp    │
│ +/-:Speed [/]:Pitch ↑/↓:Volume ←/→:Seek 0:Reset q:Quit│
└──────────────────────────────────────────────────────┘
`
}

// nextLoopMode cycles off → forward → pingpong → off.
func nextLoopMode(m sampler.LoopMode) sampler.LoopMode {
	switch m {
	case sampler.LoopOff:
		return sampler.LoopForward
	case sampler.LoopForward:
		return sampler.LoopPingPong
	default:
		return sampler.LoopOff
	}
}

// nextQuality cycles none → linear → cubic → none.
func nextQuality(q sampler.Quality) sampler.Quality {
	switch q {
	case sampler.QualityNone:
		return sampler.QualityLinear
	case sampler.QualityLinear:
		return sampler.QualityCubic
	default:
		return sampler.QualityNone
	}
}

// Utility functions
func renderBar(value, max, width int) string {
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func channelName(channels int) string {
	if channels == 1 {
		return "Mono"
	}
	return "Stereo"
}
