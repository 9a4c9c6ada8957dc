// Package player renders a composited frame sequence in the terminal.
// Each character cell shows two vertically stacked pixels using the upper
// half-block glyph, with true-color foreground and background.
package player

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	hersenen "github.com/AliceLynxx/BewegendeHersenen"
)

var statusStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

type tickMsg time.Time

// Model is the bubbletea model driving playback. Frames advance on an
// interval ticker and wrap around at the end; q or ctrl+c quits, space
// pauses.
type Model struct {
	anim   *hersenen.Animation
	index  int
	paused bool
}

// New creates a playback model for the animation.
func New(anim *hersenen.Animation) Model {
	return Model{anim: anim}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.anim.IntervalMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case tickMsg:
		if !m.paused {
			m.index = (m.index + 1) % len(m.anim.Frames)
		}
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	frame := m.anim.Frames[m.index]

	var b strings.Builder
	// Two raster rows per terminal row via the upper half-block.
	for y := 0; y < frame.Height(); y += 2 {
		for x := 0; x < frame.Width(); x++ {
			top := frame.GetPixel(x, y)
			bot := hersenen.Transparent
			if y+1 < frame.Height() {
				bot = frame.GetPixel(x, y+1)
			}
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bot)))
			b.WriteString(cell.Render("▀"))
		}
		b.WriteByte('\n')
	}

	title := m.anim.Title
	if title == "" {
		title = "hersenen"
	}
	state := "playing"
	if m.paused {
		state = "paused"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"%s | frame %d/%d | %dms | %s | space pause, q quit",
		title, m.index+1, len(m.anim.Frames), m.anim.IntervalMS, state)))
	b.WriteByte('\n')
	return b.String()
}

// Run plays the animation until the user quits.
func Run(anim *hersenen.Animation) error {
	if len(anim.Frames) == 0 {
		return fmt.Errorf("player: no frames to play")
	}
	_, err := tea.NewProgram(New(anim)).Run()
	return err
}

// hexColor formats a frame pixel as a #rrggbb string, compositing its
// alpha against black the way the encoders do for transparent overlays.
func hexColor(c hersenen.RGBA) string {
	r := uint8(c.R * c.A * 255)
	g := uint8(c.G * c.A * 255)
	b := uint8(c.B * c.A * 255)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
