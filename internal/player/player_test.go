package player

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	hersenen "github.com/AliceLynxx/BewegendeHersenen"
)

func testAnimation(t *testing.T, frames int) *hersenen.Animation {
	t.Helper()
	data := make([][][]float64, 4)
	for y := range data {
		data[y] = make([][]float64, 4)
		for x := range data[y] {
			data[y][x] = make([]float64, frames)
			for ts := 0; ts < frames; ts++ {
				data[y][x][ts] = float64(ts%2) * float64(x+y)
			}
		}
	}
	vol, err := hersenen.NewVolume(data)
	if err != nil {
		t.Fatal(err)
	}
	an := hersenen.MustNew(hersenen.WithInterval(1))
	if err := an.LoadData(vol); err != nil {
		t.Fatal(err)
	}
	anim, err := an.CreateAnimation(hersenen.AnimationOptions{Title: "test"})
	if err != nil {
		t.Fatal(err)
	}
	return anim
}

func TestModelAdvancesOnTick(t *testing.T) {
	m := New(testAnimation(t, 3))
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.index != 1 {
		t.Errorf("index = %d, want 1 after tick", m.index)
	}

	// Ticks wrap around at the end of the sequence.
	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.index != 0 {
		t.Errorf("index = %d, want wraparound to 0", m.index)
	}
}

func TestModelPause(t *testing.T) {
	m := New(testAnimation(t, 3))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !m.paused {
		t.Fatal("space did not pause")
	}
	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.index != 0 {
		t.Errorf("index = %d, paused playback still advanced", m.index)
	}
}

func TestModelQuit(t *testing.T) {
	m := New(testAnimation(t, 2))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("q command = %v, want tea.Quit", msg)
	}
}

func TestViewRendersFrameAndStatus(t *testing.T) {
	m := New(testAnimation(t, 2))
	view := m.View()
	if !strings.Contains(view, "▀") {
		t.Error("view has no half-block cells")
	}
	if !strings.Contains(view, "frame 1/2") {
		t.Error("view has no frame counter")
	}
	if !strings.Contains(view, "test") {
		t.Error("view has no title")
	}
}

func TestRunRejectsEmptyAnimation(t *testing.T) {
	if err := Run(&hersenen.Animation{IntervalMS: 100}); err == nil {
		t.Error("empty animation accepted")
	}
}
