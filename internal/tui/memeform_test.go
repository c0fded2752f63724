package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

func testMemeOverlay() models.MemeOverlay {
	return models.MemeOverlay{
		ID:         "gif-7",
		URL:        "https://media.giphy.com/gif-7/giphy.gif",
		Size:       models.OverlaySize{Width: 150, Height: 84},
		Visibility: models.TimeRange{Start: 0, End: 5},
	}
}

func TestMemeFormSubmit(t *testing.T) {
	m := NewMemeFormModel("gif-7", testMemeOverlay(), 30)
	m.setSize(100, 40)

	m.startInput.SetValue("2.0")
	m.endInput.SetValue("9.0")
	m.focusedField = MemeFormFieldSave

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from submit")
	}
	done, ok := cmd().(memeFormDoneMsg)
	if !ok {
		t.Fatalf("expected memeFormDoneMsg, got %T", cmd())
	}
	if done.editID != "gif-7" {
		t.Errorf("expected editID gif-7, got %q", done.editID)
	}
	// Size applies to both axes
	if done.size.Width != 150 || done.size.Height != 150 {
		t.Errorf("expected size 150x150, got %.0fx%.0f", done.size.Width, done.size.Height)
	}
	if done.visibility.Start != 2 || done.visibility.End != 9 {
		t.Errorf("expected visibility [2, 9], got [%.1f, %.1f]",
			done.visibility.Start, done.visibility.End)
	}
}

func TestMemeFormSizeStepsWithinBounds(t *testing.T) {
	m := NewMemeFormModel("gif-7", testMemeOverlay(), 30)
	m.focusedField = MemeFormFieldSize

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.size != 160 {
		t.Errorf("expected size 160 after one step, got %.0f", m.size)
	}

	m.size = maxMemeSize
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.size != maxMemeSize {
		t.Errorf("expected size capped at %.0f, got %.0f", maxMemeSize, m.size)
	}

	m.size = minMemeSize
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.size != minMemeSize {
		t.Errorf("expected size floored at %.0f, got %.0f", minMemeSize, m.size)
	}
}

func TestMemeFormRejectsInvertedWindow(t *testing.T) {
	m := NewMemeFormModel("gif-7", testMemeOverlay(), 30)
	m.startInput.SetValue("9.0")
	m.endInput.SetValue("2.0")
	m.focusedField = MemeFormFieldSave

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for an inverted visibility window")
	}
	if m.errorMessage == "" {
		t.Error("expected an error message")
	}
}

func TestMemeFormClampsWindowToDuration(t *testing.T) {
	m := NewMemeFormModel("gif-7", testMemeOverlay(), 10)
	m.startInput.SetValue("4.0")
	m.endInput.SetValue("88.0")
	m.focusedField = MemeFormFieldSave

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from submit")
	}
	done := cmd().(memeFormDoneMsg)
	if done.visibility.End != 10 {
		t.Errorf("expected window end clamped to 10, got %.1f", done.visibility.End)
	}
}
