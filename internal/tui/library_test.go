package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kartoza/kartoza-clip-studio/internal/config"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

func testServices() *Services {
	cfg := config.DefaultConfig()
	return &Services{Config: &cfg}
}

func loadedLibrary(t *testing.T) *LibraryModel {
	t.Helper()
	m := NewLibraryModel(testServices())
	m.setSize(100, 40)

	newM, _ := m.Update(clipsLoadedMsg{clips: []models.Clip{
		{ClipID: "clip-1", Channel: "kartoza", Duration: 30, Status: models.ClipReady},
		{ClipID: "clip-2", Channel: "kartoza", Duration: 45, Status: models.ClipReady},
		{ClipID: "clip-3", Channel: "kartoza", Duration: 12, Status: models.ClipProcessing},
	}})
	return newM
}

func TestLibraryLoadsClips(t *testing.T) {
	m := loadedLibrary(t)

	if m.loading {
		t.Error("expected loading to be false after clipsLoadedMsg")
	}
	if len(m.clips) != 3 {
		t.Fatalf("expected 3 clips, got %d", len(m.clips))
	}
	if m.selected != 0 {
		t.Errorf("expected selected to be 0, got %d", m.selected)
	}
}

func TestLibraryNavigationWraps(t *testing.T) {
	m := loadedLibrary(t)

	// Up from the first clip wraps to the last
	keyMsg := tea.KeyMsg{Type: tea.KeyUp}
	m, _ = m.Update(keyMsg)
	if m.selected != 2 {
		t.Errorf("expected selected to wrap to 2, got %d", m.selected)
	}

	// Down from the last wraps back
	keyMsg = tea.KeyMsg{Type: tea.KeyDown}
	m, _ = m.Update(keyMsg)
	if m.selected != 0 {
		t.Errorf("expected selected to wrap to 0, got %d", m.selected)
	}
}

func TestLibrarySelectReadyClip(t *testing.T) {
	m := loadedLibrary(t)
	m.selected = 1

	keyMsg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := m.Update(keyMsg)
	if cmd == nil {
		t.Fatal("expected command to be returned")
	}

	msg := cmd()
	selMsg, ok := msg.(clipSelectedMsg)
	if !ok {
		t.Fatalf("expected clipSelectedMsg, got %T", msg)
	}
	if selMsg.clip.ClipID != "clip-2" {
		t.Errorf("expected clip-2, got %s", selMsg.clip.ClipID)
	}
}

func TestLibraryIgnoresUnreadyClip(t *testing.T) {
	m := loadedLibrary(t)
	m.selected = 2 // still processing

	keyMsg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := m.Update(keyMsg)
	if cmd != nil {
		t.Error("expected no command for a clip that is not ready")
	}
}

func TestLibraryShowsError(t *testing.T) {
	m := NewLibraryModel(testServices())
	m.setSize(100, 40)

	m, _ = m.Update(clipsLoadedMsg{err: errors.New("service unavailable")})
	if m.err == nil {
		t.Error("expected error to be recorded")
	}

	view := m.View()
	if !containsString(view, "Error") {
		t.Error("expected view to show the error")
	}
}

func TestLibraryView(t *testing.T) {
	m := loadedLibrary(t)

	view := m.View()
	if !containsString(view, "clip-1") {
		t.Error("expected view to contain clip-1")
	}
	if !containsString(view, "Library") {
		t.Error("expected view to contain screen title")
	}
}

// Helper to check if a string contains a substring
func containsString(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
