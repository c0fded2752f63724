package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kartoza/kartoza-clip-studio/internal/memes"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
	"github.com/kartoza/kartoza-clip-studio/internal/timeline"
)

func testAsset(w, h int) memes.Asset {
	return memes.Asset{
		ID:     "gif-1",
		URL:    "https://media.giphy.com/gif-1/giphy.gif",
		Width:  w,
		Height: h,
	}
}

func testEditor() *EditorModel {
	m := NewEditorModel(models.Clip{
		ClipID:   "clip-1",
		Channel:  "kartoza",
		Duration: 60,
		Status:   models.ClipReady,
	})
	m.setSize(100, 40)
	return m
}

func mouseMsg(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestEditorTimelineDragMovesLeftHandle(t *testing.T) {
	m := testEditor()
	l := m.layout()

	// Press on the left handle at the track's left edge
	startX := int(l.surface.Origin)
	m, _ = m.Update(mouseMsg(startX, l.timelineY, tea.MouseActionPress))
	if m.trim.Dragging() != timeline.DragLeftHandle {
		t.Fatalf("expected left handle drag, got %v", m.trim.Dragging())
	}

	// Drag to the middle of the track
	midX := int(l.surface.Origin + l.surface.Width/2)
	m, _ = m.Update(mouseMsg(midX, l.timelineY, tea.MouseActionMotion))
	m, _ = m.Update(mouseMsg(midX, l.timelineY, tea.MouseActionRelease))

	st := m.trim.State()
	if st.Start < 25 || st.Start > 35 {
		t.Errorf("expected trim start near 30s, got %.2f", st.Start)
	}
	if st.End != 60 {
		t.Errorf("expected trim end unchanged at 60s, got %.2f", st.End)
	}
	if m.trim.Dragging() != timeline.DragNone {
		t.Error("expected drag to be released")
	}
}

func TestEditorTimelineScrubSeeksPlayhead(t *testing.T) {
	m := testEditor()
	l := m.layout()

	// Press away from both handles scrubs the playhead
	quarterX := int(l.surface.Origin + l.surface.Width/4)
	m, _ = m.Update(mouseMsg(quarterX, l.timelineY, tea.MouseActionPress))
	if m.trim.Dragging() != timeline.DragPlayhead {
		t.Fatalf("expected playhead scrub, got %v", m.trim.Dragging())
	}
	m, _ = m.Update(mouseMsg(quarterX, l.timelineY, tea.MouseActionRelease))

	st := m.trim.State()
	if st.Playhead < 10 || st.Playhead > 20 {
		t.Errorf("expected playhead near 15s, got %.2f", st.Playhead)
	}
}

func TestEditorOverlayDragCommitsOnRelease(t *testing.T) {
	m := testEditor()
	l := m.layout()

	added, err := m.overlays.AddText(models.DefaultTextOverlay("hello", 60))
	if err != nil {
		t.Fatalf("AddText() error = %v", err)
	}

	// Press on the overlay at frame center, drag right, release
	ox, oy := m.overlayCell(added.Position, l)
	m, _ = m.Update(mouseMsg(ox, oy, tea.MouseActionPress))
	if m.mode != mouseOverlay {
		t.Fatal("expected an overlay drag to start")
	}
	m, _ = m.Update(mouseMsg(ox+9, oy, tea.MouseActionMotion))
	m, _ = m.Update(mouseMsg(ox+9, oy, tea.MouseActionRelease))

	got, _ := m.overlays.Text(added.ID)
	if got.Position.X <= 50 {
		t.Errorf("expected overlay to move right of center, got X=%.1f", got.Position.X)
	}
	if got.Position.Y != 50 {
		t.Errorf("expected Y unchanged at 50, got %.1f", got.Position.Y)
	}
}

func TestEditorTrimNudgeKeys(t *testing.T) {
	m := testEditor()

	keyMsg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}}
	m, _ = m.Update(keyMsg)
	m, _ = m.Update(keyMsg)

	st := m.trim.State()
	if st.Start != 1.0 {
		t.Errorf("expected trim start 1.0 after two nudges, got %.2f", st.Start)
	}

	keyMsg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'<'}}
	m, _ = m.Update(keyMsg)
	st = m.trim.State()
	if st.End != 59.5 {
		t.Errorf("expected trim end 59.5, got %.2f", st.End)
	}
}

func TestEditorPlaybackLoopsWithinTrim(t *testing.T) {
	m := testEditor()
	m.trim.SetTrim(10, 20)

	keyMsg := tea.KeyMsg{Type: tea.KeySpace}
	m, cmd := m.Update(keyMsg)
	if !m.playing {
		t.Fatal("expected playback to start")
	}
	if cmd == nil {
		t.Fatal("expected a tick command")
	}

	// Force the playhead near the trim end; the next tick wraps to start
	m.trim.SetPlayhead(19.95)
	m, _ = m.Update(playTickMsg{})
	st := m.trim.State()
	if st.Playhead != 10 {
		t.Errorf("expected playhead to wrap to trim start 10, got %.2f", st.Playhead)
	}
}

func TestEditorSnapshotCapturesSession(t *testing.T) {
	m := testEditor()
	m.trim.SetTrim(5, 25)
	m.overlays.AddText(models.DefaultTextOverlay("snap", 60))

	snap := m.Snapshot(models.ExportSettings{Platform: "tiktok", Resolution: "720p", Quality: "High"})

	if snap.ClipID != "clip-1" {
		t.Errorf("expected clip-1, got %s", snap.ClipID)
	}
	if snap.Trim.Start != 5 || snap.Trim.End != 25 {
		t.Errorf("expected trim [5, 25], got [%.1f, %.1f]", snap.Trim.Start, snap.Trim.End)
	}
	if len(snap.Texts) != 1 {
		t.Fatalf("expected 1 text overlay, got %d", len(snap.Texts))
	}
	if snap.Settings.Platform != "tiktok" {
		t.Errorf("expected platform tiktok, got %s", snap.Settings.Platform)
	}

	// The snapshot is a copy; later edits must not leak into it
	m.overlays.AddText(models.DefaultTextOverlay("later", 60))
	if len(snap.Texts) != 1 {
		t.Error("expected snapshot to be isolated from later edits")
	}
}

func TestEditorAddMemeAssetKeepsAspect(t *testing.T) {
	m := testEditor()

	m.AddMemeAsset(testAsset(480, 270))

	gifs := m.overlays.Memes()
	if len(gifs) != 1 {
		t.Fatalf("expected 1 meme overlay, got %d", len(gifs))
	}
	if gifs[0].Size.Width != 150 {
		t.Errorf("expected width 150, got %.1f", gifs[0].Size.Width)
	}
	want := 150.0 * 270 / 480
	if gifs[0].Size.Height != want {
		t.Errorf("expected height %.2f, got %.2f", want, gifs[0].Size.Height)
	}
}

func TestEditorDeleteSelectedOverlay(t *testing.T) {
	m := testEditor()
	m.overlays.AddText(models.DefaultTextOverlay("one", 60))

	// Tab selects the overlay, d removes it
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.selected != 0 {
		t.Fatalf("expected selection 0, got %d", m.selected)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	if len(m.overlays.Texts()) != 0 {
		t.Error("expected overlay to be removed")
	}
}

func TestEditorEnterOnSelectedMemeOpensForm(t *testing.T) {
	m := testEditor()
	m.AddMemeAsset(testAsset(480, 270))
	memeID := m.overlays.Memes()[0].ID

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from enter on a selected meme")
	}

	open, ok := cmd().(openMemeFormMsg)
	if !ok {
		t.Fatalf("expected openMemeFormMsg, got %T", cmd())
	}
	if open.editID != memeID {
		t.Errorf("expected editID %s, got %s", memeID, open.editID)
	}
}

func TestEditorApplyMemeForm(t *testing.T) {
	m := testEditor()
	m.AddMemeAsset(testAsset(480, 270))
	memeID := m.overlays.Memes()[0].ID

	m.ApplyMemeForm(memeFormDoneMsg{
		editID:     memeID,
		size:       models.OverlaySize{Width: 220, Height: 220},
		visibility: models.TimeRange{Start: 3, End: 12},
	})
	if m.editErr != nil {
		t.Fatalf("unexpected error: %v", m.editErr)
	}

	gif := m.overlays.Memes()[0]
	if gif.Size.Width != 220 || gif.Size.Height != 220 {
		t.Errorf("expected size 220x220, got %.0fx%.0f", gif.Size.Width, gif.Size.Height)
	}
	if gif.Visibility.Start != 3 || gif.Visibility.End != 12 {
		t.Errorf("expected visibility [3, 12], got [%.1f, %.1f]",
			gif.Visibility.Start, gif.Visibility.End)
	}
}

func TestEditorApplyFormSurfacesUnknownID(t *testing.T) {
	m := testEditor()

	m.ApplyTextForm(textFormDoneMsg{editID: "missing", overlay: models.DefaultTextOverlay("x", 60)})
	if m.editErr == nil {
		t.Error("expected error for unknown text overlay id")
	}

	m.ApplyMemeForm(memeFormDoneMsg{editID: "missing", size: models.OverlaySize{Width: 100, Height: 100}})
	if m.editErr == nil {
		t.Error("expected error for unknown meme overlay id")
	}
}

func TestEditorApplyTextFormStyling(t *testing.T) {
	m := testEditor()
	added, err := m.overlays.AddText(models.DefaultTextOverlay("plain", 60))
	if err != nil {
		t.Fatal(err)
	}

	edited := added
	edited.Font = "Impact"
	edited.HasBackground = true
	edited.BackgroundColor = "#000000"
	edited.HasOutline = true
	edited.HasShadow = true
	m.ApplyTextForm(textFormDoneMsg{editID: added.ID, overlay: edited})
	if m.editErr != nil {
		t.Fatalf("unexpected error: %v", m.editErr)
	}

	got, _ := m.overlays.Text(added.ID)
	if got.Font != "Impact" {
		t.Errorf("expected font Impact, got %q", got.Font)
	}
	if !got.HasBackground || got.BackgroundColor != "#000000" {
		t.Errorf("expected black background, got has=%v color=%q", got.HasBackground, got.BackgroundColor)
	}
	if !got.HasOutline || !got.HasShadow {
		t.Errorf("expected outline and shadow enabled, got outline=%v shadow=%v",
			got.HasOutline, got.HasShadow)
	}
}
