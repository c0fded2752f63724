package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-clip-studio/internal/export"
	"github.com/kartoza/kartoza-clip-studio/internal/memes"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
	"github.com/kartoza/kartoza-clip-studio/internal/overlay"
	"github.com/kartoza/kartoza-clip-studio/internal/timeline"
)

// playTickMsg advances the playhead during playback
type playTickMsg time.Time

const playTickInterval = 100 * time.Millisecond

// mouseMode tracks what the active mouse drag is manipulating
type mouseMode int

const (
	mouseIdle mouseMode = iota
	mouseTrim
	mouseOverlay
)

// EditorModel is the clip editing screen: trim timeline, overlay
// placement, and playback preview.
type EditorModel struct {
	clip models.Clip

	trim     *timeline.Controller
	overlays *overlay.Model

	playing bool

	// Active mouse interaction
	mode      mouseMode
	drag      *overlay.Drag
	dragID    string
	dragIsGIF bool
	pressX    int
	pressY    int

	// Overlay selection for keyboard editing
	selected int

	// Last overlay mutation failure, shown until the next edit
	editErr error

	// Reused across playback ticks
	visTexts []models.TextOverlay
	visMemes []models.MemeOverlay

	width  int
	height int
}

// NewEditorModel creates an editor for the given clip
func NewEditorModel(clip models.Clip) *EditorModel {
	ctrl := timeline.NewController(clip.Duration)
	// Terminal cells are far coarser than touch points
	ctrl.HitRadius = 3

	return &EditorModel{
		clip:     clip,
		trim:     ctrl,
		overlays: overlay.NewModel(clip.Duration),
		selected: -1,
	}
}

func (m *EditorModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// Init initializes the editor
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Duration returns the source clip duration
func (m *EditorModel) Duration() float64 {
	return m.clip.Duration
}

// TrimDuration returns the current trim selection length
func (m *EditorModel) TrimDuration() float64 {
	return m.trim.Range().Duration()
}

// Snapshot captures the session for export submission
func (m *EditorModel) Snapshot(settings models.ExportSettings) export.Snapshot {
	texts := make([]models.TextOverlay, len(m.overlays.Texts()))
	copy(texts, m.overlays.Texts())
	gifs := make([]models.MemeOverlay, len(m.overlays.Memes()))
	copy(gifs, m.overlays.Memes())

	return export.Snapshot{
		ClipID:   m.clip.ClipID,
		Trim:     m.trim.Range(),
		Texts:    texts,
		Memes:    gifs,
		Settings: settings,
	}
}

// ApplyTextForm commits a text overlay add or edit from the form screen
func (m *EditorModel) ApplyTextForm(msg textFormDoneMsg) {
	if msg.editID == "" {
		_, m.editErr = m.overlays.AddText(msg.overlay)
		return
	}
	o := msg.overlay
	m.editErr = m.overlays.UpdateText(msg.editID, overlay.TextPatch{
		Text:            &o.Text,
		Font:            &o.Font,
		FontSize:        &o.FontSize,
		Color:           &o.Color,
		BackgroundColor: &o.BackgroundColor,
		HasBackground:   &o.HasBackground,
		HasOutline:      &o.HasOutline,
		OutlineColor:    &o.OutlineColor,
		HasShadow:       &o.HasShadow,
		Alignment:       &o.Alignment,
		Visibility:      &o.Visibility,
	})
}

// ApplyMemeForm commits a size/window edit of a placed GIF
func (m *EditorModel) ApplyMemeForm(msg memeFormDoneMsg) {
	m.editErr = m.overlays.UpdateMeme(msg.editID, overlay.MemePatch{
		Size:       &msg.size,
		Visibility: &msg.visibility,
	})
}

// AddMemeAsset places a GIF from the library at the frame center
func (m *EditorModel) AddMemeAsset(asset memes.Asset) {
	width := 150.0
	height := 150.0
	if asset.Width > 0 && asset.Height > 0 {
		height = width * float64(asset.Height) / float64(asset.Width)
	}
	m.overlays.AddMeme(models.MemeOverlay{
		URL:  asset.URL,
		Size: models.OverlaySize{Width: width, Height: height},
	})
}

// editorLayout fixes the screen geometry so mouse coordinates map
// deterministically onto the timeline and the preview frame.
type editorLayout struct {
	previewTop  int
	previewLeft int
	previewW    int
	previewH    int
	timelineY   int
	surface     timeline.Surface
	frame       overlay.Frame
}

func (m *EditorModel) layout() editorLayout {
	w := m.width - 4
	if w > 100 {
		w = 100
	}
	if w < 40 {
		w = 40
	}

	l := editorLayout{
		previewTop:  6,
		previewLeft: 2,
		previewW:    w,
		previewH:    10,
	}
	l.timelineY = l.previewTop + l.previewH + 1
	l.surface = timeline.Surface{
		Origin: float64(l.previewLeft + 1),
		Width:  float64(l.previewW - 2),
	}
	l.frame = overlay.Frame{
		Width:  float64(l.previewW - 2),
		Height: float64(l.previewH - 2),
	}
	return l
}

// Update handles messages for the editor
func (m *EditorModel) Update(msg tea.Msg) (*EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case playTickMsg:
		if !m.playing {
			return m, nil
		}
		st := m.trim.State()
		next := st.Playhead + playTickInterval.Seconds()
		if next >= st.End {
			next = st.Start
		}
		m.trim.SetPlayhead(next)
		return m, playTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func playTick() tea.Cmd {
	return tea.Tick(playTickInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

// handleMouse routes pointer events to the trim controller or an overlay drag
func (m *EditorModel) handleMouse(msg tea.MouseMsg) (*EditorModel, tea.Cmd) {
	l := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// Timeline band: the track row plus one row either side
		if msg.Y >= l.timelineY-1 && msg.Y <= l.timelineY+1 {
			m.mode = mouseTrim
			m.trim.GestureStart(float64(msg.X), l.surface)
			m.trim.GestureMove(float64(msg.X), l.surface)
			return m, nil
		}
		// Preview frame: hit-test overlays, topmost first
		if m.insidePreview(msg.X, msg.Y, l) {
			if id, isGIF, pos, ok := m.overlayAt(msg.X, msg.Y, l); ok {
				m.mode = mouseOverlay
				m.dragID = id
				m.dragIsGIF = isGIF
				m.drag = overlay.StartDrag(pos, l.frame)
				m.pressX = msg.X
				m.pressY = msg.Y
			}
		}
		return m, nil

	case tea.MouseActionMotion:
		switch m.mode {
		case mouseTrim:
			m.trim.GestureMove(float64(msg.X), l.surface)
		case mouseOverlay:
			m.drag.Move(float64(msg.X-m.pressX), float64(msg.Y-m.pressY))
		}
		return m, nil

	case tea.MouseActionRelease:
		switch m.mode {
		case mouseTrim:
			m.trim.GestureEnd()
		case mouseOverlay:
			pos := m.drag.Release(l.frame)
			if m.dragIsGIF {
				m.overlays.UpdateMeme(m.dragID, overlay.MemePatch{Position: &pos})
			} else {
				m.overlays.UpdateText(m.dragID, overlay.TextPatch{Position: &pos})
			}
			m.drag = nil
			m.dragID = ""
		}
		m.mode = mouseIdle
		return m, nil
	}

	return m, nil
}

func (m *EditorModel) insidePreview(x, y int, l editorLayout) bool {
	return x > l.previewLeft && x < l.previewLeft+l.previewW-1 &&
		y > l.previewTop && y < l.previewTop+l.previewH-1
}

// overlayAt finds the topmost overlay near the given cell
func (m *EditorModel) overlayAt(x, y int, l editorLayout) (id string, isGIF bool, pos models.NormalizedPosition, ok bool) {
	check := func(oid string, p models.NormalizedPosition, gif bool) {
		ox, oy := m.overlayCell(p, l)
		if absInt(x-ox) <= 4 && absInt(y-oy) <= 1 {
			id, isGIF, pos, ok = oid, gif, p, true
		}
	}
	for _, o := range m.overlays.Texts() {
		check(o.ID, o.Position, false)
	}
	for _, o := range m.overlays.Memes() {
		check(o.ID, o.Position, true)
	}
	return id, isGIF, pos, ok
}

// overlayCell maps a normalized position to a terminal cell
func (m *EditorModel) overlayCell(p models.NormalizedPosition, l editorLayout) (int, int) {
	x := l.previewLeft + 1 + int(math.Round(p.X/100*float64(l.previewW-3)))
	y := l.previewTop + 1 + int(math.Round(p.Y/100*float64(l.previewH-3)))
	return x, y
}

// handleKey handles keyboard input
func (m *EditorModel) handleKey(msg tea.KeyMsg) (*EditorModel, tea.Cmd) {
	const nudge = 0.5
	st := m.trim.State()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q", "esc":
		return m, func() tea.Msg { return backToLibraryMsg{} }

	case " ":
		m.playing = !m.playing
		if m.playing {
			return m, playTick()
		}
		return m, nil

	case "left":
		m.trim.SetPlayhead(st.Playhead - 1)
		return m, nil

	case "right":
		m.trim.SetPlayhead(st.Playhead + 1)
		return m, nil

	case ",":
		m.trim.SetTrim(st.Start-nudge, st.End)
		return m, nil
	case ".":
		m.trim.SetTrim(st.Start+nudge, st.End)
		return m, nil
	case "<":
		m.trim.SetTrim(st.Start, st.End-nudge)
		return m, nil
	case ">":
		m.trim.SetTrim(st.Start, st.End+nudge)
		return m, nil

	case "tab":
		total := len(m.overlays.Texts()) + len(m.overlays.Memes())
		if total == 0 {
			m.selected = -1
			return m, nil
		}
		m.selected = (m.selected + 1) % total
		return m, nil

	case "t":
		return m, func() tea.Msg {
			return openTextFormMsg{overlay: models.DefaultTextOverlay("", m.clip.Duration)}
		}

	case "enter":
		if o, ok := m.selectedText(); ok {
			return m, func() tea.Msg {
				return openTextFormMsg{editID: o.ID, overlay: o}
			}
		}
		if o, ok := m.selectedMeme(); ok {
			return m, func() tea.Msg {
				return openMemeFormMsg{editID: o.ID, overlay: o}
			}
		}
		return m, nil

	case "d":
		if id, ok := m.selectedID(); ok {
			m.overlays.Remove(id)
			m.selected = -1
		}
		return m, nil

	case "g":
		return m, func() tea.Msg { return openMemeLibraryMsg{} }

	case "e":
		return m, func() tea.Msg { return openExportSetupMsg{} }
	}

	return m, nil
}

// selectedID resolves the keyboard selection to an overlay id
func (m *EditorModel) selectedID() (string, bool) {
	texts := m.overlays.Texts()
	if m.selected >= 0 && m.selected < len(texts) {
		return texts[m.selected].ID, true
	}
	gifs := m.overlays.Memes()
	idx := m.selected - len(texts)
	if idx >= 0 && idx < len(gifs) {
		return gifs[idx].ID, true
	}
	return "", false
}

// selectedText resolves the selection when it is a text overlay
func (m *EditorModel) selectedText() (models.TextOverlay, bool) {
	texts := m.overlays.Texts()
	if m.selected >= 0 && m.selected < len(texts) {
		return texts[m.selected], true
	}
	return models.TextOverlay{}, false
}

// selectedMeme resolves the selection when it is a meme overlay
func (m *EditorModel) selectedMeme() (models.MemeOverlay, bool) {
	gifs := m.overlays.Memes()
	idx := m.selected - len(m.overlays.Texts())
	if idx >= 0 && idx < len(gifs) {
		return gifs[idx], true
	}
	return models.MemeOverlay{}, false
}

// View renders the editor. The layout is fixed-position rather than
// centered so mouse rows map back onto the timeline and preview.
func (m *EditorModel) View() string {
	l := m.layout()
	st := m.trim.State()

	var b strings.Builder
	b.WriteString(RenderHeader("Editor"))
	b.WriteString("\n\n")

	// Info line
	title := m.clip.StreamTitle
	if title == "" {
		title = m.clip.ClipID
	}
	info := fmt.Sprintf("  %s  %s  trim %s - %s (%s)",
		TitleStyle.Render(title),
		LabelStyle.Render(formatDuration(m.clip.Duration)),
		ValueStyle.Render(formatTime(st.Start)),
		ValueStyle.Render(formatTime(st.End)),
		ValueStyle.Render(formatTime(st.End-st.Start)),
	)
	b.WriteString(info)
	b.WriteString("\n\n")

	b.WriteString(m.renderPreviewFrame(l, st))
	b.WriteString("\n")
	b.WriteString(m.renderTimeline(l, st))
	b.WriteString("\n")
	b.WriteString(m.renderOverlayList())
	b.WriteString("\n")
	if m.editErr != nil {
		b.WriteString("  " + ErrorStyle.Render(m.editErr.Error()))
		b.WriteString("\n")
	}

	helpText := "drag: trim/move • space: play • t: text • g: gif • tab: select • enter: edit • d: delete • e: export • esc: back"
	b.WriteString(RenderHelpFooter(helpText, m.width))

	return b.String()
}

// renderPreviewFrame draws the overlay canvas with the overlays visible
// at the current playhead
func (m *EditorModel) renderPreviewFrame(l editorLayout, st timeline.TrimState) string {
	innerW := l.previewW - 2
	innerH := l.previewH - 2

	// Blank canvas
	grid := make([][]rune, innerH)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", innerW))
	}

	place := func(cellX, cellY int, label string) {
		row := cellY - (l.previewTop + 1)
		col := cellX - (l.previewLeft + 1)
		if row < 0 {
			row = 0
		}
		if row >= innerH {
			row = innerH - 1
		}
		// Center the label on the overlay position
		col -= len(label) / 2
		for i, r := range label {
			c := col + i
			if c >= 0 && c < innerW {
				grid[row][c] = r
			}
		}
	}

	m.visTexts = m.overlays.VisibleTexts(st.Playhead, m.visTexts[:0])
	for _, o := range m.visTexts {
		label := o.Text
		if len(label) > innerW-2 {
			label = label[:innerW-2]
		}
		x, y := m.overlayCellLive(o.ID, o.Position, l)
		place(x, y, label)
	}

	m.visMemes = m.overlays.VisibleMemes(st.Playhead, m.visMemes[:0])
	for _, o := range m.visMemes {
		x, y := m.overlayCellLive(o.ID, o.Position, l)
		place(x, y, "[GIF]")
	}

	margin := strings.Repeat(" ", l.previewLeft)
	var b strings.Builder
	b.WriteString(margin + "┌" + strings.Repeat("─", innerW) + "┐\n")
	for _, row := range grid {
		b.WriteString(margin + "│" + string(row) + "│\n")
	}
	b.WriteString(margin + "└" + strings.Repeat("─", innerW) + "┘")
	return b.String()
}

// overlayCellLive is overlayCell, but follows the pointer while this
// overlay is being dragged
func (m *EditorModel) overlayCellLive(id string, p models.NormalizedPosition, l editorLayout) (int, int) {
	if m.mode == mouseOverlay && m.dragID == id && m.drag != nil {
		x, y := m.drag.Position()
		return l.previewLeft + 1 + int(math.Round(x)), l.previewTop + 1 + int(math.Round(y))
	}
	return m.overlayCell(p, l)
}

// renderTimeline draws the trim track with handles and playhead
func (m *EditorModel) renderTimeline(l editorLayout, st timeline.TrimState) string {
	trackW := l.previewW - 2
	track := make([]rune, trackW)

	startCell := int(timeline.OffsetFromTime(st.Start, l.surface, st.Duration)) - l.previewLeft - 1
	endCell := int(timeline.OffsetFromTime(st.End, l.surface, st.Duration)) - l.previewLeft - 1
	playCell := int(timeline.OffsetFromTime(st.Playhead, l.surface, st.Duration)) - l.previewLeft - 1

	for i := range track {
		if i >= startCell && i <= endCell {
			track[i] = '━'
		} else {
			track[i] = '─'
		}
	}
	setCell(track, startCell, '┣')
	setCell(track, endCell, '┫')
	setCell(track, playCell, '●')

	margin := strings.Repeat(" ", l.previewLeft+1)
	trackLine := margin + lipgloss.NewStyle().Foreground(ColorOrange).Render(string(track))

	labels := fmt.Sprintf("%s0:00%s%s",
		margin,
		strings.Repeat(" ", max(trackW-9, 1)),
		formatTime(st.Duration),
	)
	playLine := margin + LabelStyle.Render(fmt.Sprintf("playhead %s", formatTime(st.Playhead)))

	return trackLine + "\n" + LabelStyle.Render(labels) + "\n" + playLine
}

func setCell(track []rune, i int, r rune) {
	if i >= 0 && i < len(track) {
		track[i] = r
	}
}

// renderOverlayList lists overlays with their visibility windows
func (m *EditorModel) renderOverlayList() string {
	texts := m.overlays.Texts()
	gifs := m.overlays.Memes()
	if len(texts) == 0 && len(gifs) == 0 {
		return "  " + InactiveStyle.Render("No overlays. Press t to add text, g to add a GIF.")
	}

	var rows []string
	idx := 0
	for _, o := range texts {
		rows = append(rows, m.overlayRow(idx, fmt.Sprintf("text %q", o.Text), o.Visibility))
		idx++
	}
	for _, o := range gifs {
		rows = append(rows, m.overlayRow(idx, "gif "+o.URL, o.Visibility))
		idx++
	}
	return strings.Join(rows, "\n")
}

func (m *EditorModel) overlayRow(idx int, label string, vis models.TimeRange) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(ColorBlue)
	if idx == m.selected {
		prefix = "▶ "
		style = ActiveStyle
	}
	if len(label) > 50 {
		label = label[:50]
	}
	return style.Render(fmt.Sprintf("%s%-52s %s - %s",
		prefix, label, formatTime(vis.Start), formatTime(vis.End)))
}

// formatTime renders seconds with sub-second precision, m:ss.s
func formatTime(seconds float64) string {
	minutes := int(seconds) / 60
	return fmt.Sprintf("%d:%04.1f", minutes, seconds-float64(minutes*60))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
