package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

// MemeFormField represents which field is focused
type MemeFormField int

const (
	MemeFormFieldSize MemeFormField = iota
	MemeFormFieldStart
	MemeFormFieldEnd
	MemeFormFieldSave
	MemeFormFieldCancel
)

// Size bounds and step for a placed GIF, in source pixels.
const (
	minMemeSize  = 50.0
	maxMemeSize  = 300.0
	memeSizeStep = 10.0
)

// MemeFormModel is the edit form for a placed GIF: size plus the
// visibility window. Size applies to both axes, keeping the overlay
// square.
type MemeFormModel struct {
	editID   string
	overlay  models.MemeOverlay
	duration float64

	focusedField MemeFormField

	size       float64
	startInput textinput.Model
	endInput   textinput.Model

	errorMessage string

	width  int
	height int
}

// NewMemeFormModel creates the form pre-filled from the placed overlay
func NewMemeFormModel(editID string, o models.MemeOverlay, duration float64) *MemeFormModel {
	startInput := textinput.New()
	startInput.Placeholder = "0.0"
	startInput.CharLimit = 8
	startInput.Width = 8
	startInput.SetValue(strconv.FormatFloat(o.Visibility.Start, 'f', 1, 64))

	endInput := textinput.New()
	endInput.Placeholder = "5.0"
	endInput.CharLimit = 8
	endInput.Width = 8
	endInput.SetValue(strconv.FormatFloat(o.Visibility.End, 'f', 1, 64))

	size := o.Size.Width
	if size < minMemeSize {
		size = minMemeSize
	}
	if size > maxMemeSize {
		size = maxMemeSize
	}

	return &MemeFormModel{
		editID:     editID,
		overlay:    o,
		duration:   duration,
		size:       size,
		startInput: startInput,
		endInput:   endInput,
	}
}

func (m *MemeFormModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// Init initializes the form
func (m *MemeFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *MemeFormModel) Update(msg tea.Msg) (*MemeFormModel, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m, func() tea.Msg { return backToEditorMsg{} }

		case "tab", "down":
			m.nextField()
			return m, textinput.Blink

		case "shift+tab", "up":
			m.prevField()
			return m, textinput.Blink

		case "left", "right":
			// Cursor movement inside text inputs keeps its usual meaning
			if m.focusedField == MemeFormFieldSize {
				m.adjustSize(keyMsg.String() == "right")
				return m, nil
			}

		case "enter":
			switch m.focusedField {
			case MemeFormFieldSave:
				return m.submit()
			case MemeFormFieldCancel:
				return m, func() tea.Msg { return backToEditorMsg{} }
			default:
				m.nextField()
				return m, textinput.Blink
			}
		}
	}

	switch m.focusedField {
	case MemeFormFieldStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case MemeFormFieldEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	}

	return m, cmd
}

func (m *MemeFormModel) adjustSize(grow bool) {
	if grow && m.size < maxMemeSize {
		m.size += memeSizeStep
	} else if !grow && m.size > minMemeSize {
		m.size -= memeSizeStep
	}
}

// submit validates and commits the size and window
func (m *MemeFormModel) submit() (*MemeFormModel, tea.Cmd) {
	start, err := strconv.ParseFloat(m.startInput.Value(), 64)
	if err != nil {
		m.errorMessage = "Show from must be a number of seconds"
		return m, nil
	}
	end, err := strconv.ParseFloat(m.endInput.Value(), 64)
	if err != nil {
		m.errorMessage = "Show until must be a number of seconds"
		return m, nil
	}
	if end <= start {
		m.errorMessage = "Show until must be after show from"
		return m, nil
	}

	editID := m.editID
	size := models.OverlaySize{Width: m.size, Height: m.size}
	vis := models.TimeRange{Start: start, End: end}.Clamped(m.duration)
	return m, func() tea.Msg {
		return memeFormDoneMsg{editID: editID, size: size, visibility: vis}
	}
}

func (m *MemeFormModel) nextField() {
	m.unfocusAll()
	m.focusedField++
	if m.focusedField > MemeFormFieldCancel {
		m.focusedField = MemeFormFieldSize
	}
	m.focusCurrent()
}

func (m *MemeFormModel) prevField() {
	m.unfocusAll()
	m.focusedField--
	if m.focusedField < MemeFormFieldSize {
		m.focusedField = MemeFormFieldCancel
	}
	m.focusCurrent()
}

func (m *MemeFormModel) unfocusAll() {
	m.startInput.Blur()
	m.endInput.Blur()
}

func (m *MemeFormModel) focusCurrent() {
	switch m.focusedField {
	case MemeFormFieldStart:
		m.startInput.Focus()
	case MemeFormFieldEnd:
		m.endInput.Focus()
	}
}

// View renders the form
func (m *MemeFormModel) View() string {
	header := RenderHeader("Edit GIF")

	label := func(f MemeFormField, text string) string {
		style := LabelStyle.Width(14).Align(lipgloss.Right)
		if m.focusedField == f {
			style = ActiveStyle.Width(14).Align(lipgloss.Right)
		}
		return style.Render(text + ": ")
	}

	url := m.overlay.URL
	if len(url) > 50 {
		url = url[:50]
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, LabelStyle.Width(14).Align(lipgloss.Right).Render("GIF: "), SubtitleStyle.Render(url)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(MemeFormFieldSize, "Size"), ValueStyle.Render(fmt.Sprintf("◀ %.0fpx ▶", m.size))),
		lipgloss.JoinHorizontal(lipgloss.Center, label(MemeFormFieldStart, "Show from"), m.startInput.View()),
		lipgloss.JoinHorizontal(lipgloss.Center, label(MemeFormFieldEnd, "Show until"), m.endInput.View()),
	}

	buttonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	saveButton := buttonStyle.Background(ColorGray).Foreground(ColorWhite).Render("Save")
	cancelButton := buttonStyle.Background(ColorGray).Foreground(ColorWhite).Render("Cancel")
	if m.focusedField == MemeFormFieldSave {
		saveButton = buttonStyle.Background(ColorOrange).Foreground(lipgloss.Color("#000000")).Render("Save")
	}
	if m.focusedField == MemeFormFieldCancel {
		cancelButton = buttonStyle.Background(ColorOrange).Foreground(lipgloss.Color("#000000")).Render("Cancel")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, saveButton, "  ", cancelButton)

	var errorLine string
	if m.errorMessage != "" {
		errorLine = ErrorStyle.Render(m.errorMessage)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		buttons,
		"",
		errorLine,
	)

	helpText := "tab: next field • ←/→: resize • enter: confirm • esc: back"
	footer := RenderHelpFooter(helpText, m.width)

	return LayoutWithHeaderFooter(header, content, footer, m.width, m.height)
}
