package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

// TextFormField represents which field is focused
type TextFormField int

const (
	TextFormFieldText TextFormField = iota
	TextFormFieldFont
	TextFormFieldSize
	TextFormFieldColor
	TextFormFieldAlignment
	TextFormFieldBackground
	TextFormFieldBackgroundColor
	TextFormFieldOutline
	TextFormFieldOutlineColor
	TextFormFieldShadow
	TextFormFieldStart
	TextFormFieldEnd
	TextFormFieldSave
	TextFormFieldCancel
)

var textFonts = []string{"System", "Arial-BoldMT", "Helvetica-Bold", "Courier-Bold", "Impact"}

var textColors = []string{"#FFFFFF", "#000000", "#DDA036", "#E95420", "#4CAF50", "#569FC6"}

const (
	minFontSize = 12
	maxFontSize = 72
)

// TextFormModel is the add/edit form for a text overlay
type TextFormModel struct {
	editID   string
	overlay  models.TextOverlay
	duration float64

	focusedField TextFormField

	textInput  textinput.Model
	startInput textinput.Model
	endInput   textinput.Model

	selectedFont  int
	selectedColor int
	alignments    []models.Alignment
	selectedAlign int

	hasBackground bool
	selectedBg    int
	hasOutline    bool
	selectedOutl  int
	hasShadow     bool

	errorMessage string

	width  int
	height int
}

// NewTextFormModel creates the form, pre-filled when editing an existing
// overlay
func NewTextFormModel(editID string, o models.TextOverlay, duration float64) *TextFormModel {
	textInput := textinput.New()
	textInput.Placeholder = "Overlay text"
	textInput.CharLimit = 120
	textInput.Width = 40
	textInput.SetValue(o.Text)
	textInput.Focus()

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

	indexOf := func(list []string, v string) int {
		for i, c := range list {
			if c == v {
				return i
			}
		}
		return 0
	}

	alignments := []models.Alignment{models.AlignLeft, models.AlignCenter, models.AlignRight}
	selectedAlign := 1
	for i, a := range alignments {
		if a == o.Alignment {
			selectedAlign = i
		}
	}

	return &TextFormModel{
		editID:        editID,
		overlay:       o,
		duration:      duration,
		textInput:     textInput,
		startInput:    startInput,
		endInput:      endInput,
		selectedFont:  indexOf(textFonts, o.Font),
		selectedColor: indexOf(textColors, o.Color),
		alignments:    alignments,
		selectedAlign: selectedAlign,
		hasBackground: o.HasBackground,
		selectedBg:    indexOf(textColors, o.BackgroundColor),
		hasOutline:    o.HasOutline,
		selectedOutl:  indexOf(textColors, o.OutlineColor),
		hasShadow:     o.HasShadow,
	}
}

func (m *TextFormModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// Init initializes the form
func (m *TextFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *TextFormModel) Update(msg tea.Msg) (*TextFormModel, tea.Cmd) {
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
			if m.focusedField != TextFormFieldText &&
				m.focusedField != TextFormFieldStart &&
				m.focusedField != TextFormFieldEnd {
				return m.handleCycle(keyMsg.String() == "right"), nil
			}

		case "enter":
			switch m.focusedField {
			case TextFormFieldSave:
				return m.submit()
			case TextFormFieldCancel:
				return m, func() tea.Msg { return backToEditorMsg{} }
			default:
				m.nextField()
				return m, textinput.Blink
			}
		}
	}

	// Update focused input
	switch m.focusedField {
	case TextFormFieldText:
		m.textInput, cmd = m.textInput.Update(msg)
	case TextFormFieldStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case TextFormFieldEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	}

	return m, cmd
}

// handleCycle adjusts the cycler and toggle fields
func (m *TextFormModel) handleCycle(forward bool) *TextFormModel {
	cycle := func(v, n int) int {
		if forward {
			return (v + 1) % n
		}
		v--
		if v < 0 {
			v = n - 1
		}
		return v
	}

	switch m.focusedField {
	case TextFormFieldFont:
		m.selectedFont = cycle(m.selectedFont, len(textFonts))
	case TextFormFieldSize:
		if forward && m.overlay.FontSize < maxFontSize {
			m.overlay.FontSize += 2
		} else if !forward && m.overlay.FontSize > minFontSize {
			m.overlay.FontSize -= 2
		}
	case TextFormFieldColor:
		m.selectedColor = cycle(m.selectedColor, len(textColors))
	case TextFormFieldAlignment:
		m.selectedAlign = cycle(m.selectedAlign, len(m.alignments))
	case TextFormFieldBackground:
		m.hasBackground = !m.hasBackground
	case TextFormFieldBackgroundColor:
		m.selectedBg = cycle(m.selectedBg, len(textColors))
	case TextFormFieldOutline:
		m.hasOutline = !m.hasOutline
	case TextFormFieldOutlineColor:
		m.selectedOutl = cycle(m.selectedOutl, len(textColors))
	case TextFormFieldShadow:
		m.hasShadow = !m.hasShadow
	}
	return m
}

// submit validates and commits the overlay
func (m *TextFormModel) submit() (*TextFormModel, tea.Cmd) {
	if m.textInput.Value() == "" {
		m.errorMessage = "Text is required"
		return m, nil
	}

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

	o := m.overlay
	o.Text = m.textInput.Value()
	o.Font = textFonts[m.selectedFont]
	o.Color = textColors[m.selectedColor]
	o.Alignment = m.alignments[m.selectedAlign]
	o.HasBackground = m.hasBackground
	o.BackgroundColor = ""
	if m.hasBackground {
		o.BackgroundColor = textColors[m.selectedBg]
	}
	o.HasOutline = m.hasOutline
	o.OutlineColor = textColors[m.selectedOutl]
	o.HasShadow = m.hasShadow
	o.Visibility = models.TimeRange{Start: start, End: end}.Clamped(m.duration)

	editID := m.editID
	return m, func() tea.Msg {
		return textFormDoneMsg{overlay: o, editID: editID}
	}
}

func (m *TextFormModel) nextField() {
	m.unfocusAll()
	m.focusedField++
	if m.focusedField > TextFormFieldCancel {
		m.focusedField = TextFormFieldText
	}
	m.focusCurrent()
}

func (m *TextFormModel) prevField() {
	m.unfocusAll()
	m.focusedField--
	if m.focusedField < TextFormFieldText {
		m.focusedField = TextFormFieldCancel
	}
	m.focusCurrent()
}

func (m *TextFormModel) unfocusAll() {
	m.textInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()
}

func (m *TextFormModel) focusCurrent() {
	switch m.focusedField {
	case TextFormFieldText:
		m.textInput.Focus()
	case TextFormFieldStart:
		m.startInput.Focus()
	case TextFormFieldEnd:
		m.endInput.Focus()
	}
}

// View renders the form
func (m *TextFormModel) View() string {
	title := "Add Text Overlay"
	if m.editID != "" {
		title = "Edit Text Overlay"
	}
	header := RenderHeader(title)

	label := func(f TextFormField, text string) string {
		style := LabelStyle.Width(14).Align(lipgloss.Right)
		if m.focusedField == f {
			style = ActiveStyle.Width(14).Align(lipgloss.Right)
		}
		return style.Render(text + ": ")
	}
	cycler := func(value string) string {
		return ValueStyle.Render("◀ " + value + " ▶")
	}
	toggle := func(on bool) string {
		if on {
			return SuccessStyle.Render("◀ on ▶")
		}
		return InactiveStyle.Render("◀ off ▶")
	}
	swatch := func(sel int, enabled bool) string {
		if !enabled {
			return InactiveStyle.Render("── " + textColors[sel])
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(textColors[sel])).
			Render("██ " + textColors[sel])
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldText, "Text"), m.textInput.View()),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldFont, "Font"), cycler(textFonts[m.selectedFont])),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldSize, "Size"), cycler(fmt.Sprintf("%.0fpt", m.overlay.FontSize))),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldColor, "Color"), swatch(m.selectedColor, true)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldAlignment, "Alignment"), cycler(string(m.alignments[m.selectedAlign]))),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldBackground, "Background"), toggle(m.hasBackground)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldBackgroundColor, "Bg color"), swatch(m.selectedBg, m.hasBackground)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldOutline, "Outline"), toggle(m.hasOutline)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldOutlineColor, "Outline color"), swatch(m.selectedOutl, m.hasOutline)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldShadow, "Shadow"), toggle(m.hasShadow)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldStart, "Show from"), m.startInput.View()),
		lipgloss.JoinHorizontal(lipgloss.Center, label(TextFormFieldEnd, "Show until"), m.endInput.View()),
	}

	buttonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	saveButton := buttonStyle.Background(ColorGray).Foreground(ColorWhite).Render("Save")
	cancelButton := buttonStyle.Background(ColorGray).Foreground(ColorWhite).Render("Cancel")
	if m.focusedField == TextFormFieldSave {
		saveButton = buttonStyle.Background(ColorOrange).Foreground(lipgloss.Color("#000000")).Render("Save")
	}
	if m.focusedField == TextFormFieldCancel {
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

	helpText := "tab: next field • ←/→: adjust • enter: confirm • esc: back"
	footer := RenderHelpFooter(helpText, m.width)

	return LayoutWithHeaderFooter(header, content, footer, m.width, m.height)
}
