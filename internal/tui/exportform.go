package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-clip-studio/internal/export"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

// ExportFormField represents which setting is focused
type ExportFormField int

const (
	ExportFormFieldPlatform ExportFormField = iota
	ExportFormFieldResolution
	ExportFormFieldQuality
	ExportFormFieldStart
	ExportFormFieldCancel
)

// ExportFormModel is the export settings screen
type ExportFormModel struct {
	presets      []export.Preset
	resolutions  []string
	qualities    []string
	trimDuration float64

	focusedField ExportFormField
	selPlatform  int
	selRes       int
	selQuality   int

	width  int
	height int
}

// NewExportFormModel creates the settings form pre-selected from defaults
func NewExportFormModel(defaults models.ExportSettings, trimDuration float64) *ExportFormModel {
	m := &ExportFormModel{
		presets:      export.Presets(),
		resolutions:  models.Resolutions(),
		qualities:    models.Qualities(),
		trimDuration: trimDuration,
	}

	for i, p := range m.presets {
		if string(p.ID) == defaults.Platform {
			m.selPlatform = i
		}
	}
	for i, r := range m.resolutions {
		if r == defaults.Resolution {
			m.selRes = i
		}
	}
	for i, q := range m.qualities {
		if q == defaults.Quality {
			m.selQuality = i
		}
	}
	return m
}

func (m *ExportFormModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// Update handles messages
func (m *ExportFormModel) Update(msg tea.Msg) (*ExportFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m, func() tea.Msg { return backToEditorMsg{} }

	case "tab", "down":
		m.focusedField++
		if m.focusedField > ExportFormFieldCancel {
			m.focusedField = ExportFormFieldPlatform
		}

	case "shift+tab", "up":
		m.focusedField--
		if m.focusedField < ExportFormFieldPlatform {
			m.focusedField = ExportFormFieldCancel
		}

	case "left":
		m.cycle(-1)

	case "right":
		m.cycle(1)

	case "enter":
		switch m.focusedField {
		case ExportFormFieldStart:
			settings := m.Settings()
			return m, func() tea.Msg {
				return startExportMsg{settings: settings}
			}
		case ExportFormFieldCancel:
			return m, func() tea.Msg { return backToEditorMsg{} }
		default:
			m.focusedField++
		}
	}

	return m, nil
}

func (m *ExportFormModel) cycle(dir int) {
	wrap := func(v, n int) int {
		v += dir
		if v < 0 {
			return n - 1
		}
		if v >= n {
			return 0
		}
		return v
	}
	switch m.focusedField {
	case ExportFormFieldPlatform:
		m.selPlatform = wrap(m.selPlatform, len(m.presets))
	case ExportFormFieldResolution:
		m.selRes = wrap(m.selRes, len(m.resolutions))
	case ExportFormFieldQuality:
		m.selQuality = wrap(m.selQuality, len(m.qualities))
	}
}

// Settings returns the chosen export settings
func (m *ExportFormModel) Settings() models.ExportSettings {
	return models.ExportSettings{
		Platform:   string(m.presets[m.selPlatform].ID),
		Resolution: m.resolutions[m.selRes],
		Quality:    m.qualities[m.selQuality],
	}
}

// View renders the form
func (m *ExportFormModel) View() string {
	header := RenderHeader("Export")

	label := func(f ExportFormField, text string) string {
		style := LabelStyle.Width(12).Align(lipgloss.Right)
		if m.focusedField == f {
			style = ActiveStyle.Width(12).Align(lipgloss.Right)
		}
		return style.Render(text + ": ")
	}
	cycler := func(value string) string {
		return ValueStyle.Render("◀ " + value + " ▶")
	}

	preset := m.presets[m.selPlatform]
	platformValue := fmt.Sprintf("%s (%s)", preset.Name, preset.AspectRatio)

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, label(ExportFormFieldPlatform, "Platform"), cycler(platformValue)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(ExportFormFieldResolution, "Resolution"), cycler(m.resolutions[m.selRes])),
		lipgloss.JoinHorizontal(lipgloss.Center, label(ExportFormFieldQuality, "Quality"), cycler(m.qualities[m.selQuality])),
	}

	// Platform limits are advisory; the render service accepts the clip
	// either way
	var warning string
	if preset.ExceedsMaxDuration(m.trimDuration) {
		warning = lipgloss.NewStyle().Foreground(ColorOrange).Render(
			fmt.Sprintf("⚠ trim is %s, %s allows up to %s",
				formatTime(m.trimDuration), preset.Name, formatTime(preset.MaxDuration)))
	}

	buttonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	startButton := buttonStyle.Background(ColorGray).Foreground(ColorWhite).Render("Start Export")
	cancelButton := buttonStyle.Background(ColorGray).Foreground(ColorWhite).Render("Cancel")
	if m.focusedField == ExportFormFieldStart {
		startButton = buttonStyle.Background(ColorOrange).Foreground(lipgloss.Color("#000000")).Render("Start Export")
	}
	if m.focusedField == ExportFormFieldCancel {
		cancelButton = buttonStyle.Background(ColorOrange).Foreground(lipgloss.Color("#000000")).Render("Cancel")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, startButton, "  ", cancelButton)

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		warning,
		"",
		buttons,
	)

	helpText := "tab: next field • ←/→: change • enter: confirm • esc: back"
	footer := RenderHelpFooter(helpText, m.width)

	return LayoutWithHeaderFooter(header, content, footer, m.width, m.height)
}
