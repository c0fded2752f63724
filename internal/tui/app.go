package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kartoza/kartoza-clip-studio/internal/export"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

// Screen represents the current screen being displayed
type Screen int

const (
	ScreenLibrary Screen = iota
	ScreenEditor
	ScreenTextForm
	ScreenMemeForm
	ScreenMemeLibrary
	ScreenExportSetup
	ScreenExporting
)

// openTextFormMsg opens the text overlay form, optionally pre-filled for editing
type openTextFormMsg struct {
	editID  string
	overlay models.TextOverlay
}

// openMemeFormMsg opens the size/window editor for a placed GIF
type openMemeFormMsg struct {
	editID  string
	overlay models.MemeOverlay
}

// openMemeLibraryMsg opens the GIF browser
type openMemeLibraryMsg struct{}

// openExportSetupMsg opens the export settings form
type openExportSetupMsg struct{}

// AppModel is the main application model that coordinates screens
type AppModel struct {
	screen Screen
	svcs   *Services

	library    *LibraryModel
	editor     *EditorModel
	textForm   *TextFormModel
	memeForm   *MemeFormModel
	memeLib    *MemeLibraryModel
	exportForm *ExportFormModel
	exporting  *ExportingModel

	width  int
	height int
}

// NewAppModel creates a new application model
func NewAppModel(svcs *Services) AppModel {
	return AppModel{
		screen:  ScreenLibrary,
		svcs:    svcs,
		library: NewLibraryModel(svcs),
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.library.Init()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.library.setSize(msg.Width, msg.Height)
		if m.editor != nil {
			m.editor.setSize(msg.Width, msg.Height)
		}
		if m.textForm != nil {
			m.textForm.setSize(msg.Width, msg.Height)
		}
		if m.memeForm != nil {
			m.memeForm.setSize(msg.Width, msg.Height)
		}
		if m.memeLib != nil {
			m.memeLib.setSize(msg.Width, msg.Height)
		}
		if m.exportForm != nil {
			m.exportForm.setSize(msg.Width, msg.Height)
		}
		if m.exporting != nil {
			m.exporting.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case clipSelectedMsg:
		m.editor = NewEditorModel(msg.clip)
		m.editor.setSize(m.width, m.height)
		m.screen = ScreenEditor
		return m, m.editor.Init()

	case backToLibraryMsg:
		m.screen = ScreenLibrary
		m.editor = nil
		return m, m.library.refresh()

	case backToEditorMsg:
		m.screen = ScreenEditor
		return m, nil

	case openTextFormMsg:
		m.textForm = NewTextFormModel(msg.editID, msg.overlay, m.editor.Duration())
		m.textForm.setSize(m.width, m.height)
		m.screen = ScreenTextForm
		return m, m.textForm.Init()

	case openMemeFormMsg:
		m.memeForm = NewMemeFormModel(msg.editID, msg.overlay, m.editor.Duration())
		m.memeForm.setSize(m.width, m.height)
		m.screen = ScreenMemeForm
		return m, m.memeForm.Init()

	case openMemeLibraryMsg:
		m.memeLib = NewMemeLibraryModel(m.svcs)
		m.memeLib.setSize(m.width, m.height)
		m.screen = ScreenMemeLibrary
		return m, m.memeLib.Init()

	case openExportSetupMsg:
		m.exportForm = NewExportFormModel(m.svcs.Config.DefaultExport, m.editor.TrimDuration())
		m.exportForm.setSize(m.width, m.height)
		m.screen = ScreenExportSetup
		return m, nil

	case textFormDoneMsg:
		if m.editor != nil {
			m.editor.ApplyTextForm(msg)
		}
		m.screen = ScreenEditor
		return m, nil

	case memeFormDoneMsg:
		if m.editor != nil {
			m.editor.ApplyMemeForm(msg)
		}
		m.screen = ScreenEditor
		return m, nil

	case memeChosenMsg:
		if m.editor != nil {
			m.editor.AddMemeAsset(msg.asset)
		}
		m.screen = ScreenEditor
		return m, nil

	case startExportMsg:
		if m.editor == nil {
			return m, nil
		}
		snap := m.editor.Snapshot(msg.settings)
		m.exporting = NewExportingModel(export.New(m.svcs.Render, exportOptions(m.svcs.Config)), snap)
		m.exporting.setSize(m.width, m.height)
		m.screen = ScreenExporting
		return m, m.exporting.Init()
	}

	// Route everything else to the active screen
	var cmd tea.Cmd
	switch m.screen {
	case ScreenLibrary:
		m.library, cmd = m.library.Update(msg)
	case ScreenEditor:
		if m.editor != nil {
			m.editor, cmd = m.editor.Update(msg)
		}
	case ScreenTextForm:
		if m.textForm != nil {
			m.textForm, cmd = m.textForm.Update(msg)
		}
	case ScreenMemeForm:
		if m.memeForm != nil {
			m.memeForm, cmd = m.memeForm.Update(msg)
		}
	case ScreenMemeLibrary:
		if m.memeLib != nil {
			m.memeLib, cmd = m.memeLib.Update(msg)
		}
	case ScreenExportSetup:
		if m.exportForm != nil {
			m.exportForm, cmd = m.exportForm.Update(msg)
		}
	case ScreenExporting:
		if m.exporting != nil {
			m.exporting, cmd = m.exporting.Update(msg)
		}
	}
	return m, cmd
}

// View renders the current screen
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.screen {
	case ScreenLibrary:
		return m.library.View()
	case ScreenEditor:
		if m.editor != nil {
			return m.editor.View()
		}
	case ScreenTextForm:
		if m.textForm != nil {
			return m.textForm.View()
		}
	case ScreenMemeForm:
		if m.memeForm != nil {
			return m.memeForm.View()
		}
	case ScreenMemeLibrary:
		if m.memeLib != nil {
			return m.memeLib.View()
		}
	case ScreenExportSetup:
		if m.exportForm != nil {
			return m.exportForm.View()
		}
	case ScreenExporting:
		if m.exporting != nil {
			return m.exporting.View()
		}
	}
	return ""
}
