package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-clip-studio/internal/export"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

// ExportingModel drives one export job and shows its progress
type ExportingModel struct {
	orch *export.Orchestrator
	snap export.Snapshot

	updates chan export.Update
	cancel  context.CancelFunc

	state export.State
	job   models.ExportJob
	done  bool

	progress progress.Model

	width  int
	height int
}

// NewExportingModel creates the exporting screen for a snapshot
func NewExportingModel(orch *export.Orchestrator, snap export.Snapshot) *ExportingModel {
	return &ExportingModel{
		orch:     orch,
		snap:     snap,
		state:    export.StateIdle,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m *ExportingModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.progress.Width = w - 20
	if m.progress.Width > 60 {
		m.progress.Width = 60
	}
}

// Init starts the orchestrator and begins consuming its updates
func (m *ExportingModel) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.updates = make(chan export.Update, 16)

	go m.orch.Run(ctx, m.snap, m.updates)

	return waitForExportUpdate(m.updates)
}

// waitForExportUpdate waits for the next orchestrator transition
func waitForExportUpdate(ch chan export.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return exportClosedMsg{}
		}
		return exportUpdateMsg(update)
	}
}

// Update handles messages
func (m *ExportingModel) Update(msg tea.Msg) (*ExportingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case exportUpdateMsg:
		m.state = msg.State
		m.job = msg.Job
		return m, waitForExportUpdate(m.updates)

	case exportClosedMsg:
		m.done = true
		return m, nil

	case progress.FrameMsg:
		model, cmd := m.progress.Update(msg)
		m.progress = model.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.stop()
			return m, tea.Quit

		case "esc":
			if !m.done {
				// Abandon the export; the render service keeps the job
				m.stop()
			}
			return m, func() tea.Msg { return backToEditorMsg{} }

		case "enter":
			if m.done {
				return m, func() tea.Msg { return backToLibraryMsg{} }
			}
		}
	}

	return m, nil
}

func (m *ExportingModel) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// View renders the export progress
func (m *ExportingModel) View() string {
	header := RenderHeader("Exporting")

	var content string
	switch m.state {
	case export.StateIdle, export.StateSubmitting:
		content = lipgloss.JoinVertical(lipgloss.Center,
			TitleStyle.Render("Submitting export..."),
			"",
			LabelStyle.Render("Clip: "+m.snap.ClipID),
		)

	case export.StatePolling:
		status := string(m.job.Status)
		content = lipgloss.JoinVertical(lipgloss.Center,
			TitleStyle.Render("Rendering on the server"),
			"",
			m.progress.ViewAs(m.job.Progress/100),
			"",
			LabelStyle.Render(fmt.Sprintf("job %s  %s  %.0f%%", m.job.JobID, status, m.job.Progress)),
		)

	case export.StateCompleted:
		content = lipgloss.JoinVertical(lipgloss.Center,
			SuccessStyle.Render("✓ Export complete"),
			"",
			ValueStyle.Render("Download: "+m.job.DownloadURL),
			"",
			LabelStyle.Render("Press enter to return to the library"),
		)

	case export.StateFailed:
		content = lipgloss.JoinVertical(lipgloss.Center,
			ErrorStyle.Render("✗ Export failed"),
			"",
			ValueStyle.Render(m.job.Error),
			"",
			LabelStyle.Render("Press enter to return to the library"),
		)
	}

	helpText := "esc: abandon • ctrl+c: quit"
	if m.done {
		helpText = "enter: back to library • esc: back to editor"
	}
	footer := RenderHelpFooter(helpText, m.width)

	return LayoutWithHeaderFooter(header, content, footer, m.width, m.height)
}
