package tui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-clip-studio/internal/clips"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

// LibraryModel is the clip library screen
type LibraryModel struct {
	svcs *Services

	clips    []models.Clip
	selected int
	loading  bool
	err      error

	spinner spinner.Model
	thumbs  map[string][]byte

	width  int
	height int
}

// NewLibraryModel creates the clip library screen
func NewLibraryModel(svcs *Services) *LibraryModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorOrange)

	return &LibraryModel{
		svcs:    svcs,
		loading: true,
		spinner: s,
		thumbs:  make(map[string][]byte),
	}
}

func (m *LibraryModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// Init starts the initial clip fetch
func (m *LibraryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

// refresh fetches the clip listing
func (m *LibraryModel) refresh() tea.Cmd {
	m.loading = true
	channel := m.svcs.Config.DefaultChannel
	client := m.svcs.Clips
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.List(ctx, clips.ListOptions{Channel: channel})
		if err != nil {
			return clipsLoadedMsg{err: err}
		}
		return clipsLoadedMsg{clips: resp.Clips}
	}
}

// loadThumbnail fetches the first preview frame for a clip, best-effort
func (m *LibraryModel) loadThumbnail(clip models.Clip) tea.Cmd {
	if _, ok := m.thumbs[clip.ClipID]; ok {
		return nil
	}
	client := m.svcs.Clips
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		urls := client.Thumbnails(ctx, clip.ClipID, 1)
		if len(urls) == 0 {
			return nil
		}
		data := fetchImage(ctx, urls[0])
		if data == nil {
			return nil
		}
		return thumbLoadedMsg{clipID: clip.ClipID, data: data}
	}
}

// fetchImage downloads an image, returning nil on any failure
func fetchImage(ctx context.Context, url string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil
	}
	return data
}

func (m *LibraryModel) deleteSelected() tea.Cmd {
	if m.selected >= len(m.clips) {
		return nil
	}
	clipID := m.clips[m.selected].ClipID
	client := m.svcs.Clips
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return clipDeletedMsg{clipID: clipID, err: client.Delete(ctx, clipID)}
	}
}

// Update handles messages for the library
func (m *LibraryModel) Update(msg tea.Msg) (*LibraryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case clipsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.clips = msg.clips
			if m.selected >= len(m.clips) {
				m.selected = 0
			}
		}
		if len(m.clips) > 0 {
			return m, m.loadThumbnail(m.clips[m.selected])
		}
		return m, nil

	case clipDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.refresh()

	case thumbLoadedMsg:
		m.thumbs[msg.clipID] = msg.data
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "q"))):
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if len(m.clips) == 0 {
				return m, nil
			}
			m.selected--
			if m.selected < 0 {
				m.selected = len(m.clips) - 1
			}
			return m, m.loadThumbnail(m.clips[m.selected])

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if len(m.clips) == 0 {
				return m, nil
			}
			m.selected++
			if m.selected >= len(m.clips) {
				m.selected = 0
			}
			return m, m.loadThumbnail(m.clips[m.selected])

		case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
			return m, m.refresh()

		case key.Matches(msg, key.NewBinding(key.WithKeys("x"))):
			return m, m.deleteSelected()

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter", " "))):
			if m.selected < len(m.clips) {
				clip := m.clips[m.selected]
				if clip.Status == models.ClipReady {
					return m, func() tea.Msg {
						return clipSelectedMsg{clip: clip}
					}
				}
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the library
func (m *LibraryModel) View() string {
	header := RenderHeader("Library")

	var content string
	switch {
	case m.loading:
		content = m.spinner.View() + " Loading clips..."
	case m.err != nil:
		content = ErrorStyle.Render("Error: " + m.err.Error())
	case len(m.clips) == 0:
		content = InactiveStyle.Render("No clips in the library yet.")
	default:
		content = m.renderClipList()
	}

	helpText := "↑/k: up • ↓/j: down • enter: edit • x: delete • r: refresh • q: quit"
	footer := RenderHelpFooter(helpText, m.width)

	return LayoutWithHeaderFooter(header, content, footer, m.width, m.height)
}

// renderClipList renders the clip rows plus a preview of the selection
func (m *LibraryModel) renderClipList() string {
	var rows []string
	for i, clip := range m.clips {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(ColorBlue)
		if i == m.selected {
			prefix = "▶ "
			style = ActiveStyle
		}
		if clip.Status != models.ClipReady {
			style = InactiveStyle
		}

		title := clip.StreamTitle
		if title == "" {
			title = clip.ClipID
		}
		line := fmt.Sprintf("%s%-40.40s  %s  %6s  %s",
			prefix,
			title,
			clip.Channel,
			formatDuration(clip.Duration),
			clip.Status,
		)
		rows = append(rows, style.Render(line))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if preview := m.renderPreview(); preview != "" {
		return lipgloss.JoinVertical(lipgloss.Left, list, "", preview)
	}
	return list
}

// renderPreview shows the selected clip's first frame when the terminal
// supports inline images
func (m *LibraryModel) renderPreview() string {
	if m.selected >= len(m.clips) {
		return ""
	}
	data, ok := m.thumbs[m.clips[m.selected].ClipID]
	if !ok {
		return ""
	}
	rendered, err := RenderClipPreview(data, m.width/3)
	if err != nil {
		return ""
	}
	return rendered
}

// formatDuration renders seconds as m:ss
func formatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
