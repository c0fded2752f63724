package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kartoza/kartoza-clip-studio/internal/memes"
)

// MemeLibraryModel is the GIF browser: trending on open, searchable
type MemeLibraryModel struct {
	svcs *Services

	searchInput textinput.Model
	assets      []memes.Asset
	selected    int
	loading     bool
	err         error
	searching   bool

	spinner spinner.Model

	width  int
	height int
}

// NewMemeLibraryModel creates the GIF browser
func NewMemeLibraryModel(svcs *Services) *MemeLibraryModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search GIFs"
	searchInput.CharLimit = 60
	searchInput.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorOrange)

	return &MemeLibraryModel{
		svcs:        svcs,
		searchInput: searchInput,
		loading:     true,
		spinner:     s,
	}
}

func (m *MemeLibraryModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// Init loads trending GIFs
func (m *MemeLibraryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTrending())
}

func (m *MemeLibraryModel) loadTrending() tea.Cmd {
	client := m.svcs.Memes
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		assets, err := client.Trending(ctx)
		return memesLoadedMsg{assets: assets, err: err}
	}
}

func (m *MemeLibraryModel) search(query string) tea.Cmd {
	client := m.svcs.Memes
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		assets, err := client.Search(ctx, query)
		return memesLoadedMsg{assets: assets, err: err}
	}
}

// Update handles messages
func (m *MemeLibraryModel) Update(msg tea.Msg) (*MemeLibraryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case memesLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.assets = msg.assets
			m.selected = 0
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.searching {
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
			return m, func() tea.Msg { return backToEditorMsg{} }

		case "/":
			if !m.searching {
				m.searching = true
				m.searchInput.Focus()
				return m, textinput.Blink
			}

		case "enter":
			if m.searching {
				m.searching = false
				m.searchInput.Blur()
				query := m.searchInput.Value()
				m.loading = true
				if query == "" {
					return m, m.loadTrending()
				}
				return m, m.search(query)
			}
			if m.selected < len(m.assets) {
				asset := m.assets[m.selected]
				return m, func() tea.Msg {
					return memeChosenMsg{asset: asset}
				}
			}
			return m, nil

		case "up", "k":
			if !m.searching && len(m.assets) > 0 {
				m.selected--
				if m.selected < 0 {
					m.selected = len(m.assets) - 1
				}
			}

		case "down", "j":
			if !m.searching && len(m.assets) > 0 {
				m.selected++
				if m.selected >= len(m.assets) {
					m.selected = 0
				}
			}
		}
	}

	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the GIF browser
func (m *MemeLibraryModel) View() string {
	header := RenderHeader("GIF Library")

	var body string
	switch {
	case m.svcs.Config.GiphyAPIKey == "":
		body = ErrorStyle.Render("No Giphy API key configured. Set giphy_api_key in the config file.")
	case m.loading:
		body = m.spinner.View() + " Loading GIFs..."
	case m.err != nil:
		body = ErrorStyle.Render("Error: " + m.err.Error())
	case len(m.assets) == 0:
		body = InactiveStyle.Render("No GIFs found.")
	default:
		body = m.renderAssets()
	}

	searchLabel := LabelStyle.Render("Search: ")
	if m.searching {
		searchLabel = ActiveStyle.Render("Search: ")
	}
	searchRow := lipgloss.JoinHorizontal(lipgloss.Center, searchLabel, m.searchInput.View())

	content := lipgloss.JoinVertical(lipgloss.Left, searchRow, "", body)

	helpText := "/: search • ↑/↓: browse • enter: place on clip • esc: back"
	footer := RenderHelpFooter(helpText, m.width)

	return LayoutWithHeaderFooter(header, content, footer, m.width, m.height)
}

func (m *MemeLibraryModel) renderAssets() string {
	var rows []string
	for i, asset := range m.assets {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(ColorBlue)
		if i == m.selected {
			prefix = "▶ "
			style = ActiveStyle
		}
		title := asset.Title
		if title == "" {
			title = asset.ID
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-48.48s %dx%d",
			prefix, title, asset.Width, asset.Height)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
