// Package tui is the interactive clip editor: a clip library, a
// gesture-driven trim timeline with overlay placement, and the export
// flow against the render service.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kartoza/kartoza-clip-studio/internal/auth"
	"github.com/kartoza/kartoza-clip-studio/internal/clips"
	"github.com/kartoza/kartoza-clip-studio/internal/config"
	"github.com/kartoza/kartoza-clip-studio/internal/export"
	"github.com/kartoza/kartoza-clip-studio/internal/memes"
	"github.com/kartoza/kartoza-clip-studio/internal/models"
	"github.com/kartoza/kartoza-clip-studio/internal/renderapi"
)

// Messages shared across screens

type tickMsg time.Time

// clipsLoadedMsg carries the library listing, or the fetch error
type clipsLoadedMsg struct {
	clips []models.Clip
	err   error
}

// clipSelectedMsg opens the editor for a clip
type clipSelectedMsg struct {
	clip models.Clip
}

// clipDeletedMsg reports a deletion attempt
type clipDeletedMsg struct {
	clipID string
	err    error
}

// backToLibraryMsg returns to the library screen
type backToLibraryMsg struct{}

// backToEditorMsg returns to the editor screen
type backToEditorMsg struct{}

// textFormDoneMsg commits a text overlay add or edit
type textFormDoneMsg struct {
	overlay models.TextOverlay
	editID  string // non-empty when editing an existing overlay
}

// memeFormDoneMsg commits a size/window edit of a placed GIF
type memeFormDoneMsg struct {
	editID     string
	size       models.OverlaySize
	visibility models.TimeRange
}

// memesLoadedMsg carries GIF search results
type memesLoadedMsg struct {
	assets []memes.Asset
	err    error
}

// memeChosenMsg places a GIF on the clip
type memeChosenMsg struct {
	asset memes.Asset
}

// startExportMsg begins an export with the chosen settings
type startExportMsg struct {
	settings models.ExportSettings
}

// exportUpdateMsg is one orchestrator transition
type exportUpdateMsg export.Update

// exportClosedMsg signals the orchestrator has finished
type exportClosedMsg struct{}

// thumbLoadedMsg carries preview image bytes for a clip
type thumbLoadedMsg struct {
	clipID string
	data   []byte
}

// Services bundles the remote clients the screens share.
type Services struct {
	Clips  *clips.Client
	Render *renderapi.Client
	Memes  *memes.Client
	Config *config.Config
}

// NewServices wires the remote clients from config and stored credentials.
func NewServices(cfg *config.Config) (*Services, error) {
	a := auth.NewAuth(cfg.APIBaseURL, config.GetConfigDir())

	var token string
	if a.IsAuthenticated() {
		t, err := a.AccessToken(context.Background())
		if err != nil {
			return nil, fmt.Errorf("stored credentials are no longer valid, run login again: %w", err)
		}
		token = t
	}

	return &Services{
		Clips:  clips.NewClient(cfg.APIBaseURL, token),
		Render: renderapi.NewClient(cfg.APIBaseURL, token),
		Memes:  memes.NewClient(cfg.GiphyAPIKey),
		Config: cfg,
	}, nil
}

// exportOptions derives polling tunables from config.
func exportOptions(cfg *config.Config) export.Options {
	var opts export.Options
	if cfg.PollIntervalSecs > 0 {
		opts.PollInterval = time.Duration(cfg.PollIntervalSecs) * time.Second
	}
	if cfg.ExportTimeoutSecs > 0 {
		opts.MaxWait = time.Duration(cfg.ExportTimeoutSecs) * time.Second
	}
	return opts
}

// LoadServices reads the config file and wires the remote clients.
// Shared by the TUI and the one-shot CLI subcommands.
func LoadServices() (*Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewServices(cfg)
}

// Run starts the TUI application
func Run() error {
	svcs, err := LoadServices()
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewAppModel(svcs),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
