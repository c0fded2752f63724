// Package export drives a render job from submission to a terminal
// state: it snapshots the editing session, submits it, and polls the
// render service until the job completes, fails, or times out.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kartoza/kartoza-clip-studio/internal/models"
	"github.com/kartoza/kartoza-clip-studio/internal/renderapi"
)

// State is the orchestrator's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StatePolling
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StatePolling:
		return "polling"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrTimeout marks a job forced to failed because polling exceeded the
// maximum wait.
var ErrTimeout = errors.New("export timed out waiting for the render service")

// Snapshot is the immutable input to one export: trim bounds and overlay
// collections copied at submission time, so later edits cannot affect an
// in-flight job.
type Snapshot struct {
	ClipID   string
	Trim     models.TimeRange
	Texts    []models.TextOverlay
	Memes    []models.MemeOverlay
	Settings models.ExportSettings
}

// Validate rejects a snapshot locally before any request is made.
func (s Snapshot) Validate() error {
	if s.ClipID == "" {
		return errors.New("no clip selected")
	}
	if s.Trim.Duration() < models.MinTrimGap {
		return fmt.Errorf("trim range %.2fs is shorter than the %.0fs minimum",
			s.Trim.Duration(), models.MinTrimGap)
	}
	for _, o := range s.Texts {
		if strings.TrimSpace(o.Text) == "" {
			return errors.New("a text overlay has no text")
		}
	}
	return nil
}

// Service is the slice of the render API the orchestrator needs.
type Service interface {
	SubmitEdit(ctx context.Context, req renderapi.EditRequest) (*renderapi.EditResponse, error)
	JobStatus(ctx context.Context, jobID string) (*renderapi.JobStatusResponse, error)
}

// Options tunes the polling discipline.
type Options struct {
	PollInterval    time.Duration // default 2s
	MaxWait         time.Duration // default 10m; hard bound on total wait
	MaxPollFailures int           // consecutive transport failures tolerated, default 3
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = 2 * time.Second
	}
	if o.MaxWait <= 0 {
		o.MaxWait = 10 * time.Minute
	}
	if o.MaxPollFailures <= 0 {
		o.MaxPollFailures = 3
	}
	return o
}

// Update is one observable transition of the export.
type Update struct {
	State State
	Job   models.ExportJob
}

// Orchestrator runs one export job. It is single-use: a re-submission
// creates a fresh orchestrator with a fresh job value.
type Orchestrator struct {
	svc  Service
	opts Options
}

// New creates an orchestrator over the given render service.
func New(svc Service, opts Options) *Orchestrator {
	return &Orchestrator{svc: svc, opts: opts.withDefaults()}
}

// Run submits the snapshot and polls until the job reaches a terminal
// state, the maximum wait elapses, or ctx is cancelled. Updates are sent
// on ch, which is closed before Run returns; nothing is sent after
// cancellation.
func (o *Orchestrator) Run(ctx context.Context, snap Snapshot, ch chan<- Update) {
	defer close(ch)

	tr := newTracker(o.opts)

	tr.state = StateSubmitting
	if !emit(ctx, ch, tr.update()) {
		return
	}

	if err := snap.Validate(); err != nil {
		tr.fail(err.Error())
		emit(ctx, ch, tr.update())
		return
	}

	resp, err := o.svc.SubmitEdit(ctx, BuildRequest(snap))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		tr.fail("export submission failed")
		emit(ctx, ch, tr.update())
		return
	}

	tr.accept(resp.JobID)
	if !emit(ctx, ch, tr.update()) {
		return
	}

	ticker := time.NewTicker(o.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if time.Now().After(tr.deadline) {
			tr.timeout()
			emit(ctx, ch, tr.update())
			return
		}

		seq := tr.nextSeq()
		status, err := o.svc.JobStatus(ctx, tr.job.JobID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if tr.transportFailure() {
				emit(ctx, ch, tr.update())
				return
			}
			continue
		}

		if !tr.apply(seq, status) {
			continue
		}
		if !emit(ctx, ch, tr.update()) {
			return
		}
		if tr.terminal() {
			return
		}
	}
}

// emit sends an update unless the caller has gone away.
func emit(ctx context.Context, ch chan<- Update, u Update) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- u:
		return true
	}
}

// BuildRequest denormalizes a snapshot into the render service's wire
// format.
func BuildRequest(snap Snapshot) renderapi.EditRequest {
	req := renderapi.EditRequest{
		ClipID:       snap.ClipID,
		TrimStart:    snap.Trim.Start,
		TrimEnd:      snap.Trim.End,
		TextOverlays: make([]renderapi.TextOverlayPayload, 0, len(snap.Texts)),
		MemeOverlays: make([]renderapi.MemeOverlayPayload, 0, len(snap.Memes)),
		ExportSettings: renderapi.ExportSettingsPayload{
			Platform:   snap.Settings.Platform,
			Resolution: snap.Settings.Resolution,
			Quality:    snap.Settings.Quality,
		},
	}

	for _, o := range snap.Texts {
		req.TextOverlays = append(req.TextOverlays, renderapi.TextOverlayPayload{
			Text:            o.Text,
			Font:            o.Font,
			FontSize:        o.FontSize,
			Color:           o.Color,
			BackgroundColor: o.BackgroundColor,
			HasBackground:   o.HasBackground,
			HasOutline:      o.HasOutline,
			OutlineColor:    o.OutlineColor,
			HasShadow:       o.HasShadow,
			Alignment:       string(o.Alignment),
			PositionX:       o.Position.X,
			PositionY:       o.Position.Y,
			StartTime:       o.Visibility.Start,
			EndTime:         o.Visibility.End,
		})
	}

	for _, o := range snap.Memes {
		req.MemeOverlays = append(req.MemeOverlays, renderapi.MemeOverlayPayload{
			URL:       o.URL,
			PositionX: o.Position.X,
			PositionY: o.Position.Y,
			Width:     o.Size.Width,
			Height:    o.Size.Height,
			StartTime: o.Visibility.Start,
			EndTime:   o.Visibility.End,
		})
	}

	return req
}
