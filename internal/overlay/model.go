// Package overlay owns the set of text and meme overlays for one editing
// session: their lifecycle, their time-windowed visibility, and the
// per-overlay drag interaction.
package overlay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kartoza/kartoza-clip-studio/internal/models"
)

// ErrEmptyText rejects text overlays with no visible content before any
// state mutation happens.
var ErrEmptyText = errors.New("overlay text is empty")

// Model is the exclusive owner of a session's overlays, keyed by id with
// insertion order preserved so stacked overlays render deterministically.
type Model struct {
	duration float64
	texts    []models.TextOverlay
	memes    []models.MemeOverlay
}

// NewModel creates an empty overlay collection for a clip of the given
// duration.
func NewModel(duration float64) *Model {
	return &Model{duration: duration}
}

// AddText validates and stores a new text overlay, assigning a fresh id
// and filling unset position/visibility with the editor defaults. The
// stored overlay is returned.
func (m *Model) AddText(o models.TextOverlay) (models.TextOverlay, error) {
	if strings.TrimSpace(o.Text) == "" {
		return models.TextOverlay{}, ErrEmptyText
	}

	o.ID = uuid.NewString()
	if o.Position == (models.NormalizedPosition{}) {
		o.Position = models.FrameCenter()
	}
	if o.Visibility == (models.TimeRange{}) {
		o.Visibility = models.DefaultVisibility(m.duration)
	}
	o.Visibility = o.Visibility.Clamped(m.duration)

	m.texts = append(m.texts, o)
	return o, nil
}

// AddMeme stores a new meme overlay, assigning a fresh id and filling
// unset position/visibility with the editor defaults.
func (m *Model) AddMeme(o models.MemeOverlay) models.MemeOverlay {
	o.ID = uuid.NewString()
	if o.Position == (models.NormalizedPosition{}) {
		o.Position = models.FrameCenter()
	}
	if o.Visibility == (models.TimeRange{}) {
		o.Visibility = models.DefaultVisibility(m.duration)
	}
	o.Visibility = o.Visibility.Clamped(m.duration)

	m.memes = append(m.memes, o)
	return o
}

// TextPatch carries the fields of a text overlay update; nil fields are
// left untouched. The id itself is immutable.
type TextPatch struct {
	Text            *string
	Font            *string
	FontSize        *float64
	Color           *string
	BackgroundColor *string
	HasBackground   *bool
	HasOutline      *bool
	OutlineColor    *string
	HasShadow       *bool
	Alignment       *models.Alignment
	Position        *models.NormalizedPosition
	Visibility      *models.TimeRange
}

// UpdateText applies a patch to the text overlay with the given id.
// Whichever of a pending drag commit or an editor submission lands last
// wins; there is no merging.
func (m *Model) UpdateText(id string, p TextPatch) error {
	for i := range m.texts {
		if m.texts[i].ID != id {
			continue
		}
		o := &m.texts[i]
		if p.Text != nil {
			if strings.TrimSpace(*p.Text) == "" {
				return ErrEmptyText
			}
			o.Text = *p.Text
		}
		if p.Font != nil {
			o.Font = *p.Font
		}
		if p.FontSize != nil {
			o.FontSize = *p.FontSize
		}
		if p.Color != nil {
			o.Color = *p.Color
		}
		if p.BackgroundColor != nil {
			o.BackgroundColor = *p.BackgroundColor
		}
		if p.HasBackground != nil {
			o.HasBackground = *p.HasBackground
		}
		if p.HasOutline != nil {
			o.HasOutline = *p.HasOutline
		}
		if p.OutlineColor != nil {
			o.OutlineColor = *p.OutlineColor
		}
		if p.HasShadow != nil {
			o.HasShadow = *p.HasShadow
		}
		if p.Alignment != nil {
			o.Alignment = *p.Alignment
		}
		if p.Position != nil {
			o.Position = p.Position.Clamped()
		}
		if p.Visibility != nil {
			o.Visibility = p.Visibility.Clamped(m.duration)
		}
		return nil
	}
	return fmt.Errorf("no text overlay with id %s", id)
}

// MemePatch carries the fields of a meme overlay update; nil fields are
// left untouched.
type MemePatch struct {
	Position   *models.NormalizedPosition
	Size       *models.OverlaySize
	Visibility *models.TimeRange
}

// UpdateMeme applies a patch to the meme overlay with the given id.
func (m *Model) UpdateMeme(id string, p MemePatch) error {
	for i := range m.memes {
		if m.memes[i].ID != id {
			continue
		}
		o := &m.memes[i]
		if p.Position != nil {
			o.Position = p.Position.Clamped()
		}
		if p.Size != nil {
			o.Size = *p.Size
		}
		if p.Visibility != nil {
			o.Visibility = p.Visibility.Clamped(m.duration)
		}
		return nil
	}
	return fmt.Errorf("no meme overlay with id %s", id)
}

// Remove deletes the overlay with the given id, of either kind. It
// reports whether anything was removed.
func (m *Model) Remove(id string) bool {
	for i := range m.texts {
		if m.texts[i].ID == id {
			m.texts = append(m.texts[:i], m.texts[i+1:]...)
			return true
		}
	}
	for i := range m.memes {
		if m.memes[i].ID == id {
			m.memes = append(m.memes[:i], m.memes[i+1:]...)
			return true
		}
	}
	return false
}

// VisibleTexts appends the text overlays whose visibility window contains
// t (inclusive on both ends) to dst, in insertion order. Callers reuse
// dst across playback ticks to avoid per-tick allocation.
func (m *Model) VisibleTexts(t float64, dst []models.TextOverlay) []models.TextOverlay {
	for i := range m.texts {
		if m.texts[i].Visibility.Contains(t) {
			dst = append(dst, m.texts[i])
		}
	}
	return dst
}

// VisibleMemes appends the meme overlays visible at t to dst, in
// insertion order.
func (m *Model) VisibleMemes(t float64, dst []models.MemeOverlay) []models.MemeOverlay {
	for i := range m.memes {
		if m.memes[i].Visibility.Contains(t) {
			dst = append(dst, m.memes[i])
		}
	}
	return dst
}

// Texts returns all text overlays in insertion order.
func (m *Model) Texts() []models.TextOverlay {
	return m.texts
}

// Memes returns all meme overlays in insertion order.
func (m *Model) Memes() []models.MemeOverlay {
	return m.memes
}

// Text looks up a text overlay by id.
func (m *Model) Text(id string) (models.TextOverlay, bool) {
	for i := range m.texts {
		if m.texts[i].ID == id {
			return m.texts[i], true
		}
	}
	return models.TextOverlay{}, false
}

// Meme looks up a meme overlay by id.
func (m *Model) Meme(id string) (models.MemeOverlay, bool) {
	for i := range m.memes {
		if m.memes[i].ID == id {
			return m.memes[i], true
		}
	}
	return models.MemeOverlay{}, false
}
