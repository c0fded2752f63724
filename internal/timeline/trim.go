package timeline

import "github.com/kartoza/kartoza-clip-studio/internal/models"

// DefaultHandleHitRadius is the hit-test tolerance around each trim
// handle, deliberately larger than the drawn handle to ease pointer
// accuracy.
const DefaultHandleHitRadius = 25.0

// DragTarget identifies which element of the timeline a gesture is
// manipulating.
type DragTarget int

const (
	DragNone DragTarget = iota
	DragLeftHandle
	DragRightHandle
	DragPlayhead
)

// TrimState is the trim selection and scrub position for one loaded clip.
// Duration is fixed when the clip's metadata loads; the playhead always
// stays inside [Start, End].
type TrimState struct {
	Duration float64
	Start    float64
	End      float64
	Playhead float64
}

// Controller interprets a continuous single-pointer drag as one of three
// mutually exclusive interactions: dragging the left handle, dragging the
// right handle, or scrubbing the playhead. Movement samples arrive as
// plain offsets; the controller owns all mutable state so re-renders
// cannot observe stale captures.
type Controller struct {
	state  TrimState
	target DragTarget

	// HitRadius overrides DefaultHandleHitRadius when positive. The TUI
	// sets a cell-sized radius; touch surfaces keep the default.
	HitRadius float64

	// Seek is invoked with the new playhead time on every scrub movement.
	// Scrubbing is live, not deferred to gesture end. May be nil.
	Seek func(time float64)
}

// NewController creates a controller for a clip of the given duration,
// with the trim spanning the whole clip and the playhead at the start.
func NewController(duration float64) *Controller {
	return &Controller{
		state: TrimState{Duration: duration, Start: 0, End: duration},
	}
}

// State returns a copy of the current trim state.
func (c *Controller) State() TrimState {
	return c.state
}

// Dragging returns the element the active gesture is manipulating, or
// DragNone between gestures.
func (c *Controller) Dragging() DragTarget {
	return c.target
}

// GestureStart classifies a gesture by hit-testing the start offset
// against the left handle, then the right handle, then falling back to a
// playhead scrub. Left-before-right ordering breaks ties when both
// handles sit near the low end of the clip. A start arriving while a drag
// is already active simply re-runs classification against the current
// handle positions.
func (c *Controller) GestureStart(offset float64, s Surface) DragTarget {
	radius := c.HitRadius
	if radius <= 0 {
		radius = DefaultHandleHitRadius
	}

	leftPos := OffsetFromTime(c.state.Start, s, c.state.Duration)
	rightPos := OffsetFromTime(c.state.End, s, c.state.Duration)

	switch {
	case abs(offset-leftPos) < radius:
		c.target = DragLeftHandle
	case abs(offset-rightPos) < radius:
		c.target = DragRightHandle
	default:
		c.target = DragPlayhead
	}
	return c.target
}

// GestureMove applies one movement sample. Handles clamp continuously so
// they can never cross or leave the clip; the playhead clamps to the trim
// bounds and seeks immediately.
func (c *Controller) GestureMove(offset float64, s Surface) {
	t := TimeFromOffset(offset, s, c.state.Duration)

	switch c.target {
	case DragLeftHandle:
		c.state.Start = clamp(t, 0, c.state.End-models.MinTrimGap)
		c.resyncPlayhead()
	case DragRightHandle:
		c.state.End = clamp(t, c.state.Start+models.MinTrimGap, c.state.Duration)
		c.resyncPlayhead()
	case DragPlayhead:
		c.scrubTo(t)
	}
}

// GestureEnd finishes the active gesture. The last applied value
// persists; nothing is committed or rolled back here.
func (c *Controller) GestureEnd() {
	c.target = DragNone
}

// SetTrim applies trim bounds directly (e.g. from a form), clamped the
// same way handle drags are. Violating updates are clamped, never
// dropped.
func (c *Controller) SetTrim(start, end float64) {
	c.state.Start = clamp(start, 0, c.state.Duration-models.MinTrimGap)
	c.state.End = clamp(end, c.state.Start+models.MinTrimGap, c.state.Duration)
	c.resyncPlayhead()
}

// SetPlayhead tracks playback progress reported by the video surface,
// clamped into the trim bounds. It does not seek.
func (c *Controller) SetPlayhead(t float64) {
	c.state.Playhead = clamp(t, c.state.Start, c.state.End)
}

// Range returns the trim bounds as a TimeRange.
func (c *Controller) Range() models.TimeRange {
	return models.TimeRange{Start: c.state.Start, End: c.state.End}
}

func (c *Controller) scrubTo(t float64) {
	c.state.Playhead = clamp(t, c.state.Start, c.state.End)
	if c.Seek != nil {
		c.Seek(c.state.Playhead)
	}
}

// resyncPlayhead resets the playhead to the trim start when a bounds
// change pushes it outside [Start, End].
func (c *Controller) resyncPlayhead() {
	if c.state.Playhead < c.state.Start || c.state.Playhead > c.state.End {
		c.scrubTo(c.state.Start)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
