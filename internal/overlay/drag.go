package overlay

import (
	"github.com/kartoza/kartoza-clip-studio/internal/models"
	"github.com/kartoza/kartoza-clip-studio/internal/timeline"
)

// Frame is the rendered size of the video preview, in the same units as
// incoming gesture deltas. It is an explicit input on every conversion so
// a rotation or resize cannot desynchronize overlay placement.
type Frame struct {
	Width  float64
	Height float64
}

// Drag tracks one continuous drag of a single overlay. The pointer is
// followed without clamping while the drag is live, so the overlay can
// transiently leave the frame under the finger; the final position is
// clamped and normalized only on release. (The trim handles clamp
// continuously instead, since they must never visually cross.)
type Drag struct {
	originX float64
	originY float64
	dx      float64
	dy      float64
}

// StartDrag captures the overlay's pixel position, derived from its
// normalized position against the current frame.
func StartDrag(pos models.NormalizedPosition, f Frame) *Drag {
	return &Drag{
		originX: timeline.OffsetFromNormalized(pos.X, timeline.Surface{Width: f.Width}),
		originY: timeline.OffsetFromNormalized(pos.Y, timeline.Surface{Width: f.Height}),
	}
}

// Move records the cumulative gesture delta from the drag's start.
func (d *Drag) Move(dx, dy float64) {
	d.dx = dx
	d.dy = dy
}

// Position returns the current unclamped pixel position for rendering
// while the drag is live.
func (d *Drag) Position() (x, y float64) {
	return d.originX + d.dx, d.originY + d.dy
}

// Release clamps the final pixel position to the frame and converts it
// back to normalized coordinates for committing to the overlay model.
func (d *Drag) Release(f Frame) models.NormalizedPosition {
	x, y := d.Position()
	return models.NormalizedPosition{
		X: timeline.NormalizedFromOffset(x, timeline.Surface{Width: f.Width}),
		Y: timeline.NormalizedFromOffset(y, timeline.Surface{Width: f.Height}),
	}
}
