package models

// NormalizedPosition locates an overlay as a percentage of the video
// frame's rendered width and height, so placement survives re-render at
// different frame dimensions.
type NormalizedPosition struct {
	X float64 `json:"position_x"`
	Y float64 `json:"position_y"`
}

// Clamped limits both axes to [0, 100].
func (p NormalizedPosition) Clamped() NormalizedPosition {
	out := p
	if out.X < 0 {
		out.X = 0
	} else if out.X > 100 {
		out.X = 100
	}
	if out.Y < 0 {
		out.Y = 0
	} else if out.Y > 100 {
		out.Y = 100
	}
	return out
}

// FrameCenter is the default position for new overlays.
func FrameCenter() NormalizedPosition {
	return NormalizedPosition{X: 50, Y: 50}
}

// OverlaySize is an overlay's rendered size in pixels.
type OverlaySize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Alignment controls how multi-line overlay text is laid out.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// TextOverlay is a styled text element composited onto the video during
// its visibility window.
type TextOverlay struct {
	ID              string             `json:"id"`
	Text            string             `json:"text"`
	Font            string             `json:"font"`
	FontSize        float64            `json:"font_size"`
	Color           string             `json:"color"`
	BackgroundColor string             `json:"background_color,omitempty"`
	HasBackground   bool               `json:"has_background"`
	HasOutline      bool               `json:"has_outline"`
	OutlineColor    string             `json:"outline_color"`
	HasShadow       bool               `json:"has_shadow"`
	Alignment       Alignment          `json:"alignment"`
	Position        NormalizedPosition `json:"position"`
	Visibility      TimeRange          `json:"visibility"`
}

// DefaultTextOverlay returns a text overlay with the editor's starting
// style: white 24pt system font, centered, frame center, visible for the
// first five seconds.
func DefaultTextOverlay(text string, duration float64) TextOverlay {
	return TextOverlay{
		Text:         text,
		Font:         "System",
		FontSize:     24,
		Color:        "#FFFFFF",
		OutlineColor: "#000000",
		Alignment:    AlignCenter,
		Position:     FrameCenter(),
		Visibility:   DefaultVisibility(duration),
	}
}

// MemeOverlay is an external image asset composited onto the video during
// its visibility window.
type MemeOverlay struct {
	ID         string             `json:"id"`
	URL        string             `json:"url"`
	Position   NormalizedPosition `json:"position"`
	Size       OverlaySize        `json:"size"`
	Visibility TimeRange          `json:"visibility"`
}
