package export

// Platform identifies a target publishing platform for an export.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformOriginal  Platform = "original"
)

// Preset annotates a platform with its display properties. MaxDuration
// is in seconds; zero means unlimited. Presets are display-only: the
// trim range is never clamped against them, but ExceedsMaxDuration lets
// the UI warn before submission.
type Preset struct {
	ID          Platform
	Name        string
	AspectRatio string
	MaxDuration float64
}

// ExceedsMaxDuration reports whether a trim of the given length is
// longer than the platform allows.
func (p Preset) ExceedsMaxDuration(trimDuration float64) bool {
	return p.MaxDuration > 0 && trimDuration > p.MaxDuration
}

var presets = []Preset{
	{ID: PlatformTikTok, Name: "TikTok", AspectRatio: "9:16", MaxDuration: 600},
	{ID: PlatformInstagram, Name: "Instagram Reels", AspectRatio: "9:16", MaxDuration: 90},
	{ID: PlatformYouTube, Name: "YouTube Shorts", AspectRatio: "9:16", MaxDuration: 60},
	{ID: PlatformTwitter, Name: "Twitter/X", AspectRatio: "16:9", MaxDuration: 140},
	{ID: PlatformOriginal, Name: "Original", AspectRatio: "16:9"},
}

// Presets returns the fixed platform table in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetFor looks up the preset for a platform id.
func PresetFor(id Platform) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
