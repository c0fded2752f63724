package models

// MinTrimGap is the minimum distance in seconds that must separate the
// trim start from the trim end. Every trim mutation clamps against it.
const MinTrimGap = 1.0

// TimeRange is an inclusive window on a clip's time axis, in seconds.
type TimeRange struct {
	Start float64 `json:"start_time"`
	End   float64 `json:"end_time"`
}

// Contains reports whether t falls inside the range, inclusive on both ends.
func (r TimeRange) Contains(t float64) bool {
	return t >= r.Start && t <= r.End
}

// Duration returns the length of the range in seconds.
func (r TimeRange) Duration() float64 {
	return r.End - r.Start
}

// Clamped returns the range limited to [0, duration], flooring End at
// Start so the range never inverts. It imposes no minimum length:
// MinTrimGap applies to trim ranges and is enforced by the trim
// controller, while visibility windows may be arbitrarily short.
func (r TimeRange) Clamped(duration float64) TimeRange {
	out := r
	if out.Start < 0 {
		out.Start = 0
	}
	if out.End > duration {
		out.End = duration
	}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

// DefaultVisibility returns the visibility window assigned to newly created
// overlays: the first five seconds, or the whole clip if shorter.
func DefaultVisibility(duration float64) TimeRange {
	end := 5.0
	if duration < end {
		end = duration
	}
	return TimeRange{Start: 0, End: end}
}
