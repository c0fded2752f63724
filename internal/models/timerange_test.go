package models

import "testing"

func TestTimeRangeClamped(t *testing.T) {
	tests := []struct {
		name      string
		in        TimeRange
		duration  float64
		wantStart float64
		wantEnd   float64
	}{
		{"inside", TimeRange{Start: 2, End: 8}, 30, 2, 8},
		{"negative start", TimeRange{Start: -3, End: 8}, 30, 0, 8},
		{"end past duration", TimeRange{Start: 2, End: 99}, 30, 2, 30},
		{"inverted floors end at start", TimeRange{Start: 8, End: 2}, 30, 8, 8},
		{"sub-second window survives", TimeRange{Start: 4, End: 4.2}, 30, 4, 4.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamped(tt.duration)
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("Clamped(%v, %v) = [%v, %v], want [%v, %v]",
					tt.in, tt.duration, got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{Start: 2, End: 8}
	for _, tc := range []struct {
		t    float64
		want bool
	}{
		{2, true}, {8, true}, {5, true}, {1.99, false}, {8.01, false},
	} {
		if got := r.Contains(tc.t); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}
