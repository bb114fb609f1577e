package schedule

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 7, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(9, 0), at(17, 0), at(9, 0), at(17, 0), true},
		{"partial overlap at end", at(9, 0), at(17, 0), at(16, 0), at(20, 0), true},
		{"partial overlap at start", at(9, 0), at(17, 0), at(8, 0), at(10, 0), true},
		{"contained", at(9, 0), at(17, 0), at(11, 0), at(12, 0), true},
		{"containing", at(11, 0), at(12, 0), at(9, 0), at(17, 0), true},
		{"back-to-back after", at(9, 0), at(17, 0), at(17, 0), at(20, 0), false},
		{"back-to-back before", at(9, 0), at(17, 0), at(7, 0), at(9, 0), false},
		{"disjoint", at(9, 0), at(12, 0), at(13, 0), at(14, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
				t.Errorf("Overlaps(%v-%v, %v-%v) = %v, want %v", c.aStart, c.aEnd, c.bStart, c.bEnd, got, c.want)
			}
		})
	}
}

func timedShift(id string, start, end time.Time) Shift {
	return Shift{ID: id, UserID: "u1", Date: at(0, 0), StartTime: &start, EndTime: &end}
}

func TestFindConflict(t *testing.T) {
	existing := []Shift{
		timedShift("s1", at(9, 0), at(17, 0)),
		{ID: "s2", UserID: "u1", Date: at(0, 0)}, // placeholder
	}

	t.Run("overlapping interval conflicts", func(t *testing.T) {
		hit := FindConflict(existing, at(16, 0), at(20, 0), "")
		if hit == nil || hit.ID != "s1" {
			t.Fatalf("FindConflict = %v, want shift s1", hit)
		}
	})

	t.Run("back-to-back interval is free", func(t *testing.T) {
		if hit := FindConflict(existing, at(17, 0), at(20, 0), ""); hit != nil {
			t.Fatalf("FindConflict = %v, want nil", hit)
		}
	})

	t.Run("placeholder never conflicts", func(t *testing.T) {
		if hit := FindConflict(existing[1:], at(9, 0), at(17, 0), ""); hit != nil {
			t.Fatalf("FindConflict = %v, want nil", hit)
		}
	})

	t.Run("resized shift excludes itself", func(t *testing.T) {
		if hit := FindConflict(existing, at(10, 0), at(18, 0), "s1"); hit != nil {
			t.Fatalf("FindConflict = %v, want nil", hit)
		}
	})
}
