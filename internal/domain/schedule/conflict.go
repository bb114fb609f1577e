package schedule

import "time"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals (aEnd == bStart) do not
// overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FindConflict scans the user's existing shifts for one whose interval
// overlaps [newStart, newEnd). Placeholders never conflict; excludeShiftID
// skips the shift being resized. Returns nil when the interval is free.
func FindConflict(existing []Shift, newStart, newEnd time.Time, excludeShiftID string) *Shift {
	for i := range existing {
		s := existing[i]
		if excludeShiftID != "" && s.ID == excludeShiftID {
			continue
		}
		start, end, ok := s.Interval()
		if !ok {
			continue
		}
		if Overlaps(start, end, newStart, newEnd) {
			return &existing[i]
		}
	}
	return nil
}
