package booking

import "fmt"

// Candidate starts are generated on a fixed 30-minute grid regardless of
// service duration, so two services of different length share the same grid
// for a given day. Overlapping-but-unbooked candidates are expected; the
// commit path resolves them.
const SlotStepMinutes = 30

// Interval is a half-open [StartMin, EndMin) range in minutes from midnight.
type Interval struct {
	StartMin int
	EndMin   int
}

func (i Interval) Overlaps(other Interval) bool {
	return i.StartMin < other.EndMin && i.EndMin > other.StartMin
}

func IntervalOf(start string, durationMin int) (Interval, bool) {
	s, ok := ParseHM(start)
	if !ok {
		return Interval{}, false
	}
	return Interval{StartMin: s, EndMin: s + durationMin}, true
}

// ParseHM converts "HH:MM" to minutes from midnight.
func ParseHM(hm string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func FormatHM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// GenerateStarts produces every candidate start on the 30-minute grid from
// open onwards such that start+duration still fits before close.
func GenerateStarts(open, close string, durationMin int) []string {
	openMin, ok := ParseHM(open)
	if !ok {
		return nil
	}
	closeMin, ok := ParseHM(close)
	if !ok || durationMin <= 0 {
		return nil
	}

	var starts []string
	for cur := openMin; cur+durationMin <= closeMin; cur += SlotStepMinutes {
		starts = append(starts, FormatHM(cur))
	}
	return starts
}

// FilterAvailable removes every candidate whose [start, start+duration)
// interval intersects a committed booking. Interval overlap, not start-time
// equality: a 40-minute booking at 10:00 also blocks the 10:30 candidate.
func FilterAvailable(starts []string, durationMin int, booked []Interval) []string {
	out := make([]string, 0, len(starts))

	for _, start := range starts {
		candidate, ok := IntervalOf(start, durationMin)
		if !ok {
			continue
		}

		conflict := false
		for _, b := range booked {
			if candidate.Overlaps(b) {
				conflict = true
				break
			}
		}

		if !conflict {
			out = append(out, start)
		}
	}

	return out
}
