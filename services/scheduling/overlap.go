package scheduling

import "tutorbase/models"

// Overlaps reports whether two half-open intervals intersect. Touching
// boundaries (a ends exactly where b starts) do not count as overlap.
func Overlaps(a, b models.Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// HasOverlap reports whether the candidate span intersects any of the
// booked blocks. Blocks need no particular ordering.
func HasOverlap(candidate models.Interval, blocks []models.BookedBlock) bool {
	for _, blk := range blocks {
		if Overlaps(candidate, blk.Interval) {
			return true
		}
	}
	return false
}
