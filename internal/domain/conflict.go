package domain

// FindScheduleConflict returns the first session from existing that overlaps candidate
// on the same date, or nil. A session with the candidate's own non-zero ID is skipped,
// so an update never conflicts with its own previous version.
func FindScheduleConflict(candidate *DefenceSession, existing []*DefenceSession) *DefenceSession {
	window := candidate.Window()

	for _, other := range existing {
		if other == nil {
			continue
		}
		if candidate.ID != 0 && other.ID == candidate.ID {
			continue
		}
		if !candidate.SameDate(other) {
			continue
		}
		if window.Overlaps(other.Window()) {
			return other
		}
	}

	return nil
}
