package schedule

// Placement is a candidate position for an appointment.
type Placement struct {
	Member    int
	StartHour int
	Duration  float64 // hours; zero is treated as one hour
}

// End returns the exclusive end of the placement interval.
func (p Placement) End() float64 {
	d := p.Duration
	if d == 0 {
		d = 1
	}
	return float64(p.StartHour) + d
}

// ConflictResult lists the appointments a placement overlaps.
type ConflictResult struct {
	HasConflict bool
	Conflicting []Appointment
}

// CheckConflict returns every appointment of the candidate's member whose
// half-open interval [start, start+duration) overlaps the candidate.
// Touching intervals do not conflict. An appointment whose ID equals
// excludeID is skipped so an appointment can be checked against the rest.
func CheckConflict(candidate Placement, all []Appointment, excludeID string) ConflictResult {
	start := float64(candidate.StartHour)
	end := candidate.End()

	var conflicting []Appointment
	for _, existing := range all {
		if excludeID != "" && existing.ID == excludeID {
			continue
		}
		if existing.Member != candidate.Member {
			continue
		}
		if overlaps(start, end, float64(existing.StartHour), existing.EndHour()) {
			conflicting = append(conflicting, existing)
		}
	}

	return ConflictResult{
		HasConflict: len(conflicting) > 0,
		Conflicting: conflicting,
	}
}

// OverlappingPairs returns each pair of same-member appointments that
// overlap, in collection order.
func OverlappingPairs(all []Appointment) [][2]Appointment {
	var pairs [][2]Appointment
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.Member != b.Member {
				continue
			}
			if overlaps(float64(a.StartHour), a.EndHour(), float64(b.StartHour), b.EndHour()) {
				pairs = append(pairs, [2]Appointment{a, b})
			}
		}
	}
	return pairs
}

func overlaps(aStart, aEnd, bStart, bEnd float64) bool {
	return max(aStart, bStart) < min(aEnd, bEnd)
}
