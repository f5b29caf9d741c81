package schedule

import "strconv"

// Filter values shared by the status, team and assigned filters.
const (
	FilterAll        = "All"
	FilterAssigned   = "Assigned"
	FilterUnassigned = "Unassigned"
)

// Views offered by the header. Only the team view renders a grid.
var Views = []string{"Events", "Team View", "Team Tracking"}

// DefaultView is the view selected on first start.
const DefaultView = "Team View"

// MatchesStatus reports whether a passes the status filter.
func MatchesStatus(a Appointment, filter string) bool {
	return filter == FilterAll || filter == "" || string(a.Status) == filter
}

// MatchesTeam reports whether a passes the team filter, which holds a
// member id in decimal or "All".
func MatchesTeam(a Appointment, filter string) bool {
	return filter == FilterAll || filter == "" || strconv.Itoa(a.Member) == filter
}

// MatchesAssigned reports whether j passes the assigned filter.
func MatchesAssigned(j Job, filter string) bool {
	switch filter {
	case FilterAssigned:
		return j.Assigned()
	case FilterUnassigned:
		return !j.Assigned()
	default:
		return true
	}
}

// FilterAppointments returns the appointments passing both filters,
// preserving order.
func FilterAppointments(all []Appointment, statusFilter, teamFilter string) []Appointment {
	out := make([]Appointment, 0, len(all))
	for _, a := range all {
		if MatchesStatus(a, statusFilter) && MatchesTeam(a, teamFilter) {
			out = append(out, a)
		}
	}
	return out
}

// FilterJobs returns the jobs passing the assigned filter.
func FilterJobs(all []Job, assignedFilter string) []Job {
	out := make([]Job, 0, len(all))
	for _, j := range all {
		if MatchesAssigned(j, assignedFilter) {
			out = append(out, j)
		}
	}
	return out
}

// StatusFilters lists the status filter cycle.
func StatusFilters() []string {
	out := []string{FilterAll}
	for _, s := range Statuses {
		out = append(out, string(s))
	}
	return out
}

// TeamFilters lists the team filter cycle for a roster.
func TeamFilters(members []TeamMember) []string {
	out := []string{FilterAll}
	for _, m := range members {
		out = append(out, strconv.Itoa(m.ID))
	}
	return out
}

// AssignedFilters lists the assigned filter cycle.
func AssignedFilters() []string {
	return []string{FilterAssigned, FilterUnassigned, FilterAll}
}

// Next returns the value after current in values, wrapping around.
// Unknown values restart the cycle.
func Next(values []string, current string) string {
	if len(values) == 0 {
		return current
	}
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
