package schedule

// AppointmentPatch is a partial update of an appointment.
// Nil fields are left untouched by Apply.
type AppointmentPatch struct {
	ClientName  *string
	Time        *string
	StartTime   *string
	EndTime     *string
	StartHour   *int
	Duration    *float64
	Status      *Status
	Member      *int
	Description *string
}

// Apply merges the patch into a copy of a and returns it.
func (p AppointmentPatch) Apply(a Appointment) Appointment {
	if p.ClientName != nil {
		a.ClientName = *p.ClientName
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.StartTime != nil {
		a.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		a.EndTime = *p.EndTime
	}
	if p.StartHour != nil {
		a.StartHour = *p.StartHour
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Member != nil {
		a.Member = *p.Member
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	return a
}

// Empty reports whether the patch changes nothing.
func (p AppointmentPatch) Empty() bool {
	return p == AppointmentPatch{}
}

// PatchFrom builds a patch that sets every mutable field to a's values.
func PatchFrom(a Appointment) AppointmentPatch {
	return AppointmentPatch{
		ClientName:  &a.ClientName,
		Time:        &a.Time,
		StartTime:   &a.StartTime,
		EndTime:     &a.EndTime,
		StartHour:   &a.StartHour,
		Duration:    &a.Duration,
		Status:      &a.Status,
		Member:      &a.Member,
		Description: &a.Description,
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
