package dto

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" validate:"required"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	ScheduledAt string `json:"scheduled_at" validate:"required"` // RFC 3339
	Reason      string `json:"reason" validate:"omitempty,max=500"`
}

// AppointmentListQuery carries the in-memory list transforms: substring
// search, doctor/status filters, and per-column ordering. Parsed from
// query parameters, so no validation tags.
type AppointmentListQuery struct {
	Search     string
	DoctorID   string
	Status     string
	SortColumn string
	Descending bool
}
