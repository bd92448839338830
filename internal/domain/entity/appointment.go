package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled patient/doctor appointment.
// Patient and doctor display fields are denormalized on the backend
// document so lists can be searched without extra lookups.
type Appointment struct {
	ID           string            `json:"id"`
	PatientID    string            `json:"patient_id"`
	PatientName  string            `json:"patient_name,omitempty"`
	PatientPhone string            `json:"patient_phone,omitempty"`
	DoctorID     string            `json:"doctor_id"`
	DoctorName   string            `json:"doctor_name,omitempty"`
	ScheduledAt  time.Time         `json:"scheduled_at"`
	Reason       string            `json:"reason,omitempty"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at,omitempty"`
}

func (Appointment) Collection() string {
	return "appointments"
}

// IsScheduled checks if the appointment can still transition.
// Anything past scheduled is immutable.
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
