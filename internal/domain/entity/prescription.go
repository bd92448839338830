package entity

import "time"

// Prescription represents a medication order issued by a doctor
type Prescription struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	DoctorID   string    `json:"doctor_id"`
	Medication string    `json:"medication"`
	Dosage     string    `json:"dosage,omitempty"`
	Frequency  string    `json:"frequency,omitempty"`
	Duration   string    `json:"duration,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Dispensed  bool      `json:"dispensed"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

func (Prescription) Collection() string {
	return "prescriptions"
}
