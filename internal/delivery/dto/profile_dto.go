package dto

import "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

// PatientProfileResponse composes everything the patient profile view
// needs in one payload
type PatientProfileResponse struct {
	Patient       *entity.Patient        `json:"patient"`
	CurrentBed    *entity.Bed            `json:"current_bed,omitempty"`
	Assignments   []entity.BedAssignment `json:"assignments,omitempty"`
	Appointments  []entity.Appointment   `json:"appointments,omitempty"`
	Prescriptions []entity.Prescription  `json:"prescriptions,omitempty"`
}
