package dto

type CreatePrescriptionRequest struct {
	PatientID  string `json:"patient_id" validate:"required"`
	Medication string `json:"medication" validate:"required,min=2"`
	Dosage     string `json:"dosage" validate:"omitempty,max=100"`
	Frequency  string `json:"frequency" validate:"omitempty,max=100"`
	Duration   string `json:"duration" validate:"omitempty,max=100"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}
