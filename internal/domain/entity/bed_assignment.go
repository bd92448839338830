package entity

import "time"

// BedAssignment is the join record between a bed and a patient. A bed has
// at most one assignment without a discharge timestamp at any time; the
// backend enforces that, this service only writes the records.
type BedAssignment struct {
	ID            string     `json:"id"`
	BedID         string     `json:"bed_id"`
	PatientID     string     `json:"patient_id"`
	AssignedAt    time.Time  `json:"assigned_at"`
	DischargedAt  *time.Time `json:"discharged_at,omitempty"`
	AdmissionNote string     `json:"admission_note,omitempty"`
	DischargeNote string     `json:"discharge_note,omitempty"`
	AssignedBy    string     `json:"assigned_by,omitempty"`
}

func (BedAssignment) Collection() string {
	return "bed_assignments"
}

// IsActive reports whether the patient is still on the bed
func (a *BedAssignment) IsActive() bool {
	return a.DischargedAt == nil
}
