package entity

import "time"

// BedStatus represents the client-visible state of a physical bed
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "available"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusCleaning    BedStatus = "cleaning"
	BedStatusMaintenance BedStatus = "maintenance"
)

// Bed represents a physical bed resource
type Bed struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	RoomID       string    `json:"room_id,omitempty"`
	DepartmentID string    `json:"department_id,omitempty"`
	Status       BedStatus `json:"status"`
	PatientID    string    `json:"patient_id,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

func (Bed) Collection() string {
	return "beds"
}

// IsAvailable checks if the bed can accept an assignment
func (b *Bed) IsAvailable() bool {
	return b.Status == BedStatusAvailable
}

// IsOccupied checks if the bed currently holds a patient
func (b *Bed) IsOccupied() bool {
	return b.Status == BedStatusOccupied
}

// Assign moves the bed to occupied and records the patient.
// A bed holds a patient reference only while occupied.
func (b *Bed) Assign(patientID string) {
	b.Status = BedStatusOccupied
	b.PatientID = patientID
}

// Discharge moves the bed back to available and clears the patient
func (b *Bed) Discharge() {
	b.Status = BedStatusAvailable
	b.PatientID = ""
}

// BedFilter holds optional list filters
type BedFilter struct {
	DepartmentID string
	Status       BedStatus
}
