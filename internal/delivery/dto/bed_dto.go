package dto

import "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

// AssignBedRequest moves an available bed to occupied. Timestamp comes
// from the caller's clock (RFC 3339) and defaults to server time.
type AssignBedRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	Note      string `json:"note" validate:"omitempty,max=500"`
	Timestamp string `json:"timestamp" validate:"omitempty"`
}

// DischargeBedRequest moves an occupied bed back to available
type DischargeBedRequest struct {
	Note      string `json:"note" validate:"omitempty,max=500"`
	Timestamp string `json:"timestamp" validate:"omitempty"`
}

type AssignBedResponse struct {
	Bed        *entity.Bed           `json:"bed"`
	Assignment *entity.BedAssignment `json:"assignment"`
	// DepartmentMismatch warns that the selected patient's department
	// differs from the bed's. It never blocks the assignment.
	DepartmentMismatch bool `json:"department_mismatch"`
}

type EligiblePatientsResponse struct {
	BedID    string           `json:"bed_id"`
	Patients []entity.Patient `json:"patients"`
}

// DepartmentBedsResponse groups beds under a department for dashboards
type DepartmentBedsResponse struct {
	DepartmentID   string       `json:"department_id"`
	DepartmentName string       `json:"department_name"`
	Beds           []entity.Bed `json:"beds"`
}

type DashboardResponse struct {
	TotalBeds        int                      `json:"total_beds"`
	CountsByStatus   map[string]int           `json:"counts_by_status"`
	OccupancyRate    float64                  `json:"occupancy_rate"`
	BedsByDepartment []DepartmentBedsResponse `json:"beds_by_department"`
	AppointmentsToday int                     `json:"appointments_today"`
}
