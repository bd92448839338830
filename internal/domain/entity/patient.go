package entity

import "time"

// Patient represents a registered patient. Patients are created at
// registration and mutated by admin/reception staff; they are never deleted
// from this service's view.
type Patient struct {
	ID                    string    `json:"id"`
	FullName              string    `json:"full_name"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Gender                string    `json:"gender,omitempty"`
	BloodGroup            string    `json:"blood_group,omitempty"`
	DepartmentID          string    `json:"department_id,omitempty"`
	PhoneNumber           string    `json:"phone_number,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `json:"created_at,omitempty"`
	UpdatedAt             time.Time `json:"updated_at,omitempty"`
}

func (Patient) Collection() string {
	return "patients"
}
