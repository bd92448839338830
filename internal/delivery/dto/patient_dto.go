package dto

type RegisterPatientRequest struct {
	FullName              string `json:"full_name" validate:"required,min=2"`
	DateOfBirth           string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender                string `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup            string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DepartmentID          string `json:"department_id" validate:"omitempty"`
	PhoneNumber           string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty,min=2"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,min=7,max=20"`
}

// UpdatePatientRequest patches only the provided fields
type UpdatePatientRequest struct {
	FullName              string `json:"full_name" validate:"omitempty,min=2"`
	DateOfBirth           string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender                string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup            string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DepartmentID          string `json:"department_id" validate:"omitempty"`
	PhoneNumber           string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty,min=2"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,min=7,max=20"`
}
