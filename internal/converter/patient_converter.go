package converter

import (
	"encoding/json"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

func PatientFromDocument(raw json.RawMessage) (*entity.Patient, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Patient{
		ID:                    doc.String("id"),
		FullName:              doc.String("full_name", "fullName", "name"),
		DateOfBirth:           doc.String("date_of_birth", "dateOfBirth", "dob"),
		Gender:                doc.String("gender"),
		BloodGroup:            doc.String("blood_group", "bloodGroup"),
		DepartmentID:          doc.String("department_id", "departmentId", "department"),
		PhoneNumber:           doc.String("phone_number", "phoneNumber", "phone"),
		EmergencyContactName:  doc.String("emergency_contact_name", "emergencyContactName"),
		EmergencyContactPhone: doc.String("emergency_contact_phone", "emergencyContactPhone"),
		CreatedAt:             doc.Time("created_at", "createdAt"),
		UpdatedAt:             doc.Time("updated_at", "updatedAt"),
	}, nil
}

func PatientsFromDocuments(raws []json.RawMessage) ([]entity.Patient, error) {
	patients := make([]entity.Patient, 0, len(raws))
	for _, raw := range raws {
		patient, err := PatientFromDocument(raw)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *patient)
	}
	return patients, nil
}
