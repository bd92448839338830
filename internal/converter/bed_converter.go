package converter

import (
	"encoding/json"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

func BedFromDocument(raw json.RawMessage) (*entity.Bed, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Bed{
		ID:           doc.String("id"),
		Number:       doc.String("number", "bed_number", "bedNumber"),
		RoomID:       doc.String("room_id", "roomId"),
		DepartmentID: doc.String("department_id", "departmentId"),
		Status:       entity.BedStatus(doc.String("status")),
		PatientID:    doc.String("patient_id", "patientId", "current_patient_id", "currentPatientId"),
		CreatedAt:    doc.Time("created_at", "createdAt"),
		UpdatedAt:    doc.Time("updated_at", "updatedAt"),
	}, nil
}

func BedsFromDocuments(raws []json.RawMessage) ([]entity.Bed, error) {
	beds := make([]entity.Bed, 0, len(raws))
	for _, raw := range raws {
		bed, err := BedFromDocument(raw)
		if err != nil {
			return nil, err
		}
		beds = append(beds, *bed)
	}
	return beds, nil
}

func BedAssignmentFromDocument(raw json.RawMessage) (*entity.BedAssignment, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.BedAssignment{
		ID:            doc.String("id"),
		BedID:         doc.String("bed_id", "bedId"),
		PatientID:     doc.String("patient_id", "patientId"),
		AssignedAt:    doc.Time("assigned_at", "assignedAt"),
		DischargedAt:  doc.TimePtr("discharged_at", "dischargedAt"),
		AdmissionNote: doc.String("admission_note", "admissionNote"),
		DischargeNote: doc.String("discharge_note", "dischargeNote"),
		AssignedBy:    doc.String("assigned_by", "assignedBy"),
	}, nil
}

func BedAssignmentsFromDocuments(raws []json.RawMessage) ([]entity.BedAssignment, error) {
	assignments := make([]entity.BedAssignment, 0, len(raws))
	for _, raw := range raws {
		assignment, err := BedAssignmentFromDocument(raw)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *assignment)
	}
	return assignments, nil
}
