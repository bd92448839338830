package converter

import (
	"encoding/json"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

func PrescriptionFromDocument(raw json.RawMessage) (*entity.Prescription, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Prescription{
		ID:         doc.String("id"),
		PatientID:  doc.String("patient_id", "patientId"),
		DoctorID:   doc.String("doctor_id", "doctorId"),
		Medication: doc.String("medication", "medication_name", "medicationName"),
		Dosage:     doc.String("dosage"),
		Frequency:  doc.String("frequency"),
		Duration:   doc.String("duration"),
		Notes:      doc.String("notes"),
		Dispensed:  doc.Bool("dispensed"),
		CreatedAt:  doc.Time("created_at", "createdAt"),
		UpdatedAt:  doc.Time("updated_at", "updatedAt"),
	}, nil
}

func PrescriptionsFromDocuments(raws []json.RawMessage) ([]entity.Prescription, error) {
	prescriptions := make([]entity.Prescription, 0, len(raws))
	for _, raw := range raws {
		prescription, err := PrescriptionFromDocument(raw)
		if err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, *prescription)
	}
	return prescriptions, nil
}

func DepartmentFromDocument(raw json.RawMessage) (*entity.Department, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Department{
		ID:   doc.String("id"),
		Name: doc.String("name", "department_name", "departmentName"),
	}, nil
}

func DepartmentsFromDocuments(raws []json.RawMessage) ([]entity.Department, error) {
	departments := make([]entity.Department, 0, len(raws))
	for _, raw := range raws {
		department, err := DepartmentFromDocument(raw)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *department)
	}
	return departments, nil
}

func RoomFromDocument(raw json.RawMessage) (*entity.Room, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Room{
		ID:           doc.String("id"),
		Number:       doc.String("number", "room_number", "roomNumber"),
		DepartmentID: doc.String("department_id", "departmentId"),
	}, nil
}

func RoomsFromDocuments(raws []json.RawMessage) ([]entity.Room, error) {
	rooms := make([]entity.Room, 0, len(raws))
	for _, raw := range raws {
		room, err := RoomFromDocument(raw)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, nil
}

func NotificationFromDocument(raw json.RawMessage) (*entity.Notification, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Notification{
		ID:        doc.String("id"),
		UserID:    doc.String("user_id", "userId"),
		Title:     doc.String("title"),
		Body:      doc.String("body", "message"),
		Read:      doc.Bool("read", "is_read", "isRead"),
		CreatedAt: doc.Time("created_at", "createdAt"),
	}, nil
}

func NotificationsFromDocuments(raws []json.RawMessage) ([]entity.Notification, error) {
	notifications := make([]entity.Notification, 0, len(raws))
	for _, raw := range raws {
		notification, err := NotificationFromDocument(raw)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *notification)
	}
	return notifications, nil
}
