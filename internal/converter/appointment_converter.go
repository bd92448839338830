package converter

import (
	"encoding/json"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

func AppointmentFromDocument(raw json.RawMessage) (*entity.Appointment, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Appointment{
		ID:           doc.String("id"),
		PatientID:    doc.String("patient_id", "patientId"),
		PatientName:  doc.String("patient_name", "patientName"),
		PatientPhone: doc.String("patient_phone", "patientPhone"),
		DoctorID:     doc.String("doctor_id", "doctorId"),
		DoctorName:   doc.String("doctor_name", "doctorName"),
		ScheduledAt:  doc.Time("scheduled_at", "scheduledAt", "date"),
		Reason:       doc.String("reason"),
		Status:       entity.AppointmentStatus(doc.String("status")),
		CreatedAt:    doc.Time("created_at", "createdAt"),
		UpdatedAt:    doc.Time("updated_at", "updatedAt"),
	}, nil
}

func AppointmentsFromDocuments(raws []json.RawMessage) ([]entity.Appointment, error) {
	appointments := make([]entity.Appointment, 0, len(raws))
	for _, raw := range raws {
		appointment, err := AppointmentFromDocument(raw)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *appointment)
	}
	return appointments, nil
}
