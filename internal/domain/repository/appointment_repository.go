package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]entity.Appointment, error)
	Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error)
}

type PrescriptionRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]entity.Prescription, error)
	Create(ctx context.Context, prescription *entity.Prescription) (*entity.Prescription, error)
	SetDispensed(ctx context.Context, id string, dispensed bool) (*entity.Prescription, error)
}
