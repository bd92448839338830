package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	Create(ctx context.Context, patient *entity.Patient) (*entity.Patient, error)
	Update(ctx context.Context, id string, fields map[string]any) (*entity.Patient, error)
}
