package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type prescriptionRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewPrescriptionRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.Prescription, error) {
	key := cache.PrescriptionsByPatientKey(patientID)
	if v, ok := r.cache.Get(key); ok {
		if prescriptions, ok := v.([]entity.Prescription); ok {
			return prescriptions, nil
		}
	}

	raws, err := r.client.List(ctx, entity.Prescription{}.Collection(), map[string]string{"patient_id": patientID})
	if err != nil {
		return nil, err
	}

	prescriptions, err := converter.PrescriptionsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, prescriptions)
	return prescriptions, nil
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) (*entity.Prescription, error) {
	raw, err := r.client.Create(ctx, entity.Prescription{}.Collection(), prescription)
	if err != nil {
		return nil, err
	}

	created, err := converter.PrescriptionFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.PrescriptionsPrefix)
	return created, nil
}

func (r *prescriptionRepository) SetDispensed(ctx context.Context, id string, dispensed bool) (*entity.Prescription, error) {
	raw, err := r.client.Patch(ctx, entity.Prescription{}.Collection(), id, map[string]any{"dispensed": dispensed})
	if err != nil {
		return nil, err
	}

	prescription, err := converter.PrescriptionFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.PrescriptionsPrefix)
	return prescription, nil
}
