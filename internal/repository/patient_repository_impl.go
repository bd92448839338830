package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type patientRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewPatientRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.PatientRepository {
	return &patientRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	key := cache.PatientListKey()
	if v, ok := r.cache.Get(key); ok {
		if patients, ok := v.([]entity.Patient); ok {
			return patients, nil
		}
	}

	raws, err := r.client.List(ctx, entity.Patient{}.Collection(), nil)
	if err != nil {
		return nil, err
	}

	patients, err := converter.PatientsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, patients)
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	key := cache.PatientKey(id)
	if v, ok := r.cache.Get(key); ok {
		if patient, ok := v.(*entity.Patient); ok {
			return patient, nil
		}
	}

	raw, err := r.client.Get(ctx, entity.Patient{}.Collection(), id)
	if err != nil {
		return nil, err
	}

	patient, err := converter.PatientFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, patient)
	return patient, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) (*entity.Patient, error) {
	raw, err := r.client.Create(ctx, entity.Patient{}.Collection(), patient)
	if err != nil {
		return nil, err
	}

	created, err := converter.PatientFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.PatientsPrefix)
	return created, nil
}

func (r *patientRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Patient, error) {
	raw, err := r.client.Patch(ctx, entity.Patient{}.Collection(), id, fields)
	if err != nil {
		return nil, err
	}

	patient, err := converter.PatientFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.PatientsPrefix)
	r.cache.Put(cache.PatientKey(id), patient)
	return patient, nil
}
