package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type appointmentRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewAppointmentRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.AppointmentRepository {
	return &appointmentRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	key := cache.AppointmentListKey()
	if v, ok := r.cache.Get(key); ok {
		if appointments, ok := v.([]entity.Appointment); ok {
			return appointments, nil
		}
	}

	raws, err := r.client.List(ctx, entity.Appointment{}.Collection(), nil)
	if err != nil {
		return nil, err
	}

	appointments, err := converter.AppointmentsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, appointments)
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	key := cache.AppointmentKey(id)
	if v, ok := r.cache.Get(key); ok {
		if appointment, ok := v.(*entity.Appointment); ok {
			return appointment, nil
		}
	}

	raw, err := r.client.Get(ctx, entity.Appointment{}.Collection(), id)
	if err != nil {
		return nil, err
	}

	appointment, err := converter.AppointmentFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, appointment)
	return appointment, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	key := cache.AppointmentsByPatientKey(patientID)
	if v, ok := r.cache.Get(key); ok {
		if appointments, ok := v.([]entity.Appointment); ok {
			return appointments, nil
		}
	}

	raws, err := r.client.List(ctx, entity.Appointment{}.Collection(), map[string]string{"patient_id": patientID})
	if err != nil {
		return nil, err
	}

	appointments, err := converter.AppointmentsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, appointments)
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	raw, err := r.client.Create(ctx, entity.Appointment{}.Collection(), appointment)
	if err != nil {
		return nil, err
	}

	created, err := converter.AppointmentFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.AppointmentsPrefix)
	return created, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	raw, err := r.client.Patch(ctx, entity.Appointment{}.Collection(), id, map[string]any{"status": status})
	if err != nil {
		return nil, err
	}

	appointment, err := converter.AppointmentFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.AppointmentsPrefix)
	r.cache.Put(cache.AppointmentKey(id), appointment)
	return appointment, nil
}
