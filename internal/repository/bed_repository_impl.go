package repository

import (
	"context"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type bedRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewBedRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.BedRepository {
	return &bedRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *bedRepository) FindAll(ctx context.Context, filter *entity.BedFilter) ([]entity.Bed, error) {
	departmentID, status := "", ""
	if filter != nil {
		departmentID = filter.DepartmentID
		status = string(filter.Status)
	}

	key := cache.BedListKey(departmentID, status)
	if v, ok := r.cache.Get(key); ok {
		if beds, ok := v.([]entity.Bed); ok {
			return beds, nil
		}
	}

	params := map[string]string{}
	if departmentID != "" {
		params["department_id"] = departmentID
	}
	if status != "" {
		params["status"] = status
	}

	raws, err := r.client.List(ctx, entity.Bed{}.Collection(), params)
	if err != nil {
		return nil, err
	}

	beds, err := converter.BedsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, beds)
	return beds, nil
}

func (r *bedRepository) FindByID(ctx context.Context, id string) (*entity.Bed, error) {
	key := cache.BedKey(id)
	if v, ok := r.cache.Get(key); ok {
		if bed, ok := v.(*entity.Bed); ok {
			return bed, nil
		}
	}

	raw, err := r.client.Get(ctx, entity.Bed{}.Collection(), id)
	if err != nil {
		return nil, err
	}

	bed, err := converter.BedFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, bed)
	return bed, nil
}

func (r *bedRepository) UpdateStatus(ctx context.Context, id string, status entity.BedStatus, patientID string) (*entity.Bed, error) {
	fields := map[string]any{
		"status": status,
	}
	if patientID == "" {
		fields["patient_id"] = nil
	} else {
		fields["patient_id"] = patientID
	}

	raw, err := r.client.Patch(ctx, entity.Bed{}.Collection(), id, fields)
	if err != nil {
		return nil, err
	}

	bed, err := converter.BedFromDocument(raw)
	if err != nil {
		return nil, err
	}

	// Drop every cached bed query and reseed the single-bed entry with
	// the backend's confirmed state.
	r.cache.Invalidate(cache.BedsPrefix)
	r.cache.Put(cache.BedKey(id), bed)
	return bed, nil
}
