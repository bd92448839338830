package repository

import (
	"context"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/converter"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	domainRepo "github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
)

type bedAssignmentRepository struct {
	client *backend.Client
	cache  *cache.QueryCache
}

func NewBedAssignmentRepository(client *backend.Client, queryCache *cache.QueryCache) domainRepo.BedAssignmentRepository {
	return &bedAssignmentRepository{
		client: client,
		cache:  queryCache,
	}
}

func (r *bedAssignmentRepository) Create(ctx context.Context, assignment *entity.BedAssignment) (*entity.BedAssignment, error) {
	raw, err := r.client.Create(ctx, entity.BedAssignment{}.Collection(), assignment)
	if err != nil {
		return nil, err
	}

	created, err := converter.BedAssignmentFromDocument(raw)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(cache.BedAssignmentsPrefix)
	return created, nil
}

func (r *bedAssignmentRepository) FindActiveByBedID(ctx context.Context, bedID string) (*entity.BedAssignment, error) {
	raws, err := r.client.List(ctx, entity.BedAssignment{}.Collection(), map[string]string{"bed_id": bedID})
	if err != nil {
		return nil, err
	}

	assignments, err := converter.BedAssignmentsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	for i := range assignments {
		if assignments[i].IsActive() {
			return &assignments[i], nil
		}
	}
	return nil, nil
}

func (r *bedAssignmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.BedAssignment, error) {
	key := cache.Key(cache.BedAssignmentsPrefix, "patient", patientID)
	if v, ok := r.cache.Get(key); ok {
		if assignments, ok := v.([]entity.BedAssignment); ok {
			return assignments, nil
		}
	}

	raws, err := r.client.List(ctx, entity.BedAssignment{}.Collection(), map[string]string{"patient_id": patientID})
	if err != nil {
		return nil, err
	}

	assignments, err := converter.BedAssignmentsFromDocuments(raws)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, assignments)
	return assignments, nil
}

func (r *bedAssignmentRepository) Close(ctx context.Context, id string, dischargedAt time.Time, note string) error {
	fields := map[string]any{
		"discharged_at": dischargedAt.Format(time.RFC3339),
	}
	if note != "" {
		fields["discharge_note"] = note
	}

	if _, err := r.client.Patch(ctx, entity.BedAssignment{}.Collection(), id, fields); err != nil {
		return err
	}

	r.cache.Invalidate(cache.BedAssignmentsPrefix)
	return nil
}

func (r *bedAssignmentRepository) Reopen(ctx context.Context, id string) error {
	fields := map[string]any{
		"discharged_at":  nil,
		"discharge_note": nil,
	}

	if _, err := r.client.Patch(ctx, entity.BedAssignment{}.Collection(), id, fields); err != nil {
		return err
	}

	r.cache.Invalidate(cache.BedAssignmentsPrefix)
	return nil
}

func (r *bedAssignmentRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, entity.BedAssignment{}.Collection(), id); err != nil {
		return err
	}

	r.cache.Invalidate(cache.BedAssignmentsPrefix)
	return nil
}
