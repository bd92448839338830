package repository

import (
	"context"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

type BedRepository interface {
	FindAll(ctx context.Context, filter *entity.BedFilter) ([]entity.Bed, error)
	FindByID(ctx context.Context, id string) (*entity.Bed, error)
	// UpdateStatus patches a bed's status on the backend. An empty
	// patientID clears the patient reference.
	UpdateStatus(ctx context.Context, id string, status entity.BedStatus, patientID string) (*entity.Bed, error)
}

type BedAssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.BedAssignment) (*entity.BedAssignment, error)
	FindActiveByBedID(ctx context.Context, bedID string) (*entity.BedAssignment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]entity.BedAssignment, error)
	// Close stamps an assignment with its discharge time and note
	Close(ctx context.Context, id string, dischargedAt time.Time, note string) error
	// Reopen clears the discharge stamp, undoing a Close
	Reopen(ctx context.Context, id string) error
	// Delete removes an assignment record, undoing a Create
	Delete(ctx context.Context, id string) error
}
