package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBedNotFound      = errors.New("bed not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrBedNotAvailable  = errors.New("bed is not available for assignment")
	ErrBedNotOccupied   = errors.New("bed is not occupied")
	ErrInvalidTimestamp = errors.New("invalid timestamp, use RFC 3339")
)

type BedUsecase interface {
	ListBeds(ctx context.Context, filter *entity.BedFilter) ([]entity.Bed, error)
	GetBed(ctx context.Context, id string) (*entity.Bed, error)
	EligiblePatients(ctx context.Context, bedID string) (*dto.EligiblePatientsResponse, error)
	AssignBed(ctx context.Context, bedID string, req *dto.AssignBedRequest, assignedBy string) (*dto.AssignBedResponse, error)
	DischargeBed(ctx context.Context, bedID string, req *dto.DischargeBedRequest) (*entity.Bed, error)
}

type bedUsecase struct {
	log            *logrus.Logger
	cache          *cache.QueryCache
	bedRepo        repository.BedRepository
	assignmentRepo repository.BedAssignmentRepository
	patientRepo    repository.PatientRepository
}

func NewBedUsecase(
	log *logrus.Logger,
	queryCache *cache.QueryCache,
	bedRepo repository.BedRepository,
	assignmentRepo repository.BedAssignmentRepository,
	patientRepo repository.PatientRepository,
) BedUsecase {
	return &bedUsecase{
		log:            log,
		cache:          queryCache,
		bedRepo:        bedRepo,
		assignmentRepo: assignmentRepo,
		patientRepo:    patientRepo,
	}
}

// FilterEligiblePatients applies the assignment eligibility rule. A bed
// with a department admits only patients recorded under the same
// department; patients without a department are excluded. A bed without a
// department admits everyone.
func FilterEligiblePatients(patients []entity.Patient, bed *entity.Bed) []entity.Patient {
	if bed == nil || bed.DepartmentID == "" {
		return patients
	}

	eligible := make([]entity.Patient, 0, len(patients))
	for _, patient := range patients {
		if patient.DepartmentID == bed.DepartmentID {
			eligible = append(eligible, patient)
		}
	}
	return eligible
}

// DepartmentMismatch flags a patient whose department differs from the
// bed's. This is a warning only; it never blocks an assignment.
func DepartmentMismatch(bed *entity.Bed, patient *entity.Patient) bool {
	if bed == nil || patient == nil || bed.DepartmentID == "" {
		return false
	}
	return patient.DepartmentID != bed.DepartmentID
}

func (u *bedUsecase) ListBeds(ctx context.Context, filter *entity.BedFilter) ([]entity.Bed, error) {
	return u.bedRepo.FindAll(ctx, filter)
}

func (u *bedUsecase) GetBed(ctx context.Context, id string) (*entity.Bed, error) {
	bed, err := u.bedRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrBedNotFound
		}
		u.log.Warnf("Failed to find bed %s: %+v", id, err)
		return nil, err
	}
	return bed, nil
}

func (u *bedUsecase) EligiblePatients(ctx context.Context, bedID string) (*dto.EligiblePatientsResponse, error) {
	bed, err := u.GetBed(ctx, bedID)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.EligiblePatientsResponse{
		BedID:    bed.ID,
		Patients: FilterEligiblePatients(patients, bed),
	}, nil
}

func (u *bedUsecase) AssignBed(ctx context.Context, bedID string, req *dto.AssignBedRequest, assignedBy string) (*dto.AssignBedResponse, error) {
	bed, err := u.GetBed(ctx, bedID)
	if err != nil {
		return nil, err
	}

	// Submit guard only. The backend is the sole enforcer against
	// concurrent double-assignment.
	if !bed.IsAvailable() {
		return nil, ErrBedNotAvailable
	}

	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	assignedAt, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return nil, err
	}

	// Optimistic update: flip the cached bed before the backend
	// confirms, restore the snapshot if any mutation fails.
	bedKey := cache.BedKey(bed.ID)
	snapshot := u.cache.Take(bedKey)

	optimistic := *bed
	optimistic.Assign(patient.ID)
	u.cache.Put(bedKey, &optimistic)

	assignment := &entity.BedAssignment{
		ID:            uuid.New().String(),
		BedID:         bed.ID,
		PatientID:     patient.ID,
		AssignedAt:    assignedAt,
		AdmissionNote: req.Note,
		AssignedBy:    assignedBy,
	}

	created, err := u.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		u.cache.Restore(snapshot)
		u.log.Warnf("Failed to create bed assignment: %+v", err)
		return nil, err
	}

	updated, err := u.bedRepo.UpdateStatus(ctx, bed.ID, entity.BedStatusOccupied, patient.ID)
	if err != nil {
		// The assignment document already exists on the backend; without
		// this compensation a later discharge would find a bogus active
		// assignment for an available bed.
		if delErr := u.assignmentRepo.Delete(ctx, created.ID); delErr != nil {
			u.log.Errorf("Failed to delete assignment %s after status update failure: %+v", created.ID, delErr)
		}
		u.cache.Restore(snapshot)
		u.log.Warnf("Failed to update bed %s status: %+v", bed.ID, err)
		return nil, err
	}

	return &dto.AssignBedResponse{
		Bed:                updated,
		Assignment:         created,
		DepartmentMismatch: DepartmentMismatch(bed, patient),
	}, nil
}

func (u *bedUsecase) DischargeBed(ctx context.Context, bedID string, req *dto.DischargeBedRequest) (*entity.Bed, error) {
	bed, err := u.GetBed(ctx, bedID)
	if err != nil {
		return nil, err
	}

	if !bed.IsOccupied() {
		return nil, ErrBedNotOccupied
	}

	dischargedAt, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return nil, err
	}

	active, err := u.assignmentRepo.FindActiveByBedID(ctx, bed.ID)
	if err != nil {
		u.log.Warnf("Failed to find active assignment for bed %s: %+v", bed.ID, err)
		return nil, err
	}

	bedKey := cache.BedKey(bed.ID)
	snapshot := u.cache.Take(bedKey)

	optimistic := *bed
	optimistic.Discharge()
	u.cache.Put(bedKey, &optimistic)

	// A missing assignment record means the backend data is already
	// inconsistent; the bed status is still corrected.
	if active != nil {
		if err := u.assignmentRepo.Close(ctx, active.ID, dischargedAt, req.Note); err != nil {
			u.cache.Restore(snapshot)
			u.log.Warnf("Failed to close assignment %s: %+v", active.ID, err)
			return nil, err
		}
	}

	updated, err := u.bedRepo.UpdateStatus(ctx, bed.ID, entity.BedStatusAvailable, "")
	if err != nil {
		// Undo the discharge stamp so the assignment still matches the
		// occupied bed the backend kept.
		if active != nil {
			if reopenErr := u.assignmentRepo.Reopen(ctx, active.ID); reopenErr != nil {
				u.log.Errorf("Failed to reopen assignment %s after status update failure: %+v", active.ID, reopenErr)
			}
		}
		u.cache.Restore(snapshot)
		u.log.Warnf("Failed to update bed %s status: %+v", bed.ID, err)
		return nil, err
	}

	return updated, nil
}

// parseTimestamp interprets an optional client-clock RFC 3339 timestamp,
// defaulting to server time
func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t, nil
}
