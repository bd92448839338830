package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"

	"github.com/stretchr/testify/require"
)

func TestFilterEligiblePatients(t *testing.T) {
	patients := []entity.Patient{
		{ID: "p1", FullName: "Alice", DepartmentID: "er"},
		{ID: "p2", FullName: "Bob", DepartmentID: "icu"},
		{ID: "p3", FullName: "Carol"},
	}

	t.Run("department bed admits only same-department patients", func(t *testing.T) {
		bed := &entity.Bed{ID: "b1", DepartmentID: "er"}
		eligible := FilterEligiblePatients(patients, bed)
		require.Len(t, eligible, 1)
		require.Equal(t, "p1", eligible[0].ID)
	})

	t.Run("patients without a department are excluded", func(t *testing.T) {
		bed := &entity.Bed{ID: "b1", DepartmentID: "icu"}
		eligible := FilterEligiblePatients(patients, bed)
		require.Len(t, eligible, 1)
		require.Equal(t, "p2", eligible[0].ID)
	})

	t.Run("bed without a department admits everyone", func(t *testing.T) {
		bed := &entity.Bed{ID: "b2"}
		eligible := FilterEligiblePatients(patients, bed)
		require.Len(t, eligible, 3)
	})

	t.Run("nil bed admits everyone", func(t *testing.T) {
		eligible := FilterEligiblePatients(patients, nil)
		require.Len(t, eligible, 3)
	})
}

func TestDepartmentMismatch(t *testing.T) {
	bed := &entity.Bed{ID: "b1", DepartmentID: "er"}

	require.False(t, DepartmentMismatch(bed, &entity.Patient{ID: "p1", DepartmentID: "er"}))
	require.True(t, DepartmentMismatch(bed, &entity.Patient{ID: "p2", DepartmentID: "icu"}))
	require.False(t, DepartmentMismatch(&entity.Bed{ID: "b2"}, &entity.Patient{ID: "p2", DepartmentID: "icu"}))
	require.False(t, DepartmentMismatch(nil, &entity.Patient{ID: "p1"}))
	require.False(t, DepartmentMismatch(bed, nil))
}

func newBedUsecaseFixture(bed entity.Bed, patient entity.Patient) (*fakeBedRepo, *fakeAssignmentRepo, *cache.QueryCache, BedUsecase) {
	bedRepo := &fakeBedRepo{beds: map[string]entity.Bed{bed.ID: bed}}
	assignmentRepo := &fakeAssignmentRepo{active: map[string]entity.BedAssignment{}}
	patientRepo := &fakePatientRepo{patients: map[string]entity.Patient{patient.ID: patient}}
	queryCache := cache.NewQueryCache()
	usecase := NewBedUsecase(testLogger(), queryCache, bedRepo, assignmentRepo, patientRepo)
	return bedRepo, assignmentRepo, queryCache, usecase
}

func TestAssignBed(t *testing.T) {
	ctx := context.Background()
	bed := entity.Bed{ID: "b1", Number: "101", DepartmentID: "er", Status: entity.BedStatusAvailable}
	patient := entity.Patient{ID: "p1", FullName: "Alice", DepartmentID: "er"}

	t.Run("success records assignment and flips bed status", func(t *testing.T) {
		bedRepo, assignmentRepo, _, usecase := newBedUsecaseFixture(bed, patient)

		result, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p1", Note: "admitted"}, "staff-1")
		require.NoError(t, err)

		require.Equal(t, entity.BedStatusOccupied, result.Bed.Status)
		require.Equal(t, "p1", result.Bed.PatientID)
		require.False(t, result.DepartmentMismatch)

		require.Len(t, assignmentRepo.created, 1)
		created := assignmentRepo.created[0]
		require.NotEmpty(t, created.ID)
		require.Equal(t, "b1", created.BedID)
		require.Equal(t, "p1", created.PatientID)
		require.Equal(t, "admitted", created.AdmissionNote)
		require.Equal(t, "staff-1", created.AssignedBy)
		require.False(t, created.AssignedAt.IsZero())

		require.Equal(t, entity.BedStatusOccupied, bedRepo.updatedStatus)
	})

	t.Run("flags department mismatch without blocking", func(t *testing.T) {
		other := entity.Patient{ID: "p2", FullName: "Bob", DepartmentID: "icu"}
		_, _, _, usecase := newBedUsecaseFixture(bed, other)

		result, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p2"}, "staff-1")
		require.NoError(t, err)
		require.True(t, result.DepartmentMismatch)
	})

	t.Run("rejects non-available bed", func(t *testing.T) {
		for _, status := range []entity.BedStatus{entity.BedStatusOccupied, entity.BedStatusCleaning, entity.BedStatusMaintenance} {
			busy := bed
			busy.Status = status
			_, assignmentRepo, _, usecase := newBedUsecaseFixture(busy, patient)

			_, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p1"}, "staff-1")
			require.ErrorIs(t, err, ErrBedNotAvailable)
			require.Empty(t, assignmentRepo.created)
		}
	})

	t.Run("unknown bed", func(t *testing.T) {
		_, _, _, usecase := newBedUsecaseFixture(bed, patient)
		_, err := usecase.AssignBed(ctx, "missing", &dto.AssignBedRequest{PatientID: "p1"}, "staff-1")
		require.ErrorIs(t, err, ErrBedNotFound)
	})

	t.Run("unknown patient", func(t *testing.T) {
		_, _, _, usecase := newBedUsecaseFixture(bed, patient)
		_, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "missing"}, "staff-1")
		require.ErrorIs(t, err, ErrPatientNotFound)
	})

	t.Run("rejects malformed timestamp", func(t *testing.T) {
		_, _, _, usecase := newBedUsecaseFixture(bed, patient)
		_, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p1", Timestamp: "yesterday"}, "staff-1")
		require.ErrorIs(t, err, ErrInvalidTimestamp)
	})
}

func TestAssignBedRollback(t *testing.T) {
	ctx := context.Background()
	bed := entity.Bed{ID: "b1", Number: "101", Status: entity.BedStatusAvailable}
	patient := entity.Patient{ID: "p1", FullName: "Alice"}
	bedKey := cache.BedKey("b1")

	t.Run("restores cached bed when assignment create fails", func(t *testing.T) {
		_, assignmentRepo, queryCache, usecase := newBedUsecaseFixture(bed, patient)
		assignmentRepo.createErr = errors.New("backend down")

		cached := bed
		queryCache.Put(bedKey, &cached)

		_, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p1"}, "staff-1")
		require.Error(t, err)

		restored, ok := queryCache.Get(bedKey)
		require.True(t, ok)
		require.Equal(t, entity.BedStatusAvailable, restored.(*entity.Bed).Status)
		require.Empty(t, restored.(*entity.Bed).PatientID)
	})

	t.Run("restores cached bed when status update fails", func(t *testing.T) {
		bedRepo, _, queryCache, usecase := newBedUsecaseFixture(bed, patient)
		bedRepo.updateErr = errors.New("backend down")

		cached := bed
		queryCache.Put(bedKey, &cached)

		_, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p1"}, "staff-1")
		require.Error(t, err)

		restored, ok := queryCache.Get(bedKey)
		require.True(t, ok)
		require.Equal(t, entity.BedStatusAvailable, restored.(*entity.Bed).Status)
	})

	t.Run("deletes the created assignment when status update fails", func(t *testing.T) {
		bedRepo, assignmentRepo, _, usecase := newBedUsecaseFixture(bed, patient)
		bedRepo.updateErr = errors.New("backend down")

		_, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p1"}, "staff-1")
		require.Error(t, err)

		// The assignment POST succeeded before the bed PATCH failed; the
		// record must not survive as an active assignment for an
		// available bed.
		require.Len(t, assignmentRepo.created, 1)
		require.Equal(t, []string{assignmentRepo.created[0].ID}, assignmentRepo.deleted)
	})

	t.Run("restores absence when the bed was not cached", func(t *testing.T) {
		bedRepo, _, queryCache, usecase := newBedUsecaseFixture(bed, patient)
		bedRepo.updateErr = errors.New("backend down")

		_, err := usecase.AssignBed(ctx, "b1", &dto.AssignBedRequest{PatientID: "p1"}, "staff-1")
		require.Error(t, err)

		_, ok := queryCache.Get(bedKey)
		require.False(t, ok)
	})
}

func TestDischargeBed(t *testing.T) {
	ctx := context.Background()
	occupied := entity.Bed{ID: "b1", Number: "101", Status: entity.BedStatusOccupied, PatientID: "p1"}
	patient := entity.Patient{ID: "p1", FullName: "Alice"}

	t.Run("success closes assignment and frees the bed", func(t *testing.T) {
		bedRepo, assignmentRepo, _, usecase := newBedUsecaseFixture(occupied, patient)
		assignmentRepo.active["b1"] = entity.BedAssignment{ID: "a1", BedID: "b1", PatientID: "p1"}

		updated, err := usecase.DischargeBed(ctx, "b1", &dto.DischargeBedRequest{Note: "recovered"})
		require.NoError(t, err)
		require.Equal(t, entity.BedStatusAvailable, updated.Status)
		require.Empty(t, updated.PatientID)
		require.Equal(t, []string{"a1"}, assignmentRepo.closed)
		require.Equal(t, entity.BedStatusAvailable, bedRepo.updatedStatus)
	})

	t.Run("corrects status even without an active assignment", func(t *testing.T) {
		_, assignmentRepo, _, usecase := newBedUsecaseFixture(occupied, patient)

		updated, err := usecase.DischargeBed(ctx, "b1", &dto.DischargeBedRequest{})
		require.NoError(t, err)
		require.Equal(t, entity.BedStatusAvailable, updated.Status)
		require.Empty(t, assignmentRepo.closed)
	})

	t.Run("rejects non-occupied bed", func(t *testing.T) {
		free := occupied
		free.Status = entity.BedStatusAvailable
		free.PatientID = ""
		_, _, _, usecase := newBedUsecaseFixture(free, patient)

		_, err := usecase.DischargeBed(ctx, "b1", &dto.DischargeBedRequest{})
		require.ErrorIs(t, err, ErrBedNotOccupied)
	})

	t.Run("reopens the closed assignment when status update fails", func(t *testing.T) {
		bedRepo, assignmentRepo, _, usecase := newBedUsecaseFixture(occupied, patient)
		assignmentRepo.active["b1"] = entity.BedAssignment{ID: "a1", BedID: "b1", PatientID: "p1"}
		bedRepo.updateErr = errors.New("backend down")

		_, err := usecase.DischargeBed(ctx, "b1", &dto.DischargeBedRequest{})
		require.Error(t, err)

		require.Equal(t, []string{"a1"}, assignmentRepo.closed)
		require.Equal(t, []string{"a1"}, assignmentRepo.reopened)
	})

	t.Run("restores cached bed when close fails", func(t *testing.T) {
		_, assignmentRepo, queryCache, usecase := newBedUsecaseFixture(occupied, patient)
		assignmentRepo.active["b1"] = entity.BedAssignment{ID: "a1", BedID: "b1", PatientID: "p1"}
		assignmentRepo.closeErr = errors.New("backend down")

		cached := occupied
		queryCache.Put(cache.BedKey("b1"), &cached)

		_, err := usecase.DischargeBed(ctx, "b1", &dto.DischargeBedRequest{})
		require.Error(t, err)

		restored, ok := queryCache.Get(cache.BedKey("b1"))
		require.True(t, ok)
		require.Equal(t, entity.BedStatusOccupied, restored.(*entity.Bed).Status)
		require.Equal(t, "p1", restored.(*entity.Bed).PatientID)
	})
}
