package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/usecase"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type stubBedUsecase struct {
	assignErr    error
	assignResult *dto.AssignBedResponse
	dischargeErr error
}

func (s *stubBedUsecase) ListBeds(ctx context.Context, filter *entity.BedFilter) ([]entity.Bed, error) {
	return nil, nil
}

func (s *stubBedUsecase) GetBed(ctx context.Context, id string) (*entity.Bed, error) {
	return nil, usecase.ErrBedNotFound
}

func (s *stubBedUsecase) EligiblePatients(ctx context.Context, bedID string) (*dto.EligiblePatientsResponse, error) {
	return &dto.EligiblePatientsResponse{BedID: bedID}, nil
}

func (s *stubBedUsecase) AssignBed(ctx context.Context, bedID string, req *dto.AssignBedRequest, assignedBy string) (*dto.AssignBedResponse, error) {
	if s.assignErr != nil {
		return nil, s.assignErr
	}
	return s.assignResult, nil
}

func (s *stubBedUsecase) DischargeBed(ctx context.Context, bedID string, req *dto.DischargeBedRequest) (*entity.Bed, error) {
	if s.dischargeErr != nil {
		return nil, s.dischargeErr
	}
	return &entity.Bed{ID: bedID, Status: entity.BedStatusAvailable}, nil
}

func newBedRouter(stub *stubBedUsecase) *mux.Router {
	h := NewBedHandler(stub, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/beds/{id}", h.GetBed).Methods(http.MethodGet)
	r.HandleFunc("/beds/{id}/assign", h.AssignBed).Methods(http.MethodPost)
	r.HandleFunc("/beds/{id}/discharge", h.DischargeBed).Methods(http.MethodPost)
	return r
}

func TestAssignBedStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"conflict when bed is taken", usecase.ErrBedNotAvailable, http.StatusConflict},
		{"not found for unknown bed", usecase.ErrBedNotFound, http.StatusNotFound},
		{"not found for unknown patient", usecase.ErrPatientNotFound, http.StatusNotFound},
		{"bad request for malformed timestamp", usecase.ErrInvalidTimestamp, http.StatusBadRequest},
		{"bad gateway when backend fails", backend.ErrUnavailable, http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newBedRouter(&stubBedUsecase{assignErr: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/beds/b1/assign", strings.NewReader(`{"patient_id": "p1"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestAssignBedRollbackMessage(t *testing.T) {
	router := newBedRouter(&stubBedUsecase{assignErr: backend.ErrUnavailable})

	req := httptest.NewRequest(http.MethodPost, "/beds/b1/assign", strings.NewReader(`{"patient_id": "p1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Assignment failed, changes were rolled back", body.Message)
}

func TestAssignBedValidation(t *testing.T) {
	router := newBedRouter(&stubBedUsecase{})

	// missing required patient_id
	req := httptest.NewRequest(http.MethodPost, "/beds/b1/assign", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignBedSuccess(t *testing.T) {
	stub := &stubBedUsecase{assignResult: &dto.AssignBedResponse{
		Bed:                &entity.Bed{ID: "b1", Status: entity.BedStatusOccupied, PatientID: "p1"},
		Assignment:         &entity.BedAssignment{ID: "a1", BedID: "b1", PatientID: "p1"},
		DepartmentMismatch: true,
	}}
	router := newBedRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/beds/b1/assign", strings.NewReader(`{"patient_id": "p1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.AssignBedResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Data.DepartmentMismatch)
	require.Equal(t, entity.BedStatusOccupied, body.Data.Bed.Status)
}

func TestDischargeBedStatusMapping(t *testing.T) {
	t.Run("conflict when bed is not occupied", func(t *testing.T) {
		router := newBedRouter(&stubBedUsecase{dischargeErr: usecase.ErrBedNotOccupied})

		req := httptest.NewRequest(http.MethodPost, "/beds/b1/discharge", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("success frees the bed", func(t *testing.T) {
		router := newBedRouter(&stubBedUsecase{})

		req := httptest.NewRequest(http.MethodPost, "/beds/b1/discharge", strings.NewReader(`{"note": "recovered"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
