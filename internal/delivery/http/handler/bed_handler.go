package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http/middleware"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/usecase"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/response"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/validator"

	"github.com/gorilla/mux"
)

type BedHandler struct {
	bedUsecase usecase.BedUsecase
	validator  *validator.CustomValidator
}

func NewBedHandler(bedUsecase usecase.BedUsecase, validator *validator.CustomValidator) *BedHandler {
	return &BedHandler{
		bedUsecase: bedUsecase,
		validator:  validator,
	}
}

func (h *BedHandler) ListBeds(w http.ResponseWriter, r *http.Request) {
	filter := &entity.BedFilter{
		DepartmentID: r.URL.Query().Get("department_id"),
		Status:       entity.BedStatus(r.URL.Query().Get("status")),
	}

	beds, err := h.bedUsecase.ListBeds(r.Context(), filter)
	if err != nil {
		if err == backend.ErrUnavailable {
			response.BadGateway(w, "")
			return
		}
		response.InternalServerError(w, "Failed to list beds")
		return
	}

	response.Success(w, http.StatusOK, "Beds retrieved successfully", beds)
}

func (h *BedHandler) GetBed(w http.ResponseWriter, r *http.Request) {
	bed, err := h.bedUsecase.GetBed(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		case backend.ErrUnavailable:
			response.BadGateway(w, "")
		default:
			response.InternalServerError(w, "Failed to get bed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bed retrieved successfully", bed)
}

// EligiblePatients returns the patients that may be offered for a bed,
// after the department eligibility rule
func (h *BedHandler) EligiblePatients(w http.ResponseWriter, r *http.Request) {
	result, err := h.bedUsecase.EligiblePatients(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		case backend.ErrUnavailable:
			response.BadGateway(w, "")
		default:
			response.InternalServerError(w, "Failed to list eligible patients")
		}
		return
	}

	response.Success(w, http.StatusOK, "Eligible patients retrieved successfully", result)
}

func (h *BedHandler) AssignBed(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignedBy, _ := middleware.GetUserIDFromContext(r.Context())

	result, err := h.bedUsecase.AssignBed(r.Context(), mux.Vars(r)["id"], &req, assignedBy)
	if err != nil {
		switch err {
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrBedNotAvailable:
			response.Conflict(w, "Bed is not available for assignment")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp, use RFC 3339", nil)
		case backend.ErrUnavailable:
			response.BadGateway(w, "Assignment failed, changes were rolled back")
		default:
			response.InternalServerError(w, "Failed to assign bed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bed assigned successfully", result)
}

func (h *BedHandler) DischargeBed(w http.ResponseWriter, r *http.Request) {
	var req dto.DischargeBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.DischargeBed(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		case usecase.ErrBedNotOccupied:
			response.Conflict(w, "Bed is not occupied")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp, use RFC 3339", nil)
		case backend.ErrUnavailable:
			response.BadGateway(w, "Discharge failed, changes were rolled back")
		default:
			response.InternalServerError(w, "Failed to discharge bed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bed discharged successfully", bed)
}
