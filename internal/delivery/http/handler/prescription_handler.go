package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http/middleware"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/usecase"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/response"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/validator"

	"github.com/gorilla/mux"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.ListByPatient(r.Context(), mux.Vars(r)["patientId"])
	if err != nil {
		if err == backend.ErrUnavailable {
			response.BadGateway(w, "")
			return
		}
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

// CreatePrescription records a medication order under the authenticated
// doctor
func (h *PrescriptionHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.CreatePrescription(r.Context(), &req, doctorID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case backend.ErrUnavailable:
			response.BadGateway(w, "")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) MarkDispensed(w http.ResponseWriter, r *http.Request) {
	prescription, err := h.prescriptionUsecase.MarkDispensed(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case backend.ErrUnavailable:
			response.BadGateway(w, "")
		default:
			response.InternalServerError(w, "Failed to mark prescription dispensed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription marked dispensed", prescription)
}
