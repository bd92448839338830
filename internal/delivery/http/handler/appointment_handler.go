package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/usecase"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/response"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// ListAppointments supports ?search=, ?doctor_id=, ?status=, ?sort= and
// ?order=desc
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.AppointmentListQuery{
		Search:     q.Get("search"),
		DoctorID:   q.Get("doctor_id"),
		Status:     q.Get("status"),
		SortColumn: q.Get("sort"),
		Descending: q.Get("order") == "desc",
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), query)
	if err != nil {
		if err == backend.ErrUnavailable {
			response.BadGateway(w, "")
			return
		}
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidScheduleTime:
			response.Error(w, http.StatusBadRequest, "Invalid scheduled_at, use RFC 3339", nil)
		case backend.ErrUnavailable:
			response.BadGateway(w, "")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) transition(w http.ResponseWriter, r *http.Request,
	apply func(r *http.Request, id string) (any, error), message string) {
	result, err := apply(r, mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentImmutable:
			response.Conflict(w, "Appointment is already completed or cancelled")
		case backend.ErrUnavailable:
			response.BadGateway(w, "")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, message, result)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id string) (any, error) {
		return h.appointmentUsecase.CompleteAppointment(r.Context(), id)
	}, "Appointment completed successfully")
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id string) (any, error) {
		return h.appointmentUsecase.CancelAppointment(r.Context(), id)
	}, "Appointment cancelled successfully")
}

func (h *AppointmentHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id string) (any, error) {
		return h.appointmentUsecase.MarkNoShow(r.Context(), id)
	}, "Appointment marked as no-show")
}
