package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentImmutable = errors.New("appointment is already completed or cancelled")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrInvalidScheduleTime  = errors.New("invalid scheduled_at, use RFC 3339")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, query *dto.AppointmentListQuery) ([]entity.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*entity.Appointment, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	CompleteAppointment(ctx context.Context, id string) (*entity.Appointment, error)
	CancelAppointment(ctx context.Context, id string) (*entity.Appointment, error)
	MarkNoShow(ctx context.Context, id string) (*entity.Appointment, error)
}

type appointmentUsecase struct {
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// SearchAppointments keeps appointments whose patient name, phone, or ID
// contains the query substring (case-insensitive). An empty query returns
// the input unchanged.
func SearchAppointments(appointments []entity.Appointment, query string) []entity.Appointment {
	if query == "" {
		return appointments
	}

	q := strings.ToLower(query)
	matched := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if strings.Contains(strings.ToLower(a.PatientName), q) ||
			strings.Contains(strings.ToLower(a.PatientPhone), q) ||
			strings.Contains(strings.ToLower(a.PatientID), q) {
			matched = append(matched, a)
		}
	}
	return matched
}

// FilterAppointments keeps appointments matching the given doctor and
// status; empty values match everything
func FilterAppointments(appointments []entity.Appointment, doctorID string, status entity.AppointmentStatus) []entity.Appointment {
	if doctorID == "" && status == "" {
		return appointments
	}

	matched := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if doctorID != "" && a.DoctorID != doctorID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		matched = append(matched, a)
	}
	return matched
}

// SortAppointments orders a copy of the list by the given column. The
// date column compares timestamps; everything else compares as strings.
func SortAppointments(appointments []entity.Appointment, column string, descending bool) []entity.Appointment {
	sorted := make([]entity.Appointment, len(appointments))
	copy(sorted, appointments)

	less := func(a, b entity.Appointment) bool {
		switch column {
		case "patient":
			return a.PatientName < b.PatientName
		case "doctor":
			return a.DoctorName < b.DoctorName
		case "status":
			return a.Status < b.Status
		case "reason":
			return a.Reason < b.Reason
		default: // date
			return a.ScheduledAt.Before(b.ScheduledAt)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, query *dto.AppointmentListQuery) ([]entity.Appointment, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	if query == nil {
		return appointments, nil
	}

	appointments = SearchAppointments(appointments, query.Search)
	appointments = FilterAppointments(appointments, query.DoctorID, entity.AppointmentStatus(query.Status))
	return SortAppointments(appointments, query.SortColumn, query.Descending), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	return appointment, nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduleTime
	}

	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	doctor, err := u.userRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if !doctor.HasRole(entity.RoleDoctor) {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:    patient.ID,
		PatientName:  patient.FullName,
		PatientPhone: patient.PhoneNumber,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.FullName,
		ScheduledAt:  scheduledAt,
		Reason:       req.Reason,
		Status:       entity.AppointmentStatusScheduled,
	}

	created, err := u.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Best effort; the appointment stands even if the doctor's
	// notification cannot be written.
	notification := &entity.Notification{
		UserID: doctor.ID,
		Title:  "New appointment scheduled",
		Body:   fmt.Sprintf("%s on %s: %s", patient.FullName, scheduledAt.Format(time.RFC3339), req.Reason),
	}
	if _, err := u.notificationRepo.Create(ctx, notification); err != nil {
		u.log.Warnf("Failed to notify doctor %s: %+v", doctor.ID, err)
	}

	return created, nil
}

// transition moves a scheduled appointment to a terminal-ish status.
// Completed and cancelled appointments are immutable.
func (u *appointmentUsecase) transition(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	appointment, err := u.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.IsScheduled() {
		return nil, ErrAppointmentImmutable
	}

	updated, err := u.appointmentRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		return nil, err
	}
	return updated, nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted)
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled)
}

func (u *appointmentUsecase) MarkNoShow(ctx context.Context, id string) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusNoShow)
}
