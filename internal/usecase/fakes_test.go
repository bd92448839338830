package usecase

import (
	"context"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// fakeBedRepo serves beds from a map and records status updates
type fakeBedRepo struct {
	beds          map[string]entity.Bed
	updateErr     error
	updatedStatus entity.BedStatus
	updatedID     string
}

func (r *fakeBedRepo) FindAll(ctx context.Context, filter *entity.BedFilter) ([]entity.Bed, error) {
	beds := make([]entity.Bed, 0, len(r.beds))
	for _, bed := range r.beds {
		beds = append(beds, bed)
	}
	return beds, nil
}

func (r *fakeBedRepo) FindByID(ctx context.Context, id string) (*entity.Bed, error) {
	bed, ok := r.beds[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &bed, nil
}

func (r *fakeBedRepo) UpdateStatus(ctx context.Context, id string, status entity.BedStatus, patientID string) (*entity.Bed, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	bed, ok := r.beds[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	bed.Status = status
	bed.PatientID = patientID
	r.beds[id] = bed
	r.updatedID = id
	r.updatedStatus = status
	return &bed, nil
}

type fakeAssignmentRepo struct {
	created   []entity.BedAssignment
	active    map[string]entity.BedAssignment
	closed    []string
	reopened  []string
	deleted   []string
	createErr error
	closeErr  error
}

func (r *fakeAssignmentRepo) Create(ctx context.Context, assignment *entity.BedAssignment) (*entity.BedAssignment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, *assignment)
	return assignment, nil
}

func (r *fakeAssignmentRepo) FindActiveByBedID(ctx context.Context, bedID string) (*entity.BedAssignment, error) {
	assignment, ok := r.active[bedID]
	if !ok {
		return nil, nil
	}
	return &assignment, nil
}

func (r *fakeAssignmentRepo) FindByPatientID(ctx context.Context, patientID string) ([]entity.BedAssignment, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) Close(ctx context.Context, id string, dischargedAt time.Time, note string) error {
	if r.closeErr != nil {
		return r.closeErr
	}
	r.closed = append(r.closed, id)
	return nil
}

func (r *fakeAssignmentRepo) Reopen(ctx context.Context, id string) error {
	r.reopened = append(r.reopened, id)
	return nil
}

func (r *fakeAssignmentRepo) Delete(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakePatientRepo struct {
	patients map[string]entity.Patient
}

func (r *fakePatientRepo) FindAll(ctx context.Context) ([]entity.Patient, error) {
	patients := make([]entity.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		patients = append(patients, patient)
	}
	return patients, nil
}

func (r *fakePatientRepo) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &patient, nil
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) (*entity.Patient, error) {
	created := *patient
	created.ID = "generated"
	r.patients[created.ID] = created
	return &created, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, id string, fields map[string]any) (*entity.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &patient, nil
}

type fakeAppointmentRepo struct {
	appointments map[string]entity.Appointment
	created      []entity.Appointment
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	appointments := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		appointments = append(appointments, a)
	}
	return appointments, nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &appointment, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	created := *appointment
	created.ID = "generated"
	r.created = append(r.created, created)
	return &created, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	appointment.Status = status
	r.appointments[id] = appointment
	return &appointment, nil
}

type fakeNotificationRepo struct {
	created []entity.Notification
}

func (r *fakeNotificationRepo) FindByUserID(ctx context.Context, userID string) ([]entity.Notification, error) {
	notifications := make([]entity.Notification, 0)
	for _, n := range r.created {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	r.created = append(r.created, *notification)
	return notification, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	return nil
}

type fakeUserRepo struct {
	users map[string]entity.User
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	users := make([]entity.User, 0)
	for _, user := range r.users {
		if user.HasRole(role) {
			users = append(users, user)
		}
	}
	return users, nil
}
