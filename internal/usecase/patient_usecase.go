package usecase

import (
	"context"
	"errors"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) ([]entity.Patient, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*entity.Patient, error)
	UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*entity.Patient, error)
	GetProfile(ctx context.Context, id string) (*dto.PatientProfileResponse, error)
}

type patientUsecase struct {
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	bedRepo          repository.BedRepository
	assignmentRepo   repository.BedAssignmentRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	bedRepo repository.BedRepository,
	assignmentRepo repository.BedAssignmentRepository,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
) PatientUsecase {
	return &patientUsecase{
		log:              log,
		patientRepo:      patientRepo,
		bedRepo:          bedRepo,
		assignmentRepo:   assignmentRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) ([]entity.Patient, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return patients, nil
}

func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*entity.Patient, error) {
	patient := &entity.Patient{
		FullName:              req.FullName,
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		BloodGroup:            req.BloodGroup,
		DepartmentID:          req.DepartmentID,
		PhoneNumber:           req.PhoneNumber,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	created, err := u.patientRepo.Create(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}
	return created, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*entity.Patient, error) {
	fields := map[string]any{}
	if req.FullName != "" {
		fields["full_name"] = req.FullName
	}
	if req.DateOfBirth != "" {
		fields["date_of_birth"] = req.DateOfBirth
	}
	if req.Gender != "" {
		fields["gender"] = req.Gender
	}
	if req.BloodGroup != "" {
		fields["blood_group"] = req.BloodGroup
	}
	if req.DepartmentID != "" {
		fields["department_id"] = req.DepartmentID
	}
	if req.PhoneNumber != "" {
		fields["phone_number"] = req.PhoneNumber
	}
	if req.EmergencyContactName != "" {
		fields["emergency_contact_name"] = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != "" {
		fields["emergency_contact_phone"] = req.EmergencyContactPhone
	}

	patient, err := u.patientRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}
	return patient, nil
}

func (u *patientUsecase) GetProfile(ctx context.Context, id string) (*dto.PatientProfileResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}

	profile := &dto.PatientProfileResponse{Patient: patient}

	assignments, err := u.assignmentRepo.FindByPatientID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to load assignments for patient %s: %+v", id, err)
		return nil, err
	}
	profile.Assignments = assignments

	for i := range assignments {
		if assignments[i].IsActive() {
			bed, err := u.bedRepo.FindByID(ctx, assignments[i].BedID)
			if err != nil {
				u.log.Warnf("Failed to load bed %s: %+v", assignments[i].BedID, err)
				return nil, err
			}
			profile.CurrentBed = bed
			break
		}
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to load appointments for patient %s: %+v", id, err)
		return nil, err
	}
	profile.Appointments = appointments

	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to load prescriptions for patient %s: %+v", id, err)
		return nil, err
	}
	profile.Prescriptions = prescriptions

	return profile, nil
}
