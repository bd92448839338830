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

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	ListByPatient(ctx context.Context, patientID string) ([]entity.Prescription, error)
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest, doctorID string) (*entity.Prescription, error)
	MarkDispensed(ctx context.Context, id string) (*entity.Prescription, error)
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
	}
}

func (u *prescriptionUsecase) ListByPatient(ctx context.Context, patientID string) ([]entity.Prescription, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for patient %s: %+v", patientID, err)
		return nil, err
	}
	return prescriptions, nil
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest, doctorID string) (*entity.Prescription, error) {
	if _, err := u.patientRepo.FindByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID:  req.PatientID,
		DoctorID:   doctorID,
		Medication: req.Medication,
		Dosage:     req.Dosage,
		Frequency:  req.Frequency,
		Duration:   req.Duration,
		Notes:      req.Notes,
	}

	created, err := u.prescriptionRepo.Create(ctx, prescription)
	if err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}
	return created, nil
}

func (u *prescriptionUsecase) MarkDispensed(ctx context.Context, id string) (*entity.Prescription, error) {
	prescription, err := u.prescriptionRepo.SetDispensed(ctx, id, true)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrPrescriptionNotFound
		}
		u.log.Warnf("Failed to mark prescription %s dispensed: %+v", id, err)
		return nil, err
	}
	return prescription, nil
}
