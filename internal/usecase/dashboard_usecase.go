package usecase

import (
	"context"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/dto"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	bedRepo         repository.BedRepository
	roomRepo        repository.RoomRepository
	departmentRepo  repository.DepartmentRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	bedRepo repository.BedRepository,
	roomRepo repository.RoomRepository,
	departmentRepo repository.DepartmentRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		bedRepo:         bedRepo,
		roomRepo:        roomRepo,
		departmentRepo:  departmentRepo,
		appointmentRepo: appointmentRepo,
	}
}

// ResolveBedDepartments fills in a bed's department from its room when the
// bed document does not carry one directly. Returns a copy.
func ResolveBedDepartments(beds []entity.Bed, rooms []entity.Room) []entity.Bed {
	byRoom := make(map[string]string, len(rooms))
	for _, room := range rooms {
		byRoom[room.ID] = room.DepartmentID
	}

	resolved := make([]entity.Bed, len(beds))
	copy(resolved, beds)
	for i := range resolved {
		if resolved[i].DepartmentID == "" && resolved[i].RoomID != "" {
			resolved[i].DepartmentID = byRoom[resolved[i].RoomID]
		}
	}
	return resolved
}

// GroupBedsByDepartment buckets beds under their department, keeping the
// department list order. Beds without a department are grouped under an
// empty ID at the end.
func GroupBedsByDepartment(beds []entity.Bed, departments []entity.Department) []dto.DepartmentBedsResponse {
	groups := make([]dto.DepartmentBedsResponse, 0, len(departments)+1)
	index := make(map[string]int, len(departments))

	for _, department := range departments {
		index[department.ID] = len(groups)
		groups = append(groups, dto.DepartmentBedsResponse{
			DepartmentID:   department.ID,
			DepartmentName: department.Name,
		})
	}

	var unassigned []entity.Bed
	for _, bed := range beds {
		if i, ok := index[bed.DepartmentID]; ok {
			groups[i].Beds = append(groups[i].Beds, bed)
		} else {
			unassigned = append(unassigned, bed)
		}
	}
	if len(unassigned) > 0 {
		groups = append(groups, dto.DepartmentBedsResponse{
			DepartmentName: "Unassigned",
			Beds:           unassigned,
		})
	}
	return groups
}

// OccupancyRate is occupied beds over all beds, 0 for an empty hospital
func OccupancyRate(beds []entity.Bed) float64 {
	if len(beds) == 0 {
		return 0
	}
	occupied := 0
	for _, bed := range beds {
		if bed.IsOccupied() {
			occupied++
		}
	}
	return float64(occupied) / float64(len(beds))
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	beds, err := u.bedRepo.FindAll(ctx, nil)
	if err != nil {
		u.log.Warnf("Failed to list beds: %+v", err)
		return nil, err
	}

	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}
	beds = ResolveBedDepartments(beds, rooms)

	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	counts := map[string]int{}
	for _, bed := range beds {
		counts[string(bed.Status)]++
	}

	today := time.Now()
	appointmentsToday := 0
	for _, a := range appointments {
		if sameDay(a.ScheduledAt, today) {
			appointmentsToday++
		}
	}

	return &dto.DashboardResponse{
		TotalBeds:         len(beds),
		CountsByStatus:    counts,
		OccupancyRate:     OccupancyRate(beds),
		BedsByDepartment:  GroupBedsByDepartment(beds, departments),
		AppointmentsToday: appointmentsToday,
	}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
