package usecase

import (
	"testing"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestGroupBedsByDepartment(t *testing.T) {
	departments := []entity.Department{
		{ID: "er", Name: "Emergency"},
		{ID: "icu", Name: "Intensive Care"},
	}
	beds := []entity.Bed{
		{ID: "b1", DepartmentID: "icu"},
		{ID: "b2", DepartmentID: "er"},
		{ID: "b3", DepartmentID: "er"},
		{ID: "b4"},
	}

	groups := GroupBedsByDepartment(beds, departments)
	require.Len(t, groups, 3)

	require.Equal(t, "Emergency", groups[0].DepartmentName)
	require.Len(t, groups[0].Beds, 2)

	require.Equal(t, "Intensive Care", groups[1].DepartmentName)
	require.Len(t, groups[1].Beds, 1)

	require.Equal(t, "Unassigned", groups[2].DepartmentName)
	require.Empty(t, groups[2].DepartmentID)
	require.Len(t, groups[2].Beds, 1)
	require.Equal(t, "b4", groups[2].Beds[0].ID)
}

func TestGroupBedsByDepartmentNoStrays(t *testing.T) {
	departments := []entity.Department{{ID: "er", Name: "Emergency"}}
	beds := []entity.Bed{{ID: "b1", DepartmentID: "er"}}

	groups := GroupBedsByDepartment(beds, departments)
	require.Len(t, groups, 1)
}

func TestResolveBedDepartments(t *testing.T) {
	rooms := []entity.Room{
		{ID: "r1", Number: "201", DepartmentID: "er"},
		{ID: "r2", Number: "202"},
	}
	beds := []entity.Bed{
		{ID: "b1", RoomID: "r1"},
		{ID: "b2", RoomID: "r1", DepartmentID: "icu"},
		{ID: "b3", RoomID: "r2"},
		{ID: "b4"},
	}

	resolved := ResolveBedDepartments(beds, rooms)

	// inherited from the room
	require.Equal(t, "er", resolved[0].DepartmentID)
	// an explicit department on the bed wins
	require.Equal(t, "icu", resolved[1].DepartmentID)
	// room without a department resolves to nothing
	require.Empty(t, resolved[2].DepartmentID)
	require.Empty(t, resolved[3].DepartmentID)

	// input is untouched
	require.Empty(t, beds[0].DepartmentID)
}

func TestOccupancyRate(t *testing.T) {
	require.Zero(t, OccupancyRate(nil))

	beds := []entity.Bed{
		{ID: "b1", Status: entity.BedStatusOccupied},
		{ID: "b2", Status: entity.BedStatusAvailable},
		{ID: "b3", Status: entity.BedStatusOccupied},
		{ID: "b4", Status: entity.BedStatusCleaning},
	}
	require.InDelta(t, 0.5, OccupancyRate(beds), 1e-9)
}
