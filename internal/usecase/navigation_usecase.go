package usecase

import (
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

// defaultMenu is the static navigation definition. Visibility is a flat
// role-set check per item; there is no permission hierarchy.
var defaultMenu = []entity.MenuItem{
	{Path: "/dashboard", Label: "Dashboard", Roles: []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse, entity.RoleReception}},
	{Path: "/beds", Label: "Bed Management", Roles: []entity.Role{entity.RoleAdmin, entity.RoleNurse, entity.RoleReception}},
	{Path: "/patients", Label: "Patients", Roles: []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse, entity.RoleReception}},
	{Path: "/appointments", Label: "Appointments", Roles: []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RoleReception}},
	{Path: "/prescriptions", Label: "Prescriptions", Roles: []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse}},
	{Path: "/my-appointments", Label: "My Appointments", Roles: []entity.Role{entity.RolePatient}},
	{Path: "/users", Label: "User Management", Roles: []entity.Role{entity.RoleAdmin}},
}

type NavigationUsecase interface {
	VisibleMenu(role entity.Role) []entity.MenuItem
}

type navigationUsecase struct {
	menu []entity.MenuItem
}

func NewNavigationUsecase() NavigationUsecase {
	return &navigationUsecase{menu: defaultMenu}
}

func (u *navigationUsecase) VisibleMenu(role entity.Role) []entity.MenuItem {
	return entity.FilterMenu(u.menu, role)
}
