package entity

// MenuItem is a single navigation entry tagged with the roles allowed to
// see it
type MenuItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Roles []Role `json:"-"`
}

// VisibleTo reports whether the item is shown for the given active role
func (m MenuItem) VisibleTo(role Role) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FilterMenu returns the subset of items visible to the given role,
// preserving order
func FilterMenu(items []MenuItem, role Role) []MenuItem {
	visible := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if item.VisibleTo(role) {
			visible = append(visible, item)
		}
	}
	return visible
}
