package entity

// Department represents a hospital department (ER, ICU, ...)
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (Department) Collection() string {
	return "departments"
}

// Room represents a room within a department
type Room struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	DepartmentID string `json:"department_id,omitempty"`
}

func (Room) Collection() string {
	return "rooms"
}
