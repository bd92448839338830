package cache

// Key prefixes per backend collection. Mutations invalidate by prefix so
// every filtered variant of a list query is dropped together.
const (
	BedsPrefix           = "beds"
	BedAssignmentsPrefix = "bed_assignments"
	PatientsPrefix       = "patients"
	AppointmentsPrefix   = "appointments"
	PrescriptionsPrefix  = "prescriptions"
	UsersPrefix          = "users"
	DepartmentsPrefix    = "departments"
	RoomsPrefix          = "rooms"
	NotificationsPrefix  = "notifications"
)

func BedKey(id string) string {
	return Key(BedsPrefix, "id", id)
}

func BedListKey(departmentID, status string) string {
	return Key(BedsPrefix, "list", "dep="+departmentID, "status="+status)
}

func PatientKey(id string) string {
	return Key(PatientsPrefix, "id", id)
}

func PatientListKey() string {
	return Key(PatientsPrefix, "list")
}

func AppointmentKey(id string) string {
	return Key(AppointmentsPrefix, "id", id)
}

func AppointmentListKey() string {
	return Key(AppointmentsPrefix, "list")
}

func AppointmentsByPatientKey(patientID string) string {
	return Key(AppointmentsPrefix, "patient", patientID)
}

func PrescriptionsByPatientKey(patientID string) string {
	return Key(PrescriptionsPrefix, "patient", patientID)
}

func UserKey(id string) string {
	return Key(UsersPrefix, "id", id)
}

func UserListKey() string {
	return Key(UsersPrefix, "list")
}

func UsersByRoleKey(role string) string {
	return Key(UsersPrefix, "role", role)
}

func DepartmentListKey() string {
	return Key(DepartmentsPrefix, "list")
}

func RoomListKey() string {
	return Key(RoomsPrefix, "list")
}

func NotificationsByUserKey(userID string) string {
	return Key(NotificationsPrefix, "user", userID)
}
