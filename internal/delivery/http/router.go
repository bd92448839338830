package http

import (
	"net/http"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http/handler"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http/middleware"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	bedHandler          *handler.BedHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bedHandler *handler.BedHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		bedHandler:          bedHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		dashboardHandler:    dashboardHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected). change-password is reachable while the
	// forced password-change flag is set; everything else below is not.
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)
	authProtected.Handle("/me", gated(http.HandlerFunc(r.authHandler.GetCurrentUser))).Methods(http.MethodGet)
	authProtected.Handle("/switch-role", gated(http.HandlerFunc(r.authHandler.SwitchRole))).Methods(http.MethodPost)

	// Everything below requires a session with a current password.
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(middleware.RequirePasswordCurrent)

	// Navigation and notifications (any authenticated role)
	protected.HandleFunc("/navigation", r.dashboardHandler.GetNavigation).Methods(http.MethodGet)
	protected.HandleFunc("/notifications", r.dashboardHandler.ListNotifications).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", r.dashboardHandler.MarkNotificationRead).Methods(http.MethodPost)

	// Dashboard (staff)
	protected.Handle("/dashboard",
		staff(http.HandlerFunc(r.dashboardHandler.GetDashboard))).Methods(http.MethodGet)

	// Bed management (admin, nurse, reception)
	beds := protected.PathPrefix("/beds").Subrouter()
	beds.Use(middleware.RequireBedStaff)
	beds.HandleFunc("", r.bedHandler.ListBeds).Methods(http.MethodGet)
	beds.HandleFunc("/{id}", r.bedHandler.GetBed).Methods(http.MethodGet)
	beds.HandleFunc("/{id}/eligible-patients", r.bedHandler.EligiblePatients).Methods(http.MethodGet)
	beds.HandleFunc("/{id}/assign", r.bedHandler.AssignBed).Methods(http.MethodPost)
	beds.HandleFunc("/{id}/discharge", r.bedHandler.DischargeBed).Methods(http.MethodPost)

	// Patients
	protected.Handle("/patients",
		staff(http.HandlerFunc(r.patientHandler.ListPatients))).Methods(http.MethodGet)
	protected.Handle("/patients",
		frontDesk(http.HandlerFunc(r.patientHandler.RegisterPatient))).Methods(http.MethodPost)
	protected.Handle("/patients/{id}",
		frontDesk(http.HandlerFunc(r.patientHandler.UpdatePatient))).Methods(http.MethodPut)
	protected.Handle("/patients/{id}/profile",
		staff(http.HandlerFunc(r.patientHandler.GetProfile))).Methods(http.MethodGet)
	protected.Handle("/patients/{patientId}/prescriptions",
		staff(http.HandlerFunc(r.prescriptionHandler.ListByPatient))).Methods(http.MethodGet)

	// Appointments
	protected.Handle("/appointments",
		staff(http.HandlerFunc(r.appointmentHandler.ListAppointments))).Methods(http.MethodGet)
	protected.Handle("/appointments",
		frontDesk(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	protected.Handle("/appointments/{id}/complete",
		middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor)(http.HandlerFunc(r.appointmentHandler.CompleteAppointment))).Methods(http.MethodPost)
	protected.Handle("/appointments/{id}/cancel",
		middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleReception)(http.HandlerFunc(r.appointmentHandler.CancelAppointment))).Methods(http.MethodPost)
	protected.Handle("/appointments/{id}/no-show",
		middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleReception)(http.HandlerFunc(r.appointmentHandler.MarkNoShow))).Methods(http.MethodPost)

	// Prescriptions
	protected.Handle("/prescriptions",
		middleware.RequireDoctor(http.HandlerFunc(r.prescriptionHandler.CreatePrescription))).Methods(http.MethodPost)
	protected.Handle("/prescriptions/{id}/dispense",
		middleware.RequireRole(entity.RoleNurse)(http.HandlerFunc(r.prescriptionHandler.MarkDispensed))).Methods(http.MethodPost)

	// User management (admin)
	protected.Handle("/users",
		middleware.RequireAdmin(http.HandlerFunc(r.authHandler.ListUsers))).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func gated(h http.Handler) http.Handler {
	return middleware.RequirePasswordCurrent(h)
}

func staff(h http.Handler) http.Handler {
	return middleware.RequireClinicalStaff(h)
}

func frontDesk(h http.Handler) http.Handler {
	return middleware.RequireRole(entity.RoleAdmin, entity.RoleReception)(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
