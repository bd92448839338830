package handler

import (
	"net/http"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http/middleware"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/usecase"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/response"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboardUsecase    usecase.DashboardUsecase
	navigationUsecase   usecase.NavigationUsecase
	notificationUsecase usecase.NotificationUsecase
}

func NewDashboardHandler(
	dashboardUsecase usecase.DashboardUsecase,
	navigationUsecase usecase.NavigationUsecase,
	notificationUsecase usecase.NotificationUsecase,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase:    dashboardUsecase,
		navigationUsecase:   navigationUsecase,
		notificationUsecase: notificationUsecase,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context())
	if err != nil {
		if err == backend.ErrUnavailable {
			response.BadGateway(w, "")
			return
		}
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// GetNavigation returns the menu items visible to the caller's active role
func (h *DashboardHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Role information not found")
		return
	}

	response.Success(w, http.StatusOK, "Navigation retrieved successfully", h.navigationUsecase.VisibleMenu(role))
}

func (h *DashboardHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	notifications, err := h.notificationUsecase.ListForUser(r.Context(), userID)
	if err != nil {
		if err == backend.ErrUnavailable {
			response.BadGateway(w, "")
			return
		}
		response.InternalServerError(w, "Failed to list notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *DashboardHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationUsecase.MarkRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		case backend.ErrUnavailable:
			response.BadGateway(w, "")
		default:
			response.InternalServerError(w, "Failed to mark notification read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked read", nil)
}
