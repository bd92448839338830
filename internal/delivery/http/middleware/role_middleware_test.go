package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithRole(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	t.Run("allows a listed role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireBedStaff(okHandler()).ServeHTTP(rec, requestWithRole(entity.RoleNurse))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbids an unlisted role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireBedStaff(okHandler()).ServeHTTP(rec, requestWithRole(entity.RoleDoctor))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("forbids patients from staff routes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireClinicalStaff(okHandler()).ServeHTTP(rec, requestWithRole(entity.RolePatient))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects a request without role context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequirePasswordCurrent(t *testing.T) {
	t.Run("blocks sessions flagged for password change", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), MustChangePasswordKey, true)

		rec := httptest.NewRecorder()
		RequirePasswordCurrent(okHandler()).ServeHTTP(rec, req.WithContext(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("passes sessions with a current password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), MustChangePasswordKey, false)

		rec := httptest.NewRecorder()
		RequirePasswordCurrent(okHandler()).ServeHTTP(rec, req.WithContext(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
