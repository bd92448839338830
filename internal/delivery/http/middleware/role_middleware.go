package middleware

import (
	"net/http"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/response"
)

// RequireRole checks the active role (set by AuthMiddleware from the
// token claims) against an allowed set. Role switching changes the
// active role by reissuing the token, so a flat membership check is all
// that happens here.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequireBedStaff covers the roles allowed to run the bed workflow
func RequireBedStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleNurse, entity.RoleReception)(next)
}

// RequireClinicalStaff covers everyone but patients
func RequireClinicalStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse, entity.RoleReception)(next)
}
