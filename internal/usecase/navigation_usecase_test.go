package usecase

import (
	"testing"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestVisibleMenu(t *testing.T) {
	usecase := NewNavigationUsecase()

	paths := func(role entity.Role) []string {
		items := usecase.VisibleMenu(role)
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Path
		}
		return out
	}

	t.Run("nurse sees bed management but not appointments or users", func(t *testing.T) {
		visible := paths(entity.RoleNurse)
		require.Contains(t, visible, "/beds")
		require.Contains(t, visible, "/dashboard")
		require.Contains(t, visible, "/prescriptions")
		require.NotContains(t, visible, "/appointments")
		require.NotContains(t, visible, "/users")
	})

	t.Run("doctor sees appointments but not bed management", func(t *testing.T) {
		visible := paths(entity.RoleDoctor)
		require.Contains(t, visible, "/appointments")
		require.NotContains(t, visible, "/beds")
	})

	t.Run("patient sees only own appointments", func(t *testing.T) {
		require.Equal(t, []string{"/my-appointments"}, paths(entity.RolePatient))
	})

	t.Run("admin sees every staff entry", func(t *testing.T) {
		visible := paths(entity.RoleAdmin)
		require.Contains(t, visible, "/users")
		require.Contains(t, visible, "/beds")
		require.NotContains(t, visible, "/my-appointments")
	})

	t.Run("order follows the menu definition", func(t *testing.T) {
		visible := paths(entity.RoleAdmin)
		require.Equal(t, []string{"/dashboard", "/beds", "/patients", "/appointments", "/prescriptions", "/users"}, visible)
	})
}
