package middleware

import (
	"net/http"

	"levelup_backend/internal/model"
	"levelup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// MaintenanceMiddleware refuses non-admin traffic while maintenance_mode
// is on. Admins pass through so they can turn it back off.
func MaintenanceMiddleware(settings SettingsReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !settings.GetBool(model.SettingMaintenanceMode, false) {
			c.Next()
			return
		}

		if claims := util.GetUserFromContext(c); claims != nil && claims.Role == model.RoleAdmin {
			c.Next()
			return
		}

		util.Error(c, http.StatusServiceUnavailable, "service is under maintenance")
		c.Abort()
	}
}
