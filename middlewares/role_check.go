package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servesense/servesense/models"
	"github.com/servesense/servesense/utils"
)

// RequireManager guards staff-management routes. Run after AuthMiddleware.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if role != models.RoleManager {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("manager access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
