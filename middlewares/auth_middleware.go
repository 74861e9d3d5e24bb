package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/siszum/pos-server/models"
	"github.com/siszum/pos-server/utils"
	"gorm.io/gorm"
)

// AuthMiddleware memvalidasi bearer token lalu memuat admin dari database.
// Admin nonaktif ditolak walau tokennya masih berlaku.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			// WebSocket client mengirim token lewat query string
			token = c.Query("token")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("access token required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(token, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusForbidden, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		var admin models.Admin
		if err := db.Where("id = ? AND is_active = ?", claims.AdminID, true).First(&admin).Error; err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found or inactive"))
			c.Abort()
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("admin", admin)
		c.Set("role", admin.Role)
		c.Set("token", tokenString)

		c.Next()
	}
}
