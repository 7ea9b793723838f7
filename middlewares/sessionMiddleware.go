package middlewares

import (
	"net/http"

	"github.com/aakashreddy12/CRMA/config"
	"github.com/aakashreddy12/CRMA/models"
	"github.com/aakashreddy12/CRMA/utils"
	"github.com/gin-gonic/gin"
)

func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			c.Next()
			return
		}
		username, exists, err := config.GetRedisValue("Token:" + token)
		if err != nil || !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := utils.SetTokenInContext(c.Request.Context(), token)
		ctx = utils.SetUsernameInContext(ctx, username)

		// Role flags ride along so handlers never reach back to the store
		// for a capability check.
		if user, err := models.GetUserByUsername(ctx, username); err == nil {
			ctx = utils.SetUserIdInContext(ctx, user.ID)
			ctx = utils.SetUserNameInContext(ctx, user.Name)
			ctx = utils.SetIsAdminInContext(ctx, user.Role == models.UserRoleAdmin)
			ctx = utils.SetIsFinanceInContext(ctx, user.Role == models.UserRoleAdmin || user.Role == models.UserRoleFinance)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
