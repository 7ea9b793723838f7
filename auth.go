package main

import (
	"net/http"

	"github.com/aakashreddy12/CRMA/models"
	"github.com/aakashreddy12/CRMA/utils"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		info, err := models.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		ok, err := models.Logout(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"logged_out": ok})
	}
}

// sessionHandler reports who the caller is, with the role flags the UI keys
// its controls off.
func sessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		ctx := c.Request.Context()
		username, _ := utils.GetUsernameFromContext(ctx)
		isAdmin, _ := utils.GetIsAdminFromContext(ctx)
		isFinance, _ := utils.GetIsFinanceFromContext(ctx)

		user, err := models.GetUserByUsername(ctx, username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"username":   user.Username,
			"name":       user.Name,
			"role":       user.Role.Label(),
			"is_admin":   isAdmin,
			"is_finance": isFinance,
		})
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func changePasswordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var req changePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, err)
			return
		}
		if _, err := models.ChangePassword(c.Request.Context(), req.OldPassword, req.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"changed": true})
	}
}
