package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"college-assist/internal/app"
	"college-assist/internal/transport/http/middleware"
	"college-assist/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "login failed")
		}
		return
	}

	response.OK(c, gin.H{
		"token": result.Token,
		"admin": gin.H{
			"id":       result.Admin.ID,
			"username": result.Admin.Username,
		},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	adminIDAny, exists := c.Get(middleware.ContextAdminIDKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "admin not found in token")
		return
	}

	adminID, ok := adminIDAny.(uint)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	admin, err := h.authService.GetAdminByID(adminID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch current admin failed")
		return
	}
	if admin == nil {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "admin not found")
		return
	}

	response.OK(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	})
}
