package transport

import (
	"net/http"

	"github.com/voyago/api/internal/service"
	"github.com/voyago/api/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid registration payload",
			Error:   err.Error(),
		})
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "registration failed")
		return
	}

	respondOK(c, http.StatusCreated, "registration successful", result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid login payload",
			Error:   err.Error(),
		})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "login failed")
		return
	}

	respondOK(c, http.StatusOK, "login successful", result)
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	user, err := h.authService.CurrentUser(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "failed to load profile")
		return
	}

	respondOK(c, http.StatusOK, "current user", user)
}
