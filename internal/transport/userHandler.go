package transport

import (
	"net/http"

	"github.com/voyago/api/internal/service"
	"github.com/voyago/api/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, err, "failed to list users")
		return
	}

	respondOK(c, http.StatusOK, "user list", users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get user")
		return
	}

	respondOK(c, http.StatusOK, "user found", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid user payload",
			Error:   err.Error(),
		})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "failed to update user")
		return
	}

	respondOK(c, http.StatusOK, "user updated", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.userService.DeleteUser(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to delete user")
		return
	}

	respondOK(c, http.StatusOK, "user deleted", user)
}
