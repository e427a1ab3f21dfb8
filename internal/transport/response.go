package transport

import (
	"errors"
	"net/http"

	"github.com/voyago/api/internal/entity"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the uniform success envelope; Status mirrors the
// HTTP code.
type SuccessResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, err error, message string) {
	status := statusFromError(err)
	c.JSON(status, ErrorResponse{
		Status:  status,
		Message: message,
		Error:   err.Error(),
	})
}

// statusFromError maps domain errors onto the HTTP taxonomy. Anything
// unrecognized is an internal error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrOfferNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrEmailTaken),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidBookingStatus),
		errors.Is(err, entity.ErrInvalidStatusTransition),
		errors.Is(err, entity.ErrNotEnoughCapacity),
		errors.Is(err, entity.ErrOfferTypeInvalid),
		errors.Is(err, entity.ErrOfferTitleRequired),
		errors.Is(err, entity.ErrOfferPriceInvalid),
		errors.Is(err, entity.ErrPlaceDataRequired),
		errors.Is(err, entity.ErrActivityDataRequired),
		errors.Is(err, entity.ErrTransportationDataRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
