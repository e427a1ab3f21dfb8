package transport

import (
	"net/http"

	"github.com/voyago/api/internal/service"
	"github.com/voyago/api/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list bookings")
		return
	}

	respondOK(c, http.StatusOK, "booking list", bookings)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get booking")
		return
	}

	respondOK(c, http.StatusOK, "booking found", booking)
}

func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetUserBookings(c.Request.Context(), middleware.IdentityFrom(c), c.Param("uid"))
	if err != nil {
		respondError(c, err, "failed to get user bookings")
		return
	}

	respondOK(c, http.StatusOK, "booking history", bookings)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid booking payload",
			Error:   err.Error(),
		})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		respondError(c, err, "failed to create booking")
		return
	}

	respondOK(c, http.StatusCreated, "booking successful", booking)
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req service.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid booking payload",
			Error:   err.Error(),
		})
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "failed to update booking")
		return
	}

	respondOK(c, http.StatusOK, "booking updated", booking)
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	booking, err := h.bookingService.DeleteBooking(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to delete booking")
		return
	}

	respondOK(c, http.StatusOK, "booking deleted", booking)
}
