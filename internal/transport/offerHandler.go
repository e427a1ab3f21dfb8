package transport

import (
	"net/http"

	repository "github.com/voyago/api/internal/database/postgres"
	"github.com/voyago/api/internal/entity"
	"github.com/voyago/api/internal/service"
	"github.com/voyago/api/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerService service.OfferService
}

func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	filter := &repository.OfferFilter{
		City: c.Query("city"),
		Type: entity.OfferType(c.Query("type")),
	}

	offers, err := h.offerService.ListOffers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to list offers")
		return
	}

	respondOK(c, http.StatusOK, "offer list", offers)
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.offerService.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get offer")
		return
	}

	respondOK(c, http.StatusOK, "offer found", offer)
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req service.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid offer payload",
			Error:   err.Error(),
		})
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		respondError(c, err, "failed to create offer")
		return
	}

	respondOK(c, http.StatusCreated, "offer created", offer)
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	var req service.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid offer payload",
			Error:   err.Error(),
		})
		return
	}

	offer, err := h.offerService.UpdateOffer(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "failed to update offer")
		return
	}

	respondOK(c, http.StatusOK, "offer updated", offer)
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	offer, err := h.offerService.DeleteOffer(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to delete offer")
		return
	}

	respondOK(c, http.StatusOK, "offer deleted", offer)
}
