package handlers

import (
	"errors"
	"net/http"

	response "visitme_reservas/internal/adapter/http/dto/response"
	"visitme_reservas/internal/usecase"
	"visitme_reservas/pkg"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the 30-day availability window for a space.

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

// GetAvailability returns the per-day occupancy of one space starting today,
// in the community's calendar.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	communityID := c.Query("community_id")
	spaceID := c.Param("space_id")

	days, err := h.usecase.GetUpcoming(c.Request.Context(), communityID, spaceID)
	if err != nil {
		appErr := mapAvailabilityError(err)
		abortWith(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromAvailabilityWindow(days))
}

func mapAvailabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCommunityID), errors.Is(err, usecase.ErrInvalidSpaceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
