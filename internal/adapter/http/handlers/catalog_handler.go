package handlers

import (
	"errors"
	"net/http"

	response "visitme_reservas/internal/adapter/http/dto/response"
	"visitme_reservas/internal/usecase"
	"visitme_reservas/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the reservable spaces and the resident's eligible
// departments.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListSpaces(c *gin.Context) {
	spaces, err := h.usecase.ListSpaces(c.Request.Context(), c.Query("community_id"))
	if err != nil {
		abortWith(c, mapCatalogError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCommonSpaces(spaces))
}

func (h *CatalogHandler) GetSpace(c *gin.Context) {
	space, err := h.usecase.GetSpace(c.Request.Context(), c.Query("community_id"), c.Param("space_id"))
	if err != nil {
		abortWith(c, mapCatalogError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCommonSpace(space))
}

// ListDepartments returns the acting resident's departments that can hold a
// reservation right now.
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	departments, err := h.usecase.EligibleDepartments(c.Request.Context(), c.Query("community_id"), resident)
	if err != nil {
		abortWith(c, mapCatalogError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromDepartments(departments))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCommunityID), errors.Is(err, usecase.ErrInvalidSpaceID), errors.Is(err, usecase.ErrInvalidResidentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSpaceNotFound):
		return pkg.NewDomainErrorSimple("SPACE_NOT_FOUND", "Common space not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
