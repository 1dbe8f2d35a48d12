package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "visitme_reservas/internal/adapter/http/dto/request"
	response "visitme_reservas/internal/adapter/http/dto/response"
	"visitme_reservas/internal/infrastructure/session"
	"visitme_reservas/internal/usecase"
	"visitme_reservas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
	errSessionNotFound      = pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
)

// WizardHandler drives the booking wizard over HTTP. Every interaction
// answers with the full session view so the client never has to merge
// partial state.

type WizardHandler struct {
	controller *usecase.WizardController
	sessions   *session.Store
}

func NewWizardHandler(controller *usecase.WizardController, sessions *session.Store) *WizardHandler {
	return &WizardHandler{controller: controller, sessions: sessions}
}

func (h *WizardHandler) StartWizard(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	var payload request.StartWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}

	s, err := h.controller.Start(c.Request.Context(), payload.CommunityID, resident)
	if err != nil {
		abortWith(c, mapWizardError(err))
		return
	}
	h.sessions.Put(s)

	c.JSON(http.StatusCreated, response.FromWizardSession(s))
}

func (h *WizardHandler) GetWizard(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

func (h *WizardHandler) SelectSpace(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}

	var payload request.SelectSpaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}

	if err := h.controller.SelectSpace(c.Request.Context(), s, payload.SpaceID); err != nil {
		abortWith(c, mapWizardError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

func (h *WizardHandler) SelectDepartment(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}

	var payload request.SelectDepartmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}

	if err := h.controller.SelectDepartment(s, payload.DepartmentID); err != nil {
		abortWith(c, mapWizardError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

func (h *WizardHandler) SelectDay(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}

	var payload request.SelectDayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}
	date, err := payload.ResolveDate()
	if err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}

	if err := h.controller.SelectDay(s, date); err != nil {
		abortWith(c, mapWizardError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

func (h *WizardHandler) SelectBlock(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}

	var payload request.SelectBlockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}
	block, err := payload.ResolveBlock()
	if err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}

	if err := h.controller.SelectBlock(s, block); err != nil {
		abortWith(c, mapWizardError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

func (h *WizardHandler) Navigate(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}

	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidWizardPayload)
		return
	}
	step, ok := parseWizardStep(payload.Step)
	if !ok {
		abortWith(c, errInvalidWizardPayload)
		return
	}

	if err := h.controller.Navigate(s, step); err != nil {
		abortWith(c, mapWizardError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// SubmitWizard runs the booking transaction. A lost slot race answers 409
// with the refreshed session so the client re-renders the calendar in place.
func (h *WizardHandler) SubmitWizard(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}

	if _, err := h.controller.Submit(c.Request.Context(), s); err != nil {
		if errors.Is(err, usecase.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   pkg.NewDomainErrorSimple("SLOT_ALREADY_TAKEN", "The selected block was just taken", http.StatusConflict).ToHTTPError(),
				"session": response.FromWizardSession(s),
			})
			return
		}
		abortWith(c, mapWizardError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromWizardSession(s))
}

// ownSession fetches the path session and enforces resident ownership. A
// session owned by someone else reads as not found.
func (h *WizardHandler) ownSession(c *gin.Context) (*usecase.WizardSession, bool) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return nil, false
	}

	s, found := h.sessions.Get(c.Param("session_id"))
	if !found || s.ResidentID != resident {
		abortWith(c, errSessionNotFound)
		return nil, false
	}
	return s, true
}

func parseWizardStep(raw string) (usecase.WizardStep, bool) {
	step := usecase.WizardStep(strings.ToLower(strings.TrimSpace(raw)))
	switch step {
	case usecase.StepSpace, usecase.StepDepartment, usecase.StepAvailability, usecase.StepSchedule:
		return step, true
	}
	return "", false
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCommunityID),
		errors.Is(err, usecase.ErrInvalidResidentID),
		errors.Is(err, usecase.ErrInvalidBlock),
		errors.Is(err, usecase.ErrSelectionIncomplete):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSpaceNotFound):
		return pkg.NewDomainErrorSimple("SPACE_NOT_FOUND", "Common space not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepLocked):
		return pkg.NewDomainErrorSimple("STEP_LOCKED", "Step is not reachable yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrCooldownActive):
		return pkg.NewDomainErrorSimple("COOLDOWN_ACTIVE", "Reservation cooldown is still active", http.StatusConflict)
	case errors.Is(err, usecase.ErrOperationInFlight):
		return pkg.NewDomainErrorSimple("OPERATION_IN_FLIGHT", "Another wizard operation is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrWizardFinished):
		return pkg.NewDomainErrorSimple("WIZARD_FINISHED", "Wizard already produced a reservation", http.StatusConflict)
	case errors.Is(err, usecase.ErrDayFull):
		return pkg.NewDomainErrorSimple("DAY_FULL", "Both blocks of that day are taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrDayUnavailable):
		return pkg.NewDomainErrorSimple("DAY_UNAVAILABLE", "Day is outside the loaded window", http.StatusConflict)
	case errors.Is(err, usecase.ErrBlockTaken):
		return pkg.NewDomainErrorSimple("BLOCK_TAKEN", "That block is already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoEligibleDept):
		return pkg.NewDomainErrorSimple("NO_ELIGIBLE_DEPARTMENT", "Resident has no department able to reserve", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeptNotEligible):
		return pkg.NewDomainErrorSimple("DEPARTMENT_NOT_ELIGIBLE", "Department cannot hold this reservation", http.StatusConflict)
	default:
		return pkg.NewDomainError("UPSTREAM_ERROR", "An upstream error occurred", err, http.StatusBadGateway)
	}
}
