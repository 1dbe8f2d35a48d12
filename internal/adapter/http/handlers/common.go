package handlers

import (
	"net/http"
	"strings"

	"visitme_reservas/pkg"

	"github.com/gin-gonic/gin"
)

// residentHeader carries the acting resident's identity, injected by the
// API gateway after token validation. The data layer still treats it as
// untrusted for ownership: every per-resident read and write is conditioned
// on it server-side.
const residentHeader = "X-Resident-ID"

var (
	errMissingResident = pkg.NewDomainErrorSimple("MISSING_RESIDENT", "Missing resident identity", http.StatusUnauthorized)
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func residentID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(residentHeader))
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
