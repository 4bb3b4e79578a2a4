package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaberg/holidaze/internal/booking"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/session"
	"github.com/vaberg/holidaze/internal/view"
)

// fail writes the error with the status it deserves: local validation and
// missing confirmation are 400, a missing session is a login redirect,
// upstream errors keep their status and message, everything else is a
// generic failure.
func fail(c *gin.Context, err error) {
	var validation *booking.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		return
	}
	if errors.Is(err, view.ErrNotConfirmed) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, session.ErrNoSession) {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	var upstream *holidaze.APIError
	if errors.As(err, &upstream) {
		status := upstream.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": upstream.Message})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": "API request failed"})
}
