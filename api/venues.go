package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaberg/holidaze/internal/booking"
	"github.com/vaberg/holidaze/internal/calendar"
	"github.com/vaberg/holidaze/internal/service/venues"
)

type VenueHandler struct {
	service venues.VenueUseCase
}

type quoteRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

func NewVenueHandler(service venues.VenueUseCase) *VenueHandler {
	return &VenueHandler{service: service}
}

func (h *VenueHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.POST("/:id/quote", h.quote)
}

func (h *VenueHandler) list(c *gin.Context) {
	venueList, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venueList})
}

func (h *VenueHandler) search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search term is required"})
		return
	}

	results, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": results})
}

// get returns the venue together with its blocked calendar ranges.
func (h *VenueHandler) get(c *gin.Context) {
	venue, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venue":  venue,
		"events": calendar.FromBookings(venue.Bookings),
	})
}

// quote previews nights and total price for a prospective stay without
// creating anything.
func (h *VenueHandler) quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	// The response carries the last quote the form emitted, the same
	// stream the sidebar consumes.
	var latest booking.Quote
	form := booking.NewForm(booking.VenueTerms{
		VenueID:       venue.ID,
		PricePerNight: venue.Price,
		MaxGuests:     venue.MaxGuests,
	}, func(q booking.Quote) { latest = q })
	latest = form.Quote()

	if err := applyFormInput(form, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": latest, "summary": latest.Summary()})
}

func applyFormInput(form *booking.Form, req quoteRequest) error {
	if req.CheckIn != "" {
		day, err := parseDate(req.CheckIn)
		if err != nil {
			return err
		}
		if err := form.SetCheckIn(day); err != nil {
			return err
		}
	}
	if req.CheckOut != "" {
		day, err := parseDate(req.CheckOut)
		if err != nil {
			return err
		}
		if err := form.SetCheckOut(day); err != nil {
			return err
		}
	}
	if req.Guests != 0 {
		if err := form.SetGuests(req.Guests); err != nil {
			return err
		}
	}
	return nil
}

// parseDate reads a calendar date as a UTC midnight, matching the format
// date inputs submit.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
