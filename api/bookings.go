package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaberg/holidaze/internal/booking"
	"github.com/vaberg/holidaze/internal/service/venues"
	"github.com/vaberg/holidaze/internal/view"
)

type BookingHandler struct {
	creator booking.Creator
	service venues.VenueUseCase
	views   *view.Manager
}

type createBookingRequest struct {
	VenueID  string `json:"venueId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

func NewBookingHandler(creator booking.Creator, service venues.VenueUseCase, views *view.Manager) *BookingHandler {
	return &BookingHandler{creator: creator, service: service, views: views}
}

// Register mounts the reservation routes on an authenticated group.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.GET("/my/bookings", h.listMine)
	router.DELETE("/my/bookings/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.service.Get(c.Request.Context(), req.VenueID)
	if err != nil {
		fail(c, err)
		return
	}

	var latest booking.Quote
	form := booking.NewForm(booking.VenueTerms{
		VenueID:       venue.ID,
		PricePerNight: venue.Price,
		MaxGuests:     venue.MaxGuests,
	}, func(q booking.Quote) { latest = q })
	latest = form.Quote()
	if err := applyFormInput(form, quoteRequest{CheckIn: req.CheckIn, CheckOut: req.CheckOut, Guests: req.Guests}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flow := booking.NewFlow(form, h.creator)
	created, err := flow.Submit(c.Request.Context(), currentSession(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":  created,
		"quote":    latest,
		"redirect": "/profile",
	})
}

func (h *BookingHandler) listMine(c *gin.Context) {
	sess := currentSession(c)
	bookings, err := h.views.Bookings(sess.ID).Refresh(c.Request.Context(), sess)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// cancel removes one reservation. The confirm query flag is the explicit
// destructive-intent step; without it nothing is sent upstream.
func (h *BookingHandler) cancel(c *gin.Context) {
	sess := currentSession(c)
	confirmed := c.Query("confirm") == "true"

	myBookings := h.views.Bookings(sess.ID)
	if err := myBookings.Cancel(c.Request.Context(), sess, c.Param("id"), confirmed); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": myBookings.Bookings()})
}
