package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/view"
)

// ManageHandler is the owner-side venue management surface. All routes
// live behind the session gate; destructive calls need confirm=true.
type ManageHandler struct {
	views *view.Manager
}

func NewManageHandler(views *view.Manager) *ManageHandler {
	return &ManageHandler{views: views}
}

func (h *ManageHandler) Register(router *gin.RouterGroup) {
	router.GET("/my/venues", h.list)
	router.POST("/my/venues", h.create)
	router.PUT("/my/venues/:id", h.edit)
	router.DELETE("/my/venues/:id", h.remove)
}

func (h *ManageHandler) list(c *gin.Context) {
	sess := currentSession(c)
	myVenues, err := h.views.Venues(sess.ID).Refresh(c.Request.Context(), sess)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": myVenues})
}

func (h *ManageHandler) create(c *gin.Context) {
	sess := currentSession(c)
	if !sess.User.VenueManager {
		c.JSON(http.StatusForbidden, gin.H{"error": "venue manager capability required"})
		return
	}

	var req holidaze.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.views.Venues(sess.ID).Create(c.Request.Context(), sess, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"venue": created})
}

func (h *ManageHandler) edit(c *gin.Context) {
	sess := currentSession(c)

	var req holidaze.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.views.Venues(sess.ID).Edit(c.Request.Context(), sess, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venue": updated})
}

func (h *ManageHandler) remove(c *gin.Context) {
	sess := currentSession(c)
	confirmed := c.Query("confirm") == "true"

	myVenues := h.views.Venues(sess.ID)
	if err := myVenues.Delete(c.Request.Context(), sess, c.Param("id"), confirmed); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": myVenues.Venues()})
}
