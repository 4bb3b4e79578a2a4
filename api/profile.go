package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/session"
	"github.com/vaberg/holidaze/internal/view"
)

type ProfileAPI interface {
	GetProfile(ctx context.Context, token, name string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, token, name string, req holidaze.ProfileUpdateRequest) (*domain.Profile, error)
}

type ProfileHandler struct {
	api   ProfileAPI
	store *session.Store
}

func NewProfileHandler(api ProfileAPI, store *session.Store) *ProfileHandler {
	return &ProfileHandler{api: api, store: store}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup) {
	router.GET("/profile", h.get)
	router.PUT("/profile", h.update)
}

func (h *ProfileHandler) get(c *gin.Context) {
	sess := currentSession(c)

	profile, err := h.api.GetProfile(c.Request.Context(), sess.Token, sess.User.Name)
	if err != nil {
		fail(c, err)
		return
	}

	// Keep the session copy in step with the upstream record.
	if _, err := h.store.UpdateUser(c.Request.Context(), sess.ID, *profile); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

func (h *ProfileHandler) update(c *gin.Context) {
	sess := currentSession(c)

	var req holidaze.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := view.ValidateProfileUpdate(req); err != nil {
		fail(c, err)
		return
	}

	updated, err := h.api.UpdateProfile(c.Request.Context(), sess.Token, sess.User.Name, req)
	if err != nil {
		fail(c, err)
		return
	}

	if _, err := h.store.UpdateUser(c.Request.Context(), sess.ID, *updated); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}
