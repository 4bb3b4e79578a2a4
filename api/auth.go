package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/session"
)

const sessionCookieMaxAge = 24 * 60 * 60

type Authenticator interface {
	Login(ctx context.Context, req holidaze.LoginRequest) (*domain.Profile, string, error)
	Register(ctx context.Context, req holidaze.RegisterRequest) (*domain.Profile, error)
}

type AuthHandler struct {
	api   Authenticator
	store *session.Store
}

func NewAuthHandler(api Authenticator, store *session.Store) *AuthHandler {
	return &AuthHandler{api: api, store: store}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/register", h.register)
	router.POST("/logout", h.logout)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req holidaze.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.api.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	sess, err := h.store.Login(c.Request.Context(), *user, token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(SessionCookie, sess.ID, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

func (h *AuthHandler) register(c *gin.Context) {
	var req holidaze.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.api.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) logout(c *gin.Context) {
	if id, err := c.Cookie(SessionCookie); err == nil {
		if err := h.store.Logout(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"redirect": loginPath})
}
