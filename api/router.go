package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vaberg/holidaze/config"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/service/venues"
	"github.com/vaberg/holidaze/internal/session"
	"github.com/vaberg/holidaze/internal/view"
)

type Deps struct {
	Config *config.Config
	Client *holidaze.Client
	Store  *session.Store
	Venues venues.VenueUseCase
	Views  *view.Manager
}

func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Logger())

	if len(d.Config.HTTP.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     d.Config.HTTP.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
			AllowCredentials: true,
		}))
	}

	NewAuthHandler(d.Client, d.Store).Register(router.Group("/auth"))
	NewVenueHandler(d.Venues).Register(router.Group("/venues"))

	authed := router.Group("/", RequireSession(d.Store))
	NewBookingHandler(d.Client, d.Venues, d.Views).Register(authed)
	NewManageHandler(d.Views).Register(authed)
	NewProfileHandler(d.Client, d.Store).Register(authed)

	router.GET(loginPath, func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	})

	if d.Config.HTTP.DocsDir != "" {
		router.Static("/docs", d.Config.HTTP.DocsDir)
	}

	return router
}
