package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaberg/holidaze/api"
	"github.com/vaberg/holidaze/config"
	"github.com/vaberg/holidaze/internal/bootstrap"
	"github.com/vaberg/holidaze/internal/cache"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/service/venues"
	"github.com/vaberg/holidaze/internal/session"
	"github.com/vaberg/holidaze/internal/view"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Cache.VenuesTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.SessionTTLHours)*time.Hour,
	)

	client := holidaze.NewClient(cfg.Upstream)
	store := session.NewStore(redisCache, time.Duration(cfg.Cache.SessionTTLHours)*time.Hour)
	venueService := venues.NewVenueService(client, redisCache)
	views := view.NewManager(client)

	// View state dies with its session.
	unsubscribe := store.Subscribe(views.OnSessionChange)
	defer unsubscribe()

	router := api.NewRouter(api.Deps{
		Config: cfg,
		Client: client,
		Store:  store,
		Venues: venueService,
		Views:  views,
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
