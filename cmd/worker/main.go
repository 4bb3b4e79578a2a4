package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaberg/holidaze/config"
	"github.com/vaberg/holidaze/internal/cache"
	"github.com/vaberg/holidaze/internal/holidaze"
	"github.com/vaberg/holidaze/internal/service/venues"
)

// The worker keeps the shared venue cache warm so the browse page never
// waits on the upstream API longer than one interval after expiry.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Cache.VenuesTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.SessionTTLHours)*time.Hour,
	)
	client := holidaze.NewClient(cfg.Upstream)
	venueService := venues.NewVenueService(client, redisCache)

	warmTicker := time.NewTicker(time.Duration(cfg.Worker.WarmIntervalMinutes) * time.Minute)
	defer warmTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	if err := venueService.WarmCache(ctx); err != nil {
		log.Printf("warm venue cache error: %v", err)
	}

	for {
		select {
		case <-warmTicker.C:
			if err := venueService.WarmCache(ctx); err != nil {
				log.Printf("warm venue cache error: %v", err)
				continue
			}
			log.Printf("venue cache refreshed")
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
