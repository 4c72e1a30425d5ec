package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kroppform/salon-scheduler/internal/cache"
	"github.com/kroppform/salon-scheduler/internal/config"
	dbpkg "github.com/kroppform/salon-scheduler/internal/db"
	"github.com/kroppform/salon-scheduler/internal/middleware"
	"github.com/kroppform/salon-scheduler/internal/routes"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := cache.NewClient(cfg.RedisAddr)
	availabilityCache := cache.NewAvailability(rdb, cfg.AvailabilityTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, availabilityCache, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
