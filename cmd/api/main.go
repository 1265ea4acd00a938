package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbapp/booking-api/internal/config"
	dbpkg "github.com/barbapp/booking-api/internal/db"
	"github.com/barbapp/booking-api/internal/logger"
	"github.com/barbapp/booking-api/internal/metrics"
	"github.com/barbapp/booking-api/internal/middleware"
	"github.com/barbapp/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	slog.SetDefault(logger.New(cfg.Env))

	db := dbpkg.NewDB(cfg)

	metrics.Init()

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.HTTPMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
