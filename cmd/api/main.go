package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/uvcaspaces/booking-portal/internal/auth"
	"github.com/uvcaspaces/booking-portal/internal/config"
	dbpkg "github.com/uvcaspaces/booking-portal/internal/db"
	"github.com/uvcaspaces/booking-portal/internal/httperr"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	"github.com/uvcaspaces/booking-portal/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := auth.NewRedisClient(cfg.RedisURL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		httperr.IncludeDetails(false)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb)

	serveSPA(r, cfg.StaticDir)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// serveSPA serves the built frontend when a dist directory exists,
// falling back to index.html for client-side routes.
func serveSPA(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	r.Static("/assets", filepath.Join(dir, "assets"))
	r.StaticFile("/", index)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File(index)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})
}
