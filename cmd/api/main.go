package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"md-shaving/internal/api/handlers"
	"md-shaving/internal/api/middleware"
	"md-shaving/internal/catalog"
	"md-shaving/internal/config"
	"md-shaving/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cat, src := catalog.Load(cfg.CatalogFile)
	if src.Kind == catalog.SourceBuiltin {
		log.Printf("Using built-in battery catalog: %s", src.Diagnostic)
	} else {
		log.Printf("Loaded battery catalog from %s (%d models)", src.Path, len(cat))
	}

	reportTTL := time.Hour
	if v := os.Getenv("REPORT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			reportTTL = d
		} else {
			log.Printf("Ignoring invalid REPORT_TTL %q: %v", v, err)
		}
	}
	reports := store.New(reportTTL)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	analysisHandler := handlers.NewAnalysisHandler(cat, src, cfg.Defaults, reports)
	catalogHandler := handlers.NewCatalogHandler(cat, src)
	degradationHandler := handlers.NewDegradationHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analysis", analysisHandler.RunAnalysis)
		api.POST("/analysis/compare", analysisHandler.Compare)
		api.GET("/analysis/:id/report", analysisHandler.GetReport)
		api.GET("/analysis/:id/degradation.csv", analysisHandler.GetDegradationCSV)

		api.GET("/batteries", catalogHandler.ListBatteries)
		api.GET("/degradation", degradationHandler.GetTrajectory)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
