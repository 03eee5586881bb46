package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cropguard-service/classifier"
	"cropguard-service/config"
	"cropguard-service/database"
	"cropguard-service/email"
	"cropguard-service/handlers"
	"cropguard-service/metrics"
	"cropguard-service/middleware"
	"cropguard-service/utils"
	"cropguard-service/version"
	"cropguard-service/weather"
)

const (
	EndPointHealth           = "/health"
	EndPointDetectDisease    = "/detect-disease"
	EndPointEconomicImpact   = "/economic-impact"
	EndPointMarketPrices     = "/market-prices/:crop"
	EndPointCropPlanner      = "/crop-planner/:crop"
	EndPointKnowledgeBase    = "/knowledge-base"
	EndPointAIPredictions    = "/ai-predictions"
	EndPointWeather          = "/weather/:location"
	EndPointDiseaseStats     = "/analytics/disease-stats"
	EndPointDiseaseHistory   = "/disease-history/:email"
	EndPointSendNotification = "/send-notification"
)

// classifierAdapter bridges the classifier package to the handlers interface.
type classifierAdapter struct {
	c *classifier.Classifier
}

func (a classifierAdapter) Classify() handlers.ClassifierResult {
	res := a.c.Classify()
	return handlers.ClassifierResult{
		Disease:    res.Disease,
		Confidence: res.Confidence,
		Severity:   res.Severity,
	}
}

func main() {
	// Load .env if present, then the environment
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}
	cfg := config.Load()

	log.Info("Starting the cropguard service...")

	// Connect to database
	db, err := utils.DBConnect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize database schema
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", cfg.UploadDir, err)
	}

	// Build the disease classifier; an empty table is a config error
	diseaseClassifier, err := classifier.New(rand.NewSource(time.Now().UnixNano()))
	if err != nil {
		log.Fatalf("Failed to build disease classifier: %v", err)
	}

	// Initialize services
	reportsService := database.NewReportsService(db)
	alertsService := database.NewAlertsService(db)
	weatherClient := weather.NewClient(cfg.WeatherAPIURL, time.Duration(cfg.WeatherTimeoutSec)*time.Second)
	notifier := email.NewNotifier(cfg)

	// Initialize handlers
	cropGuardHandler := handlers.NewCropGuardHandler(
		cfg, reportsService, alertsService,
		classifierAdapter{c: diseaseClassifier}, weatherClient, notifier)

	// Register metrics collectors
	metrics.Register()

	// Setup router
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, version.Get("cropguard-service"))
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve stored uploads back to the UI
	router.Static("/uploads", cfg.UploadDir)

	rateLimit := middleware.RateLimitMiddleware(cfg.RateLimitPerMin, time.Minute)

	api := router.Group("/api")
	{
		api.GET(EndPointHealth, cropGuardHandler.HealthCheck)
		api.POST(EndPointDetectDisease, rateLimit, cropGuardHandler.DetectDisease)
		api.POST(EndPointEconomicImpact, rateLimit, cropGuardHandler.EconomicImpact)
		api.GET(EndPointMarketPrices, cropGuardHandler.MarketPrices)
		api.GET(EndPointCropPlanner, cropGuardHandler.CropPlanner)
		api.GET(EndPointKnowledgeBase, cropGuardHandler.KnowledgeBase)
		api.POST(EndPointAIPredictions, rateLimit, cropGuardHandler.AIPredictions)
		api.GET(EndPointWeather, cropGuardHandler.Weather)
		api.GET(EndPointDiseaseStats, cropGuardHandler.DiseaseStats)
		api.GET(EndPointDiseaseHistory, cropGuardHandler.DiseaseHistory)
		api.POST(EndPointSendNotification, rateLimit, cropGuardHandler.SendNotification)
	}

	// Get server port from config
	serverPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("Invalid PORT configuration: %v", err)
	}

	// Start server
	log.Infof("Cropguard service starting on port %d", serverPort)
	if err := router.Run(fmt.Sprintf(":%d", serverPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
