package handlers

import (
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"cropguard-service/config"
	"cropguard-service/database"
	"cropguard-service/economics"
	"cropguard-service/email"
	"cropguard-service/knowledge"
	"cropguard-service/market"
	"cropguard-service/models"
	"cropguard-service/planner"
	"cropguard-service/predictions"
	"cropguard-service/weather"
)

// Classifier is the detection model used by the ingestion pipeline.
type Classifier interface {
	Classify() ClassifierResult
}

// ClassifierResult mirrors classifier.Result without importing the package,
// so tests can plug in a fixed-outcome classifier.
type ClassifierResult struct {
	Disease    string
	Confidence int
	Severity   string
}

// CropGuardHandler bundles the collaborators behind the HTTP surface.
type CropGuardHandler struct {
	config     *config.Config
	reports    *database.ReportsService
	alerts     *database.AlertsService
	classifier Classifier
	weather    *weather.Client
	notifier   *email.Notifier
}

func NewCropGuardHandler(
	cfg *config.Config,
	reports *database.ReportsService,
	alerts *database.AlertsService,
	classifier Classifier,
	weatherClient *weather.Client,
	notifier *email.Notifier,
) *CropGuardHandler {
	return &CropGuardHandler{
		config:     cfg,
		reports:    reports,
		alerts:     alerts,
		classifier: classifier,
		weather:    weatherClient,
		notifier:   notifier,
	}
}

// HealthCheck returns a simple health status
func (h *CropGuardHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// EconomicImpact computes the loss/ROI breakdown for a disease on a farm.
func (h *CropGuardHandler) EconomicImpact(c *gin.Context) {
	args := &models.EconomicImpactRequest{}
	if err := c.ShouldBindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /economic-impact call: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if args.Disease == "" || args.CropType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "disease and cropType are required"})
		return
	}

	impact := economics.Compute(args.Disease, args.CropType, args.FarmSize, args.CurrentYield)
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"cropType":        impact.CropType,
		"disease":         impact.Disease,
		"severity":        impact.Severity,
		"farmSize":        impact.FarmSize,
		"currentYield":    impact.CurrentYield,
		"potentialYield":  impact.PotentialYield,
		"yieldLoss":       impact.YieldLossPct,
		"yieldLossAmount": impact.YieldLossAmount,
		"basePrice":       impact.BasePrice,
		"revenueLoss":     impact.RevenueLoss,
		"treatmentCost":   impact.TreatmentCost,
		"netLoss":         impact.NetLoss,
		"roi":             impact.Roi,
	})
}

// MarketPrices returns the price quotes for a crop.
func (h *CropGuardHandler) MarketPrices(c *gin.Context) {
	crop := c.Param("crop")
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"crop":      crop,
		"prices":    market.GetPrices(crop),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CropPlanner returns the cultivation calendar for a crop.
func (h *CropGuardHandler) CropPlanner(c *gin.Context) {
	crop := c.Param("crop")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"crop":    crop,
		"planner": planner.GetPlan(crop),
	})
}

// KnowledgeBase returns the static agronomy reference payload.
func (h *CropGuardHandler) KnowledgeBase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"knowledge": knowledge.Get(),
	})
}

// AIPredictions returns heuristic risk scores for a disease under given weather.
func (h *CropGuardHandler) AIPredictions(c *gin.Context) {
	args := &models.PredictionsRequest{}
	if err := c.ShouldBindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /ai-predictions call: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"predictions": predictions.Generate(args, time.Now()),
	})
}

// Weather returns the current reading and disease risk for a city, persisting
// an alert row when the risk is elevated.
func (h *CropGuardHandler) Weather(c *gin.Context) {
	location := c.Param("location")

	reading := h.weather.CurrentFor(location)
	riskLevel, alertMessage := weather.AssessRisk(reading)

	if riskLevel != "low" {
		alert := &models.WeatherAlert{
			Location:     location,
			Temperature:  reading.Temperature,
			Humidity:     reading.Humidity,
			RiskLevel:    riskLevel,
			AlertMessage: alertMessage,
		}
		if err := h.alerts.SaveAlert(c.Request.Context(), alert); err != nil {
			log.Errorf("Error saving weather alert for %s: %v", location, err)
		}
	}

	c.JSON(http.StatusOK, models.WeatherResponse{
		Location:     location,
		Temperature:  reading.Temperature,
		Humidity:     reading.Humidity,
		RiskLevel:    riskLevel,
		AlertMessage: alertMessage,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// DiseaseStats returns the aggregate-by-disease analytics view.
func (h *CropGuardHandler) DiseaseStats(c *gin.Context) {
	stats, err := h.reports.GetDiseaseStats(c.Request.Context())
	if err != nil {
		log.Errorf("Error getting disease stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics data"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DiseaseHistory returns the last detections for one user email.
func (h *CropGuardHandler) DiseaseHistory(c *gin.Context) {
	email := c.Param("email")

	history, err := h.reports.GetHistory(c.Request.Context(), email)
	if err != nil {
		log.Errorf("Error getting disease history for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// SendNotification delivers one notification email (demo mode without a
// provider key).
func (h *CropGuardHandler) SendNotification(c *gin.Context) {
	args := &models.NotificationRequest{}
	if err := c.ShouldBindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in /send-notification call: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if args.Email == "" || args.Subject == "" || args.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, subject, and message are required"})
		return
	}

	if err := h.notifier.Send(args.Email, args.Subject, args.Message); err != nil {
		log.Errorf("Error sending notification to %s: %v", args.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification sent successfully",
	})
}
