package models

import "time"

// DiseaseReport is one persisted detection event. Rows are append-only;
// nothing in the service updates or deletes them.
type DiseaseReport struct {
	ID                int64     `json:"id"`
	ImagePath         string    `json:"image_path"`
	DiseasePrediction string    `json:"disease_prediction"`
	Confidence        float64   `json:"confidence"`
	Severity          string    `json:"severity"`
	Category          string    `json:"category"`
	UserEmail         string    `json:"user_email,omitempty"`
	Location          string    `json:"location,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// DiseaseStat is one row of the aggregate-by-disease analytics view.
type DiseaseStat struct {
	DiseasePrediction string  `json:"disease_prediction"`
	Count             int     `json:"count"`
	AvgConfidence     float64 `json:"avg_confidence"`
	Severity          string  `json:"severity"`
}

// WeatherAlert is persisted whenever computed disease risk is not "low".
type WeatherAlert struct {
	Location     string  `json:"location"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	RiskLevel    string  `json:"risk_level"`
	AlertMessage string  `json:"alert_message"`
}

// WeatherResponse is the payload of GET /api/weather/:location.
type WeatherResponse struct {
	Location     string  `json:"location"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	RiskLevel    string  `json:"riskLevel"`
	AlertMessage string  `json:"alertMessage"`
	Timestamp    string  `json:"timestamp"`
}

// EconomicImpactRequest is the body of POST /api/economic-impact.
type EconomicImpactRequest struct {
	Disease      string  `json:"disease"`
	CropType     string  `json:"cropType"`
	FarmSize     float64 `json:"farmSize"`
	CurrentYield float64 `json:"currentYield"`
}

// EconomicImpactResult is computed per request and never persisted.
// Roi is nil when the treatment cost is zero (healthy crop, no ROI applies).
type EconomicImpactResult struct {
	CropType        string   `json:"cropType"`
	Disease         string   `json:"disease"`
	Severity        string   `json:"severity"`
	FarmSize        float64  `json:"farmSize"`
	CurrentYield    float64  `json:"currentYield"`
	PotentialYield  float64  `json:"potentialYield"`
	YieldLossPct    int      `json:"yieldLoss"`
	YieldLossAmount float64  `json:"yieldLossAmount"`
	BasePrice       float64  `json:"basePrice"`
	RevenueLoss     float64  `json:"revenueLoss"`
	TreatmentCost   float64  `json:"treatmentCost"`
	NetLoss         float64  `json:"netLoss"`
	Roi             *float64 `json:"roi"`
}

// PredictionWeather carries the weather readings used by the AI predictions.
type PredictionWeather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// PredictionsRequest is the body of POST /api/ai-predictions.
type PredictionsRequest struct {
	Disease  string            `json:"disease"`
	Weather  PredictionWeather `json:"weather"`
	Location string            `json:"location"`
	CropType string            `json:"cropType"`
}

// TimelineEntry is one step of the fixed treatment timeline.
type TimelineEntry struct {
	Day      int    `json:"day"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// Predictions is the heuristic risk assessment payload.
type Predictions struct {
	DiseaseRisk            float64         `json:"diseaseRisk"`
	SpreadProbability      float64         `json:"spreadProbability"`
	TreatmentEffectiveness float64         `json:"treatmentEffectiveness"`
	Recommendations        []string        `json:"recommendations"`
	Timeline               []TimelineEntry `json:"timeline"`
	Confidence             float64         `json:"confidence"`
}

// NotificationRequest is the body of POST /api/send-notification.
type NotificationRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
