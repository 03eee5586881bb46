package predictions

import (
	"math/rand"
	"time"

	"cropguard-service/models"
)

// riskFactors buckets the weather readings into coarse levels.
type riskFactors struct {
	temperature string
	humidity    string
	season      string
}

func classifyFactors(w models.PredictionWeather, now time.Time) riskFactors {
	f := riskFactors{temperature: "moderate", humidity: "moderate", season: "dormant"}
	if w.Temperature > 25 {
		f.temperature = "high"
	} else if w.Temperature < 10 {
		f.temperature = "low"
	}
	if w.Humidity > 80 {
		f.humidity = "high"
	} else if w.Humidity < 50 {
		f.humidity = "low"
	}
	if m := now.Month(); m >= time.June && m <= time.September {
		f.season = "growing"
	}
	return f
}

func diseaseRisk(f riskFactors) float64 {
	risk := 0.5
	if f.temperature == "high" {
		risk += 0.2
	}
	if f.humidity == "high" {
		risk += 0.3
	}
	if f.season == "growing" {
		risk += 0.1
	}
	return min(risk, 1.0)
}

func spreadProbability(w models.PredictionWeather) float64 {
	p := 0.3
	if w.Humidity > 80 {
		p += 0.3
	}
	if w.Temperature > 25 {
		p += 0.2
	}
	return min(p, 0.9)
}

func treatmentEffectiveness(w models.PredictionWeather) float64 {
	e := 0.7
	if w.Humidity < 60 {
		e += 0.2
	}
	if w.Temperature < 30 {
		e += 0.1
	}
	return min(e, 0.95)
}

func recommendations(f riskFactors) []string {
	var recs []string
	if f.humidity == "high" {
		recs = append(recs,
			"Improve air circulation around plants",
			"Consider using fans in greenhouse")
	}
	if f.temperature == "high" {
		recs = append(recs,
			"Provide shade during hottest hours",
			"Increase watering frequency")
	}
	recs = append(recs,
		"Apply preventive fungicide treatment",
		"Monitor plants daily for early symptoms")
	return recs
}

func timeline() []models.TimelineEntry {
	return []models.TimelineEntry{
		{Day: 1, Action: "Apply initial treatment", Priority: "high"},
		{Day: 3, Action: "Monitor for improvement", Priority: "medium"},
		{Day: 7, Action: "Reapply treatment if needed", Priority: "high"},
		{Day: 14, Action: "Assess treatment effectiveness", Priority: "medium"},
		{Day: 21, Action: "Plan long-term prevention", Priority: "low"},
	}
}

// Generate produces the heuristic risk assessment for a disease under the
// given weather. The scores are coarse threshold adjustments of fixed base
// values; no model runs here.
func Generate(req *models.PredictionsRequest, now time.Time) models.Predictions {
	f := classifyFactors(req.Weather, now)
	return models.Predictions{
		DiseaseRisk:            diseaseRisk(f),
		SpreadProbability:      spreadProbability(req.Weather),
		TreatmentEffectiveness: treatmentEffectiveness(req.Weather),
		Recommendations:        recommendations(f),
		Timeline:               timeline(),
		Confidence:             rand.Float64()*0.3 + 0.7,
	}
}
