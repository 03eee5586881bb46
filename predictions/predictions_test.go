package predictions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cropguard-service/models"
)

var january = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
var july = time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)

func TestGenerateHotHumidGrowingSeason(t *testing.T) {
	req := &models.PredictionsRequest{
		Disease: "Tomato Late Blight",
		Weather: models.PredictionWeather{Temperature: 30, Humidity: 90},
	}
	p := Generate(req, july)

	// 0.5 base + 0.2 temp + 0.3 humidity + 0.1 season, capped at 1.0.
	assert.Equal(t, 1.0, p.DiseaseRisk)
	// 0.3 base + 0.3 humidity + 0.2 temp.
	assert.InDelta(t, 0.8, p.SpreadProbability, 1e-9)
	// 0.7 base, no bonus (humidity >= 60) except temp < 30 is false at 30.
	assert.InDelta(t, 0.7, p.TreatmentEffectiveness, 1e-9)
}

func TestGenerateCoolDryDormantSeason(t *testing.T) {
	req := &models.PredictionsRequest{
		Disease: "Apple Scab",
		Weather: models.PredictionWeather{Temperature: 15, Humidity: 40},
	}
	p := Generate(req, january)

	assert.InDelta(t, 0.5, p.DiseaseRisk, 1e-9)
	assert.InDelta(t, 0.3, p.SpreadProbability, 1e-9)
	// 0.7 + 0.2 (dry) + 0.1 (cool), capped at 0.95.
	assert.Equal(t, 0.95, p.TreatmentEffectiveness)
}

func TestGenerateTimelineShape(t *testing.T) {
	p := Generate(&models.PredictionsRequest{}, january)

	assert.Len(t, p.Timeline, 5)
	days := []int{1, 3, 7, 14, 21}
	for i, entry := range p.Timeline {
		assert.Equal(t, days[i], entry.Day)
		assert.NotEmpty(t, entry.Action)
	}
}

func TestGenerateConfidenceRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		p := Generate(&models.PredictionsRequest{}, july)
		assert.GreaterOrEqual(t, p.Confidence, 0.7)
		assert.Less(t, p.Confidence, 1.0)
	}
}

func TestGenerateRecommendationsByFactor(t *testing.T) {
	humid := Generate(&models.PredictionsRequest{
		Weather: models.PredictionWeather{Temperature: 20, Humidity: 90},
	}, january)
	assert.Contains(t, humid.Recommendations, "Improve air circulation around plants")

	mild := Generate(&models.PredictionsRequest{
		Weather: models.PredictionWeather{Temperature: 20, Humidity: 60},
	}, january)
	assert.Equal(t, []string{
		"Apply preventive fungicide treatment",
		"Monitor plants daily for early symptoms",
	}, mild.Recommendations)
}
