package economics

import (
	"strings"

	"github.com/shopspring/decimal"

	"cropguard-service/models"
)

// Base prices per ton, in the calculator's currency unit.
var cropPrices = map[string]float64{
	"Apple":  2.50,
	"Tomato": 1.80,
	"Corn":   0.15,
	"Potato": 0.80,
	"Grape":  3.20,
}

const defaultBasePrice = 1.0

// Yield-loss fraction per severity.
var diseaseImpact = map[string]float64{
	"high":     0.6,
	"moderate": 0.3,
	"low":      0.1,
	"none":     0,
}

// Treatment cost per acre per severity.
var treatmentCosts = map[string]float64{
	"high":     150,
	"moderate": 75,
	"low":      25,
	"none":     0,
}

// Severity derives the disease severity from the disease name. The substring
// rules are checked in fixed priority order.
func Severity(disease string) string {
	d := strings.ToLower(disease)
	switch {
	case strings.Contains(d, "healthy"):
		return "none"
	case strings.Contains(d, "late blight"),
		strings.Contains(d, "black rot"),
		strings.Contains(d, "bacterial spot"):
		return "high"
	case strings.Contains(d, "early blight"),
		strings.Contains(d, "scab"),
		strings.Contains(d, "rust"):
		return "moderate"
	default:
		return "low"
	}
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// Compute calculates the economic impact of a disease on a farm. Monetary
// outputs are rounded to 2 decimal places; the yield loss is an integer
// percent. Roi stays nil when there is no treatment cost.
func Compute(disease, cropType string, farmSize, currentYield float64) models.EconomicImpactResult {
	basePrice := defaultBasePrice
	if p, ok := cropPrices[cropType]; ok {
		basePrice = p
	}

	severity := Severity(disease)
	yieldLoss := diseaseImpact[severity]
	costPerAcre := treatmentCosts[severity]

	yield := decimal.NewFromFloat(currentYield)
	potentialYield := yield.Mul(decimal.NewFromFloat(1 - yieldLoss))
	yieldLossAmount := yield.Sub(potentialYield)
	revenueLoss := yieldLossAmount.Mul(decimal.NewFromFloat(basePrice))
	totalCost := decimal.NewFromFloat(costPerAcre).Mul(decimal.NewFromFloat(farmSize))
	netLoss := revenueLoss.Add(totalCost)

	var roi *float64
	if !totalCost.IsZero() {
		r := round2(revenueLoss.Sub(totalCost).Div(totalCost).Mul(decimal.NewFromInt(100)))
		roi = &r
	}

	return models.EconomicImpactResult{
		CropType:        cropType,
		Disease:         disease,
		Severity:        severity,
		FarmSize:        farmSize,
		CurrentYield:    currentYield,
		PotentialYield:  round2(potentialYield),
		YieldLossPct:    int(decimal.NewFromFloat(yieldLoss).Mul(decimal.NewFromInt(100)).Round(0).IntPart()),
		YieldLossAmount: round2(yieldLossAmount),
		BasePrice:       basePrice,
		RevenueLoss:     round2(revenueLoss),
		TreatmentCost:   round2(totalCost),
		NetLoss:         round2(netLoss),
		Roi:             roi,
	}
}
