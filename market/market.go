package market

import "strings"

// Prices is the quoted price set for one crop, INR per kg.
type Prices struct {
	Current float64 `json:"current"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Trend   string  `json:"trend"`
}

var basePrices = map[string]Prices{
	"rice":         {Current: 55, Weekly: 52, Monthly: 58, Trend: "rising"},
	"wheat":        {Current: 28, Weekly: 30, Monthly: 26, Trend: "falling"},
	"maize":        {Current: 22, Weekly: 20, Monthly: 24, Trend: "rising"},
	"sugarcane":    {Current: 18, Weekly: 16, Monthly: 20, Trend: "rising"},
	"cotton":       {Current: 65, Weekly: 70, Monthly: 60, Trend: "falling"},
	"tomato":       {Current: 45, Weekly: 42, Monthly: 48, Trend: "rising"},
	"potato":       {Current: 25, Weekly: 28, Monthly: 22, Trend: "falling"},
	"onion":        {Current: 35, Weekly: 30, Monthly: 40, Trend: "rising"},
	"chili":        {Current: 120, Weekly: 110, Monthly: 130, Trend: "rising"},
	"turmeric":     {Current: 85, Weekly: 80, Monthly: 90, Trend: "rising"},
	"ginger":       {Current: 95, Weekly: 90, Monthly: 100, Trend: "rising"},
	"garlic":       {Current: 75, Weekly: 70, Monthly: 80, Trend: "rising"},
	"cabbage":      {Current: 20, Weekly: 18, Monthly: 22, Trend: "rising"},
	"cauliflower":  {Current: 25, Weekly: 22, Monthly: 28, Trend: "rising"},
	"brinjal":      {Current: 30, Weekly: 28, Monthly: 32, Trend: "rising"},
	"okra":         {Current: 40, Weekly: 35, Monthly: 45, Trend: "rising"},
	"cucumber":     {Current: 15, Weekly: 12, Monthly: 18, Trend: "rising"},
	"bottle gourd": {Current: 18, Weekly: 16, Monthly: 20, Trend: "rising"},
	"bitter gourd": {Current: 35, Weekly: 32, Monthly: 38, Trend: "rising"},
	"ridge gourd":  {Current: 22, Weekly: 20, Monthly: 24, Trend: "rising"},
	"spinach":      {Current: 12, Weekly: 10, Monthly: 14, Trend: "rising"},
	"coriander":    {Current: 8, Weekly: 6, Monthly: 10, Trend: "rising"},
	"mint":         {Current: 15, Weekly: 12, Monthly: 18, Trend: "rising"},
	"fenugreek":    {Current: 25, Weekly: 22, Monthly: 28, Trend: "rising"},
	"mustard":      {Current: 45, Weekly: 42, Monthly: 48, Trend: "rising"},
	"sunflower":    {Current: 55, Weekly: 50, Monthly: 60, Trend: "rising"},
	"groundnut":    {Current: 65, Weekly: 60, Monthly: 70, Trend: "rising"},
	"sesame":       {Current: 85, Weekly: 80, Monthly: 90, Trend: "rising"},
	"soybean":      {Current: 35, Weekly: 32, Monthly: 38, Trend: "rising"},
	"chickpea":     {Current: 45, Weekly: 42, Monthly: 48, Trend: "rising"},
	"lentil":       {Current: 55, Weekly: 50, Monthly: 60, Trend: "rising"},
	"black gram":   {Current: 65, Weekly: 60, Monthly: 70, Trend: "rising"},
	"green gram":   {Current: 45, Weekly: 42, Monthly: 48, Trend: "rising"},
	"pigeon pea":   {Current: 55, Weekly: 50, Monthly: 60, Trend: "rising"},
	"mango":        {Current: 80, Weekly: 75, Monthly: 85, Trend: "rising"},
	"banana":       {Current: 25, Weekly: 22, Monthly: 28, Trend: "rising"},
	"papaya":       {Current: 15, Weekly: 12, Monthly: 18, Trend: "rising"},
	"guava":        {Current: 30, Weekly: 28, Monthly: 32, Trend: "rising"},
	"pomegranate":  {Current: 120, Weekly: 110, Monthly: 130, Trend: "rising"},
	"grapes":       {Current: 60, Weekly: 55, Monthly: 65, Trend: "rising"},
	"orange":       {Current: 35, Weekly: 32, Monthly: 38, Trend: "rising"},
	"lemon":        {Current: 20, Weekly: 18, Monthly: 22, Trend: "rising"},
	"coconut":      {Current: 8, Weekly: 7, Monthly: 9, Trend: "rising"},
	"cashew":       {Current: 180, Weekly: 170, Monthly: 190, Trend: "rising"},
	"almond":       {Current: 220, Weekly: 200, Monthly: 240, Trend: "rising"},
	"walnut":       {Current: 250, Weekly: 240, Monthly: 260, Trend: "rising"},
	"cardamom":     {Current: 1200, Weekly: 1100, Monthly: 1300, Trend: "rising"},
	"pepper":       {Current: 180, Weekly: 170, Monthly: 190, Trend: "rising"},
	"cinnamon":     {Current: 150, Weekly: 140, Monthly: 160, Trend: "rising"},
	"clove":        {Current: 200, Weekly: 190, Monthly: 210, Trend: "rising"},
	"nutmeg":       {Current: 160, Weekly: 150, Monthly: 170, Trend: "rising"},
	"vanilla":      {Current: 800, Weekly: 750, Monthly: 850, Trend: "rising"},
}

var defaultPrices = Prices{Current: 30, Weekly: 28, Monthly: 32, Trend: "stable"}

// GetPrices returns the price set for a crop, or a generic stable quote when
// the crop is not listed.
func GetPrices(crop string) Prices {
	if p, ok := basePrices[strings.ToLower(crop)]; ok {
		return p
	}
	return defaultPrices
}
