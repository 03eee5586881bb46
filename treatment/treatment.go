package treatment

// Entry holds the advice returned for one disease.
type Entry struct {
	Organic    string `json:"organic"`
	Prevention string `json:"prevention"`
	Severity   string `json:"severity"`
	Urgency    string `json:"urgency"`
}

var treatments = map[string]Entry{
	"Apple Scab": {
		Organic:    "Apply copper fungicide spray every 7-10 days during wet weather. Remove fallen leaves and prune for better air circulation. Use neem oil as organic alternative.",
		Prevention: "Plant resistant varieties like Liberty or Enterprise. Maintain proper spacing (15-20 feet), ensure good drainage, and prune annually.",
		Severity:   "moderate",
		Urgency:    "Treat within 1-2 weeks",
	},
	"Apple Black Rot": {
		Organic:    "Remove infected fruit and branches immediately. Apply sulfur-based fungicide during bloom period. Use baking soda spray (1 tbsp per gallon) as organic option.",
		Prevention: "Prune trees to improve air circulation, avoid overhead watering, remove mummified fruit, and sanitize pruning tools.",
		Severity:   "high",
		Urgency:    "Treat immediately",
	},
	"Apple Cedar Rust": {
		Organic:    "Apply copper fungicide in early spring before bud break. Remove nearby cedar trees if possible. Use sulfur spray as organic alternative.",
		Prevention: "Plant resistant varieties, maintain 500+ feet from cedar trees, and apply preventive sprays in early spring.",
		Severity:   "moderate",
		Urgency:    "Treat before bud break",
	},
	"Apple Healthy": {
		Organic:    "Continue current care practices. Apply compost tea monthly for plant health.",
		Prevention: "Maintain regular monitoring, proper watering, and balanced fertilization.",
		Severity:   "none",
		Urgency:    "Continue monitoring",
	},
	"Tomato Late Blight": {
		Organic:    "Remove infected plants immediately. Apply copper fungicide preventively during wet weather. Use baking soda spray (1 tsp per quart) as organic option.",
		Prevention: "Avoid overhead watering, provide good air circulation, plant resistant varieties, and use drip irrigation.",
		Severity:   "high",
		Urgency:    "Treat immediately",
	},
	"Tomato Early Blight": {
		Organic:    "Remove infected leaves immediately. Apply copper fungicide weekly. Use neem oil spray as organic alternative.",
		Prevention: "Rotate crops annually, avoid overhead watering, mulch around plants, and prune lower leaves.",
		Severity:   "moderate",
		Urgency:    "Treat within 3-5 days",
	},
	"Tomato Bacterial Spot": {
		Organic:    "Remove infected plants immediately. Apply copper fungicide preventively. Use hydrogen peroxide spray (1 tsp per cup) as organic option.",
		Prevention: "Use disease-free seeds, avoid overhead watering, maintain proper spacing, and sanitize tools.",
		Severity:   "moderate",
		Urgency:    "Treat immediately",
	},
	"Tomato Healthy": {
		Organic:    "Continue current care practices. Apply compost tea bi-weekly for optimal health.",
		Prevention: "Maintain regular monitoring, proper watering, and balanced fertilization.",
		Severity:   "none",
		Urgency:    "Continue monitoring",
	},
	"Corn Common Rust": {
		Organic:    "Apply copper fungicide at first sign of disease. Remove infected plant debris after harvest. Use neem oil as organic alternative.",
		Prevention: "Plant resistant varieties, rotate crops annually, maintain proper spacing, and avoid overhead watering.",
		Severity:   "moderate",
		Urgency:    "Treat within 1 week",
	},
	"Corn Gray Leaf Spot": {
		Organic:    "Apply copper fungicide preventively. Remove infected debris after harvest. Use baking soda spray as organic option.",
		Prevention: "Plant resistant varieties, rotate crops, maintain proper spacing, and ensure good drainage.",
		Severity:   "moderate",
		Urgency:    "Treat within 1 week",
	},
	"Corn Healthy": {
		Organic:    "Continue current care practices. Apply compost tea monthly for plant health.",
		Prevention: "Maintain regular monitoring, proper watering, and balanced fertilization.",
		Severity:   "none",
		Urgency:    "Continue monitoring",
	},
	"Potato Late Blight": {
		Organic:    "Remove infected foliage immediately. Apply copper fungicide preventively. Use baking soda spray as organic alternative.",
		Prevention: "Plant certified disease-free seed potatoes, avoid overhead watering, rotate crops, and hill soil around plants.",
		Severity:   "high",
		Urgency:    "Treat immediately",
	},
	"Potato Early Blight": {
		Organic:    "Remove infected leaves immediately. Apply copper fungicide weekly. Use neem oil spray as organic option.",
		Prevention: "Rotate crops annually, avoid overhead watering, mulch around plants, and ensure good drainage.",
		Severity:   "moderate",
		Urgency:    "Treat within 3-5 days",
	},
	"Potato Healthy": {
		Organic:    "Continue current care practices. Apply compost tea monthly for plant health.",
		Prevention: "Maintain regular monitoring, proper watering, and balanced fertilization.",
		Severity:   "none",
		Urgency:    "Continue monitoring",
	},
	"Grape Black Rot": {
		Organic:    "Remove infected clusters immediately. Apply copper fungicide preventively. Use sulfur spray as organic alternative.",
		Prevention: "Prune vines for air circulation, avoid overhead watering, remove infected debris, and maintain proper spacing.",
		Severity:   "high",
		Urgency:    "Treat immediately",
	},
	"Grape Esca": {
		Organic:    "Remove infected vines immediately. Apply copper fungicide to cuts. Use hydrogen peroxide spray as organic option.",
		Prevention: "Prune during dry weather, sanitize pruning tools, avoid wounding vines, and maintain vine health.",
		Severity:   "moderate",
		Urgency:    "Treat immediately",
	},
	"Grape Healthy": {
		Organic:    "Continue current care practices. Apply compost tea monthly for plant health.",
		Prevention: "Maintain regular monitoring, proper watering, and balanced fertilization.",
		Severity:   "none",
		Urgency:    "Continue monitoring",
	},
}

var fallback = Entry{
	Organic:    "Monitor plant health regularly and maintain good cultural practices. Apply organic fungicide preventively. Consult local agricultural extension for specific recommendations.",
	Prevention: "Ensure proper spacing, good drainage, regular monitoring for early detection, and crop rotation.",
	Severity:   "unknown",
	Urgency:    "Monitor closely",
}

// Lookup returns the treatment advice for a disease. Unknown diseases get a
// generic entry, never an error.
func Lookup(disease string) Entry {
	if e, ok := treatments[disease]; ok {
		return e
	}
	return fallback
}
