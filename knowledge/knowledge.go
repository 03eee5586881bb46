package knowledge

// DiseaseInfo is one knowledge-base disease article.
type DiseaseInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Prevention  []string `json:"prevention"`
	Treatment   []string `json:"treatment"`
}

// TreatmentInfo is one knowledge-base treatment article.
type TreatmentInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Safety      string `json:"safety"`
}

// Base is the full knowledge-base payload.
type Base struct {
	Diseases   []DiseaseInfo   `json:"diseases"`
	Treatments []TreatmentInfo `json:"treatments"`
	Tips       []string        `json:"tips"`
}

var base = Base{
	Diseases: []DiseaseInfo{
		{
			Name:        "Apple Scab",
			Description: "Fungal disease causing dark spots on leaves and fruit",
			Symptoms:    []string{"Dark spots on leaves", "Cracked fruit", "Premature leaf drop"},
			Prevention:  []string{"Plant resistant varieties", "Improve air circulation", "Remove fallen leaves"},
			Treatment:   []string{"Copper fungicide", "Sulfur spray", "Prune infected branches"},
		},
		{
			Name:        "Tomato Late Blight",
			Description: "Devastating fungal disease affecting tomatoes and potatoes",
			Symptoms:    []string{"Water-soaked spots", "White mold on leaves", "Rapid plant death"},
			Prevention:  []string{"Avoid overhead watering", "Plant resistant varieties", "Good air circulation"},
			Treatment:   []string{"Copper fungicide", "Remove infected plants", "Improve drainage"},
		},
	},
	Treatments: []TreatmentInfo{
		{
			Name:        "Copper Fungicide",
			Description: "Organic fungicide effective against many plant diseases",
			Usage:       "Apply every 7-10 days during wet weather",
			Safety:      "Safe for organic farming, follow label instructions",
		},
		{
			Name:        "Neem Oil",
			Description: "Natural pesticide and fungicide from neem tree",
			Usage:       "Apply weekly as preventive measure",
			Safety:      "Safe for beneficial insects, avoid during flowering",
		},
	},
	Tips: []string{
		"Rotate crops annually to prevent disease buildup",
		"Use drip irrigation to avoid wetting leaves",
		"Plant disease-resistant varieties when available",
		"Monitor plants regularly for early disease detection",
		"Maintain proper spacing for good air circulation",
	},
}

// Get returns the static knowledge-base payload.
func Get() Base {
	return base
}
