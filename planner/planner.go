package planner

import "strings"

// Phase describes one stage of the crop cycle.
type Phase struct {
	Month       string `json:"month,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	Soil        string `json:"soil,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Watering    string `json:"watering,omitempty"`
	Fertilizing string `json:"fertilizing,omitempty"`
	Indicators  string `json:"indicators,omitempty"`
}

// ScheduleEntry lists the tasks for one month.
type ScheduleEntry struct {
	Month string   `json:"month"`
	Tasks []string `json:"tasks"`
}

// Plan is the full cultivation calendar for one crop.
type Plan struct {
	Planting    Phase           `json:"planting"`
	Growing     Phase           `json:"growing"`
	Harvesting  Phase           `json:"harvesting"`
	Maintenance []string        `json:"maintenance"`
	Schedule    []ScheduleEntry `json:"schedule"`
}

var planners = map[string]Plan{
	"rice": {
		Planting:    Phase{Month: "June-July (Kharif)", Temperature: "25-35°C", Soil: "Clay loam, pH 6.0-7.0"},
		Growing:     Phase{Duration: "4-5 months", Watering: "Continuous flooding", Fertilizing: "NPK 120:60:60 kg/ha"},
		Harvesting:  Phase{Month: "October-November", Indicators: "Grains hard, 80% moisture"},
		Maintenance: []string{"Water management", "Weed control", "Pest monitoring"},
		Schedule: []ScheduleEntry{
			{Month: "June", Tasks: []string{"Land preparation", "Seedling preparation"}},
			{Month: "July", Tasks: []string{"Transplanting", "Water management"}},
			{Month: "August", Tasks: []string{"Fertilizer application", "Weed control"}},
			{Month: "October", Tasks: []string{"Harvesting", "Threshing"}},
		},
	},
	"wheat": {
		Planting:    Phase{Month: "October-November (Rabi)", Temperature: "15-25°C", Soil: "Well-drained, pH 6.5-7.5"},
		Growing:     Phase{Duration: "4-5 months", Watering: "3-4 irrigations", Fertilizing: "NPK 120:60:40 kg/ha"},
		Harvesting:  Phase{Month: "March-April", Indicators: "Grains hard, golden color"},
		Maintenance: []string{"Weed control", "Disease monitoring", "Irrigation management"},
		Schedule: []ScheduleEntry{
			{Month: "October", Tasks: []string{"Land preparation", "Sowing"}},
			{Month: "December", Tasks: []string{"First irrigation", "Fertilizer application"}},
			{Month: "February", Tasks: []string{"Second irrigation", "Disease control"}},
			{Month: "March", Tasks: []string{"Harvesting", "Threshing"}},
		},
	},
	"maize": {
		Planting:    Phase{Month: "June-July (Kharif)", Temperature: "20-30°C", Soil: "Well-drained, pH 6.0-7.0"},
		Growing:     Phase{Duration: "3-4 months", Watering: "5-6 irrigations", Fertilizing: "NPK 120:60:40 kg/ha"},
		Harvesting:  Phase{Month: "September-October", Indicators: "Kernels hard, moisture 20-25%"},
		Maintenance: []string{"Weed control", "Pest monitoring", "Earthing up"},
		Schedule: []ScheduleEntry{
			{Month: "June", Tasks: []string{"Land preparation", "Sowing"}},
			{Month: "July", Tasks: []string{"Thinning", "First irrigation"}},
			{Month: "August", Tasks: []string{"Fertilizer application", "Earthing up"}},
			{Month: "September", Tasks: []string{"Harvesting", "Drying"}},
		},
	},
	"sugarcane": {
		Planting:    Phase{Month: "October-November", Temperature: "25-35°C", Soil: "Deep, well-drained, pH 6.5-7.5"},
		Growing:     Phase{Duration: "12-18 months", Watering: "Regular irrigation", Fertilizing: "NPK 200:100:100 kg/ha"},
		Harvesting:  Phase{Month: "October-March", Indicators: "Sucrose content 12-14%"},
		Maintenance: []string{"Weed control", "Pest management", "Ratoon management"},
		Schedule: []ScheduleEntry{
			{Month: "October", Tasks: []string{"Land preparation", "Planting"}},
			{Month: "December", Tasks: []string{"Gap filling", "First irrigation"}},
			{Month: "March", Tasks: []string{"Fertilizer application", "Weed control"}},
			{Month: "October", Tasks: []string{"Harvesting", "Ratoon preparation"}},
		},
	},
	"cotton": {
		Planting:    Phase{Month: "April-May", Temperature: "25-35°C", Soil: "Well-drained, pH 6.0-8.0"},
		Growing:     Phase{Duration: "6-7 months", Watering: "4-5 irrigations", Fertilizing: "NPK 100:50:50 kg/ha"},
		Harvesting:  Phase{Month: "October-December", Indicators: "Bolls open, fiber mature"},
		Maintenance: []string{"Pest control", "Weed management", "Pruning"},
		Schedule: []ScheduleEntry{
			{Month: "April", Tasks: []string{"Land preparation", "Sowing"}},
			{Month: "June", Tasks: []string{"Thinning", "First irrigation"}},
			{Month: "August", Tasks: []string{"Fertilizer application", "Pest control"}},
			{Month: "October", Tasks: []string{"Harvesting", "Ginning"}},
		},
	},
	"tomato": {
		Planting:    Phase{Month: "October-November", Temperature: "20-30°C", Soil: "Well-drained, pH 6.0-6.8"},
		Growing:     Phase{Duration: "3-4 months", Watering: "Regular irrigation", Fertilizing: "NPK 100:50:50 kg/ha"},
		Harvesting:  Phase{Month: "January-March", Indicators: "Firm, full color"},
		Maintenance: []string{"Staking", "Pruning", "Disease control"},
		Schedule: []ScheduleEntry{
			{Month: "October", Tasks: []string{"Nursery preparation", "Seedling raising"}},
			{Month: "November", Tasks: []string{"Transplanting", "Staking"}},
			{Month: "January", Tasks: []string{"Fertilizer application", "Pruning"}},
			{Month: "February", Tasks: []string{"Harvesting", "Grading"}},
		},
	},
	"potato": {
		Planting:    Phase{Month: "October-November", Temperature: "15-25°C", Soil: "Well-drained, pH 5.5-6.5"},
		Growing:     Phase{Duration: "3-4 months", Watering: "Regular irrigation", Fertilizing: "NPK 120:80:80 kg/ha"},
		Harvesting:  Phase{Month: "January-March", Indicators: "Vines dry, tubers mature"},
		Maintenance: []string{"Earthing up", "Disease control", "Weed management"},
		Schedule: []ScheduleEntry{
			{Month: "October", Tasks: []string{"Land preparation", "Planting"}},
			{Month: "November", Tasks: []string{"Earthing up", "First irrigation"}},
			{Month: "January", Tasks: []string{"Fertilizer application", "Disease control"}},
			{Month: "February", Tasks: []string{"Harvesting", "Curing"}},
		},
	},
	"onion": {
		Planting:    Phase{Month: "October-November", Temperature: "15-25°C", Soil: "Well-drained, pH 6.0-7.0"},
		Growing:     Phase{Duration: "4-5 months", Watering: "Regular irrigation", Fertilizing: "NPK 100:50:50 kg/ha"},
		Harvesting:  Phase{Month: "March-April", Indicators: "Tops fall over, bulbs mature"},
		Maintenance: []string{"Weed control", "Disease management", "Bulb development"},
		Schedule: []ScheduleEntry{
			{Month: "October", Tasks: []string{"Nursery preparation", "Seedling raising"}},
			{Month: "November", Tasks: []string{"Transplanting", "First irrigation"}},
			{Month: "January", Tasks: []string{"Fertilizer application", "Weed control"}},
			{Month: "March", Tasks: []string{"Harvesting", "Curing"}},
		},
	},
	"chili": {
		Planting:    Phase{Month: "June-July", Temperature: "20-30°C", Soil: "Well-drained, pH 6.0-7.0"},
		Growing:     Phase{Duration: "4-5 months", Watering: "Regular irrigation", Fertilizing: "NPK 80:40:40 kg/ha"},
		Harvesting:  Phase{Month: "September-December", Indicators: "Pods red, fully mature"},
		Maintenance: []string{"Staking", "Pest control", "Pruning"},
		Schedule: []ScheduleEntry{
			{Month: "June", Tasks: []string{"Nursery preparation", "Seedling raising"}},
			{Month: "July", Tasks: []string{"Transplanting", "Staking"}},
			{Month: "August", Tasks: []string{"Fertilizer application", "Pest control"}},
			{Month: "September", Tasks: []string{"Harvesting", "Drying"}},
		},
	},
	"mango": {
		Planting:    Phase{Month: "July-August", Temperature: "25-35°C", Soil: "Deep, well-drained, pH 6.0-7.5"},
		Growing:     Phase{Duration: "Perennial", Watering: "Regular irrigation", Fertilizing: "NPK 100:50:50 kg/tree"},
		Harvesting:  Phase{Month: "April-July", Indicators: "Fruits mature, color change"},
		Maintenance: []string{"Pruning", "Pest control", "Flowering management"},
		Schedule: []ScheduleEntry{
			{Month: "July", Tasks: []string{"Planting", "Initial care"}},
			{Month: "October", Tasks: []string{"Pruning", "Fertilizer application"}},
			{Month: "January", Tasks: []string{"Flowering", "Pest control"}},
			{Month: "April", Tasks: []string{"Harvesting", "Post-harvest care"}},
		},
	},
}

// GetPlan returns the cultivation plan for a crop; unknown crops fall back to
// the rice plan.
func GetPlan(crop string) Plan {
	if p, ok := planners[strings.ToLower(crop)]; ok {
		return p
	}
	return planners["rice"]
}
