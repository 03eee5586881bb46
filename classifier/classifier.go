package classifier

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// DiseaseEntry is one entry of the static detection table. Confidence is the
// fixed confidence the mock model reports for this label, in [0,1].
type DiseaseEntry struct {
	Name       string
	Confidence float64
	Severity   string
}

// Result is one classification outcome.
type Result struct {
	Disease    string
	Confidence int // percent
	Severity   string
}

// healthyWeight makes healthy outcomes three times as likely as any single
// disease entry.
const healthyWeight = 3

// diseaseCategories mirrors the detection model's label set, grouped by crop
// family. Loaded once, never mutated.
var diseaseCategories = map[string][]DiseaseEntry{
	"Apple": {
		{Name: "Apple Scab", Confidence: 0.85, Severity: "moderate"},
		{Name: "Apple Black Rot", Confidence: 0.78, Severity: "high"},
		{Name: "Apple Cedar Rust", Confidence: 0.82, Severity: "moderate"},
		{Name: "Apple Healthy", Confidence: 0.92, Severity: "none"},
	},
	"Tomato": {
		{Name: "Tomato Late Blight", Confidence: 0.88, Severity: "high"},
		{Name: "Tomato Early Blight", Confidence: 0.75, Severity: "moderate"},
		{Name: "Tomato Bacterial Spot", Confidence: 0.80, Severity: "moderate"},
		{Name: "Tomato Leaf Mold", Confidence: 0.77, Severity: "moderate"},
		{Name: "Tomato Healthy", Confidence: 0.90, Severity: "none"},
	},
	"Corn": {
		{Name: "Corn Common Rust", Confidence: 0.83, Severity: "moderate"},
		{Name: "Corn Gray Leaf Spot", Confidence: 0.79, Severity: "moderate"},
		{Name: "Corn Healthy", Confidence: 0.88, Severity: "none"},
	},
	"Potato": {
		{Name: "Potato Late Blight", Confidence: 0.86, Severity: "high"},
		{Name: "Potato Early Blight", Confidence: 0.81, Severity: "moderate"},
		{Name: "Potato Healthy", Confidence: 0.89, Severity: "none"},
	},
	"Grape": {
		{Name: "Grape Black Rot", Confidence: 0.84, Severity: "high"},
		{Name: "Grape Esca", Confidence: 0.76, Severity: "moderate"},
		{Name: "Grape Leaf Blight", Confidence: 0.78, Severity: "moderate"},
		{Name: "Grape Healthy", Confidence: 0.91, Severity: "none"},
	},
}

type weightedEntry struct {
	entry  DiseaseEntry
	weight int
}

// Classifier draws a weighted random disease from the static table. The
// image pixels are not analyzed; this stands in for a real detection model.
type Classifier struct {
	pool        []weightedEntry
	totalWeight int
	rnd         *rand.Rand
}

// New builds a classifier over the static disease table. It fails when the
// table is empty; main treats that as a fatal startup error.
func New(src rand.Source) (*Classifier, error) {
	c := &Classifier{rnd: rand.New(src)}
	for _, entries := range diseaseCategories {
		for _, e := range entries {
			w := 1
			if strings.Contains(e.Name, "Healthy") {
				w = healthyWeight
			}
			c.pool = append(c.pool, weightedEntry{entry: e, weight: w})
			c.totalWeight += w
		}
	}
	if c.totalWeight == 0 {
		return nil, fmt.Errorf("disease table is empty, cannot build classifier")
	}
	return c, nil
}

// Classify picks one entry by cumulative weight and returns its label, its
// fixed confidence as an integer percent and its severity.
func (c *Classifier) Classify() Result {
	n := c.rnd.Intn(c.totalWeight)
	for _, we := range c.pool {
		n -= we.weight
		if n < 0 {
			return Result{
				Disease:    we.entry.Name,
				Confidence: int(math.Round(we.entry.Confidence * 100)),
				Severity:   we.entry.Severity,
			}
		}
	}
	// Unreachable while totalWeight matches the pool.
	last := c.pool[len(c.pool)-1].entry
	return Result{
		Disease:    last.Name,
		Confidence: int(math.Round(last.Confidence * 100)),
		Severity:   last.Severity,
	}
}

// Entries returns the flattened disease table.
func Entries() []DiseaseEntry {
	var all []DiseaseEntry
	for _, entries := range diseaseCategories {
		all = append(all, entries...)
	}
	return all
}
