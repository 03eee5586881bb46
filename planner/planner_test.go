package planner

import (
	"reflect"
	"testing"
)

func TestGetPlanKnownCrop(t *testing.T) {
	p := GetPlan("wheat")
	if p.Planting.Month != "October-November (Rabi)" {
		t.Errorf("Unexpected wheat planting month: %s", p.Planting.Month)
	}
	if len(p.Schedule) != 4 {
		t.Errorf("Expected 4 schedule entries, got %d", len(p.Schedule))
	}
}

func TestGetPlanUnknownCropFallsBackToRice(t *testing.T) {
	unknown := GetPlan("unknowncrop")
	rice := GetPlan("rice")
	if !reflect.DeepEqual(unknown, rice) {
		t.Error("Expected unknown crop to return the rice plan verbatim")
	}
}

func TestGetPlanCaseInsensitive(t *testing.T) {
	if !reflect.DeepEqual(GetPlan("Mango"), GetPlan("mango")) {
		t.Error("Expected lookup to ignore case")
	}
}
