package market

import "testing"

func TestGetPricesKnownCrop(t *testing.T) {
	p := GetPrices("rice")
	if p.Current != 55 || p.Trend != "rising" {
		t.Errorf("Unexpected rice prices: %+v", p)
	}
}

func TestGetPricesCaseInsensitive(t *testing.T) {
	if GetPrices("Tomato") != GetPrices("tomato") {
		t.Error("Expected lookup to ignore case")
	}
}

func TestGetPricesUnknownCropFallsBack(t *testing.T) {
	p := GetPrices("unknownfruit")
	want := Prices{Current: 30, Weekly: 28, Monthly: 32, Trend: "stable"}
	if p != want {
		t.Errorf("Expected %+v, got %+v", want, p)
	}
}
