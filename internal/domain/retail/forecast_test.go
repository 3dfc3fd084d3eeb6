package retail

import (
	"math"
	"testing"
)

func TestPredictDemand_LinearSeries(t *testing.T) {
	f := NewForecastAgent()

	got := f.PredictDemand("101", "Shampoo", []float64{40, 50, 60, 70})

	if got.Forecast != 80 {
		t.Fatalf("forecast = %d, want 80", got.Forecast)
	}
	if got.Trend != TrendIncreasing {
		t.Fatalf("trend = %q, want increasing", got.Trend)
	}
	// A perfectly linear series has explained variance equal to total
	// variance, so confidence caps at 99.
	if got.Confidence != 99 {
		t.Fatalf("confidence = %d, want 99", got.Confidence)
	}
}

func TestPredictDemand_ConstantSeries(t *testing.T) {
	f := NewForecastAgent()

	got := f.PredictDemand("p", "Widget", []float64{25, 25, 25, 25})

	if got.Forecast != 25 {
		t.Fatalf("forecast = %d, want 25", got.Forecast)
	}
	if got.Trend != TrendStable {
		t.Fatalf("trend = %q, want stable", got.Trend)
	}
	if got.Confidence != 99 {
		t.Fatalf("confidence = %d, want 99", got.Confidence)
	}
}

func TestPredictDemand_DecreasingSeries(t *testing.T) {
	f := NewForecastAgent()

	got := f.PredictDemand("102", "T-shirt", []float64{30, 25, 20, 15})

	if got.Forecast != 10 {
		t.Fatalf("forecast = %d, want 10", got.Forecast)
	}
	if got.Trend != TrendDecreasing {
		t.Fatalf("trend = %q, want decreasing", got.Trend)
	}
}

func TestPredictDemand_InsufficientData(t *testing.T) {
	f := NewForecastAgent()

	empty := f.PredictDemand("p", "Widget", nil)
	if empty.Forecast != 0 || empty.Trend != TrendStable || empty.Confidence != FallbackConfidence {
		t.Fatalf("empty series result = %+v", empty)
	}

	single := f.PredictDemand("p", "Widget", []float64{12})
	if single.Forecast != 12 || single.Trend != TrendStable || single.Confidence != FallbackConfidence {
		t.Fatalf("single element result = %+v", single)
	}
}

func TestPredictDemand_FlooredAtZero(t *testing.T) {
	f := NewForecastAgent()

	got := f.PredictDemand("p", "Widget", []float64{20, 10, 0})
	if got.Forecast != 0 {
		t.Fatalf("forecast = %d, want 0 (floored)", got.Forecast)
	}
	if got.Trend != TrendDecreasing {
		t.Fatalf("trend = %q, want decreasing", got.Trend)
	}
}

// The confidence formula sums squared deviations of the fitted values from
// the mean (explained variance over total variance); this pins the exact
// definition so a refactor to a residual-based formula fails loudly.
func TestPredictDemand_ConfidenceUsesExplainedVariance(t *testing.T) {
	f := NewForecastAgent()

	got := f.PredictDemand("p", "Widget", []float64{10, 13, 10, 13, 10, 13})

	// slope = 4.5/17.5, ssr = 4.5^2/17.5 ≈ 1.157, sst = 13.5,
	// round(100*ssr/sst) = 9.
	if got.Confidence != 9 {
		t.Fatalf("confidence = %d, want 9", got.Confidence)
	}
}

func TestUpdateForecasts(t *testing.T) {
	f := NewForecastAgent()

	got := f.UpdateForecasts([]ProductSalesHistory{
		{ID: "101", Name: "Shampoo", PastSales: []float64{40, 50, 60, 70}},
		{ID: "102", Name: "T-shirt", PastSales: []float64{30, 25, 20, 15}},
	})

	if len(got) != 2 {
		t.Fatalf("forecast count = %d, want 2", len(got))
	}
	if got["101"].Forecast != 80 || got["102"].Forecast != 10 {
		t.Fatalf("forecasts = %+v", got)
	}
}

func TestAnalyzeSeasonal(t *testing.T) {
	f := NewForecastAgent()

	got := f.AnalyzeSeasonal("103", "Cold Drinks", []MonthlySales{
		{Month: 1, Sales: 100},
		{Month: 1, Sales: 110},
		{Month: 2, Sales: 200},
		{Month: 3, Sales: 50},
	})

	if got.PeakMonth != 2 {
		t.Fatalf("peak month = %d, want 2", got.PeakMonth)
	}
	if got.LowMonth != 3 {
		t.Fatalf("low month = %d, want 3", got.LowMonth)
	}

	globalAvg := (105.0 + 200.0 + 50.0) / 3.0
	if math.Abs(got.SeasonalFactors[2]-200.0/globalAvg) > 1e-9 {
		t.Fatalf("month 2 factor = %v, want %v", got.SeasonalFactors[2], 200.0/globalAvg)
	}
}

func TestAnalyzeSeasonal_TieBreaksOnLowestMonth(t *testing.T) {
	f := NewForecastAgent()

	got := f.AnalyzeSeasonal("p", "Widget", []MonthlySales{
		{Month: 4, Sales: 100},
		{Month: 7, Sales: 100},
	})

	if got.PeakMonth != 4 || got.LowMonth != 4 {
		t.Fatalf("tie-break = (peak %d, low %d), want first month (4,4)", got.PeakMonth, got.LowMonth)
	}
}
