package retail

import (
	"math"
	"sort"
)

type DemandForecast struct {
	Forecast   int   `json:"forecast"`
	Trend      Trend `json:"trend"`
	Confidence int   `json:"confidence"`
}

type ProductSalesHistory struct {
	ID        string
	Name      string
	PastSales []float64
}

type MonthlySales struct {
	Month int
	Sales float64
}

type SeasonalAnalysis struct {
	SeasonalFactors map[int]float64 `json:"seasonalFactors"`
	PeakMonth       int             `json:"peakMonth"`
	LowMonth        int             `json:"lowMonth"`
}

// ForecastAgent predicts demand from past sales with an ordinary
// least-squares fit against the observation index.
type ForecastAgent struct {
	ActivityLog
	HorizonDays     int
	UpdateFrequency string
	AccuracyPct     int
}

func NewForecastAgent() *ForecastAgent {
	return &ForecastAgent{
		ActivityLog:     NewActivityLog("Forecast Agent"),
		HorizonDays:     PredictionHorizonDays,
		UpdateFrequency: "hourly",
		AccuracyPct:     92,
	}
}

// PredictDemand returns the next-period forecast, the trend label, and a
// confidence score. Fewer than two data points falls back to the sole
// element (or zero) with a stable trend.
func (f *ForecastAgent) PredictDemand(productID, productName string, pastSales []float64) DemandForecast {
	n := len(pastSales)
	if n < 2 {
		f.Performf("Insufficient data to predict demand for %s (ID: %s)", productName, productID)
		first := 0.0
		if n == 1 {
			first = pastSales[0]
		}
		return DemandForecast{Forecast: int(math.Round(first)), Trend: TrendStable, Confidence: FallbackConfidence}
	}

	var sumX, sumY float64
	for i, y := range pastSales {
		sumX += float64(i)
		sumY += y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, den float64
	for i, y := range pastSales {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	slope := 0.0
	if den != 0 {
		slope = num / den
	}
	intercept := meanY - slope*meanX

	next := math.Round(slope*float64(n) + intercept)

	trend := TrendStable
	switch {
	case slope > TrendSlopeThreshold:
		trend = TrendIncreasing
	case slope < -TrendSlopeThreshold:
		trend = TrendDecreasing
	}

	// Confidence is R^2: explained sum of squares over total sum of
	// squares, so a perfectly linear series scores 99.
	var sst, ssr float64
	for i, y := range pastSales {
		sst += (y - meanY) * (y - meanY)
		fitted := slope*float64(i) + intercept
		ssr += (fitted - meanY) * (fitted - meanY)
	}
	confidence := MaxConfidence
	if sst != 0 {
		confidence = int(math.Min(math.Round(ssr/sst*100), MaxConfidence))
	}

	forecast := int(math.Max(next, 0))

	f.Performf("Predicted demand for %s (ID: %s): %d units with %d%% confidence",
		productName, productID, forecast, confidence)

	return DemandForecast{Forecast: forecast, Trend: trend, Confidence: confidence}
}

func (f *ForecastAgent) UpdateForecasts(products []ProductSalesHistory) map[string]DemandForecast {
	forecasts := make(map[string]DemandForecast, len(products))
	for _, p := range products {
		forecasts[p.ID] = f.PredictDemand(p.ID, p.Name, p.PastSales)
	}
	f.Performf("Updated demand predictions for %d products", len(products))
	return forecasts
}

// AnalyzeSeasonal derives per-month factors from monthly sales averages.
// Months are visited in ascending order and the first peak/low encountered
// wins ties.
func (f *ForecastAgent) AnalyzeSeasonal(productID, productName string, historical []MonthlySales) SeasonalAnalysis {
	grouped := map[int][]float64{}
	for _, d := range historical {
		grouped[d.Month] = append(grouped[d.Month], d.Sales)
	}

	months := make([]int, 0, len(grouped))
	for m := range grouped {
		months = append(months, m)
	}
	sort.Ints(months)

	averages := make(map[int]float64, len(months))
	var total float64
	for _, m := range months {
		var sum float64
		for _, s := range grouped[m] {
			sum += s
		}
		averages[m] = sum / float64(len(grouped[m]))
		total += averages[m]
	}
	globalAvg := total / float64(len(months))

	factors := make(map[int]float64, len(months))
	peakMonth, lowMonth := 1, 1
	peakFactor, lowFactor := 0.0, math.Inf(1)
	for _, m := range months {
		factor := averages[m] / globalAvg
		factors[m] = factor
		if factor > peakFactor {
			peakFactor = factor
			peakMonth = m
		}
		if factor < lowFactor {
			lowFactor = factor
			lowMonth = m
		}
	}

	f.Performf("Analyzed seasonal patterns for %s (ID: %s): Peak month is %d, Low month is %d",
		productName, productID, peakMonth, lowMonth)

	return SeasonalAnalysis{SeasonalFactors: factors, PeakMonth: peakMonth, LowMonth: lowMonth}
}
