package retail

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

type PricedProduct struct {
	ID            string
	Name          string
	CurrentPrice  float64
	CostPrice     float64
	StockStatus   StockStatus
	SalesVelocity SalesVelocity
	DaysInStock   int
}

type PriceAdjustment struct {
	NewPrice          float64 `json:"newPrice"`
	AdjustmentPercent float64 `json:"adjustmentPercent"`
	Reason            string  `json:"reason"`
}

type BulkPriceChange struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	OldPrice          float64 `json:"oldPrice"`
	NewPrice          float64 `json:"newPrice"`
	AdjustmentPercent float64 `json:"adjustmentPercent"`
}

type PricePoint struct {
	Price float64
	Sales float64
}

type ElasticityReport struct {
	Elasticity   float64 `json:"elasticity"`
	OptimalPrice float64 `json:"optimalPrice"`
	IsElastic    bool    `json:"isElastic"`
}

type PromotionType string

const (
	PromotionClearance PromotionType = "clearance"
	PromotionDiscount  PromotionType = "discount"
	PromotionBundle    PromotionType = "bundle"
	PromotionNone      PromotionType = "none"
)

type PromotionCandidate struct {
	ID            string
	Name          string
	Category      string
	StockStatus   StockStatus
	SalesVelocity SalesVelocity
	MarginPct     float64
}

type PromotionAdvice struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	PromotionType   PromotionType `json:"promotionType"`
	DiscountPercent float64       `json:"discountPercent,omitempty"`
	Reason          string        `json:"reason"`
}

// PricingAgent applies rule-based price adjustments bounded by a minimum
// margin. Adjustment magnitudes are drawn from the injected random source so
// runs are reproducible under a fixed seed.
type PricingAgent struct {
	ActivityLog
	MaxAdjustmentPct float64
	MinMarginPct     float64
	Rand             *rand.Rand
}

func NewPricingAgent(r *rand.Rand) *PricingAgent {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PricingAgent{
		ActivityLog:      NewActivityLog("Pricing Agent"),
		MaxAdjustmentPct: MaxPriceAdjustmentPct,
		MinMarginPct:     MinMarginPct,
		Rand:             r,
	}
}

func roundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// AdjustPrice picks the first matching rule from the ordered table and
// applies a randomized adjustment within that rule's range. If the adjusted
// price would dip below the minimum margin, the price floors at
// costPrice/(1-minMargin/100) instead.
func (pa *PricingAgent) AdjustPrice(p PricedProduct) PriceAdjustment {
	currentMargin := (p.CurrentPrice - p.CostPrice) / p.CurrentPrice * 100

	var adjustment float64
	var reason string

	switch {
	case p.StockStatus == StockExcess && p.SalesVelocity == VelocitySlow:
		adjustment = -(pa.Rand.Float64()*(pa.MaxAdjustmentPct-5) + 5)
		reason = fmt.Sprintf("reduce excess inventory that's selling slowly (%d days in stock)", p.DaysInStock)
	case p.StockStatus == StockExcess:
		adjustment = -(pa.Rand.Float64()*(pa.MaxAdjustmentPct/2) + 2)
		reason = "reduce excess inventory"
	case p.StockStatus == StockCritical && p.SalesVelocity == VelocityFast:
		if currentMargin > pa.MinMarginPct+10 {
			adjustment = pa.Rand.Float64()*(pa.MaxAdjustmentPct/2) + 5
			reason = "high demand with limited stock"
		}
	case p.StockStatus == StockLow && p.SalesVelocity == VelocityFast:
		if currentMargin > pa.MinMarginPct+5 {
			adjustment = pa.Rand.Float64()*(pa.MaxAdjustmentPct/3) + 2
			reason = "increasing demand with decreasing stock"
		}
	case p.SalesVelocity == VelocitySlow && p.DaysInStock > StalenessDaysThreshold:
		adjustment = -(pa.Rand.Float64()*(pa.MaxAdjustmentPct/3) + 3)
		reason = fmt.Sprintf("item not selling (%d days in stock)", p.DaysInStock)
	}

	newPrice := p.CurrentPrice * (1 + adjustment/100)
	newMargin := (newPrice - p.CostPrice) / newPrice * 100

	if newMargin < pa.MinMarginPct {
		minPrice := p.CostPrice / (1 - pa.MinMarginPct/100)
		pa.Performf("Adjusted price of %s (ID: %s) to maintain minimum margin: $%.2f", p.Name, p.ID, minPrice)
		return PriceAdjustment{
			NewPrice:          roundMoney(minPrice),
			AdjustmentPercent: (minPrice - p.CurrentPrice) / p.CurrentPrice * 100,
			Reason:            fmt.Sprintf("maintain minimum profit margin of %g%%", pa.MinMarginPct),
		}
	}

	if adjustment != 0 {
		direction := "Decreased"
		if adjustment > 0 {
			direction = "Increased"
		}
		pa.Performf("%s price of %s (ID: %s) by %.1f%% to $%.2f to %s",
			direction, p.Name, p.ID, math.Abs(adjustment), newPrice, reason)
	} else {
		pa.Performf("Maintained current price of %s (ID: %s) at $%.2f", p.Name, p.ID, p.CurrentPrice)
		reason = "price is optimal"
	}

	return PriceAdjustment{
		NewPrice:          roundMoney(newPrice),
		AdjustmentPercent: adjustment,
		Reason:            reason,
	}
}

func (pa *PricingAgent) BulkAdjust(category string, products []PricedProduct) []BulkPriceChange {
	results := make([]BulkPriceChange, 0, len(products))
	for _, p := range products {
		adjusted := pa.AdjustPrice(p)
		results = append(results, BulkPriceChange{
			ID:                p.ID,
			Name:              p.Name,
			OldPrice:          p.CurrentPrice,
			NewPrice:          adjusted.NewPrice,
			AdjustmentPercent: adjusted.AdjustmentPercent,
		})
	}
	pa.Performf("Applied bulk price adjustments to %d products in %s category", len(results), category)
	return results
}

// AnalyzePriceElasticity averages pairwise |ΔsalesPct/ΔpricePct| over
// consecutive history points, skipping pairs with no price change or zero
// sales on either side. The optimal price is the one with the highest
// observed sales; the first occurrence wins ties.
func (pa *PricingAgent) AnalyzePriceElasticity(p ProductRef, history []PricePoint) ElasticityReport {
	if len(history) < 2 {
		pa.Performf("Insufficient data to analyze price elasticity for %s (ID: %s)", p.Name, p.ID)
		optimal := 0.0
		if len(history) == 1 {
			optimal = history[0].Price
		}
		return ElasticityReport{OptimalPrice: optimal}
	}

	var totalElasticity float64
	validPairs := 0
	for i := 1; i < len(history); i++ {
		prev, curr := history[i-1], history[i]
		if prev.Price == curr.Price || prev.Sales == 0 || curr.Sales == 0 {
			continue
		}
		priceChange := (curr.Price - prev.Price) / prev.Price
		salesChange := (curr.Sales - prev.Sales) / prev.Sales
		totalElasticity += math.Abs(salesChange / priceChange)
		validPairs++
	}

	elasticity := 0.0
	if validPairs > 0 {
		elasticity = totalElasticity / float64(validPairs)
	}

	optimalPrice := history[0].Price
	maxSales := history[0].Sales
	for _, point := range history[1:] {
		if point.Sales > maxSales {
			maxSales = point.Sales
			optimalPrice = point.Price
		}
	}

	pa.Performf("Analyzed price elasticity for %s (ID: %s): Elasticity = %.2f, Optimal price = $%.2f",
		p.Name, p.ID, elasticity, optimalPrice)

	return ElasticityReport{
		Elasticity:   elasticity,
		OptimalPrice: optimalPrice,
		IsElastic:    elasticity > 1,
	}
}

// RecommendPromotions maps stock status and sales velocity to a promotion
// type, capping discounts by a share of the product's margin.
func (pa *PricingAgent) RecommendPromotions(products []PromotionCandidate) []PromotionAdvice {
	recommendations := make([]PromotionAdvice, 0, len(products))

	for _, p := range products {
		advice := PromotionAdvice{ID: p.ID, Name: p.Name, PromotionType: PromotionNone}

		switch {
		case p.StockStatus == StockExcess && p.SalesVelocity == VelocitySlow:
			advice.PromotionType = PromotionClearance
			advice.DiscountPercent = math.Min(ClearanceDiscountCapPct, p.MarginPct*ClearanceMarginShare)
			advice.Reason = "Clear excess slow-moving inventory"
		case p.StockStatus == StockExcess:
			advice.PromotionType = PromotionDiscount
			advice.DiscountPercent = math.Min(DiscountCapPct, p.MarginPct*DiscountMarginShare)
			advice.Reason = "Reduce excess inventory"
		case p.StockStatus == StockNormal && p.SalesVelocity == VelocitySlow:
			advice.PromotionType = PromotionBundle
			advice.Reason = "Increase sales velocity through bundling"
		case p.StockStatus == StockCritical || p.StockStatus == StockLow:
			advice.Reason = "Maintain price due to limited stock"
		}

		recommendations = append(recommendations, advice)
	}

	pa.Performf("Generated promotion recommendations for %d products", len(products))
	return recommendations
}
