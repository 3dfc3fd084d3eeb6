package retail

import "fmt"

type StoreProduct struct {
	ID              string
	Name            string
	CurrentStock    int
	Capacity        int
	PredictedDemand int
}

type InventoryCheck struct {
	Status            StockStatus `json:"status"`
	RestockNeeded     bool        `json:"restockNeeded"`
	RestockAmount     int         `json:"restockAmount"`
	DaysUntilStockout int         `json:"daysUntilStockout"`
}

// StoreAgent classifies shelf stock against capacity and raises restock and
// pricing alerts.
type StoreAgent struct {
	ActivityLog
	StoreID              string
	LowThresholdPct      float64
	CriticalThresholdPct float64
}

func NewStoreAgent(storeID string) *StoreAgent {
	return &StoreAgent{
		ActivityLog:          NewActivityLog(fmt.Sprintf("Store Agent (%s)", storeID)),
		StoreID:              storeID,
		LowThresholdPct:      LowStockThresholdPct,
		CriticalThresholdPct: CriticalStockThresholdPct,
	}
}

// CheckInventory classifies the stock level and sizes a restock when the
// level is Critical or Low. PredictedDemand is treated as daily demand; a
// non-positive demand counts as one unit per day to keep the stockout
// estimate finite.
func (s *StoreAgent) CheckInventory(p StoreProduct) InventoryCheck {
	stockPct := float64(p.CurrentStock) / float64(p.Capacity) * 100

	dailyDemand := p.PredictedDemand
	if dailyDemand <= 0 {
		dailyDemand = 1
	}
	daysUntilStockout := p.CurrentStock / dailyDemand

	check := InventoryCheck{Status: StockNormal, DaysUntilStockout: daysUntilStockout}

	switch {
	case stockPct <= s.CriticalThresholdPct:
		check.Status = StockCritical
		check.RestockNeeded = true
		check.RestockAmount = p.PredictedDemand - p.CurrentStock
		s.Performf("CRITICAL: %s (ID: %s) has only %d units left (%.1f%%). Stockout in %d days!",
			p.Name, p.ID, p.CurrentStock, stockPct, daysUntilStockout)
	case stockPct <= s.LowThresholdPct:
		check.Status = StockLow
		check.RestockNeeded = true
		check.RestockAmount = p.PredictedDemand - p.CurrentStock
		s.Performf("WARNING: Stock low for %s (ID: %s): %d units (%.1f%%). Requesting %d more units.",
			p.Name, p.ID, p.CurrentStock, stockPct, max(check.RestockAmount, 0))
	case stockPct >= ExcessStockThresholdPct:
		check.Status = StockExcess
		s.Performf("Excess stock for %s (ID: %s): %d units (%.1f%%).", p.Name, p.ID, p.CurrentStock, stockPct)
	default:
		s.Performf("Stock normal for %s (ID: %s): %d units (%.1f%%).", p.Name, p.ID, p.CurrentStock, stockPct)
	}

	if check.RestockAmount < 0 {
		check.RestockAmount = 0
	}
	return check
}

func (s *StoreAgent) RequestRestock(warehouse *WarehouseAgent, p ProductRef, quantity int) {
	s.Performf("Requesting restock of %d units of %s (ID: %s)", quantity, p.Name, p.ID)
	s.Send(&warehouse.ActivityLog,
		fmt.Sprintf("RESTOCK REQUEST: %d units of %s (ID: %s) for store %s", quantity, p.Name, p.ID, s.StoreID))
}

func (s *StoreAgent) MonitorSales(p ProductRef, salesRate float64) {
	s.Performf("Monitoring sales rate for %s (ID: %s): %g units per day", p.Name, p.ID, salesRate)
}

// AlertPriceChange notifies the pricing agent about slow movers sitting on
// high stock and fast movers running low. Anything in between stays quiet.
func (s *StoreAgent) AlertPriceChange(pricing *PricingAgent, p ProductRef, salesRate float64, stockLevel int) {
	switch {
	case salesRate < SlowSalesRate && stockLevel > HighStockAlertLevel:
		s.Performf("Alerting pricing agent about slow-moving product: %s (ID: %s)", p.Name, p.ID)
		s.Send(&pricing.ActivityLog,
			fmt.Sprintf("SLOW SALES ALERT: %s (ID: %s) is selling slowly (%g units/day) with high stock (%d units)",
				p.Name, p.ID, salesRate, stockLevel))
	case salesRate > FastSalesRate && stockLevel < LowStockAlertLevel:
		s.Performf("Alerting pricing agent about fast-moving product with low stock: %s (ID: %s)", p.Name, p.ID)
		s.Send(&pricing.ActivityLog,
			fmt.Sprintf("HIGH DEMAND ALERT: %s (ID: %s) is selling quickly (%g units/day) with low stock (%d units)",
				p.Name, p.ID, salesRate, stockLevel))
	}
}
