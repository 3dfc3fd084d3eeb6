package retail

import (
	"fmt"
	"strings"
)

type StockLevel struct {
	Quantity int `json:"quantity"`
	Capacity int `json:"capacity"`
}

type StockReport struct {
	Available  int     `json:"available"`
	Capacity   int     `json:"capacity"`
	Percentage float64 `json:"percentage"`
}

type FulfillmentStatus string

const (
	FulfillmentComplete FulfillmentStatus = "complete"
	FulfillmentPartial  FulfillmentStatus = "partial"
	FulfillmentFailed   FulfillmentStatus = "failed"
)

type Fulfillment struct {
	Fulfilled int               `json:"fulfilled"`
	Remaining int               `json:"remaining"`
	Status    FulfillmentStatus `json:"status"`
}

// WarehouseAgent owns a per-product stock ledger. Capacity is informational
// only; ReceiveShipment can push quantity past it.
type WarehouseAgent struct {
	ActivityLog
	WarehouseID         string
	RestockThresholdPct float64
	inventory           map[string]StockLevel
}

func NewWarehouseAgent(warehouseID string) *WarehouseAgent {
	return &WarehouseAgent{
		ActivityLog:         NewActivityLog(fmt.Sprintf("Warehouse Agent (%s)", warehouseID)),
		WarehouseID:         warehouseID,
		RestockThresholdPct: WarehouseRestockThresholdPct,
		inventory:           map[string]StockLevel{},
	}
}

// SetStock seeds or replaces a ledger entry. A non-positive capacity falls
// back to the default.
func (w *WarehouseAgent) SetStock(productID string, quantity, capacity int) {
	if capacity <= 0 {
		capacity = DefaultWarehouseCapacity
	}
	w.inventory[productID] = StockLevel{Quantity: quantity, Capacity: capacity}
}

func (w *WarehouseAgent) stockFor(productID string) StockLevel {
	if level, ok := w.inventory[productID]; ok {
		return level
	}
	return StockLevel{Quantity: 0, Capacity: DefaultWarehouseCapacity}
}

func (w *WarehouseAgent) CheckStock(productID, productName string) StockReport {
	level := w.stockFor(productID)
	percentage := float64(level.Quantity) / float64(level.Capacity) * 100

	w.Performf("Checked warehouse stock for %s (ID: %s): %d units available (%.1f%% of capacity)",
		productName, productID, level.Quantity, percentage)

	return StockReport{Available: level.Quantity, Capacity: level.Capacity, Percentage: percentage}
}

// FulfillStoreRequest ships as much of the requested quantity as the ledger
// allows, decrements stock by the shipped amount, and always messages the
// requesting store with the outcome.
func (w *WarehouseAgent) FulfillStoreRequest(store *StoreAgent, p ProductRef, requested int) Fulfillment {
	level := w.stockFor(p.ID)
	available := level.Quantity

	var fulfilled int
	var status FulfillmentStatus

	switch {
	case available >= requested:
		fulfilled = requested
		level.Quantity -= requested
		status = FulfillmentComplete
		w.Performf("Fulfilled complete request from %s for %s (ID: %s): %d units",
			store.StoreID, p.Name, p.ID, fulfilled)
	case available > 0:
		fulfilled = available
		level.Quantity = 0
		status = FulfillmentPartial
		w.Performf("Partially fulfilled request from %s for %s (ID: %s): %d/%d units",
			store.StoreID, p.Name, p.ID, fulfilled, requested)
	default:
		status = FulfillmentFailed
		w.Performf("Failed to fulfill request from %s for %s (ID: %s): 0/%d units (out of stock)",
			store.StoreID, p.Name, p.ID, requested)
	}

	w.inventory[p.ID] = level

	w.Send(&store.ActivityLog, fmt.Sprintf("FULFILLMENT %s: Sending %d units of %s (ID: %s) to store %s",
		strings.ToUpper(string(status)), fulfilled, p.Name, p.ID, store.StoreID))

	return Fulfillment{Fulfilled: fulfilled, Remaining: requested - fulfilled, Status: status}
}

func (w *WarehouseAgent) RequestFromSupplier(supplier *SupplierAgent, p ProductRef, quantity int) {
	w.Performf("Requesting %d units of %s (ID: %s) from supplier", quantity, p.Name, p.ID)
	w.Send(&supplier.ActivityLog,
		fmt.Sprintf("SUPPLIER ORDER: %d units of %s (ID: %s) for warehouse %s", quantity, p.Name, p.ID, w.WarehouseID))
}

func (w *WarehouseAgent) ReceiveShipment(p ProductRef, quantity int) {
	level := w.stockFor(p.ID)
	level.Quantity += quantity
	w.inventory[p.ID] = level

	w.Performf("Received shipment of %d units of %s (ID: %s). New stock level: %d units",
		quantity, p.Name, p.ID, level.Quantity)
}

// OptimizeDistribution allocates available stock across stores. When total
// demand fits, every store gets its exact demand. Otherwise each store gets
// floor(available * demand/totalDemand) and the ledger entry is zeroed; the
// flooring residual is not redistributed.
func (w *WarehouseAgent) OptimizeDistribution(p ProductRef, demandByStore map[string]int) map[string]int {
	level := w.stockFor(p.ID)
	available := level.Quantity

	if available <= 0 {
		w.Performf("Cannot distribute %s (ID: %s): No stock available", p.Name, p.ID)
		return map[string]int{}
	}

	totalDemand := 0
	for _, demand := range demandByStore {
		totalDemand += demand
	}

	distribution := make(map[string]int, len(demandByStore))
	if totalDemand <= available {
		for storeID, demand := range demandByStore {
			distribution[storeID] = demand
		}
		level.Quantity -= totalDemand
	} else {
		for storeID, demand := range demandByStore {
			distribution[storeID] = available * demand / totalDemand
		}
		level.Quantity = 0
	}
	w.inventory[p.ID] = level

	w.Performf("Optimized distribution of %s (ID: %s) across %d stores", p.Name, p.ID, len(distribution))
	return distribution
}
