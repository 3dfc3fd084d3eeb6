package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"retailsim/internal/app/ports"
	"retailsim/internal/domain/retail"
)

// UseCase runs simulation passes over the demo catalog. Every field is
// optional: a zero UseCase runs silently with wall-clock time and a
// time-seeded random source.
type UseCase struct {
	Metrics ports.SimulationMetrics
	History ports.ActivityHistoryRepository
	Logf    func(format string, args ...any)
	Now     func() time.Time
	NewRand func() *rand.Rand
}

type runRecorder struct {
	records []ports.ActivityRecord
}

func (u UseCase) newSystem() (*System, *runRecorder) {
	rec := &runRecorder{}
	observe := func(agent, action string, at time.Time) {
		rec.records = append(rec.records, ports.ActivityRecord{
			AgentName:  agent,
			Action:     action,
			OccurredAt: at,
		})
		if u.Logf != nil {
			u.Logf("%s: %s", agent, action)
		}
	}
	var r *rand.Rand
	if u.NewRand != nil {
		r = u.NewRand()
	}
	return NewSystem(u.Now, r, observe), rec
}

// RunStep builds a fresh system and runs one pass over the demo product.
func (u UseCase) RunStep(ctx context.Context) (StepResponse, error) {
	sys, rec := u.newSystem()
	result := stepOnce(sys)
	if u.Metrics != nil {
		u.Metrics.RecordStep()
	}
	if err := u.appendHistory(ctx, rec); err != nil {
		return StepResponse{}, err
	}
	return StepResponse{Result: result, Agents: agentStates(sys)}, nil
}

// Run maps the agent autonomy setting onto the coordinator and runs
// SimulationSpeed passes over one fresh system. Speeds below one still run a
// single pass so the response always carries data.
func (u UseCase) Run(ctx context.Context, settings Settings) (RunResponse, error) {
	sys, rec := u.newSystem()
	sys.Coordinator.DecisionAuthority = authorityFor(settings.AgentAutonomy)

	steps := settings.SimulationSpeed
	if steps < 1 {
		steps = 1
	}
	results := make([]StepResult, 0, steps)
	for i := 0; i < steps; i++ {
		results = append(results, stepOnce(sys))
		if u.Metrics != nil {
			u.Metrics.RecordStep()
		}
	}

	if err := u.appendHistory(ctx, rec); err != nil {
		return RunResponse{}, err
	}
	return RunResponse{Results: results, Settings: settings}, nil
}

// RunDetailed walks every agent through the demo catalog: forecast, inventory
// check, restock through the warehouse with a supplier order when the
// warehouse comes up short, two price adjustments, customer recommendations,
// and a system-wide coordinator pass.
func (u UseCase) RunDetailed(ctx context.Context) (DetailedResponse, error) {
	sys, rec := u.newSystem()
	resp := DetailedResponse{
		ForecastResults:    map[string]retail.DemandForecast{},
		StoreResults:       map[string]retail.InventoryCheck{},
		SupplierResults:    map[string]retail.PurchaseOrder{},
		PricingResults:     map[string]retail.PriceAdjustment{},
		CustomerResults:    map[string][]retail.Recommendation{},
		CoordinatorResults: map[string]retail.SystemPlan{},
	}

	shampoo := retail.ProductRef{ID: "101", Name: "Shampoo"}

	forecast := sys.Forecast.PredictDemand(shampoo.ID, shampoo.Name, []float64{40, 50, 60, 70})
	resp.ForecastResults["shampoo"] = forecast

	inventory := sys.Store1.CheckInventory(retail.StoreProduct{
		ID:              shampoo.ID,
		Name:            shampoo.Name,
		CurrentStock:    4,
		Capacity:        100,
		PredictedDemand: forecast.Forecast,
	})
	resp.StoreResults["shampoo"] = inventory

	if inventory.RestockNeeded {
		sys.Store1.RequestRestock(sys.Warehouse, shampoo, inventory.RestockAmount)

		stock := sys.Warehouse.CheckStock(shampoo.ID, shampoo.Name)
		resp.WarehouseResults.ShampooStock = &stock

		fulfillment := sys.Warehouse.FulfillStoreRequest(sys.Store1, shampoo, inventory.RestockAmount)
		resp.WarehouseResults.ShampooFulfillment = &fulfillment
		if u.Metrics != nil {
			u.Metrics.RecordFulfillment(fulfillment.Status)
		}

		if fulfillment.Status != retail.FulfillmentComplete {
			outstanding := inventory.RestockAmount - fulfillment.Fulfilled
			sys.Warehouse.RequestFromSupplier(sys.Supplier, shampoo, outstanding)

			order := sys.Supplier.ProcessOrder(shampoo, outstanding)
			resp.SupplierResults["shampooOrder"] = order
			if u.Metrics != nil {
				u.Metrics.RecordOrder(order.Status)
			}
		}
	}

	resp.PricingResults["shampoo"] = sys.Pricing.AdjustPrice(retail.PricedProduct{
		ID: "101", Name: "Shampoo",
		CurrentPrice: 5.99, CostPrice: 2.50,
		StockStatus: retail.StockCritical, SalesVelocity: retail.VelocityFast, DaysInStock: 5,
	})
	resp.PricingResults["tshirt"] = sys.Pricing.AdjustPrice(retail.PricedProduct{
		ID: "102", Name: "T-shirt",
		CurrentPrice: 19.99, CostPrice: 8.00,
		StockStatus: retail.StockExcess, SalesVelocity: retail.VelocitySlow, DaysInStock: 45,
	})

	resp.CustomerResults["recommendations"] = sys.Customer.RecommendProducts(
		[]string{"shampoo", "personal care"},
		[]string{"soap", "toothpaste"},
		[]retail.CatalogProduct{
			{ID: "101", Name: "Shampoo", Category: "Personal Care", Tags: []string{"hair", "bath"}, InStock: true, Popularity: 8},
			{ID: "104", Name: "Conditioner", Category: "Personal Care", Tags: []string{"hair", "bath"}, InStock: true, Popularity: 7},
			{ID: "105", Name: "Body Wash", Category: "Personal Care", Tags: []string{"bath", "soap"}, InStock: true, Popularity: 9},
		},
	)

	resp.CoordinatorResults["systemOptimization"] = sys.Coordinator.OptimizeSystemWide(
		map[string]retail.InventoryLevel{
			"101": {Stock: 4, Capacity: 100},
			"102": {Stock: 85, Capacity: 100},
			"103": {Stock: 50, Capacity: 200},
		},
		map[string]float64{"101": 70, "102": 15, "103": 200},
		map[string]float64{"101": 80, "102": 10, "103": 250},
		map[string]retail.SupplierInfo{
			"101": {LeadTimeDays: 2, ReliabilityPct: 95},
			"102": {LeadTimeDays: 3, ReliabilityPct: 90},
			"103": {LeadTimeDays: 1, ReliabilityPct: 98},
		},
	)

	if u.Metrics != nil {
		u.Metrics.RecordStep()
	}
	if err := u.appendHistory(ctx, rec); err != nil {
		return DetailedResponse{}, err
	}
	return resp, nil
}

// authorityFor maps the dashboard autonomy setting onto the coordinator's
// decision authority. Unknown values grant full autonomy.
func authorityFor(autonomy string) retail.DecisionAuthority {
	switch autonomy {
	case "low":
		return retail.AuthorityApproval
	case "medium":
		return retail.AuthorityAdvisory
	default:
		return retail.AuthorityFull
	}
}

// stepOnce is one simulation pass over the demo product: forecast, inventory
// check, conditional restock request, price adjustment.
func stepOnce(sys *System) StepResult {
	const productID, productName = "101", "Shampoo"

	forecast := sys.Forecast.PredictDemand(productID, productName, []float64{40, 50, 60, 70})

	inventory := sys.Store1.CheckInventory(retail.StoreProduct{
		ID:              productID,
		Name:            productName,
		CurrentStock:    4,
		Capacity:        100,
		PredictedDemand: forecast.Forecast,
	})

	if inventory.RestockNeeded {
		sys.Store1.RequestRestock(sys.Warehouse,
			retail.ProductRef{ID: productID, Name: productName}, inventory.RestockAmount)
	}

	price := sys.Pricing.AdjustPrice(retail.PricedProduct{
		ID: productID, Name: productName,
		CurrentPrice: 5.99, CostPrice: 2.50,
		StockStatus: inventory.Status, SalesVelocity: retail.VelocityFast, DaysInStock: 5,
	})

	return StepResult{Forecast: forecast, InventoryStatus: inventory, PriceAdjustment: price}
}

func agentStates(sys *System) map[string]AgentState {
	states := map[string]AgentState{}
	for key, log := range map[string]*retail.ActivityLog{
		"forecastAgent":    &sys.Forecast.ActivityLog,
		"storeAgent1":      &sys.Store1.ActivityLog,
		"warehouseAgent":   &sys.Warehouse.ActivityLog,
		"supplierAgent":    &sys.Supplier.ActivityLog,
		"pricingAgent":     &sys.Pricing.ActivityLog,
		"coordinatorAgent": &sys.Coordinator.ActivityLog,
	} {
		states[key] = AgentState{
			Name:           log.Name,
			Status:         log.Status,
			LastAction:     log.LastAction,
			LastActionTime: log.LastActionTime,
		}
	}
	return states
}

func (u UseCase) appendHistory(ctx context.Context, rec *runRecorder) error {
	if u.History == nil || len(rec.records) == 0 {
		return nil
	}
	if err := u.History.Append(ctx, rec.records); err != nil {
		return fmt.Errorf("append activity history: %w", err)
	}
	return nil
}
