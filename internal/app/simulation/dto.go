package simulation

import (
	"time"

	"retailsim/internal/domain/retail"
)

// Settings mirrors the dashboard's simulation controls. Fields other than
// SimulationSpeed and AgentAutonomy are accepted but have no effect yet.
type Settings struct {
	SimulationSpeed         int    `json:"simulationSpeed"`
	EnableSeasonalDemand    bool   `json:"enableSeasonalDemand"`
	EnableSupplyDisruptions bool   `json:"enableSupplyDisruptions"`
	EnableCompetitorPrices  bool   `json:"enableCompetitorPrices"`
	AgentAutonomy           string `json:"agentAutonomy"`
}

func DefaultSettings() Settings {
	return Settings{
		SimulationSpeed:         1,
		EnableSeasonalDemand:    true,
		EnableSupplyDisruptions: false,
		EnableCompetitorPrices:  true,
		AgentAutonomy:           "full",
	}
}

type StepResult struct {
	Forecast        retail.DemandForecast  `json:"forecast"`
	InventoryStatus retail.InventoryCheck  `json:"inventoryStatus"`
	PriceAdjustment retail.PriceAdjustment `json:"priceAdjustment"`
}

type AgentState struct {
	Name           string             `json:"name"`
	Status         retail.AgentStatus `json:"status"`
	LastAction     string             `json:"lastAction"`
	LastActionTime time.Time          `json:"lastActionTime"`
}

type StepResponse struct {
	Result StepResult
	Agents map[string]AgentState
}

type RunResponse struct {
	Results  []StepResult
	Settings Settings
}

// WarehouseReport holds the warehouse portion of a detailed run. Both fields
// are nil when the store needed no restock.
type WarehouseReport struct {
	ShampooStock       *retail.StockReport `json:"shampooStock,omitempty"`
	ShampooFulfillment *retail.Fulfillment `json:"shampooFulfillment,omitempty"`
}

// DetailedResponse is the full multi-agent walkthrough over the demo catalog.
type DetailedResponse struct {
	ForecastResults    map[string]retail.DemandForecast   `json:"forecastResults"`
	StoreResults       map[string]retail.InventoryCheck   `json:"storeResults"`
	WarehouseResults   WarehouseReport                    `json:"warehouseResults"`
	SupplierResults    map[string]retail.PurchaseOrder    `json:"supplierResults"`
	PricingResults     map[string]retail.PriceAdjustment  `json:"pricingResults"`
	CustomerResults    map[string][]retail.Recommendation `json:"customerResults"`
	CoordinatorResults map[string]retail.SystemPlan       `json:"coordinatorResults"`
}
