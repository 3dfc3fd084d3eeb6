package retail

// Stock classification thresholds, in percent of capacity.
const (
	CriticalStockThresholdPct = 10.0
	LowStockThresholdPct      = 20.0
	ExcessStockThresholdPct   = 80.0
)

// Forecasting.
const (
	TrendSlopeThreshold   = 0.5
	FallbackConfidence    = 50
	MaxConfidence         = 99
	PredictionHorizonDays = 14
)

// Warehouse defaults.
const (
	DefaultWarehouseCapacity     = 100
	WarehouseRestockThresholdPct = 30.0
)

// Supplier catalog defaults and comparison weights.
const (
	DefaultCatalogPrice       = 10.0
	DefaultMinOrderQty        = 10
	DefaultMaxOrderQty        = 1000
	DefaultLeadTimeDays       = 3
	DefaultReliabilityPct     = 95.0
	SupplierPriceWeight       = 0.4
	SupplierLeadTimeWeight    = 0.3
	SupplierReliabilityWeight = 0.3
)

// Pricing rules.
const (
	MaxPriceAdjustmentPct   = 20.0
	MinMarginPct            = 15.0
	StalenessDaysThreshold  = 30
	ClearanceDiscountCapPct = 30.0
	ClearanceMarginShare    = 0.7
	DiscountCapPct          = 15.0
	DiscountMarginShare     = 0.5
)

// Store price-alert triggers (units per day, units on hand).
const (
	SlowSalesRate       = 5.0
	FastSalesRate       = 20.0
	HighStockAlertLevel = 50
	LowStockAlertLevel  = 30
)

// Customer recommendation scoring.
const (
	PreferenceMatchPoints = 20
	HistoryMatchPoints    = 15
	PopularityPoints      = 5
	PopularItemThreshold  = 7
	MaxRecommendations    = 5
	BrowseInterestSeconds = 60
)

// Coordinator optimization ratios.
const (
	ScarceStockRatio       = 0.2
	SurplusStockRatio      = 0.8
	OverstockPricingRatio  = 0.7
	ScarcityPricingRatio   = 0.3
	SlowSalesForecastShare = 0.7
	HotSalesForecastShare  = 1.2
	PriceDecreasePct       = 10.0
	PriceIncreasePct       = 5.0
	InventoryDrawdownShare = 0.3
)
