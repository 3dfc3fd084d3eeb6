package retail

// ProductRef identifies a product. Quantitative attributes (price, stock,
// demand) are caller-supplied per call; no agent owns a canonical product
// record.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StockStatus string

const (
	StockCritical StockStatus = "Critical"
	StockLow      StockStatus = "Low"
	StockNormal   StockStatus = "Normal"
	StockExcess   StockStatus = "Excess"
)

type SalesVelocity string

const (
	VelocityFast   SalesVelocity = "Fast"
	VelocityNormal SalesVelocity = "Normal"
	VelocitySlow   SalesVelocity = "Slow"
)

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)
