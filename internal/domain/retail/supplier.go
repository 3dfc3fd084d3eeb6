package retail

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogEntry struct {
	Price            float64 `json:"price"`
	MinOrderQuantity int     `json:"minOrderQuantity"`
	MaxOrderQuantity int     `json:"maxOrderQuantity"`
	CurrentDiscount  float64 `json:"currentDiscount"`
	LeadTimeDays     int     `json:"leadTime"`
}

type OrderStatus string

const (
	OrderConfirmed OrderStatus = "confirmed"
	OrderPartial   OrderStatus = "partial"
	OrderRejected  OrderStatus = "rejected"
)

type PurchaseOrder struct {
	OrderNumber       string          `json:"orderNumber"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	Status            OrderStatus     `json:"status"`
	ActualQuantity    int             `json:"actualQuantity"`
	Price             float64         `json:"price"`
	Discount          float64         `json:"discount"`
	TotalCost         decimal.Decimal `json:"totalCost"`
}

type SupplierQuote struct {
	ID             string
	Price          float64
	LeadTimeDays   int
	ReliabilityPct float64
}

type SupplierChoice struct {
	BestSupplierID string `json:"bestSupplierId"`
	Reason         string `json:"reason"`
}

type DeliveryStatus string

const (
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryShipped    DeliveryStatus = "shipped"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryDelayed    DeliveryStatus = "delayed"
)

// SupplierAgent processes purchase orders against a per-product catalog.
// Catalog entries are defaulted lazily when a product has never been quoted.
type SupplierAgent struct {
	ActivityLog
	SupplierID     string
	LeadTimeDays   int
	ReliabilityPct float64
	catalog        map[string]CatalogEntry
}

func NewSupplierAgent(supplierID string) *SupplierAgent {
	return &SupplierAgent{
		ActivityLog:    NewActivityLog(fmt.Sprintf("Supplier Agent (%s)", supplierID)),
		SupplierID:     supplierID,
		LeadTimeDays:   DefaultLeadTimeDays,
		ReliabilityPct: DefaultReliabilityPct,
		catalog:        map[string]CatalogEntry{},
	}
}

func (s *SupplierAgent) catalogEntry(productID string) CatalogEntry {
	if entry, ok := s.catalog[productID]; ok {
		return entry
	}
	return CatalogEntry{
		Price:            DefaultCatalogPrice,
		MinOrderQuantity: DefaultMinOrderQty,
		MaxOrderQuantity: DefaultMaxOrderQty,
		LeadTimeDays:     s.LeadTimeDays,
	}
}

// ProcessOrder validates the quantity against the catalog bounds: below the
// minimum the order is rejected outright, above the maximum it is capped and
// confirmed as partial. The total applies the current discount and rounds to
// cents.
func (s *SupplierAgent) ProcessOrder(p ProductRef, quantity int) PurchaseOrder {
	orderNumber := "PO-" + uuid.NewString()[:8]
	info := s.catalogEntry(p.ID)
	estimatedDelivery := s.now().AddDate(0, 0, info.LeadTimeDays)

	status := OrderConfirmed
	actual := quantity
	switch {
	case quantity < info.MinOrderQuantity:
		status = OrderRejected
		actual = 0
		s.Performf("Rejected order %s for %s (ID: %s): Quantity %d below minimum order quantity %d",
			orderNumber, p.Name, p.ID, quantity, info.MinOrderQuantity)
	case quantity > info.MaxOrderQuantity:
		status = OrderPartial
		actual = info.MaxOrderQuantity
		s.Performf("Partially confirmed order %s for %s (ID: %s): Reduced quantity from %d to maximum %d",
			orderNumber, p.Name, p.ID, quantity, actual)
	default:
		s.Performf("Confirmed order %s for %d units of %s (ID: %s). Estimated delivery: %s",
			orderNumber, quantity, p.Name, p.ID, estimatedDelivery.Format("2006-01-02"))
	}

	unitPrice := decimal.NewFromFloat(info.Price).
		Mul(decimal.NewFromFloat(1 - info.CurrentDiscount/100))
	totalCost := unitPrice.Mul(decimal.NewFromInt(int64(actual))).Round(2)

	return PurchaseOrder{
		OrderNumber:       orderNumber,
		EstimatedDelivery: estimatedDelivery,
		Status:            status,
		ActualQuantity:    actual,
		Price:             info.Price,
		Discount:          info.CurrentDiscount,
		TotalCost:         totalCost,
	}
}

func (s *SupplierAgent) OfferDiscount(p ProductRef, discountPct float64, minimumOrderQuantity int) {
	entry := s.catalogEntry(p.ID)
	entry.CurrentDiscount = discountPct
	s.catalog[p.ID] = entry

	s.Performf("Offering %g%% discount on %s (ID: %s) for orders of %d+ units",
		discountPct, p.Name, p.ID, minimumOrderQuantity)
}

// CompareSuppliers scores each quote with normalized price and lead time
// (lower raw value scores higher) and raw reliability, weighted 0.4/0.3/0.3.
// The reason string is cosmetic: it names the first of lowest price or
// fastest delivery the winner happens to match, else falls back to
// reliability.
func (s *SupplierAgent) CompareSuppliers(p ProductRef, quotes []SupplierQuote) SupplierChoice {
	if len(quotes) == 0 {
		return SupplierChoice{}
	}

	maxPrice, minPrice := quotes[0].Price, quotes[0].Price
	maxLead, minLead := quotes[0].LeadTimeDays, quotes[0].LeadTimeDays
	for _, q := range quotes[1:] {
		maxPrice = math.Max(maxPrice, q.Price)
		minPrice = math.Min(minPrice, q.Price)
		maxLead = max(maxLead, q.LeadTimeDays)
		minLead = min(minLead, q.LeadTimeDays)
	}

	best := quotes[0]
	bestScore := math.Inf(-1)
	for _, q := range quotes {
		priceScore := 100 - q.Price/maxPrice*100
		leadTimeScore := 100 - float64(q.LeadTimeDays)/float64(maxLead)*100
		score := priceScore*SupplierPriceWeight +
			leadTimeScore*SupplierLeadTimeWeight +
			q.ReliabilityPct*SupplierReliabilityWeight
		if score > bestScore {
			best = q
			bestScore = score
		}
	}

	var reason string
	switch {
	case best.Price == minPrice:
		reason = fmt.Sprintf("lowest price ($%g)", best.Price)
	case best.LeadTimeDays == minLead:
		reason = fmt.Sprintf("fastest delivery (%d days)", best.LeadTimeDays)
	default:
		reason = fmt.Sprintf("highest reliability (%g%%)", best.ReliabilityPct)
	}

	s.Performf("Selected supplier %s for %s (ID: %s) due to %s", best.ID, p.Name, p.ID, reason)
	return SupplierChoice{BestSupplierID: best.ID, Reason: reason}
}

func (s *SupplierAgent) UpdateDeliveryStatus(orderNumber string, status DeliveryStatus, estimatedDelivery time.Time) {
	switch status {
	case DeliveryProcessing:
		s.Performf("Order %s is being processed", orderNumber)
	case DeliveryShipped:
		s.Performf("Order %s has been shipped", orderNumber)
	case DeliveryDelivered:
		s.Performf("Order %s has been delivered", orderNumber)
	case DeliveryDelayed:
		s.Performf("Order %s is delayed. New estimated delivery: %s",
			orderNumber, estimatedDelivery.Format("2006-01-02"))
	}
}
