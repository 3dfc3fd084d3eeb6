package simulation

import (
	"math/rand"
	"time"

	"retailsim/internal/domain/retail"
)

// System is one wired set of agents. A fresh System is built per run so agent
// bookkeeping never leaks between requests.
type System struct {
	Forecast    *retail.ForecastAgent
	Store1      *retail.StoreAgent
	Store2      *retail.StoreAgent
	Warehouse   *retail.WarehouseAgent
	Supplier    *retail.SupplierAgent
	Pricing     *retail.PricingAgent
	Customer    *retail.CustomerAgent
	Coordinator *retail.CoordinatorAgent
}

func NewSystem(clock func() time.Time, r *rand.Rand, observe retail.ActionObserver) *System {
	sys := &System{
		Forecast:    retail.NewForecastAgent(),
		Store1:      retail.NewStoreAgent("Store-001"),
		Store2:      retail.NewStoreAgent("Store-002"),
		Warehouse:   retail.NewWarehouseAgent("Warehouse-Main"),
		Supplier:    retail.NewSupplierAgent("Supplier-XYZ"),
		Pricing:     retail.NewPricingAgent(r),
		Customer:    retail.NewCustomerAgent(),
		Coordinator: retail.NewCoordinatorAgent(),
	}
	for _, log := range sys.logs() {
		log.Clock = clock
		log.Observe = observe
	}
	return sys
}

func (s *System) logs() []*retail.ActivityLog {
	return []*retail.ActivityLog{
		&s.Forecast.ActivityLog,
		&s.Store1.ActivityLog,
		&s.Store2.ActivityLog,
		&s.Warehouse.ActivityLog,
		&s.Supplier.ActivityLog,
		&s.Pricing.ActivityLog,
		&s.Customer.ActivityLog,
		&s.Coordinator.ActivityLog,
	}
}
