package ports

import "retailsim/internal/domain/retail"

type SimulationMetrics interface {
	RecordStep()
	RecordFulfillment(status retail.FulfillmentStatus)
	RecordOrder(status retail.OrderStatus)
}
