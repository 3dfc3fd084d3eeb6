package retail

import (
	"strings"
	"testing"
)

func TestCheckInventory_Critical(t *testing.T) {
	s := NewStoreAgent("Store-001")

	got := s.CheckInventory(StoreProduct{
		ID: "101", Name: "Shampoo", CurrentStock: 4, Capacity: 100, PredictedDemand: 80,
	})

	if got.Status != StockCritical {
		t.Fatalf("status = %q, want Critical", got.Status)
	}
	if !got.RestockNeeded {
		t.Fatalf("restock needed = false, want true")
	}
	if got.RestockAmount != 76 {
		t.Fatalf("restock amount = %d, want 76", got.RestockAmount)
	}
	if got.DaysUntilStockout != 0 {
		t.Fatalf("days until stockout = %d, want 0", got.DaysUntilStockout)
	}
	if !strings.Contains(s.LastAction, "CRITICAL") {
		t.Fatalf("last action = %q, want critical marker", s.LastAction)
	}
}

func TestCheckInventory_Excess(t *testing.T) {
	s := NewStoreAgent("Store-001")

	got := s.CheckInventory(StoreProduct{
		ID: "102", Name: "T-shirt", CurrentStock: 85, Capacity: 100, PredictedDemand: 10,
	})

	if got.Status != StockExcess {
		t.Fatalf("status = %q, want Excess", got.Status)
	}
	if got.RestockNeeded || got.RestockAmount != 0 {
		t.Fatalf("excess stock must not restock, got %+v", got)
	}
	if got.DaysUntilStockout != 8 {
		t.Fatalf("days until stockout = %d, want 8", got.DaysUntilStockout)
	}
}

func TestCheckInventory_Boundaries(t *testing.T) {
	s := NewStoreAgent("Store-001")

	cases := []struct {
		stock int
		want  StockStatus
	}{
		{10, StockCritical}, // exactly the critical threshold
		{11, StockLow},
		{20, StockLow}, // exactly the low threshold
		{21, StockNormal},
		{79, StockNormal},
		{80, StockExcess}, // exactly the excess threshold
	}
	for _, tc := range cases {
		got := s.CheckInventory(StoreProduct{ID: "p", Name: "Widget", CurrentStock: tc.stock, Capacity: 100, PredictedDemand: 5})
		if got.Status != tc.want {
			t.Fatalf("stock %d: status = %q, want %q", tc.stock, got.Status, tc.want)
		}
	}
}

func TestCheckInventory_ZeroDemandGuard(t *testing.T) {
	s := NewStoreAgent("Store-001")

	got := s.CheckInventory(StoreProduct{ID: "p", Name: "Widget", CurrentStock: 50, Capacity: 100, PredictedDemand: 0})
	if got.DaysUntilStockout != 50 {
		t.Fatalf("days until stockout = %d, want 50 (one unit per day fallback)", got.DaysUntilStockout)
	}
}

func TestCheckInventory_RestockAmountNeverNegative(t *testing.T) {
	s := NewStoreAgent("Store-001")

	// Low by percentage but stock already exceeds predicted demand.
	got := s.CheckInventory(StoreProduct{ID: "p", Name: "Widget", CurrentStock: 15, Capacity: 100, PredictedDemand: 5})
	if got.Status != StockLow {
		t.Fatalf("status = %q, want Low", got.Status)
	}
	if got.RestockAmount != 0 {
		t.Fatalf("restock amount = %d, want 0", got.RestockAmount)
	}
}

func TestRequestRestock_MessagesWarehouse(t *testing.T) {
	s := NewStoreAgent("Store-001")
	w := NewWarehouseAgent("Warehouse-Main")

	s.RequestRestock(w, ProductRef{ID: "101", Name: "Shampoo"}, 76)

	if w.LastAction != "Received message from Store Agent (Store-001)" {
		t.Fatalf("warehouse last action = %q", w.LastAction)
	}
	if !strings.Contains(s.LastAction, "Requesting restock of 76 units") {
		t.Fatalf("store last action = %q", s.LastAction)
	}
}

func TestAlertPriceChange(t *testing.T) {
	p := ProductRef{ID: "102", Name: "T-shirt"}

	t.Run("slow sales with high stock alerts", func(t *testing.T) {
		s := NewStoreAgent("Store-001")
		pa := NewPricingAgent(nil)
		s.AlertPriceChange(pa, p, 3, 60)
		if pa.LastAction != "Received message from Store Agent (Store-001)" {
			t.Fatalf("pricing agent last action = %q", pa.LastAction)
		}
	})

	t.Run("fast sales with low stock alerts", func(t *testing.T) {
		s := NewStoreAgent("Store-001")
		pa := NewPricingAgent(nil)
		s.AlertPriceChange(pa, p, 25, 20)
		if pa.LastAction != "Received message from Store Agent (Store-001)" {
			t.Fatalf("pricing agent last action = %q", pa.LastAction)
		}
	})

	t.Run("mid-range rates stay quiet", func(t *testing.T) {
		s := NewStoreAgent("Store-001")
		pa := NewPricingAgent(nil)
		s.AlertPriceChange(pa, p, 10, 40)
		if pa.LastAction != "Initialized" {
			t.Fatalf("pricing agent last action = %q, want untouched", pa.LastAction)
		}
	})
}
