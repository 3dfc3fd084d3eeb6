package retail

import (
	"strings"
	"testing"
	"time"
)

func TestProcessOrder_Confirmed(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")
	s.Clock = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	got := s.ProcessOrder(ProductRef{ID: "101", Name: "Shampoo"}, 100)

	if got.Status != OrderConfirmed {
		t.Fatalf("status = %q, want confirmed", got.Status)
	}
	if got.ActualQuantity != 100 {
		t.Fatalf("actual quantity = %d, want 100", got.ActualQuantity)
	}
	if !strings.HasPrefix(got.OrderNumber, "PO-") || len(got.OrderNumber) != 11 {
		t.Fatalf("order number = %q, want PO- plus 8 chars", got.OrderNumber)
	}
	wantDelivery := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	if !got.EstimatedDelivery.Equal(wantDelivery) {
		t.Fatalf("estimated delivery = %v, want %v", got.EstimatedDelivery, wantDelivery)
	}
	if want := "1000"; got.TotalCost.String() != want {
		t.Fatalf("total cost = %s, want %s", got.TotalCost, want)
	}
}

func TestProcessOrder_BelowMinimumRejected(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")

	got := s.ProcessOrder(ProductRef{ID: "101", Name: "Shampoo"}, 5)

	if got.Status != OrderRejected {
		t.Fatalf("status = %q, want rejected", got.Status)
	}
	if got.ActualQuantity != 0 {
		t.Fatalf("actual quantity = %d, want 0", got.ActualQuantity)
	}
	if !got.TotalCost.IsZero() {
		t.Fatalf("total cost = %s, want 0", got.TotalCost)
	}
}

func TestProcessOrder_AboveMaximumCapped(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")

	got := s.ProcessOrder(ProductRef{ID: "101", Name: "Shampoo"}, 2000)

	if got.Status != OrderPartial {
		t.Fatalf("status = %q, want partial", got.Status)
	}
	if got.ActualQuantity != DefaultMaxOrderQty {
		t.Fatalf("actual quantity = %d, want %d", got.ActualQuantity, DefaultMaxOrderQty)
	}
	if want := "10000"; got.TotalCost.String() != want {
		t.Fatalf("total cost = %s, want %s", got.TotalCost, want)
	}
}

func TestProcessOrder_AppliesCurrentDiscount(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")
	p := ProductRef{ID: "101", Name: "Shampoo"}

	s.OfferDiscount(p, 20, 50)
	got := s.ProcessOrder(p, 100)

	if got.Discount != 20 {
		t.Fatalf("discount = %g, want 20", got.Discount)
	}
	if want := "800"; got.TotalCost.String() != want {
		t.Fatalf("total cost = %s, want %s", got.TotalCost, want)
	}
}

func TestCompareSuppliers_LowestPrice(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")

	got := s.CompareSuppliers(ProductRef{ID: "101", Name: "Shampoo"}, []SupplierQuote{
		{ID: "S1", Price: 10, LeadTimeDays: 5, ReliabilityPct: 90},
		{ID: "S2", Price: 8, LeadTimeDays: 2, ReliabilityPct: 88},
		{ID: "S3", Price: 12, LeadTimeDays: 7, ReliabilityPct: 99},
	})

	if got.BestSupplierID != "S2" {
		t.Fatalf("best supplier = %q, want S2", got.BestSupplierID)
	}
	if got.Reason != "lowest price ($8)" {
		t.Fatalf("reason = %q", got.Reason)
	}
}

func TestCompareSuppliers_FastestDelivery(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")

	// A wins on the weighted score but B holds the lowest price, so the
	// reason falls through to delivery speed.
	got := s.CompareSuppliers(ProductRef{ID: "101", Name: "Shampoo"}, []SupplierQuote{
		{ID: "A", Price: 10, LeadTimeDays: 2, ReliabilityPct: 80},
		{ID: "B", Price: 8, LeadTimeDays: 6, ReliabilityPct: 80},
	})

	if got.BestSupplierID != "A" {
		t.Fatalf("best supplier = %q, want A", got.BestSupplierID)
	}
	if got.Reason != "fastest delivery (2 days)" {
		t.Fatalf("reason = %q", got.Reason)
	}
}

func TestCompareSuppliers_ReliabilityFallback(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")

	got := s.CompareSuppliers(ProductRef{ID: "101", Name: "Shampoo"}, []SupplierQuote{
		{ID: "A", Price: 8, LeadTimeDays: 2, ReliabilityPct: 10},
		{ID: "B", Price: 10, LeadTimeDays: 3, ReliabilityPct: 99},
		{ID: "C", Price: 12, LeadTimeDays: 4, ReliabilityPct: 50},
	})

	if got.BestSupplierID != "B" {
		t.Fatalf("best supplier = %q, want B", got.BestSupplierID)
	}
	if got.Reason != "highest reliability (99%)" {
		t.Fatalf("reason = %q", got.Reason)
	}
}

func TestCompareSuppliers_Empty(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")

	got := s.CompareSuppliers(ProductRef{ID: "101", Name: "Shampoo"}, nil)
	if got.BestSupplierID != "" || got.Reason != "" {
		t.Fatalf("empty quotes must yield zero choice, got %+v", got)
	}
}

func TestUpdateDeliveryStatus(t *testing.T) {
	s := NewSupplierAgent("Supplier-XYZ")

	s.UpdateDeliveryStatus("PO-abc12345", DeliveryShipped, time.Time{})
	if s.LastAction != "Order PO-abc12345 has been shipped" {
		t.Fatalf("last action = %q", s.LastAction)
	}

	eta := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.UpdateDeliveryStatus("PO-abc12345", DeliveryDelayed, eta)
	if s.LastAction != "Order PO-abc12345 is delayed. New estimated delivery: 2025-03-10" {
		t.Fatalf("last action = %q", s.LastAction)
	}
}
