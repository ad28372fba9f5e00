package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"growthbundles/internal/domain/entities"
)

func paidOrder() entities.Order {
	return entities.Order{
		BundleID:   "b-789",
		BundleName: "Full Funnel",
		Selection: map[string]string{
			"SEO":      "Standard",
			"Meta Ads": "Base",
		},
		TermMonths:              12,
		FinalMonthly:            1648.626,
		BundleDiscountPct:       1,
		SubscriptionDiscountPct: 5,
		Customer: entities.CustomerInfo{
			Name:  "Alex Kim",
			Email: "alex@example.com",
			Phone: "+1 555 0101",
		},
		Payment: entities.PaymentInfo{
			SessionID: "sess-1",
			Paid:      true,
			PaidAt:    time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
			Discount:  entities.PaymentDiscount{Code: "SPRING"},
		},
		Status: entities.OrderStatusPaid,
	}
}

func TestSheetExporterExportOrder(t *testing.T) {
	t.Run("posts one flattened row", func(t *testing.T) {
		var received orderRow
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected json content type, got %q", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Fatalf("decode row: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		t.Setenv("SHEET_EXPORT_URL", srv.URL)
		e := NewSheetExporter()
		if e == nil {
			t.Fatalf("expected exporter to be configured")
		}

		if err := e.ExportOrder(context.Background(), paidOrder()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if received.BundleID != "b-789" {
			t.Fatalf("expected bundle_id b-789, got %q", received.BundleID)
		}
		if received.Services != "Meta Ads: Base, SEO: Standard" {
			t.Fatalf("expected sorted services, got %q", received.Services)
		}
		if received.FinalMonthly != "1648.63" {
			t.Fatalf("expected rounded price, got %q", received.FinalMonthly)
		}
		if received.CustomerEmail != "alex@example.com" {
			t.Fatalf("expected customer email, got %q", received.CustomerEmail)
		}
		if received.PaidAt != "2026-04-01T12:00:00Z" {
			t.Fatalf("expected paid_at, got %q", received.PaidAt)
		}
	})

	t.Run("non 2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		t.Setenv("SHEET_EXPORT_URL", srv.URL)
		e := NewSheetExporter()

		if err := e.ExportOrder(context.Background(), paidOrder()); err == nil {
			t.Fatalf("expected error on status 502")
		}
	})

	t.Run("mock mode skips the network", func(t *testing.T) {
		t.Setenv("SHEET_EXPORT_MOCK", "true")
		e := NewSheetExporter()
		if e == nil {
			t.Fatalf("expected mock exporter")
		}
		if err := e.ExportOrder(context.Background(), paidOrder()); err != nil {
			t.Fatalf("expected no error in mock mode, got %v", err)
		}
	})

	t.Run("unconfigured returns nil", func(t *testing.T) {
		t.Setenv("SHEET_EXPORT_URL", "")
		t.Setenv("SHEET_EXPORT_MOCK", "")
		if e := NewSheetExporter(); e != nil {
			t.Fatalf("expected nil exporter when unconfigured")
		}
	})
}
