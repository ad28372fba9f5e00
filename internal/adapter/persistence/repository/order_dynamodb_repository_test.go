package repository

import (
	"testing"
	"time"

	"growthbundles/internal/domain/entities"
)

func TestOrderItemConversion(t *testing.T) {
	t.Run("round trip keeps pricing and lifecycle fields", func(t *testing.T) {
		createdAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
		signedAt := createdAt.Add(30 * time.Minute)
		paidAt := createdAt.Add(time.Hour)

		o := entities.Order{
			BundleID:   "b-123",
			BundleName: "Growth Starter",
			Selection: map[string]string{
				"Meta Ads":   "Base",
				"Google Ads": "Standard",
			},
			TermMonths:              6,
			RawTotal:                1750,
			FinalMonthly:            1698.27,
			BundleDiscountPct:       1,
			SubscriptionDiscountPct: 2,
			Customer: entities.CustomerInfo{
				Name:  "Dana Reyes",
				Email: "dana@example.com",
				Phone: "+1 555 0100",
			},
			Agreement: entities.Agreement{
				SignatureText:  "Dana Reyes",
				PolicyAccepted: true,
				SignedAt:       signedAt,
				DocumentRef:    "doc-42",
			},
			Payment: entities.PaymentInfo{
				SessionID: "sess-9",
				Paid:      true,
				PaidAt:    paidAt,
				Discount:  entities.PaymentDiscount{Code: "LAUNCH10", PctOff: 10},
			},
			Status:    entities.OrderStatusPaid,
			CreatedAt: createdAt,
			UpdatedAt: paidAt,
		}

		got := fromOrderItem(toOrderItem(o))

		if got.BundleID != o.BundleID || got.BundleName != o.BundleName {
			t.Fatalf("expected bundle identity to survive, got %q/%q", got.BundleID, got.BundleName)
		}
		if got.Selection["Google Ads"] != "Standard" {
			t.Fatalf("expected selection to survive, got %v", got.Selection)
		}
		if got.FinalMonthly != 1698.27 || got.RawTotal != 1750 {
			t.Fatalf("expected pricing snapshot to survive, got raw %v final %v", got.RawTotal, got.FinalMonthly)
		}
		if got.Customer != o.Customer {
			t.Fatalf("expected customer to survive, got %+v", got.Customer)
		}
		if got.Agreement.SignatureText != "Dana Reyes" || !got.Agreement.PolicyAccepted || got.Agreement.DocumentRef != "doc-42" {
			t.Fatalf("expected agreement to survive, got %+v", got.Agreement)
		}
		if !got.Agreement.SignedAt.Equal(signedAt) {
			t.Fatalf("expected signed_at %v, got %v", signedAt, got.Agreement.SignedAt)
		}
		if !got.Payment.Paid || got.Payment.SessionID != "sess-9" || !got.Payment.PaidAt.Equal(paidAt) {
			t.Fatalf("expected payment info to survive, got %+v", got.Payment)
		}
		if got.Payment.Discount.Code != "LAUNCH10" || got.Payment.Discount.PctOff != 10 {
			t.Fatalf("expected discount to survive, got %+v", got.Payment.Discount)
		}
		if got.Status != entities.OrderStatusPaid {
			t.Fatalf("expected status PAID, got %s", got.Status)
		}
		if !got.CreatedAt.Equal(createdAt) || !got.UpdatedAt.Equal(paidAt) {
			t.Fatalf("expected timestamps to survive, got %v / %v", got.CreatedAt, got.UpdatedAt)
		}
	})

	t.Run("fresh order omits optional sub items", func(t *testing.T) {
		o := entities.Order{
			BundleID:   "b-456",
			BundleName: "Bare",
			TermMonths: 3,
			Status:     entities.OrderStatusCreated,
			CreatedAt:  time.Now().UTC(),
			UpdatedAt:  time.Now().UTC(),
		}

		it := toOrderItem(o)
		if it.Customer != nil {
			t.Fatalf("expected no customer item, got %+v", it.Customer)
		}
		if it.Agreement != nil {
			t.Fatalf("expected no agreement item, got %+v", it.Agreement)
		}
		if it.PaymentDiscount != nil {
			t.Fatalf("expected no discount item, got %+v", it.PaymentDiscount)
		}
		if it.PaidAt != "" {
			t.Fatalf("expected empty paid_at, got %q", it.PaidAt)
		}

		got := fromOrderItem(it)
		if got.Customer != (entities.CustomerInfo{}) {
			t.Fatalf("expected zero customer, got %+v", got.Customer)
		}
		if got.Status != entities.OrderStatusCreated {
			t.Fatalf("expected status CREATED, got %s", got.Status)
		}
	})

	t.Run("zero discount fields are not stored", func(t *testing.T) {
		it := toDiscountItem(entities.PaymentDiscount{Code: "FLAT", AmountOff: 50})
		if it.PctOff != "" {
			t.Fatalf("expected empty pct_off, got %q", it.PctOff)
		}
		if it.AmountOff == "" {
			t.Fatalf("expected amount_off to be set")
		}
	})
}
