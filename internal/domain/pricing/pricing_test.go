package pricing

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeFinalPrice_TwoServiceBundle(t *testing.T) {
	sel := Selection{
		"Meta Ads": TierBase,
		"SEO":      TierBase,
	}

	q, err := ComputeFinalPrice(sel, 3, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ProductCount != 2 {
		t.Fatalf("expected product count 2, got %d", q.ProductCount)
	}
	if !almostEqual(q.RawTotal, 1560) {
		t.Fatalf("expected raw total 1560, got %v", q.RawTotal)
	}
	if q.BundleDiscountPct != 1 || q.SubscriptionDiscountPct != 0 {
		t.Fatalf("unexpected discounts: bundle=%v term=%v", q.BundleDiscountPct, q.SubscriptionDiscountPct)
	}
	if !almostEqual(q.FinalMonthly, 1544.40) {
		t.Fatalf("expected final monthly 1544.40, got %v", q.FinalMonthly)
	}
	if !almostEqual(q.TotalSaved, 1560-1544.40) {
		t.Fatalf("expected total saved %v, got %v", 1560-1544.40, q.TotalSaved)
	}
}

func TestComputeFinalPrice_ThreeServiceBundleWithTermDiscount(t *testing.T) {
	sel := Selection{
		"Meta Ads":   TierStandard,
		"Google Ads": TierStandard,
		"SEO":        TierStandard,
	}

	q, err := ComputeFinalPrice(sel, 6, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(q.RawTotal, 2960) {
		t.Fatalf("expected raw total 2960, got %v", q.RawTotal)
	}
	if q.BundleDiscountPct != 2.5 || q.SubscriptionDiscountPct != 2 {
		t.Fatalf("unexpected discounts: bundle=%v term=%v", q.BundleDiscountPct, q.SubscriptionDiscountPct)
	}
	// 2960 * 0.975 = 2886.00, then * 0.98 = 2828.28.
	if !almostEqual(q.FinalMonthly, 2828.28) {
		t.Fatalf("expected final monthly 2828.28, got %v", q.FinalMonthly)
	}
}

func TestComputeFinalPrice_EmptySelection(t *testing.T) {
	for _, term := range Terms {
		q, err := ComputeFinalPrice(Selection{}, term, DefaultCatalog())
		if err != nil {
			t.Fatalf("term %d: unexpected error: %v", term, err)
		}
		if q.ProductCount != 0 || q.FinalMonthly != 0 || q.TotalSaved != 0 {
			t.Fatalf("term %d: expected zero quote, got %+v", term, q)
		}
		if q.BundleDiscountPct != 0 || q.SubscriptionDiscountPct != 0 {
			t.Fatalf("term %d: expected no discounts on empty selection, got %+v", term, q)
		}
	}
}

func TestComputeFinalPrice_SingleServiceNoBundleDiscount(t *testing.T) {
	for _, term := range Terms {
		q, err := ComputeFinalPrice(Selection{"SEO": TierPremium}, term, DefaultCatalog())
		if err != nil {
			t.Fatalf("term %d: unexpected error: %v", term, err)
		}
		if q.BundleDiscountPct != 0 {
			t.Fatalf("term %d: expected no bundle discount for single service, got %v", term, q.BundleDiscountPct)
		}
	}
}

func TestComputeFinalPrice_InvalidTerm(t *testing.T) {
	for _, term := range []int{0, 1, 2, 4, 5, 7, 10, 13, 25, 36, -3} {
		_, err := ComputeFinalPrice(Selection{"SEO": TierBase}, term, DefaultCatalog())
		if !errors.Is(err, ErrInvalidTerm) {
			t.Fatalf("term %d: expected ErrInvalidTerm, got %v", term, err)
		}
	}
}

func TestComputeFinalPrice_InvalidTier(t *testing.T) {
	_, err := ComputeFinalPrice(Selection{"SEO": Tier("Deluxe")}, 3, DefaultCatalog())
	if !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
}

func TestComputeFinalPrice_MissingCatalogEntry(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		_, err := ComputeFinalPrice(Selection{"Skywriting": TierBase}, 3, DefaultCatalog())
		if !errors.Is(err, ErrPriceNotInCatalog) {
			t.Fatalf("expected ErrPriceNotInCatalog, got %v", err)
		}
	})

	t.Run("missing tier price", func(t *testing.T) {
		catalog := Catalog{"SEO": {TierBase: 790}}
		_, err := ComputeFinalPrice(Selection{"SEO": TierPremium}, 3, catalog)
		if !errors.Is(err, ErrPriceNotInCatalog) {
			t.Fatalf("expected ErrPriceNotInCatalog, got %v", err)
		}
	})
}

func TestBundleDiscount_Table(t *testing.T) {
	cases := map[int]float64{
		0: 0, 1: 0, 2: 1, 3: 2.5, 4: 4, 5: 5.5, 6: 7, 7: 8.5, 8: 10,
		9: 10, 12: 10, 100: 10,
	}
	for count, want := range cases {
		if got := BundleDiscount(count); got != want {
			t.Fatalf("count %d: expected %v, got %v", count, want, got)
		}
	}
}

func TestBundleDiscount_Monotonic(t *testing.T) {
	prev := BundleDiscount(0)
	for count := 1; count <= 12; count++ {
		got := BundleDiscount(count)
		if got < prev {
			t.Fatalf("discount decreased at count %d: %v < %v", count, got, prev)
		}
		prev = got
	}
}

func TestTermDiscount_Table(t *testing.T) {
	cases := map[int]float64{
		3: 0, 6: 2, 9: 3.5, 12: 5, 15: 6.5, 18: 8, 21: 9, 24: 10,
	}
	for term, want := range cases {
		got, err := TermDiscount(term)
		if err != nil {
			t.Fatalf("term %d: unexpected error: %v", term, err)
		}
		if got != want {
			t.Fatalf("term %d: expected %v, got %v", term, want, got)
		}
	}

	if _, err := TermDiscount(11); !errors.Is(err, ErrInvalidTerm) {
		t.Fatalf("expected ErrInvalidTerm for 11 months, got %v", err)
	}
}

func TestComputeFinalPrice_Deterministic(t *testing.T) {
	sel := Selection{
		"Meta Ads":        TierPremium,
		"SEO":             TierStandard,
		"Email Marketing": TierBase,
		"Web Analytics":   TierBase,
	}

	first, err := ComputeFinalPrice(sel, 12, DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ComputeFinalPrice(sel, 12, DefaultCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("expected identical quote, got %+v vs %+v", again, first)
		}
	}
}

func TestDefaultCatalog_CompleteAndPositive(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) < 8 {
		t.Fatalf("expected at least 8 services, got %d", len(catalog))
	}
	for service, tiers := range catalog {
		for _, tier := range []Tier{TierBase, TierStandard, TierPremium} {
			price, ok := tiers[tier]
			if !ok {
				t.Fatalf("%s missing %s price", service, tier)
			}
			if price <= 0 {
				t.Fatalf("%s %s price must be positive, got %v", service, tier, price)
			}
		}
		if tiers[TierBase] >= tiers[TierStandard] || tiers[TierStandard] >= tiers[TierPremium] {
			t.Fatalf("%s tiers must be strictly increasing: %+v", service, tiers)
		}
	}
}
