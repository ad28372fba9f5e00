// Package pricing computes the discounted monthly price for a bundle of
// marketing services.
//
// The calculation is pure: a fixed per-tier catalog, a bundle-size discount
// keyed by how many services were selected, and a subscription-length discount
// keyed by the commitment term, applied multiplicatively in that order.
// Subscription terms outside the supported set are rejected.
package pricing

import (
	"errors"
	"fmt"
	"sort"
)

// Tier is a fixed quality/price level offered for every service.
type Tier string

const (
	TierBase     Tier = "Base"
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
)

var (
	ErrInvalidTerm       = errors.New("invalid subscription term")
	ErrInvalidTier       = errors.New("invalid tier")
	ErrDuplicateService  = errors.New("duplicate service in selection")
	ErrPriceNotInCatalog = errors.New("price not in catalog")
)

// Selection maps a service name to the tier the customer picked.
// A service appears at most once; unselected services are simply absent.
type Selection map[string]Tier

// Catalog maps (service, tier) to the monthly unit price in dollars.
// Fixed at deploy time; never mutated at runtime.
type Catalog map[string]map[Tier]float64

// Terms is the only set of subscription lengths (in months) the storefront
// sells.
var Terms = []int{3, 6, 9, 12, 15, 18, 21, 24}

// bundleDiscountPct is the bundle-size discount step table. Counts above the
// last key clamp to its value.
var bundleDiscountPct = map[int]float64{
	2: 1,
	3: 2.5,
	4: 4,
	5: 5.5,
	6: 7,
	7: 8.5,
	8: 10,
}

const maxBundleDiscountPct = 10

// termDiscountPct is the subscription-length discount step table, keyed by
// months.
var termDiscountPct = map[int]float64{
	3:  0,
	6:  2,
	9:  3.5,
	12: 5,
	15: 6.5,
	18: 8,
	21: 9,
	24: 10,
}

// Quote is the result of a price computation.
type Quote struct {
	RawTotal                float64
	FinalMonthly            float64
	TotalSaved              float64
	BundleDiscountPct       float64
	SubscriptionDiscountPct float64
	ProductCount            int
}

// ValidTerm reports whether months is one of the sellable subscription terms.
func ValidTerm(months int) bool {
	_, ok := termDiscountPct[months]
	return ok
}

// ValidTier reports whether t is one of the three catalog tiers.
func ValidTier(t Tier) bool {
	switch t {
	case TierBase, TierStandard, TierPremium:
		return true
	}
	return false
}

// BundleDiscount returns the bundle-size discount percentage for a count of
// selected services. Zero or one service earns no discount; counts above the
// table clamp to the maximum.
func BundleDiscount(productCount int) float64 {
	if productCount <= 1 {
		return 0
	}
	if pct, ok := bundleDiscountPct[productCount]; ok {
		return pct
	}
	return maxBundleDiscountPct
}

// TermDiscount returns the subscription-length discount percentage for a
// validated term.
func TermDiscount(months int) (float64, error) {
	pct, ok := termDiscountPct[months]
	if !ok {
		return 0, fmt.Errorf("%w: %d months", ErrInvalidTerm, months)
	}
	return pct, nil
}

// ComputeFinalPrice prices a bundle.
//
// Order of operations matters and is part of the contract: the raw tier total
// is discounted by bundle size first, then by subscription length. The result
// keeps full float precision; callers round for display only.
func ComputeFinalPrice(sel Selection, termMonths int, catalog Catalog) (Quote, error) {
	if _, err := TermDiscount(termMonths); err != nil {
		return Quote{}, err
	}

	rawTotal := 0.0
	count := 0
	for _, service := range sortedServices(sel) {
		tier := sel[service]
		if !ValidTier(tier) {
			return Quote{}, fmt.Errorf("%w: %s=%q", ErrInvalidTier, service, tier)
		}
		tiers, ok := catalog[service]
		if !ok {
			return Quote{}, fmt.Errorf("%w: unknown service %q", ErrPriceNotInCatalog, service)
		}
		price, ok := tiers[tier]
		if !ok {
			return Quote{}, fmt.Errorf("%w: %s %s", ErrPriceNotInCatalog, service, tier)
		}
		rawTotal += price
		count++
	}

	bundlePct := BundleDiscount(count)
	termPct := 0.0
	if count > 0 {
		termPct = termDiscountPct[termMonths]
	}

	afterBundle := rawTotal * (1 - bundlePct/100)
	finalMonthly := afterBundle * (1 - termPct/100)

	return Quote{
		RawTotal:                rawTotal,
		FinalMonthly:            finalMonthly,
		TotalSaved:              rawTotal - finalMonthly,
		BundleDiscountPct:       bundlePct,
		SubscriptionDiscountPct: termPct,
		ProductCount:            count,
	}, nil
}

// sortedServices fixes the iteration order so error messages are stable.
func sortedServices(sel Selection) []string {
	names := make([]string, 0, len(sel))
	for name := range sel {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
