package pricing

// DefaultCatalog returns the storefront's fixed service catalog.
//
// Prices are monthly dollars per (service, tier). The catalog is built fresh
// on each call so callers cannot mutate the shared table.
func DefaultCatalog() Catalog {
	return Catalog{
		"Meta Ads": {
			TierBase:     770,
			TierStandard: 980,
			TierPremium:  1250,
		},
		"Google Ads": {
			TierBase:     770,
			TierStandard: 980,
			TierPremium:  1250,
		},
		"SEO": {
			TierBase:     790,
			TierStandard: 1000,
			TierPremium:  1290,
		},
		"TikTok Ads": {
			TierBase:     700,
			TierStandard: 900,
			TierPremium:  1150,
		},
		"Email Marketing": {
			TierBase:     450,
			TierStandard: 620,
			TierPremium:  840,
		},
		"Content Marketing": {
			TierBase:     560,
			TierStandard: 760,
			TierPremium:  990,
		},
		"Social Media Management": {
			TierBase:     520,
			TierStandard: 690,
			TierPremium:  920,
		},
		"Web Analytics": {
			TierBase:     380,
			TierStandard: 540,
			TierPremium:  730,
		},
	}
}
