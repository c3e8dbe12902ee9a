package usecase

import "github.com/adityaldip/cargo-pricing/internal/domain"

// MatchSectorRates finds the active sector rates covering each leg and
// folds them into a priced breakdown.
//
// Legs are evaluated in the fixed order [beforeBT, inbound, outbound,
// afterBT]; matches are directional (no reverse pairs) and deduplicated by
// rate id, first occurrence winning, so a rate covered by two legs is
// counted once. The total is the sum over the deduplicated set. Re-running
// with unchanged inputs yields an identical breakdown.
//
// The route string uses the record's overall canonical origin/destination,
// not any per-leg pair. A record with no matching legs yields an empty rate
// list and a zero total; that is a valid result, not an error.
func MatchSectorRates(origin, destination string, segments domain.RouteSegments, rates []domain.SectorRate) domain.PricedBreakdown {
	breakdown := domain.PricedBreakdown{
		Route: origin + " → " + destination,
		Rates: []domain.SectorRate{},
	}

	seen := make(map[int64]bool)
	for _, leg := range segments.Legs() {
		if leg == nil {
			continue
		}
		for _, rate := range rates {
			if !rate.IsActive {
				continue
			}
			if rate.Origin != leg.Origin || rate.Destination != leg.Destination {
				continue
			}
			if seen[rate.ID] {
				continue
			}
			seen[rate.ID] = true
			breakdown.Rates = append(breakdown.Rates, rate)
			breakdown.TotalSum += rate.Rate
		}
	}

	return breakdown
}
