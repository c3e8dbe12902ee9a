package usecase

import (
	"sort"

	"github.com/adityaldip/cargo-pricing/internal/domain"
)

// FindAlternatives lists the active sector rates that share an endpoint with
// the given direct pair, for informational display. The exact pair comes
// first (marked direct), then every other rate with the same origin, then
// every other rate with the same destination; entries are deduplicated by
// rendered route string and the non-direct remainder is sorted ascending by
// rate. Single-hop only: this does not compose multi-leg alternatives.
func FindAlternatives(origin, destination string, rates []domain.SectorRate) []domain.AlternativeRoute {
	result := []domain.AlternativeRoute{}
	seen := make(map[string]bool)

	for _, r := range rates {
		if !r.IsActive {
			continue
		}
		if r.Origin == origin && r.Destination == destination && !seen[r.RouteDisplay()] {
			seen[r.RouteDisplay()] = true
			result = append(result, domain.AlternativeRoute{
				Route:    r.RouteDisplay(),
				Rate:     r.Rate,
				IsDirect: true,
			})
		}
	}

	var others []domain.AlternativeRoute
	appendOther := func(r domain.SectorRate) {
		if seen[r.RouteDisplay()] {
			return
		}
		seen[r.RouteDisplay()] = true
		others = append(others, domain.AlternativeRoute{
			Route: r.RouteDisplay(),
			Rate:  r.Rate,
		})
	}

	for _, r := range rates {
		if r.IsActive && r.Origin == origin {
			appendOther(r)
		}
	}
	for _, r := range rates {
		if r.IsActive && r.Destination == destination {
			appendOther(r)
		}
	}

	sort.SliceStable(others, func(i, j int) bool {
		return others[i].Rate < others[j].Rate
	})

	return append(result, others...)
}
