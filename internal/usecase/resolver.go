// Package usecase contains the business logic of the route-segmentation and
// sector-rate pricing engine. All functions here are pure transformations
// over registry snapshots; the orchestrating PricingUseCase is the only
// component that touches the stores.
package usecase

import (
	"strings"

	"github.com/adityaldip/cargo-pricing/internal/domain"
)

// ResolveFlight looks up a flight number in the snapshot with a
// case-insensitive exact match and returns its canonical endpoints.
// An empty flight number or a registry miss returns ok=false; the caller
// treats the leg as absent rather than erroring.
func ResolveFlight(snap domain.RegistrySnapshot, flightNumber string) (domain.ResolvedFlight, bool) {
	if flightNumber == "" {
		return domain.ResolvedFlight{}, false
	}
	for _, f := range snap.Flights {
		if strings.EqualFold(f.FlightNumber, flightNumber) {
			return f.Resolve(), true
		}
	}
	return domain.ResolvedFlight{}, false
}

// FlightDisplay renders the route string for a flight number: the full
// "<number>, AAA → BBB" form when the number resolves, or the bare number
// unchanged when it does not. The degraded form is what the UI shows for
// flights missing from the registry.
func FlightDisplay(snap domain.RegistrySnapshot, flightNumber string) string {
	if resolved, ok := ResolveFlight(snap, flightNumber); ok {
		return resolved.Display()
	}
	return flightNumber
}
