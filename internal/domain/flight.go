package domain

import (
	"fmt"
	"regexp"
)

// Flight represents a registered flight with raw origin/destination codes.
type Flight struct {
	// ID is the registry identifier
	ID int64 `json:"id"`

	// FlightNumber is the carrier flight number (e.g., "BT234")
	FlightNumber string `json:"flight_number"`

	// Origin is the raw origin location code (longer form, e.g., "DEFRAX")
	Origin string `json:"origin"`

	// Destination is the raw destination location code
	Destination string `json:"destination"`

	// IsActive indicates whether the flight is currently in service
	IsActive bool `json:"is_active"`
}

// Resolve returns the flight's endpoints reduced to canonical airport codes.
func (f Flight) Resolve() ResolvedFlight {
	return ResolvedFlight{
		FlightNumber: f.FlightNumber,
		Origin:       NormalizeCode(f.Origin),
		Destination:  NormalizeCode(f.Destination),
	}
}

// ResolvedFlight carries a flight number together with its canonical
// endpoints. It is the structured counterpart of the legacy display string
// "<flightNumber>, <origin> → <destination>"; consumers work with the struct
// and render the string only at the presentation edge.
type ResolvedFlight struct {
	FlightNumber string `json:"flight_number"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
}

// Display renders the human-readable route string for a resolved flight.
// The format (comma, then "AAA → BBB" with a literal arrow) is a contract
// with stored data; ParseRouteDisplay is its inverse.
func (r ResolvedFlight) Display() string {
	return fmt.Sprintf("%s, %s → %s", r.FlightNumber, r.Origin, r.Destination)
}

// routeDisplayPattern matches the rendered form of ResolvedFlight.Display.
var routeDisplayPattern = regexp.MustCompile(`^(.+), ([A-Z]{3}) → ([A-Z]{3})$`)

// ParseRouteDisplay parses a legacy display string back into a
// ResolvedFlight. It exists only for reading strings persisted by the old
// system; the pipeline itself passes ResolvedFlight values around.
// The second return value is false when the string is a bare flight number
// (the degraded form used for unresolved flights).
func ParseRouteDisplay(s string) (ResolvedFlight, bool) {
	m := routeDisplayPattern.FindStringSubmatch(s)
	if m == nil {
		return ResolvedFlight{}, false
	}
	return ResolvedFlight{
		FlightNumber: m[1],
		Origin:       m[2],
		Destination:  m[3],
	}, true
}
