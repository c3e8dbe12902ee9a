package domain

// SectorRate is a flat price for one directed airport pair (v1 pricing fact).
// Multiple rows may share an origin or a destination; active rows for the
// same exact pair are assumed unique, but matching does not enforce that and
// returns every hit.
type SectorRate struct {
	// ID is the registry identifier
	ID int64 `json:"id"`

	// Origin is the canonical 3-letter origin code
	Origin string `json:"origin"`

	// Destination is the canonical 3-letter destination code
	Destination string `json:"destination"`

	// Rate is the flat price for the pair
	Rate float64 `json:"sector_rate"`

	// IsActive indicates whether the row participates in matching
	IsActive bool `json:"is_active"`
}

// RouteDisplay renders the rate's pair as "AAA → BBB".
func (s SectorRate) RouteDisplay() string {
	return s.Origin + " → " + s.Destination
}

// TransitRate is the composite v2 pricing fact: a priced airport pair
// carrying an ordered chain of transit stops, each with its own incremental
// price.
//
// TransitPrices is parallel to TransitRoutes; when the lengths differ the
// two are treated as absent together. Prices are kept as raw strings because
// the legacy store holds unvalidated input; coercion happens at option
// generation time and fails open to zero.
type TransitRate struct {
	// ID is the registry identifier
	ID int64 `json:"id"`

	// Label is the human-facing name of the rate
	Label string `json:"label"`

	// Origin is the canonical origin code of the priced pair
	Origin string `json:"origin"`

	// Destination is the canonical destination code of the priced pair
	Destination string `json:"destination"`

	// Rate is the base price for the direct pair
	Rate float64 `json:"sector_rate"`

	// TransitRoutes is the ordered chain of intermediate stop codes
	TransitRoutes []string `json:"transit_routes,omitempty"`

	// TransitPrices holds the incremental price per stop, parallel to
	// TransitRoutes
	TransitPrices []string `json:"transit_prices,omitempty"`

	// SelectedRoutes holds the precomputed display route variants
	// (format "A -> B -> C")
	SelectedRoutes []string `json:"selected_routes,omitempty"`

	// CustomerID references the customer the rate belongs to (0 when none)
	CustomerID int64 `json:"customer_id,omitempty"`

	// Status indicates whether the rate is active
	Status bool `json:"status"`
}

// HasTransitPricing reports whether the stop chain and its price list are
// usable as a pair.
func (t TransitRate) HasTransitPricing() bool {
	return len(t.TransitRoutes) > 0 && len(t.TransitRoutes) == len(t.TransitPrices)
}

// Customer is the owning customer of a transit rate.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
