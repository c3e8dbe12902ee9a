package domain

// LegNone is the display form of an absent route leg.
const LegNone = "-"

// RouteLeg is an ephemeral directed airport pair produced during
// segmentation. It is never persisted.
type RouteLeg struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Display renders the leg as "AAA → BBB".
func (l RouteLeg) Display() string {
	return l.Origin + " → " + l.Destination
}

// RouteSegments holds the four legs of a journey derived from a raw record.
// A nil leg means "none". The order [BeforeBT, Inbound, Outbound, AfterBT] is
// fixed and must be preserved: deduplication during matching depends on it.
type RouteSegments struct {
	// BeforeBT is the implicit connecting leg travelled before the
	// booked inbound flight
	BeforeBT *RouteLeg `json:"before_bt,omitempty"`

	// Inbound is the booked inbound flight's leg
	Inbound *RouteLeg `json:"inbound,omitempty"`

	// Outbound is the booked outbound flight's leg
	Outbound *RouteLeg `json:"outbound,omitempty"`

	// AfterBT is the implicit connecting leg travelled after the booked
	// outbound flight
	AfterBT *RouteLeg `json:"after_bt,omitempty"`
}

// Legs returns the four legs in evaluation order. Absent legs are included
// as nil so callers keep positional context.
func (s RouteSegments) Legs() []*RouteLeg {
	return []*RouteLeg{s.BeforeBT, s.Inbound, s.Outbound, s.AfterBT}
}

// LegDisplay renders a possibly absent leg, using LegNone for nil.
func LegDisplay(l *RouteLeg) string {
	if l == nil {
		return LegNone
	}
	return l.Display()
}

// PricedBreakdown is the deduplicated set of matched sector rates and their
// sum for one record. Rates preserves encounter order across the legs.
type PricedBreakdown struct {
	// Route is the overall canonical route of the record ("AAA → BBB")
	Route string `json:"route"`

	// TotalSum is the sum over the deduplicated rate set
	TotalSum float64 `json:"total_sum"`

	// Rates is the deduplicated list of matched rates in encounter order
	Rates []SectorRate `json:"rates"`
}

// RecordPricing is the full derived state for one record: its segmentation
// and the resulting price breakdown. For converted records the breakdown
// carries the persisted applied rate and the matcher is bypassed.
type RecordPricing struct {
	Record    CargoRecord     `json:"record"`
	Segments  RouteSegments   `json:"segments"`
	Breakdown PricedBreakdown `json:"breakdown"`
}

// AlternativeRoute is a display-only "what else connects here" entry.
type AlternativeRoute struct {
	// Route is the rendered pair ("AAA → BBB")
	Route string `json:"route"`

	// Rate is the price of the sector rate
	Rate float64 `json:"rate"`

	// IsDirect is true for the exact requested pair
	IsDirect bool `json:"is_direct"`
}

// TransitOption is one selectable pricing variant generated from a
// TransitRate.
type TransitOption struct {
	// SectorRateID references the generating transit rate
	SectorRateID int64 `json:"sector_rate_id"`

	// TransitRoute is the selected route variant ("A -> B -> C"), empty
	// for the base-rate-only option
	TransitRoute string `json:"transit_route,omitempty"`

	// DisplayText is the fixed-composition option label
	DisplayText string `json:"display_text"`

	// TotalPrice is the base rate plus the selected stops' increments
	TotalPrice float64 `json:"total_price"`
}
