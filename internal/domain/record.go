package domain

// CargoRecord is an uploaded cargo/flight row awaiting pricing.
// It is created on upload and mutated only by the conversion override and the
// transit-rate selection; the engine never deletes it.
type CargoRecord struct {
	// ID is the record identifier (UUID assigned on upload)
	ID string `json:"id"`

	// Origin is the raw origin location code as uploaded
	Origin string `json:"origin"`

	// Destination is the raw destination location code as uploaded
	Destination string `json:"destination"`

	// Inbound is the booked inbound flight number (empty when absent)
	Inbound string `json:"inbound,omitempty"`

	// Outbound is the booked outbound flight number (empty when absent)
	Outbound string `json:"outbound,omitempty"`

	// IsConverted is true once a human has replaced the derived
	// segmentation/price with explicit values
	IsConverted bool `json:"is_converted"`

	// Override fields, persisted by the conversion override.
	ConvertedOrigin      string  `json:"converted_origin,omitempty"`
	ConvertedDestination string  `json:"converted_destination,omitempty"`
	BeforeBTFrom         string  `json:"before_bt_from,omitempty"`
	BeforeBTTo           string  `json:"before_bt_to,omitempty"`
	AfterBTFrom          string  `json:"after_bt_from,omitempty"`
	AfterBTTo            string  `json:"after_bt_to,omitempty"`
	AppliedRate          float64 `json:"applied_rate,omitempty"`

	// SectorRateID references the rate chosen at conversion or transit
	// selection time (0 when none)
	SectorRateID int64 `json:"sector_rate_id,omitempty"`

	// TransitRoute is the selected transit route variant for the v2
	// pricing model (empty when the base rate was selected)
	TransitRoute string `json:"transit_route,omitempty"`
}

// CanonicalOrigin returns the record's origin reduced to a 3-letter code.
func (r CargoRecord) CanonicalOrigin() string {
	return NormalizeCode(r.Origin)
}

// CanonicalDestination returns the record's destination reduced to a
// 3-letter code.
func (r CargoRecord) CanonicalDestination() string {
	return NormalizeCode(r.Destination)
}

// ConversionOverride holds the explicit values a human supplies to replace
// the automatically derived segmentation and price for one record.
type ConversionOverride struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	BeforeBTFrom string  `json:"before_bt_from,omitempty"`
	BeforeBTTo   string  `json:"before_bt_to,omitempty"`
	AfterBTFrom  string  `json:"after_bt_from,omitempty"`
	AfterBTTo    string  `json:"after_bt_to,omitempty"`
	AppliedRate  float64 `json:"applied_rate"`
	SectorRateID int64   `json:"sector_rate_id,omitempty"`
}
