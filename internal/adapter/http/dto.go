// Package http provides the HTTP handler layer for the cargo pricing API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import "github.com/adityaldip/cargo-pricing/internal/domain"

// UploadRecordDTO is one raw cargo row in an upload request.
type UploadRecordDTO struct {
	// Origin is the raw origin location code (e.g., "DEFRAX")
	Origin string `json:"origin"`

	// Destination is the raw destination location code
	Destination string `json:"destination"`

	// Inbound is the booked inbound flight number (optional)
	Inbound string `json:"inbound,omitempty"`

	// Outbound is the booked outbound flight number (optional)
	Outbound string `json:"outbound,omitempty"`
}

// UploadRecordsRequest is the request body for record upload.
type UploadRecordsRequest struct {
	Records []UploadRecordDTO `json:"records"`
}

// UploadRecordsResponse reports the stored records with their assigned ids.
type UploadRecordsResponse struct {
	Records []domain.CargoRecord `json:"records"`
	Count   int                  `json:"count"`
}

// ConvertRecordRequest is the request body for a conversion override.
type ConvertRecordRequest struct {
	// Origin is the explicit origin replacing the derived one
	Origin string `json:"origin"`

	// Destination is the explicit destination replacing the derived one
	Destination string `json:"destination"`

	// Optional explicit connection legs
	BeforeBTFrom string `json:"before_bt_from,omitempty"`
	BeforeBTTo   string `json:"before_bt_to,omitempty"`
	AfterBTFrom  string `json:"after_bt_from,omitempty"`
	AfterBTTo    string `json:"after_bt_to,omitempty"`

	// AppliedRate is the explicit price replacing the matched sum
	AppliedRate float64 `json:"applied_rate"`

	// SectorRateID optionally references the rate the override is based on
	SectorRateID int64 `json:"sector_rate_id,omitempty"`
}

// SelectTransitRequest is the request body for transit-option selection.
type SelectTransitRequest struct {
	// RecordID is the cargo record the selection applies to
	RecordID string `json:"record_id"`

	// TransitRoute is the chosen route variant ("A -> B -> C"), empty for
	// the base rate
	TransitRoute string `json:"transit_route,omitempty"`
}

// LegsDTO renders the four journey legs; absent legs render as "-".
type LegsDTO struct {
	BeforeBT string `json:"before_bt"`
	Inbound  string `json:"inbound"`
	Outbound string `json:"outbound"`
	AfterBT  string `json:"after_bt"`
}

// SectorRateDTO is one matched rate row in a pricing breakdown.
type SectorRateDTO struct {
	ID    int64   `json:"id"`
	Route string  `json:"route"`
	Rate  float64 `json:"rate"`
}

// RecordPricingDTO is the rendered pricing result for one record.
type RecordPricingDTO struct {
	RecordID    string          `json:"record_id"`
	Route       string          `json:"route"`
	IsConverted bool            `json:"is_converted"`
	Legs        LegsDTO         `json:"legs"`
	TotalSum    float64         `json:"total_sum"`
	Rates       []SectorRateDTO `json:"rates"`
}

// RecomputeResponse is the result of a full working-set recompute.
type RecomputeResponse struct {
	Results []RecordPricingDTO `json:"results"`
	Count   int                `json:"count"`
}

// AlternativesResponse lists alternative routes for a requested pair.
type AlternativesResponse struct {
	Origin       string                    `json:"origin"`
	Destination  string                    `json:"destination"`
	Alternatives []domain.AlternativeRoute `json:"alternatives"`
}

// TransitOptionsResponse lists the selectable variants of a transit rate.
type TransitOptionsResponse struct {
	RateID  int64                  `json:"rate_id"`
	Options []domain.TransitOption `json:"options"`
}

// TransitVariantsResponse lists every enumerable route variant of a rate.
type TransitVariantsResponse struct {
	RateID   int64    `json:"rate_id"`
	Variants []string `json:"variants"`
}
