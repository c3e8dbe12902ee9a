// Package http provides the HTTP handler layer for the cargo pricing API.
package http

import (
	"fmt"

	"github.com/adityaldip/cargo-pricing/internal/domain"
)

// Validate checks the upload request. Raw codes are accepted as-is; the
// engine normalizes them downstream.
func (r *UploadRecordsRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if len(r.Records) == 0 {
		errs.Add("records", "at least one record is required")
		return errs
	}

	for i, rec := range r.Records {
		if rec.Origin == "" {
			errs.Add(fmt.Sprintf("records[%d].origin", i), "origin is required")
		}
		if rec.Destination == "" {
			errs.Add(fmt.Sprintf("records[%d].destination", i), "destination is required")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the conversion request for structural problems. The
// semantic peer checks (endpoints differing, flights differing) run in the
// engine against the registry.
func (r *ConvertRecordRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if r.Origin == "" {
		errs.Add("origin", "origin is required")
	}
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}
	if r.AppliedRate < 0 {
		errs.Add("applied_rate", "applied_rate must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the transit-selection request.
func (r *SelectTransitRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if r.RecordID == "" {
		errs.Add("record_id", "record_id is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateAlternativesQuery checks the query parameters of the alternatives
// endpoint.
func validateAlternativesQuery(origin, destination string) error {
	errs := &domain.ValidationErrors{}

	if origin == "" {
		errs.Add("origin", "origin is required")
	}
	if destination == "" {
		errs.Add("destination", "destination is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
