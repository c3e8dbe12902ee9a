// Package domain contains the core business entities and rules for the cargo
// route pricing system. These entities are storage-agnostic and form the
// foundation upon which all other components are built.
package domain

import "strings"

// AirportCode represents a canonical 3-letter airport code in the registry.
type AirportCode struct {
	// ID is the registry identifier
	ID int64 `json:"id"`

	// Code is the canonical 3-letter airport code (e.g., "FRA")
	Code string `json:"code"`

	// IsActive indicates whether the code participates in matching
	IsActive bool `json:"is_active"`

	// IsEU indicates whether the airport is inside the EU customs area
	IsEU bool `json:"is_eu"`
}

// NormalizeCode reduces a raw location code to a canonical 3-letter airport
// code. Raw codes are stored in a longer form where the airport code occupies
// positions [2,5) (e.g., "USFRAT" -> "FRA"). Codes shorter than 5 characters
// are returned uppercased as-is, so the function is idempotent.
//
// No registry validation happens here: unknown codes pass through unchanged
// and simply fail to match in later stages.
func NormalizeCode(raw string) string {
	if len(raw) >= 5 {
		return strings.ToUpper(raw[2:5])
	}
	return strings.ToUpper(raw)
}
