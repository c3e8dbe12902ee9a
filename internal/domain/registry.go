package domain

import "context"

//go:generate mockgen -source=registry.go -destination=mock_registry.go -package=domain

// RegistrySnapshot is an immutable in-memory view of the four registries the
// engine consumes. Snapshots are fetched by the storage adapter and handed to
// the engine as plain values; all pricing functions are pure transformations
// over them.
type RegistrySnapshot struct {
	Airports     []AirportCode
	Flights      []Flight
	SectorRates  []SectorRate
	TransitRates []TransitRate
	Customers    []Customer
}

// ActiveSectorRates returns the active v1 rate rows. Matching operates on
// active rows only.
func (s RegistrySnapshot) ActiveSectorRates() []SectorRate {
	active := make([]SectorRate, 0, len(s.SectorRates))
	for _, r := range s.SectorRates {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active
}

// TransitRateByID finds a transit rate in the snapshot.
func (s RegistrySnapshot) TransitRateByID(id int64) (TransitRate, bool) {
	for _, r := range s.TransitRates {
		if r.ID == id {
			return r, true
		}
	}
	return TransitRate{}, false
}

// CustomerName resolves a customer id to its display name. Returns an empty
// string when the customer is unknown.
func (s RegistrySnapshot) CustomerName(id int64) string {
	for _, c := range s.Customers {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// RegistryStore loads registry snapshots from the persistent store.
type RegistryStore interface {
	// Snapshot reads all registries into a single consistent value.
	Snapshot(ctx context.Context) (RegistrySnapshot, error)
}

// RecordStore persists cargo records and the engine's only writes: the
// conversion-override fields and the transit-rate selection fields.
type RecordStore interface {
	// CreateRecords stores freshly uploaded records.
	CreateRecords(ctx context.Context, records []CargoRecord) error

	// ListRecords returns the full working set.
	ListRecords(ctx context.Context) ([]CargoRecord, error)

	// RecordByID returns one record, or ErrRecordNotFound.
	RecordByID(ctx context.Context, id string) (CargoRecord, error)

	// SaveConversion persists the override fields and flips IsConverted.
	SaveConversion(ctx context.Context, id string, override ConversionOverride) error

	// SaveRateSelection persists the chosen transit rate and route variant.
	SaveRateSelection(ctx context.Context, id string, sectorRateID int64, transitRoute string) error
}
