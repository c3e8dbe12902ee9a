package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityaldip/cargo-pricing/internal/domain"
)

// PricingUseCase is the orchestrating surface of the pricing engine. It
// loads registry snapshots from the stores and runs the pure pipeline over
// them; recomputation always covers the full working set.
type PricingUseCase interface {
	// UploadRecords stores freshly uploaded raw rows, assigning ids.
	UploadRecords(ctx context.Context, records []domain.CargoRecord) ([]domain.CargoRecord, error)

	// PriceRecord segments and prices a single record.
	PriceRecord(ctx context.Context, recordID string) (*domain.RecordPricing, error)

	// RecomputeAll re-runs the pipeline over every record.
	RecomputeAll(ctx context.Context) ([]domain.RecordPricing, error)

	// Alternatives lists priced segments sharing an endpoint with the pair.
	Alternatives(ctx context.Context, origin, destination string) ([]domain.AlternativeRoute, error)

	// TransitOptions generates the selectable variants of a transit rate.
	TransitOptions(ctx context.Context, rateID int64) ([]domain.TransitOption, error)

	// TransitRouteVariants enumerates every stop combination of a transit rate.
	TransitRouteVariants(ctx context.Context, rateID int64) ([]string, error)

	// SelectTransitOption persists a chosen variant onto a record.
	SelectTransitOption(ctx context.Context, rateID int64, recordID, transitRoute string) error

	// Convert applies a conversion override to a record after validation.
	Convert(ctx context.Context, recordID string, override domain.ConversionOverride) error

	// Airports lists the airport-code registry.
	Airports(ctx context.Context) ([]domain.AirportCode, error)

	// SectorRates lists the v1 rate registry.
	SectorRates(ctx context.Context, activeOnly bool) ([]domain.SectorRate, error)
}

// pricingUseCase implements PricingUseCase over a registry store and a
// record store.
type pricingUseCase struct {
	registry domain.RegistryStore
	records  domain.RecordStore
}

// NewPricingUseCase creates a PricingUseCase backed by the given stores.
func NewPricingUseCase(registry domain.RegistryStore, records domain.RecordStore) PricingUseCase {
	return &pricingUseCase{
		registry: registry,
		records:  records,
	}
}

// UploadRecords implements PricingUseCase.UploadRecords.
func (uc *pricingUseCase) UploadRecords(ctx context.Context, records []domain.CargoRecord) ([]domain.CargoRecord, error) {
	if len(records) == 0 {
		return nil, domain.WrapInvalidRequest("no records to upload")
	}

	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
		records[i].IsConverted = false
	}

	if err := uc.records.CreateRecords(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// PriceRecord implements PricingUseCase.PriceRecord.
func (uc *pricingUseCase) PriceRecord(ctx context.Context, recordID string) (*domain.RecordPricing, error) {
	record, err := uc.records.RecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	snap, err := uc.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	pricing := priceRecord(snap, record)
	return &pricing, nil
}

// RecomputeAll implements PricingUseCase.RecomputeAll.
func (uc *pricingUseCase) RecomputeAll(ctx context.Context) ([]domain.RecordPricing, error) {
	records, err := uc.records.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := uc.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.RecordPricing, 0, len(records))
	for _, record := range records {
		results = append(results, priceRecord(snap, record))
	}
	return results, nil
}

// Alternatives implements PricingUseCase.Alternatives.
func (uc *pricingUseCase) Alternatives(ctx context.Context, origin, destination string) ([]domain.AlternativeRoute, error) {
	snap, err := uc.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return FindAlternatives(origin, destination, snap.SectorRates), nil
}

// TransitOptions implements PricingUseCase.TransitOptions.
func (uc *pricingUseCase) TransitOptions(ctx context.Context, rateID int64) ([]domain.TransitOption, error) {
	snap, rate, err := uc.transitRate(ctx, rateID)
	if err != nil {
		return nil, err
	}
	return TransitOptions(rate, snap.CustomerName(rate.CustomerID)), nil
}

// TransitRouteVariants implements PricingUseCase.TransitRouteVariants.
func (uc *pricingUseCase) TransitRouteVariants(ctx context.Context, rateID int64) ([]string, error) {
	_, rate, err := uc.transitRate(ctx, rateID)
	if err != nil {
		return nil, err
	}
	return EnumerateRouteVariants(rate), nil
}

// SelectTransitOption implements PricingUseCase.SelectTransitOption.
// The selection writes only to the record; the transit rate itself is never
// mutated.
func (uc *pricingUseCase) SelectTransitOption(ctx context.Context, rateID int64, recordID, transitRoute string) error {
	_, rate, err := uc.transitRate(ctx, rateID)
	if err != nil {
		return err
	}

	if transitRoute != "" && !containsString(rate.SelectedRoutes, transitRoute) {
		return domain.WrapInvalidRequest("transit route %q is not a selected route of rate %d", transitRoute, rateID)
	}

	if _, err := uc.records.RecordByID(ctx, recordID); err != nil {
		return err
	}
	return uc.records.SaveRateSelection(ctx, recordID, rate.ID, transitRoute)
}

// Convert implements PricingUseCase.Convert.
func (uc *pricingUseCase) Convert(ctx context.Context, recordID string, override domain.ConversionOverride) error {
	record, err := uc.records.RecordByID(ctx, recordID)
	if err != nil {
		return err
	}

	snap, err := uc.registry.Snapshot(ctx)
	if err != nil {
		return err
	}

	if errs := ValidateConversion(snap, record, override); errs.HasErrors() {
		return errs
	}
	return uc.records.SaveConversion(ctx, recordID, override)
}

// Airports implements PricingUseCase.Airports.
func (uc *pricingUseCase) Airports(ctx context.Context) ([]domain.AirportCode, error) {
	snap, err := uc.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Airports, nil
}

// SectorRates implements PricingUseCase.SectorRates.
func (uc *pricingUseCase) SectorRates(ctx context.Context, activeOnly bool) ([]domain.SectorRate, error) {
	snap, err := uc.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		return snap.ActiveSectorRates(), nil
	}
	return snap.SectorRates, nil
}

// transitRate loads the snapshot and finds a transit rate in it.
func (uc *pricingUseCase) transitRate(ctx context.Context, rateID int64) (domain.RegistrySnapshot, domain.TransitRate, error) {
	snap, err := uc.registry.Snapshot(ctx)
	if err != nil {
		return domain.RegistrySnapshot{}, domain.TransitRate{}, err
	}
	rate, ok := snap.TransitRateByID(rateID)
	if !ok {
		return domain.RegistrySnapshot{}, domain.TransitRate{}, domain.ErrRateNotFound
	}
	return snap, rate, nil
}

// priceRecord runs the segmentation and matching pipeline for one record.
// Converted records bypass the matcher entirely: segmentation is still
// computed (the presentation layer suppresses it), but the breakdown carries
// the persisted applied rate.
func priceRecord(snap domain.RegistrySnapshot, record domain.CargoRecord) domain.RecordPricing {
	segments := SegmentRoute(snap, record)

	if record.IsConverted {
		origin := domain.NormalizeCode(record.ConvertedOrigin)
		destination := domain.NormalizeCode(record.ConvertedDestination)
		return domain.RecordPricing{
			Record:   record,
			Segments: segments,
			Breakdown: domain.PricedBreakdown{
				Route:    origin + " → " + destination,
				TotalSum: record.AppliedRate,
				Rates:    []domain.SectorRate{},
			},
		}
	}

	breakdown := MatchSectorRates(record.CanonicalOrigin(), record.CanonicalDestination(), segments, snap.ActiveSectorRates())
	return domain.RecordPricing{
		Record:    record,
		Segments:  segments,
		Breakdown: breakdown,
	}
}

// containsString reports whether list contains s.
func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Ensure pricingUseCase implements PricingUseCase at compile time.
var _ PricingUseCase = (*pricingUseCase)(nil)
