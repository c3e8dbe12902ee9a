// Package http provides the HTTP handler layer for the cargo pricing API.
package http

import "github.com/adityaldip/cargo-pricing/internal/domain"

// ToDomainRecords converts an upload request to domain records. IDs are
// assigned by the use case.
func ToDomainRecords(req *UploadRecordsRequest) []domain.CargoRecord {
	records := make([]domain.CargoRecord, len(req.Records))
	for i, dto := range req.Records {
		records[i] = domain.CargoRecord{
			Origin:      dto.Origin,
			Destination: dto.Destination,
			Inbound:     dto.Inbound,
			Outbound:    dto.Outbound,
		}
	}
	return records
}

// ToDomainOverride converts a conversion request to a domain override.
func ToDomainOverride(req *ConvertRecordRequest) domain.ConversionOverride {
	return domain.ConversionOverride{
		Origin:       req.Origin,
		Destination:  req.Destination,
		BeforeBTFrom: req.BeforeBTFrom,
		BeforeBTTo:   req.BeforeBTTo,
		AfterBTFrom:  req.AfterBTFrom,
		AfterBTTo:    req.AfterBTTo,
		AppliedRate:  req.AppliedRate,
		SectorRateID: req.SectorRateID,
	}
}

// ToRecordPricingDTO renders a pricing result. Converted records keep their
// explicit override price and suppress the derived leg display.
func ToRecordPricingDTO(p domain.RecordPricing) RecordPricingDTO {
	dto := RecordPricingDTO{
		RecordID:    p.Record.ID,
		Route:       p.Breakdown.Route,
		IsConverted: p.Record.IsConverted,
		TotalSum:    p.Breakdown.TotalSum,
		Rates:       make([]SectorRateDTO, len(p.Breakdown.Rates)),
	}

	if p.Record.IsConverted {
		dto.Legs = LegsDTO{
			BeforeBT: domain.LegNone,
			Inbound:  domain.LegNone,
			Outbound: domain.LegNone,
			AfterBT:  domain.LegNone,
		}
	} else {
		dto.Legs = LegsDTO{
			BeforeBT: domain.LegDisplay(p.Segments.BeforeBT),
			Inbound:  domain.LegDisplay(p.Segments.Inbound),
			Outbound: domain.LegDisplay(p.Segments.Outbound),
			AfterBT:  domain.LegDisplay(p.Segments.AfterBT),
		}
	}

	for i, r := range p.Breakdown.Rates {
		dto.Rates[i] = SectorRateDTO{
			ID:    r.ID,
			Route: r.RouteDisplay(),
			Rate:  r.Rate,
		}
	}
	return dto
}

// ToRecordPricingDTOs renders a batch of pricing results.
func ToRecordPricingDTOs(results []domain.RecordPricing) []RecordPricingDTO {
	dtos := make([]RecordPricingDTO, len(results))
	for i, p := range results {
		dtos[i] = ToRecordPricingDTO(p)
	}
	return dtos
}
