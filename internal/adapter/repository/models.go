package repository

import (
	"gorm.io/datatypes"

	"github.com/adityaldip/cargo-pricing/internal/domain"
)

// Row models map the registry tables onto the domain types. They carry the
// gorm column metadata so the domain package stays free of persistence tags.

// AirportCodeRow is a row in the airport_codes registry table.
type AirportCodeRow struct {
	ID       int64  `gorm:"primaryKey"`
	Code     string `gorm:"type:text;not null;index"`
	IsActive bool   `gorm:"not null;default:true"`
	IsEU     bool   `gorm:"not null;default:false"`
}

func (AirportCodeRow) TableName() string { return "airport_codes" }

func (r AirportCodeRow) toDomain() domain.AirportCode {
	return domain.AirportCode{
		ID:       r.ID,
		Code:     r.Code,
		IsActive: r.IsActive,
		IsEU:     r.IsEU,
	}
}

// FlightRow is a row in the flights registry table.
type FlightRow struct {
	ID           int64  `gorm:"primaryKey"`
	FlightNumber string `gorm:"type:text;not null;index"`
	Origin       string `gorm:"type:text;not null"`
	Destination  string `gorm:"type:text;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
}

func (FlightRow) TableName() string { return "flights" }

func (r FlightRow) toDomain() domain.Flight {
	return domain.Flight{
		ID:           r.ID,
		FlightNumber: r.FlightNumber,
		Origin:       r.Origin,
		Destination:  r.Destination,
		IsActive:     r.IsActive,
	}
}

// SectorRateRow is a row in the sector_rates table (v1 pricing).
type SectorRateRow struct {
	ID          int64   `gorm:"primaryKey"`
	Origin      string  `gorm:"type:text;not null;index"`
	Destination string  `gorm:"type:text;not null;index"`
	Rate        float64 `gorm:"not null"`
	IsActive    bool    `gorm:"not null;default:true"`
}

func (SectorRateRow) TableName() string { return "sector_rates" }

func (r SectorRateRow) toDomain() domain.SectorRate {
	return domain.SectorRate{
		ID:          r.ID,
		Origin:      r.Origin,
		Destination: r.Destination,
		Rate:        r.Rate,
		IsActive:    r.IsActive,
	}
}

// TransitRateRow is a row in the transit_rates table (v2 pricing). The
// stop chains and price lists are stored as JSON arrays.
type TransitRateRow struct {
	ID             int64                        `gorm:"primaryKey"`
	Label          string                       `gorm:"type:text;not null"`
	Origin         string                       `gorm:"type:text;not null;index"`
	Destination    string                       `gorm:"type:text;not null;index"`
	Rate           float64                      `gorm:"not null"`
	TransitRoutes  datatypes.JSONSlice[string]  `gorm:"type:json"`
	TransitPrices  datatypes.JSONSlice[string]  `gorm:"type:json"`
	SelectedRoutes datatypes.JSONSlice[string]  `gorm:"type:json"`
	CustomerID     int64                        `gorm:"index"`
	Status         bool                         `gorm:"not null;default:true"`
}

func (TransitRateRow) TableName() string { return "transit_rates" }

func (r TransitRateRow) toDomain() domain.TransitRate {
	return domain.TransitRate{
		ID:             r.ID,
		Label:          r.Label,
		Origin:         r.Origin,
		Destination:    r.Destination,
		Rate:           r.Rate,
		TransitRoutes:  []string(r.TransitRoutes),
		TransitPrices:  []string(r.TransitPrices),
		SelectedRoutes: []string(r.SelectedRoutes),
		CustomerID:     r.CustomerID,
		Status:         r.Status,
	}
}

// CustomerRow is a row in the customers table.
type CustomerRow struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"type:text;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (CustomerRow) TableName() string { return "customers" }

func (r CustomerRow) toDomain() domain.Customer {
	return domain.Customer{
		ID:       r.ID,
		Name:     r.Name,
		IsActive: r.IsActive,
	}
}

// CargoRecordRow is a row in the cargo_records working-set table.
type CargoRecordRow struct {
	ID                   string  `gorm:"primaryKey;type:text"`
	Origin               string  `gorm:"type:text;not null"`
	Destination          string  `gorm:"type:text;not null"`
	Inbound              string  `gorm:"type:text"`
	Outbound             string  `gorm:"type:text"`
	IsConverted          bool    `gorm:"not null;default:false"`
	ConvertedOrigin      string  `gorm:"type:text"`
	ConvertedDestination string  `gorm:"type:text"`
	BeforeBTFrom         string  `gorm:"column:before_bt_from;type:text"`
	BeforeBTTo           string  `gorm:"column:before_bt_to;type:text"`
	AfterBTFrom          string  `gorm:"column:after_bt_from;type:text"`
	AfterBTTo            string  `gorm:"column:after_bt_to;type:text"`
	AppliedRate          float64
	SectorRateID         int64
	TransitRoute         string `gorm:"type:text"`
}

func (CargoRecordRow) TableName() string { return "cargo_records" }

func (r CargoRecordRow) toDomain() domain.CargoRecord {
	return domain.CargoRecord{
		ID:                   r.ID,
		Origin:               r.Origin,
		Destination:          r.Destination,
		Inbound:              r.Inbound,
		Outbound:             r.Outbound,
		IsConverted:          r.IsConverted,
		ConvertedOrigin:      r.ConvertedOrigin,
		ConvertedDestination: r.ConvertedDestination,
		BeforeBTFrom:         r.BeforeBTFrom,
		BeforeBTTo:           r.BeforeBTTo,
		AfterBTFrom:          r.AfterBTFrom,
		AfterBTTo:            r.AfterBTTo,
		AppliedRate:          r.AppliedRate,
		SectorRateID:         r.SectorRateID,
		TransitRoute:         r.TransitRoute,
	}
}

func recordRowFromDomain(rec domain.CargoRecord) CargoRecordRow {
	return CargoRecordRow{
		ID:                   rec.ID,
		Origin:               rec.Origin,
		Destination:          rec.Destination,
		Inbound:              rec.Inbound,
		Outbound:             rec.Outbound,
		IsConverted:          rec.IsConverted,
		ConvertedOrigin:      rec.ConvertedOrigin,
		ConvertedDestination: rec.ConvertedDestination,
		BeforeBTFrom:         rec.BeforeBTFrom,
		BeforeBTTo:           rec.BeforeBTTo,
		AfterBTFrom:          rec.AfterBTFrom,
		AfterBTTo:            rec.AfterBTTo,
		AppliedRate:          rec.AppliedRate,
		SectorRateID:         rec.SectorRateID,
		TransitRoute:         rec.TransitRoute,
	}
}
