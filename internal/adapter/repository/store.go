// Package repository implements the registry and record stores on a SQL
// database through gorm. Registry reads are wrapped with retry so a briefly
// locked database does not surface as an empty registry.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adityaldip/cargo-pricing/internal/domain"
	"github.com/adityaldip/cargo-pricing/internal/infrastructure/retry"
)

// Store provides access to the registry tables and the cargo-record working
// set backed by a gorm database handle.
type Store struct {
	db *gorm.DB
}

// Open opens a SQLite database at the given DSN and returns a Store.
// Use ":memory:" for an in-memory database.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return New(db), nil
}

// New wraps an existing gorm handle in a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the schema for all tables the store manages.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&AirportCodeRow{},
		&FlightRow{},
		&SectorRateRow{},
		&TransitRateRow{},
		&CustomerRow{},
		&CargoRecordRow{},
	)
}

// DB exposes the underlying gorm handle for seeding and tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Snapshot reads all registry tables into one consistent value. Reads run
// inside a single transaction and are retried on transient failure; a final
// failure is reported as ErrRegistryUnavailable.
func (s *Store) Snapshot(ctx context.Context) (domain.RegistrySnapshot, error) {
	snap, err := retry.DoWithResult(ctx, func() (domain.RegistrySnapshot, error) {
		return s.readSnapshot(ctx)
	}, retry.StoreConfig)
	if err != nil {
		return domain.RegistrySnapshot{}, domain.NewRegistryError(err)
	}
	return snap, nil
}

func (s *Store) readSnapshot(ctx context.Context) (domain.RegistrySnapshot, error) {
	var snap domain.RegistrySnapshot

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var airports []AirportCodeRow
		if err := tx.Find(&airports).Error; err != nil {
			return fmt.Errorf("load airport codes: %w", err)
		}

		var flights []FlightRow
		if err := tx.Find(&flights).Error; err != nil {
			return fmt.Errorf("load flights: %w", err)
		}

		var sectorRates []SectorRateRow
		if err := tx.Find(&sectorRates).Error; err != nil {
			return fmt.Errorf("load sector rates: %w", err)
		}

		var transitRates []TransitRateRow
		if err := tx.Find(&transitRates).Error; err != nil {
			return fmt.Errorf("load transit rates: %w", err)
		}

		var customers []CustomerRow
		if err := tx.Find(&customers).Error; err != nil {
			return fmt.Errorf("load customers: %w", err)
		}

		snap.Airports = make([]domain.AirportCode, len(airports))
		for i, r := range airports {
			snap.Airports[i] = r.toDomain()
		}
		snap.Flights = make([]domain.Flight, len(flights))
		for i, r := range flights {
			snap.Flights[i] = r.toDomain()
		}
		snap.SectorRates = make([]domain.SectorRate, len(sectorRates))
		for i, r := range sectorRates {
			snap.SectorRates[i] = r.toDomain()
		}
		snap.TransitRates = make([]domain.TransitRate, len(transitRates))
		for i, r := range transitRates {
			snap.TransitRates[i] = r.toDomain()
		}
		snap.Customers = make([]domain.Customer, len(customers))
		for i, r := range customers {
			snap.Customers[i] = r.toDomain()
		}
		return nil
	})
	if err != nil {
		return domain.RegistrySnapshot{}, err
	}
	return snap, nil
}

// CreateRecords stores freshly uploaded cargo records.
func (s *Store) CreateRecords(ctx context.Context, records []domain.CargoRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]CargoRecordRow, len(records))
	for i, rec := range records {
		rows[i] = recordRowFromDomain(rec)
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("create cargo records: %w", err)
	}
	return nil
}

// ListRecords returns the full cargo-record working set.
func (s *Store) ListRecords(ctx context.Context) ([]domain.CargoRecord, error) {
	var rows []CargoRecordRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cargo records: %w", err)
	}
	records := make([]domain.CargoRecord, len(rows))
	for i, r := range rows {
		records[i] = r.toDomain()
	}
	return records, nil
}

// RecordByID returns one cargo record, or ErrRecordNotFound.
func (s *Store) RecordByID(ctx context.Context, id string) (domain.CargoRecord, error) {
	var row CargoRecordRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CargoRecord{}, domain.ErrRecordNotFound
		}
		return domain.CargoRecord{}, fmt.Errorf("load cargo record %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// SaveConversion persists the override fields and marks the record converted.
func (s *Store) SaveConversion(ctx context.Context, id string, override domain.ConversionOverride) error {
	updates := map[string]interface{}{
		"is_converted":          true,
		"converted_origin":      override.Origin,
		"converted_destination": override.Destination,
		"before_bt_from":        override.BeforeBTFrom,
		"before_bt_to":          override.BeforeBTTo,
		"after_bt_from":         override.AfterBTFrom,
		"after_bt_to":           override.AfterBTTo,
		"applied_rate":          override.AppliedRate,
		"sector_rate_id":        override.SectorRateID,
	}
	result := s.db.WithContext(ctx).Model(&CargoRecordRow{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("save conversion for record %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// SaveRateSelection persists the chosen transit rate and route variant.
func (s *Store) SaveRateSelection(ctx context.Context, id string, sectorRateID int64, transitRoute string) error {
	updates := map[string]interface{}{
		"sector_rate_id": sectorRateID,
		"transit_route":  transitRoute,
	}
	result := s.db.WithContext(ctx).Model(&CargoRecordRow{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("save rate selection for record %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Seed inserts registry rows, replacing existing ones with the same primary
// key. Intended for bootstrap and tests.
func (s *Store) Seed(ctx context.Context, snap domain.RegistrySnapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, a := range snap.Airports {
			row := AirportCodeRow{ID: a.ID, Code: a.Code, IsActive: a.IsActive, IsEU: a.IsEU}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		for _, f := range snap.Flights {
			row := FlightRow{ID: f.ID, FlightNumber: f.FlightNumber, Origin: f.Origin, Destination: f.Destination, IsActive: f.IsActive}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		for _, r := range snap.SectorRates {
			row := SectorRateRow{ID: r.ID, Origin: r.Origin, Destination: r.Destination, Rate: r.Rate, IsActive: r.IsActive}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		for _, r := range snap.TransitRates {
			row := TransitRateRow{
				ID:             r.ID,
				Label:          r.Label,
				Origin:         r.Origin,
				Destination:    r.Destination,
				Rate:           r.Rate,
				TransitRoutes:  r.TransitRoutes,
				TransitPrices:  r.TransitPrices,
				SelectedRoutes: r.SelectedRoutes,
				CustomerID:     r.CustomerID,
				Status:         r.Status,
			}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		for _, c := range snap.Customers {
			row := CustomerRow{ID: c.ID, Name: c.Name, IsActive: c.IsActive}
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var (
	_ domain.RegistryStore = (*Store)(nil)
	_ domain.RecordStore   = (*Store)(nil)
)
