package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stock-migrator/core/pos"
	"stock-migrator/feature/ingest/formats"
)

// MigrationRun is the persisted summary of one completed run.
type MigrationRun struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Source       string    `gorm:"size:255"`
	Stores       int       `gorm:"not null"`
	Kiosks       int       `gorm:"not null"`
	Products     int       `gorm:"not null"`
	Customers    int       `gorm:"not null"`
	Transactions int       `gorm:"not null"`
	StartedAt    time.Time `gorm:"not null"`
	FinishedAt   time.Time `gorm:"not null"`
}

// MigrationRecord is one migrated entity, stored as its serialized payload so
// a run can be audited or replayed without the source files.
type MigrationRecord struct {
	ID       string `gorm:"primaryKey;size:36"`
	RunID    string `gorm:"index;size:36;not null"`
	Entity   string `gorm:"size:16;not null"`
	EntityID string `gorm:"size:64;not null"`
	Payload  string `gorm:"type:longtext"`
}

// SaveRun records a finished run's summary and every migrated entity. It is a
// no-op without a database handle so dry runs and storage-less deployments
// work unchanged.
func (s *Service) SaveRun(ctx context.Context, source string, agg *pos.Aggregate, report *Report) error {
	if s.db == nil {
		return nil
	}

	if err := s.db.WithContext(ctx).AutoMigrate(&MigrationRun{}, &MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to migrate run tables: %w", err)
	}

	run := MigrationRun{
		ID:           uuid.NewString(),
		Source:       source,
		Stores:       report.Counts["stores"],
		Kiosks:       report.Counts["kiosks"],
		Products:     report.Counts["products"],
		Customers:    report.Counts["customers"],
		Transactions: report.Counts["transactions"],
		StartedAt:    report.StartedAt,
		FinishedAt:   report.FinishedAt,
	}

	records := entityRecords(run.ID, agg)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			if err := tx.CreateInBatches(records, 500).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to persist run: %w", err)
	}
	return nil
}

// entityRecords flattens the aggregate into payload rows for one run.
func entityRecords(runID string, agg *pos.Aggregate) []MigrationRecord {
	var records []MigrationRecord

	add := func(entity formats.EntityType, entityID string, v any) {
		payload, err := json.Marshal(v)
		if err != nil {
			return
		}
		records = append(records, MigrationRecord{
			ID:       uuid.NewString(),
			RunID:    runID,
			Entity:   string(entity),
			EntityID: entityID,
			Payload:  string(payload),
		})
	}

	for i := range agg.Stores {
		add(formats.EntityStore, agg.Stores[i].ID, agg.Stores[i])
	}
	for i := range agg.Kiosks {
		add(formats.EntityKiosk, agg.Kiosks[i].ID, agg.Kiosks[i])
	}
	for i := range agg.Products {
		add(formats.EntityProduct, agg.Products[i].ID, agg.Products[i])
	}
	for i := range agg.Customers {
		add(formats.EntityCustomer, agg.Customers[i].ID, agg.Customers[i])
	}
	for i := range agg.Transactions {
		add(formats.EntityTransaction, agg.Transactions[i].ID, agg.Transactions[i])
	}

	return records
}

// RecentRuns returns the most recent persisted run summaries, newest first.
func (s *Service) RecentRuns(ctx context.Context, limit int) ([]MigrationRun, error) {
	if s.db == nil {
		return nil, fmt.Errorf("no database configured")
	}

	var runs []MigrationRun
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}
	return runs, nil
}
