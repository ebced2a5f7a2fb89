package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"arrivals-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	SaveReport(ctx context.Context, report *model.Report, guests []model.Guest) error
	ListReports(ctx context.Context) ([]model.Report, error)
	GetReport(ctx context.Context, id string) (*model.Report, error)
	ListGuests(ctx context.Context, reportID string) ([]model.Guest, error)
	DeleteReport(ctx context.Context, id string) error
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for handlers and workers.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// SaveReport persists a report and its guest records in one transaction.
// Guest rows are inserted in record order so that listing by primary key
// preserves tag order.
func (s *gormStore) SaveReport(ctx context.Context, report *model.Report, guests []model.Guest) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return fmt.Errorf("failed to create report %s: %w", report.ID, err)
		}
		if len(guests) == 0 {
			return nil
		}
		for i := range guests {
			guests[i].ReportID = report.ID
		}
		if err := tx.CreateInBatches(guests, 200).Error; err != nil {
			return fmt.Errorf("failed to create guest records for report %s: %w", report.ID, err)
		}
		return nil
	})
}

// ListReports returns all reports, newest first.
func (s *gormStore) ListReports(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport returns one report by id, or gorm.ErrRecordNotFound.
func (s *gormStore) GetReport(ctx context.Context, id string) (*model.Report, error) {
	var report model.Report
	if err := s.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListGuests returns a report's guest records in tag order.
func (s *gormStore) ListGuests(ctx context.Context, reportID string) ([]model.Guest, error) {
	var guests []model.Guest
	if err := s.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("id ASC").
		Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

// DeleteReport removes a report and all of its guest records.
func (s *gormStore) DeleteReport(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).Delete(&model.Guest{}).Error; err != nil {
			return fmt.Errorf("failed to delete guest records for report %s: %w", id, err)
		}
		res := tx.Delete(&model.Report{ID: id})
		if res.Error != nil {
			return fmt.Errorf("failed to delete report %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
