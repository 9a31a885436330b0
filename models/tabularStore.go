package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormStore adapts a gorm connection to the tabular-store port the
// ingestion pipeline is written against. The pipeline never touches gorm
// directly, which keeps it swappable for an in-memory fake in tests.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func modelForTable(table string) (interface{}, error) {
	switch table {
	case Estoque{}.TableName():
		return &Estoque{}, nil
	case Demanda{}.TableName():
		return &Demanda{}, nil
	case HistoricoUpload{}.TableName():
		return &HistoricoUpload{}, nil
	}
	return nil, fmt.Errorf("unknown table %q", table)
}

func (s *GormStore) InsertRows(ctx context.Context, table string, rows interface{}) error {
	return s.db.WithContext(ctx).Table(table).Create(rows).Error
}

func (s *GormStore) DeleteRows(ctx context.Context, table string, filter map[string]interface{}) error {
	model, err := modelForTable(table)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Table(table).Where(filter).Delete(model).Error
}

func (s *GormStore) CountRows(ctx context.Context, table string, filter map[string]interface{}) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Table(table).Where(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) CreateJob(ctx context.Context, job *HistoricoUpload) error {
	return s.db.WithContext(ctx).Create(job).Error
}

func (s *GormStore) UpdateJob(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&HistoricoUpload{}).Where("id = ?", id).Updates(fields).Error
}

// ListUploads returns the newest upload jobs for the history endpoint.
func (s *GormStore) ListUploads(ctx context.Context, limit int) ([]HistoricoUpload, error) {
	if limit <= 0 {
		limit = 50
	}
	var uploads []HistoricoUpload
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&uploads).Error
	if err != nil {
		return nil, err
	}
	return uploads, nil
}
