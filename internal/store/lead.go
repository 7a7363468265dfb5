package store

import (
	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/internal/model"
)

// LeadStore defines operations for the Lead model.
type LeadStore interface {
	Create(lead *model.Lead) error
	GetByID(id string) (*model.Lead, error)
	Delete(id string) error

	List(source string, page, pageSize int) ([]model.Lead, int64, error)
	ListByEmail(email string) ([]model.Lead, error)
	CountAll() (int64, error)
}

// leadStore implements LeadStore using GORM.
type leadStore struct {
	db *gorm.DB
}

func newLeadStore(db *gorm.DB) LeadStore {
	return &leadStore{db: db}
}

func (s *leadStore) Create(lead *model.Lead) error {
	return s.db.Create(lead).Error
}

func (s *leadStore) GetByID(id string) (*model.Lead, error) {
	var lead model.Lead
	err := s.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *leadStore) Delete(id string) error {
	return s.db.Delete(&model.Lead{}, "id = ?", id).Error
}

func (s *leadStore) List(source string, page, pageSize int) ([]model.Lead, int64, error) {
	var leads []model.Lead
	var total int64

	query := s.db.Model(&model.Lead{})
	if source != "" {
		query = query.Where("source = ?", source)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&leads).Error
	return leads, total, err
}

func (s *leadStore) ListByEmail(email string) ([]model.Lead, error) {
	var leads []model.Lead
	err := s.db.Where("email = ?", email).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (s *leadStore) CountAll() (int64, error) {
	var count int64
	err := s.db.Model(&model.Lead{}).Count(&count).Error
	return count, err
}
