package store

import (
	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/internal/model"
)

// BrandStore defines operations for the Brand model.
type BrandStore interface {
	Create(brand *model.Brand) error
	GetByID(id string) (*model.Brand, error)
	Update(brand *model.Brand) error
	Save(brand *model.Brand) error
	Delete(id string) error

	List(page, pageSize int) ([]model.Brand, int64, error)
}

// brandStore implements BrandStore using GORM.
type brandStore struct {
	db *gorm.DB
}

func newBrandStore(db *gorm.DB) BrandStore {
	return &brandStore{db: db}
}

func (s *brandStore) Create(brand *model.Brand) error {
	return s.db.Create(brand).Error
}

func (s *brandStore) GetByID(id string) (*model.Brand, error) {
	var brand model.Brand
	err := s.db.First(&brand, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (s *brandStore) Update(brand *model.Brand) error {
	return s.db.Model(brand).Updates(brand).Error
}

func (s *brandStore) Save(brand *model.Brand) error {
	return s.db.Save(brand).Error
}

func (s *brandStore) Delete(id string) error {
	return s.db.Delete(&model.Brand{}, "id = ?", id).Error
}

func (s *brandStore) List(page, pageSize int) ([]model.Brand, int64, error) {
	var brands []model.Brand
	var total int64

	query := s.db.Model(&model.Brand{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&brands).Error
	return brands, total, err
}
