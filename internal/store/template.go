package store

import (
	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/internal/model"
)

// TemplateStore defines operations for the Template model.
type TemplateStore interface {
	Create(template *model.Template) error
	GetByID(id string) (*model.Template, error)
	GetDefaultByType(reportType string) (*model.Template, error)
	Update(template *model.Template) error
	Save(template *model.Template) error
	Delete(id string) error

	List(reportType string, page, pageSize int) ([]model.Template, int64, error)

	// SetDefault marks one template as the default for its report type and
	// clears the flag on every other template of that type.
	SetDefault(id string) error
}

// templateStore implements TemplateStore using GORM.
type templateStore struct {
	db *gorm.DB
}

func newTemplateStore(db *gorm.DB) TemplateStore {
	return &templateStore{db: db}
}

func (s *templateStore) Create(template *model.Template) error {
	return s.db.Create(template).Error
}

func (s *templateStore) GetByID(id string) (*model.Template, error) {
	var template model.Template
	err := s.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *templateStore) GetDefaultByType(reportType string) (*model.Template, error) {
	var template model.Template
	err := s.db.Where("report_type = ? AND is_default = ?", reportType, true).
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *templateStore) Update(template *model.Template) error {
	return s.db.Model(template).Updates(template).Error
}

func (s *templateStore) Save(template *model.Template) error {
	return s.db.Save(template).Error
}

func (s *templateStore) Delete(id string) error {
	return s.db.Delete(&model.Template{}, "id = ?", id).Error
}

func (s *templateStore) List(reportType string, page, pageSize int) ([]model.Template, int64, error) {
	var templates []model.Template
	var total int64

	query := s.db.Model(&model.Template{})
	if reportType != "" {
		query = query.Where("report_type = ?", reportType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&templates).Error
	return templates, total, err
}

func (s *templateStore) SetDefault(id string) error {
	template, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Template{}).
			Where("report_type = ? AND id <> ?", template.ReportType, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Template{}).
			Where("id = ?", id).
			Update("is_default", true).Error
	})
}
