package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/trendyreports/trendyreports/internal/model"
)

// ReportStore defines operations for the Report model.
type ReportStore interface {
	// Report CRUD
	Create(report *model.Report) error
	GetByID(id string) (*model.Report, error)
	Update(report *model.Report) error
	Save(report *model.Report) error
	Delete(id string) error

	// Report status updates
	UpdateStatus(id string, status model.ReportStatus) error
	UpdateStatusWithError(id string, status model.ReportStatus, errMsg string) error
	UpdateRendered(id string, html string, renderedAt time.Time, duration int64) error

	// Report queries
	List(status, reportType string, page, pageSize int) ([]model.Report, int64, error)
	ListByStatus(status model.ReportStatus) ([]model.Report, error)
	ListByCity(city string, limit, offset int) ([]model.Report, int64, error)
	GetLatestByCityAndType(city, reportType string) (*model.Report, error)
	GetDistinctCities() ([]string, error)
	CountAll() (int64, error)
}

// reportStore implements ReportStore using GORM.
type reportStore struct {
	db *gorm.DB
}

func newReportStore(db *gorm.DB) ReportStore {
	return &reportStore{db: db}
}

// Report CRUD implementations

func (s *reportStore) Create(report *model.Report) error {
	return s.db.Create(report).Error
}

func (s *reportStore) GetByID(id string) (*model.Report, error) {
	var report model.Report
	err := s.db.First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *reportStore) Update(report *model.Report) error {
	return s.db.Model(report).Updates(report).Error
}

func (s *reportStore) Save(report *model.Report) error {
	return s.db.Save(report).Error
}

func (s *reportStore) Delete(id string) error {
	return s.db.Delete(&model.Report{}, "id = ?", id).Error
}

// Report status updates

func (s *reportStore) UpdateStatus(id string, status model.ReportStatus) error {
	return s.db.Model(&model.Report{}).Where("id = ?", id).Update("status", status).Error
}

func (s *reportStore) UpdateStatusWithError(id string, status model.ReportStatus, errMsg string) error {
	return s.db.Model(&model.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        status,
		"error_message": errMsg,
	}).Error
}

// UpdateRendered stores the rendered HTML together with the render timing and
// flips the status to rendered in one write.
func (s *reportStore) UpdateRendered(id string, html string, renderedAt time.Time, duration int64) error {
	return s.db.Model(&model.Report{}).Where("id = ?", id).Updates(map[string]interface{}{
		"html":        html,
		"html_bytes":  len(html),
		"status":      model.ReportStatusRendered,
		"rendered_at": renderedAt,
		"duration":    duration,
	}).Error
}

// Report queries

// List lists reports with optional filters and pagination.
func (s *reportStore) List(status, reportType string, page, pageSize int) ([]model.Report, int64, error) {
	var reports []model.Report
	var total int64

	query := s.db.Model(&model.Report{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if reportType != "" {
		query = query.Where("report_type = ?", reportType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&reports).Error
	return reports, total, err
}

func (s *reportStore) ListByStatus(status model.ReportStatus) ([]model.Report, error) {
	var reports []model.Report
	err := s.db.Where("status = ?", status).Find(&reports).Error
	return reports, err
}

func (s *reportStore) ListByCity(city string, limit, offset int) ([]model.Report, int64, error) {
	var reports []model.Report
	var total int64

	query := s.db.Model(&model.Report{}).Where("city = ?", city)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error
	return reports, total, err
}

func (s *reportStore) GetLatestByCityAndType(city, reportType string) (*model.Report, error) {
	var report model.Report
	err := s.db.Where("city = ? AND report_type = ?", city, reportType).
		Order("created_at DESC").
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetDistinctCities returns a list of unique cities from all reports.
func (s *reportStore) GetDistinctCities() ([]string, error) {
	var cities []string
	err := s.db.Model(&model.Report{}).Distinct("city").Pluck("city", &cities).Error
	return cities, err
}

func (s *reportStore) CountAll() (int64, error) {
	var count int64
	err := s.db.Model(&model.Report{}).Count(&count).Error
	return count, err
}
