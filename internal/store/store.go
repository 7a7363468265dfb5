// Package store provides data access layer interfaces and implementations.
// This package abstracts database operations to improve maintainability
// and decouple business logic from specific database implementations.
package store

import "gorm.io/gorm"

// Store aggregates all data store interfaces.
// It provides a single point of access for all database operations.
type Store interface {
	Report() ReportStore
	Template() TemplateStore
	Brand() BrandStore
	Lead() LeadStore

	// DB returns the underlying database connection for advanced operations.
	// Use sparingly - prefer using specific store methods.
	DB() *gorm.DB

	// Transaction executes operations within a database transaction.
	Transaction(fn func(Store) error) error
}

// gormStore implements Store interface using GORM.
type gormStore struct {
	db            *gorm.DB
	reportStore   ReportStore
	templateStore TemplateStore
	brandStore    BrandStore
	leadStore     LeadStore
}

// NewStore creates a new Store instance with GORM backend.
func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:            db,
		reportStore:   newReportStore(db),
		templateStore: newTemplateStore(db),
		brandStore:    newBrandStore(db),
		leadStore:     newLeadStore(db),
	}
}

func (s *gormStore) Report() ReportStore {
	return s.reportStore
}

func (s *gormStore) Template() TemplateStore {
	return s.templateStore
}

func (s *gormStore) Brand() BrandStore {
	return s.brandStore
}

func (s *gormStore) Lead() LeadStore {
	return s.leadStore
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txStore := &gormStore{
			db:            tx,
			reportStore:   newReportStore(tx),
			templateStore: newTemplateStore(tx),
			brandStore:    newBrandStore(tx),
			leadStore:     newLeadStore(tx),
		}
		return fn(txStore)
	})
}
