package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/internal/model"
)

func TestLeadStore_CreateAndGet(t *testing.T) {
	store, cleanup := SetupTestDB(t)
	defer cleanup()

	lead := CreateTestLead(t, store, func(l *model.Lead) {
		l.Phone = "(555) 210-8899"
		l.PropertyAddress = "412 Juniper Hollow Dr"
		l.Message = "Interested in a valuation"
	})

	got, err := store.Lead().GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Avery", got.Name)
	assert.Equal(t, "jordan.avery@example.com", got.Email)
	assert.Equal(t, "412 Juniper Hollow Dr", got.PropertyAddress)
}

func TestLeadStore_ListBySource(t *testing.T) {
	store, cleanup := SetupTestDB(t)
	defer cleanup()

	CreateTestLead(t, store)
	CreateTestLead(t, store)
	CreateTestLead(t, store, func(l *model.Lead) { l.Source = "lakeside-landing" })

	leads, total, err := store.Lead().List("crestwood-falls-landing", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, leads, 2)

	all, total, err := store.Lead().List("", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

func TestLeadStore_ListByEmail(t *testing.T) {
	store, cleanup := SetupTestDB(t)
	defer cleanup()

	CreateTestLead(t, store)
	CreateTestLead(t, store, func(l *model.Lead) { l.Email = "sam.reyes@example.com" })

	leads, err := store.Lead().ListByEmail("jordan.avery@example.com")
	require.NoError(t, err)
	assert.Len(t, leads, 1)

	count, err := store.Lead().CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
