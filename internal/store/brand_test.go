package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/internal/model"
)

func TestBrandStore_CreateAndGet(t *testing.T) {
	store, cleanup := SetupTestDB(t)
	defer cleanup()

	brand := CreateTestBrand(t, store, func(b *model.Brand) {
		b.LogoURL = "https://cdn.acmetitle.example/logo.png"
		b.ContactLine1 = "(555) 010-2030"
		b.WebsiteURL = "acmetitle.example"
	})

	got, err := store.Brand().GetByID(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACME Title", got.DisplayName)
	assert.Equal(t, "#123456", got.PrimaryColor)
	assert.Equal(t, "https://cdn.acmetitle.example/logo.png", got.LogoURL)
}

func TestBrandStore_UpdateAndList(t *testing.T) {
	store, cleanup := SetupTestDB(t)
	defer cleanup()

	brand := CreateTestBrand(t, store)
	CreateTestBrand(t, store, func(b *model.Brand) { b.DisplayName = "Lakeside Realty" })

	brand.AccentColor = "#00AA55"
	require.NoError(t, store.Brand().Save(brand))

	got, err := store.Brand().GetByID(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "#00AA55", got.AccentColor)

	brands, total, err := store.Brand().List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, brands, 2)
}

func TestBrandStore_Delete(t *testing.T) {
	store, cleanup := SetupTestDB(t)
	defer cleanup()

	brand := CreateTestBrand(t, store)
	require.NoError(t, store.Brand().Delete(brand.ID))

	_, err := store.Brand().GetByID(brand.ID)
	assert.Error(t, err)
}
