package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 20)

	// IDs must be unique across calls.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestEntityIDs(t *testing.T) {
	assert.Len(t, NewReportID(), 20)
	assert.Len(t, NewTemplateID(), 20)
	assert.Len(t, NewBrandID(), 20)
	assert.Len(t, NewLeadID(), 20)
	assert.Len(t, NewRequestID(), 20)
}

func TestNewSecureSecret(t *testing.T) {
	for _, length := range []int{16, 32, 64} {
		secret := NewSecureSecret(length)
		assert.Len(t, secret, length)
	}
	assert.NotEqual(t, NewSecureSecret(32), NewSecureSecret(32))
}
