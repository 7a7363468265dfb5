package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/pkg/errors"
)

func TestValidatePassword(t *testing.T) {
	req := DefaultPasswordRequirements()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!pass", false},
		{"too short", "S1!a", true},
		{"no uppercase", "str0ng!pass", true},
		{"no lowercase", "STR0NG!PASS", true},
		{"no digit", "Strong!pass", true},
		{"no special", "Str0ngpass1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAdminConfig(t *testing.T) {
	// Disabled admin needs no validation
	assert.Nil(t, ValidateAdminConfig(nil))
	assert.Nil(t, ValidateAdminConfig(&AdminConfig{Enabled: false}))

	longSecret := strings.Repeat("s", MinJWTSecretLength)

	err := ValidateAdminConfig(&AdminConfig{Enabled: true, Username: "", JWTSecret: longSecret})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrCodeAdminCredentialsEmpty, err.Code)

	err = ValidateAdminConfig(&AdminConfig{Enabled: true, Username: "admin", JWTSecret: ""})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrCodeJWTSecretInvalid, err.Code)

	err = ValidateAdminConfig(&AdminConfig{Enabled: true, Username: "admin", JWTSecret: "short"})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrCodeJWTSecretInvalid, err.Code)

	assert.Nil(t, ValidateAdminConfig(&AdminConfig{Enabled: true, Username: "admin", JWTSecret: longSecret}))
}

func TestIsValidBcryptHash(t *testing.T) {
	assert.True(t, IsValidBcryptHash("$2a$10$"+strings.Repeat("x", 53)))
	assert.True(t, IsValidBcryptHash("$2b$12$"+strings.Repeat("x", 53)))
	assert.False(t, IsValidBcryptHash("plaintext"))
	assert.False(t, IsValidBcryptHash("$2a$10$short"))
	assert.False(t, IsValidBcryptHash("$9z$10$"+strings.Repeat("x", 53)))
}
