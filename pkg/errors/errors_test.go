package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(ErrCodeValidation, "invalid report type"),
			want: "[E1001] invalid report type",
		},
		{
			name: "with wrapped error",
			err:  Wrap(ErrCodeDBQuery, "failed to load template", errors.New("no such table")),
			want: "[E5002] failed to load template: no such table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := Wrap(ErrCodeExportFailed, "pdf export failed", inner)
	assert.ErrorIs(t, err, inner)
}

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeTemplateNotFound, http.StatusNotFound},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeRenderReportType, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeDeliveryFailed, http.StatusBadGateway},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeDBQuery, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "x").HTTPStatus())
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrNotFound("brand"))
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "brand not found", appErr.Message)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestWithDetails(t *testing.T) {
	err := ErrValidation("missing field").WithDetails(map[string]string{"field": "result_json"})
	assert.NotNil(t, err.Details)
}
