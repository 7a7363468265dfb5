package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		v    *float64
		want string
	}{
		{"nil", nil, "—"},
		{"nan", fp(math.NaN()), "—"},
		{"positive infinity", fp(math.Inf(1)), "—"},
		{"zero", fp(0), "$0"},
		{"grouped", fp(825000), "$825,000"},
		{"rounded up", fp(824999.6), "$825,000"},
		{"millions", fp(1215000), "$1,215,000"},
		{"negative", fp(-1250), "$-1,250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.v))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "—", FormatNumber(nil))
	assert.Equal(t, "—", FormatNumber(fp(math.NaN())))
	assert.Equal(t, "0", FormatNumber(fp(0)))
	assert.Equal(t, "2,850", FormatNumber(fp(2850)))
	assert.Equal(t, "24", FormatNumber(fp(24.4)))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "—", FormatDecimal(nil, 1))
	assert.Equal(t, "18.5", FormatDecimal(fp(18.5), 1))
	assert.Equal(t, "18.46", FormatDecimal(fp(18.456), 2))
	assert.Equal(t, "2.0", FormatDecimal(fp(2), 1))
	// No thousands separator in fixed-point output.
	assert.Equal(t, "1250.0", FormatDecimal(fp(1250), 1))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "—", FormatPercent(nil))
	assert.Equal(t, "98.3", FormatPercent(fp(98.31)))
	// The helper appends no % sign; callers add context.
	assert.NotContains(t, FormatPercent(fp(50)), "%")
}
