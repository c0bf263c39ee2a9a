package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "€770.00", FormatEuro(decimal.RequireFromString("770")))
	assert.Equal(t, "€0.00", FormatEuro(decimal.Zero))
	assert.Equal(t, "€12.50", FormatEuro(decimal.RequireFromString("12.5")))
	assert.Equal(t, "€12.35", FormatEuro(decimal.RequireFromString("12.345")))
}
