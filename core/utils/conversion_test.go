package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("1,234.50")
	assert.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1234.50")))

	_, err = ParseDecimal("4.5kg")
	assert.Error(t, err)

	_, err = ParseDecimal("")
	assert.Error(t, err)
}

func TestToDecimal(t *testing.T) {
	fallback := decimal.NewFromInt(7)
	assert.True(t, ToDecimal("3", fallback).Equal(decimal.NewFromInt(3)))
	assert.True(t, ToDecimal("", fallback).Equal(fallback))
	assert.True(t, ToDecimal("n/a", fallback).Equal(fallback))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("yes"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(""))
}

func TestToTime(t *testing.T) {
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	got := ToTime("2023-04-05 13:00:00 +1300", fallback)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.April, got.Month())

	got = ToTime("2023-04-05", fallback)
	assert.Equal(t, 5, got.Day())

	assert.Equal(t, fallback, ToTime("not a date", fallback))
	assert.Equal(t, fallback, ToTime("", fallback))
}
