package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stock-migrator/core/pos"
)

func TestNewMobileNormalizesToE164(t *testing.T) {
	mobile := pos.NewMobile("021 123 4567")

	assert.Equal(t, "NZ", mobile.RegionCode)
	assert.Equal(t, "+64211234567", mobile.Number)
}

func TestNewMobileKeepsUnparseableInput(t *testing.T) {
	mobile := pos.NewMobile("ask at the counter")

	assert.Empty(t, mobile.RegionCode)
	assert.Equal(t, "ask at the counter", mobile.Number)
}

func TestNewMobileEmpty(t *testing.T) {
	assert.Equal(t, pos.MobileNumber{}, pos.NewMobile("  "))
}

func TestNewEmailSplitsOnAt(t *testing.T) {
	email := pos.NewEmail("jan@example.com")

	assert.Equal(t, "jan", email.Root)
	assert.Equal(t, "example.com", email.Domain)
	assert.Equal(t, "jan@example.com", email.Full)
}

func TestNewEmailMalformedKeepsFull(t *testing.T) {
	email := pos.NewEmail("not-an-email")

	assert.Empty(t, email.Root)
	assert.Empty(t, email.Domain)
	assert.Equal(t, "not-an-email", email.Full)
}
