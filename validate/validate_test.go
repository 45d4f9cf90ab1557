package validate

import (
	"strings"
	"testing"

	"github.com/kcmvp/commerce/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_StopsAtFirstFailure(t *testing.T) {
	ran := false
	err := All(
		Required("name", ""),
		func() error { ran = true; return nil },
	)
	require.Error(t, err)
	assert.True(t, fault.IsInvalidArgument(err))
	assert.False(t, ran, "rules after a failure must not run")
}

func TestAll_NoRules(t *testing.T) {
	require.NoError(t, All())
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("name", "Electronics")())
	assert.Error(t, Required("name", "")())
	assert.Error(t, Required("name", "   ")())
	assert.ErrorIs(t, Required("name", "")(), fault.ErrInvalidArgument)
	assert.Contains(t, Required("carrier name", "")().Error(), "carrier name is required")
}

func TestMaxLen(t *testing.T) {
	assert.NoError(t, MaxLen("name", strings.Repeat("a", 200), 200)())
	assert.Error(t, MaxLen("name", strings.Repeat("a", 201), 200)())
	assert.NoError(t, MaxLen("name", "", 200)())
}

func TestMaxLen_CountsRunesNotBytes(t *testing.T) {
	// Ten three-byte characters are ten characters, not thirty.
	value := strings.Repeat("日", 10)
	assert.NoError(t, MaxLen("name", value, 10)())
	assert.Error(t, MaxLen("name", value, 9)())
}

func TestPositiveID(t *testing.T) {
	assert.NoError(t, PositiveID("categoryId", 1)())
	assert.Error(t, PositiveID("categoryId", 0)())
	assert.Error(t, PositiveID("categoryId", -5)())
}

func TestPositive(t *testing.T) {
	assert.NoError(t, Positive("amount", 0.01)())
	assert.Error(t, Positive("amount", 0.0)())
	assert.Error(t, Positive("amount", -10.0)())
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative("quantity", 0)())
	assert.NoError(t, NonNegative("price", 19.99)())
	assert.Error(t, NonNegative("quantity", -1)())
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("contactEmail", "")(), "blank optional email passes")
	assert.NoError(t, Email("contactEmail", "ops@example.com")())
	assert.Error(t, Email("contactEmail", "not-an-email")())
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf("status", "Pending", "Pending", "Shipped")())
	err := OneOf("status", "Unknown", "Pending", "Shipped")()
	require.Error(t, err)
	assert.True(t, fault.IsInvalidArgument(err))
}

func TestMatch(t *testing.T) {
	assert.NoError(t, Match("orderNumber", "ORD-20260829-AB12CD34", "ORD-????????-????????")())
	assert.Error(t, Match("orderNumber", "ORD-XYZ", "ORD-????????-????????")())
}
