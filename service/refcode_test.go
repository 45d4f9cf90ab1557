package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCode_Format(t *testing.T) {
	code := NewCode(OrderCodePrefix)
	assert.True(t, ValidCode(code, OrderCodePrefix), code)

	parts := strings.Split(code, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "ORD", parts[0])
	assert.Equal(t, time.Now().UTC().Format("20060102"), parts[1])
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestValidCode_Rejects(t *testing.T) {
	assert.False(t, ValidCode("ORD-20260829-AB12CD34", TrackingCodePrefix))
	assert.False(t, ValidCode("ORD-2026-AB12CD34", OrderCodePrefix))
	assert.False(t, ValidCode("ORD-20260829-AB12", OrderCodePrefix))
	assert.False(t, ValidCode("", OrderCodePrefix))
}
