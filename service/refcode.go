package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/match"
)

// Reference-code prefixes.
const (
	OrderCodePrefix    = "ORD"
	TrackingCodePrefix = "TRK"
)

// NewCode builds a human-readable reference code: the prefix, the current UTC
// date and an 8-character uppercase random token, e.g. ORD-20260829-4F2A9C1B.
// Codes are not guaranteed globally unique; callers treat them as labels, not
// keys.
func NewCode(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), token)
}

// ValidCode reports whether code has the shape NewCode produces for prefix.
func ValidCode(code, prefix string) bool {
	return match.Match(code, prefix+"-????????-????????")
}
