// Package validate provides the field-rule building blocks shared by every
// entity service. A service composes entity-specific rules and runs them
// through All before touching a store, so a failing rule never mutates state.
package validate

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/kcmvp/commerce/fault"
	"github.com/samber/lo"
	"github.com/tidwall/match"
)

// Number covers every numeric field type the entities use.
type Number interface {
	int | int8 | int16 | int32 | int64 | float32 | float64
}

// Rule is one deferred field check. Rules report failures as
// fault.ErrInvalidArgument so the HTTP boundary maps them to 400.
type Rule func() error

// All runs rules in order and returns the first failure.
func All(rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

// Required validates that a string is non-blank.
func Required(field, value string) Rule {
	return func() error {
		return lo.Ternary(strings.TrimSpace(value) == "", fault.InvalidArgf("%s is required", field), nil)
	}
}

// MaxLen validates that a string does not exceed max characters. Length is
// counted in runes, not bytes. Blank values pass; pair with Required when the
// field is mandatory.
func MaxLen(field, value string, max int) Rule {
	return func() error {
		return lo.Ternary(utf8.RuneCountInString(value) > max, fault.InvalidArgf("%s cannot exceed %d characters", field, max), nil)
	}
}

// PositiveID validates a foreign-key or surrogate-key value.
func PositiveID(field string, id int) Rule {
	return func() error {
		return lo.Ternary(id <= 0, fault.InvalidArgf("%s must be greater than 0", field), nil)
	}
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Number](field string, value T) Rule {
	return func() error {
		return lo.Ternary(value <= 0, fault.InvalidArgf("%s must be greater than 0", field), nil)
	}
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[T Number](field string, value T) Rule {
	return func() error {
		return lo.Ternary(value < 0, fault.InvalidArgf("%s cannot be negative", field), nil)
	}
}

// Email validates an email address. Blank values pass; pair with Required
// when the address is mandatory.
func Email(field, value string) Rule {
	return func() error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		_, err := mail.ParseAddress(value)
		return lo.Ternary(err != nil, fault.InvalidArgf("%s is not a valid email address", field), nil)
	}
}

// OneOf validates that a value is one of the allowed values.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return func() error {
		return lo.Ternary(!lo.Contains(allowed, value), fault.InvalidArgf("%s must be one of %v", field, allowed), nil)
	}
}

// Match validates a string against a wildcard pattern where `?` stands for
// one character and `*` for any run of characters.
func Match(field, value, pattern string) Rule {
	lo.Assertf(match.IsPattern(pattern), "invalid pattern `%s`", pattern)
	return func() error {
		return lo.Ternary(!match.Match(value, pattern), fault.InvalidArgf("%s does not match pattern %s", field, pattern), nil)
	}
}
