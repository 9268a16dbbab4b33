package models

import (
	"fmt"
	"strconv"

	dErrors "proposalbridge/pkg/domain-errors"
)

// BudgetRange is the monetary range attached to a proposal. It is a value
// object: immutable after construction, equality by value, no identity.
//
// Invariants (enforced by Validate):
//   - neither bound may be negative
//   - when both bounds are present, Min <= Max
//
// A nil bound means "unknown", not zero. Derived computations skip unknown
// bounds instead of erroring; only Validate reports violations.
type BudgetRange struct {
	Min      *int   `json:"min"`
	Max      *int   `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// Validate checks the range invariants. Returns CodeInvariantViolation with
// the first violated rule; nil when the range is well-formed. Note that a
// range with both bounds absent passes Validate but fails IsValid.
func (b *BudgetRange) Validate() error {
	if b.Min != nil && b.Max != nil && *b.Min > *b.Max {
		return dErrors.New(dErrors.CodeInvariantViolation, "budget min cannot be greater than max")
	}
	if b.Min != nil && *b.Min < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "budget min cannot be negative")
	}
	if b.Max != nil && *b.Max < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "budget max cannot be negative")
	}
	return nil
}

// IsValid reports whether the range is usable: at least one bound present,
// no negative bound, and Min <= Max when both are present. This is the
// boolean sibling of Validate and additionally rejects the all-unknown range.
func (b *BudgetRange) IsValid() bool {
	return (b.Min != nil || b.Max != nil) &&
		(b.Min == nil || *b.Min >= 0) &&
		(b.Max == nil || *b.Max >= 0) &&
		(b.Min == nil || b.Max == nil || *b.Min <= *b.Max)
}

// Average estimates the midpoint of the range with integer truncation.
// With only a ceiling known it returns half the ceiling; with only a floor
// known it returns the floor itself. The asymmetry biases toward a
// conservative estimate when only an upper bound exists. Returns nil when
// both bounds are unknown.
func (b *BudgetRange) Average() *int {
	switch {
	case b.Min != nil && b.Max != nil:
		avg := (*b.Min + *b.Max) / 2
		return &avg
	case b.Max != nil:
		half := *b.Max / 2
		return &half
	case b.Min != nil:
		v := *b.Min
		return &v
	default:
		return nil
	}
}

// FormatForDisplay renders the range for humans. Pure formatting: no
// validation, unknown bounds collapse to the shapes below. Currency falls
// back to USD for display only.
func (b *BudgetRange) FormatForDisplay() string {
	currency := b.Currency
	if currency == "" {
		currency = "USD"
	}
	switch {
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("%s %s - %s", currency, groupDigits(*b.Min), groupDigits(*b.Max))
	case b.Max != nil:
		return fmt.Sprintf("%s up to %s", currency, groupDigits(*b.Max))
	case b.Min != nil:
		return fmt.Sprintf("%s from %s", currency, groupDigits(*b.Min))
	default:
		return "Budget not specified"
	}
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
