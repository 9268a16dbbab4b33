package domain

import "strings"

// CompanySize is the self-reported size band of a proposal client.
//
// The inbound feed carries this as free text by convention ("SMALL",
// "MEDIUM", "LARGE"); validation deliberately does not enforce the
// allowlist, so scoring treats unrecognized values as no-signal rather
// than rejecting the proposal.
type CompanySize string

const (
	CompanySizeSmall  CompanySize = "SMALL"
	CompanySizeMedium CompanySize = "MEDIUM"
	CompanySizeLarge  CompanySize = "LARGE"
)

// EqualsFold compares a raw company-size string against this band,
// case-insensitively. Use this at rule sites instead of casting raw input.
func (c CompanySize) EqualsFold(raw string) bool {
	return strings.EqualFold(string(c), raw)
}

// String returns the string representation of the size band.
func (c CompanySize) String() string {
	return string(c)
}
