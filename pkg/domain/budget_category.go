package domain

// BudgetCategory buckets a proposal's budget ceiling for reporting and
// routing. Thresholds are exclusive lower bounds on the ceiling: a ceiling
// of exactly 100,000 is Premium, not Enterprise.
type BudgetCategory string

const (
	BudgetUnspecified BudgetCategory = "UNSPECIFIED"
	BudgetEnterprise  BudgetCategory = "ENTERPRISE"
	BudgetPremium     BudgetCategory = "PREMIUM"
	BudgetStandard    BudgetCategory = "STANDARD"
	BudgetBasic       BudgetCategory = "BASIC"
)

// validBudgetCategories is the single source of truth for category values.
var validBudgetCategories = map[BudgetCategory]bool{
	BudgetUnspecified: true,
	BudgetEnterprise:  true,
	BudgetPremium:     true,
	BudgetStandard:    true,
	BudgetBasic:       true,
}

// IsValid checks if the category is one of the supported enum values.
func (c BudgetCategory) IsValid() bool {
	return validBudgetCategories[c]
}

// String returns the string representation of the category.
func (c BudgetCategory) String() string {
	return string(c)
}
