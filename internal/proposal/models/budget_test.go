package models

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "proposalbridge/pkg/domain-errors"
)

func intPtr(n int) *int {
	return &n
}

type BudgetRangeSuite struct {
	suite.Suite
}

func TestBudgetRangeSuite(t *testing.T) {
	suite.Run(t, new(BudgetRangeSuite))
}

// =============================================================================
// Validate Tests
// =============================================================================

func (s *BudgetRangeSuite) TestValidate() {
	s.Run("both bounds present and ordered passes", func() {
		b := &BudgetRange{Min: intPtr(1_000), Max: intPtr(5_000)}
		s.NoError(b.Validate())
	})

	s.Run("min greater than max fails", func() {
		b := &BudgetRange{Min: intPtr(5_000), Max: intPtr(1_000)}
		err := b.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		s.Contains(err.Error(), "greater than max")
	})

	s.Run("negative min fails", func() {
		b := &BudgetRange{Min: intPtr(-5), Max: intPtr(10)}
		err := b.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		s.Contains(err.Error(), "min cannot be negative")
	})

	s.Run("negative max fails", func() {
		b := &BudgetRange{Max: intPtr(-1)}
		err := b.Validate()
		s.Require().Error(err)
		s.Contains(err.Error(), "max cannot be negative")
	})

	s.Run("single bound passes", func() {
		s.NoError((&BudgetRange{Max: intPtr(100)}).Validate())
		s.NoError((&BudgetRange{Min: intPtr(100)}).Validate())
	})

	s.Run("both bounds absent passes validate but fails isvalid", func() {
		b := &BudgetRange{}
		s.NoError(b.Validate())
		s.False(b.IsValid())
	})

	s.Run("equal bounds pass", func() {
		b := &BudgetRange{Min: intPtr(500), Max: intPtr(500)}
		s.NoError(b.Validate())
		s.True(b.IsValid())
	})
}

// =============================================================================
// IsValid Tests
// =============================================================================

func (s *BudgetRangeSuite) TestIsValid() {
	s.Run("requires at least one bound", func() {
		s.False((&BudgetRange{}).IsValid())
		s.True((&BudgetRange{Min: intPtr(0)}).IsValid())
		s.True((&BudgetRange{Max: intPtr(0)}).IsValid())
	})

	s.Run("rejects negative bounds", func() {
		s.False((&BudgetRange{Min: intPtr(-1)}).IsValid())
		s.False((&BudgetRange{Max: intPtr(-1)}).IsValid())
	})

	s.Run("rejects inverted range", func() {
		s.False((&BudgetRange{Min: intPtr(10), Max: intPtr(5)}).IsValid())
	})
}

// =============================================================================
// Average Tests
// =============================================================================

func (s *BudgetRangeSuite) TestAverage() {
	s.Run("both bounds returns truncated midpoint", func() {
		b := &BudgetRange{Min: intPtr(1_000), Max: intPtr(2_001)}
		avg := b.Average()
		s.Require().NotNil(avg)
		s.Equal(1_500, *avg)
	})

	s.Run("only max returns half the ceiling", func() {
		b := &BudgetRange{Max: intPtr(9)}
		avg := b.Average()
		s.Require().NotNil(avg)
		s.Equal(4, *avg)
	})

	s.Run("only min returns the floor itself", func() {
		b := &BudgetRange{Min: intPtr(7_500)}
		avg := b.Average()
		s.Require().NotNil(avg)
		s.Equal(7_500, *avg)
	})

	s.Run("no bounds returns nil", func() {
		s.Nil((&BudgetRange{}).Average())
	})
}

// =============================================================================
// FormatForDisplay Tests
// =============================================================================

func (s *BudgetRangeSuite) TestFormatForDisplay() {
	s.Run("both bounds", func() {
		b := &BudgetRange{Min: intPtr(1_000), Max: intPtr(50_000), Currency: "EUR"}
		s.Equal("EUR 1,000 - 50,000", b.FormatForDisplay())
	})

	s.Run("only max with currency fallback", func() {
		b := &BudgetRange{Max: intPtr(5_000)}
		s.Equal("USD up to 5,000", b.FormatForDisplay())
	})

	s.Run("only min", func() {
		b := &BudgetRange{Min: intPtr(1_234_567), Currency: "GBP"}
		s.Equal("GBP from 1,234,567", b.FormatForDisplay())
	})

	s.Run("no bounds", func() {
		s.Equal("Budget not specified", (&BudgetRange{}).FormatForDisplay())
	})
}
