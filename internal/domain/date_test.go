package domain_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid mid-year date", "15/07/25", true},
		{"leap day in a leap year", "29/02/24", true},
		{"leap day in a non-leap year", "29/02/25", false},
		{"april has 30 days", "31/04/25", false},
		{"month zero", "15/00/25", false},
		{"month thirteen", "15/13/25", false},
		{"day zero", "00/07/25", false},
		{"wrong separators", "15-07-25", false},
		{"single-digit day", "5/07/25", false},
		{"four-digit year", "15/07/2025", false},
		{"non-numeric fields", "aa/bb/cc", false},
		{"trailing garbage", "15/07/25x", false},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValidDate(tt.input), "input %q", tt.input)
		})
	}
}

func TestFormatDateForDisplay(t *testing.T) {
	// 18 June 2025 is a Wednesday.
	assert.Equal(t, "Wednesday, June 18, 2025", domain.FormatDateForDisplay("18/06/25"))
	assert.Equal(t, "Thursday, February 29, 2024", domain.FormatDateForDisplay("29/02/24"))
}

func TestCompareDates_NumericNotLexical(t *testing.T) {
	// Lexical order on DD/MM/YY would put "03/07/25" before "18/06/25".
	assert.Negative(t, domain.CompareDates("18/06/25", "03/07/25"))
	assert.Positive(t, domain.CompareDates("01/01/26", "31/12/25"))
	assert.Zero(t, domain.CompareDates("15/07/25", "15/07/25"))
}

func TestCompareDates_SortOrder(t *testing.T) {
	dates := []string{"03/07/25", "18/06/25", "01/08/25"}
	sort.Slice(dates, func(i, j int) bool {
		return domain.CompareDates(dates[i], dates[j]) < 0
	})
	assert.Equal(t, []string{"18/06/25", "03/07/25", "01/08/25"}, dates)
}
