// Package premium derives coverage premiums and the proposal total.
//
// Rounding is half-up (half away from zero) at 2 decimal places, applied per line.
// The total is the exact sum of the rounded line premiums, so the amount shown to the
// customer always equals the sum of the figures shown per line.
package premium

import (
	"fmt"
	"strings"

	"underwriting_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const Places = 2

// PricedLine is a coverage line with its derived premium.
type PricedLine struct {
	entities.CoverageLine
	Premium decimal.Decimal
}

// Issue is a single invalid coverage field.
type Issue struct {
	Field  string
	Reason string
}

// Line returns round(base_premium * rate, 2).
func Line(l entities.CoverageLine) decimal.Decimal {
	return l.BasePremium.Mul(effectiveRate(l)).Round(Places)
}

// Recompute prices every line and sums the rounded premiums.
// There is no incremental path: callers recompute after each edit.
func Recompute(lines []entities.CoverageLine) ([]PricedLine, decimal.Decimal) {
	priced := make([]PricedLine, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		p := Line(l)
		priced = append(priced, PricedLine{CoverageLine: l, Premium: p})
		total = total.Add(p)
	}
	return priced, total.Round(Places)
}

// Total is Recompute without the per-line breakdown.
func Total(lines []entities.CoverageLine) decimal.Decimal {
	_, total := Recompute(lines)
	return total
}

// Normalize applies the default rate to lines that carry none.
func Normalize(lines []entities.CoverageLine) []entities.CoverageLine {
	out := make([]entities.CoverageLine, len(lines))
	for i, l := range lines {
		l.Code = strings.TrimSpace(l.Code)
		l.Name = strings.TrimSpace(l.Name)
		l.Rate = effectiveRate(l)
		out[i] = l
	}
	return out
}

// Validate reports every invalid field across the collection.
func Validate(lines []entities.CoverageLine) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(lines))
	for i, l := range lines {
		prefix := fmt.Sprintf("coverages[%d]", i)
		code := strings.TrimSpace(l.Code)
		if code == "" {
			issues = append(issues, Issue{Field: prefix + ".code", Reason: "required"})
		} else if first, dup := seen[code]; dup {
			issues = append(issues, Issue{Field: prefix + ".code", Reason: fmt.Sprintf("duplicates coverages[%d]", first)})
		} else {
			seen[code] = i
		}
		if strings.TrimSpace(l.Name) == "" {
			issues = append(issues, Issue{Field: prefix + ".name", Reason: "required"})
		}
		if l.BasePremium.IsNegative() {
			issues = append(issues, Issue{Field: prefix + ".base_premium", Reason: "must be >= 0"})
		}
		if l.SumInsured.IsNegative() {
			issues = append(issues, Issue{Field: prefix + ".sum_insured", Reason: "must be >= 0"})
		}
		if !l.Rate.IsZero() && !l.Rate.IsPositive() {
			issues = append(issues, Issue{Field: prefix + ".rate", Reason: "must be > 0"})
		}
	}
	return issues
}

// a zero rate means "not entered"
func effectiveRate(l entities.CoverageLine) decimal.Decimal {
	if l.Rate.IsZero() {
		return entities.DefaultRate
	}
	return l.Rate
}
