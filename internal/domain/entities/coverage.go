package entities

import "github.com/shopspring/decimal"

// CoverageLine is one insurable risk category priced by the operator.
//
// There is no Premium field: premium.Recompute derives it from
// BasePremium and Rate every time it is needed.
type CoverageLine struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	SumInsured  decimal.Decimal `json:"sum_insured"`
	BasePremium decimal.Decimal `json:"base_premium"`
	Rate        decimal.Decimal `json:"rate"`
}

// DefaultRate applies when the operator does not enter an adjustment factor.
var DefaultRate = decimal.NewFromInt(1)
