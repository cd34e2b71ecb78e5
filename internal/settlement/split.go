// Package settlement implements the group-expense math: splitting a paid
// amount evenly across beneficiaries and aggregating per-member paid vs.
// received totals into a net balance. It is pure computation; persistence and
// transport live elsewhere.
package settlement

import (
	"fmt"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"
)

// SplitEven divides total into n shares that sum exactly to total.
//
// Each share is total/n floored to the cent; the remainder (total mod n) is
// distributed one cent each to the first shares. Shares therefore differ by at
// most one cent and conservation is exact, no reconciliation step needed.
func SplitEven(total money.Cents, n int) ([]money.Cents, error) {
	if n < 1 {
		return nil, fmt.Errorf("must have at least one beneficiary")
	}
	if total < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}

	base := total / money.Cents(n)
	remainder := total % money.Cents(n)

	shares := make([]money.Cents, n)
	for i := range shares {
		shares[i] = base
		if money.Cents(i) < remainder {
			shares[i]++
		}
	}
	return shares, nil
}
