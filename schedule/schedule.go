// Package schedule resolves payment-milestone amounts against a job
// total. Amounts that must reconcile to the cent are computed in
// decimal, not floats.
package schedule

import "github.com/shopspring/decimal"

// AmountType says how a milestone's value is read.
type AmountType string

const (
	Flat       AmountType = "flat"
	Percentage AmountType = "percentage"
)

// A percentage milestone with value 0 is the remainder sentinel: it
// resolves to whatever is left after every sibling.

// Definition is the part of a milestone that resolution reads.
type Definition struct {
	Type  AmountType
	Value decimal.Decimal // dollars if flat; 0-100 if percentage
}

// IsRemainder reports whether d carries the remainder sentinel.
func (d Definition) IsRemainder() bool {
	return d.Type == Percentage && d.Value.IsZero()
}

var oneHundred = decimal.NewFromInt(100)

// centTolerance is the reconciliation threshold: anything past one cent
// is a reportable discrepancy.
var centTolerance = decimal.New(1, -2)

// Resolve produces the concrete dollar amount per milestone, in input
// order. Two-phase: every non-remainder milestone resolves
// independently first (flat verbatim, percentage against total), then
// each remainder gets max(0, total − sum of its siblings). No
// iteration, no hidden state; the same inputs always yield the same
// output.
//
// Templates construct at most one remainder per schedule. If a caller
// supplies several anyway, each resolves against "all siblings
// excluding itself", so their base amounts double-subtract. That is the
// accepted behavior; the reconciliation check surfaces it.
func Resolve(total decimal.Decimal, defs []Definition) []decimal.Decimal {
	if total.IsNegative() {
		total = decimal.Zero
	}

	resolved := make([]decimal.Decimal, len(defs))
	fixedSum := decimal.Zero
	remainders := 0

	for i, d := range defs {
		if d.IsRemainder() {
			remainders++
			continue
		}
		switch d.Type {
		case Flat:
			resolved[i] = d.Value
		case Percentage:
			resolved[i] = total.Mul(d.Value).Div(oneHundred).Round(2)
		}
		if resolved[i].IsNegative() {
			resolved[i] = decimal.Zero
		}
		fixedSum = fixedSum.Add(resolved[i])
	}

	if remainders == 0 {
		return resolved
	}

	// Base value of a single remainder against the fixed siblings.
	base := total.Sub(fixedSum)
	if base.IsNegative() {
		base = decimal.Zero
	}

	// Each remainder also subtracts the base value of every other
	// remainder (siblings excluding itself).
	others := base.Mul(decimal.NewFromInt(int64(remainders - 1)))
	for i, d := range defs {
		if !d.IsRemainder() {
			continue
		}
		amt := total.Sub(fixedSum).Sub(others)
		if amt.IsNegative() {
			amt = decimal.Zero
		}
		resolved[i] = amt
	}
	return resolved
}

// Reconcile compares the resolved sum with the job total. A divergence
// beyond one cent is reportable, never blocking: flat milestones can
// legitimately overshoot a total that changed after the schedule was
// built.
func Reconcile(total decimal.Decimal, resolved []decimal.Decimal) (diff decimal.Decimal, flagged bool) {
	sum := decimal.Zero
	for _, a := range resolved {
		sum = sum.Add(a)
	}
	diff = total.Sub(sum)
	return diff, diff.Abs().GreaterThan(centTolerance)
}
