package commission

import "wrapshop-backend/catalog"

// Result is the resolved commission for one job.
type Result struct {
	Source        catalog.LeadSource `json:"source"`
	EffectiveRate float64            `json:"effective_rate"` // percentage points
	Amount        float64            `json:"amount"`
}

// Resolve applies the commission decision table:
//
//  1. look up the lead source's {base, max, bonus-eligible} band;
//  2. floor protection: margin under the floor forces the base rate
//     and forfeits every bonus;
//  3. otherwise bonus-eligible sources earn the high-margin increment
//     past the threshold and the certification increment when flagged,
//     clamped to the source's max;
//  4. the amount never goes negative, even on a losing job.
//
// Unknown lead sources resolve to a zero band rather than failing.
func Resolve(source catalog.LeadSource, gpmPercent, grossProfit float64, certBonus bool, cat *catalog.Catalog) Result {
	tier, ok := cat.Commission[source]
	if !ok {
		return Result{Source: source}
	}

	rate := tier.BaseRate
	if gpmPercent >= cat.MarginFloor && tier.BonusEligible {
		if gpmPercent > cat.HighMarginOver {
			rate += cat.HighMarginPts
		}
		if certBonus {
			rate += cat.CertBonusPts
		}
		if rate > tier.MaxRate {
			rate = tier.MaxRate
		}
	}

	amount := grossProfit * rate / 100
	if amount < 0 {
		amount = 0
	}
	return Result{Source: source, EffectiveRate: rate, Amount: amount}
}
