package commission

import (
	"math"
	"testing"

	"wrapshop-backend/catalog"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestResolve_FloorProtectionForcesBaseRate(t *testing.T) {
	cat := catalog.Default()

	for source, tier := range cat.Commission {
		for _, gpm := range []float64{-20, 0, 30, 64.99} {
			// Bonus flags must not matter below the floor.
			r := Resolve(source, gpm, 1000, true, cat)
			nearlyEqual(t, string(source)+" rate under floor", r.EffectiveRate, tier.BaseRate)
		}
	}
}

func TestResolve_HighMarginBonus(t *testing.T) {
	cat := catalog.Default()

	// 70% is above the floor but not past the high-margin threshold.
	r := Resolve(catalog.Inbound, 70, 1000, false, cat)
	nearlyEqual(t, "base only", r.EffectiveRate, 5)

	// 74% earns the high-margin increment.
	r = Resolve(catalog.Inbound, 74, 1000, false, cat)
	nearlyEqual(t, "high margin", r.EffectiveRate, 7)

	// Exactly at the threshold does not qualify.
	r = Resolve(catalog.Inbound, 73, 1000, false, cat)
	nearlyEqual(t, "at threshold", r.EffectiveRate, 5)
}

func TestResolve_CertificationBonusStacksAndClamps(t *testing.T) {
	cat := catalog.Default()

	r := Resolve(catalog.Inbound, 80, 1000, true, cat)
	nearlyEqual(t, "stacked", r.EffectiveRate, 8) // 5 + 2 + 1

	// Referral caps at 5: 4 + 2 + 1 would be 7.
	r = Resolve(catalog.Referral, 80, 1000, true, cat)
	nearlyEqual(t, "clamped", r.EffectiveRate, 5)
}

func TestResolve_CapNeverExceeded(t *testing.T) {
	cat := catalog.Default()

	for source, tier := range cat.Commission {
		r := Resolve(source, 99, 1000, true, cat)
		if r.EffectiveRate > tier.MaxRate {
			t.Fatalf("%s: rate %v exceeds max %v", source, r.EffectiveRate, tier.MaxRate)
		}
	}
}

func TestResolve_PresoldHasNoUpside(t *testing.T) {
	cat := catalog.Default()

	r := Resolve(catalog.Presold, 90, 1000, true, cat)
	nearlyEqual(t, "presold rate", r.EffectiveRate, 3)
}

func TestResolve_AmountNeverNegative(t *testing.T) {
	cat := catalog.Default()

	r := Resolve(catalog.Outbound, 40, -800, false, cat)
	nearlyEqual(t, "losing job amount", r.Amount, 0)
	nearlyEqual(t, "rate still resolves", r.EffectiveRate, 7)
}

func TestResolve_Amount(t *testing.T) {
	cat := catalog.Default()

	// 8% of $2,500 gross profit.
	r := Resolve(catalog.Inbound, 80, 2500, true, cat)
	nearlyEqual(t, "amount", r.Amount, 200)
}

func TestResolve_UnknownSource(t *testing.T) {
	cat := catalog.Default()

	r := Resolve(catalog.LeadSource("billboard"), 80, 1000, true, cat)
	nearlyEqual(t, "unknown rate", r.EffectiveRate, 0)
	nearlyEqual(t, "unknown amount", r.Amount, 0)
}
