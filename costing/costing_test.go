package costing

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

func seadek(t *testing.T) catalog.Material {
	t.Helper()
	m, ok := catalog.Default().Material("seadek")
	if !ok {
		t.Fatal("seadek missing from catalog")
	}
	return m
}

func TestCompute_DeckingScenario(t *testing.T) {
	cat := catalog.Default()

	// 24ft x 8ft full deck resolves to 154 sqft; SeaDek at $18, no
	// waste, default $150 design fee, price unset.
	b := Compute(154, Params{
		Product:   catalog.BoatDecking,
		Material:  seadek(t),
		DesignFee: cat.DesignFeeDefault,
	}, cat)

	nearlyEqual(t, "material", b.MaterialCost, 154*18)
	nearlyEqual(t, "hours", b.LaborHours, 19.3) // round(154/8, 1)
	nearlyEqual(t, "labor", b.LaborCost, 1062)  // round(19.3*55)
	nearlyEqual(t, "fees", b.FixedFees, 150)
	nearlyEqual(t, "cogs", b.COGS, 2772+1062+150)

	m := Margin(0, b.COGS)
	nearlyEqual(t, "gpm at zero sale", m.GPMPercent, 0)
}

func TestCompute_WasteBufferCeilsAndIsMonotonic(t *testing.T) {
	cat := catalog.Default()
	p := Params{Product: catalog.BoatDecking, Material: seadek(t)}

	prev := 0.0
	for _, w := range []float64{0, 5, 10, 15, 20, 37.5} {
		p.WastePercent = w
		b := Compute(154, p, cat)
		if b.BufferedQuantity != math.Trunc(b.BufferedQuantity) {
			t.Fatalf("buffered quantity %v is not whole at waste %v", b.BufferedQuantity, w)
		}
		if b.BufferedQuantity < 154 {
			t.Fatalf("buffered quantity %v dropped below raw at waste %v", b.BufferedQuantity, w)
		}
		if b.BufferedQuantity < prev {
			t.Fatalf("buffered quantity not monotonic at waste %v", w)
		}
		prev = b.BufferedQuantity
	}

	p.WastePercent = 10
	b := Compute(154, p, cat)
	nearlyEqual(t, "buffered at 10%", b.BufferedQuantity, 170) // ceil(169.4)
	nearlyEqual(t, "material at 10%", b.MaterialCost, 170*18)
}

func TestCompute_LaborHoursUseRawQuantity(t *testing.T) {
	cat := catalog.Default()
	b := Compute(154, Params{
		Product:      catalog.BoatDecking,
		Material:     seadek(t),
		WastePercent: 20,
	}, cat)

	// Hours come from the raw 154, not the buffered 185.
	nearlyEqual(t, "hours", b.LaborHours, 19.3)
}

func TestCompute_ZeroQuantityStillChargesFixedFees(t *testing.T) {
	cat := catalog.Default()
	b := Compute(0, Params{
		Product:     catalog.Signage,
		Material:    seadek(t),
		DesignFee:   150,
		FixedAddons: 75,
	}, cat)

	nearlyEqual(t, "material", b.MaterialCost, 0)
	nearlyEqual(t, "labor", b.LaborCost, 0)
	nearlyEqual(t, "cogs", b.COGS, 225)
}

func TestCompute_COGSNeverBelowFixedFees(t *testing.T) {
	cat := catalog.Default()
	for _, qty := range []float64{-50, 0, 1, 154, 900} {
		b := Compute(qty, Params{
			Product:      catalog.VehicleWrap,
			Material:     seadek(t),
			WastePercent: 10,
			DesignFee:    150,
			FixedAddons:  40,
		}, cat)
		if b.COGS < b.FixedFees {
			t.Fatalf("qty %v: COGS %v below fixed fees %v", qty, b.COGS, b.FixedFees)
		}
	}
}

func TestCompute_NegativeInputsClamp(t *testing.T) {
	cat := catalog.Default()
	b := Compute(-120, Params{
		Product:      catalog.VehicleWrap,
		Material:     catalog.Material{Rate: -4},
		WastePercent: -10,
		DesignFee:    -150,
		FixedAddons:  -20,
		PrepHours:    -3,
	}, cat)

	nearlyEqual(t, "quantity", b.Quantity, 0)
	nearlyEqual(t, "material", b.MaterialCost, 0)
	nearlyEqual(t, "fees", b.FixedFees, 0)
	nearlyEqual(t, "cogs", b.COGS, 0)
}

func TestCompute_FlatTierOverridesHourFormula(t *testing.T) {
	cat := catalog.Default()
	b := Compute(420, Params{
		Product:     catalog.VehicleWrap,
		Material:    catalog.Material{Rate: 5},
		FlatTierKey: "large_van",
	}, cat)

	nearlyEqual(t, "tier hours", b.LaborHours, 30)
	nearlyEqual(t, "tier pay", b.LaborCost, 1600)
}

func TestCompute_InstallOnlyZeroesMaterialAndDesign(t *testing.T) {
	cat := catalog.Default()
	b := Compute(0, Params{
		Product:      catalog.InstallOnly,
		Material:     seadek(t),
		WastePercent: 10,  // ignored: install-only carries no material
		DesignFee:    150, // explicitly zeroed for install-only
		FlatTierKey:  "full_truck",
	}, cat)

	nearlyEqual(t, "material", b.MaterialCost, 0)
	nearlyEqual(t, "fees", b.FixedFees, 0)
	nearlyEqual(t, "labor", b.LaborCost, 1400)
	nearlyEqual(t, "cogs", b.COGS, 1400)
}

func TestCompute_LaminationSurcharge(t *testing.T) {
	cat := catalog.Default()
	mat, _ := cat.Material("3m-ij180")

	plain := Compute(100, Params{Product: catalog.VehicleWrap, Material: mat}, cat)
	lam := Compute(100, Params{Product: catalog.VehicleWrap, Material: mat, Laminated: true}, cat)

	nearlyEqual(t, "surcharge", lam.MaterialCost-plain.MaterialCost, 100*cat.LaminationRate)
}

func TestCompute_PrepHoursBillAtPrepRate(t *testing.T) {
	cat := catalog.Default()
	b := Compute(0, Params{Product: catalog.VehicleWrap, PrepHours: 2.5}, cat)

	nearlyEqual(t, "prep fees", b.FixedFees, 2.5*cat.PrepRate)
}

func TestMargin_ZeroAndNegativeSale(t *testing.T) {
	nearlyEqual(t, "gpm at 0", Margin(0, 500).GPMPercent, 0)
	nearlyEqual(t, "gpm at -100", Margin(-100, 500).GPMPercent, 0)
	nearlyEqual(t, "gp at 0", Margin(0, 500).GrossProfit, -500)
}

func TestMargin_Basic(t *testing.T) {
	m := Margin(1000, 270)
	nearlyEqual(t, "gp", m.GrossProfit, 730)
	nearlyEqual(t, "gpm", m.GPMPercent, 73)
}

func TestAutoPrice_RecoversTargetMarginExactly(t *testing.T) {
	for _, cogs := range []float64{0.01, 1, 270, 3984, 125000} {
		for _, target := range []float64{0.1, 0.5, 0.73, 0.9} {
			price := AutoPrice(cogs, target)
			m := Margin(price, cogs)
			nearlyEqual(t, "roundtrip gpm", m.GPMPercent, target*100)
		}
	}
}

func TestAutoPrice_Guards(t *testing.T) {
	nearlyEqual(t, "zero cogs", AutoPrice(0, 0.73), 0)
	nearlyEqual(t, "negative cogs", AutoPrice(-10, 0.73), 0)
	nearlyEqual(t, "target 1 collapses to cost", AutoPrice(100, 1), 100)
	nearlyEqual(t, "negative target collapses to cost", AutoPrice(100, -0.5), 100)
}
