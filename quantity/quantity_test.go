package quantity

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

func TestDecking_FullDeck24x8(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{LengthFt: 24, BeamFt: 8, FullDeck: true}

	// base 192: cockpit 67, bow 29, swim 19, gunnel 23, fixed 8+2+6.
	got := Resolve(catalog.BoatDecking, in, catalog.Material{}, cat)
	nearlyEqual(t, "full deck sqft", got, 154)
}

func TestDecking_ZonesRoundedBeforeSumming(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{LengthFt: 24, BeamFt: 8, DeckZones: []string{"cockpit", "bow"}}

	// 67.2 and 28.8 round per zone (67 + 29), not 96.0 on the sum.
	got := Resolve(catalog.BoatDecking, in, catalog.Material{}, cat)
	nearlyEqual(t, "two zones", got, 96)
}

func TestDecking_UnknownZoneIgnored(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{LengthFt: 24, BeamFt: 8, DeckZones: []string{"cockpit", "flybridge"}}

	got := Resolve(catalog.BoatDecking, in, catalog.Material{}, cat)
	nearlyEqual(t, "unknown zone", got, 67)
}

func TestBoxTruck_PanelsAndFrontFraction(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{
		HeightFt:      7.5,
		LengthFt:      16,
		Sides:         []PanelSide{SideDriver, SidePassenger, SideRear, SideFront},
		FrontFraction: 0.5,
	}

	// sides 120 each, rear 7.5*8=60, front 7.5*8*0.5=30.
	got := Resolve(catalog.BoxTruck, in, catalog.Material{}, cat)
	nearlyEqual(t, "box truck", got, 330)
}

func TestBoxTruck_EachSideRoundedIndependently(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{
		HeightFt: 7.3,
		LengthFt: 10.2,
		Sides:    []PanelSide{SideDriver, SidePassenger},
	}

	// 74.46 per side rounds to 74 each; summing first would give 149.
	got := Resolve(catalog.BoxTruck, in, catalog.Material{}, cat)
	nearlyEqual(t, "rounded per side", got, 148)
}

func TestMarineHull_RollConsumptionHeuristic(t *testing.T) {
	cat := catalog.Default()
	mat, _ := cat.Material("hull-flex") // 5 ft roll
	in := Inputs{LengthFt: 30, Passes: 2, BeamFt: 10}

	// (30 × 2) × 5 × 2 = 600, no transom.
	nearlyEqual(t, "hull", Resolve(catalog.MarineHull, in, mat, cat), 600)

	in.IncludeTransom = true
	// transom term: beam × roll width = 50.
	nearlyEqual(t, "hull+transom", Resolve(catalog.MarineHull, in, mat, cat), 650)
}

func TestVehicleWrap_NilMeasurementIsZero(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{Zones: []string{"hood", "roof"}, FullCoverage: true}

	nearlyEqual(t, "no vehicle", Resolve(catalog.VehicleWrap, in, catalog.Material{}, cat), 0)
}

func TestVehicleWrap_ZoneSumVsFullCoverage(t *testing.T) {
	cat := catalog.Default()
	m := &Measurement{FullWrap: 412.4, Hood: 28.6, Roof: 40.2, Side: 95.5, Doors: 60.1}

	in := Inputs{Measurement: m, Zones: []string{"hood", "roof", "side"}}
	nearlyEqual(t, "zones", Resolve(catalog.VehicleWrap, in, catalog.Material{}, cat), 29+40+96)

	in.SetFullCoverage(true)
	nearlyEqual(t, "full coverage", Resolve(catalog.VehicleWrap, in, catalog.Material{}, cat), 412)
}

func TestPPF_PackageAreaAndPrice(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{Packages: []string{"partial_front", "track_pack"}}

	nearlyEqual(t, "ppf sqft", Resolve(catalog.PPF, in, catalog.Material{}, cat), 85)
	nearlyEqual(t, "ppf price", PPFPrice(in, cat), 1595+849)
}

func TestSignage_DoubleSidedFaces(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{WidthFt: 4.4, HeightFt: 2.4, Faces: 3, DoubleSided: true}

	// face 10.56 rounds to 11, ×3 faces ×2 sides.
	nearlyEqual(t, "signage", Resolve(catalog.Signage, in, catalog.Material{}, cat), 66)
}

func TestWallWrap_SumsRoundedWalls(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{Walls: []Wall{{WidthFt: 12.2, HeightFt: 9}, {WidthFt: 8.1, HeightFt: 9}}}

	// 109.8→110, 72.9→73.
	nearlyEqual(t, "walls", Resolve(catalog.WallWrap, in, catalog.Material{}, cat), 183)
}

func TestInstallOnly_ZeroQuantity(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{LengthFt: 40, HeightFt: 10}

	nearlyEqual(t, "install only", Resolve(catalog.InstallOnly, in, catalog.Material{}, cat), 0)
}

func TestNegativeDimensionsClampToZero(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{LengthFt: -24, BeamFt: 8, FullDeck: true}

	// fraction zones collapse to 0, fixed pads remain.
	nearlyEqual(t, "clamped", Resolve(catalog.BoatDecking, in, catalog.Material{}, cat), 16)
}

func TestToggleDeckZone_ClearsFullDeckFirst(t *testing.T) {
	in := Inputs{}
	in.SetFullDeck(true)
	in.ToggleDeckZone("bow")

	if in.FullDeck {
		t.Fatal("full deck flag should clear when a single zone is toggled")
	}
	if len(in.DeckZones) != 1 || in.DeckZones[0] != "bow" {
		t.Fatalf("DeckZones = %v, want [bow]", in.DeckZones)
	}

	in.ToggleDeckZone("bow")
	if len(in.DeckZones) != 0 {
		t.Fatalf("DeckZones = %v, want empty after re-toggle", in.DeckZones)
	}
}

func TestSetFullDeck_ClearsManualZones(t *testing.T) {
	in := Inputs{DeckZones: []string{"cockpit", "bow"}}
	in.SetFullDeck(true)

	if len(in.DeckZones) != 0 {
		t.Fatalf("DeckZones = %v, want empty under full deck", in.DeckZones)
	}
}

func TestTogglePPFPackage_FullBodyExclusive(t *testing.T) {
	cat := catalog.Default()
	in := Inputs{}

	in.TogglePPFPackage(cat, "partial_front")
	in.TogglePPFPackage(cat, "track_pack")
	in.TogglePPFPackage(cat, "full_body")
	if len(in.Packages) != 1 || in.Packages[0] != "full_body" {
		t.Fatalf("Packages = %v, want [full_body]", in.Packages)
	}

	in.TogglePPFPackage(cat, "rocker_panels")
	if len(in.Packages) != 1 || in.Packages[0] != "rocker_panels" {
		t.Fatalf("Packages = %v, want [rocker_panels] after leaving full body", in.Packages)
	}
}

func TestDetectInstallTier_LadderIsAuthoritative(t *testing.T) {
	cat := catalog.Default()

	cases := []struct {
		area float64
		want string
	}{
		{0, "partial"},
		{149.9, "partial"},
		{150, "sedan"},
		{260, "suv"},
		{340, "small_truck"},
		{399.9, "full_truck"},
		// 420 sits inside full_truck's display range too; the ladder
		// decides and picks large_van.
		{420, "large_van"},
		{479.9, "large_van"},
		{480, "box_van"},
		{900, "box_van"},
	}
	for _, tc := range cases {
		tier := cat.DetectInstallTier(tc.area)
		if tier == nil || tier.Key != tc.want {
			t.Fatalf("DetectInstallTier(%v) = %+v, want %s", tc.area, tier, tc.want)
		}
	}
}
