package catalog

// ProductType tags a job with its product family. Closed set.
type ProductType string

const (
	VehicleWrap ProductType = "vehicle-wrap"
	BoxTruck    ProductType = "box-truck"
	Trailer     ProductType = "trailer"
	MarineHull  ProductType = "marine-hull"
	BoatDecking ProductType = "boat-decking"
	PPF         ProductType = "ppf"
	Signage     ProductType = "signage"
	WallWrap    ProductType = "wall-wrap"
	InstallOnly ProductType = "install-only"
)

// Material is an immutable catalog entry. Rate is currency per square foot.
// RollWidthFt is only set for roll goods (hull wrap films); zero elsewhere.
type Material struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Rate        float64 `json:"rate"`
	RollWidthFt float64 `json:"roll_width_ft,omitempty"`
}

// FamilyRates holds the per-product-family labor constants.
// SqftPerHour is the divisor k in hours = quantity / k; zero means the
// family has no hour formula (install-only uses flat tiers exclusively).
type FamilyRates struct {
	LaborRate    float64
	SqftPerHour  float64
	WasteDefault float64 // percent
}

type LeadSource string

const (
	Inbound  LeadSource = "inbound"
	Outbound LeadSource = "outbound"
	Presold  LeadSource = "presold"
	Referral LeadSource = "referral"
	WalkIn   LeadSource = "walk-in"
)

// CommissionTier is the per-lead-source rate band. Rates are percentage
// points (5 means 5%).
type CommissionTier struct {
	BaseRate      float64
	MaxRate       float64
	BonusEligible bool
}

// InstallTier is one row of the flat-rate install table for commercial
// vehicles. DisplayMin/DisplayMax are the advisory ranges shown to the
// operator; adjacent families overlap. Detection does NOT use them,
// see DetectInstallTier.
type InstallTier struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	DisplayMin float64 `json:"display_min"`
	DisplayMax float64 `json:"display_max"`
	Hours      float64 `json:"hours"`
	Pay        float64 `json:"pay"`
}

// PPFPackage is a named paint-protection-film bundle with a fixed
// area-equivalent and price. The exclusive package (full body) clears
// all other selections and vice versa.
type PPFPackage struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Sqft      float64 `json:"sqft"`
	Price     float64 `json:"price"`
	Exclusive bool    `json:"exclusive"`
}

// DeckZone is one selectable boat-decking zone. Fraction-based zones
// compute round(length × beam × Fraction); fixed zones contribute
// FixedSqft regardless of hull dimensions.
type DeckZone struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Fraction  float64 `json:"fraction,omitempty"`
	FixedSqft float64 `json:"fixed_sqft,omitempty"`
}

// Catalog bundles every static rate table the engine reads. One value
// is built at startup (Default) and passed into the estimating and
// commission code; tests substitute fixtures.
type Catalog struct {
	Materials      map[string]Material
	LaminationRate float64 // surcharge per sqft when lamination selected

	Families map[ProductType]FamilyRates

	DesignFeeDefault float64
	PrepRate         float64 // $/hr for prep labor add-ons

	TargetMargin float64 // fraction, e.g. 0.73

	MarginFloor    float64 // GPM% below which commission upside is forfeited
	HighMarginOver float64 // GPM% above which the high-margin bonus applies
	HighMarginPts  float64 // points added above HighMarginOver
	CertBonusPts   float64 // points added for the certification bonus flag
	Commission     map[LeadSource]CommissionTier

	InstallTiers []InstallTier
	detectLadder []tierStep

	PPFPackages []PPFPackage
	DeckZones   []DeckZone

	// PanelEndWidthFt is the standard width assumed for box-truck and
	// trailer end panels when only height is known.
	PanelEndWidthFt float64

	// CommercialWasteOptions are the selectable waste percentages for
	// commercial-vehicle jobs.
	CommercialWasteOptions []float64
}

type tierStep struct {
	below float64 // exclusive upper bound in sqft
	key   string
}

func (c *Catalog) Material(id string) (Material, bool) {
	m, ok := c.Materials[id]
	return m, ok
}

func (c *Catalog) Family(pt ProductType) FamilyRates {
	return c.Families[pt]
}

// Tier returns the install tier row for a key, or nil.
func (c *Catalog) Tier(key string) *InstallTier {
	for i := range c.InstallTiers {
		if c.InstallTiers[i].Key == key {
			return &c.InstallTiers[i]
		}
	}
	return nil
}

// DetectInstallTier picks the flat-rate tier for a computed full-wrap
// area. It walks the detection ladder, which is strictly ordered and
// independent of the rows' display ranges (those overlap between
// vehicle families and are advisory only).
func (c *Catalog) DetectInstallTier(area float64) *InstallTier {
	if area < 0 {
		area = 0
	}
	for _, step := range c.detectLadder {
		if area < step.below {
			return c.Tier(step.key)
		}
	}
	if n := len(c.InstallTiers); n > 0 {
		return &c.InstallTiers[n-1]
	}
	return nil
}

func (c *Catalog) PPFPackage(key string) *PPFPackage {
	for i := range c.PPFPackages {
		if c.PPFPackages[i].Key == key {
			return &c.PPFPackages[i]
		}
	}
	return nil
}

func (c *Catalog) DeckZone(key string) *DeckZone {
	for i := range c.DeckZones {
		if c.DeckZones[i].Key == key {
			return &c.DeckZones[i]
		}
	}
	return nil
}

// Default returns the shop's standing rate tables.
func Default() *Catalog {
	return &Catalog{
		Materials: map[string]Material{
			"3m-2080":     {ID: "3m-2080", Label: "3M 2080 Wrap Film", Rate: 5.25},
			"3m-ij180":    {ID: "3m-ij180", Label: "3M IJ180 Print Wrap", Rate: 4.25},
			"avery-sw900": {ID: "avery-sw900", Label: "Avery SW900", Rate: 4.50},
			"hull-flex":   {ID: "hull-flex", Label: "HullFlex Marine Vinyl", Rate: 5.50, RollWidthFt: 5},
			"seadek":      {ID: "seadek", Label: "SeaDek", Rate: 18.00},
			"ppf-ultra":   {ID: "ppf-ultra", Label: "Ultra PPF Film", Rate: 6.00},
			"banner-13oz": {ID: "banner-13oz", Label: "13oz Banner", Rate: 2.25},
			"wall-poly":   {ID: "wall-poly", Label: "Wall Polymeric Vinyl", Rate: 3.75},
		},
		LaminationRate: 1.25,

		Families: map[ProductType]FamilyRates{
			VehicleWrap: {LaborRate: 35, SqftPerHour: 15, WasteDefault: 10},
			BoxTruck:    {LaborRate: 35, SqftPerHour: 20, WasteDefault: 10},
			Trailer:     {LaborRate: 35, SqftPerHour: 20, WasteDefault: 10},
			MarineHull:  {LaborRate: 45, SqftPerHour: 12, WasteDefault: 20},
			BoatDecking: {LaborRate: 55, SqftPerHour: 8, WasteDefault: 10},
			PPF:         {LaborRate: 55, SqftPerHour: 6, WasteDefault: 10},
			Signage:     {LaborRate: 30, SqftPerHour: 25, WasteDefault: 10},
			WallWrap:    {LaborRate: 40, SqftPerHour: 30, WasteDefault: 10},
			InstallOnly: {LaborRate: 45, SqftPerHour: 0, WasteDefault: 0},
		},

		DesignFeeDefault: 150,
		PrepRate:         45,

		TargetMargin: 0.73,

		MarginFloor:    65,
		HighMarginOver: 73,
		HighMarginPts:  2,
		CertBonusPts:   1,
		Commission: map[LeadSource]CommissionTier{
			Inbound:  {BaseRate: 5, MaxRate: 9, BonusEligible: true},
			Outbound: {BaseRate: 7, MaxRate: 11, BonusEligible: true},
			Presold:  {BaseRate: 3, MaxRate: 3, BonusEligible: false},
			Referral: {BaseRate: 4, MaxRate: 5, BonusEligible: true},
			WalkIn:   {BaseRate: 5, MaxRate: 9, BonusEligible: true},
		},

		InstallTiers: []InstallTier{
			{Key: "partial", Label: "Partial Wrap", DisplayMin: 0, DisplayMax: 150, Hours: 10, Pay: 500},
			{Key: "sedan", Label: "Sedan", DisplayMin: 140, DisplayMax: 220, Hours: 18, Pay: 900},
			{Key: "suv", Label: "SUV / Crossover", DisplayMin: 200, DisplayMax: 290, Hours: 21, Pay: 1100},
			{Key: "small_truck", Label: "Small Truck", DisplayMin: 270, DisplayMax: 360, Hours: 24, Pay: 1250},
			{Key: "full_truck", Label: "Full-Size Truck", DisplayMin: 350, DisplayMax: 450, Hours: 27, Pay: 1400},
			{Key: "large_van", Label: "Large Van", DisplayMin: 400, DisplayMax: 479, Hours: 30, Pay: 1600},
			{Key: "box_van", Label: "Box Van", DisplayMin: 460, DisplayMax: 700, Hours: 36, Pay: 1950},
		},
		detectLadder: []tierStep{
			{below: 150, key: "partial"},
			{below: 220, key: "sedan"},
			{below: 290, key: "suv"},
			{below: 350, key: "small_truck"},
			{below: 400, key: "full_truck"},
			{below: 480, key: "large_van"},
		},

		PPFPackages: []PPFPackage{
			{Key: "partial_front", Label: "Partial Front", Sqft: 55, Price: 1595},
			{Key: "full_front", Label: "Full Front", Sqft: 85, Price: 2295},
			{Key: "track_pack", Label: "Track Pack", Sqft: 30, Price: 849},
			{Key: "rocker_panels", Label: "Rocker Panels", Sqft: 25, Price: 650},
			{Key: "full_body", Label: "Full Body", Sqft: 360, Price: 6495, Exclusive: true},
		},

		DeckZones: []DeckZone{
			{Key: "cockpit", Label: "Cockpit", Fraction: 0.35},
			{Key: "bow", Label: "Bow", Fraction: 0.15},
			{Key: "helm", Label: "Helm Pad", FixedSqft: 8},
			{Key: "swim_platform", Label: "Swim Platform", Fraction: 0.10},
			{Key: "gunnel", Label: "Gunnels", Fraction: 0.12},
			{Key: "ladder", Label: "Ladder Pad", FixedSqft: 2},
			{Key: "hatch", Label: "Hatch", FixedSqft: 6},
		},

		PanelEndWidthFt: 8,

		CommercialWasteOptions: []float64{5, 10, 15, 20},
	}
}
