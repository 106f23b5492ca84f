package quantity

import (
	"wrapshop-backend/catalog"
	"wrapshop-backend/utils"
)

// Measurement is the vehicle-measurement record returned by the
// year/make/model lookup. The engine treats a nil measurement as "no
// vehicle selected": every derived quantity is zero.
type Measurement struct {
	FullWrap float64 `json:"full_wrap"`
	Hood     float64 `json:"hood"`
	Roof     float64 `json:"roof"`
	Side     float64 `json:"side"`
	Doors    float64 `json:"doors"`
}

func (m *Measurement) zone(key string) float64 {
	if m == nil {
		return 0
	}
	switch key {
	case "full_wrap":
		return m.FullWrap
	case "hood":
		return m.Hood
	case "roof":
		return m.Roof
	case "side":
		return m.Side
	case "doors":
		return m.Doors
	}
	return 0
}

// PanelSide identifies one selectable panel on a box truck or trailer.
type PanelSide string

const (
	SideDriver    PanelSide = "driver"
	SidePassenger PanelSide = "passenger"
	SideRear      PanelSide = "rear"
	SideFront     PanelSide = "front"
)

// Wall is one wall segment for a wall-wrap job.
type Wall struct {
	WidthFt  float64 `json:"width_ft"`
	HeightFt float64 `json:"height_ft"`
}

// Inputs is the bag of product-specific physical attributes. Only the
// fields for the job's product type are read; the rest stay zero.
type Inputs struct {
	LengthFt float64 `json:"length_ft"`
	HeightFt float64 `json:"height_ft"`
	WidthFt  float64 `json:"width_ft"`
	BeamFt   float64 `json:"beam_ft"`

	// Vehicle wraps and commercial custom zones.
	Measurement  *Measurement `json:"measurement"`
	Zones        []string     `json:"zones"`
	FullCoverage bool         `json:"full_coverage"`

	// Box truck / trailer panels.
	Sides         []PanelSide `json:"sides"`
	FrontFraction float64     `json:"front_fraction"` // 1, 0.75 or 0.5; 0 means full

	// Marine hull.
	Passes         int  `json:"passes"`
	IncludeTransom bool `json:"include_transom"`

	// Boat decking.
	DeckZones []string `json:"deck_zones"`
	FullDeck  bool     `json:"full_deck"`

	// PPF package bundle.
	Packages []string `json:"packages"`

	// Signage.
	Faces       int  `json:"faces"`
	DoubleSided bool `json:"double_sided"`

	// Wall wrap.
	Walls []Wall `json:"walls"`
}

// Resolve maps physical inputs to the job's raw quantity in its natural
// unit (square feet for every area product, zero for install-only).
// Each independently computed zone/side is rounded half-up before the
// sum, not after it. Negative dimensions are clamped to zero.
func Resolve(pt catalog.ProductType, in Inputs, mat catalog.Material, cat *catalog.Catalog) float64 {
	switch pt {
	case catalog.VehicleWrap:
		return vehicleZones(in)
	case catalog.BoxTruck, catalog.Trailer:
		return panels(in, cat)
	case catalog.MarineHull:
		return marineHull(in, mat)
	case catalog.BoatDecking:
		return decking(in, cat)
	case catalog.PPF:
		return ppfArea(in, cat)
	case catalog.Signage:
		return signage(in)
	case catalog.WallWrap:
		return walls(in)
	case catalog.InstallOnly:
		return 0
	}
	return 0
}

// vehicleZones sums the selected measurement zones. Full coverage reads
// the full-wrap figure directly and ignores individual zone picks.
func vehicleZones(in Inputs) float64 {
	if in.Measurement == nil {
		return 0
	}
	if in.FullCoverage {
		return utils.RoundHalfUp(utils.Clamp0(in.Measurement.FullWrap))
	}
	var total float64
	for _, z := range in.Zones {
		total += utils.RoundHalfUp(utils.Clamp0(in.Measurement.zone(z)))
	}
	return total
}

// panels sums the selected box-truck/trailer panels. Long sides are
// height × length; ends use the standard end width; the front panel
// supports a Full/¾/½ coverage fraction.
func panels(in Inputs, cat *catalog.Catalog) float64 {
	h := utils.Clamp0(in.HeightFt)
	l := utils.Clamp0(in.LengthFt)
	frac := in.FrontFraction
	if frac <= 0 || frac > 1 {
		frac = 1
	}
	var total float64
	for _, s := range in.Sides {
		switch s {
		case SideDriver, SidePassenger:
			total += utils.RoundHalfUp(h * l)
		case SideRear:
			total += utils.RoundHalfUp(h * cat.PanelEndWidthFt)
		case SideFront:
			total += utils.RoundHalfUp(h * cat.PanelEndWidthFt * frac)
		}
	}
	return total
}

// marineHull estimates roll-material consumption, not wetted surface:
// (length × passes) × roll width × 2 for both hull sides, plus an
// optional transom term. The roll-width heuristic over- or
// under-estimates real hull area on purpose; it is how the shop prices.
func marineHull(in Inputs, mat catalog.Material) float64 {
	l := utils.Clamp0(in.LengthFt)
	passes := in.Passes
	if passes < 0 {
		passes = 0
	}
	total := utils.RoundHalfUp(l * float64(passes) * mat.RollWidthFt * 2)
	if in.IncludeTransom {
		total += utils.RoundHalfUp(utils.Clamp0(in.BeamFt) * mat.RollWidthFt)
	}
	return total
}

// decking sums the selected deck zones; fraction zones are driven by
// length × beam, fixed zones contribute a constant pad size.
func decking(in Inputs, cat *catalog.Catalog) float64 {
	base := utils.Clamp0(in.LengthFt) * utils.Clamp0(in.BeamFt)
	keys := in.DeckZones
	if in.FullDeck {
		keys = make([]string, 0, len(cat.DeckZones))
		for _, z := range cat.DeckZones {
			keys = append(keys, z.Key)
		}
	}
	var total float64
	for _, key := range keys {
		z := cat.DeckZone(key)
		if z == nil {
			continue
		}
		if z.Fraction > 0 {
			total += utils.RoundHalfUp(base * z.Fraction)
		} else {
			total += z.FixedSqft
		}
	}
	return total
}

func ppfArea(in Inputs, cat *catalog.Catalog) float64 {
	var total float64
	for _, key := range in.Packages {
		if p := cat.PPFPackage(key); p != nil {
			total += p.Sqft
		}
	}
	return total
}

// PPFPrice sums the fixed package prices for the selected PPF bundle.
// PPF sells by package price rather than by computed area.
func PPFPrice(in Inputs, cat *catalog.Catalog) float64 {
	var total float64
	for _, key := range in.Packages {
		if p := cat.PPFPackage(key); p != nil {
			total += p.Price
		}
	}
	return total
}

// signage rounds one face and multiplies out faces and sidedness.
func signage(in Inputs) float64 {
	face := utils.RoundHalfUp(utils.Clamp0(in.WidthFt) * utils.Clamp0(in.HeightFt))
	faces := in.Faces
	if faces <= 0 {
		faces = 1
	}
	total := face * float64(faces)
	if in.DoubleSided {
		total *= 2
	}
	return total
}

func walls(in Inputs) float64 {
	var total float64
	for _, w := range in.Walls {
		total += utils.RoundHalfUp(utils.Clamp0(w.WidthFt) * utils.Clamp0(w.HeightFt))
	}
	return total
}
