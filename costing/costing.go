package costing

import (
	"math"

	"wrapshop-backend/catalog"
	"wrapshop-backend/utils"
)

// Params carries everything beyond the resolved quantity that the cost
// model needs: material choice, waste buffer, fee modifiers, and an
// optional flat-rate install tier that overrides the hour formula.
type Params struct {
	Product   catalog.ProductType
	Material  catalog.Material
	Laminated bool

	// WastePercent inflates the raw quantity before costing. Callers
	// pass the family default (catalog) unless the operator overrode it.
	WastePercent float64

	DesignFee   float64 // catalog default unless overridden
	FixedAddons float64 // logo inlay, cab add-on, and similar flat fees
	PrepHours   float64 // billed at the catalog prep rate

	// FlatTierKey selects a flat-rate install tier; when set, labor
	// hours and pay come from the tier table instead of the formula.
	FlatTierKey string
}

// Breakdown is the derived cost basis. It is recomputed from current
// inputs on every change and never stored as authoritative.
type Breakdown struct {
	Quantity         float64 `json:"quantity"`
	BufferedQuantity float64 `json:"buffered_quantity"`
	MaterialCost     float64 `json:"material_cost"`
	LaborHours       float64 `json:"labor_hours"`
	LaborCost        float64 `json:"labor_cost"`
	FixedFees        float64 `json:"fixed_fees"`
	COGS             float64 `json:"cogs"`
}

// Compute turns a resolved quantity into a COGS figure.
//
// Install-only is a first-class mode: the whole material step is zeroed
// (waste included) and the design fee is dropped; only the selected
// labor tier and any prep hours survive.
func Compute(qty float64, p Params, cat *catalog.Catalog) Breakdown {
	qty = utils.Clamp0(qty)
	fam := cat.Family(p.Product)
	installOnly := p.Product == catalog.InstallOnly

	b := Breakdown{Quantity: qty}

	// Waste buffer, rounded up to the next whole unit.
	waste := utils.Clamp0(p.WastePercent)
	if installOnly {
		waste = 0
	}
	b.BufferedQuantity = math.Ceil(qty * (1 + waste/100))

	// Material cost. Zero quantity means zero material; fixed fees
	// below still apply.
	if !installOnly {
		rate := utils.Clamp0(p.Material.Rate)
		if p.Laminated {
			rate += cat.LaminationRate
		}
		b.MaterialCost = utils.Round2(b.BufferedQuantity * rate)
	}

	// Labor: flat-rate tier wins over the hour formula.
	if tier := cat.Tier(p.FlatTierKey); tier != nil {
		b.LaborHours = tier.Hours
		b.LaborCost = tier.Pay
	} else if !installOnly && fam.SqftPerHour > 0 {
		b.LaborHours = utils.Round1(qty / fam.SqftPerHour)
		b.LaborCost = utils.RoundHalfUp(b.LaborHours * fam.LaborRate)
	}

	// Fixed fees.
	fees := utils.Clamp0(p.FixedAddons)
	if !installOnly {
		fees += utils.Clamp0(p.DesignFee)
	}
	fees += utils.Round2(utils.Clamp0(p.PrepHours) * cat.PrepRate)
	b.FixedFees = utils.Round2(fees)

	b.COGS = utils.Round2(b.MaterialCost + b.LaborCost + b.FixedFees)
	return b
}
