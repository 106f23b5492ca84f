package controllers

import (
	"fmt"

	"wrapshop-backend/catalog"
	"wrapshop-backend/commission"
	"wrapshop-backend/costing"
	"wrapshop-backend/middlewares"
	"wrapshop-backend/quantity"
	"wrapshop-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Cat is the session catalog: every static rate table the engine
// reads. Tests swap in fixtures.
var Cat = catalog.Default()

// EstimateRequest is the JobSpec-shaped payload from the form layer.
// Pointer fields distinguish "left at default" from "set to zero".
type EstimateRequest struct {
	ProductType string          `json:"product_type" validate:"required"`
	Inputs      quantity.Inputs `json:"inputs"`
	MaterialID  string          `json:"material_id"`
	Laminated   bool            `json:"laminated"`

	WastePercent *float64 `json:"waste_percent" validate:"omitempty,min=0,max=100"`
	DesignFee    *float64 `json:"design_fee" validate:"omitempty,min=0"`
	FixedAddons  float64  `json:"fixed_addons"`
	PrepHours    float64  `json:"prep_hours"`

	FlatTierKey    string `json:"flat_tier"`
	AutoDetectTier bool   `json:"auto_detect_tier"`

	SalePrice  float64 `json:"sale_price"`
	LeadSource string  `json:"lead_source"`
	CertBonus  bool    `json:"cert_bonus"`
}

// EstimateResponse is everything the calculator screens render. All of
// it is derived; nothing here is stored.
type EstimateResponse struct {
	Breakdown      costing.Breakdown    `json:"breakdown"`
	Margin         costing.MarginResult `json:"margin"`
	Commission     *commission.Result   `json:"commission,omitempty"`
	SuggestedPrice float64              `json:"suggested_price"`
	PackagePrice   float64              `json:"package_price,omitempty"`
	DetectedTier   *catalog.InstallTier `json:"detected_tier,omitempty"`
	TierRangeNote  string               `json:"tier_range_note,omitempty"`
	Warnings       []string             `json:"warnings"`
}

// BuildEstimate runs the full recompute chain for one job spec. Every
// field change on a calculator screen replays this from scratch; no
// intermediate value is ever reused from a previous call.
func BuildEstimate(req EstimateRequest) (EstimateResponse, error) {
	pt := catalog.ProductType(req.ProductType)
	fam, known := Cat.Families[pt]
	if !known {
		return EstimateResponse{}, fmt.Errorf("unknown product type %q", req.ProductType)
	}

	mat, _ := Cat.Material(req.MaterialID) // missing material costs zero

	qty := quantity.Resolve(pt, req.Inputs, mat, Cat)

	resp := EstimateResponse{Warnings: []string{}}

	tierKey := req.FlatTierKey
	if req.AutoDetectTier && req.Inputs.Measurement != nil {
		area := req.Inputs.Measurement.FullWrap
		if tier := Cat.DetectInstallTier(area); tier != nil {
			tierKey = tier.Key
			resp.DetectedTier = tier
			if area < tier.DisplayMin || area > tier.DisplayMax {
				// Display ranges overlap between vehicle families; the
				// detection ladder is authoritative, but flag the
				// divergence for review instead of hiding it.
				resp.TierRangeNote = fmt.Sprintf(
					"area %.0f sqft is outside the %s display range (%.0f-%.0f)",
					area, tier.Label, tier.DisplayMin, tier.DisplayMax)
			}
		}
	}

	waste := fam.WasteDefault
	if req.WastePercent != nil {
		waste = *req.WastePercent
	}
	designFee := Cat.DesignFeeDefault
	if req.DesignFee != nil {
		designFee = *req.DesignFee
	}

	resp.Breakdown = costing.Compute(qty, costing.Params{
		Product:      pt,
		Material:     mat,
		Laminated:    req.Laminated,
		WastePercent: waste,
		DesignFee:    designFee,
		FixedAddons:  req.FixedAddons,
		PrepHours:    req.PrepHours,
		FlatTierKey:  tierKey,
	}, Cat)

	resp.Margin = costing.Margin(req.SalePrice, resp.Breakdown.COGS)
	resp.SuggestedPrice = utils.Round2(costing.AutoPrice(resp.Breakdown.COGS, Cat.TargetMargin))

	// PPF sells by package price; surface the bundle total alongside
	// the margin-derived suggestion.
	if pt == catalog.PPF {
		resp.PackagePrice = quantity.PPFPrice(req.Inputs, Cat)
	}

	if req.LeadSource != "" {
		r := commission.Resolve(catalog.LeadSource(req.LeadSource),
			resp.Margin.GPMPercent, resp.Margin.GrossProfit, req.CertBonus, Cat)
		resp.Commission = &r
	}

	if req.SalePrice > 0 && resp.Margin.GPMPercent < Cat.MarginFloor {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf(
			"margin %.1f%% is below the %.0f%% floor; explicit override required to proceed",
			resp.Margin.GPMPercent, Cat.MarginFloor))
	}

	return resp, nil
}

func Estimate(c *fiber.Ctx) error {
	var req EstimateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := BuildEstimate(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(resp)
}

// AutoPriceRequest asks for the price that hits a target margin.
type AutoPriceRequest struct {
	COGS         float64  `json:"cogs" validate:"min=0"`
	TargetMargin *float64 `json:"target_margin" validate:"omitempty,min=0,max=0.99"`
}

func AutoPrice(c *fiber.Ctx) error {
	var req AutoPriceRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	target := Cat.TargetMargin
	if req.TargetMargin != nil {
		target = *req.TargetMargin
	}
	price := utils.Round2(costing.AutoPrice(req.COGS, target))
	return c.JSON(fiber.Map{
		"price":         price,
		"target_margin": target,
	})
}
