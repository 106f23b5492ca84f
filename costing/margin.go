package costing

// MarginResult is the derived margin view of a sale price against COGS.
type MarginResult struct {
	GrossProfit float64 `json:"gross_profit"`
	GPMPercent  float64 `json:"gpm_percent"`
}

// Margin computes gross profit and gross-profit-margin percent.
// Sale <= 0 means the margin is undefined and is reported as 0, never
// a division by zero, never an error.
func Margin(sale, cogs float64) MarginResult {
	if sale <= 0 {
		return MarginResult{GrossProfit: sale - cogs}
	}
	gp := sale - cogs
	return MarginResult{
		GrossProfit: gp,
		GPMPercent:  gp / sale * 100,
	}
}

// AutoPrice solves the exact inverse of the margin formula: the price
// that hits the target margin fraction for a given COGS. Zero COGS
// prices at zero; targets outside [0, 1) are treated as no markup.
func AutoPrice(cogs, target float64) float64 {
	if cogs <= 0 {
		return 0
	}
	if target < 0 || target >= 1 {
		target = 0
	}
	return cogs / (1 - target)
}
