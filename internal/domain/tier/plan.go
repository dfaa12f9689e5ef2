package tier

// Plan describes what a tier level offers, used for upgrade CTAs and
// the public pricing endpoint. Prices are GBP per month.
type Plan struct {
	Tier         string   `json:"tier"`
	Label        string   `json:"label"`
	PriceMonthly float64  `json:"price_monthly"`
	Highlights   []string `json:"highlights"`
}

var plans = []Plan{
	{
		Tier:         RawFree,
		Label:        "Listed (Free)",
		PriceMonthly: 0,
		Highlights: []string{
			"Directory listing",
			"Receive quote requests",
		},
	},
	{
		Tier:         RawVisible,
		Label:        "Visible",
		PriceMonthly: 49,
		Highlights: []string{
			"Full lead contact details",
			"Priority directory placement",
			"Lead pipeline management",
			"Advanced analytics",
		},
	},
	{
		Tier:         RawVerified,
		Label:        "Verified",
		PriceMonthly: 149,
		Highlights: []string{
			"Everything in Visible",
			"Verified badge",
			"Review request flow",
			"Account management",
		},
	},
}

// Plans returns the plan catalog in ascending level order
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanFor returns the plan for the level of a raw tier
func PlanFor(raw string) Plan {
	return plans[int(Normalize(raw))]
}
