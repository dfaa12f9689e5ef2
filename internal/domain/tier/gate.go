package tier

// Feature names a gated capability for upgrade CTA copy
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var (
	FeatureLeadContacts = Feature{
		Name:        "Full lead contact details",
		Description: "See the requester's name, email and phone for every lead",
	}
	FeatureAdvancedAnalytics = Feature{
		Name:        "Advanced analytics",
		Description: "Monthly lead trends, win values and conversion breakdowns",
	}
	FeaturePipeline = Feature{
		Name:        "Lead pipeline management",
		Description: "Move leads through contacted and quoted stages",
	}
	FeatureReviewRequests = Feature{
		Name:        "Review requests",
		Description: "Invite customers to review you after a won lead",
	}
)

// Lock describes why content is withheld and what unlocks it. Handlers
// attach it to responses in place of gated data.
type Lock struct {
	Feature      Feature `json:"feature"`
	RequiredTier string  `json:"required_tier"`
	RequiredName string  `json:"required_name"`
	PriceMonthly float64 `json:"price_monthly"`
	UpgradeURL   string  `json:"upgrade_url"`
}

// Gate evaluates access for a feature. Returns nil when the current
// tier satisfies the requirement, otherwise a Lock with the upgrade
// price for the required tier. Pure; re-evaluated on every call.
func Gate(currentRaw, requiredRaw string, feature Feature) *Lock {
	if HasAccess(currentRaw, requiredRaw) {
		return nil
	}
	plan := PlanFor(requiredRaw)
	return &Lock{
		Feature:      feature,
		RequiredTier: plan.Tier,
		RequiredName: plan.Label,
		PriceMonthly: plan.PriceMonthly,
		UpgradeURL:   "/vendor-dashboard/upgrade?tier=" + plan.Tier,
	}
}
