package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_Passthrough(t *testing.T) {
	// sufficient tier: no lock, content is served unmodified
	assert.Nil(t, Gate("visible", "visible", FeatureLeadContacts))
	assert.Nil(t, Gate("managed", "visible", FeatureLeadContacts))
	assert.Nil(t, Gate("verified", "verified", FeatureReviewRequests))
}

func TestGate_LockCarriesRequiredPlanPrice(t *testing.T) {
	lock := Gate("free", "visible", FeatureLeadContacts)

	assert.NotNil(t, lock)
	assert.Equal(t, FeatureLeadContacts, lock.Feature)
	assert.Equal(t, "visible", lock.RequiredTier)
	assert.Equal(t, "Visible", lock.RequiredName)
	assert.Equal(t, float64(49), lock.PriceMonthly)
	assert.Equal(t, "/vendor-dashboard/upgrade?tier=visible", lock.UpgradeURL)
}

func TestGate_VerifiedRequirement(t *testing.T) {
	lock := Gate("basic", "verified", FeatureReviewRequests)

	assert.NotNil(t, lock)
	assert.Equal(t, "verified", lock.RequiredTier)
	assert.Equal(t, float64(149), lock.PriceMonthly)
}

func TestGate_UnknownTierIsTreatedAsFree(t *testing.T) {
	lock := Gate("unknown-garbage", "visible", FeaturePipeline)
	assert.NotNil(t, lock)
	assert.Equal(t, "visible", lock.RequiredTier)
}

func TestGate_DeterministicPerEvaluation(t *testing.T) {
	// re-evaluated each time: changing the tier value changes the verdict
	assert.NotNil(t, Gate("free", "visible", FeaturePipeline))
	assert.Nil(t, Gate("basic", "visible", FeaturePipeline))
}
