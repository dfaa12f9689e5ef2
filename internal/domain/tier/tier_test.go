package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_KnownSpellings(t *testing.T) {
	cases := map[string]Level{
		"free":     LevelFree,
		"listed":   LevelFree,
		"basic":    LevelVisible,
		"visible":  LevelVisible,
		"managed":  LevelVerified,
		"verified": LevelVerified,
	}

	for raw, want := range cases {
		assert.Equal(t, want, Normalize(raw), "raw=%s", raw)
	}
}

func TestNormalize_IsTotal(t *testing.T) {
	// any string maps to a valid level, unknowns default to free
	inputs := []string{"", "unknown-garbage", "FREE", "  Managed  ", "premium", "0", "视界"}

	for _, raw := range inputs {
		level := Normalize(raw)
		assert.GreaterOrEqual(t, int(level), 0)
		assert.LessOrEqual(t, int(level), 2)
	}

	assert.Equal(t, LevelFree, Normalize("unknown-garbage"))
	assert.Equal(t, LevelFree, Normalize(""))
}

func TestNormalize_CaseAndWhitespace(t *testing.T) {
	assert.Equal(t, LevelVerified, Normalize("MANAGED"))
	assert.Equal(t, LevelVisible, Normalize(" Basic "))
}

func TestHasAccess(t *testing.T) {
	assert.True(t, HasAccess("managed", "visible"))
	assert.True(t, HasAccess("verified", "verified"))
	assert.True(t, HasAccess("basic", "visible"))
	assert.True(t, HasAccess("listed", "free"))

	assert.False(t, HasAccess("free", "verified"))
	assert.False(t, HasAccess("free", "visible"))
	assert.False(t, HasAccess("unknown-garbage", "visible"))
	assert.False(t, HasAccess("basic", "managed"))
}

func TestHasAccess_MatchesOrdering(t *testing.T) {
	raws := []string{"free", "listed", "basic", "visible", "managed", "verified", "junk"}

	for _, current := range raws {
		for _, required := range raws {
			want := Normalize(current) >= Normalize(required)
			assert.Equal(t, want, HasAccess(current, required),
				"current=%s required=%s", current, required)
		}
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Listed (Free)", Label("free"))
	assert.Equal(t, "Listed (Free)", Label("listed"))
	assert.Equal(t, "Listed (Free)", Label("whatever"))
	assert.Equal(t, "Visible", Label("basic"))
	assert.Equal(t, "Visible", Label("visible"))
	assert.Equal(t, "Verified", Label("managed"))
	assert.Equal(t, "Verified", Label("verified"))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "free", Canonical("listed"))
	assert.Equal(t, "visible", Canonical("basic"))
	assert.Equal(t, "verified", Canonical("managed"))
	assert.Equal(t, "free", Canonical("garbage"))
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("managed"))
	assert.True(t, IsKnown("Verified"))
	assert.False(t, IsKnown("premium"))
	assert.False(t, IsKnown(""))
}

func TestPlanFor(t *testing.T) {
	free := PlanFor("listed")
	assert.Equal(t, "free", free.Tier)
	assert.Equal(t, float64(0), free.PriceMonthly)

	visible := PlanFor("basic")
	assert.Equal(t, "visible", visible.Tier)
	assert.Equal(t, float64(49), visible.PriceMonthly)

	verified := PlanFor("managed")
	assert.Equal(t, "verified", verified.Tier)
	assert.Equal(t, float64(149), verified.PriceMonthly)
}
