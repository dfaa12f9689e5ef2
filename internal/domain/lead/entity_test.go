package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusSets(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusLost.IsValid())
	assert.False(t, Status("archived").IsValid())

	assert.True(t, StatusWon.IsTerminal())
	assert.True(t, StatusLost.IsTerminal())
	assert.False(t, StatusQuoted.IsTerminal())

	assert.True(t, StatusPending.IsPipeline())
	assert.True(t, StatusQuoted.IsPipeline())
	assert.False(t, StatusWon.IsPipeline())
}

func TestLostReasonIsValid(t *testing.T) {
	for _, r := range []LostReason{LostTooExpensive, LostCompetitor, LostNoResponse, LostOther} {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, LostReason("").IsValid())
	assert.False(t, LostReason("ghosted").IsValid())
}

func TestStampSetsOnce(t *testing.T) {
	l := &Lead{Status: StatusPending}
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	assert.Equal(t, "viewed_at", l.Stamp(StatusViewed, t1))
	assert.Equal(t, t1, *l.ViewedAt)

	// revisiting a stage must not move the original timestamp
	assert.Equal(t, "", l.Stamp(StatusViewed, t2))
	assert.Equal(t, t1, *l.ViewedAt)

	assert.Equal(t, "contacted_at", l.Stamp(StatusContacted, t2))
	assert.Equal(t, "quoted_at", l.Stamp(StatusQuoted, t2))
	assert.Equal(t, "closed_at", l.Stamp(StatusWon, t2))
	assert.Equal(t, "", l.Stamp(StatusLost, t2))
	assert.Equal(t, t2, *l.ClosedAt)
}

func TestCanTransition(t *testing.T) {
	open := &Lead{Status: StatusViewed}
	assert.NoError(t, open.CanTransition(StatusContacted))
	assert.NoError(t, open.CanTransition(StatusPending)) // backward moves allowed
	assert.NoError(t, open.CanTransition(StatusWon))
	assert.ErrorIs(t, open.CanTransition(StatusViewed), ErrSameStatus)
	assert.ErrorIs(t, open.CanTransition(Status("bogus")), ErrInvalidStatus)

	won := &Lead{Status: StatusWon}
	assert.ErrorIs(t, won.CanTransition(StatusLost), ErrLeadClosed)
	assert.ErrorIs(t, won.CanTransition(StatusViewed), ErrLeadClosed)

	lost := &Lead{Status: StatusLost}
	assert.ErrorIs(t, lost.CanTransition(StatusWon), ErrLeadClosed)
}
