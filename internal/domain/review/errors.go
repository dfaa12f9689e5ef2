package review

import (
	"errors"

	"tendorai/internal/domain/tier"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrRequestNotFound = errors.New("review request not found")
	ErrRequestExists   = errors.New("review already requested for this lead")
	ErrTokenExpired    = errors.New("review request has expired")
	ErrTokenUsed       = errors.New("review request already used")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus   = errors.New("invalid review status")
	ErrLeadNotWon      = errors.New("reviews can only be requested for won leads")
	ErrNotLeadOwner    = errors.New("lead belongs to another vendor")
	ErrNoCustomerEmail = errors.New("lead has no customer email")
)

// TierError carries the upgrade lock for the handler to surface
type TierError struct {
	Lock *tier.Lock
}

func (e *TierError) Error() string {
	return "upgrade required: " + e.Lock.Feature.Name
}
