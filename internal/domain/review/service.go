package review

import (
	"context"
	"strings"
	"time"

	"tendorai/internal/domain/lead"
	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"

	"github.com/google/uuid"
)

// requestTTL is how long a review invitation stays redeemable
const requestTTL = 30 * 24 * time.Hour

// VendorDirectory resolves vendors for ownership and aggregate updates
type VendorDirectory interface {
	GetByID(ctx context.Context, id int64) (*vendor.Vendor, error)
	GetByUserID(ctx context.Context, userID int64) (*vendor.Vendor, error)
	UpdateRating(ctx context.Context, id int64, rating float64, totalReviews int) error
}

// LeadReader fetches leads for won-lead checks
type LeadReader interface {
	GetByID(ctx context.Context, id int64) (*lead.Lead, error)
}

// Mailer delivers the review invitation; may be nil
type Mailer interface {
	SendReviewRequest(to, vendorName, link string) error
}

type Service struct {
	repo    *Repository
	vendors VendorDirectory
	leads   LeadReader
	mailer  Mailer
	baseURL string
}

func NewService(repo *Repository, vendors VendorDirectory, leads LeadReader, mailer Mailer, baseURL string) *Service {
	return &Service{
		repo:    repo,
		vendors: vendors,
		leads:   leads,
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// RequestReview creates a one-time invitation for the customer behind a
// won lead. One invitation per lead; requires a paid tier.
func (s *Service) RequestReview(ctx context.Context, vendorUserID, leadID int64) (*Request, error) {
	v, err := s.vendors.GetByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}
	if lock := tier.Gate(v.Tier, tier.RawVerified, tier.FeatureReviewRequests); lock != nil {
		return nil, &TierError{Lock: lock}
	}

	l, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if l.VendorID != v.ID {
		return nil, ErrNotLeadOwner
	}
	if l.Status != lead.StatusWon {
		return nil, ErrLeadNotWon
	}
	if l.Email == "" {
		return nil, ErrNoCustomerEmail
	}

	req := &Request{
		VendorID:  v.ID,
		LeadID:    l.ID,
		Token:     uuid.NewString(),
		Email:     l.Email,
		ExpiresAt: time.Now().Add(requestTTL),
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		link := s.baseURL + "/review/" + req.Token
		go func(to, name, link string) {
			_ = s.mailer.SendReviewRequest(to, name, link)
		}(req.Email, v.CompanyName, link)
	}

	return req, nil
}

// SubmitWithToken redeems an invitation into a pending review
func (s *Service) SubmitWithToken(ctx context.Context, token string, in *SubmitRequest) (*Review, error) {
	req, err := s.repo.GetRequestByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := req.Usable(time.Now()); err != nil {
		return nil, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	now := time.Now()
	rev := &Review{
		VendorID:    req.VendorID,
		LeadID:      &req.LeadID,
		AuthorName:  strings.TrimSpace(in.AuthorName),
		AuthorEmail: req.Email,
		Rating:      in.Rating,
		Comment:     strings.TrimSpace(in.Comment),
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.RedeemRequest(ctx, req.ID, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// ListForVendor returns a vendor's approved reviews for the public profile
func (s *Service) ListForVendor(ctx context.Context, vendorID int64, limit, offset int) ([]Review, int64, error) {
	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		return nil, 0, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListApproved(ctx, vendorID, limit, offset)
}

// ModerationQueue lists reviews in a given status for the admin console
func (s *Service) ModerationQueue(ctx context.Context, status Status, limit, offset int) ([]Review, int64, error) {
	if !status.IsValid() {
		return nil, 0, ErrInvalidStatus
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByStatus(ctx, status, limit, offset)
}

// Moderate sets a review's status and refreshes the vendor aggregate,
// since approving or hiding changes what counts toward the average
func (s *Service) Moderate(ctx context.Context, reviewID int64, status Status) (*Review, error) {
	if status != StatusApproved && status != StatusHidden {
		return nil, ErrInvalidStatus
	}

	rev, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, reviewID, status); err != nil {
		return nil, err
	}
	rev.Status = status

	if err := s.RefreshVendorAggregate(ctx, rev.VendorID); err != nil {
		return nil, err
	}

	return rev, nil
}

// RefreshVendorAggregate recomputes one vendor's denormalized rating
func (s *Service) RefreshVendorAggregate(ctx context.Context, vendorID int64) error {
	avg, count, err := s.repo.Aggregate(ctx, vendorID)
	if err != nil {
		return err
	}
	return s.vendors.UpdateRating(ctx, vendorID, avg, count)
}

// RefreshAllAggregates recomputes every reviewed vendor's rating; run
// from the hourly job to repair any drift
func (s *Service) RefreshAllAggregates(ctx context.Context) error {
	ids, err := s.repo.VendorIDsWithReviews(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.RefreshVendorAggregate(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// PurgeExpiredRequests removes stale unredeemed invitations
func (s *Service) PurgeExpiredRequests(ctx context.Context) (int64, error) {
	return s.repo.PurgeExpiredRequests(ctx, time.Now())
}
