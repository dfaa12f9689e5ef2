package review

import (
	"context"
	"sync"
	"testing"
	"time"

	"tendorai/internal/domain/lead"
	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	links []string
}

func (m *fakeMailer) SendReviewRequest(to, _, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	m.links = append(m.links, link)
	return nil
}

type fixture struct {
	svc     *Service
	repo    *Repository
	vendors *vendor.Repository
	leads   *lead.Repository
	mailer  *fakeMailer
}

func setupReview(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&vendor.Vendor{}, &lead.Lead{}, &lead.Note{}, &Review{}, &Request{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	vendors := vendor.NewRepository(db)
	require.NoError(t, vendors.Create(context.Background(), &vendor.Vendor{
		ID: 1, UserID: 10, CompanyName: "Apex Copiers",
		Tier: tier.RawVerified, Status: vendor.StatusActive,
	}))
	require.NoError(t, vendors.Create(context.Background(), &vendor.Vendor{
		ID: 2, UserID: 20, CompanyName: "Budget Print",
		Tier: tier.RawFree, Status: vendor.StatusActive,
	}))

	leads := lead.NewRepository(db)
	repo := NewRepository(db)
	mailer := &fakeMailer{}
	svc := NewService(repo, vendors, leads, mailer, "https://tendorai.example")
	return &fixture{svc: svc, repo: repo, vendors: vendors, leads: leads, mailer: mailer}
}

func (f *fixture) wonLead(t *testing.T, vendorID int64, email string) *lead.Lead {
	t.Helper()
	l := &lead.Lead{
		VendorID:    vendorID,
		CompanyName: "Acme Ltd",
		ContactName: "Jordan Smith",
		Email:       email,
		Status:      lead.StatusWon,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, f.leads.Create(context.Background(), l))
	return l
}

func TestRequestReview(t *testing.T) {
	f := setupReview(t)
	l := f.wonLead(t, 1, "jordan@acme.example")

	req, err := f.svc.RequestReview(context.Background(), 10, l.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, req.Token)
	assert.True(t, req.ExpiresAt.After(time.Now().Add(29*24*time.Hour)))

	// a second invitation for the same lead is rejected
	_, err = f.svc.RequestReview(context.Background(), 10, l.ID)
	assert.ErrorIs(t, err, ErrRequestExists)
}

func TestRequestReviewRequiresWonLead(t *testing.T) {
	f := setupReview(t)
	l := &lead.Lead{VendorID: 1, Email: "j@a.example", Status: lead.StatusQuoted}
	require.NoError(t, f.leads.Create(context.Background(), l))

	_, err := f.svc.RequestReview(context.Background(), 10, l.ID)
	assert.ErrorIs(t, err, ErrLeadNotWon)
}

func TestRequestReviewTierGate(t *testing.T) {
	f := setupReview(t)
	l := f.wonLead(t, 2, "jordan@acme.example")

	_, err := f.svc.RequestReview(context.Background(), 20, l.ID)
	var tierErr *TierError
	require.ErrorAs(t, err, &tierErr)
	assert.Equal(t, tier.RawVerified, tierErr.Lock.RequiredTier)
}

func TestRequestReviewOwnershipAndEmail(t *testing.T) {
	f := setupReview(t)
	other := f.wonLead(t, 2, "jordan@acme.example")

	_, err := f.svc.RequestReview(context.Background(), 10, other.ID)
	assert.ErrorIs(t, err, ErrNotLeadOwner)

	noEmail := f.wonLead(t, 1, "")
	_, err = f.svc.RequestReview(context.Background(), 10, noEmail.ID)
	assert.ErrorIs(t, err, ErrNoCustomerEmail)
}

func TestSubmitWithToken(t *testing.T) {
	f := setupReview(t)
	l := f.wonLead(t, 1, "jordan@acme.example")
	req, err := f.svc.RequestReview(context.Background(), 10, l.ID)
	require.NoError(t, err)

	rev, err := f.svc.SubmitWithToken(context.Background(), req.Token, &SubmitRequest{
		AuthorName: "Jordan Smith",
		Rating:     5,
		Comment:    "Fast and fair",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, rev.Status)
	assert.Equal(t, int64(1), rev.VendorID)

	// one-time: the token cannot be redeemed twice
	_, err = f.svc.SubmitWithToken(context.Background(), req.Token, &SubmitRequest{
		AuthorName: "Jordan Smith", Rating: 4,
	})
	assert.ErrorIs(t, err, ErrTokenUsed)
}

func TestSubmitWithTokenExpired(t *testing.T) {
	f := setupReview(t)
	req := &Request{
		VendorID: 1, LeadID: 99, Token: "expired-token",
		Email: "j@a.example", ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
	}
	require.NoError(t, f.repo.CreateRequest(context.Background(), req))

	_, err := f.svc.SubmitWithToken(context.Background(), "expired-token", &SubmitRequest{
		AuthorName: "J", Rating: 3,
	})
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSubmitWithTokenInvalidRating(t *testing.T) {
	f := setupReview(t)
	l := f.wonLead(t, 1, "jordan@acme.example")
	req, err := f.svc.RequestReview(context.Background(), 10, l.ID)
	require.NoError(t, err)

	for _, rating := range []int{0, -1, 6} {
		_, err := f.svc.SubmitWithToken(context.Background(), req.Token, &SubmitRequest{
			AuthorName: "J", Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, rating)
	}
}

func TestModerationRefreshesAggregate(t *testing.T) {
	f := setupReview(t)
	ctx := context.Background()

	for i, rating := range []int{5, 3} {
		l := f.wonLead(t, 1, "c@a.example")
		req, err := f.svc.RequestReview(ctx, 10, l.ID)
		require.NoError(t, err)
		rev, err := f.svc.SubmitWithToken(ctx, req.Token, &SubmitRequest{
			AuthorName: "Customer", Rating: rating,
		})
		require.NoError(t, err)

		// pending reviews stay out of the public list and aggregate
		public, total, err := f.svc.ListForVendor(ctx, 1, 20, 0)
		require.NoError(t, err)
		assert.Len(t, public, i)

		_, err = f.svc.Moderate(ctx, rev.ID, StatusApproved)
		require.NoError(t, err)

		public, total, err = f.svc.ListForVendor(ctx, 1, 20, 0)
		require.NoError(t, err)
		assert.Len(t, public, i+1)
		assert.Equal(t, int64(i+1), total)
	}

	v, err := f.vendors.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v.Rating, 0.001)
	assert.Equal(t, 2, v.TotalReviews)

	// hiding a review pulls it back out of the aggregate
	queue, _, err := f.svc.ModerationQueue(ctx, StatusApproved, 50, 0)
	require.NoError(t, err)
	_, err = f.svc.Moderate(ctx, queue[0].ID, StatusHidden)
	require.NoError(t, err)

	v, err = f.vendors.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v.TotalReviews)
}

func TestPurgeExpiredRequests(t *testing.T) {
	f := setupReview(t)
	ctx := context.Background()

	require.NoError(t, f.repo.CreateRequest(ctx, &Request{
		VendorID: 1, LeadID: 100, Token: "stale",
		Email: "a@a.example", ExpiresAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, f.repo.CreateRequest(ctx, &Request{
		VendorID: 1, LeadID: 101, Token: "fresh",
		Email: "b@a.example", ExpiresAt: time.Now().Add(time.Hour),
	}))

	purged, err := f.svc.PurgeExpiredRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = f.repo.GetRequestByToken(ctx, "stale")
	assert.ErrorIs(t, err, ErrRequestNotFound)
	_, err = f.repo.GetRequestByToken(ctx, "fresh")
	assert.NoError(t, err)
}
