package admin

import (
	"context"
	"testing"
	"time"

	"tendorai/internal/domain/lead"
	"tendorai/internal/domain/review"
	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupAdmin(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&vendor.Vendor{}, &lead.Lead{}, &lead.Note{}, &review.Review{}, &review.Request{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewService(db, vendor.NewRepository(db), review.NewRepository(db)), db
}

func seedVendors(t *testing.T, db *gorm.DB) {
	t.Helper()
	vendors := []vendor.Vendor{
		{ID: 1, UserID: 10, CompanyName: "Apex Copiers", Tier: tier.RawVerified, Status: vendor.StatusActive},
		{ID: 2, UserID: 20, CompanyName: "Budget Print", Tier: tier.RawFree, Status: vendor.StatusActive},
		{ID: 3, UserID: 30, CompanyName: "City Telecoms", Tier: tier.RawVisible, Status: vendor.StatusPending},
	}
	for i := range vendors {
		require.NoError(t, db.Create(&vendors[i]).Error)
	}
}

func TestListVendorsFilters(t *testing.T) {
	svc, db := setupAdmin(t)
	seedVendors(t, db)
	ctx := context.Background()

	all, total, err := svc.ListVendors(ctx, VendorFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	free, _, err := svc.ListVendors(ctx, VendorFilters{Tier: tier.RawFree})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "Budget Print", free[0].CompanyName)

	pending, _, err := svc.ListVendors(ctx, VendorFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	byName, _, err := svc.ListVendors(ctx, VendorFilters{Query: "Telecom"})
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	_, _, err = svc.ListVendors(ctx, VendorFilters{Tier: "platinum"})
	assert.ErrorIs(t, err, vendor.ErrInvalidTier)
}

func TestSetVendorTierCanonicalizes(t *testing.T) {
	svc, db := setupAdmin(t)
	seedVendors(t, db)
	ctx := context.Background()

	// legacy spelling is accepted but stored canonically
	v, err := svc.SetVendorTier(ctx, 2, "Basic")
	require.NoError(t, err)
	assert.Equal(t, tier.RawVisible, v.Tier)

	_, err = svc.SetVendorTier(ctx, 2, "platinum")
	assert.ErrorIs(t, err, vendor.ErrInvalidTier)

	_, err = svc.SetVendorTier(ctx, 99, tier.RawFree)
	assert.ErrorIs(t, err, vendor.ErrVendorNotFound)
}

func TestSetVendorStatus(t *testing.T) {
	svc, db := setupAdmin(t)
	seedVendors(t, db)
	ctx := context.Background()

	v, err := svc.SetVendorStatus(ctx, 3, vendor.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, vendor.StatusActive, v.Status)

	_, err = svc.SetVendorStatus(ctx, 3, vendor.Status("banned"))
	assert.ErrorIs(t, err, ErrInvalidVendorStatus)
}

func TestDeleteVendorIsSoft(t *testing.T) {
	svc, db := setupAdmin(t)
	seedVendors(t, db)
	ctx := context.Background()

	require.NoError(t, svc.DeleteVendor(ctx, 2))

	// gone from listings, but the row survives for lead history
	_, total, err := svc.ListVendors(ctx, VendorFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	var raw vendor.Vendor
	require.NoError(t, db.Unscoped().First(&raw, "id = ?", 2).Error)
	assert.NotNil(t, raw.DeletedAt)
}

func TestPlatformStats(t *testing.T) {
	svc, db := setupAdmin(t)
	seedVendors(t, db)
	ctx := context.Background()

	now := time.Now()
	leads := []lead.Lead{
		{VendorID: 1, Status: lead.StatusPending, CreatedAt: now},
		{VendorID: 1, Status: lead.StatusWon, CreatedAt: now},
		{VendorID: 2, Status: lead.StatusPending, CreatedAt: now},
	}
	for i := range leads {
		require.NoError(t, db.Create(&leads[i]).Error)
	}
	require.NoError(t, db.Create(&review.Review{
		VendorID: 1, AuthorName: "J", Rating: 5, Status: review.StatusPending,
	}).Error)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalVendors)
	assert.Equal(t, int64(3), stats.TotalLeads)
	assert.Equal(t, int64(2), stats.LeadsByStatus[lead.StatusPending])
	assert.Equal(t, int64(1), stats.PendingReviews)
	// one verified (£149) plus one visible (£49)
	assert.InDelta(t, 198.0, stats.MRR, 0.001)
}
