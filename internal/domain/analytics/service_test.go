package analytics

import (
	"context"
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

func setupAnalytics(t *testing.T) (*Service, *lead.Repository) {
	t.Helper()
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&vendor.Vendor{}, &lead.Lead{}, &lead.Note{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	vendors := vendor.NewRepository(db)
	require.NoError(t, vendors.Create(context.Background(), &vendor.Vendor{
		ID: 1, UserID: 10, CompanyName: "Apex Copiers",
		Tier: tier.RawVisible, Status: vendor.StatusActive,
		ProfileViews: 42, Rating: 4.5, TotalReviews: 8,
	}))

	leads := lead.NewRepository(db)
	return NewService(leads, vendors), leads
}

func seedLead(t *testing.T, leads *lead.Repository, status lead.Status, createdAt time.Time, value *float64) {
	t.Helper()
	require.NoError(t, leads.Create(context.Background(), &lead.Lead{
		VendorID: 1, CompanyName: "Acme", Status: status,
		QuoteValue: value, CreatedAt: createdAt, UpdatedAt: createdAt,
	}))
}

func TestSummary(t *testing.T) {
	svc, leads := setupAnalytics(t)
	now := time.Now()

	seedLead(t, leads, lead.StatusPending, now, nil)
	seedLead(t, leads, lead.StatusContacted, now, nil)
	v := 900.0
	seedLead(t, leads, lead.StatusWon, now, &v)
	seedLead(t, leads, lead.StatusWon, now, nil)

	out, err := svc.Summary(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.TotalLeads)
	assert.Equal(t, int64(2), out.Counts[lead.StatusWon])
	assert.InDelta(t, 0.5, out.ConversionRate, 0.001)
	assert.Equal(t, int64(42), out.ProfileViews)
	assert.Equal(t, 4.5, out.Rating)
}

func TestSummaryEmpty(t *testing.T) {
	svc, _ := setupAnalytics(t)

	out, err := svc.Summary(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, out.TotalLeads)
	assert.Zero(t, out.ConversionRate)
}

func TestSummaryUnknownVendor(t *testing.T) {
	svc, _ := setupAnalytics(t)

	_, err := svc.Summary(context.Background(), 999)
	assert.ErrorIs(t, err, vendor.ErrVendorNotFound)
}

func TestAdvanced(t *testing.T) {
	svc, leads := setupAnalytics(t)
	now := time.Now()

	seedLead(t, leads, lead.StatusPending, now.AddDate(0, -2, 0), nil)
	seedLead(t, leads, lead.StatusQuoted, now.AddDate(0, -1, 0), nil)
	v1, v2 := 1500.0, 800.0
	seedLead(t, leads, lead.StatusWon, now, &v1)
	seedLead(t, leads, lead.StatusWon, now, &v2)
	seedLead(t, leads, lead.StatusWon, now, nil) // won without value stays out of the total
	seedLead(t, leads, lead.StatusLost, now, nil)

	out, err := svc.Advanced(context.Background(), 10)
	require.NoError(t, err)

	assert.InDelta(t, 2300.0, out.WonValueTotal, 0.001)
	assert.InDelta(t, 5.0/6.0, out.QuoteRate, 0.001) // quoted or closed out of six
	assert.InDelta(t, 3.0/6.0, out.WinRate, 0.001)

	var total int64
	for _, m := range out.MonthlyLeads {
		total += m.Count
	}
	assert.Equal(t, int64(6), total)
	require.NotEmpty(t, out.MonthlyLeads)
	assert.Regexp(t, `^\d{4}-\d{2}$`, out.MonthlyLeads[0].Month)
}
