package analytics

import (
	"context"
	"time"

	"tendorai/internal/domain/lead"
	"tendorai/internal/domain/vendor"
)

// trendWindow is how far back the monthly lead trend reaches
const trendWindow = 6 * 30 * 24 * time.Hour

// LeadStats is the slice of the lead repository analytics reads from
type LeadStats interface {
	CountByStatus(ctx context.Context, vendorID int64) (map[lead.Status]int64, error)
	MonthlyCreated(ctx context.Context, vendorID int64, since time.Time) ([]lead.MonthlyCount, error)
	WonValueTotal(ctx context.Context, vendorID int64) (float64, error)
}

// VendorDirectory resolves the authenticated vendor
type VendorDirectory interface {
	GetByUserID(ctx context.Context, userID int64) (*vendor.Vendor, error)
}

type Service struct {
	leads   LeadStats
	vendors VendorDirectory
}

func NewService(leads LeadStats, vendors VendorDirectory) *Service {
	return &Service{leads: leads, vendors: vendors}
}

// Summary computes the free-tier dashboard numbers: volume, pipeline
// counts and the won conversion rate.
func (s *Service) Summary(ctx context.Context, userID int64) (*SummaryResponse, error) {
	v, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.leads.CountByStatus(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	resp := &SummaryResponse{
		TotalLeads:   total,
		Counts:       counts,
		ProfileViews: v.ProfileViews,
		Rating:       v.Rating,
		TotalReviews: v.TotalReviews,
	}
	if total > 0 {
		resp.ConversionRate = float64(counts[lead.StatusWon]) / float64(total)
	}
	return resp, nil
}

// Advanced computes the paid-tier numbers: monthly lead trend and the
// total value of won leads. The route is tier-gated; the service only
// does the arithmetic.
func (s *Service) Advanced(ctx context.Context, userID int64) (*AdvancedResponse, error) {
	v, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	trend, err := s.leads.MonthlyCreated(ctx, v.ID, time.Now().Add(-trendWindow))
	if err != nil {
		return nil, err
	}

	wonValue, err := s.leads.WonValueTotal(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	counts, err := s.leads.CountByStatus(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	resp := &AdvancedResponse{
		MonthlyLeads:  trend,
		WonValueTotal: wonValue,
	}

	// stage-to-stage drop-off across the ordered pipeline
	entered := counts[lead.StatusPending] + counts[lead.StatusViewed] +
		counts[lead.StatusContacted] + counts[lead.StatusQuoted] +
		counts[lead.StatusWon] + counts[lead.StatusLost]
	if entered > 0 {
		quotedOrBeyond := counts[lead.StatusQuoted] + counts[lead.StatusWon] + counts[lead.StatusLost]
		resp.QuoteRate = float64(quotedOrBeyond) / float64(entered)
		resp.WinRate = float64(counts[lead.StatusWon]) / float64(entered)
	}

	return resp, nil
}
