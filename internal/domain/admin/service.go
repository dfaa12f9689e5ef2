package admin

import (
	"context"
	"strings"
	"time"

	"tendorai/internal/domain/lead"
	"tendorai/internal/domain/review"
	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"

	"gorm.io/gorm"
)

// VendorFilters narrow the admin vendor listing
type VendorFilters struct {
	Tier   string
	Status string
	Query  string
	Limit  int
	Offset int
}

type Service struct {
	db      *gorm.DB
	vendors *vendor.Repository
	reviews *review.Repository
}

func NewService(db *gorm.DB, vendors *vendor.Repository, reviews *review.Repository) *Service {
	return &Service{db: db, vendors: vendors, reviews: reviews}
}

// ListVendors returns vendors for the admin console, filterable by raw
// tier, status and a company-name search.
func (s *Service) ListVendors(ctx context.Context, f VendorFilters) ([]vendor.Vendor, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := s.db.WithContext(ctx).Model(&vendor.Vendor{}).Where("deleted_at IS NULL")

	if f.Tier != "" {
		if !tier.IsKnown(f.Tier) {
			return nil, 0, vendor.ErrInvalidTier
		}
		q = q.Where("tier = ?", strings.ToLower(strings.TrimSpace(f.Tier)))
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Query != "" {
		q = q.Where("company_name LIKE ?", "%"+strings.TrimSpace(f.Query)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vendors []vendor.Vendor
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&vendors).Error
	return vendors, total, err
}

// SetVendorTier writes the canonical spelling for the requested tier
func (s *Service) SetVendorTier(ctx context.Context, vendorID int64, rawTier string) (*vendor.Vendor, error) {
	if !tier.IsKnown(rawTier) {
		return nil, vendor.ErrInvalidTier
	}

	v, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	v.Tier = tier.Canonical(rawTier)
	v.UpdatedAt = time.Now()
	if err := s.vendors.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetVendorStatus activates or suspends a vendor account
func (s *Service) SetVendorStatus(ctx context.Context, vendorID int64, status vendor.Status) (*vendor.Vendor, error) {
	switch status {
	case vendor.StatusPending, vendor.StatusActive, vendor.StatusSuspended:
	default:
		return nil, ErrInvalidVendorStatus
	}

	v, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	v.Status = status
	v.UpdatedAt = time.Now()
	if err := s.vendors.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVendor soft-deletes; the row stays for lead history
func (s *Service) DeleteVendor(ctx context.Context, vendorID int64) error {
	v, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return err
	}

	now := time.Now()
	v.DeletedAt = &now
	v.Status = vendor.StatusSuspended
	v.UpdatedAt = now
	return s.vendors.Update(ctx, v)
}

// PlatformStats is the admin dashboard overview
type PlatformStats struct {
	VendorsByTier  map[string]int64      `json:"vendors_by_tier"`
	TotalVendors   int64                 `json:"total_vendors"`
	TotalLeads     int64                 `json:"total_leads"`
	LeadsByStatus  map[lead.Status]int64 `json:"leads_by_status"`
	PendingReviews int64                 `json:"pending_reviews"`
	MRR            float64               `json:"mrr"`
}

// Stats aggregates platform-wide numbers. MRR is derived from the
// plan catalog: tier counts times monthly price.
func (s *Service) Stats(ctx context.Context) (*PlatformStats, error) {
	byTier, err := s.vendors.CountByTier(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		VendorsByTier: byTier,
		LeadsByStatus: make(map[lead.Status]int64),
	}
	for raw, n := range byTier {
		stats.TotalVendors += n
		stats.MRR += float64(n) * tier.PlanFor(raw).PriceMonthly
	}

	rows, err := s.db.WithContext(ctx).
		Model(&lead.Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status lead.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.LeadsByStatus[status] = count
		stats.TotalLeads += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if _, pending, err := s.reviews.ListByStatus(ctx, review.StatusPending, 1, 0); err == nil {
		stats.PendingReviews = pending
	} else {
		return nil, err
	}

	return stats, nil
}
