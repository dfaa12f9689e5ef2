package lead

import (
	"context"
	"strings"
	"time"

	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"
)

// VendorDirectory resolves vendor records for ownership and tier checks
type VendorDirectory interface {
	GetByID(ctx context.Context, id int64) (*vendor.Vendor, error)
	GetByUserID(ctx context.Context, userID int64) (*vendor.Vendor, error)
}

// NotificationSender pushes dashboard events; best-effort, may be nil
type NotificationSender interface {
	NotifyLeadCreated(ctx context.Context, vendorUserID int64, l *Lead)
	NotifyLeadStatusChanged(ctx context.Context, vendorUserID int64, l *Lead)
}

// Mailer sends the new-lead email to the vendor; may be nil
type Mailer interface {
	SendNewLead(to string, vendorName string, l *Lead) error
}

// Service handles the lead lifecycle
type Service struct {
	repo    *Repository
	vendors VendorDirectory
	notifs  NotificationSender
	mailer  Mailer
}

func NewService(repo *Repository, vendors VendorDirectory, notifs NotificationSender, mailer Mailer) *Service {
	return &Service{
		repo:    repo,
		vendors: vendors,
		notifs:  notifs,
		mailer:  mailer,
	}
}

// Submit creates a pending lead from a public quote request
func (s *Service) Submit(ctx context.Context, req *SubmitQuoteRequest) (*Lead, error) {
	v, err := s.vendors.GetByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !v.IsActive() {
		return nil, vendor.ErrVendorInactive
	}
	if !vendor.IsValidCategory(req.Category) {
		return nil, vendor.ErrInvalidCategory
	}

	now := time.Now()
	l := &Lead{
		VendorID:    v.ID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Postcode:    strings.ToUpper(strings.TrimSpace(req.Postcode)),
		Category:    req.Category,
		Message:     strings.TrimSpace(req.Message),
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyLeadCreated(ctx, v.UserID, l)
	}
	if s.mailer != nil && v.Email != "" {
		go func(email, name string, copied Lead) {
			_ = s.mailer.SendNewLead(email, name, &copied)
		}(v.Email, v.CompanyName, *l)
	}

	return l, nil
}

// ListForVendor returns the authenticated vendor's leads plus status counts
func (s *Service) ListForVendor(ctx context.Context, userID int64, limit, offset int) ([]Lead, int64, map[Status]int64, *vendor.Vendor, error) {
	v, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	leads, total, err := s.repo.ListByVendor(ctx, v.ID, limit, offset)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	counts, err := s.repo.CountByStatus(ctx, v.ID)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	return leads, total, counts, v, nil
}

// GetForVendor returns one lead, stamping viewed on first open. The
// stamp is a real pipeline advance: pending leads become viewed when
// the vendor first opens them, at any tier.
func (s *Service) GetForVendor(ctx context.Context, userID, leadID int64) (*Lead, *vendor.Vendor, error) {
	v, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	l, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, nil, err
	}
	if l.VendorID != v.ID {
		return nil, nil, ErrNotLeadOwner
	}

	if l.Status == StatusPending {
		now := time.Now()
		updates := map[string]any{"status": StatusViewed, "updated_at": now}
		if col := l.Stamp(StatusViewed, now); col != "" {
			updates[col] = now
		}
		// best effort: a concurrent transition simply wins
		if err := s.repo.Transition(ctx, l.ID, StatusPending, updates, nil); err == nil {
			l.Status = StatusViewed
		} else {
			l, err = s.repo.GetByID(ctx, leadID)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return l, v, nil
}

// UpdateStatus applies a vendor-triggered transition. All pipeline
// rules live here: terminal finality, tier restriction, first-entry
// stamping, won value capture, structured lost reason, and a
// compare-and-swap against the observed status so a concurrent update
// surfaces as a conflict instead of a silent overwrite.
func (s *Service) UpdateStatus(ctx context.Context, userID, leadID int64, req *UpdateStatusRequest) (*Lead, *vendor.Vendor, error) {
	v, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	l, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, nil, err
	}
	if l.VendorID != v.ID {
		return nil, nil, ErrNotLeadOwner
	}

	target := Status(req.Status)
	if err := l.CanTransition(target); err != nil {
		return nil, nil, err
	}

	// Level 0 may only acknowledge viewed; won/lost stay open to every tier
	if target.IsPipeline() && target != StatusViewed && tier.Normalize(v.Tier) == tier.LevelFree {
		return nil, nil, ErrTierRestricted
	}

	now := time.Now()
	prev := l.Status
	updates := map[string]any{"status": target, "updated_at": now}
	if col := l.Stamp(target, now); col != "" {
		updates[col] = now
	}

	switch target {
	case StatusWon:
		// non-positive or omitted value means no value recorded
		if req.QuoteValue != nil && *req.QuoteValue > 0 {
			updates["quote_value"] = *req.QuoteValue
		}
	case StatusLost:
		reason := LostReason(req.LostReason)
		if !reason.IsValid() {
			return nil, nil, ErrLostReasonMissing
		}
		updates["lost_reason"] = reason
	}

	var note *Note
	if text := strings.TrimSpace(req.Note); text != "" {
		note = &Note{Text: text, CreatedAt: now}
	}

	if err := s.repo.Transition(ctx, l.ID, prev, updates, note); err != nil {
		return nil, nil, err
	}

	// return the authoritative stored record
	updated, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyLeadStatusChanged(ctx, v.UserID, updated)
	}

	return updated, v, nil
}

// AddNote appends a vendor note to a lead
func (s *Service) AddNote(ctx context.Context, userID, leadID int64, text string) (*Note, error) {
	v, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	l, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if l.VendorID != v.ID {
		return nil, ErrNotLeadOwner
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyNote
	}

	note := &Note{LeadID: l.ID, Text: text, CreatedAt: time.Now()}
	if err := s.repo.AddNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}
