package lead

import (
	"strings"
	"time"

	"tendorai/internal/domain/tier"
)

// SubmitQuoteRequest is the public quote-request form
type SubmitQuoteRequest struct {
	VendorID    int64  `json:"vendor_id" validate:"required,gt=0"`
	CompanyName string `json:"company_name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Postcode    string `json:"postcode" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=photocopiers telecoms cctv it"`
	Message     string `json:"message"`
}

// UpdateStatusRequest is a vendor-triggered pipeline transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending viewed contacted quoted won lost"`
	// Optional note appended atomically with the transition
	Note string `json:"note"`
	// Won only; omitted or non-positive means no value recorded
	QuoteValue *float64 `json:"quote_value,omitempty"`
	// Lost only; required for lost
	LostReason string `json:"lost_reason,omitempty"`
}

// AddNoteRequest appends a note outside a transition
type AddNoteRequest struct {
	Text string `json:"text" validate:"required"`
}

// LeadResponse is the vendor-facing lead shape. For Level 0 vendors
// the requester's contact fields are masked and Locked carries the
// upgrade CTA, mirroring the dashboard's blur-and-lock treatment.
type LeadResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Postcode    string `json:"postcode"`
	Category    string `json:"category"`
	Message     string `json:"message,omitempty"`

	Status Status `json:"status"`

	ViewedAt    *time.Time `json:"viewed_at,omitempty"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	QuotedAt    *time.Time `json:"quoted_at,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`

	QuoteValue *float64    `json:"quote_value,omitempty"`
	LostReason *LostReason `json:"lost_reason,omitempty"`
	Notes      []Note      `json:"notes,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	Locked    *tier.Lock `json:"locked,omitempty"`
}

// LeadListResponse is the dashboard payload: leads plus status counts
type LeadListResponse struct {
	Leads  []LeadResponse   `json:"leads"`
	Total  int64            `json:"total"`
	Counts map[Status]int64 `json:"counts"`
}

// ToResponse renders a lead for a vendor on the given raw tier
func ToResponse(l *Lead, vendorTier string) LeadResponse {
	resp := LeadResponse{
		ID:          l.ID,
		CompanyName: l.CompanyName,
		ContactName: l.ContactName,
		Email:       l.Email,
		Phone:       l.Phone,
		Postcode:    l.Postcode,
		Category:    l.Category,
		Message:     l.Message,
		Status:      l.Status,
		ViewedAt:    l.ViewedAt,
		ContactedAt: l.ContactedAt,
		QuotedAt:    l.QuotedAt,
		ClosedAt:    l.ClosedAt,
		QuoteValue:  l.QuoteValue,
		LostReason:  l.LostReason,
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt,
	}

	if lock := tier.Gate(vendorTier, tier.RawVisible, tier.FeatureLeadContacts); lock != nil {
		resp.ContactName = maskName(l.ContactName)
		resp.Email = maskEmail(l.Email)
		resp.Phone = maskTail(l.Phone, 0)
		resp.Message = ""
		resp.Locked = lock
	}

	return resp
}

func maskName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return string([]rune(name)[0]) + "•••"
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "•••"
	}
	return string(email[0]) + "•••" + email[at:]
}

func maskTail(s string, visible int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= visible {
		return "•••"
	}
	return "•••" + string(runes[len(runes)-visible:])
}
