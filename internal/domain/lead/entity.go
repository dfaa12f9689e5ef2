package lead

import (
	"time"
)

// Status of a lead in the vendor pipeline
type Status string

const (
	StatusPending   Status = "pending"
	StatusViewed    Status = "viewed"
	StatusContacted Status = "contacted"
	StatusQuoted    Status = "quoted"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

// pipelineOrder positions the non-terminal stages; terminals are not ordered
var pipelineOrder = map[Status]int{
	StatusPending:   0,
	StatusViewed:    1,
	StatusContacted: 2,
	StatusQuoted:    3,
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusViewed, StatusContacted, StatusQuoted, StatusWon, StatusLost:
		return true
	}
	return false
}

// IsTerminal reports whether s is won or lost
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// IsPipeline reports whether s is an ordered pipeline stage
func (s Status) IsPipeline() bool {
	_, ok := pipelineOrder[s]
	return ok
}

// LostReason is the closed set of reasons recorded when a lead is lost
type LostReason string

const (
	LostTooExpensive LostReason = "too-expensive"
	LostCompetitor   LostReason = "competitor"
	LostNoResponse   LostReason = "no-response"
	LostOther        LostReason = "other"
)

// IsValid reports whether r is a known lost reason
func (r LostReason) IsValid() bool {
	switch r {
	case LostTooExpensive, LostCompetitor, LostNoResponse, LostOther:
		return true
	}
	return false
}

// Note is a vendor-authored annotation on a lead, append-only
type Note struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	LeadID    int64     `gorm:"column:lead_id;index" json:"lead_id"`
	Text      string    `gorm:"column:text" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Note) TableName() string { return "lead_notes" }

// Lead is a quote request routed to one vendor. Stage timestamps are
// first-entry stamps: set once, never overwritten.
type Lead struct {
	ID       int64 `gorm:"column:id;primaryKey" json:"id"`
	VendorID int64 `gorm:"column:vendor_id;index" json:"vendor_id"`

	CompanyName string `gorm:"column:company_name" json:"company_name"`
	ContactName string `gorm:"column:contact_name" json:"contact_name"`
	Email       string `gorm:"column:email" json:"email"`
	Phone       string `gorm:"column:phone" json:"phone"`
	Postcode    string `gorm:"column:postcode" json:"postcode"`
	Category    string `gorm:"column:category" json:"category"`
	Message     string `gorm:"column:message" json:"message,omitempty"`

	Status Status `gorm:"column:status" json:"status"`

	ViewedAt    *time.Time `gorm:"column:viewed_at" json:"viewed_at,omitempty"`
	ContactedAt *time.Time `gorm:"column:contacted_at" json:"contacted_at,omitempty"`
	QuotedAt    *time.Time `gorm:"column:quoted_at" json:"quoted_at,omitempty"`
	ClosedAt    *time.Time `gorm:"column:closed_at" json:"closed_at,omitempty"`

	// Set when the lead is won; NULL means no value recorded
	QuoteValue *float64 `gorm:"column:quote_value" json:"quote_value,omitempty"`
	// Set when the lead is lost
	LostReason *LostReason `gorm:"column:lost_reason" json:"lost_reason,omitempty"`

	Notes []Note `gorm:"foreignKey:LeadID" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// Stamp records the first entry into a stage. Idempotent: an already
// set timestamp is never changed. Returns the column touched, or ""
// when nothing changed.
func (l *Lead) Stamp(status Status, now time.Time) string {
	switch status {
	case StatusViewed:
		if l.ViewedAt == nil {
			l.ViewedAt = &now
			return "viewed_at"
		}
	case StatusContacted:
		if l.ContactedAt == nil {
			l.ContactedAt = &now
			return "contacted_at"
		}
	case StatusQuoted:
		if l.QuotedAt == nil {
			l.QuotedAt = &now
			return "quoted_at"
		}
	case StatusWon, StatusLost:
		if l.ClosedAt == nil {
			l.ClosedAt = &now
			return "closed_at"
		}
	}
	return ""
}

// CanTransition validates a transition out of the current status.
// Terminals accept nothing; won/lost are reachable from any
// non-terminal state; pipeline stages accept any valid stage (the
// backend may advance independently of the vendor's clicks).
func (l *Lead) CanTransition(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if l.Status.IsTerminal() {
		return ErrLeadClosed
	}
	if to == l.Status {
		return ErrSameStatus
	}
	return nil
}
