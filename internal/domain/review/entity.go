package review

import "time"

// Status of a review in moderation
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusHidden   Status = "hidden"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusHidden:
		return true
	}
	return false
}

// Review is a customer review of a vendor. New reviews start pending
// and only approved ones show publicly or count toward the aggregate.
type Review struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	VendorID int64  `gorm:"column:vendor_id;index" json:"vendor_id"`
	LeadID   *int64 `gorm:"column:lead_id" json:"lead_id,omitempty"`

	AuthorName  string `gorm:"column:author_name" json:"author_name"`
	AuthorEmail string `gorm:"column:author_email" json:"-"`
	Rating      int    `gorm:"column:rating" json:"rating"`
	Comment     string `gorm:"column:comment" json:"comment,omitempty"`

	Status Status `gorm:"column:status" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }

// Request is a one-time review invitation tied to a won lead. The
// unique lead index enforces one invitation per lead.
type Request struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	VendorID int64  `gorm:"column:vendor_id;index" json:"vendor_id"`
	LeadID   int64  `gorm:"column:lead_id;uniqueIndex" json:"lead_id"`
	Token    string `gorm:"column:token;uniqueIndex" json:"-"`
	Email    string `gorm:"column:email" json:"-"`

	ExpiresAt time.Time  `gorm:"column:expires_at" json:"expires_at"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"used_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Request) TableName() string { return "review_requests" }

// Usable reports whether the invitation can still be redeemed
func (r *Request) Usable(now time.Time) error {
	if r.UsedAt != nil {
		return ErrTokenUsed
	}
	if now.After(r.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}
