package article

import "time"

// Article is a published guide or industry piece. Only published
// articles are served publicly; drafts stay admin-only.
type Article struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Slug     string `gorm:"column:slug;uniqueIndex" json:"slug"`
	Title    string `gorm:"column:title" json:"title"`
	Summary  string `gorm:"column:summary" json:"summary,omitempty"`
	Body     string `gorm:"column:body" json:"body,omitempty"`
	Category string `gorm:"column:category" json:"category,omitempty"`

	Published   bool       `gorm:"column:published" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Article) TableName() string { return "articles" }
