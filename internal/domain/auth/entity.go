package auth

import "time"

// Role of a platform account
type Role string

const (
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// User is a platform account. Vendor users own exactly one vendor
// profile; admins have none.
type User struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	Email        string `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash" json:"-"`
	Name         string `gorm:"column:name" json:"name"`
	Role         Role   `gorm:"column:role" json:"role"`

	FailedLoginAttempts int        `gorm:"column:failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `gorm:"column:locked_until" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
