package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB { return r.db }

// CreateRequest inserts a review invitation. The unique index on
// lead_id makes a second invitation for the same lead fail, which is
// surfaced as ErrRequestExists.
func (r *Repository) CreateRequest(ctx context.Context, req *Request) error {
	err := r.db.WithContext(ctx).Create(req).Error
	if err != nil && isUniqueViolation(err) {
		return ErrRequestExists
	}
	return err
}

func (r *Repository) GetRequestByToken(ctx context.Context, token string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// RedeemRequest marks the invitation used and stores the review in one
// transaction. A concurrent redeem loses on the used_at IS NULL guard.
func (r *Repository) RedeemRequest(ctx context.Context, requestID int64, rev *Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Request{}).
			Where("id = ? AND used_at IS NULL", requestID).
			Update("used_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTokenUsed
		}
		return tx.Create(rev).Error
	})
}

func (r *Repository) GetReview(ctx context.Context, id int64) (*Review, error) {
	var rev Review
	err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// ListApproved returns a vendor's publicly visible reviews, newest first
func (r *Repository) ListApproved(ctx context.Context, vendorID int64, limit, offset int) ([]Review, int64, error) {
	var reviews []Review
	var total int64

	q := r.db.WithContext(ctx).Model(&Review{}).
		Where("vendor_id = ? AND status = ?", vendorID, StatusApproved)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

// ListByStatus is the moderation queue view
func (r *Repository) ListByStatus(ctx context.Context, status Status, limit, offset int) ([]Review, int64, error) {
	var reviews []Review
	var total int64

	q := r.db.WithContext(ctx).Model(&Review{}).Where("status = ?", status)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	res := r.db.WithContext(ctx).Model(&Review{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// Aggregate returns the approved-review average and count for a vendor
func (r *Repository) Aggregate(ctx context.Context, vendorID int64) (float64, int, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&Review{}).
		Where("vendor_id = ? AND status = ?", vendorID, StatusApproved).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	if row.Avg == nil {
		return 0, 0, nil
	}
	return *row.Avg, int(row.Count), nil
}

// VendorIDsWithReviews lists vendors that have at least one review,
// for the aggregate refresh job
func (r *Repository) VendorIDsWithReviews(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&Review{}).
		Distinct("vendor_id").
		Pluck("vendor_id", &ids).Error
	return ids, err
}

// PurgeExpiredRequests deletes unredeemed invitations past their expiry
func (r *Repository) PurgeExpiredRequests(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("used_at IS NULL AND expires_at < ?", now).
		Delete(&Request{})
	return res.RowsAffected, res.Error
}

// isUniqueViolation recognizes unique-index failures from both the
// postgres and sqlite drivers
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
