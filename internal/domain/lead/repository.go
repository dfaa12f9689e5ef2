package lead

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB { return r.db }

func (r *Repository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("lead_notes.created_at ASC")
		}).
		First(&l, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListByVendor returns the vendor's leads, newest first
func (r *Repository) ListByVendor(ctx context.Context, vendorID int64, limit, offset int) ([]Lead, int64, error) {
	var leads []Lead
	var total int64

	q := r.db.WithContext(ctx).Model(&Lead{}).Where("vendor_id = ?", vendorID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("lead_notes.created_at ASC")
		}).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&leads).Error

	return leads, total, err
}

// CountByStatus returns the vendor's lead counts per status
func (r *Repository) CountByStatus(ctx context.Context, vendorID int64) (map[Status]int64, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&Lead{}).
		Where("vendor_id = ?", vendorID).
		Select("status, COUNT(*) AS count").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Status]int64)
	for rows.Next() {
		var status Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// Transition applies a status change with a compare-and-swap on the
// previously observed status, optionally appending a note, in one
// transaction. A lost race returns ErrStatusConflict and nothing is
// applied.
func (r *Repository) Transition(ctx context.Context, id int64, from Status, updates map[string]any, note *Note) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Lead{}).
			Where("id = ? AND status = ?", id, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}

		if note != nil {
			note.LeadID = id
			if err := tx.Create(note).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) AddNote(ctx context.Context, note *Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// MonthlyCount is one month's lead volume for analytics
type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// MonthlyCreated returns lead counts per creation month since the cutoff
func (r *Repository) MonthlyCreated(ctx context.Context, vendorID int64, since time.Time) ([]MonthlyCount, error) {
	var leads []Lead
	err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND created_at >= ?", vendorID, since).
		Order("created_at ASC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}

	// bucketing in Go keeps the query portable across sqlite and postgres
	byMonth := make(map[string]int64)
	var order []string
	for i := range leads {
		m := leads[i].CreatedAt.Format("2006-01")
		if _, ok := byMonth[m]; !ok {
			order = append(order, m)
		}
		byMonth[m]++
	}

	out := make([]MonthlyCount, 0, len(order))
	for _, m := range order {
		out = append(out, MonthlyCount{Month: m, Count: byMonth[m]})
	}
	return out, nil
}

// WonValueTotal sums recorded quote values on won leads
func (r *Repository) WonValueTotal(ctx context.Context, vendorID int64) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&Lead{}).
		Where("vendor_id = ? AND status = ? AND quote_value IS NOT NULL", vendorID, StatusWon).
		Select("SUM(quote_value)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
