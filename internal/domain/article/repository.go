package article

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, a *Article) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if err != nil && isUniqueViolation(err) {
		return ErrSlugTaken
	}
	return err
}

func (r *Repository) Update(ctx context.Context, a *Article) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Article, error) {
	var a Article
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetPublishedBySlug serves the public article page
func (r *Repository) GetPublishedBySlug(ctx context.Context, slug string) (*Article, error) {
	var a Article
	err := r.db.WithContext(ctx).
		First(&a, "slug = ? AND published = ?", slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListPublished returns published articles, newest first. Body is
// omitted from listings; the detail endpoint carries it.
func (r *Repository) ListPublished(ctx context.Context, category string, limit, offset int) ([]Article, int64, error) {
	var articles []Article
	var total int64

	q := r.db.WithContext(ctx).Model(&Article{}).Where("published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Omit("body").
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles).Error

	return articles, total, err
}

// ListAll is the admin view including drafts
func (r *Repository) ListAll(ctx context.Context, limit, offset int) ([]Article, int64, error) {
	var articles []Article
	var total int64

	q := r.db.WithContext(ctx).Model(&Article{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Omit("body").Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	return articles, total, err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Article{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

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
