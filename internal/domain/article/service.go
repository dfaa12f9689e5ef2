package article

import (
	"context"
	"regexp"
	"strings"
	"time"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Create stores a new article; a missing slug is derived from the title
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Article, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}

	now := time.Now()
	a := &Article{
		Slug:      slug,
		Title:     strings.TrimSpace(req.Title),
		Summary:   strings.TrimSpace(req.Summary),
		Body:      req.Body,
		Category:  strings.TrimSpace(req.Category),
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if a.Published {
		a.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update applies a partial edit. Publishing for the first time stamps
// published_at; re-publishing keeps the original date.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		a.Title = strings.TrimSpace(*req.Title)
	}
	if req.Summary != nil {
		a.Summary = strings.TrimSpace(*req.Summary)
	}
	if req.Body != nil {
		a.Body = *req.Body
	}
	if req.Category != nil {
		a.Category = strings.TrimSpace(*req.Category)
	}
	if req.Published != nil {
		a.Published = *req.Published
		if a.Published && a.PublishedAt == nil {
			now := time.Now()
			a.PublishedAt = &now
		}
	}
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns published articles for the public site
func (s *Service) List(ctx context.Context, category string, limit, offset int) ([]Article, int64, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListPublished(ctx, category, limit, offset)
}

// GetBySlug returns one published article
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	return s.repo.GetPublishedBySlug(ctx, slug)
}

// ListAll is the admin listing including drafts
func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]Article, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
