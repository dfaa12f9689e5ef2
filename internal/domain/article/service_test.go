package article

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupArticles(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Article{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewService(NewRepository(db))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "choosing-an-a3-photocopier", Slugify("Choosing an A3 Photocopier"))
	assert.Equal(t, "voip-vs-landline-2026", Slugify("  VoIP vs Landline: 2026!  "))
	assert.Equal(t, "", Slugify("  ???  "))
}

func TestCreateAndPublish(t *testing.T) {
	svc := setupArticles(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, &CreateRequest{
		Title: "Photocopier Leasing Guide",
		Body:  "…",
	})
	require.NoError(t, err)
	assert.Equal(t, "photocopier-leasing-guide", draft.Slug)
	assert.False(t, draft.Published)
	assert.Nil(t, draft.PublishedAt)

	// drafts are invisible publicly
	_, err = svc.GetBySlug(ctx, draft.Slug)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	published := true
	a, err := svc.Update(ctx, draft.ID, &UpdateRequest{Published: &published})
	require.NoError(t, err)
	require.NotNil(t, a.PublishedAt)
	first := *a.PublishedAt

	got, err := svc.GetBySlug(ctx, draft.Slug)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)

	// unpublish and republish keeps the original date
	unpublished := false
	_, err = svc.Update(ctx, draft.ID, &UpdateRequest{Published: &unpublished})
	require.NoError(t, err)
	a, err = svc.Update(ctx, draft.ID, &UpdateRequest{Published: &published})
	require.NoError(t, err)
	assert.Equal(t, first, *a.PublishedAt)
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc := setupArticles(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateRequest{Title: "Guide", Body: "…"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateRequest{Title: "Guide", Body: "…"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestListPublishedFiltersAndOmitsBody(t *testing.T) {
	svc := setupArticles(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateRequest{
		Title: "CCTV Basics", Body: "long body", Category: "cctv", Published: true,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateRequest{
		Title: "Telecoms Draft", Body: "…", Category: "telecoms",
	})
	require.NoError(t, err)

	all, total, err := svc.List(ctx, "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Body)

	none, _, err := svc.List(ctx, "telecoms", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	adminView, adminTotal, err := svc.ListAll(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), adminTotal)
	assert.Len(t, adminView, 2)
}
