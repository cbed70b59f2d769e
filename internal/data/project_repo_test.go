package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	"github.com/ArturCreativeLab/studio-api/internal/testutil"
)

func TestProjectRepo_Create_Get_List_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProjectRepo(db)

		req := &model.CreateProjectRequest{
			Title:       fmt.Sprintf("project-%d", time.Now().UnixNano()),
			Description: "A generative identity system",
			ImageURL:    "https://example.com/cover.png",
			Tags:        []string{"branding", "generative"},
		}
		p, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotEmpty(t, p.ID)
		assert.Equal(t, req.Title, p.Title)
		assert.Equal(t, []string{"branding", "generative"}, p.Tags)
		assert.NotZero(t, p.CreatedAt)

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Title, got.Title)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)

		deleted, err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, ErrProjectNotFound)

		deleted, err = repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestProjectRepo_Create_Validation(t *testing.T) {
	repo := NewProjectRepo(nil)

	_, err := repo.Create(context.Background(), &model.CreateProjectRequest{
		Description: "desc",
		ImageURL:    "https://example.com/x.png",
	})
	assert.Error(t, err)

	_, err = repo.Create(context.Background(), nil)
	assert.Error(t, err)
}

func TestProjectRepo_NilTagsStoredAsEmpty(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProjectRepo(db)

		p, err := repo.Create(ctx, &model.CreateProjectRequest{
			Title:       fmt.Sprintf("project-%d", time.Now().UnixNano()),
			Description: "desc",
			ImageURL:    "https://example.com/x.png",
		})
		require.NoError(t, err)
		assert.Empty(t, p.Tags)
	})
}
