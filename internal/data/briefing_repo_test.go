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

func TestBriefingRepo_Create_Get_List_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewBriefingRepo(db)

		req := &model.CreateBriefingRequest{
			CompanyName:     fmt.Sprintf("acme-%d", time.Now().UnixNano()),
			ProjectTitle:    "Rebrand",
			Background:      "Legacy identity no longer fits",
			Goals:           []string{"new logo", "brand guide"},
			TargetAudience:  "B2B buyers",
			Deliverables:    []string{"logo pack", "styleguide"},
			Timeline:        "6 weeks",
			ExperienceLevel: model.ExperienceSenior,
		}
		b, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotEmpty(t, b.ID)
		assert.Equal(t, req.CompanyName, b.CompanyName)
		assert.Equal(t, model.ExperienceSenior, b.ExperienceLevel)
		assert.Equal(t, []string{"new logo", "brand guide"}, b.Goals)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ProjectTitle, got.ProjectTitle)

		lst, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)

		deleted, err := repo.Delete(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, b.ID)
		assert.ErrorIs(t, err, ErrBriefingNotFound)
	})
}

func TestBriefingRepo_Create_InvalidExperienceLevel(t *testing.T) {
	repo := NewBriefingRepo(nil)

	_, err := repo.Create(context.Background(), &model.CreateBriefingRequest{
		CompanyName:     "acme",
		ProjectTitle:    "rebrand",
		ExperienceLevel: model.ExperienceLevel("Wizard"),
	})
	assert.Error(t, err)
}
