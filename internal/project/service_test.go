package project_test

import (
	"context"
	"testing"
	"time"

	"portfolio-api/internal/project"
	"portfolio-api/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) project.Service {
	db := testdb.New(t, (*project.Project)(nil))
	return project.NewService(project.NewRepository(db))
}

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateProject(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	t.Run("TimestampsAreManaged", func(t *testing.T) {
		created, err := service.CreateProject(ctx, project.CreateInput{
			Title:       "Portfolio Site",
			Description: "Personal portfolio backend",
			StartData:   date(2024, time.January, 1),
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())
		assert.Nil(t, created.EndData)
		assert.Nil(t, created.File)
		assert.Nil(t, created.Image)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		_, err := service.CreateProject(ctx, project.CreateInput{
			Title: "No description or start date",
		})
		assert.ErrorIs(t, err, project.ErrInvalidInput)
	})
}

func TestProjectOrdering(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	first, err := service.CreateProject(ctx, project.CreateInput{
		Title:       "Portfolio Site",
		Description: "Built first",
		StartData:   date(2024, time.January, 1),
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	// Earlier start date but created later: must still list first.
	second, err := service.CreateProject(ctx, project.CreateInput{
		Title:       "Legacy Project",
		Description: "Built second, started years ago",
		StartData:   date(2019, time.March, 15),
	})
	require.NoError(t, err)

	projects, err := service.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
}

func TestUpdateProject(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreateProject(ctx, project.CreateInput{
		Title:       "Portfolio Site",
		Description: "v1",
		StartData:   date(2024, time.January, 1),
		URL:         strPtr("https://example.com"),
	})
	require.NoError(t, err)
	createdAt := created.CreatedAt

	time.Sleep(5 * time.Millisecond)

	t.Run("PartialUpdate", func(t *testing.T) {
		updated, err := service.UpdateProject(ctx, created.ID, project.UpdateInput{
			Description: strPtr("v2"),
		})
		require.NoError(t, err)
		assert.Equal(t, "v2", updated.Description)
		assert.Equal(t, "Portfolio Site", updated.Title)
		require.NotNil(t, updated.URL)
		assert.Equal(t, "https://example.com", *updated.URL)
	})

	t.Run("CreatedAtImmutableUpdatedAtMoves", func(t *testing.T) {
		got, err := service.GetProjectByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.CreatedAt.Equal(createdAt))
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := service.UpdateProject(ctx, 4242, project.UpdateInput{
			Title: strPtr("ghost"),
		})
		require.ErrorIs(t, err, project.ErrProjectNotFound)
		assert.Contains(t, err.Error(), "4242")
	})
}

func TestDeleteProject(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreateProject(ctx, project.CreateInput{
		Title:       "Short lived",
		Description: "gone soon",
		StartData:   date(2024, time.June, 1),
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteProject(ctx, created.ID))

	_, err = service.GetProjectByID(ctx, created.ID)
	assert.ErrorIs(t, err, project.ErrProjectNotFound)

	assert.ErrorIs(t, service.DeleteProject(ctx, created.ID), project.ErrProjectNotFound)
}
