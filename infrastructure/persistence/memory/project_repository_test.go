package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

func createProjectCommand(name string) commands.CreateProjectCommand {
	return commands.CreateProjectCommand{
		ProjectName: name,
		UniverseID:  valueobjects.NewUniverseID(),
	}
}

func TestProjectRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	project, err := repo.Create(ctx, createProjectCommand("Test Project"))
	require.NoError(t, err)

	assert.Equal(t, "Test Project", project.Name())
	assert.Equal(t, "test-project", project.Slug())
}

func TestProjectRepositoryCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	_, err := repo.Create(ctx, createProjectCommand("   "))

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestProjectRepositoryGet(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	created, err := repo.Create(ctx, createProjectCommand("Test Project"))
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Test Project", fetched.Name())

	absent, err := repo.Get(ctx, valueobjects.NewProjectID())
	require.NoError(t, err)
	assert.Nil(t, absent, "absence is a normal outcome, not an error")
}

func TestProjectRepositoryGetBySlug(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	created, err := repo.Create(ctx, createProjectCommand("Test Project"))
	require.NoError(t, err)

	fetched, err := repo.GetBySlug(ctx, "test-project")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.True(t, fetched.ID().Equals(created.ID()))

	absent, err := repo.GetBySlug(ctx, "unknown-slug")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestProjectRepositoryDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	_, err := repo.Create(ctx, createProjectCommand("Test Project"))
	require.NoError(t, err)

	// distinct name, same slug
	_, err = repo.Create(ctx, createProjectCommand("Test!!!Project"))

	require.Error(t, err)
	assert.True(t, pkgerrors.IsConflict(err))
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDuplicateSlug))
}

func TestProjectRepositoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, createProjectCommand("Contended Project"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, conflicted := 0, 0
	for err := range results {
		if err == nil {
			succeeded++
		} else if pkgerrors.IsConflict(err) {
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent creation may win")
	assert.Equal(t, workers-1, conflicted)
}

func TestProjectRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	project, err := repo.Create(ctx, createProjectCommand("Old Name"))
	require.NoError(t, err)

	require.NoError(t, project.Rename("New Name"))
	updated, err := repo.Update(ctx, project)
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Slug())

	// the old slug mapping must be gone, the new one installed
	absent, err := repo.GetBySlug(ctx, "old-name")
	require.NoError(t, err)
	assert.Nil(t, absent)

	fetched, err := repo.GetBySlug(ctx, "new-name")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.True(t, fetched.ID().Equals(project.ID()))
}

func TestProjectRepositoryUpdateDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	_, err := repo.Create(ctx, createProjectCommand("First Project"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, createProjectCommand("Second Project"))
	require.NoError(t, err)

	require.NoError(t, second.Rename("First Project"))
	_, err = repo.Update(ctx, second)

	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDuplicateSlug))
}

func TestProjectRepositoryUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	project, err := repo.Create(ctx, createProjectCommand("Ephemeral"))
	require.NoError(t, err)
	_, err = repo.Delete(ctx, project.ID())
	require.NoError(t, err)

	_, err = repo.Update(ctx, project)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestProjectRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	project, err := repo.Create(ctx, createProjectCommand("Doomed Project"))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, project.ID())
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "Doomed Project", removed.Name())

	// slug mapping must be released too
	absent, err := repo.GetBySlug(ctx, "doomed-project")
	require.NoError(t, err)
	assert.Nil(t, absent)

	again, err := repo.Delete(ctx, project.ID())
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestProjectRepositoryListByUniverse(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	universe1 := valueobjects.NewUniverseID()
	universe2 := valueobjects.NewUniverseID()

	for _, tc := range []struct {
		name     string
		universe valueobjects.UniverseID
	}{
		{"Test Project 1", universe1},
		{"Test Project 2", universe1},
		{"Test Project 3", universe2},
	} {
		_, err := repo.Create(ctx, commands.CreateProjectCommand{ProjectName: tc.name, UniverseID: tc.universe})
		require.NoError(t, err)
	}

	projects, err := repo.ListByUniverse(ctx, universe1)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}
