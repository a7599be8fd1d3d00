package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

func createNoteCommand() commands.CreateNoteCommand {
	return commands.CreateNoteCommand{
		ImportedAt: time.Now().UTC(),
		StyloID:    valueobjects.NewStyloID(),
		Content:    "This is a test note.",
	}
}

func TestNoteRepositoryAdd(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()
	projectID := valueobjects.NewProjectID()

	note, err := repo.Add(ctx, createNoteCommand(), projectID)
	require.NoError(t, err)

	assert.Equal(t, "This is a test note.", note.Content())
	assert.True(t, note.ProjectID().Equals(projectID))
	assert.False(t, note.ID().IsZero())
}

func TestNoteRepositoryGet(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	created, err := repo.Add(ctx, createNoteCommand(), valueobjects.NewProjectID())
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "This is a test note.", fetched.Content())

	absent, err := repo.Get(ctx, valueobjects.NewNoteID())
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestNoteRepositorySync(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note, err := repo.Add(ctx, createNoteCommand(), valueobjects.NewProjectID())
	require.NoError(t, err)

	note.SyncContent("Updated Test Note")
	updated, err := repo.Sync(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, "Updated Test Note", updated.Content())

	fetched, err := repo.Get(ctx, note.ID())
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Updated Test Note", fetched.Content())
}

func TestNoteRepositorySyncMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note, err := repo.Add(ctx, createNoteCommand(), valueobjects.NewProjectID())
	require.NoError(t, err)
	_, err = repo.Delete(ctx, note.ID())
	require.NoError(t, err)

	_, err = repo.Sync(ctx, note)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestNoteRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note, err := repo.Add(ctx, createNoteCommand(), valueobjects.NewProjectID())
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, note.ID())
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "This is a test note.", removed.Content())

	fetched, err := repo.Get(ctx, note.ID())
	require.NoError(t, err)
	assert.Nil(t, fetched)

	// deleting twice: the second call sees nothing to remove
	again, err := repo.Delete(ctx, note.ID())
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestNoteRepositoryListByProject(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()
	projectID := valueobjects.NewProjectID()

	for i := 0; i < 3; i++ {
		_, err := repo.Add(ctx, createNoteCommand(), projectID)
		require.NoError(t, err)
	}
	_, err := repo.Add(ctx, createNoteCommand(), valueobjects.NewProjectID())
	require.NoError(t, err)

	notes, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}
