package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanmix51/kaku/domain/core/valueobjects"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

func TestNewProject(t *testing.T) {
	universeID := valueobjects.NewUniverseID()

	project, err := NewProject(universeID, "Test Project")
	require.NoError(t, err)

	assert.Equal(t, "Test Project", project.Name())
	assert.Equal(t, "test-project", project.Slug())
	assert.Equal(t, universeID, project.UniverseID())
	assert.False(t, project.Locked())
	assert.False(t, project.ID().IsZero())
	assert.False(t, project.CreatedAt().IsZero())
}

func TestNewProjectTrimsName(t *testing.T) {
	project, err := NewProject(valueobjects.NewUniverseID(), "  Padded Name  ")
	require.NoError(t, err)

	assert.Equal(t, "Padded Name", project.Name())
	assert.Equal(t, "padded-name", project.Slug())
}

func TestNewProjectEmptyName(t *testing.T) {
	_, err := NewProject(valueobjects.NewUniverseID(), "   ")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewProjectDerivesSlug(t *testing.T) {
	project, err := NewProject(valueobjects.NewUniverseID(), "Test Project 123!@#")
	require.NoError(t, err)

	assert.Equal(t, "test-project-123", project.Slug())
}

func TestProjectRename(t *testing.T) {
	project, err := NewProject(valueobjects.NewUniverseID(), "Old Name")
	require.NoError(t, err)
	id := project.ID()

	require.NoError(t, project.Rename("New Name!"))

	assert.Equal(t, "New Name!", project.Name())
	assert.Equal(t, "new-name", project.Slug())
	assert.Equal(t, id, project.ID(), "identity must never change")
}

func TestProjectRenameEmpty(t *testing.T) {
	project, err := NewProject(valueobjects.NewUniverseID(), "Old Name")
	require.NoError(t, err)

	err = project.Rename("")

	require.Error(t, err)
	assert.Equal(t, "Old Name", project.Name())
}

func TestProjectLockUnlock(t *testing.T) {
	project, err := NewProject(valueobjects.NewUniverseID(), "Some Project")
	require.NoError(t, err)

	project.Lock()
	assert.True(t, project.Locked())

	project.Unlock()
	assert.False(t, project.Locked())
}
