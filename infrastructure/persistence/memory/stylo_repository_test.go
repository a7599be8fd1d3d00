package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

func styloCommand() commands.CreateStyloCommand {
	return commands.CreateStyloCommand{
		OwnerOrganizationID: valueobjects.NewUniverseID(),
		ActorOrganizationID: valueobjects.NewUniverseID(),
		DisplayName:         "Test Stylo",
		Email:               "whoever@internet.com",
	}
}

func TestStyloRepositoryAddAndGet(t *testing.T) {
	repo := NewStyloRepository()

	stylo, err := repo.Add(context.Background(), styloCommand())
	require.NoError(t, err)

	fetched, err := repo.Get(context.Background(), stylo.ID())
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Test Stylo", fetched.DisplayName())

	missing, err := repo.Get(context.Background(), valueobjects.NewStyloID())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStyloRepositorySyncMissing(t *testing.T) {
	repo := NewStyloRepository()

	stylo, err := repo.Add(context.Background(), styloCommand())
	require.NoError(t, err)

	_, err = repo.Delete(context.Background(), stylo.ID())
	require.NoError(t, err)

	stylo.Lock()
	_, err = repo.Sync(context.Background(), stylo)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStyloNotFound))
}

func TestStyloRepositoryDeleteTwice(t *testing.T) {
	repo := NewStyloRepository()

	stylo, err := repo.Add(context.Background(), styloCommand())
	require.NoError(t, err)

	removed, err := repo.Delete(context.Background(), stylo.ID())
	require.NoError(t, err)
	require.NotNil(t, removed)

	removed, err = repo.Delete(context.Background(), stylo.ID())
	require.NoError(t, err)
	assert.Nil(t, removed, "absence is not an error")
}
