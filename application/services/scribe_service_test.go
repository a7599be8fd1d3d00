package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	"github.com/chanmix51/kaku/domain/events"
	"github.com/chanmix51/kaku/infrastructure/messaging"
	"github.com/chanmix51/kaku/infrastructure/persistence/memory"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

// recordingPublisher captures published events; it can be switched to fail
// to simulate a closed channel.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ModelEvent
	fail   bool
}

func (p *recordingPublisher) Publish(_ context.Context, event events.ModelEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fail {
		return messaging.ErrQueueClosed
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) published() []events.ModelEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]events.ModelEvent, len(p.events))
	copy(out, p.events)
	return out
}

type fixture struct {
	service   *ScribeService
	projects  *memory.ProjectRepository
	notes     *memory.NoteRepository
	thoughts  *memory.ThoughtRepository
	publisher *recordingPublisher
}

func newFixture() *fixture {
	projects := memory.NewProjectRepository()
	notes := memory.NewNoteRepository()
	thoughts := memory.NewThoughtRepository()
	stylos := memory.NewStyloRepository()
	publisher := &recordingPublisher{}

	service := NewScribeService(projects, notes, thoughts, stylos, publisher, zap.NewNop(), nil)

	return &fixture{
		service:   service,
		projects:  projects,
		notes:     notes,
		thoughts:  thoughts,
		publisher: publisher,
	}
}

func (f *fixture) createProject(t *testing.T, name string) string {
	t.Helper()
	project, err := f.service.CreateProject(context.Background(), commands.CreateProjectCommand{
		ProjectName: name,
		UniverseID:  valueobjects.NewUniverseID(),
	})
	require.NoError(t, err)
	return project.Slug()
}

func noteCommand(slug string) commands.CreateNoteCommand {
	return commands.CreateNoteCommand{
		ImportedAt:  time.Now().UTC(),
		StyloID:     valueobjects.NewStyloID(),
		ProjectSlug: slug,
		Content:     "This is a test note.",
	}
}

func TestCreateProject(t *testing.T) {
	f := newFixture()

	project, err := f.service.CreateProject(context.Background(), commands.CreateProjectCommand{
		ProjectName: "Test Project 123!@#",
		UniverseID:  valueobjects.NewUniverseID(),
	})
	require.NoError(t, err)

	assert.Equal(t, "test-project-123", project.Slug())

	published := f.publisher.published()
	require.Len(t, published, 1)
	assert.Equal(t, "project.created", published[0].Type())
	assert.Equal(t, project.ID().String(), published[0].ID)
	assert.Equal(t, project.UniverseID().String(), published[0].UniverseID)
}

func TestCreateProjectAlreadyExists(t *testing.T) {
	f := newFixture()
	f.createProject(t, "Test Project")

	// distinct name, colliding slug
	_, err := f.service.CreateProject(context.Background(), commands.CreateProjectCommand{
		ProjectName: "Test!!!Project",
		UniverseID:  valueobjects.NewUniverseID(),
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsConflict(err))
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeProjectAlreadyExists))
	assert.Len(t, f.publisher.published(), 1, "failed commands never publish")
}

func TestCreateProjectConcurrentCollision(t *testing.T) {
	f := newFixture()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.CreateProject(context.Background(), commands.CreateProjectCommand{
				ProjectName: "Contended Project",
				UniverseID:  valueobjects.NewUniverseID(),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			// loser sees a conflict whichever layer caught it first
			assert.True(t, pkgerrors.IsConflict(err))
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.publisher.published(), 1)
}

func TestLockProject(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Lockable Project")

	project, err := f.service.LockProject(context.Background(), slug)
	require.NoError(t, err)
	assert.True(t, project.Locked())

	project, err = f.service.UnlockProject(context.Background(), slug)
	require.NoError(t, err)
	assert.False(t, project.Locked())

	published := f.publisher.published()
	require.Len(t, published, 3)
	assert.Equal(t, "project.locked", published[1].Type())
	assert.Equal(t, "project.unlocked", published[2].Type())
}

func TestCreateNoteOnLockedProject(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Frozen Project")

	_, err := f.service.LockProject(context.Background(), slug)
	require.NoError(t, err)

	_, err = f.service.CreateNote(context.Background(), noteCommand(slug))

	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeProjectLocked))
}

func TestCreateNote(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Test Project")

	note, err := f.service.CreateNote(context.Background(), noteCommand(slug))
	require.NoError(t, err)

	assert.Equal(t, "This is a test note.", note.Content())

	fetched, err := f.service.Note(context.Background(), note.ID())
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.True(t, fetched.ProjectID().Equals(note.ProjectID()))

	published := f.publisher.published()
	require.Len(t, published, 2)
	assert.Equal(t, "note.created", published[1].Type())
	assert.Equal(t, note.ProjectID().String(), published[1].ProjectID)
}

func TestCreateNoteUnknownProject(t *testing.T) {
	f := newFixture()

	_, err := f.service.CreateNote(context.Background(), noteCommand("unknown-project"))

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeProjectNotFound))
	assert.Empty(t, f.publisher.published(), "no event for a rejected command")
}

func TestSyncNote(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Test Project")

	note, err := f.service.CreateNote(context.Background(), noteCommand(slug))
	require.NoError(t, err)

	updated, err := f.service.SyncNote(context.Background(), commands.SyncNoteCommand{
		NoteID:  note.ID(),
		Content: "Updated content",
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated content", updated.Content())

	published := f.publisher.published()
	require.Len(t, published, 3)
	assert.Equal(t, "note.updated", published[2].Type())
}

func TestScratchNote(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Test Project")

	note, err := f.service.CreateNote(context.Background(), noteCommand(slug))
	require.NoError(t, err)

	scratched, err := f.service.ScratchNote(context.Background(), note.ID())
	require.NoError(t, err)
	assert.True(t, scratched.ID().Equals(note.ID()))

	fetched, err := f.service.Note(context.Background(), note.ID())
	require.NoError(t, err)
	assert.Nil(t, fetched, "scratching is terminal")

	published := f.publisher.published()
	require.Len(t, published, 3)
	assert.Equal(t, "note.scratched", published[2].Type())
}

func TestScratchNoteTwice(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Test Project")

	note, err := f.service.CreateNote(context.Background(), noteCommand(slug))
	require.NoError(t, err)

	_, err = f.service.ScratchNote(context.Background(), note.ID())
	require.NoError(t, err)

	_, err = f.service.ScratchNote(context.Background(), note.ID())

	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNoteNotFound))
}

func TestCreateThought(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Test Project")

	parent, err := f.service.CreateThought(context.Background(), commands.CreateThoughtCommand{
		ImportedAt:  time.Now().UTC(),
		StyloID:     valueobjects.NewStyloID(),
		ProjectSlug: slug,
		Content:     "This is a test thought.",
	})
	require.NoError(t, err)

	child, err := f.service.CreateThought(context.Background(), commands.CreateThoughtCommand{
		ImportedAt:  time.Now().UTC(),
		ParentID:    parent.ID(),
		StyloID:     valueobjects.NewStyloID(),
		ProjectSlug: slug,
		Content:     "This is a child thought.",
	})
	require.NoError(t, err)

	assert.True(t, child.ParentID().Equals(parent.ID()))
}

func TestCreateThoughtDanglingParent(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Test Project")

	_, err := f.service.CreateThought(context.Background(), commands.CreateThoughtCommand{
		ImportedAt:  time.Now().UTC(),
		ParentID:    valueobjects.NewThoughtID(),
		StyloID:     valueobjects.NewStyloID(),
		ProjectSlug: slug,
		Content:     "Orphan thought.",
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInvalidParentReference))

	published := f.publisher.published()
	require.Len(t, published, 1, "only the project creation published")

	project, err := f.service.ProjectBySlug(context.Background(), slug)
	require.NoError(t, err)
	thoughts, err := f.thoughts.ListByProject(context.Background(), project.ID())
	require.NoError(t, err)
	assert.Empty(t, thoughts, "the rejected command must not have mutated the repository")
}

func TestCreateStyloAndRevoke(t *testing.T) {
	f := newFixture()

	stylo, err := f.service.CreateStylo(context.Background(), commands.CreateStyloCommand{
		OwnerOrganizationID: valueobjects.NewUniverseID(),
		ActorOrganizationID: valueobjects.NewUniverseID(),
		DisplayName:         "Test Stylo",
		Email:               "whoever@internet.com",
	})
	require.NoError(t, err)

	_, err = f.service.RevokeStylo(context.Background(), stylo.ID())
	require.NoError(t, err)

	published := f.publisher.published()
	require.Len(t, published, 2)
	assert.Equal(t, "stylo.created", published[0].Type())
	assert.Equal(t, "stylo.revoked", published[1].Type())
}

// A publish failure is reported to the caller even though the mutation
// already committed: the read path reflects the new state while the command
// returns an error. This inconsistency window is part of the contract.
func TestPublishFailureAfterCommit(t *testing.T) {
	f := newFixture()
	slug := f.createProject(t, "Test Project")

	f.publisher.fail = true

	_, err := f.service.CreateNote(context.Background(), noteCommand(slug))

	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeEventChannelClosed))

	project, err := f.service.ProjectBySlug(context.Background(), slug)
	require.NoError(t, err)
	notes, err := f.service.NotesByProject(context.Background(), project.ID())
	require.NoError(t, err)
	assert.Len(t, notes, 1, "the mutation committed despite the failed publish")
}

// Same asymmetry end to end against the real queue.
func TestPublishFailureWithClosedQueue(t *testing.T) {
	projects := memory.NewProjectRepository()
	notes := memory.NewNoteRepository()
	thoughts := memory.NewThoughtRepository()
	stylos := memory.NewStyloRepository()
	queue := messaging.NewEventQueue(nil)

	service := NewScribeService(projects, notes, thoughts, stylos, queue, zap.NewNop(), nil)

	project, err := service.CreateProject(context.Background(), commands.CreateProjectCommand{
		ProjectName: "Test Project",
		UniverseID:  valueobjects.NewUniverseID(),
	})
	require.NoError(t, err)

	queue.Close()

	note, noteErr := service.CreateNote(context.Background(), noteCommand(project.Slug()))

	require.Error(t, noteErr)
	assert.Nil(t, note)
	assert.True(t, pkgerrors.HasCode(noteErr, pkgerrors.CodeEventChannelClosed))

	stored, err := notes.ListByProject(context.Background(), project.ID())
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	// drain so the pump goroutine terminates
	for range queue.Events() {
	}
}
