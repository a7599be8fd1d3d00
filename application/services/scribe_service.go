// Package services hosts the domain coordination core: the single entry
// point for mutating use-cases, enforcing cross-aggregate invariants and
// emitting exactly one model event per committed mutation.
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/application/ports"
	"github.com/chanmix51/kaku/domain/core/entities"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	"github.com/chanmix51/kaku/domain/events"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
	"github.com/chanmix51/kaku/pkg/observability"
)

// ScribeService orchestrates all mutating use-cases. It owns no mutable
// state itself: it holds shared handles to the repositories and to the
// event-publishing endpoint.
//
// Every command follows the same order: resolve referenced aggregates,
// delegate the write to the owning repository, then publish the event. Any
// resolution failure aborts the command with no partial state change and no
// event. A publish failure is surfaced to the caller even though the
// mutation already committed; the read path reflects the mutation in that
// case, and callers must account for this documented inconsistency window.
type ScribeService struct {
	projects ports.ProjectRepository
	notes    ports.NoteRepository
	thoughts ports.ThoughtRepository
	stylos   ports.StyloRepository
	events   ports.EventPublisher
	logger   *zap.Logger
	metrics  *observability.Collector
}

// NewScribeService creates the domain service with its shared handles
func NewScribeService(
	projects ports.ProjectRepository,
	notes ports.NoteRepository,
	thoughts ports.ThoughtRepository,
	stylos ports.StyloRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	metrics *observability.Collector,
) *ScribeService {
	return &ScribeService{
		projects: projects,
		notes:    notes,
		thoughts: thoughts,
		stylos:   stylos,
		events:   publisher,
		logger:   logger,
		metrics:  metrics,
	}
}

// CreateProject creates a new project after a fast-fail duplicate-slug
// pre-check. The pre-check is an early exit only: the repository re-verifies
// uniqueness inside its own critical section, since a concurrent creation
// may land between the pre-check and the delegated create.
func (s *ScribeService) CreateProject(ctx context.Context, cmd commands.CreateProjectCommand) (*entities.Project, error) {
	slug := valueobjects.Slugify(cmd.ProjectName)
	existing, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.NewConflictError("a project with slug '" + slug + "' already exists").
			WithCode(pkgerrors.CodeProjectAlreadyExists)
	}

	project, err := s.projects.Create(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		zap.String("projectID", project.ID().String()),
		zap.String("slug", project.Slug()),
		zap.String("universeID", project.UniverseID().String()),
	)
	if s.metrics != nil {
		s.metrics.ProjectsCreated.Inc()
	}

	if err := s.publish(ctx, events.NewProjectEvent(events.ChangeCreated, project)); err != nil {
		return nil, err
	}
	return project, nil
}

// LockProject closes the project designated by its slug for modifications
func (s *ScribeService) LockProject(ctx context.Context, slug string) (*entities.Project, error) {
	return s.setProjectLock(ctx, slug, true)
}

// UnlockProject reopens the project designated by its slug
func (s *ScribeService) UnlockProject(ctx context.Context, slug string) (*entities.Project, error) {
	return s.setProjectLock(ctx, slug, false)
}

func (s *ScribeService) setProjectLock(ctx context.Context, slug string, locked bool) (*entities.Project, error) {
	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, pkgerrors.NewNotFoundError("project '" + slug + "'").
			WithCode(pkgerrors.CodeProjectNotFound)
	}

	kind := events.ChangeLocked
	if locked {
		project.Lock()
	} else {
		project.Unlock()
		kind = events.ChangeUnlocked
	}

	project, err = s.projects.Update(ctx, project)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project lock changed",
		zap.String("projectID", project.ID().String()),
		zap.Bool("locked", locked),
	)

	if err := s.publish(ctx, events.NewProjectEvent(kind, project)); err != nil {
		return nil, err
	}
	return project, nil
}

// CreateNote resolves the project slug then delegates the write to the note
// repository. An unknown slug rejects the command without touching the
// repository and without publishing any event; a locked project refuses new
// notes.
func (s *ScribeService) CreateNote(ctx context.Context, cmd commands.CreateNoteCommand) (*entities.Note, error) {
	project, err := s.projects.GetBySlug(ctx, cmd.ProjectSlug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, pkgerrors.NewNotFoundError("project '" + cmd.ProjectSlug + "'").
			WithCode(pkgerrors.CodeProjectNotFound)
	}
	if project.Locked() {
		return nil, pkgerrors.NewConflictError("project '" + cmd.ProjectSlug + "' is locked").
			WithCode(pkgerrors.CodeProjectLocked)
	}

	note, err := s.notes.Add(ctx, cmd, project.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("note created",
		zap.String("noteID", note.ID().String()),
		zap.String("projectID", note.ProjectID().String()),
	)
	if s.metrics != nil {
		s.metrics.NotesCreated.Inc()
	}

	if err := s.publish(ctx, events.NewNoteEvent(events.ChangeCreated, note)); err != nil {
		return nil, err
	}
	return note, nil
}

// SyncNote replaces the content of an existing note
func (s *ScribeService) SyncNote(ctx context.Context, cmd commands.SyncNoteCommand) (*entities.Note, error) {
	note, err := s.notes.Get(ctx, cmd.NoteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, pkgerrors.NewNotFoundError("note '" + cmd.NoteID.String() + "'").
			WithCode(pkgerrors.CodeNoteNotFound)
	}

	note.SyncContent(cmd.Content)
	note, err = s.notes.Sync(ctx, note)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, events.NewNoteEvent(events.ChangeUpdated, note)); err != nil {
		return nil, err
	}
	return note, nil
}

// ScratchNote deletes a note. Deletion is terminal: there is no soft delete
// and no undo.
func (s *ScribeService) ScratchNote(ctx context.Context, noteID valueobjects.NoteID) (*entities.Note, error) {
	note, err := s.notes.Delete(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, pkgerrors.NewNotFoundError("note '" + noteID.String() + "'").
			WithCode(pkgerrors.CodeNoteNotFound)
	}

	s.logger.Info("note scratched", zap.String("noteID", note.ID().String()))
	if s.metrics != nil {
		s.metrics.NotesScratched.Inc()
	}

	if err := s.publish(ctx, events.NewNoteEvent(events.ChangeScratched, note)); err != nil {
		return nil, err
	}
	return note, nil
}

// CreateThought resolves the project slug, verifies the parent chain pointer
// when one is supplied, then delegates the write. A dangling parent rejects
// the command without mutating the repository and without publishing.
func (s *ScribeService) CreateThought(ctx context.Context, cmd commands.CreateThoughtCommand) (*entities.Thought, error) {
	project, err := s.projects.GetBySlug(ctx, cmd.ProjectSlug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, pkgerrors.NewNotFoundError("project '" + cmd.ProjectSlug + "'").
			WithCode(pkgerrors.CodeProjectNotFound)
	}
	if project.Locked() {
		return nil, pkgerrors.NewConflictError("project '" + cmd.ProjectSlug + "' is locked").
			WithCode(pkgerrors.CodeProjectLocked)
	}

	if !cmd.ParentID.IsZero() {
		parent, err := s.thoughts.Get(ctx, cmd.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, pkgerrors.NewUnprocessableError("parent thought '" + cmd.ParentID.String() + "' does not exist").
				WithCode(pkgerrors.CodeInvalidParentReference)
		}
	}

	thought, err := s.thoughts.Add(ctx, cmd, project.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("thought created",
		zap.String("thoughtID", thought.ID().String()),
		zap.String("projectID", thought.ProjectID().String()),
		zap.Bool("chained", thought.HasParent()),
	)
	if s.metrics != nil {
		s.metrics.ThoughtsCreated.Inc()
	}

	if err := s.publish(ctx, events.NewThoughtEvent(events.ChangeCreated, thought)); err != nil {
		return nil, err
	}
	return thought, nil
}

// CreateStylo grants a new writing identity
func (s *ScribeService) CreateStylo(ctx context.Context, cmd commands.CreateStyloCommand) (*entities.Stylo, error) {
	stylo, err := s.stylos.Add(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stylo created", zap.String("styloID", stylo.ID().String()))

	if err := s.publish(ctx, events.NewStyloEvent(events.ChangeCreated, stylo)); err != nil {
		return nil, err
	}
	return stylo, nil
}

// RevokeStylo removes a writing identity
func (s *ScribeService) RevokeStylo(ctx context.Context, styloID valueobjects.StyloID) (*entities.Stylo, error) {
	stylo, err := s.stylos.Delete(ctx, styloID)
	if err != nil {
		return nil, err
	}
	if stylo == nil {
		return nil, pkgerrors.NewNotFoundError("stylo '" + styloID.String() + "'").
			WithCode(pkgerrors.CodeStyloNotFound)
	}

	s.logger.Info("stylo revoked", zap.String("styloID", stylo.ID().String()))

	if err := s.publish(ctx, events.NewStyloEvent(events.ChangeRevoked, stylo)); err != nil {
		return nil, err
	}
	return stylo, nil
}

// Read path. Absence is reported as (nil, nil), mirroring the repositories.

// ProjectBySlug returns the project designated by its slug
func (s *ScribeService) ProjectBySlug(ctx context.Context, slug string) (*entities.Project, error) {
	return s.projects.GetBySlug(ctx, slug)
}

// ProjectsByUniverse lists all projects of an universe
func (s *ScribeService) ProjectsByUniverse(ctx context.Context, universeID valueobjects.UniverseID) ([]*entities.Project, error) {
	return s.projects.ListByUniverse(ctx, universeID)
}

// Note returns a note by id
func (s *ScribeService) Note(ctx context.Context, id valueobjects.NoteID) (*entities.Note, error) {
	return s.notes.Get(ctx, id)
}

// NotesByProject lists the notes attached to a project
func (s *ScribeService) NotesByProject(ctx context.Context, projectID valueobjects.ProjectID) ([]*entities.Note, error) {
	return s.notes.ListByProject(ctx, projectID)
}

// Thought returns a thought by id
func (s *ScribeService) Thought(ctx context.Context, id valueobjects.ThoughtID) (*entities.Thought, error) {
	return s.thoughts.Get(ctx, id)
}

// publish forwards one event to the channel, mapping a closed channel to an
// infrastructure error. The mutation it describes is already committed.
func (s *ScribeService) publish(ctx context.Context, event events.ModelEvent) error {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("event publish failed after committed mutation",
			zap.String("eventType", event.Type()),
			zap.String("id", event.ID),
			zap.Error(err),
		)
		return pkgerrors.NewUnavailableError("event channel").
			WithCode(pkgerrors.CodeEventChannelClosed).
			WithCause(err)
	}
	if s.metrics != nil {
		s.metrics.EventsPublished.WithLabelValues(string(event.Model), string(event.Kind)).Inc()
	}
	return nil
}
