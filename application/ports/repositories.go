// Package ports declares the capability contracts the domain coordination
// core depends on. These are ports in hexagonal architecture: the in-memory
// implementations live in infrastructure/persistence/memory and a durable
// store is a drop-in replacement behind the same interfaces.
package ports

import (
	"context"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/domain/core/entities"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	"github.com/chanmix51/kaku/domain/events"
)

// Absence convention: Get-style reads return (nil, nil) when the entity does
// not exist; only infrastructure failures are errors. Operations that require
// existence (Sync) convert absence into a NotFound error. Delete returns the
// removed entity, or (nil, nil) if it never existed.
//
// Every successful Create/Sync/Delete is visible to any Get/List issued after
// it returns: per-key operations are linearizable within a repository.

// ProjectRepository persists projects and maintains the slug index.
//
// Create performs the duplicate-slug check and the insert as one critical
// section: it is the authoritative guard of the global slug uniqueness
// invariant, regardless of any fast-fail pre-check done by callers.
type ProjectRepository interface {
	Create(ctx context.Context, cmd commands.CreateProjectCommand) (*entities.Project, error)
	Get(ctx context.Context, id valueobjects.ProjectID) (*entities.Project, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Project, error)
	// Update remaps the slug index atomically and fails with a conflict when
	// the new slug already belongs to a different project.
	Update(ctx context.Context, project *entities.Project) (*entities.Project, error)
	Delete(ctx context.Context, id valueobjects.ProjectID) (*entities.Project, error)
	ListByUniverse(ctx context.Context, universeID valueobjects.UniverseID) ([]*entities.Project, error)
}

// NoteRepository persists notes. The project reference carried by a note is
// resolved by the caller before Add and never re-validated here.
type NoteRepository interface {
	Add(ctx context.Context, cmd commands.CreateNoteCommand, projectID valueobjects.ProjectID) (*entities.Note, error)
	Get(ctx context.Context, id valueobjects.NoteID) (*entities.Note, error)
	Sync(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, id valueobjects.NoteID) (*entities.Note, error)
	ListByProject(ctx context.Context, projectID valueobjects.ProjectID) ([]*entities.Note, error)
}

// ThoughtRepository persists thoughts. Add re-verifies parent existence
// inside its critical section; a dangling parent reference rejects the
// command without mutating anything.
type ThoughtRepository interface {
	Add(ctx context.Context, cmd commands.CreateThoughtCommand, projectID valueobjects.ProjectID) (*entities.Thought, error)
	Get(ctx context.Context, id valueobjects.ThoughtID) (*entities.Thought, error)
	Sync(ctx context.Context, thought *entities.Thought) (*entities.Thought, error)
	Delete(ctx context.Context, id valueobjects.ThoughtID) (*entities.Thought, error)
	ListByProject(ctx context.Context, projectID valueobjects.ProjectID) ([]*entities.Thought, error)
}

// StyloRepository persists writing identities
type StyloRepository interface {
	Add(ctx context.Context, cmd commands.CreateStyloCommand) (*entities.Stylo, error)
	Get(ctx context.Context, id valueobjects.StyloID) (*entities.Stylo, error)
	Sync(ctx context.Context, stylo *entities.Stylo) (*entities.Stylo, error)
	Delete(ctx context.Context, id valueobjects.StyloID) (*entities.Stylo, error)
}

// EventPublisher is the sending half of the event channel. Publish never
// blocks while the channel is open; it fails only when the receiving end is
// gone, which callers must surface as an infrastructure error.
type EventPublisher interface {
	Publish(ctx context.Context, event events.ModelEvent) error
}
