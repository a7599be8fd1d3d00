// Package commands defines the mutating use-case inputs accepted by the
// domain service. Commands are plain values: the transport layer builds them
// from requests, the service validates and executes them.
package commands

import (
	"time"

	"github.com/chanmix51/kaku/domain/core/valueobjects"
)

// CreateProjectCommand creates a new project in an universe
type CreateProjectCommand struct {
	ProjectName string
	UniverseID  valueobjects.UniverseID
}

// CreateNoteCommand creates a new note under the project designated by its
// slug. The slug is resolved to a project id by the service; callers never
// supply the project id directly.
type CreateNoteCommand struct {
	ImportedAt  time.Time
	StyloID     valueobjects.StyloID
	ProjectSlug string
	Content     string
}

// SyncNoteCommand replaces the content of an existing note
type SyncNoteCommand struct {
	NoteID  valueobjects.NoteID
	Content string
}

// CreateThoughtCommand creates a new thought under the project designated by
// its slug. A zero ParentID starts a new chain; otherwise the parent must
// already exist.
type CreateThoughtCommand struct {
	ImportedAt  time.Time
	ParentID    valueobjects.ThoughtID
	StyloID     valueobjects.StyloID
	ProjectSlug string
	Content     string
}

// CreateStyloCommand grants a writing identity to an organization member
type CreateStyloCommand struct {
	OwnerOrganizationID valueobjects.UniverseID
	ActorOrganizationID valueobjects.UniverseID
	DisplayName         string
	Email               string
}
