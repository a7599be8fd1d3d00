package entities

import (
	"time"

	"github.com/chanmix51/kaku/domain/core/valueobjects"
)

// Note is a short-lived piece of information written by a scribe and attached
// to a project. The imported_at timestamp is supplied by the caller, not the
// server: notes may be captured offline and imported later.
type Note struct {
	id         valueobjects.NoteID
	importedAt time.Time
	styloID    valueobjects.StyloID
	projectID  valueobjects.ProjectID
	content    string
}

// NewNote creates a new note attached to an already-resolved project. The
// project reference is resolved once at creation time and never re-validated.
func NewNote(importedAt time.Time, styloID valueobjects.StyloID, projectID valueobjects.ProjectID, content string) *Note {
	return &Note{
		id:         valueobjects.NewNoteID(),
		importedAt: importedAt,
		styloID:    styloID,
		projectID:  projectID,
		content:    content,
	}
}

// ReconstructNote rebuilds a note from repository data
func ReconstructNote(
	id valueobjects.NoteID,
	importedAt time.Time,
	styloID valueobjects.StyloID,
	projectID valueobjects.ProjectID,
	content string,
) *Note {
	return &Note{
		id:         id,
		importedAt: importedAt,
		styloID:    styloID,
		projectID:  projectID,
		content:    content,
	}
}

// ID returns the note's unique identifier
func (n *Note) ID() valueobjects.NoteID { return n.id }

// ImportedAt returns the caller-supplied import timestamp
func (n *Note) ImportedAt() time.Time { return n.importedAt }

// StyloID returns the writing identity that authored the note
func (n *Note) StyloID() valueobjects.StyloID { return n.styloID }

// ProjectID returns the project the note is attached to
func (n *Note) ProjectID() valueobjects.ProjectID { return n.projectID }

// Content returns the note's free text content
func (n *Note) Content() string { return n.content }

// SyncContent replaces the note content
func (n *Note) SyncContent(content string) {
	n.content = content
}
