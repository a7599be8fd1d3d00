package entities

import (
	"time"

	"github.com/chanmix51/kaku/domain/core/valueobjects"
)

// Thought is a long-lived piece of information written by a scribe. Thoughts
// may be chained to a parent thought; since a parent must exist before its
// children and is immutable once set, the chained structure is a forest by
// construction, never a cycle. A parent may have several children.
type Thought struct {
	id         valueobjects.ThoughtID
	parentID   valueobjects.ThoughtID
	importedAt time.Time
	styloID    valueobjects.StyloID
	projectID  valueobjects.ProjectID
	content    string
}

// NewThought creates a new thought attached to an already-resolved project.
// A zero parentID means the thought starts a new chain.
func NewThought(
	importedAt time.Time,
	styloID valueobjects.StyloID,
	projectID valueobjects.ProjectID,
	parentID valueobjects.ThoughtID,
	content string,
) *Thought {
	return &Thought{
		id:         valueobjects.NewThoughtID(),
		parentID:   parentID,
		importedAt: importedAt,
		styloID:    styloID,
		projectID:  projectID,
		content:    content,
	}
}

// ReconstructThought rebuilds a thought from repository data
func ReconstructThought(
	id, parentID valueobjects.ThoughtID,
	importedAt time.Time,
	styloID valueobjects.StyloID,
	projectID valueobjects.ProjectID,
	content string,
) *Thought {
	return &Thought{
		id:         id,
		parentID:   parentID,
		importedAt: importedAt,
		styloID:    styloID,
		projectID:  projectID,
		content:    content,
	}
}

// ID returns the thought's unique identifier
func (t *Thought) ID() valueobjects.ThoughtID { return t.id }

// ParentID returns the parent thought identifier, zero when the thought
// starts a chain
func (t *Thought) ParentID() valueobjects.ThoughtID { return t.parentID }

// HasParent reports whether the thought is chained to a parent
func (t *Thought) HasParent() bool { return !t.parentID.IsZero() }

// ImportedAt returns the caller-supplied import timestamp
func (t *Thought) ImportedAt() time.Time { return t.importedAt }

// StyloID returns the writing identity that authored the thought
func (t *Thought) StyloID() valueobjects.StyloID { return t.styloID }

// ProjectID returns the project the thought is attached to
func (t *Thought) ProjectID() valueobjects.ProjectID { return t.projectID }

// Content returns the thought's free text content
func (t *Thought) Content() string { return t.content }

// SyncContent replaces the thought content
func (t *Thought) SyncContent(content string) {
	t.content = content
}
