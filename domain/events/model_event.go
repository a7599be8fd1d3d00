package events

import (
	"time"

	"github.com/chanmix51/kaku/domain/core/entities"
)

// ModelKind tags the aggregate a ModelEvent is about
type ModelKind string

const (
	ModelProject ModelKind = "project"
	ModelNote    ModelKind = "note"
	ModelThought ModelKind = "thought"
	ModelStylo   ModelKind = "stylo"
)

// ChangeKind describes what happened to the aggregate
type ChangeKind string

const (
	ChangeCreated   ChangeKind = "created"
	ChangeUpdated   ChangeKind = "updated"
	ChangeScratched ChangeKind = "scratched"
	ChangeLocked    ChangeKind = "locked"
	ChangeUnlocked  ChangeKind = "unlocked"
	ChangeRevoked   ChangeKind = "revoked"
)

// ModelEvent is a transient notification of a committed mutation. It is not
// persisted: exactly one event is produced per successful mutating command
// and sprayed to the event channel; failed commands never produce one.
type ModelEvent struct {
	Model      ModelKind  `json:"model"`
	Kind       ChangeKind `json:"kind"`
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id,omitempty"`
	UniverseID string     `json:"universe_id,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Type returns the conventional dotted event name, e.g. "note.scratched"
func (e ModelEvent) Type() string {
	return string(e.Model) + "." + string(e.Kind)
}

// NewProjectEvent creates an event about a project mutation
func NewProjectEvent(kind ChangeKind, project *entities.Project) ModelEvent {
	return ModelEvent{
		Model:      ModelProject,
		Kind:       kind,
		ID:         project.ID().String(),
		UniverseID: project.UniverseID().String(),
		Timestamp:  time.Now().UTC(),
	}
}

// NewNoteEvent creates an event about a note mutation
func NewNoteEvent(kind ChangeKind, note *entities.Note) ModelEvent {
	return ModelEvent{
		Model:     ModelNote,
		Kind:      kind,
		ID:        note.ID().String(),
		ProjectID: note.ProjectID().String(),
		Timestamp: time.Now().UTC(),
	}
}

// NewThoughtEvent creates an event about a thought mutation
func NewThoughtEvent(kind ChangeKind, thought *entities.Thought) ModelEvent {
	return ModelEvent{
		Model:     ModelThought,
		Kind:      kind,
		ID:        thought.ID().String(),
		ProjectID: thought.ProjectID().String(),
		Timestamp: time.Now().UTC(),
	}
}

// NewStyloEvent creates an event about a stylo mutation
func NewStyloEvent(kind ChangeKind, stylo *entities.Stylo) ModelEvent {
	return ModelEvent{
		Model:     ModelStylo,
		Kind:      kind,
		ID:        stylo.ID().String(),
		Timestamp: time.Now().UTC(),
	}
}
