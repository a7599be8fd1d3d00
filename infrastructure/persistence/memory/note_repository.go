package memory

import (
	"context"
	"sync"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/application/ports"
	"github.com/chanmix51/kaku/domain/core/entities"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

// NoteRepository is the in-memory implementation of ports.NoteRepository
type NoteRepository struct {
	mu    sync.RWMutex
	notes map[valueobjects.NoteID]entities.Note
}

// NewNoteRepository creates an empty in-memory note repository
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		notes: make(map[valueobjects.NoteID]entities.Note),
	}
}

var _ ports.NoteRepository = (*NoteRepository)(nil)

// Add builds the note from the command and the resolved project id, then
// stores it
func (r *NoteRepository) Add(_ context.Context, cmd commands.CreateNoteCommand, projectID valueobjects.ProjectID) (*entities.Note, error) {
	note := entities.NewNote(cmd.ImportedAt, cmd.StyloID, projectID, cmd.Content)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[note.ID()] = *note
	return note, nil
}

// Get returns the note by id, or (nil, nil) when it does not exist
func (r *NoteRepository) Get(_ context.Context, id valueobjects.NoteID) (*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	return &note, nil
}

// Sync rewrites the stored note; the identity is immutable. Syncing a
// missing note is an error, never an upsert.
func (r *NoteRepository) Sync(_ context.Context, note *entities.Note) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[note.ID()]; !ok {
		return nil, pkgerrors.NewNotFoundError("note '" + note.ID().String() + "'").
			WithCode(pkgerrors.CodeNoteNotFound)
	}

	r.notes[note.ID()] = *note
	stored := r.notes[note.ID()]
	return &stored, nil
}

// Delete removes the note, returning the removed entity or (nil, nil) if it
// never existed
func (r *NoteRepository) Delete(_ context.Context, id valueobjects.NoteID) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}

	delete(r.notes, id)
	return &note, nil
}

// ListByProject returns all notes attached to a project
func (r *NoteRepository) ListByProject(_ context.Context, projectID valueobjects.ProjectID) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*entities.Note, 0)
	for _, note := range r.notes {
		if note.ProjectID().Equals(projectID) {
			n := note
			notes = append(notes, &n)
		}
	}
	return notes, nil
}
