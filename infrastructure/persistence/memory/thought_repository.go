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

// ThoughtRepository is the in-memory implementation of
// ports.ThoughtRepository
type ThoughtRepository struct {
	mu       sync.RWMutex
	thoughts map[valueobjects.ThoughtID]entities.Thought
}

// NewThoughtRepository creates an empty in-memory thought repository
func NewThoughtRepository() *ThoughtRepository {
	return &ThoughtRepository{
		thoughts: make(map[valueobjects.ThoughtID]entities.Thought),
	}
}

var _ ports.ThoughtRepository = (*ThoughtRepository)(nil)

// Add builds the thought and stores it. When a parent is referenced, its
// existence is re-verified under the write lock; since parents are immutable
// and must pre-exist their children, the stored structure is always a
// forest.
func (r *ThoughtRepository) Add(_ context.Context, cmd commands.CreateThoughtCommand, projectID valueobjects.ProjectID) (*entities.Thought, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !cmd.ParentID.IsZero() {
		if _, ok := r.thoughts[cmd.ParentID]; !ok {
			return nil, pkgerrors.NewUnprocessableError("parent thought '" + cmd.ParentID.String() + "' does not exist").
				WithCode(pkgerrors.CodeInvalidParentReference)
		}
	}

	thought := entities.NewThought(cmd.ImportedAt, cmd.StyloID, projectID, cmd.ParentID, cmd.Content)
	r.thoughts[thought.ID()] = *thought
	return thought, nil
}

// Get returns the thought by id, or (nil, nil) when it does not exist
func (r *ThoughtRepository) Get(_ context.Context, id valueobjects.ThoughtID) (*entities.Thought, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	thought, ok := r.thoughts[id]
	if !ok {
		return nil, nil
	}
	return &thought, nil
}

// Sync rewrites the stored thought; the identity and the parent pointer are
// immutable. Syncing a missing thought is an error, never an upsert.
func (r *ThoughtRepository) Sync(_ context.Context, thought *entities.Thought) (*entities.Thought, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.thoughts[thought.ID()]; !ok {
		return nil, pkgerrors.NewNotFoundError("thought '" + thought.ID().String() + "'").
			WithCode(pkgerrors.CodeThoughtNotFound)
	}

	r.thoughts[thought.ID()] = *thought
	stored := r.thoughts[thought.ID()]
	return &stored, nil
}

// Delete removes the thought, returning the removed entity or (nil, nil) if
// it never existed
func (r *ThoughtRepository) Delete(_ context.Context, id valueobjects.ThoughtID) (*entities.Thought, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	thought, ok := r.thoughts[id]
	if !ok {
		return nil, nil
	}

	delete(r.thoughts, id)
	return &thought, nil
}

// ListByProject returns all thoughts attached to a project
func (r *ThoughtRepository) ListByProject(_ context.Context, projectID valueobjects.ProjectID) ([]*entities.Thought, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	thoughts := make([]*entities.Thought, 0)
	for _, thought := range r.thoughts {
		if thought.ProjectID().Equals(projectID) {
			t := thought
			thoughts = append(thoughts, &t)
		}
	}
	return thoughts, nil
}
