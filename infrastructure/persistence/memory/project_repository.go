// Package memory provides the volatile reference implementations of the
// repository ports. Each repository exclusively owns its backing maps behind
// a single read/write lock; compound operations run in one critical section,
// trading fine-grained parallelism for simplicity.
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

// ProjectRepository is the in-memory implementation of
// ports.ProjectRepository. Besides the primary map it maintains a secondary
// slug index; one mutex guards both so the duplicate-slug check and the
// dual insert form a single critical section.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[valueobjects.ProjectID]entities.Project
	slugs    map[string]valueobjects.ProjectID
}

// NewProjectRepository creates an empty in-memory project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		projects: make(map[valueobjects.ProjectID]entities.Project),
		slugs:    make(map[string]valueobjects.ProjectID),
	}
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// Create builds the project from the command and inserts it into both maps.
// The duplicate-slug check happens under the write lock: two concurrent
// creations colliding on the same slug cannot both succeed.
func (r *ProjectRepository) Create(_ context.Context, cmd commands.CreateProjectCommand) (*entities.Project, error) {
	project, err := entities.NewProject(cmd.UniverseID, cmd.ProjectName)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.slugs[project.Slug()]; taken {
		return nil, pkgerrors.NewConflictError("a project with slug '" + project.Slug() + "' already exists").
			WithCode(pkgerrors.CodeDuplicateSlug)
	}

	r.projects[project.ID()] = *project
	r.slugs[project.Slug()] = project.ID()

	stored := r.projects[project.ID()]
	return &stored, nil
}

// Get returns the project by id, or (nil, nil) when it does not exist
func (r *ProjectRepository) Get(_ context.Context, id valueobjects.ProjectID) (*entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	return &project, nil
}

// GetBySlug resolves the slug index, or returns (nil, nil) when unknown
func (r *ProjectRepository) GetBySlug(_ context.Context, slug string) (*entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.slugs[slug]
	if !ok {
		return nil, nil
	}
	project := r.projects[id]
	return &project, nil
}

// Update rewrites the stored project. The old slug mapping is removed and
// the new one installed in the same critical section; the update is rejected
// when the new slug already maps to a different project.
func (r *ProjectRepository) Update(_ context.Context, project *entities.Project) (*entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.projects[project.ID()]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("project '" + project.ID().String() + "'").
			WithCode(pkgerrors.CodeProjectNotFound)
	}

	if owner, taken := r.slugs[project.Slug()]; taken && !owner.Equals(project.ID()) {
		return nil, pkgerrors.NewConflictError("a project with slug '" + project.Slug() + "' already exists").
			WithCode(pkgerrors.CodeDuplicateSlug)
	}

	delete(r.slugs, existing.Slug())
	r.slugs[project.Slug()] = project.ID()
	r.projects[project.ID()] = *project

	stored := r.projects[project.ID()]
	return &stored, nil
}

// Delete removes the project from both maps, returning the removed entity or
// (nil, nil) if it never existed
func (r *ProjectRepository) Delete(_ context.Context, id valueobjects.ProjectID) (*entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}

	delete(r.projects, id)
	delete(r.slugs, project.Slug())
	return &project, nil
}

// ListByUniverse returns all projects of an universe
func (r *ProjectRepository) ListByUniverse(_ context.Context, universeID valueobjects.UniverseID) ([]*entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*entities.Project, 0)
	for _, project := range r.projects {
		if project.UniverseID().Equals(universeID) {
			p := project
			projects = append(projects, &p)
		}
	}
	return projects, nil
}
