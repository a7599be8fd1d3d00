package entities

import (
	"strings"
	"time"

	"github.com/chanmix51/kaku/domain/core/valueobjects"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

// Project represents a workspace in the application. It regroups the Notes
// and Thoughts produced by scribes, and belongs to an Universe.
type Project struct {
	id         valueobjects.ProjectID
	universeID valueobjects.UniverseID
	createdAt  time.Time
	name       string
	slug       string
	locked     bool
}

// NewProject creates a new project with business rule validation. The slug is
// derived from the name and becomes the canonical lookup key.
func NewProject(universeID valueobjects.UniverseID, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.NewValidationError("project name cannot be empty")
	}
	if universeID.IsZero() {
		return nil, pkgerrors.NewValidationError("universe ID cannot be empty")
	}

	return &Project{
		id:         valueobjects.NewProjectID(),
		universeID: universeID,
		createdAt:  time.Now().UTC(),
		name:       name,
		slug:       valueobjects.Slugify(name),
		locked:     false,
	}, nil
}

// ReconstructProject rebuilds a project from repository data with preserved
// identity and timestamps.
func ReconstructProject(
	id valueobjects.ProjectID,
	universeID valueobjects.UniverseID,
	createdAt time.Time,
	name, slug string,
	locked bool,
) *Project {
	return &Project{
		id:         id,
		universeID: universeID,
		createdAt:  createdAt,
		name:       name,
		slug:       slug,
		locked:     locked,
	}
}

// ID returns the project's unique identifier
func (p *Project) ID() valueobjects.ProjectID { return p.id }

// UniverseID returns the owning universe
func (p *Project) UniverseID() valueobjects.UniverseID { return p.universeID }

// CreatedAt returns when the project was created
func (p *Project) CreatedAt() time.Time { return p.createdAt }

// Name returns the human readable project name
func (p *Project) Name() string { return p.name }

// Slug returns the URL-safe canonical lookup key. Slugs are many-to-one with
// names: the original name cannot be reconstructed from the slug.
func (p *Project) Slug() string { return p.slug }

// Locked reports whether the project is locked for modifications
func (p *Project) Locked() bool { return p.locked }

// Rename rewrites the name and re-derives the slug. The project identity
// never changes.
func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.NewValidationError("project name cannot be empty")
	}

	p.name = name
	p.slug = valueobjects.Slugify(name)
	return nil
}

// Lock closes the project for modifications
func (p *Project) Lock() {
	p.locked = true
}

// Unlock reopens the project for modifications
func (p *Project) Unlock() {
	p.locked = false
}
