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

// StyloRepository is the in-memory implementation of ports.StyloRepository
type StyloRepository struct {
	mu     sync.RWMutex
	stylos map[valueobjects.StyloID]entities.Stylo
}

// NewStyloRepository creates an empty in-memory stylo repository
func NewStyloRepository() *StyloRepository {
	return &StyloRepository{
		stylos: make(map[valueobjects.StyloID]entities.Stylo),
	}
}

var _ ports.StyloRepository = (*StyloRepository)(nil)

// Add builds the stylo from the command and stores it
func (r *StyloRepository) Add(_ context.Context, cmd commands.CreateStyloCommand) (*entities.Stylo, error) {
	stylo, err := entities.NewStylo(cmd.OwnerOrganizationID, cmd.ActorOrganizationID, cmd.DisplayName, cmd.Email)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.stylos[stylo.ID()] = *stylo
	return stylo, nil
}

// Get returns the stylo by id, or (nil, nil) when it does not exist
func (r *StyloRepository) Get(_ context.Context, id valueobjects.StyloID) (*entities.Stylo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stylo, ok := r.stylos[id]
	if !ok {
		return nil, nil
	}
	return &stylo, nil
}

// Sync rewrites the stored stylo; syncing a missing stylo is an error,
// never an upsert
func (r *StyloRepository) Sync(_ context.Context, stylo *entities.Stylo) (*entities.Stylo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stylos[stylo.ID()]; !ok {
		return nil, pkgerrors.NewNotFoundError("stylo '" + stylo.ID().String() + "'").
			WithCode(pkgerrors.CodeStyloNotFound)
	}

	r.stylos[stylo.ID()] = *stylo
	stored := r.stylos[stylo.ID()]
	return &stored, nil
}

// Delete removes the stylo, returning the removed entity or (nil, nil) if it
// never existed
func (r *StyloRepository) Delete(_ context.Context, id valueobjects.StyloID) (*entities.Stylo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stylo, ok := r.stylos[id]
	if !ok {
		return nil, nil
	}

	delete(r.stylos, id)
	return &stylo, nil
}
