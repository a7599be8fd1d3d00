package entities

import (
	"strings"
	"time"

	"github.com/chanmix51/kaku/domain/core/valueobjects"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

// Stylo represents a right to write in the behalf of an organization, given
// to an organization member. Owner and actor organizations may be the same
// or different.
type Stylo struct {
	id                  valueobjects.StyloID
	ownerOrganizationID valueobjects.UniverseID
	actorOrganizationID valueobjects.UniverseID
	createdAt           time.Time
	displayName         string
	locked              bool
	email               string
}

// NewStylo creates a new stylo with business rule validation
func NewStylo(ownerOrganizationID, actorOrganizationID valueobjects.UniverseID, displayName, email string) (*Stylo, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, pkgerrors.NewValidationError("stylo display name cannot be empty")
	}

	return &Stylo{
		id:                  valueobjects.NewStyloID(),
		ownerOrganizationID: ownerOrganizationID,
		actorOrganizationID: actorOrganizationID,
		createdAt:           time.Now().UTC(),
		displayName:         displayName,
		locked:              false,
		email:               email,
	}, nil
}

// ReconstructStylo rebuilds a stylo from repository data
func ReconstructStylo(
	id valueobjects.StyloID,
	ownerOrganizationID, actorOrganizationID valueobjects.UniverseID,
	createdAt time.Time,
	displayName string,
	locked bool,
	email string,
) *Stylo {
	return &Stylo{
		id:                  id,
		ownerOrganizationID: ownerOrganizationID,
		actorOrganizationID: actorOrganizationID,
		createdAt:           createdAt,
		displayName:         displayName,
		locked:              locked,
		email:               email,
	}
}

// ID returns the stylo's unique identifier
func (s *Stylo) ID() valueobjects.StyloID { return s.id }

// OwnerOrganizationID returns the organization that owns this stylo
func (s *Stylo) OwnerOrganizationID() valueobjects.UniverseID { return s.ownerOrganizationID }

// ActorOrganizationID returns the organization that can use this stylo
func (s *Stylo) ActorOrganizationID() valueobjects.UniverseID { return s.actorOrganizationID }

// CreatedAt returns when the stylo was created
func (s *Stylo) CreatedAt() time.Time { return s.createdAt }

// DisplayName returns the human readable name of the stylo
func (s *Stylo) DisplayName() string { return s.displayName }

// Locked reports whether the stylo can no longer be used
func (s *Stylo) Locked() bool { return s.locked }

// Email returns the address associated with this stylo
func (s *Stylo) Email() string { return s.email }

// Lock prevents further use of the stylo
func (s *Stylo) Lock() {
	s.locked = true
}

// Unlock re-enables the stylo
func (s *Stylo) Unlock() {
	s.locked = false
}
