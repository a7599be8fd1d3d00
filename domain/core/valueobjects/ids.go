package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// Identifier value objects for the Kaku aggregates. Value objects are
// immutable and have no identity beyond their value; each wraps a UUID
// string so aggregates cannot be mixed up at compile time.

// ProjectID uniquely identifies a Project
type ProjectID struct {
	value string
}

// NewProjectID creates a new random ProjectID
func NewProjectID() ProjectID {
	return ProjectID{value: uuid.New().String()}
}

// NewProjectIDFromString creates a ProjectID from an existing string
func NewProjectIDFromString(id string) (ProjectID, error) {
	if err := checkID(id, "project ID"); err != nil {
		return ProjectID{}, err
	}
	return ProjectID{value: id}, nil
}

// String returns the string representation of the ProjectID
func (id ProjectID) String() string { return id.value }

// Equals checks if two ProjectIDs are equal
func (id ProjectID) Equals(other ProjectID) bool { return id.value == other.value }

// IsZero checks if the ProjectID is the zero value
func (id ProjectID) IsZero() bool { return id.value == "" }

// MarshalJSON implements json.Marshaler
func (id ProjectID) MarshalJSON() ([]byte, error) { return marshalID(id.value) }

// UnmarshalJSON implements json.Unmarshaler
func (id *ProjectID) UnmarshalJSON(data []byte) error { return unmarshalID(data, &id.value) }

// UniverseID identifies the top-level scope (organization/workspace) a
// Project belongs to. Stylo ownership fields reuse it since an universe is
// an organization root.
type UniverseID struct {
	value string
}

// NewUniverseID creates a new random UniverseID
func NewUniverseID() UniverseID {
	return UniverseID{value: uuid.New().String()}
}

// NewUniverseIDFromString creates an UniverseID from an existing string
func NewUniverseIDFromString(id string) (UniverseID, error) {
	if err := checkID(id, "universe ID"); err != nil {
		return UniverseID{}, err
	}
	return UniverseID{value: id}, nil
}

// String returns the string representation of the UniverseID
func (id UniverseID) String() string { return id.value }

// Equals checks if two UniverseIDs are equal
func (id UniverseID) Equals(other UniverseID) bool { return id.value == other.value }

// IsZero checks if the UniverseID is the zero value
func (id UniverseID) IsZero() bool { return id.value == "" }

// MarshalJSON implements json.Marshaler
func (id UniverseID) MarshalJSON() ([]byte, error) { return marshalID(id.value) }

// UnmarshalJSON implements json.Unmarshaler
func (id *UniverseID) UnmarshalJSON(data []byte) error { return unmarshalID(data, &id.value) }

// NoteID uniquely identifies a Note
type NoteID struct {
	value string
}

// NewNoteID creates a new random NoteID
func NewNoteID() NoteID {
	return NoteID{value: uuid.New().String()}
}

// NewNoteIDFromString creates a NoteID from an existing string
func NewNoteIDFromString(id string) (NoteID, error) {
	if err := checkID(id, "note ID"); err != nil {
		return NoteID{}, err
	}
	return NoteID{value: id}, nil
}

// String returns the string representation of the NoteID
func (id NoteID) String() string { return id.value }

// Equals checks if two NoteIDs are equal
func (id NoteID) Equals(other NoteID) bool { return id.value == other.value }

// IsZero checks if the NoteID is the zero value
func (id NoteID) IsZero() bool { return id.value == "" }

// MarshalJSON implements json.Marshaler
func (id NoteID) MarshalJSON() ([]byte, error) { return marshalID(id.value) }

// UnmarshalJSON implements json.Unmarshaler
func (id *NoteID) UnmarshalJSON(data []byte) error { return unmarshalID(data, &id.value) }

// ThoughtID uniquely identifies a Thought
type ThoughtID struct {
	value string
}

// NewThoughtID creates a new random ThoughtID
func NewThoughtID() ThoughtID {
	return ThoughtID{value: uuid.New().String()}
}

// NewThoughtIDFromString creates a ThoughtID from an existing string
func NewThoughtIDFromString(id string) (ThoughtID, error) {
	if err := checkID(id, "thought ID"); err != nil {
		return ThoughtID{}, err
	}
	return ThoughtID{value: id}, nil
}

// String returns the string representation of the ThoughtID
func (id ThoughtID) String() string { return id.value }

// Equals checks if two ThoughtIDs are equal
func (id ThoughtID) Equals(other ThoughtID) bool { return id.value == other.value }

// IsZero checks if the ThoughtID is the zero value
func (id ThoughtID) IsZero() bool { return id.value == "" }

// MarshalJSON implements json.Marshaler
func (id ThoughtID) MarshalJSON() ([]byte, error) { return marshalID(id.value) }

// UnmarshalJSON implements json.Unmarshaler
func (id *ThoughtID) UnmarshalJSON(data []byte) error { return unmarshalID(data, &id.value) }

// StyloID identifies the writing identity credited with authoring a Note or
// a Thought.
type StyloID struct {
	value string
}

// NewStyloID creates a new random StyloID
func NewStyloID() StyloID {
	return StyloID{value: uuid.New().String()}
}

// NewStyloIDFromString creates a StyloID from an existing string
func NewStyloIDFromString(id string) (StyloID, error) {
	if err := checkID(id, "stylo ID"); err != nil {
		return StyloID{}, err
	}
	return StyloID{value: id}, nil
}

// String returns the string representation of the StyloID
func (id StyloID) String() string { return id.value }

// Equals checks if two StyloIDs are equal
func (id StyloID) Equals(other StyloID) bool { return id.value == other.value }

// IsZero checks if the StyloID is the zero value
func (id StyloID) IsZero() bool { return id.value == "" }

// MarshalJSON implements json.Marshaler
func (id StyloID) MarshalJSON() ([]byte, error) { return marshalID(id.value) }

// UnmarshalJSON implements json.Unmarshaler
func (id *StyloID) UnmarshalJSON(data []byte) error { return unmarshalID(data, &id.value) }

func checkID(id, what string) error {
	if id == "" {
		return errors.New(what + " cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(what + " must be a valid UUID")
	}
	return nil
}

func marshalID(value string) ([]byte, error) {
	return []byte(`"` + value + `"`), nil
}

func unmarshalID(data []byte, target *string) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("identifier must be a string")
	}
	*target = string(data[1 : len(data)-1])
	return nil
}
