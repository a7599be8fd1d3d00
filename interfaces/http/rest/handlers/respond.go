package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/chanmix51/kaku/domain/core/entities"
	"github.com/chanmix51/kaku/pkg/common"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
)

// respondServiceError maps a service error onto the response envelope. The
// status comes from the error taxonomy; unknown errors stay opaque 500s.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := pkgerrors.HTTPStatusOf(err)
	code := "INTERNAL_ERROR"
	message := "internal error"

	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		code = appErr.Code
		message = appErr.Message
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}

	common.RespondError(w, status, code, message)
}

// ProjectResponse is the transport representation of a project
type ProjectResponse struct {
	ID         string `json:"id"`
	UniverseID string `json:"universe_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Locked     bool   `json:"locked"`
	CreatedAt  string `json:"created_at"`
}

// NoteResponse is the transport representation of a note
type NoteResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	StyloID    string `json:"stylo_id"`
	Content    string `json:"content"`
	ImportedAt string `json:"imported_at"`
}

// ThoughtResponse is the transport representation of a thought
type ThoughtResponse struct {
	ID         string `json:"id"`
	ParentID   string `json:"parent_id,omitempty"`
	ProjectID  string `json:"project_id"`
	StyloID    string `json:"stylo_id"`
	Content    string `json:"content"`
	ImportedAt string `json:"imported_at"`
}

// StyloResponse is the transport representation of a stylo
type StyloResponse struct {
	ID                  string `json:"id"`
	OwnerOrganizationID string `json:"owner_organization_id"`
	ActorOrganizationID string `json:"actor_organization_id"`
	DisplayName         string `json:"display_name"`
	Email               string `json:"email"`
	Locked              bool   `json:"locked"`
	CreatedAt           string `json:"created_at"`
}

func toProjectResponse(p *entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID().String(),
		UniverseID: p.UniverseID().String(),
		Name:       p.Name(),
		Slug:       p.Slug(),
		Locked:     p.Locked(),
		CreatedAt:  p.CreatedAt().Format(time.RFC3339),
	}
}

func toNoteResponse(n *entities.Note) NoteResponse {
	return NoteResponse{
		ID:         n.ID().String(),
		ProjectID:  n.ProjectID().String(),
		StyloID:    n.StyloID().String(),
		Content:    n.Content(),
		ImportedAt: n.ImportedAt().Format(time.RFC3339),
	}
}

func toThoughtResponse(t *entities.Thought) ThoughtResponse {
	resp := ThoughtResponse{
		ID:         t.ID().String(),
		ProjectID:  t.ProjectID().String(),
		StyloID:    t.StyloID().String(),
		Content:    t.Content(),
		ImportedAt: t.ImportedAt().Format(time.RFC3339),
	}
	if t.HasParent() {
		resp.ParentID = t.ParentID().String()
	}
	return resp
}

func toStyloResponse(s *entities.Stylo) StyloResponse {
	return StyloResponse{
		ID:                  s.ID().String(),
		OwnerOrganizationID: s.OwnerOrganizationID().String(),
		ActorOrganizationID: s.ActorOrganizationID().String(),
		DisplayName:         s.DisplayName(),
		Email:               s.Email(),
		Locked:              s.Locked(),
		CreatedAt:           s.CreatedAt().Format(time.RFC3339),
	}
}
