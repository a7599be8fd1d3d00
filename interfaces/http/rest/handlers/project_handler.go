package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/application/services"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	"github.com/chanmix51/kaku/pkg/common"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
	"github.com/chanmix51/kaku/pkg/utils"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	scribe       *services.ScribeService
	logger       *zap.Logger
	limits       LimitsProvider
	maxBodyBytes int64
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(scribe *services.ScribeService, logger *zap.Logger, limits LimitsProvider, maxBodyBytes int64) *ProjectHandler {
	return &ProjectHandler{scribe: scribe, logger: logger, limits: limits, maxBodyBytes: maxBodyBytes}
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	ProjectName string `json:"project_name" validate:"required,min=1"`
	UniverseID  string `json:"universe_id" validate:"omitempty,uuid"`
}

// CreateProject handles POST /project/create
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := common.ParseJSONBody(r, &req, h.maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}
	if max := h.limits.Limits().MaxProjectNameLength; len(req.ProjectName) > max {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED",
			fmt.Sprintf("project_name must be at most %d characters", max))
		return
	}

	universeID := valueobjects.NewUniverseID()
	if req.UniverseID != "" {
		var err error
		universeID, err = valueobjects.NewUniverseIDFromString(req.UniverseID)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid universe_id")
			return
		}
	}

	project, err := h.scribe.CreateProject(r.Context(), commands.CreateProjectCommand{
		ProjectName: req.ProjectName,
		UniverseID:  universeID,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/project/"+project.Slug())
	common.RespondJSON(w, http.StatusCreated, toProjectResponse(project))
}

// GetProject handles GET /project/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.scribe.ProjectBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	if project == nil {
		common.RespondError(w, http.StatusNotFound, pkgerrors.CodeProjectNotFound, "project '"+slug+"' not found")
		return
	}

	common.RespondJSON(w, http.StatusOK, toProjectResponse(project))
}

// ListProjects handles GET /universe/{universeID}/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	universeID, err := valueobjects.NewUniverseIDFromString(chi.URLParam(r, "universeID"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid universe id")
		return
	}

	projects, err := h.scribe.ProjectsByUniverse(r.Context(), universeID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if max := h.limits.Limits().MaxListPageSize; len(projects) > max {
		projects = projects[:max]
	}
	responses := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(project))
	}
	common.RespondJSON(w, http.StatusOK, responses)
}

// LockProject handles POST /project/{slug}/lock
func (h *ProjectHandler) LockProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.scribe.LockProject(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toProjectResponse(project))
}

// UnlockProject handles DELETE /project/{slug}/lock
func (h *ProjectHandler) UnlockProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.scribe.UnlockProject(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toProjectResponse(project))
}
