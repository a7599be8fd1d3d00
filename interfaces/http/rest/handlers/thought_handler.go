package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/application/services"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	"github.com/chanmix51/kaku/pkg/common"
	pkgerrors "github.com/chanmix51/kaku/pkg/errors"
	"github.com/chanmix51/kaku/pkg/utils"
)

// ThoughtHandler handles thought-related HTTP requests
type ThoughtHandler struct {
	scribe       *services.ScribeService
	logger       *zap.Logger
	limits       LimitsProvider
	maxBodyBytes int64
}

// NewThoughtHandler creates a new thought handler
func NewThoughtHandler(scribe *services.ScribeService, logger *zap.Logger, limits LimitsProvider, maxBodyBytes int64) *ThoughtHandler {
	return &ThoughtHandler{scribe: scribe, logger: logger, limits: limits, maxBodyBytes: maxBodyBytes}
}

// CreateThoughtRequest represents the request body for creating a thought
type CreateThoughtRequest struct {
	StyloID  string `json:"stylo_id" validate:"required,uuid"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
	Content  string `json:"content"`
	// ImportedAt is the client-side capture time, RFC 3339. The server
	// clock is only a fallback when the field is omitted.
	ImportedAt string `json:"imported_at" validate:"omitempty"`
}

// CreateThought handles POST /project/{slug}/thought
func (h *ThoughtHandler) CreateThought(w http.ResponseWriter, r *http.Request) {
	var req CreateThoughtRequest
	if err := common.ParseJSONBody(r, &req, h.maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}
	if max := h.limits.Limits().MaxContentBytes; len(req.Content) > max {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED",
			fmt.Sprintf("content must be at most %d bytes", max))
		return
	}

	styloID, err := valueobjects.NewStyloIDFromString(req.StyloID)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid stylo_id")
		return
	}

	var parentID valueobjects.ThoughtID
	if req.ParentID != "" {
		parentID, err = valueobjects.NewThoughtIDFromString(req.ParentID)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid parent_id")
			return
		}
	}

	importedAt := time.Now().UTC()
	if req.ImportedAt != "" {
		importedAt, err = time.Parse(time.RFC3339, req.ImportedAt)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "imported_at must be RFC 3339")
			return
		}
	}

	thought, err := h.scribe.CreateThought(r.Context(), commands.CreateThoughtCommand{
		ImportedAt:  importedAt,
		ParentID:    parentID,
		StyloID:     styloID,
		ProjectSlug: chi.URLParam(r, "slug"),
		Content:     req.Content,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/thought/"+thought.ID().String())
	common.RespondJSON(w, http.StatusCreated, toThoughtResponse(thought))
}

// GetThought handles GET /thought/{thoughtID}
func (h *ThoughtHandler) GetThought(w http.ResponseWriter, r *http.Request) {
	thoughtID, err := valueobjects.NewThoughtIDFromString(chi.URLParam(r, "thoughtID"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid thought id")
		return
	}

	thought, err := h.scribe.Thought(r.Context(), thoughtID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	if thought == nil {
		common.RespondError(w, http.StatusNotFound, pkgerrors.CodeThoughtNotFound, "thought not found")
		return
	}

	common.RespondJSON(w, http.StatusOK, toThoughtResponse(thought))
}
