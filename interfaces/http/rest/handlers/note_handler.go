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

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	scribe       *services.ScribeService
	logger       *zap.Logger
	limits       LimitsProvider
	maxBodyBytes int64
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(scribe *services.ScribeService, logger *zap.Logger, limits LimitsProvider, maxBodyBytes int64) *NoteHandler {
	return &NoteHandler{scribe: scribe, logger: logger, limits: limits, maxBodyBytes: maxBodyBytes}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	StyloID string `json:"stylo_id" validate:"required,uuid"`
	Content string `json:"content"`
	// ImportedAt is the client-side capture time, RFC 3339. The server
	// clock is only a fallback when the field is omitted.
	ImportedAt string `json:"imported_at" validate:"omitempty"`
}

// SyncNoteRequest represents the request body for syncing a note
type SyncNoteRequest struct {
	Content string `json:"content"`
}

// CreateNote handles POST /project/{slug}/note
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
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

	importedAt := time.Now().UTC()
	if req.ImportedAt != "" {
		importedAt, err = time.Parse(time.RFC3339, req.ImportedAt)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "imported_at must be RFC 3339")
			return
		}
	}

	note, err := h.scribe.CreateNote(r.Context(), commands.CreateNoteCommand{
		ImportedAt:  importedAt,
		StyloID:     styloID,
		ProjectSlug: chi.URLParam(r, "slug"),
		Content:     req.Content,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/note/"+note.ID().String())
	common.RespondJSON(w, http.StatusCreated, toNoteResponse(note))
}

// GetNote handles GET /note/{noteID}
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := valueobjects.NewNoteIDFromString(chi.URLParam(r, "noteID"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid note id")
		return
	}

	note, err := h.scribe.Note(r.Context(), noteID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	if note == nil {
		common.RespondError(w, http.StatusNotFound, pkgerrors.CodeNoteNotFound, "note not found")
		return
	}

	common.RespondJSON(w, http.StatusOK, toNoteResponse(note))
}

// ListNotes handles GET /project/{slug}/notes
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
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

	notes, err := h.scribe.NotesByProject(r.Context(), project.ID())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if max := h.limits.Limits().MaxListPageSize; len(notes) > max {
		notes = notes[:max]
	}
	responses := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, toNoteResponse(note))
	}
	common.RespondJSON(w, http.StatusOK, responses)
}

// SyncNote handles PUT /note/{noteID}
func (h *NoteHandler) SyncNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := valueobjects.NewNoteIDFromString(chi.URLParam(r, "noteID"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid note id")
		return
	}

	var req SyncNoteRequest
	if err := common.ParseJSONBody(r, &req, h.maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body: "+err.Error())
		return
	}
	if max := h.limits.Limits().MaxContentBytes; len(req.Content) > max {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED",
			fmt.Sprintf("content must be at most %d bytes", max))
		return
	}

	note, err := h.scribe.SyncNote(r.Context(), commands.SyncNoteCommand{
		NoteID:  noteID,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, toNoteResponse(note))
}

// ScratchNote handles DELETE /notes/{noteID}
func (h *NoteHandler) ScratchNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := valueobjects.NewNoteIDFromString(chi.URLParam(r, "noteID"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid note id")
		return
	}

	if _, err := h.scribe.ScratchNote(r.Context(), noteID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
