package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/commands"
	"github.com/chanmix51/kaku/application/services"
	"github.com/chanmix51/kaku/domain/core/valueobjects"
	"github.com/chanmix51/kaku/pkg/common"
	"github.com/chanmix51/kaku/pkg/utils"
)

// StyloHandler handles stylo-related HTTP requests
type StyloHandler struct {
	scribe       *services.ScribeService
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewStyloHandler creates a new stylo handler
func NewStyloHandler(scribe *services.ScribeService, logger *zap.Logger, maxBodyBytes int64) *StyloHandler {
	return &StyloHandler{scribe: scribe, logger: logger, maxBodyBytes: maxBodyBytes}
}

// CreateStyloRequest represents the request body for creating a stylo
type CreateStyloRequest struct {
	OwnerOrganizationID string `json:"owner_organization_id" validate:"required,uuid"`
	ActorOrganizationID string `json:"actor_organization_id" validate:"required,uuid"`
	DisplayName         string `json:"display_name" validate:"required,min=1,max=255"`
	Email               string `json:"email" validate:"omitempty,email"`
}

// CreateStylo handles POST /stylo/create
func (h *StyloHandler) CreateStylo(w http.ResponseWriter, r *http.Request) {
	var req CreateStyloRequest
	if err := common.ParseJSONBody(r, &req, h.maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	ownerID, err := valueobjects.NewUniverseIDFromString(req.OwnerOrganizationID)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid owner_organization_id")
		return
	}
	actorID, err := valueobjects.NewUniverseIDFromString(req.ActorOrganizationID)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid actor_organization_id")
		return
	}

	stylo, err := h.scribe.CreateStylo(r.Context(), commands.CreateStyloCommand{
		OwnerOrganizationID: ownerID,
		ActorOrganizationID: actorID,
		DisplayName:         req.DisplayName,
		Email:               req.Email,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/stylo/"+stylo.ID().String())
	common.RespondJSON(w, http.StatusCreated, toStyloResponse(stylo))
}

// RevokeStylo handles DELETE /stylo/{styloID}
func (h *StyloHandler) RevokeStylo(w http.ResponseWriter, r *http.Request) {
	styloID, err := valueobjects.NewStyloIDFromString(chi.URLParam(r, "styloID"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid stylo id")
		return
	}

	if _, err := h.scribe.RevokeStylo(r.Context(), styloID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
