package rest

import (
	"net/http"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/contracts"
	"househunt-service/internal/core/domain"
	usecases_port "househunt-service/internal/core/port/usecases_port"
)

type ProfileHandler struct {
	getProfileUC    usecases_port.GetProfileUseCase
	updateProfileUC usecases_port.UpdateProfileUseCase
}

func NewProfileHandler(getProfileUC usecases_port.GetProfileUseCase, updateProfileUC usecases_port.UpdateProfileUseCase) *ProfileHandler {
	return &ProfileHandler{getProfileUC: getProfileUC, updateProfileUC: updateProfileUC}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	user, err := h.getProfileUC.Execute(r.Context(), identity)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	var patch domain.ProfilePatch
	if err := decodeBody(r, contracts.UpdateProfileRequest, &patch); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.updateProfileUC.Execute(r.Context(), identity, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, user)
}
