package rest

import (
	"net/http"

	usecases_port "househunt-service/internal/core/port/usecases_port"
)

type DictionariesHandler struct {
	getDictionariesUC usecases_port.GetDictionariesUseCase
}

func NewDictionariesHandler(getDictionariesUC usecases_port.GetDictionariesUseCase) *DictionariesHandler {
	return &DictionariesHandler{getDictionariesUC: getDictionariesUC}
}

func (h *DictionariesHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	dictionaries, err := h.getDictionariesUC.Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, dictionaries)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
