package api

import (
	"net/http"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

func (h *Handler) createNutritionEntry(w http.ResponseWriter, r *http.Request) {
	var input domain.NewNutritionEntry
	if !decodeJSON(w, r, &input) {
		return
	}
	entry, err := h.service.CreateNutritionEntry(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) getNutritionEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.service.GetNutritionEntry(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) listNutritionEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	entries, err := h.service.ListNutritionEntries(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) updateNutritionEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var patch domain.NutritionEntryPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	entry, err := h.service.UpdateNutritionEntry(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) deleteNutritionEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteNutritionEntry(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	noContent(w)
}
