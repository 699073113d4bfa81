package api

import (
	"net/http"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

func (h *Handler) createActivityLog(w http.ResponseWriter, r *http.Request) {
	var input domain.NewActivityLog
	if !decodeJSON(w, r, &input) {
		return
	}
	entry, err := h.service.CreateActivityLog(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) getActivityLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.service.GetActivityLog(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) listActivityLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	logs, err := h.service.ListActivityLogs(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *Handler) todayActivityLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	entry, err := h.service.TodayActivityLog(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) updateActivityLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var patch domain.ActivityLogPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	entry, err := h.service.UpdateActivityLog(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) deleteActivityLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteActivityLog(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	noContent(w)
}
