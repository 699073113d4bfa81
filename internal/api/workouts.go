package api

import (
	"net/http"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	var input domain.NewWorkout
	if !decodeJSON(w, r, &input) {
		return
	}
	workout, err := h.service.CreateWorkout(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

func (h *Handler) getWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	workout, err := h.service.GetWorkout(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// listWorkouts accepts ?view=upcoming|past.
func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	view := domain.WorkoutView(r.URL.Query().Get("view"))
	workouts, err := h.service.ListWorkouts(r.Context(), userID, view)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (h *Handler) updateWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var patch domain.WorkoutPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	workout, err := h.service.UpdateWorkout(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteWorkout(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	noContent(w)
}
