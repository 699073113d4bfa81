package api

import (
	"net/http"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

func (h *Handler) createExercise(w http.ResponseWriter, r *http.Request) {
	var input domain.NewExercise
	if !decodeJSON(w, r, &input) {
		return
	}
	exercise, err := h.service.CreateExercise(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, exercise)
}

func (h *Handler) getExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	exercise, err := h.service.GetExercise(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := pathID(w, r, "workoutId")
	if !ok {
		return
	}
	exercises, err := h.service.ListExercises(r.Context(), workoutID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (h *Handler) updateExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var patch domain.ExercisePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	exercise, err := h.service.UpdateExercise(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}

func (h *Handler) deleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteExercise(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	noContent(w)
}
