// Package api exposes HTTP handlers for the fitness API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

// Handler handles HTTP interactions.
type Handler struct {
	service *domain.Service
}

// NewHandler constructs Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", healthz)

	mux.HandleFunc("POST /api/auth/login", h.login)

	mux.HandleFunc("POST /api/users", h.createUser)
	mux.HandleFunc("GET /api/users/{id}", h.getUser)
	mux.HandleFunc("PUT /api/users/{id}", h.updateUser)
	mux.HandleFunc("DELETE /api/users/{id}", h.deleteUser)
	mux.HandleFunc("GET /api/users/{userId}/workouts", h.listWorkouts)
	mux.HandleFunc("GET /api/users/{userId}/goals", h.listGoals)
	mux.HandleFunc("GET /api/users/{userId}/nutrition", h.listNutritionEntries)
	mux.HandleFunc("GET /api/users/{userId}/activity-logs", h.listActivityLogs)
	mux.HandleFunc("GET /api/users/{userId}/activity-logs/today", h.todayActivityLog)
	mux.HandleFunc("GET /api/users/{userId}/summary", h.dailySummary)

	mux.HandleFunc("POST /api/workouts", h.createWorkout)
	mux.HandleFunc("GET /api/workouts/{id}", h.getWorkout)
	mux.HandleFunc("PUT /api/workouts/{id}", h.updateWorkout)
	mux.HandleFunc("DELETE /api/workouts/{id}", h.deleteWorkout)
	mux.HandleFunc("GET /api/workouts/{workoutId}/exercises", h.listExercises)

	mux.HandleFunc("POST /api/exercises", h.createExercise)
	mux.HandleFunc("GET /api/exercises/{id}", h.getExercise)
	mux.HandleFunc("PUT /api/exercises/{id}", h.updateExercise)
	mux.HandleFunc("DELETE /api/exercises/{id}", h.deleteExercise)

	mux.HandleFunc("POST /api/goals", h.createGoal)
	mux.HandleFunc("GET /api/goals/{id}", h.getGoal)
	mux.HandleFunc("PUT /api/goals/{id}", h.updateGoal)
	mux.HandleFunc("DELETE /api/goals/{id}", h.deleteGoal)

	mux.HandleFunc("POST /api/nutrition", h.createNutritionEntry)
	mux.HandleFunc("GET /api/nutrition/{id}", h.getNutritionEntry)
	mux.HandleFunc("PUT /api/nutrition/{id}", h.updateNutritionEntry)
	mux.HandleFunc("DELETE /api/nutrition/{id}", h.deleteNutritionEntry)

	mux.HandleFunc("POST /api/activity-logs", h.createActivityLog)
	mux.HandleFunc("GET /api/activity-logs/{id}", h.getActivityLog)
	mux.HandleFunc("PUT /api/activity-logs/{id}", h.updateActivityLog)
	mux.HandleFunc("DELETE /api/activity-logs/{id}", h.deleteActivityLog)
}

// healthz returns an OK response for readiness probes.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps domain errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validation domain.ValidationErrors
	var constraint *domain.ConstraintError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: validation.Error(), Errors: validation})
	case errors.As(err, &constraint):
		status := http.StatusConflict
		if constraint.Kind == domain.ConstraintReference {
			status = http.StatusBadRequest
		}
		writeError(w, status, constraint.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusServiceUnavailable, "Storage unavailable")
	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// decodeJSON reads the request body into dst. A wrongly typed field is reported
// as a validation error against that field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fe := domain.FieldError{Field: typeErr.Field, Message: fmt.Sprintf("must be of type %s", typeErr.Type.Kind())}
		writeServiceError(w, r, domain.ValidationErrors{fe})
		return false
	}
	writeError(w, http.StatusBadRequest, "Invalid request body")
	return false
}

// pathID parses the named path wildcard as a positive integer id.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}

func noContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
