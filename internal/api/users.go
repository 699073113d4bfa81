package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate ensures both credentials are present.
func (r LoginRequest) Validate() bool {
	return strings.TrimSpace(r.Username) != "" && r.Password != ""
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Validate() {
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}
	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var input domain.NewUser
	if !decodeJSON(w, r, &input) {
		return
	}
	user, err := h.service.CreateUser(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var patch domain.UserPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	user, err := h.service.UpdateUser(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	noContent(w)
}

// dailySummary serves GET /api/users/{userId}/summary?date=YYYY-MM-DD. Date defaults to today (UTC).
func (h *Handler) dailySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	var day time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseTimestamp(raw)
		if err != nil {
			writeServiceError(w, r, domain.ValidationErrors{{Field: "date", Message: "must be a date (YYYY-MM-DD) or timestamp"}})
			return
		}
		day = parsed
	}
	summary, err := h.service.DailySummary(r.Context(), userID, day)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
