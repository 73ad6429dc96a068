package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mviana/exercise-tracker/internal/service"
	"github.com/sirupsen/logrus"
)

// Handler adapts HTTP requests onto the service layer
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// NewRouter builds the route table: four JSON API routes plus the static
// landing page and assets.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/users", h.CreateUser).Methods("POST")
	r.HandleFunc("/api/users", h.ListUsers).Methods("GET")
	r.HandleFunc("/api/users/{id}/exercises", h.AddExercise).Methods("POST")
	r.HandleFunc("/api/users/{id}/logs", h.GetLog).Methods("GET")
	r.HandleFunc("/", h.Index).Methods("GET")
	r.PathPrefix("/public/").Handler(http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))
	return r
}

// Index serves the static landing page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "views/index.html")
}

// CreateUser handles user registration
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, "Failed to create user", err)
		return
	}

	user, err := h.svc.CreateUser(r.PostFormValue("username"))
	if err != nil {
		h.fail(w, "Failed to create user", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ListUsers handles listing all registered users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers()
	if err != nil {
		h.fail(w, "Failed to fetch users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// AddExercise handles logging an exercise against a user
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, "Failed to add exercise", err)
		return
	}

	result, err := h.svc.AddExercise(
		mux.Vars(r)["id"],
		r.PostFormValue("description"),
		r.PostFormValue("duration"),
		r.PostFormValue("date"),
	)
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.fail(w, "Failed to add exercise", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetLog handles the filtered activity log query
func (h *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.GetLog(
		mux.Vars(r)["id"],
		q.Get("from"),
		q.Get("to"),
		q.Get("limit"),
	)
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.fail(w, "Failed to fetch logs", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// fail logs the underlying cause and responds with a generic 500 body; the
// cause is never exposed to the caller.
func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	h.log.Errorf("%s: %v", msg, err)
	writeError(w, http.StatusInternalServerError, msg)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
