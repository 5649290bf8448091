package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/store"
	"github.com/dailydost/dailydost/internal/validation"
)

// NoteHandler handles learning-note requests
type NoteHandler struct {
	notes *store.NoteRepository
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(notes *store.NoteRepository) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// RegisterRoutes registers note routes on the given router.
// The router should already have the /notes prefix.
func (h *NoteHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListNotes).Methods("GET")
	r.HandleFunc("", h.CreateNote).Methods("POST")
	r.HandleFunc("/{id}", h.DeleteNote).Methods("DELETE")
}

// CreateNoteRequest represents a create note request
type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"required,min=1,max=10000"`
	Category string `json:"category" validate:"required,note_category"`
}

// ListNotes lists the user's notes, newest first
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	notes, err := h.notes.Load(r.Context(), session.UserID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

// CreateNote records a new note
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	var req CreateNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	note, err := h.notes.Create(r.Context(), session.UserID,
		validation.SanitizeText(req.Title),
		validation.SanitizeText(req.Content),
		models.NoteCategory(req.Category),
	)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

// DeleteNote removes a note
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid note ID")
		return
	}

	if err := h.notes.Delete(r.Context(), session.UserID, id); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
