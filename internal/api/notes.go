package api

import (
	"net/http"

	"github.com/aretw0/launchdeck/pkg/core"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Notes.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}
	// id and createdAt are always assigned by the service.
	created, err := h.Notes.Create(r.Context(), core.Note{Title: req.Title, Content: req.Content})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := h.Notes.ParseKey(r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	var patch core.NotePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeFailure(w, err)
		return
	}
	updated, err := h.Notes.Update(r.Context(), id, patch)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := h.Notes.ParseKey(r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := h.Notes.Delete(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}
	writeMessage(w, "Note deleted successfully")
}
