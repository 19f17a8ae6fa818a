package api

import (
	"net/http"

	"github.com/aretw0/launchdeck/pkg/core"
)

func (h *Handler) handleListLaunchItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.LaunchItems.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetLaunchItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.LaunchItems.ParseKey(r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	item, err := h.LaunchItems.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateLaunchItem(w http.ResponseWriter, r *http.Request) {
	var item core.LaunchItem
	if err := decodeJSON(w, r, &item); err != nil {
		writeFailure(w, err)
		return
	}
	created, err := h.LaunchItems.Create(r.Context(), item)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateLaunchItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.LaunchItems.ParseKey(r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	var patch core.LaunchItemPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeFailure(w, err)
		return
	}
	updated, err := h.LaunchItems.Update(r.Context(), id, patch)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteLaunchItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.LaunchItems.ParseKey(r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := h.LaunchItems.Delete(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}
	writeMessage(w, "Launch item deleted successfully")
}

// handleLaunchItem opens the path stored on a saved launch item.
func (h *Handler) handleLaunchItem(w http.ResponseWriter, r *http.Request) {
	id, err := h.LaunchItems.ParseKey(r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	item, err := h.LaunchItems.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := h.Launcher.Open(r.Context(), item.Path); err != nil {
		writeFailure(w, err)
		return
	}
	writeMessage(w, item.Name+" launched successfully")
}
