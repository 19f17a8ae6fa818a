package api

import (
	"net/http"
)

type launchProgramRequest struct {
	Program string `json:"program"`
}

type launchFolderRequest struct {
	Path string `json:"path"`
}

func (h *Handler) handleLaunchProgram(w http.ResponseWriter, r *http.Request) {
	var req launchProgramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}
	if err := h.Launcher.Open(r.Context(), req.Program); err != nil {
		writeFailure(w, err)
		return
	}
	writeMessage(w, "Program launched successfully")
}

func (h *Handler) handleLaunchFolder(w http.ResponseWriter, r *http.Request) {
	var req launchFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, err)
		return
	}
	if err := h.Launcher.Open(r.Context(), req.Path); err != nil {
		writeFailure(w, err)
		return
	}
	writeMessage(w, "Folder launched successfully")
}
