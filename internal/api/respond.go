package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/launchdeck/pkg/core"
	"github.com/aretw0/launchdeck/pkg/launcher"
)

// maxBodyBytes bounds request bodies; records are tiny.
const maxBodyBytes = 1 << 20

// errorBody is the structured failure returned for every error.
type errorBody struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorBody{Error: message, Kind: kind})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageBody{Message: message})
}

// writeFailure maps a domain or launcher error to its HTTP status.
func writeFailure(w http.ResponseWriter, err error) {
	status, kind := classify(err)
	writeError(w, status, kind, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, launcher.ErrUnsupportedPlatform):
		return http.StatusBadRequest, "unsupported_platform"
	case errors.Is(err, launcher.ErrNotAllowed):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, launcher.ErrLaunchFailed):
		return http.StatusInternalServerError, "launch_failed"
	}

	kind := core.KindOf(err)
	switch kind {
	case core.KindValidation:
		return http.StatusBadRequest, string(kind)
	case core.KindConflict:
		return http.StatusConflict, string(kind)
	case core.KindNotFound:
		return http.StatusNotFound, string(kind)
	default:
		return http.StatusInternalServerError, string(kind)
	}
}

// decodeJSON reads a single JSON value from the request body.
// Malformed input is a validation failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", core.ErrValidation, err)
	}
	return nil
}
