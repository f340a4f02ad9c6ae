package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the JSON contact API.
func RegisterRoutes(r chi.Router, intake *Intake, logger *zap.Logger) {
	r.Post("/api/contact", handleSubmit(intake, logger))
}

type submitResponse struct {
	ID     string      `json:"id,omitempty"`
	Errors FieldErrors `json:"errors,omitempty"`
}

func handleSubmit(intake *Intake, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		inq, fieldErrs, err := intake.Submit(r.Context(), f, r.RemoteAddr)
		if err != nil {
			logger.Error("saving inquiry", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save inquiry"})
			return
		}
		if fieldErrs != nil {
			writeJSON(w, http.StatusUnprocessableEntity, submitResponse{Errors: fieldErrs})
			return
		}
		writeJSON(w, http.StatusCreated, submitResponse{ID: inq.ID})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
