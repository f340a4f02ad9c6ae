package gallery

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the gallery JSON API and the live viewer socket.
func RegisterRoutes(r chi.Router, catalog *Catalog, logger *zap.Logger) {
	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/", handleSnapshot(catalog))
		r.Post("/transition", handleTransition(catalog))
	})
	r.Get("/ws/gallery", handleLive(catalog, logger))
}

// StateFromQuery reads ?category=&item= into a State. Malformed values are
// treated as absent.
func StateFromQuery(q url.Values) State {
	s := State{Category: q.Get("category")}
	if v := q.Get("item"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			s.Selected = id
		}
	}
	return s
}

// Query encodes s for a gallery URL, leaving out default values.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Category != "" && s.Category != AllCategories {
		q.Set("category", s.Category)
	}
	if s.Selected != 0 {
		q.Set("item", strconv.Itoa(s.Selected))
	}
	return q
}

func handleSnapshot(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b := Restore(catalog, StateFromQuery(r.URL.Query()))
		writeJSON(w, http.StatusOK, b.Snapshot())
	}
}

type transitionRequest struct {
	State  State `json:"state"`
	Action struct {
		Op       string `json:"op"`
		Category string `json:"category"`
		ID       int    `json:"id"`
	} `json:"action"`
}

type transitionResponse struct {
	State    State    `json:"state"`
	Snapshot Snapshot `json:"snapshot"`
}

func handleTransition(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req transitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		op, err := ParseOp(req.Action.Op)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		b := Restore(catalog, req.State)
		b.Do(Action{Op: op, Category: req.Action.Category, ID: req.Action.ID})

		writeJSON(w, http.StatusOK, transitionResponse{
			State:    b.State(),
			Snapshot: b.Snapshot(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
