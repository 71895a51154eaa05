package search

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/menubot/internal/content"
)

// Source provides the current content tree.
type Source interface {
	Tree(ctx context.Context) *content.Tree
}

type response struct {
	Query string `json:"query"`
	Hits  []Hit  `json:"hits"`
}

// RegisterRoutes mounts GET /api/search?q= on the given router.
func RegisterRoutes(r chi.Router, src Source) {
	r.Get("/api/search", func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q == "" {
			http.Error(w, "q is required", http.StatusBadRequest)
			return
		}
		hits := Search(q, src.Tree(r.Context()))
		if hits == nil {
			hits = []Hit{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response{Query: strings.ToLower(q), Hits: hits})
	})
}
