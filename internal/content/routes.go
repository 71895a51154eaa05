package content

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// adminTokenHeader authorizes content edits.
const adminTokenHeader = "X-Admin-Token"

// maxContentBytes bounds the size of an uploaded content file.
const maxContentBytes = 10 << 20

// validationResult is the body of the validate endpoint and of rejected
// uploads.
type validationResult struct {
	Valid    bool      `json:"valid"`
	Problems []Problem `json:"problems"`
}

// RegisterRoutes mounts the content endpoints. When adminToken is set,
// PUT /api/content requires it in the X-Admin-Token header.
func RegisterRoutes(r chi.Router, store *Store, adminToken string) {
	r.Route("/api/content", func(r chi.Router) {
		r.Get("/", handleGet(store))
		r.Get("/validate", handleValidate(store))
		r.With(requireToken(adminToken)).Put("/", handlePut(store))
	})
	r.Get("/preview", handlePreview(store))
}

func requireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := Encode(store.Load())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	}
}

func handleValidate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		problems := Validate(store.Load())
		writeJSON(w, http.StatusOK, validationResult{Valid: len(problems) == 0, Problems: orEmpty(problems)})
	}
}

func handlePut(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxContentBytes))
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		tree, err := Decode(body)
		if err != nil {
			http.Error(w, "invalid content: "+err.Error(), http.StatusBadRequest)
			return
		}
		if problems := Validate(tree); len(problems) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, validationResult{Problems: problems})
			return
		}
		if err := store.Save(tree); err != nil {
			http.Error(w, "saving content failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, validationResult{Valid: true, Problems: []Problem{}})
	}
}

func handlePreview(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := RenderPreview(store.Load())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

func orEmpty(p []Problem) []Problem {
	if p == nil {
		return []Problem{}
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
