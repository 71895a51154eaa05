package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter(t *testing.T, token string) (chi.Router, *Store) {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "bot_data.json"), nil)
	if err := store.Save(SampleTree()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, store, token)
	return r, store
}

func serve(r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHTTPGetContent(t *testing.T) {
	r, _ := setupRouter(t, "")

	rec := serve(r, http.MethodGet, "/api/content", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	tree, err := Decode(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tree.Title != SampleTree().Title {
		t.Errorf("Title = %q", tree.Title)
	}
}

func TestHTTPPutContent(t *testing.T) {
	r, store := setupRouter(t, "secret")
	body := `{"title":"Новое меню","main_menu":[{"text":"О нас","callback_data":"about","text_content":"Привет"}],"faq":[]}`

	rec := serve(r, http.MethodPut, "/api/content", body, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without token: status = %d, want 401", rec.Code)
	}

	rec = serve(r, http.MethodPut, "/api/content", body, map[string]string{adminTokenHeader: "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := store.Load().Title; got != "Новое меню" {
		t.Errorf("Title after PUT = %q", got)
	}
}

func TestHTTPPutRejectsInvalidContent(t *testing.T) {
	r, store := setupRouter(t, "")
	before, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	rec := serve(r, http.MethodPut, "/api/content", `{"main_menu": [`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed JSON: status = %d, want 400", rec.Code)
	}

	dup := `{"title":"t","main_menu":[{"text":"a","callback_data":"x"},{"text":"b","callback_data":"x"}],"faq":[]}`
	rec = serve(r, http.MethodPut, "/api/content", dup, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid tree: status = %d, want 422", rec.Code)
	}
	var res validationResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Valid || len(res.Problems) == 0 {
		t.Errorf("expected problems, got %+v", res)
	}

	after, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Error("rejected upload modified the content file")
	}
}

func TestHTTPValidate(t *testing.T) {
	r, _ := setupRouter(t, "")

	rec := serve(r, http.MethodGet, "/api/content/validate", "", nil)
	var res validationResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !res.Valid || res.Problems == nil {
		t.Errorf("expected valid result with an empty problem list, got %+v", res)
	}
}

func TestHTTPPreview(t *testing.T) {
	r, _ := setupRouter(t, "")

	rec := serve(r, http.MethodGet, "/preview", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	page := rec.Body.String()
	for _, want := range []string{
		"<title>Бот приемной комиссии</title>",
		`id="faq_1"`,
		"<p>Да, студентам очной формы выплачивается академическая стипендия.</p>",
		`href="https://example.org/docs/order-1.pdf"`,
		"<dt>phone</dt>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestRenderPreviewEscapesRawHTML(t *testing.T) {
	tree := &Tree{
		Title:    "t",
		MainMenu: NodeList{&TextNode{Base: Base{ID: "x", Text: "X"}, Body: "<script>alert(1)</script>"}},
	}
	page, err := RenderPreview(tree)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(page), "<script>alert(1)</script>") {
		t.Error("raw HTML passed through the preview")
	}
}
