package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/menubot/internal/content"
)

func mustDecode(t *testing.T, s string) *content.Tree {
	t.Helper()
	tree, err := content.Decode([]byte(s))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return tree
}

func TestSearchFAQAnswer(t *testing.T) {
	hits := Search("стипенд", content.SampleTree())

	var found bool
	for _, h := range hits {
		if h.ActionID == "faq_1" {
			found = true
			if h.Label != FAQPrefix+"Есть ли стипендия?" {
				t.Errorf("Label = %q", h.Label)
			}
		}
	}
	if !found {
		t.Errorf("expected a hit for faq_1, got %+v", hits)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	hits := Search("ОБЩЕЖИТИЕ", content.SampleTree())
	if len(hits) == 0 || hits[0].ActionID != "dormitory" {
		t.Errorf("expected dormitory first, got %+v", hits)
	}
}

func TestSearchTextAndDescriptionYieldTwoHits(t *testing.T) {
	tree := mustDecode(t, `{"title":"t","main_menu":[
		{"text":"Общежитие","callback_data":"dorm","description":"Общежитие для студентов"}
	],"faq":[]}`)

	hits := Search("общежитие", tree)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d: %+v", len(hits), hits)
	}
	if hits[0] != hits[1] || hits[0].ActionID != "dorm" {
		t.Errorf("expected two identical hits for dorm, got %+v", hits)
	}
}

func TestSearchDocumentsAndOrder(t *testing.T) {
	tree := mustDecode(t, `{"title":"t","main_menu":[
		{"text":"Документы","callback_data":"docs","documents":[
			{"text":"Правила приема","url":"https://example.org/rules.pdf"},
			{"text":"Правила общежития","callback_data":"dorm"}
		]},
		{"text":"Общежитие","callback_data":"dorm","description":"правила проживания"}
	],"faq":[{"question":"Какие правила?","answer":"См. документы"}]}`)

	hits := Search("правила", tree)
	want := []Hit{
		{Label: DocumentPrefix + "Правила приема", URL: "https://example.org/rules.pdf"},
		{Label: DocumentPrefix + "Правила общежития", ActionID: "dorm"},
		{Label: "Общежитие", ActionID: "dorm"},
		{Label: FAQPrefix + "Какие правила?", ActionID: "faq_0"},
	}
	if len(hits) != len(want) {
		t.Fatalf("got %d hits, want %d: %+v", len(hits), len(want), hits)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hit %d = %+v, want %+v", i, hits[i], want[i])
		}
	}
}

func TestSearchSubmenuChildren(t *testing.T) {
	hits := Search("бакалавр", content.SampleTree())
	if len(hits) != 1 || hits[0].ActionID != "bachelor" {
		t.Errorf("expected bachelor hit, got %+v", hits)
	}

	hits = Search("сайт", content.SampleTree())
	if len(hits) != 1 || hits[0].URL != "https://example.org" {
		t.Errorf("expected a URL hit for a link without id, got %+v", hits)
	}
}

func TestSearchFAQOneHitPerEntry(t *testing.T) {
	tree := mustDecode(t, `{"title":"t","main_menu":[],"faq":[{"question":"Общежитие?","answer":"Общежитие есть"}]}`)
	if hits := Search("общежитие", tree); len(hits) != 1 {
		t.Errorf("expected one hit per FAQ entry, got %+v", hits)
	}
}

func TestSearchNoMatches(t *testing.T) {
	if hits := Search("несуществующее", content.SampleTree()); len(hits) != 0 {
		t.Errorf("expected no hits, got %+v", hits)
	}
}

type staticSource struct{ tree *content.Tree }

func (s staticSource) Tree(context.Context) *content.Tree { return s.tree }

func TestHTTPSearch(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, staticSource{content.SampleTree()})

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=%D0%A1%D1%82%D0%B8%D0%BF%D0%B5%D0%BD%D0%B4", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got response
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Query != "стипенд" || len(got.Hits) == 0 {
		t.Errorf("unexpected response: %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/search?q=", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty query: status = %d, want 400", rec.Code)
	}
}
