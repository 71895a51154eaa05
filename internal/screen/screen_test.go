package screen

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/menubot/internal/content"
)

func TestScreenRows(t *testing.T) {
	s := New("text").
		Add(Callback("a", "a"), Link("b", "https://b")).
		AddRow().
		AddRow(Callback("◀️", "prev"), Label("1/2"), Callback("▶️", "next"))

	if len(s.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(s.Rows))
	}
	if len(s.Rows[2]) != 3 {
		t.Errorf("expected a 3-button row, got %d", len(s.Rows[2]))
	}
	if !s.Rows[2][1].Inert() || s.Rows[0][0].Inert() || s.Rows[1][0].Inert() {
		t.Error("unexpected Inert results")
	}
	if got := len(s.Actions()); got != 5 {
		t.Errorf("Actions() = %d, want 5", got)
	}
}

func TestNewScreenHasNoActions(t *testing.T) {
	s := New("empty")
	if s.Rows == nil || len(s.Actions()) != 0 {
		t.Errorf("expected an empty, non-nil keyboard, got %+v", s.Rows)
	}
}

func dataOf(t *testing.T, obj string) *content.Data {
	t.Helper()
	tree, err := content.Decode([]byte(`{"title":"t","main_menu":[{"text":"d","callback_data":"d","data":` + obj + `}],"faq":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	return tree.MainMenu[0].(*content.DataNode).Data
}

func TestFormatDataFields(t *testing.T) {
	got := FormatData(dataOf(t, `{
		"phone": "+7 (4932) 00-00-00",
		"email": "pk@example.org",
		"working_hours": "пн-пт 9:00-17:00",
		"telegram": "https://t.me/example",
		"places": 120
	}`))

	want := "📞 <b>Phone</b>: +7 (4932) 00-00-00\n" +
		"✉️ <b>Email</b>: pk@example.org\n" +
		"<b>Working Hours</b>: пн-пт 9:00-17:00\n" +
		"📱 <b>Telegram</b>: <a href='https://t.me/example'>@Agrobioteh37</a>\n" +
		"<b>Places</b>: 120\n"
	if got != want {
		t.Errorf("FormatData:\n got %q\nwant %q", got, want)
	}
}

func TestFormatDataSpecialties(t *testing.T) {
	got := FormatData(dataOf(t, `{
		"note": "ignored",
		"specialties": [
			{"name": "Агрономия", "code": "35.03.04", "profile": "Агробизнес"},
			{"name": "Зоотехния", "code": "36.03.02"}
		]
	}`))

	want := "<b>🎓 Агрономия</b> (35.03.04)\nПрофиль: Агробизнес\n\n" +
		"<b>🎓 Зоотехния</b> (36.03.02)\n\n"
	if got != want {
		t.Errorf("FormatData:\n got %q\nwant %q", got, want)
	}
	if strings.Contains(got, "ignored") {
		t.Error("specialties should replace the field listing")
	}
}

func TestFormatDataNil(t *testing.T) {
	if got := FormatData(nil); got != "" {
		t.Errorf("FormatData(nil) = %q", got)
	}
}

func TestTitleKey(t *testing.T) {
	tests := map[string]string{
		"phone":          "Phone",
		"working_hours":  "Working Hours",
		"адрес_приемной": "Адрес Приемной",
		"a__b":           "A  B",
	}
	for in, want := range tests {
		if got := titleKey(in); got != want {
			t.Errorf("titleKey(%q) = %q, want %q", in, got, want)
		}
	}
}
