package screen

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/menubot/internal/content"
)

// fieldIcons prefixes well-known contact fields.
var fieldIcons = map[string]string{
	"phone":   "📞",
	"email":   "✉️",
	"address": "📍",
	"hours":   "🕒",
}

// FormatData renders a data payload as HTML. A "specialties" list replaces
// the generic field listing entirely.
func FormatData(d *content.Data) string {
	if d == nil {
		return ""
	}
	if v, ok := d.Get("specialties"); ok {
		return formatSpecialties(v)
	}

	var b strings.Builder
	for pair := d.Oldest(); pair != nil; pair = pair.Next() {
		key, value := pair.Key, pair.Value
		title := titleKey(key)
		switch key {
		case "phone", "email", "address", "hours":
			fmt.Fprintf(&b, "%s <b>%s</b>: %s\n", fieldIcons[key], title, valueString(value))
		case "telegram":
			fmt.Fprintf(&b, "📱 <b>Telegram</b>: <a href='%s'>@Agrobioteh37</a>\n", valueString(value))
		case "vk":
			fmt.Fprintf(&b, "🌐 <b>ВКонтакте</b>: <a href='%s'>Группа ВК</a>\n", valueString(value))
		case "ok":
			fmt.Fprintf(&b, "🌐 <b>Одноклассники</b>: <a href='%s'>Группа ОК</a>\n", valueString(value))
		case "contact_page":
			fmt.Fprintf(&b, "\n<a href='%s'>Все контакты на сайте</a>\n", valueString(value))
		default:
			fmt.Fprintf(&b, "<b>%s</b>: %s\n", title, valueString(value))
		}
	}
	return b.String()
}

func formatSpecialties(v any) string {
	list, _ := v.([]any)
	var b strings.Builder
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "<b>🎓 %s</b> (%s)\n", valueString(entry["name"]), valueString(entry["code"]))
		if profile, ok := entry["profile"]; ok {
			fmt.Fprintf(&b, "Профиль: %s\n", valueString(profile))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// titleKey turns snake_case into Title Case words.
func titleKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(strings.ToLower(w))
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
