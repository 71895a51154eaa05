// Package screen describes what a transport should display: a message text
// and rows of labeled actions.
package screen

// Action is a button. It opens URL when set, otherwise sends Callback back
// to the bot. An action with neither is an inert label.
type Action struct {
	Label    string `json:"label"`
	URL      string `json:"url,omitempty"`
	Callback string `json:"callback,omitempty"`
}

// Inert reports whether clicking the action does nothing.
func (a Action) Inert() bool { return a.URL == "" && a.Callback == "" }

// Link returns a URL action.
func Link(label, url string) Action { return Action{Label: label, URL: url} }

// Callback returns an action that sends id back to the bot.
func Callback(label, id string) Action { return Action{Label: label, Callback: id} }

// Label returns an inert action.
func Label(label string) Action { return Action{Label: label} }

// Screen is a message with its keyboard. HTML marks text that uses the
// bold/link subset of HTML markup.
type Screen struct {
	Text string     `json:"text"`
	HTML bool       `json:"html,omitempty"`
	Rows [][]Action `json:"rows"`
}

// New creates a plain-text screen.
func New(text string) *Screen {
	return &Screen{Text: text, Rows: [][]Action{}}
}

// Add appends each action on its own row.
func (s *Screen) Add(actions ...Action) *Screen {
	for _, a := range actions {
		s.Rows = append(s.Rows, []Action{a})
	}
	return s
}

// AddRow appends the actions side by side. Empty rows are skipped.
func (s *Screen) AddRow(actions ...Action) *Screen {
	if len(actions) > 0 {
		s.Rows = append(s.Rows, actions)
	}
	return s
}

// Actions returns all actions in display order.
func (s *Screen) Actions() []Action {
	var out []Action
	for _, row := range s.Rows {
		out = append(out, row...)
	}
	return out
}
