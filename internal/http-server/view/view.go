// Package view renders the banner page: the countdown banner, the admin
// form, pending notifications and a loading placeholder.
package view

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"bannerweb/internal/coordinator"
	"bannerweb/internal/form"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{"href": Href}).ParseFS(templatesFS, "templates/*.html"),
)

type StateProvider interface {
	Snapshot() coordinator.Snapshot
	Notices() []coordinator.Notice
}

type FormViewer interface {
	View() form.View
}

type Page struct {
	Loading    bool
	Display    *coordinator.DisplayView
	Form       form.View
	Notices    []coordinator.Notice
	PollMillis int64
}

func NewPage(state StateProvider, f FormViewer, poll time.Duration) Page {
	s := state.Snapshot()
	return Page{
		Loading:    s.Loading,
		Display:    s.Display,
		Form:       f.View(),
		Notices:    state.Notices(),
		PollMillis: poll.Milliseconds(),
	}
}

func Render(w io.Writer, p Page) error {
	return templates.ExecuteTemplate(w, "index.html", p)
}

// Href turns a www.-prefixed link into an absolute https URL.
func Href(link string) string {
	if strings.HasPrefix(link, "www.") {
		return "https://" + link
	}
	return link
}
