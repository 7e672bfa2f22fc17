package views

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"lumis/internal/contact/controller"
	"lumis/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

type LandingData struct {
	Title         string
	Year          int
	Notifications []controller.Notification
	Page          content.Page
	Form          controller.Snapshot
	MinDate       string
}

type ComingSoonData struct {
	Title         string
	Year          int
	Notifications []controller.Notification
}

var funcs = template.FuncMap{
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		return strings.Repeat("★", n)
	},
}

// Views holds the parsed page templates. Each page is its own template set
// so the pages can define the same "content" block.
type Views struct {
	landing    *template.Template
	comingSoon *template.Template
}

func New() (*Views, error) {
	landing, err := parse("templates/landing.html")
	if err != nil {
		return nil, err
	}
	comingSoon, err := parse("templates/coming_soon.html")
	if err != nil {
		return nil, err
	}
	return &Views{landing: landing, comingSoon: comingSoon}, nil
}

func parse(page string) (*template.Template, error) {
	return template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", page)
}

func (v *Views) Landing(w io.Writer, data LandingData) error {
	return v.landing.ExecuteTemplate(w, "layout", data)
}

func (v *Views) ComingSoon(w io.Writer, data ComingSoonData) error {
	return v.comingSoon.ExecuteTemplate(w, "layout", data)
}
