package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/diegoclair/weekend-coverage/internal/log"
	"github.com/go-chi/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageIndex    = "index.html"
	pageForm     = "form.html"
	pageEntryLog = "entry_log.html"
	pageSuccess  = "success.html"
)

var pageFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

var pages = map[string]*template.Template{
	pageIndex:    parsePage(pageIndex),
	pageForm:     parsePage(pageForm),
	pageEntryLog: parsePage(pageEntryLog),
	pageSuccess:  parsePage(pageSuccess),
}

func parsePage(name string) *template.Template {
	return template.Must(template.New("layout.html").Funcs(pageFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// renderPage executes into a buffer first so a template error still yields a clean 500.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages[name].Execute(&buf, data); err != nil {
		internalError(w, "render."+name, err)
		return
	}

	render.HTML(w, r, buf.String())
}

// internalError logs err under code and answers with a bare 500.
func internalError(w http.ResponseWriter, code string, err error) {
	log.WithError(err).Error(code)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
