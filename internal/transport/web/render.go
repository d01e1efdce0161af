package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// pages lists the content templates; each is parsed together with the layout
// so every page shares the navigation chrome and cart badge.
var pages = []string{"home", "products", "product", "form", "cart", "error"}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"price":      formatPrice,
		"capitalize": capitalize,
	}
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.gohtml").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.gohtml",
			fmt.Sprintf("templates/%s.gohtml", page),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", page, err)
		}
		parsed[page] = t
	}
	return parsed, nil
}

// render writes the named page. Template failures surface as a plain 500; the
// templates are parsed at startup, so this only trips on bad page data.
func (h *Handler) render(w http.ResponseWriter, logger *slog.Logger, status int, page string, data any) {
	t, ok := h.templates[page]
	if !ok {
		logger.Error("Unknown page template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.gohtml", data); err != nil {
		logger.Error("Error rendering page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// formatPrice renders a decimal amount as USD for display only; stored values
// are never reformatted.
func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
