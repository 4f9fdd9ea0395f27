// Package export serializes fully materialized decks into print-ready
// documents. The deck must be complete before rendering; nothing here
// triggers generation.
package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/partydeck/partydeck-api/internal/domain"
)

// printTemplate lays the cards out on a fixed grid sized for cutting out
// after printing. Styling is deliberately self-contained: the output is a
// standalone document with no external assets.
const printTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; margin: 1.5cm; }
  h1 { text-align: center; font-size: 1.4em; }
  .cards { display: flex; flex-wrap: wrap; gap: 0.5cm; }
  .card {
    width: 6cm; min-height: 8.5cm;
    border: 1px solid #333; border-radius: 8px;
    padding: 0.4cm; box-sizing: border-box;
    page-break-inside: avoid;
  }
  .card .category {
    text-align: center; font-weight: bold; text-transform: uppercase;
    font-size: 0.75em; letter-spacing: 0.1em;
    border-bottom: 1px solid #999; padding-bottom: 0.2cm;
  }
  .card ol { padding-left: 1.2em; }
  .card li { margin: 0.25cm 0; }
  @media print { h1 { display: none; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="cards">
{{- range .Cards}}
  <div class="card">
    <div class="category">{{.Category}}</div>
    <ol>
    {{- range .Terms}}
      <li>{{.}}</li>
    {{- end}}
    </ol>
  </div>
{{- end}}
</div>
</body>
</html>
`

// Renderer writes decks as standalone printable HTML documents.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a Renderer with the built-in card grid layout.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("print").Parse(printTemplate)),
	}
}

type printData struct {
	Title string
	Cards []domain.Card
}

// Render writes the deck as a printable HTML document to w.
// Returns an error if the deck is invalid or the write fails.
func (r *Renderer) Render(w io.Writer, deck *domain.Deck) error {
	if deck == nil {
		return fmt.Errorf("deck cannot be nil")
	}

	if err := deck.Validate(); err != nil {
		return fmt.Errorf("cannot render invalid deck: %w", err)
	}

	title := deck.Title
	if title == "" {
		title = "Party Deck"
	}

	return r.tmpl.Execute(w, printData{Title: title, Cards: deck.Cards})
}
