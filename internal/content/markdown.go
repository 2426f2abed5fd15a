package content

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Typographer),
)

// renderParagraphs converts each Markdown paragraph to HTML. Raw HTML in
// the source is dropped (goldmark default).
func renderParagraphs(paragraphs []string) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(paragraphs))
	for _, p := range paragraphs {
		var buf bytes.Buffer
		if err := md.Convert([]byte(p), &buf); err != nil {
			return nil, err
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}
