package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders narrative fields. Raw HTML in the source is dropped by
// goldmark's default renderer, so record text cannot inject markup.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Typographer),
)

// renderMarkdown writes the HTML rendering of a narrative field to buf.
func renderMarkdown(buf *bytes.Buffer, content string) error {
	return md.Convert([]byte(content), buf)
}

// Narrative returns a component rendering a markdown narrative field.
func Narrative(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := renderMarkdown(&buf, content); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}
