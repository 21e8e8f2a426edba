package view

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// answerRenderer turns backend answer text into HTML. Plain mode escapes
// the text; markdown mode renders it with goldmark, which drops raw HTML
// and dangerous link targets because unsafe rendering is never enabled.
type answerRenderer struct {
	md goldmark.Markdown
}

func newAnswerRenderer(markdown bool) *answerRenderer {
	if !markdown {
		return &answerRenderer{}
	}
	return &answerRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
		),
	}
}

func (a *answerRenderer) render(text string) template.HTML {
	if a.md == nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	var buf bytes.Buffer
	if err := a.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}
