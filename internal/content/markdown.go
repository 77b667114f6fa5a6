package content

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// RenderMarkdown converts trusted, embedded prose to HTML.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var emphasis = strings.NewReplacer("**", "", "__", "")

// plainText drops emphasis markers and joins hard-wrapped lines for
// renderers that cannot show HTML.
func plainText(src string) string {
	return strings.Join(strings.Fields(emphasis.Replace(src)), " ")
}
