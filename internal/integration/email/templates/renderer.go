// Package templates provides email template rendering functionality.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders the HTML and text variants of a template. A template
// without a text variant yields an empty text body.
func (r *Renderer) Render(name string, data any) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, name+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", name, err)
	}

	if r.textTemplates.Lookup(name+".txt") == nil {
		return htmlBuf.String(), "", nil
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// TemplateOverdueDigest is the name of the overdue payments digest template.
const TemplateOverdueDigest = "overdue_digest"

// OverdueDigestData contains data for the overdue digest template.
// Amounts and dates arrive already formatted for the operator's locale.
type OverdueDigestData struct {
	OperatorName string
	GeneratedAt  string
	Count        int
	Total        string
	Items        []OverdueDigestRow
}

// OverdueDigestRow is one overdue payment in the digest.
type OverdueDigestRow struct {
	ProjectName  string
	CustomerName string
	Unit         string
	PaymentType  string
	Amount       string
	DueDate      string
	DaysOverdue  string
}
