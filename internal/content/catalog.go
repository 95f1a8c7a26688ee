package content

import (
	"html/template"
	"strings"

	domain "drugdash/domain/content"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// View is what a page shows for a condition: either a bundle with its bullet
// list rendered to HTML, or a plain message.
type View struct {
	Page        domain.Page    `json:"page"`
	Title       string         `json:"title"`
	Condition   string         `json:"condition"`
	Bundle      *domain.Bundle `json:"bundle,omitempty"`
	BulletsHTML template.HTML  `json:"bullets_html,omitempty"`
	Message     string         `json:"message,omitempty"`
}

// Found reports whether the view carries a bundle
func (v View) Found() bool { return v.Bundle != nil }

// Catalog maps page and condition to authored content
type Catalog struct {
	bundles  map[domain.Page]map[string]domain.Bundle
	rendered map[domain.Page]map[string]template.HTML
}

// NewCatalog builds the catalog of all authored pages and renders their
// bullet lists once
func NewCatalog() *Catalog {
	c := &Catalog{
		bundles:  make(map[domain.Page]map[string]domain.Bundle),
		rendered: make(map[domain.Page]map[string]template.HTML),
	}
	c.add(domain.PagePrecautions, precautions)
	c.add(domain.PageSymptoms, symptoms)
	return c
}

func (c *Catalog) add(page domain.Page, bundles []domain.Bundle) {
	c.bundles[page] = make(map[string]domain.Bundle, len(bundles))
	c.rendered[page] = make(map[string]template.HTML, len(bundles))
	for _, b := range bundles {
		b.Page = page
		c.bundles[page][b.Condition] = b
		c.rendered[page][b.Condition] = RenderBullets(b.Bullets)
	}
}

// Lookup returns the view of page for condition. An empty condition asks the
// user to select one; a condition without content gets the not-available text.
func (c *Catalog) Lookup(page domain.Page, condition string) View {
	v := View{Page: page, Title: page.Title(), Condition: condition}
	if condition == "" {
		v.Message = domain.MsgSelectCondition
		return v
	}

	b, ok := c.bundles[page][condition]
	if !ok {
		v.Message = domain.MsgNotAvailable
		return v
	}
	v.Bundle = &b
	v.BulletsHTML = c.rendered[page][condition]
	return v
}

// RenderBullets turns bullet texts into an HTML list via markdown
func RenderBullets(bullets []string) template.HTML {
	if len(bullets) == 0 {
		return ""
	}
	var b strings.Builder
	for _, item := range bullets {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	// raw HTML in bullet text is dropped
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML})
	return template.HTML(markdown.ToHTML([]byte(b.String()), p, r))
}
