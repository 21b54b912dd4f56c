package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplateName is the entry template rendered for every form.
const TemplateName = "form.tpl"

// TemplatesFS exposes the embedded template bundle rooted at the template
// directory, so callers can copy or override individual files.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
