package email

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

// Template names an email template under templates/.
type Template string

const (
	TemplateWelcome        Template = "welcome"
	TemplatePropertyListed Template = "property_listed"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render executes templateName with data and returns the HTML body.
func Render(templateName Template, data map[string]string) (string, error) {
	tmpl := templates.Lookup(string(templateName) + ".html")
	if tmpl == nil {
		return "", errors.Errorf("unknown email template %q", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}
