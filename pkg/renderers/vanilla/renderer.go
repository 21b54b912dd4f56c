package vanilla

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formgen-gst/pkg/model"
	"github.com/goliatone/go-formgen-gst/pkg/view"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain TemplateName at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer turns a decorated form model into plain HTML markup.
type Renderer struct {
	tpl *pongo2.Template
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("gst-vanilla", pongo2.NewFSLoader(cfg.templateFS))
	tpl, err := set.FromFile(TemplateName)
	if err != nil {
		return nil, fmt.Errorf("vanilla: load template %q: %w", TemplateName, err)
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML for form. Field decorations are emitted through
// the view sanitizer; every other value is escaped by the template engine.
func (r *Renderer) Render(ctx context.Context, form model.FormModel) ([]byte, error) {
	if r == nil || r.tpl == nil {
		return nil, errors.New("vanilla: renderer is not initialised")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := buildFormView(form)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteWriter(pongo2.Context{"form": data}, &buf); err != nil {
		return nil, fmt.Errorf("vanilla: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

type formView struct {
	OperationID string
	Doctype     string
	Fields      []fieldView
}

type fieldView struct {
	ID          string
	Name        string
	Label       string
	Type        string
	InputType   string
	Value       string
	Required    bool
	IsSelect    bool
	Options     []optionView
	Decorations string
	Endpoint    string
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

func buildFormView(form model.FormModel) (formView, error) {
	out := formView{
		OperationID: form.OperationID,
		Doctype:     form.Doctype,
		Fields:      make([]fieldView, 0, len(form.Fields)),
	}
	for _, field := range form.Fields {
		fv := fieldView{
			ID:          fieldID(form.OperationID, field.Name),
			Name:        field.Name,
			Label:       field.Label,
			Type:        string(field.Type),
			InputType:   inputType(field.Type),
			Value:       field.Value,
			Required:    field.Required,
			IsSelect:    isSelect(field),
			Decorations: view.RenderAll(field.Decorations),
		}
		if fv.Label == "" {
			fv.Label = field.Name
		}
		for _, opt := range field.Options {
			fv.Options = append(fv.Options, optionView{
				Value:    opt.Value,
				Label:    opt.Label,
				Selected: opt.Value == field.Value,
			})
		}
		if field.Relationship != nil {
			raw, err := json.Marshal(field.Relationship)
			if err != nil {
				return formView{}, fmt.Errorf("vanilla: encode endpoint for %q: %w", field.Name, err)
			}
			fv.Endpoint = string(raw)
		}
		out.Fields = append(out.Fields, fv)
	}
	return out, nil
}

func isSelect(field model.Field) bool {
	switch {
	case field.Type == model.FieldTypeSelect:
		return true
	case field.Relationship != nil:
		return true
	default:
		return len(field.Options) > 0
	}
}

func inputType(t model.FieldType) string {
	switch t {
	case model.FieldTypeInteger, model.FieldTypeNumber:
		return "number"
	case model.FieldTypeBoolean:
		return "checkbox"
	default:
		return "text"
	}
}

func fieldID(operationID, name string) string {
	if operationID == "" {
		return name
	}
	return operationID + "-" + name
}
