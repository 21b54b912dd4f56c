package model

import (
	"strings"

	"github.com/goliatone/go-formgen-gst/pkg/gst"
	"github.com/goliatone/go-formgen-gst/pkg/view"
)

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeSelect  FieldType = "select"
	FieldTypeLink    FieldType = "link"
)

// Option is a single selectable entry of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field models an individual input inside a form. Struct fields are annotated
// so renderers can serialise them directly when needed.
type Field struct {
	Name         string            `json:"name"`
	Type         FieldType         `json:"type"`
	Label        string            `json:"label,omitempty"`
	Value        string            `json:"value,omitempty"`
	Required     bool              `json:"required"`
	Options      []Option          `json:"options,omitempty"`
	Relationship *EndpointConfig   `json:"relationship,omitempty"`
	Decorations  []view.Element    `json:"decorations,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Doctype     string            `json:"doctype,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Lookup returns a pointer to the named field so callers can mutate it in
// place. Names are matched exactly.
func (f *FormModel) Lookup(name string) (*Field, bool) {
	if f == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i], true
		}
	}
	return nil, false
}

// Field satisfies gst.Form.
func (f *FormModel) Field(name string) (gst.FieldHandle, bool) {
	field, ok := f.Lookup(name)
	if !ok {
		return nil, false
	}
	return fieldHandle{field: field}, true
}

// SetOptions replaces the selectable options with one option per value.
func (f *Field) SetOptions(values []string) {
	if f == nil {
		return
	}
	f.Options = OptionsFromStrings(values)
}

// OptionValues returns the option values in order.
func (f *Field) OptionValues() []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		out = append(out, opt.Value)
	}
	return out
}

// AppendDecoration adds el to the field's trailing decoration area.
func (f *Field) AppendDecoration(el view.Element) {
	if f == nil {
		return
	}
	f.Decorations = append(f.Decorations, el.Clone())
}

// OptionsFromStrings maps each value to an Option whose label equals the
// value. A nil or empty input yields an empty, non-nil slice so renderers can
// tell "cleared" apart from "never populated".
func OptionsFromStrings(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, value := range values {
		out = append(out, Option{Value: value, Label: value})
	}
	return out
}

type fieldHandle struct {
	field *Field
}

func (h fieldHandle) Value() string { return h.field.Value }
func (h fieldHandle) SetOptions(values []string) { h.field.SetOptions(values) }
func (h fieldHandle) AppendDecoration(el view.Element) { h.field.AppendDecoration(el) }
