package view

import (
	"sort"
	"strings"
)

// Element is a structured description of a small UI fragment. Renderers turn
// it into markup; callers never hand-assemble HTML strings.
type Element struct {
	Tag      string            `json:"tag"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []Element         `json:"children,omitempty"`
}

const (
	tooltipTag      = "a"
	tooltipIconTag  = "i"
	tooltipIconFont = "fa fa-info-circle"
)

var tooltipClasses = []string{"btn-tooltip", "no-decoration", "text-muted"}

// InfoTooltip returns the inert info icon control used to surface field
// details. The title is stored verbatim; escaping happens at render time.
func InfoTooltip(title string) Element {
	return Element{
		Tag:     tooltipTag,
		Classes: append([]string(nil), tooltipClasses...),
		Attrs: map[string]string{
			"title": title,
		},
		Children: []Element{
			{
				Tag:     tooltipIconTag,
				Classes: strings.Fields(tooltipIconFont),
			},
		},
	}
}

// Attr returns the attribute value for key, or "" when unset.
func (e Element) Attr(key string) string {
	if e.Attrs == nil {
		return ""
	}
	return e.Attrs[key]
}

// HasClass reports whether class is present on the element.
func (e Element) HasClass(class string) bool {
	class = strings.TrimSpace(class)
	if class == "" {
		return false
	}
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the element tree.
func (e Element) Clone() Element {
	out := Element{
		Tag:  e.Tag,
		Text: e.Text,
	}
	if e.Classes != nil {
		out.Classes = append([]string(nil), e.Classes...)
	}
	if e.Attrs != nil {
		out.Attrs = make(map[string]string, len(e.Attrs))
		for k, v := range e.Attrs {
			out.Attrs[k] = v
		}
	}
	if e.Children != nil {
		out.Children = make([]Element, len(e.Children))
		for i, child := range e.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

func sortedAttrKeys(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		key = strings.TrimSpace(key)
		if key == "" || key == "class" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
