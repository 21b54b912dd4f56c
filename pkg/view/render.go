package view

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// RenderHTML serialises el into markup. Text and attribute values are escaped
// and the result is passed through a sanitiser that only keeps the inline
// elements decorations are allowed to produce.
func RenderHTML(el Element) string {
	var b strings.Builder
	writeElement(&b, el)
	raw := b.String()
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(markupSanitizer().Sanitize(raw))
}

// RenderAll renders each element and concatenates the output.
func RenderAll(elements []Element) string {
	if len(elements) == 0 {
		return ""
	}
	var b strings.Builder
	for _, el := range elements {
		b.WriteString(RenderHTML(el))
	}
	return b.String()
}

func writeElement(b *strings.Builder, el Element) {
	tag := strings.ToLower(strings.TrimSpace(el.Tag))
	if tag == "" {
		b.WriteString(html.EscapeString(el.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(tag)
	if len(el.Classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(strings.Join(el.Classes, " ")))
		b.WriteByte('"')
	}
	for _, key := range sortedAttrKeys(el.Attrs) {
		b.WriteByte(' ')
		b.WriteString(html.EscapeString(key))
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(el.Attrs[key]))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(html.EscapeString(el.Text))
	for _, child := range el.Children {
		writeElement(b, child)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		elements := []string{"a", "i", "span"}
		policy.AllowElements(elements...)
		policy.AllowNoAttrs().OnElements(elements...)
		policy.AllowAttrs(
			"class", "title", "role", "aria-label", "aria-hidden",
		).OnElements(elements...)
		markupPolicy = policy
	})
	return markupPolicy
}
