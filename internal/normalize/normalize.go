// Package normalize collapses the wire shapes a record field can arrive
// in (arrays, linked-record objects, error markers, rich text) into a
// single scalar form the rest of the engine consumes.
package normalize

import (
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/net/html"

	"github.com/caseglance/caseglance/internal/model"
)

var htmlFragmentRe = regexp.MustCompile(`(?i)<[a-z][^>]*>`)

// Value normalizes one raw field value. Empty containers and nil become
// absent; single-element arrays unwrap; multi-element arrays join with
// ", "; upstream error markers are flagged so classification can drop
// them. Normalization never errors: an unrecognized shape is treated as
// absent, not a failure.
func Value(raw interface{}) model.NormalizedValue {
	switch v := raw.(type) {
	case nil:
		return model.NormalizedValue{}
	case string:
		return fromString(v)
	case []interface{}:
		return fromSlice(v)
	case map[string]interface{}:
		return fromMap(v)
	case bool, int, int64, float64, float32:
		return model.NormalizedValue{Present: true, Scalar: cast.ToString(v)}
	default:
		return model.NormalizedValue{}
	}
}

func fromString(s string) model.NormalizedValue {
	if isErrorMarker(s) {
		return model.NormalizedValue{Present: true, IsError: true}
	}
	if htmlFragmentRe.MatchString(s) {
		s = flattenHTML(s)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return model.NormalizedValue{}
	}
	return model.NormalizedValue{Present: true, Scalar: s}
}

func fromSlice(vs []interface{}) model.NormalizedValue {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		nv := Value(v)
		if nv.IsError {
			return model.NormalizedValue{Present: true, IsError: true}
		}
		if nv.Present {
			parts = append(parts, nv.Scalar)
		}
	}
	if len(parts) == 0 {
		return model.NormalizedValue{}
	}
	return model.NormalizedValue{Present: true, Scalar: strings.Join(parts, ", ")}
}

func fromMap(m map[string]interface{}) model.NormalizedValue {
	// Computed-field failures arrive as {"error": ...} or
	// {"specialValue": "NaN"} objects.
	if _, ok := m["error"]; ok {
		return model.NormalizedValue{Present: true, IsError: true}
	}
	if _, ok := m["specialValue"]; ok {
		return model.NormalizedValue{Present: true, IsError: true}
	}
	// Linked records and attachments carry their display text under
	// one of a few well-known keys.
	for _, key := range []string{"label", "name", "text", "url"} {
		if v, ok := m[key]; ok {
			return fromString(cast.ToString(v))
		}
	}
	return model.NormalizedValue{}
}

func isErrorMarker(s string) bool {
	t := strings.TrimSpace(s)
	return t == "NaN" || strings.HasPrefix(t, "#ERROR")
}

// flattenHTML strips markup from a rich-text fragment, keeping only
// visible text. Script, style, noscript, and iframe subtrees are
// dropped entirely.
func flattenHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String()
}
