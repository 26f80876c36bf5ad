// Package render turns a classified field into display text by filling
// its catalog template and applying the field's format.
package render

import (
	"strings"
	"time"

	"github.com/caseglance/caseglance/internal/catalog"
	"github.com/caseglance/caseglance/internal/model"
)

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006 3:04 PM"
)

// Layouts values arrive in, most common first.
var parseLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
	"1/2/2006",
}

// Value renders one classified field. The second return is false when
// the field has nothing to display. Formatting never fails: a value
// that does not parse under its format is shown as-is.
func Value(f *model.ClassifiedField, cat *catalog.Catalog) (string, bool) {
	if f == nil || f.Raw == "" {
		return "", false
	}

	template := "{value}"
	if e, _, ok := cat.Entry(f.SourceField); ok && e.Template != "" {
		template = e.Template
	}

	placeholder, tag := findPlaceholder(template)
	format := resolveFormat(f, tag, cat)
	return strings.Replace(template, placeholder, apply(format, f.Raw), 1), true
}

// findPlaceholder locates the {value} or {value:tag} placeholder and
// returns it with its format tag.
func findPlaceholder(template string) (placeholder, tag string) {
	start := strings.Index(template, "{value")
	if start < 0 {
		return "{value}", ""
	}
	end := strings.Index(template[start:], "}")
	if end < 0 {
		return "{value}", ""
	}
	placeholder = template[start : start+end+1]
	inner := strings.TrimSuffix(strings.TrimPrefix(placeholder, "{value"), "}")
	tag = strings.TrimPrefix(inner, ":")
	return placeholder, tag
}

// resolveFormat picks the display format for a field. An explicit
// catalog data type wins; then the template's own tag; then a type
// inferred from the value shape.
func resolveFormat(f *model.ClassifiedField, tag string, cat *catalog.Catalog) string {
	if f.DataType != "" {
		return string(f.DataType)
	}
	if tag != "" {
		return tag
	}
	if dt, ok := cat.InferType(f.Raw); ok {
		return string(dt)
	}
	return ""
}

func apply(format, raw string) string {
	switch format {
	case string(model.TypeDate):
		return formatDate(raw)
	case string(model.TypeDateTime):
		return formatDateTime(raw)
	case string(model.TypePhone):
		return formatPhone(raw)
	case string(model.TypeCurrency):
		return formatCurrency(raw)
	case "lowercase":
		return strings.ToLower(raw)
	default:
		return raw
	}
}

// ParseTime parses a raw field value with the layouts the source is
// known to emit. Narrative and timeline code share it so temporal
// comparisons agree with what gets displayed.
func ParseTime(raw string) (time.Time, bool) {
	return parseTime(raw)
}

func parseTime(raw string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatDate(raw string) string {
	t, ok := parseTime(raw)
	if !ok {
		return raw
	}
	return t.Format(dateLayout)
}

func formatDateTime(raw string) string {
	t, ok := parseTime(raw)
	if !ok {
		return raw
	}
	return t.Format(dateTimeLayout)
}

// formatPhone renders 10-digit US numbers as (xxx) xxx-xxxx, dropping
// a leading country 1. Anything else passes through untouched.
func formatPhone(raw string) string {
	var digits []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return raw
	}
	return "(" + string(digits[:3]) + ") " + string(digits[3:6]) + "-" + string(digits[6:])
}

// formatCurrency adds thousands separators to the integer part of a
// numeric amount, preserving any cents. Existing $ signs and commas are
// stripped first; the template supplies the currency symbol.
func formatCurrency(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	intPart, frac := s, ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return raw
		}
	}
	if intPart == "" {
		return raw
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + frac
}
