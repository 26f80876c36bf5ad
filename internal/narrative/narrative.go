// Package narrative composes the one-glance summary sentences for a
// client from their classified fields. Sentences come from an ordered
// rule registry; every fragment is an already-rendered field value, so
// the composer only ever arranges text, it never generates any.
package narrative

import (
	"sort"
	"strings"
	"time"

	"github.com/caseglance/caseglance/internal/model"
	"github.com/caseglance/caseglance/internal/render"
)

// Input is what a rule sees: the client's displayable fields in stable
// order, the reference time for temporal decisions, and the grammatical
// subject for sentences about the client.
type Input struct {
	Fields  []*model.ClassifiedField
	Now     time.Time
	Subject string
}

// Rule produces one sentence, or nil when its fields are absent.
type Rule struct {
	Name    string
	Order   int
	Compose func(Input) *model.NarrativeSentence
}

// Compose runs the rules in order and collects their sentences. A rule
// with nothing to say contributes nothing; downstream sentences keep
// their relative order regardless.
func Compose(in Input, rules []Rule) []model.NarrativeSentence {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	var out []model.NarrativeSentence
	for _, r := range sorted {
		if s := r.Compose(in); s != nil && s.Text != "" {
			s.Order = r.Order
			out = append(out, *s)
		}
	}
	return out
}

// DefaultRules returns the standard sentence registry: identity, then
// next upcoming deadline, then case statuses.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "identity", Order: 1, Compose: identity},
		{Name: "temporal", Order: 2, Compose: temporal},
		{Name: "status", Order: 3, Compose: status},
	}
}

func byRole(fields []*model.ClassifiedField, role string) *model.ClassifiedField {
	for _, f := range fields {
		if f.Role == role {
			return f
		}
	}
	return nil
}

// identity builds "Name (A# ...) born ... from ...". The client name
// anchors the sentence; without one there is nothing to introduce and
// the rule stays silent, however many other identity fields exist.
func identity(in Input) *model.NarrativeSentence {
	name := byRole(in.Fields, "client_name")
	if name == nil {
		return nil
	}
	parts := []string{name.Raw}
	if f := byRole(in.Fields, "a_number"); f != nil && f.Rendered != "" {
		parts = append(parts, "("+f.Rendered+")")
	}
	for _, role := range []string{"date_of_birth", "country_of_origin"} {
		if f := byRole(in.Fields, role); f != nil && f.Rendered != "" {
			parts = append(parts, f.Rendered)
		}
	}
	return &model.NarrativeSentence{Kind: "identity", Text: strings.Join(parts, " ")}
}

// temporal reports the next upcoming deadline: the earliest temporal
// field not yet past, with its location when one shares its group. A
// temporal value that does not parse still counts as upcoming, after
// every dated one.
func temporal(in Input) *model.NarrativeSentence {
	type upcoming struct {
		f     *model.ClassifiedField
		at    time.Time
		dated bool
	}
	var candidates []upcoming
	for _, f := range in.Fields {
		if f.Position != model.PositionTemporal || f.Rendered == "" {
			continue
		}
		at, ok := render.ParseTime(f.Raw)
		if ok && at.Before(in.Now) {
			continue
		}
		candidates = append(candidates, upcoming{f: f, at: at, dated: ok})
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dated != candidates[j].dated {
			return candidates[i].dated
		}
		return candidates[i].at.Before(candidates[j].at)
	})
	next := candidates[0].f

	verb := "has"
	if in.Subject == "They" {
		verb = "have"
	}
	text := in.Subject + " " + verb + " " + next.Rendered
	for _, f := range in.Fields {
		if f.Position == model.PositionSpatial && f.Group == next.Group && f.Rendered != "" {
			text += " " + f.Rendered
			break
		}
	}
	return &model.NarrativeSentence{Kind: "temporal", Text: text}
}

// status collects status-position fields, grouped so one clause covers
// each case area: a lone status reads verbatim, several in the same
// group read "Group: a, b".
func status(in Input) *model.NarrativeSentence {
	var order []string
	grouped := make(map[string][]string)
	for _, f := range in.Fields {
		if f.Position != model.PositionStatus || f.Rendered == "" {
			continue
		}
		if _, seen := grouped[f.Group]; !seen {
			order = append(order, f.Group)
		}
		grouped[f.Group] = append(grouped[f.Group], f.Rendered)
	}
	if len(order) == 0 {
		return nil
	}
	var clauses []string
	for _, g := range order {
		vals := grouped[g]
		if len(vals) == 1 {
			clauses = append(clauses, vals[0])
			continue
		}
		clauses = append(clauses, g+": "+strings.Join(vals, ", "))
	}
	return &model.NarrativeSentence{Kind: "status", Text: strings.Join(clauses, ". ")}
}
