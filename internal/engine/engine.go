// Package engine runs the full summarization pipeline: normalize and
// classify every field of a client's records, render them, detect
// matters, and compose the narrative and display sections.
package engine

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/caseglance/caseglance/internal/catalog"
	"github.com/caseglance/caseglance/internal/classify"
	"github.com/caseglance/caseglance/internal/matter"
	"github.com/caseglance/caseglance/internal/model"
	"github.com/caseglance/caseglance/internal/narrative"
	"github.com/caseglance/caseglance/internal/normalize"
	"github.com/caseglance/caseglance/internal/render"
)

// Schema supplies source field-type metadata when available. A nil
// schema means classification runs on names and values alone.
type Schema interface {
	FieldType(table, field string) string
}

// Engine summarizes client record bundles against one catalog. Safe
// for concurrent use: all state is read-only after construction.
type Engine struct {
	cat     *catalog.Catalog
	rules   []narrative.Rule
	schema  Schema
	subject string
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSchema attaches source field-type metadata.
func WithSchema(s Schema) Option {
	return func(e *Engine) { e.schema = s }
}

// WithSubject sets the grammatical subject used in narrative sentences.
func WithSubject(subject string) Option {
	return func(e *Engine) {
		if subject != "" {
			e.subject = subject
		}
	}
}

// WithRules replaces the default narrative rule registry.
func WithRules(rules []narrative.Rule) Option {
	return func(e *Engine) { e.rules = rules }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New builds an Engine over a compiled catalog.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:     cat,
		rules:   narrative.DefaultRules(),
		subject: "They",
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Summarize produces the summary for one client's records. now is the
// reference time for deadline and urgency decisions; callers pass a
// fixed time so repeated runs over the same data agree.
func (e *Engine) Summarize(records []*model.RawRecord, now time.Time) *model.Summary {
	fields := e.classifyRecords(records)

	s := &model.Summary{
		RecordCount: len(records),
		GeneratedAt: now,
	}
	if f := fieldByRole(fields, "client_name"); f != nil {
		s.ClientName = f.Raw
	}
	s.Header = e.header(fields)
	s.Sentences = narrative.Compose(narrative.Input{
		Fields:  fields,
		Now:     now,
		Subject: e.subject,
	}, e.rules)
	s.Groups = e.groups(fields)
	s.Matters = e.matters(records, fields)
	s.Timeline = e.timeline(fields, now)

	e.log.Debug("summarized client",
		zap.String("client", s.ClientName),
		zap.Int("records", len(records)),
		zap.Int("fields", len(fields)),
		zap.Int("matters", len(s.Matters)))
	return s
}

// classifyRecords flattens a bundle into displayable fields. Records
// are processed in order and the first occurrence of a field name wins;
// later duplicates are dropped rather than merged.
func (e *Engine) classifyRecords(records []*model.RawRecord) []*model.ClassifiedField {
	var out []*model.ClassifiedField
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, name := range sortedFieldNames(rec.Fields) {
			if _, dup := seen[name]; dup {
				continue
			}
			nv := normalize.Value(rec.Fields[name])
			var schemaType string
			if e.schema != nil {
				schemaType = e.schema.FieldType(rec.Table, name)
			}
			f := classify.Field(name, nv, e.cat, schemaType)
			if f == nil {
				continue
			}
			seen[name] = struct{}{}
			f.Rendered, _ = render.Value(f, e.cat)
			out = append(out, f)
		}
	}
	return out
}

// sortedFieldNames gives a deterministic iteration order; source JSON
// objects carry none.
func sortedFieldNames(fields map[string]interface{}) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fieldByRole(fields []*model.ClassifiedField, role string) *model.ClassifiedField {
	for _, f := range fields {
		if f.Role == role {
			return f
		}
	}
	return nil
}

// header picks the critical-tier fields, in catalog tier order.
func (e *Engine) header(fields []*model.ClassifiedField) []model.ClassifiedField {
	var out []model.ClassifiedField
	for _, name := range e.cat.Tiers.Critical {
		for _, f := range fields {
			if f.SourceField == name {
				out = append(out, *f)
				break
			}
		}
	}
	return out
}

// groups arranges fields into display sections: groups in catalog
// order, fields within a group by ascending priority with catalog
// declaration order breaking ties.
func (e *Engine) groups(fields []*model.ClassifiedField) []model.GroupSection {
	byGroup := make(map[string][]*model.ClassifiedField)
	var names []string
	for _, f := range fields {
		if _, ok := byGroup[f.Group]; !ok {
			names = append(names, f.Group)
		}
		byGroup[f.Group] = append(byGroup[f.Group], f)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return e.cat.GroupRank(names[i]) < e.cat.GroupRank(names[j])
	})

	sections := make([]model.GroupSection, 0, len(names))
	for _, name := range names {
		members := byGroup[name]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].Priority != members[j].Priority {
				return members[i].Priority < members[j].Priority
			}
			return members[i].CatalogOrder < members[j].CatalogOrder
		})
		section := model.GroupSection{
			Group:        name,
			DisplayLimit: e.cat.Display.MaxFieldsPerGroup,
		}
		for _, f := range members {
			section.Fields = append(section.Fields, *f)
		}
		sections = append(sections, section)
	}
	return sections
}

// matters builds one card per matter type detected across the bundle,
// carrying the fields the catalog relates to that matter.
func (e *Engine) matters(records []*model.RawRecord, fields []*model.ClassifiedField) []model.MatterCard {
	detected := make(map[string]*catalog.MatterType)
	var order []string
	for _, rec := range records {
		mt := matter.Detect(rec, e.cat)
		if mt == nil {
			continue
		}
		if _, dup := detected[mt.ID]; !dup {
			detected[mt.ID] = mt
			order = append(order, mt.ID)
		}
	}

	cards := make([]model.MatterCard, 0, len(order))
	for _, id := range order {
		mt := detected[id]
		card := model.MatterCard{
			MatterID:   mt.ID,
			Label:      mt.Label,
			ShortLabel: mt.ShortLabel,
			ColorToken: mt.ColorToken,
		}
		for _, name := range mt.RelatedFields {
			for _, f := range fields {
				if f.SourceField == name {
					card.Fields = append(card.Fields, *f)
					break
				}
			}
		}
		if mt.StatusField != "" {
			for _, f := range fields {
				if f.SourceField == mt.StatusField {
					card.Status = f.Rendered
					break
				}
			}
		}
		cards = append(cards, card)
	}
	return cards
}

// timeline collects every dated field across all groups, sorted
// soonest first, each tagged with how close it is. Urgency-tier fields
// come first among entries on the same timestamp.
func (e *Engine) timeline(fields []*model.ClassifiedField, now time.Time) []model.TimelineEntry {
	var out []model.TimelineEntry
	for _, f := range fields {
		when, ok := render.ParseTime(f.Raw)
		if !ok {
			continue
		}
		out = append(out, model.TimelineEntry{
			Field:  *f,
			When:   when,
			Bucket: bucketFor(when, now),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].When.Equal(out[j].When) {
			return out[i].When.Before(out[j].When)
		}
		return e.cat.Urgent(out[i].Field.SourceField) && !e.cat.Urgent(out[j].Field.SourceField)
	})
	return out
}

// bucketFor maps a dated field to its urgency bucket relative to now.
// Boundaries are inclusive: exactly 7 days out is still urgent.
func bucketFor(when, now time.Time) model.UrgencyBucket {
	if when.Before(now) {
		return model.BucketPast
	}
	days := when.Sub(now).Hours() / 24
	switch {
	case days <= 7:
		return model.BucketUrgent
	case days <= 30:
		return model.BucketUpcoming
	case days <= 90:
		return model.BucketScheduled
	default:
		return model.BucketLater
	}
}
