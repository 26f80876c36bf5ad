// Package source fetches case records from the upstream record store
// and decodes them. The store's export format has changed several times;
// each known wire shape gets its own adapter, and all of them produce
// the same flat records the engine consumes.
package source

import (
	"encoding/json"
	"fmt"

	"github.com/caseglance/caseglance/internal/model"
)

// Adapter decodes one wire shape into flat records.
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter recognizes the payload shape
	CanHandle(payload []byte) bool

	// Parse decodes the payload into flat records
	Parse(payload []byte) ([]*model.RawRecord, error)
}

// Registry manages wire-shape adapters
type Registry struct {
	adapters []Adapter
	generic  Adapter
}

// NewRegistry creates a registry with the built-in adapters registered
// and the flat-list adapter as fallback.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(&recordsEnvelopeAdapter{})
	r.Register(&fieldsFormAdapter{})
	r.Register(&bucketsAdapter{})
	r.generic = &flatListAdapter{}
	return r
}

// Register registers a new adapter. Registration order is probe order.
func (r *Registry) Register(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// FindAdapter returns the first adapter recognizing the payload, or
// the generic fallback.
func (r *Registry) FindAdapter(payload []byte) Adapter {
	for _, a := range r.adapters {
		if a.CanHandle(payload) {
			return a
		}
	}
	return r.generic
}

// Decode finds an adapter for the payload and parses it.
func (r *Registry) Decode(payload []byte) ([]*model.RawRecord, error) {
	a := r.FindAdapter(payload)
	recs, err := a.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("adapter %s: %w", a.Name(), err)
	}
	return recs, nil
}

// envelopeProbe sniffs the top-level keys of an object payload without
// decoding the full document.
func envelopeProbe(payload []byte) (map[string]json.RawMessage, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, false
	}
	return probe, true
}

// parseItem decodes one record object. Both the nested
// {"id": ..., "fields": {...}} form and a bare field map are accepted.
func parseItem(raw json.RawMessage, table string) (*model.RawRecord, error) {
	var item map[string]json.RawMessage
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("record is not an object: %w", err)
	}

	rec := &model.RawRecord{Table: table}
	if idRaw, ok := item["id"]; ok {
		_ = json.Unmarshal(idRaw, &rec.ID)
	}
	if tableRaw, ok := item["table"]; ok {
		_ = json.Unmarshal(tableRaw, &rec.Table)
	}

	fieldsRaw, nested := item["fields"]
	if !nested {
		// Bare field map: every key except bookkeeping is a field.
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		delete(fields, "id")
		delete(fields, "table")
		rec.Fields = fields
		return rec, nil
	}
	if err := json.Unmarshal(fieldsRaw, &rec.Fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return rec, nil
}

func parseItemList(raw json.RawMessage, table string) ([]*model.RawRecord, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode record list: %w", err)
	}
	recs := make([]*model.RawRecord, 0, len(items))
	for i, item := range items {
		rec, err := parseItem(item, table)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
