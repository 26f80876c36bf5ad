package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/caseglance/caseglance/internal/model"
)

// flatListAdapter handles the oldest export shape: a bare JSON array of
// record objects, values often wrapped in single-element arrays. It is
// the registry fallback, so Parse must cope with anything array-shaped.
type flatListAdapter struct{}

func (a *flatListAdapter) Name() string { return "flat-list" }

func (a *flatListAdapter) CanHandle(payload []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(payload), []byte("["))
}

func (a *flatListAdapter) Parse(payload []byte) ([]*model.RawRecord, error) {
	return parseItemList(payload, "")
}

// recordsEnvelopeAdapter handles {"records": [...]} payloads where each
// record may carry a table discriminator.
type recordsEnvelopeAdapter struct{}

func (a *recordsEnvelopeAdapter) Name() string { return "records-envelope" }

func (a *recordsEnvelopeAdapter) CanHandle(payload []byte) bool {
	probe, ok := envelopeProbe(payload)
	if !ok {
		return false
	}
	_, has := probe["records"]
	return has
}

func (a *recordsEnvelopeAdapter) Parse(payload []byte) ([]*model.RawRecord, error) {
	probe, ok := envelopeProbe(payload)
	if !ok {
		return nil, fmt.Errorf("payload is not an object")
	}
	return parseItemList(probe["records"], "")
}

// fieldsFormAdapter handles a single {"fields": {...}} object: one
// record exported on its own.
type fieldsFormAdapter struct{}

func (a *fieldsFormAdapter) Name() string { return "fields-form" }

func (a *fieldsFormAdapter) CanHandle(payload []byte) bool {
	probe, ok := envelopeProbe(payload)
	if !ok {
		return false
	}
	fieldsRaw, has := probe["fields"]
	if !has {
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(fieldsRaw), []byte("{"))
}

func (a *fieldsFormAdapter) Parse(payload []byte) ([]*model.RawRecord, error) {
	rec, err := parseItem(payload, "")
	if err != nil {
		return nil, err
	}
	return []*model.RawRecord{rec}, nil
}

// bucketsAdapter handles the grouped export: a top-level object whose
// every value is an array of records, keyed by bucket name. The bucket
// name becomes the record's table.
type bucketsAdapter struct{}

func (a *bucketsAdapter) Name() string { return "buckets" }

func (a *bucketsAdapter) CanHandle(payload []byte) bool {
	probe, ok := envelopeProbe(payload)
	if !ok || len(probe) == 0 {
		return false
	}
	for _, raw := range probe {
		if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			return false
		}
	}
	return true
}

func (a *bucketsAdapter) Parse(payload []byte) ([]*model.RawRecord, error) {
	probe, ok := envelopeProbe(payload)
	if !ok {
		return nil, fmt.Errorf("payload is not an object")
	}
	// Deterministic bucket order.
	var out []*model.RawRecord
	for _, bucket := range sortedKeys(probe) {
		recs, err := parseItemList(probe[bucket], bucket)
		if err != nil {
			return nil, fmt.Errorf("bucket %q: %w", bucket, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
