// Package matter detects which legal matter type a case record
// represents, using the catalog's per-type detection patterns.
package matter

import (
	"strings"

	"github.com/caseglance/caseglance/internal/catalog"
	"github.com/caseglance/caseglance/internal/model"
	"github.com/caseglance/caseglance/internal/normalize"
)

// Detect returns the matter type for a record, or nil when nothing
// matches. Ties between matching types break on status-field presence
// first, then catalog declaration order.
func Detect(rec *model.RawRecord, cat *catalog.Catalog) *catalog.MatterType {
	text := searchText(rec, cat)
	if text == "" {
		return nil
	}

	var candidates []*catalog.MatterType
	for i := range cat.MatterTypes {
		if cat.MatterTypes[i].Matches(text) {
			candidates = append(candidates, &cat.MatterTypes[i])
		}
	}
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	for _, mt := range candidates {
		if mt.StatusField == "" {
			continue
		}
		if nv := normalize.Value(rec.Fields[mt.StatusField]); nv.Present && !nv.IsError {
			return mt
		}
	}
	return candidates[0]
}

// searchText concatenates the record's identifying fields into one
// lowercase string for pattern matching.
func searchText(rec *model.RawRecord, cat *catalog.Catalog) string {
	var parts []string
	for _, name := range cat.DetectFields {
		raw, ok := rec.Fields[name]
		if !ok {
			continue
		}
		nv := normalize.Value(raw)
		if nv.Present && !nv.IsError {
			parts = append(parts, nv.Scalar)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
