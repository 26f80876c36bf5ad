package engine

import (
	"time"

	"github.com/caseglance/caseglance/internal/model"
	"github.com/caseglance/caseglance/internal/normalize"
)

// Bundle is the set of records belonging to one client.
type Bundle struct {
	Key     string
	Records []*model.RawRecord
}

// Fields that identify which client a record belongs to, strongest
// first. The A number is authoritative when present; names are a
// fallback for records that never carry one.
var bundleKeyFields = []string{"A#", "Client Name", "Full Client Name", "Name"}

// GroupRecords splits a mixed record list into per-client bundles.
// Bundles keep first-seen order; records with no identifying field at
// all form one shared bundle at the end.
func GroupRecords(records []*model.RawRecord) []Bundle {
	const unkeyed = "\x00unkeyed"

	byKey := make(map[string]int)
	var bundles []Bundle
	for _, rec := range records {
		key := bundleKey(rec)
		if key == "" {
			key = unkeyed
		}
		i, ok := byKey[key]
		if !ok {
			i = len(bundles)
			byKey[key] = i
			bundles = append(bundles, Bundle{Key: key})
		}
		bundles[i].Records = append(bundles[i].Records, rec)
	}
	for i := range bundles {
		if bundles[i].Key == unkeyed {
			bundles[i].Key = ""
		}
	}
	return bundles
}

func bundleKey(rec *model.RawRecord) string {
	for _, name := range bundleKeyFields {
		nv := normalize.Value(rec.Fields[name])
		if nv.Present && !nv.IsError {
			return nv.Scalar
		}
	}
	return ""
}

// SummarizeAll groups records into client bundles and summarizes each.
func (e *Engine) SummarizeAll(records []*model.RawRecord, now time.Time) []*model.Summary {
	bundles := GroupRecords(records)
	out := make([]*model.Summary, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, e.Summarize(b.Records, now))
	}
	return out
}
