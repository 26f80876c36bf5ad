package source

import (
	"reflect"
	"testing"
)

const flatPayload = `[
	{"id": "rec1", "Client Name": ["Maria Rodriguez"], "A#": ["234-567-890"]},
	{"id": "rec2", "Client Name": ["Jean Baptiste"]}
]`

const envelopePayload = `{"records": [
	{"id": "rec1", "table": "clients", "fields": {"Client Name": ["Maria Rodriguez"], "A#": ["234-567-890"]}},
	{"id": "rec2", "table": "clients", "fields": {"Client Name": ["Jean Baptiste"]}}
]}`

const bucketsPayload = `{
	"clients": [
		{"id": "rec1", "fields": {"Client Name": ["Maria Rodriguez"], "A#": ["234-567-890"]}},
		{"id": "rec2", "fields": {"Client Name": ["Jean Baptiste"]}}
	]
}`

const fieldsFormPayload = `{"id": "rec1", "fields": {"Client Name": ["Maria Rodriguez"], "A#": ["234-567-890"]}}`

func TestFindAdapter(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name    string
		payload string
		adapter string
	}{
		{"flat list", flatPayload, "flat-list"},
		{"records envelope", envelopePayload, "records-envelope"},
		{"buckets", bucketsPayload, "buckets"},
		{"fields form", fieldsFormPayload, "fields-form"},
		{"garbage falls back", "not json", "flat-list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.FindAdapter([]byte(tt.payload)).Name(); got != tt.adapter {
				t.Errorf("FindAdapter = %q, want %q", got, tt.adapter)
			}
		})
	}
}

// All shapes of the same record set must decode to the same field maps.
func TestDecodeShapeEquivalence(t *testing.T) {
	r := NewRegistry()
	base, err := r.Decode([]byte(envelopePayload))
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(base) != 2 {
		t.Fatalf("envelope decoded %d records, want 2", len(base))
	}
	for _, payload := range []string{flatPayload, bucketsPayload} {
		recs, err := r.Decode([]byte(payload))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(recs) != len(base) {
			t.Fatalf("decoded %d records, want %d", len(recs), len(base))
		}
		for i := range recs {
			if !reflect.DeepEqual(recs[i].Fields, base[i].Fields) {
				t.Errorf("record %d fields = %v, want %v", i, recs[i].Fields, base[i].Fields)
			}
			if recs[i].ID != base[i].ID {
				t.Errorf("record %d id = %q, want %q", i, recs[i].ID, base[i].ID)
			}
		}
	}
}

func TestDecodeTableDiscriminators(t *testing.T) {
	r := NewRegistry()

	recs, err := r.Decode([]byte(envelopePayload))
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].Table != "clients" {
		t.Errorf("envelope table = %q, want clients", recs[0].Table)
	}

	recs, err = r.Decode([]byte(bucketsPayload))
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].Table != "clients" {
		t.Errorf("bucket table = %q, want clients", recs[0].Table)
	}
}

func TestDecodeFieldsForm(t *testing.T) {
	r := NewRegistry()
	recs, err := r.Decode([]byte(fieldsFormPayload))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != "rec1" {
		t.Fatalf("got %+v", recs)
	}
	if _, ok := recs[0].Fields["Client Name"]; !ok {
		t.Error("missing Client Name field")
	}
}

func TestDecodeFlatStripsBookkeeping(t *testing.T) {
	r := NewRegistry()
	recs, err := r.Decode([]byte(flatPayload))
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].ID != "rec1" {
		t.Errorf("id = %q", recs[0].ID)
	}
	if _, ok := recs[0].Fields["id"]; ok {
		t.Error("bookkeeping id leaked into fields")
	}
}

func TestDecodeErrors(t *testing.T) {
	r := NewRegistry()
	for _, payload := range []string{
		`["not an object"]`,
		`{"records": "not a list"}`,
		`not json at all`,
	} {
		if _, err := r.Decode([]byte(payload)); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", payload)
		}
	}
}

func TestSchemaSet(t *testing.T) {
	var s SchemaSet
	if got := s.FieldType("clients", "Days to Next Hearing"); got != "" {
		t.Errorf("empty set returned %q", got)
	}
	s.Add("clients", TableSchema{"Days to Next Hearing": "formula"})
	if got := s.FieldType("clients", "Days to Next Hearing"); got != "formula" {
		t.Errorf("FieldType = %q, want formula", got)
	}
	if got := s.FieldType("other", "Days to Next Hearing"); got != "" {
		t.Errorf("wrong table returned %q", got)
	}
	var nilSet *SchemaSet
	if got := nilSet.FieldType("clients", "x"); got != "" {
		t.Errorf("nil set returned %q", got)
	}
}
