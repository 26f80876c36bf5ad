package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caseglance/caseglance/internal/model"
)

func TestDefaultCompiles(t *testing.T) {
	c := Default()
	if len(c.Entries) == 0 {
		t.Fatal("default catalog has no entries")
	}
	if c.Display.MaxFieldsPerGroup != 8 {
		t.Errorf("MaxFieldsPerGroup = %d, want 8", c.Display.MaxFieldsPerGroup)
	}
}

func TestEntryLookup(t *testing.T) {
	c := Default()
	e, idx, ok := c.Entry("A#")
	if !ok {
		t.Fatal("no entry for A#")
	}
	if e.Role != "a_number" {
		t.Errorf("role = %q, want a_number", e.Role)
	}
	if idx < 0 || idx >= len(c.Entries) {
		t.Errorf("index %d out of range", idx)
	}
	if _, _, ok := c.Entry("No Such Field"); ok {
		t.Error("lookup of unknown field succeeded")
	}
}

func TestGroupForFirstMatchWins(t *testing.T) {
	c := Default()
	tests := []struct {
		field string
		group string
		match bool
	}{
		// "Hearing Date/Time" contains both "hearing" and "date";
		// Court is declared before Dates so it wins.
		{"Hearing Date/Time", "Court", true},
		{"USCIS Receipt Number", "USCIS", true},
		{"Random Deadline", "Dates", true},
		{"zzz qqq", "", false},
	}
	for _, tt := range tests {
		got, ok := c.GroupFor(tt.field)
		if ok != tt.match || got != tt.group {
			t.Errorf("GroupFor(%q) = %q, %v; want %q, %v", tt.field, got, ok, tt.group, tt.match)
		}
	}
}

func TestHidden(t *testing.T) {
	c := Default()
	tests := []struct {
		field string
		want  bool
	}{
		{"Record ID", true},
		{"Client_ID", true},
		{"box_shared_link", true},
		{"Country (from Client Info)", true},
		{"Client Name", false},
		{"Hearing Date/Time", false},
	}
	for _, tt := range tests {
		if got := c.Hidden(tt.field); got != tt.want {
			t.Errorf("Hidden(%q) = %v, want %v", tt.field, got, tt.want)
		}
	}
}

func TestStructuralAndMeaningful(t *testing.T) {
	c := Default()
	if !c.Structural("xanoSyncTrigger") {
		t.Error("xanoSyncTrigger not structural")
	}
	if !c.Structural("Name Search Options") {
		t.Error("Name Search Options not structural")
	}
	// Matches a structural pattern but the meaningful override keeps it.
	if !c.Meaningful("Judge Search Name") {
		t.Error("Judge Search Name not meaningful")
	}
	if c.Meaningful("xanoSyncTrigger") {
		t.Error("xanoSyncTrigger marked meaningful")
	}
}

func TestInferType(t *testing.T) {
	c := Default()
	tests := []struct {
		value string
		typ   model.DataType
		match bool
	}{
		{"2025-10-15", model.TypeDate, true},
		{"2025-10-15T09:00", model.TypeDateTime, true},
		{"maria@example.com", model.TypeEmail, true},
		{"https://example.com/doc", model.TypeURL, true},
		{"$1,500.00", model.TypeCurrency, true},
		{"Yes", model.TypeBoolean, true},
		{"MSC2190123456", model.TypeReceipt, true},
		{"555-123-4567", model.TypePhone, true},
		// Below MinLength for phone, and no other pattern matches.
		{"555-1234", "", false},
		{"some prose", "", false},
	}
	for _, tt := range tests {
		got, ok := c.InferType(tt.value)
		if ok != tt.match || got != tt.typ {
			t.Errorf("InferType(%q) = %q, %v; want %q, %v", tt.value, got, ok, tt.typ, tt.match)
		}
	}
}

func TestGroupRank(t *testing.T) {
	c := Default()
	if c.GroupRank("Identity") != 0 {
		t.Errorf("Identity rank = %d, want 0", c.GroupRank("Identity"))
	}
	unknown := c.GroupRank("Never Declared")
	if unknown != len(c.GroupOrder) {
		t.Errorf("unknown group rank = %d, want %d", unknown, len(c.GroupOrder))
	}
	if c.GroupRank(GroupUncategorized) <= unknown {
		t.Error("Uncategorized should rank after unknown groups")
	}
}

func TestValidateRejectsBadCatalog(t *testing.T) {
	tests := []struct {
		name string
		cat  Catalog
	}{
		{"duplicate role", Catalog{Entries: []Entry{
			{Field: "A", Role: "r", Template: "{value}", Priority: 1},
			{Field: "B", Role: "r", Template: "{value}", Priority: 1},
		}}},
		{"no placeholder", Catalog{Entries: []Entry{
			{Field: "A", Role: "r", Template: "plain text", Priority: 1},
		}}},
		{"two placeholders", Catalog{Entries: []Entry{
			{Field: "A", Role: "r", Template: "{value} {value}", Priority: 1},
		}}},
		{"priority at fallback", Catalog{Entries: []Entry{
			{Field: "A", Role: "r", Template: "{value}", Priority: FallbackPriority},
		}}},
		{"bad group pattern", Catalog{GroupPatterns: []GroupPattern{
			{Group: "X", Pattern: "("},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cat.Compile(); err == nil {
				t.Error("Compile succeeded, want error")
			}
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	c := Default()
	data, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Entries) != len(c.Entries) {
		t.Errorf("loaded %d entries, want %d", len(loaded.Entries), len(c.Entries))
	}
	if _, _, ok := loaded.Entry("Client Name"); !ok {
		t.Error("loaded catalog missing Client Name entry")
	}
}

func TestSynthesizeRole(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Court/Office", "court_office"},
		{"RFE/RFI (topic)", "rfe_rfi_topic"},
		{"  Weird -- Name  ", "weird_name"},
		{"A#", "a"},
		{"Simple", "simple"},
	}
	for _, tt := range tests {
		if got := SynthesizeRole(tt.in); got != tt.want {
			t.Errorf("SynthesizeRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
