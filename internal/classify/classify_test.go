package classify

import (
	"testing"

	"github.com/caseglance/caseglance/internal/catalog"
	"github.com/caseglance/caseglance/internal/model"
)

func present(s string) model.NormalizedValue {
	return model.NormalizedValue{Present: true, Scalar: s}
}

func TestFieldExactEntry(t *testing.T) {
	cat := catalog.Default()
	f := Field("A#", present("234-567-890"), cat, "")
	if f == nil {
		t.Fatal("A# dropped")
	}
	if f.Role != "a_number" || f.Group != "Identity" {
		t.Errorf("got role %q group %q", f.Role, f.Group)
	}
	if f.Priority >= catalog.FallbackPriority {
		t.Errorf("catalog entry priority %d not below fallback", f.Priority)
	}
}

func TestFieldDrops(t *testing.T) {
	cat := catalog.Default()
	tests := []struct {
		name       string
		field      string
		nv         model.NormalizedValue
		schemaType string
	}{
		{"absent", "Client Name", model.NormalizedValue{}, ""},
		{"error value", "Age", model.NormalizedValue{Present: true, IsError: true}, ""},
		{"hidden exact", "Record ID", present("rec123"), ""},
		{"hidden pattern", "Hearing Event ID", present("evt9"), ""},
		{"structural name", "xanoSyncTrigger", present("1"), ""},
		{"structural lookup", "Country (from Client Info)", present("Honduras"), ""},
		{"structural schema type", "Anything", present("5"), "autoNumber"},
		{"maybe structural unconfirmed", "Helper Output", present("x"), "formula"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f := Field(tt.field, tt.nv, cat, tt.schemaType); f != nil {
				t.Errorf("Field(%q) = %+v, want nil", tt.field, f)
			}
		})
	}
}

func TestFieldExactEntryBeatsStructural(t *testing.T) {
	cat := catalog.Default()
	// "Days to Next Hearing" would match the calc-style structural rules
	// if it had no exact entry; the entry wins.
	f := Field("Days to Next Hearing", present("14"), cat, "formula")
	if f == nil {
		t.Fatal("exact-entry field dropped by structural rules")
	}
	if f.Role != "days_to_hearing" {
		t.Errorf("role = %q", f.Role)
	}
}

func TestFieldMeaningfulOverride(t *testing.T) {
	cat := catalog.Default()
	// Matches the search structural pattern but contains "name".
	f := Field("Judge Search Name", present("Chen"), cat, "")
	if f == nil {
		t.Fatal("meaningful override did not keep field")
	}
	// Meaningful override also applies to maybe-structural schema types.
	f = Field("Asylum Decision Summary", present("Granted"), cat, "rollup")
	if f == nil {
		t.Fatal("meaningful name dropped for rollup schema type")
	}
}

func TestFieldFallbackClassification(t *testing.T) {
	cat := catalog.Default()
	f := Field("Random Deadline", present("2025-10-15"), cat, "")
	if f == nil {
		t.Fatal("fallback field dropped")
	}
	if f.Group != "Dates" {
		t.Errorf("group = %q, want Dates", f.Group)
	}
	if f.Role != "random_deadline" {
		t.Errorf("role = %q", f.Role)
	}
	if f.Priority != catalog.FallbackPriority {
		t.Errorf("priority = %d, want %d", f.Priority, catalog.FallbackPriority)
	}
	if f.DataType != model.TypeDate {
		t.Errorf("data type = %q, want date", f.DataType)
	}
}

func TestFieldUncategorized(t *testing.T) {
	cat := catalog.Default()
	f := Field("Zzz Qqq", present("something"), cat, "")
	if f == nil {
		t.Fatal("uncategorized field dropped")
	}
	if f.Group != catalog.GroupUncategorized {
		t.Errorf("group = %q, want %q", f.Group, catalog.GroupUncategorized)
	}
}
