package normalize

import (
	"testing"

	"github.com/caseglance/caseglance/internal/model"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want model.NormalizedValue
	}{
		{"nil", nil, model.NormalizedValue{}},
		{"empty string", "", model.NormalizedValue{}},
		{"whitespace string", "   ", model.NormalizedValue{}},
		{"plain string", "Maria Rodriguez", model.NormalizedValue{Present: true, Scalar: "Maria Rodriguez"}},
		{"trimmed string", "  Guatemala  ", model.NormalizedValue{Present: true, Scalar: "Guatemala"}},
		{"number", float64(3), model.NormalizedValue{Present: true, Scalar: "3"}},
		{"bool", true, model.NormalizedValue{Present: true, Scalar: "true"}},

		{"empty array", []interface{}{}, model.NormalizedValue{}},
		{"single element unwraps", []interface{}{"2025-10-15"}, model.NormalizedValue{Present: true, Scalar: "2025-10-15"}},
		{"multi element joins", []interface{}{"Asylum", "SIJ"}, model.NormalizedValue{Present: true, Scalar: "Asylum, SIJ"}},
		{"array skips empties", []interface{}{"", "Bond", nil}, model.NormalizedValue{Present: true, Scalar: "Bond"}},
		{"array of numbers", []interface{}{float64(1), float64(2)}, model.NormalizedValue{Present: true, Scalar: "1, 2"}},

		{"error marker NaN", "NaN", model.NormalizedValue{Present: true, IsError: true}},
		{"error marker prefix", "#ERROR!", model.NormalizedValue{Present: true, IsError: true}},
		{"error object", map[string]interface{}{"error": "#ERROR"}, model.NormalizedValue{Present: true, IsError: true}},
		{"special value object", map[string]interface{}{"specialValue": "NaN"}, model.NormalizedValue{Present: true, IsError: true}},
		{"error inside array", []interface{}{"ok", map[string]interface{}{"error": "x"}}, model.NormalizedValue{Present: true, IsError: true}},

		{"labeled object", map[string]interface{}{"label": "Judge Chen"}, model.NormalizedValue{Present: true, Scalar: "Judge Chen"}},
		{"named object", map[string]interface{}{"name": "scan.pdf", "size": float64(12)}, model.NormalizedValue{Present: true, Scalar: "scan.pdf"}},
		{"opaque object", map[string]interface{}{"x": 1}, model.NormalizedValue{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Value(tt.raw)
			if got != tt.want {
				t.Errorf("Value(%v) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValueFlattensHTML(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"simple markup", "<p>Client called about <b>hearing</b>.</p>", "Client called about hearing ."},
		{"script dropped", "<div><script>alert(1)</script>Visible note</div>", "Visible note"},
		{"no markup untouched", "a < b and c > d", "a < b and c > d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Value(tt.raw)
			if !got.Present || got.Scalar != tt.want {
				t.Errorf("Value(%q) = %+v, want scalar %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValueIdempotent(t *testing.T) {
	inputs := []interface{}{
		"Maria Rodriguez",
		[]interface{}{"Asylum", "SIJ"},
		"<p>Note</p>",
	}
	for _, raw := range inputs {
		once := Value(raw)
		twice := Value(once.Scalar)
		if twice != once {
			t.Errorf("normalize not idempotent for %v: %+v then %+v", raw, once, twice)
		}
	}
}
