// Package catalog defines the declarative field catalog that
// parameterizes the interpretation engine: exact-name roles, fallback
// group patterns, structural/meaningful classification rules, matter
// type definitions, and display ordering. The catalog is loaded once at
// startup and treated as read-only afterwards; concurrent render calls
// only read it.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/caseglance/caseglance/internal/model"
	"gopkg.in/yaml.v3"
)

// FallbackPriority is assigned to fields classified without a catalog
// entry, so they always sort after recognized fields within a group.
// Catalog entry priorities must stay below it.
const FallbackPriority = 100

// GroupUncategorized collects fields with no semantic mapping. They are
// still shown, just last in display order.
const GroupUncategorized = "Uncategorized"

var placeholderRe = regexp.MustCompile(`\{value(?::[a-z]+)?\}`)

// Entry maps one exact field name to its semantic role and rendering
// rule. Role is unique within the catalog; Template contains exactly
// one {value} placeholder, optionally tagged with a format
// ({value:date}, {value:lowercase}, ...).
type Entry struct {
	Field    string                  `yaml:"field"`
	Role     string                  `yaml:"role"`
	Group    string                  `yaml:"group"`
	Template string                  `yaml:"template"`
	DataType model.DataType          `yaml:"data_type,omitempty"`
	Priority int                     `yaml:"priority"`
	Position model.NarrativePosition `yaml:"position,omitempty"`
}

// GroupPattern assigns a fallback group to field names without an exact
// entry. The list is ordered; first match wins.
type GroupPattern struct {
	Group   string `yaml:"group"`
	Pattern string `yaml:"pattern"`

	re *regexp.Regexp
}

// TypePattern infers a display data type from a field's value (not its
// name), for fields classified through the pattern or default tier.
type TypePattern struct {
	Type      model.DataType `yaml:"type"`
	Pattern   string         `yaml:"pattern"`
	MinLength int            `yaml:"min_length,omitempty"`

	re *regexp.Regexp
}

// MatterType defines one category of legal case and how to detect it.
// Declaration order in the catalog is the detection tie-break order.
type MatterType struct {
	ID             string   `yaml:"id"`
	Label          string   `yaml:"label"`
	ShortLabel     string   `yaml:"short_label"`
	ColorToken     string   `yaml:"color_token,omitempty"`
	DetectPatterns []string `yaml:"detect_patterns"`
	StatusField    string   `yaml:"status_field,omitempty"`
	RelatedFields  []string `yaml:"related_fields,omitempty"`

	res []*regexp.Regexp
}

// Matches reports whether any detection pattern matches the text.
func (m *MatterType) Matches(text string) bool {
	for _, re := range m.res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ClassificationRules separate meaningful data from structural
// plumbing. Structural patterns hide a field; meaningful patterns
// override structural detection; the type lists apply schema metadata
// when the source provides it.
type ClassificationRules struct {
	StructuralPatterns   []string `yaml:"structural_patterns"`
	MeaningfulPatterns   []string `yaml:"meaningful_patterns"`
	StructuralTypes      []string `yaml:"structural_types"`
	MaybeStructuralTypes []string `yaml:"maybe_structural_types"`

	structuralRes []*regexp.Regexp
	meaningfulRes []*regexp.Regexp
}

// DisplayRules control presentation ordering and the explicit hidden
// list. MaxFieldsPerGroup is advisory: sections carry it as metadata
// and never drop fields.
type DisplayRules struct {
	HiddenFields      []string `yaml:"hidden_fields"`
	HiddenPatterns    []string `yaml:"hidden_patterns"`
	MaxFieldsPerGroup int      `yaml:"max_fields_per_group"`

	hiddenSet map[string]struct{}
	hiddenRes []*regexp.Regexp
}

// PriorityTiers name the most important fields for header/overview
// display and the deadline fields that drive urgency indicators.
type PriorityTiers struct {
	Critical  []string `yaml:"critical"`
	Important []string `yaml:"important"`
	Urgency   []string `yaml:"urgency"`
}

// Catalog is the complete field catalog.
type Catalog struct {
	Entries        []Entry             `yaml:"entries"`
	GroupPatterns  []GroupPattern      `yaml:"group_patterns"`
	TypePatterns   []TypePattern       `yaml:"type_patterns"`
	Classification ClassificationRules `yaml:"classification"`
	Display        DisplayRules        `yaml:"display"`
	Tiers          PriorityTiers       `yaml:"tiers"`
	MatterTypes    []MatterType        `yaml:"matter_types"`
	GroupOrder     []string            `yaml:"group_order"`

	// DetectFields are the identifying text fields concatenated into
	// the matter detection search string.
	DetectFields []string `yaml:"detect_fields"`

	index     map[string]int // exact field name -> Entries index
	groupRank map[string]int
}

// Load reads a catalog from a YAML file and compiles it. A missing or
// unparseable catalog is a startup-time fatal error, never a per-record
// one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Compile(); err != nil {
		return nil, fmt.Errorf("compile catalog: %w", err)
	}
	return &c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := defaultCatalog()
	if err := c.Compile(); err != nil {
		// The built-in catalog is static data; failing to compile it is
		// a programming error, not a runtime condition.
		panic(fmt.Sprintf("catalog: default catalog invalid: %v", err))
	}
	return c
}

// Compile validates the catalog and compiles its regular expressions
// and lookup indexes. Must be called once before use.
func (c *Catalog) Compile() error {
	if err := c.validate(); err != nil {
		return err
	}

	c.index = make(map[string]int, len(c.Entries))
	for i, e := range c.Entries {
		if _, dup := c.index[e.Field]; dup {
			return fmt.Errorf("duplicate field %q", e.Field)
		}
		c.index[e.Field] = i
	}

	var err error
	for i := range c.GroupPatterns {
		if c.GroupPatterns[i].re, err = regexp.Compile(c.GroupPatterns[i].Pattern); err != nil {
			return fmt.Errorf("group pattern %q: %w", c.GroupPatterns[i].Pattern, err)
		}
	}
	for i := range c.TypePatterns {
		if c.TypePatterns[i].re, err = regexp.Compile(c.TypePatterns[i].Pattern); err != nil {
			return fmt.Errorf("type pattern %q: %w", c.TypePatterns[i].Pattern, err)
		}
	}
	if c.Classification.structuralRes, err = compileAll(c.Classification.StructuralPatterns); err != nil {
		return fmt.Errorf("structural pattern: %w", err)
	}
	if c.Classification.meaningfulRes, err = compileAll(c.Classification.MeaningfulPatterns); err != nil {
		return fmt.Errorf("meaningful pattern: %w", err)
	}
	if c.Display.hiddenRes, err = compileAll(c.Display.HiddenPatterns); err != nil {
		return fmt.Errorf("hidden pattern: %w", err)
	}
	c.Display.hiddenSet = make(map[string]struct{}, len(c.Display.HiddenFields))
	for _, name := range c.Display.HiddenFields {
		c.Display.hiddenSet[name] = struct{}{}
	}
	for i := range c.MatterTypes {
		if c.MatterTypes[i].res, err = compileAll(c.MatterTypes[i].DetectPatterns); err != nil {
			return fmt.Errorf("matter %q: %w", c.MatterTypes[i].ID, err)
		}
	}

	c.groupRank = make(map[string]int, len(c.GroupOrder))
	for i, g := range c.GroupOrder {
		c.groupRank[g] = i
	}
	return nil
}

func (c *Catalog) validate() error {
	roles := make(map[string]string, len(c.Entries))
	for _, e := range c.Entries {
		if e.Field == "" {
			return fmt.Errorf("entry with empty field name")
		}
		if e.Role == "" {
			return fmt.Errorf("entry %q: empty role", e.Field)
		}
		if prev, dup := roles[e.Role]; dup {
			return fmt.Errorf("role %q declared for both %q and %q", e.Role, prev, e.Field)
		}
		roles[e.Role] = e.Field
		if n := len(placeholderRe.FindAllString(e.Template, -1)); n != 1 {
			return fmt.Errorf("entry %q: template must contain exactly one {value} placeholder, found %d", e.Field, n)
		}
		if e.Priority < 1 || e.Priority >= FallbackPriority {
			return fmt.Errorf("entry %q: priority %d outside [1,%d)", e.Field, e.Priority, FallbackPriority)
		}
	}
	return nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// Entry returns the exact-name entry for a field, with its declaration
// index, if one exists.
func (c *Catalog) Entry(field string) (*Entry, int, bool) {
	i, ok := c.index[field]
	if !ok {
		return nil, 0, false
	}
	return &c.Entries[i], i, true
}

// Hidden reports whether the field is on the explicit hidden list.
func (c *Catalog) Hidden(field string) bool {
	if _, ok := c.Display.hiddenSet[field]; ok {
		return true
	}
	for _, re := range c.Display.hiddenRes {
		if re.MatchString(field) {
			return true
		}
	}
	return false
}

// Structural reports whether the field name matches a structural
// pattern.
func (c *Catalog) Structural(field string) bool {
	for _, re := range c.Classification.structuralRes {
		if re.MatchString(field) {
			return true
		}
	}
	return false
}

// Meaningful reports whether the field name matches a meaningful
// override pattern.
func (c *Catalog) Meaningful(field string) bool {
	for _, re := range c.Classification.meaningfulRes {
		if re.MatchString(field) {
			return true
		}
	}
	return false
}

// StructuralType reports whether the schema field type is always
// structural.
func (c *Catalog) StructuralType(fieldType string) bool {
	return contains(c.Classification.StructuralTypes, fieldType)
}

// MaybeStructuralType reports whether the schema field type is
// structural unless the field name looks meaningful.
func (c *Catalog) MaybeStructuralType(fieldType string) bool {
	return contains(c.Classification.MaybeStructuralTypes, fieldType)
}

// GroupFor returns the first group pattern matching the field name.
func (c *Catalog) GroupFor(field string) (string, bool) {
	for _, gp := range c.GroupPatterns {
		if gp.re.MatchString(field) {
			return gp.Group, true
		}
	}
	return "", false
}

// InferType infers a display data type from a field value.
func (c *Catalog) InferType(value string) (model.DataType, bool) {
	for _, tp := range c.TypePatterns {
		if tp.MinLength > 0 && len(value) < tp.MinLength {
			continue
		}
		if tp.re.MatchString(value) {
			return tp.Type, true
		}
	}
	return "", false
}

// GroupRank returns the display rank of a group. Groups not in the
// declared order sort after known groups, and Uncategorized sorts last
// even when the declared order lists it.
func (c *Catalog) GroupRank(group string) int {
	if group == GroupUncategorized {
		return len(c.GroupOrder) + 1
	}
	if r, ok := c.groupRank[group]; ok {
		return r
	}
	return len(c.GroupOrder)
}

// Urgent reports whether the field name is in the urgency tier.
func (c *Catalog) Urgent(field string) bool {
	return contains(c.Tiers.Urgency, field)
}

// Critical reports whether the field name is in the critical tier.
func (c *Catalog) Critical(field string) bool {
	return contains(c.Tiers.Critical, field)
}

// Marshal renders the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// SynthesizeRole derives a stable role identifier from a field name for
// fields with no catalog entry: lowercased, non-alphanumeric runs
// collapsed to single underscores.
func SynthesizeRole(field string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(field) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
