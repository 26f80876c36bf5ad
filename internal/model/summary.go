package model

import "time"

// GroupSection is one semantic group of classified fields, sorted by
// ascending priority. DisplayLimit is advisory metadata for the
// presentation layer: the section always carries every field.
type GroupSection struct {
	Group        string            `json:"group"`
	Fields       []ClassifiedField `json:"fields"`
	DisplayLimit int               `json:"display_limit,omitempty"`
}

// MatterCard is the field subset relevant to one detected matter type.
type MatterCard struct {
	MatterID   string            `json:"matter_id"`
	Label      string            `json:"label"`
	ShortLabel string            `json:"short_label,omitempty"`
	ColorToken string            `json:"color_token,omitempty"`
	Status     string            `json:"status,omitempty"` // rendered status field, if present
	Fields     []ClassifiedField `json:"fields"`
}

// UrgencyBucket classifies how soon a dated field falls due.
type UrgencyBucket string

const (
	BucketUrgent    UrgencyBucket = "urgent"    // within 7 days
	BucketUpcoming  UrgencyBucket = "upcoming"  // within 30 days
	BucketScheduled UrgencyBucket = "scheduled" // within 90 days
	BucketLater     UrgencyBucket = "later"
	BucketPast      UrgencyBucket = "past"
)

// TimelineEntry is one dated field on the cross-group timeline.
type TimelineEntry struct {
	Field  ClassifiedField `json:"field"`
	When   time.Time       `json:"when"`
	Bucket UrgencyBucket   `json:"bucket"`
}

// Summary is the complete rendered output for one client bundle.
type Summary struct {
	ClientName  string              `json:"client_name,omitempty"`
	Header      []ClassifiedField   `json:"header,omitempty"` // critical-tier fields
	Sentences   []NarrativeSentence `json:"sentences"`
	Groups      []GroupSection      `json:"groups"`
	Matters     []MatterCard        `json:"matters,omitempty"`
	Timeline    []TimelineEntry     `json:"timeline,omitempty"`
	RecordCount int                 `json:"record_count"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// Narrative joins the composed sentences into a single paragraph.
func (s *Summary) Narrative() string {
	var out string
	for i, sent := range s.Sentences {
		if i > 0 {
			out += ". "
		}
		out += sent.Text
	}
	if out != "" {
		out += "."
	}
	return out
}
