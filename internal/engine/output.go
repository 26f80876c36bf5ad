package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caseglance/caseglance/internal/model"
)

// Renderer writes summaries to disk as JSON and Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. includeFooter appends a generation
// footer to Markdown output.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the summary as indented JSON.
func (r *Renderer) RenderJSON(s *model.Summary, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the summary as a human-readable report.
func (r *Renderer) RenderMarkdown(s *model.Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(r.Markdown(s)), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// Markdown renders the summary document without touching disk.
func (r *Renderer) Markdown(s *model.Summary) string {
	var b strings.Builder

	title := s.ClientName
	if title == "" {
		title = "Case Summary"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if n := s.Narrative(); n != "" {
		fmt.Fprintf(&b, "%s\n\n", n)
	}

	if len(s.Matters) > 0 {
		b.WriteString("## Matters\n\n")
		for _, m := range s.Matters {
			if m.Status != "" {
				fmt.Fprintf(&b, "- **%s**: %s\n", m.Label, m.Status)
			} else {
				fmt.Fprintf(&b, "- **%s**\n", m.Label)
			}
		}
		b.WriteString("\n")
	}

	if len(s.Timeline) > 0 {
		b.WriteString("## Upcoming\n\n")
		for _, entry := range s.Timeline {
			if entry.Bucket == model.BucketPast {
				continue
			}
			fmt.Fprintf(&b, "- %s (%s)\n", entry.Field.Rendered, entry.Bucket)
		}
		b.WriteString("\n")
	}

	for _, g := range s.Groups {
		fmt.Fprintf(&b, "## %s\n\n", g.Group)
		shown := g.Fields
		overflow := 0
		if g.DisplayLimit > 0 && len(shown) > g.DisplayLimit {
			overflow = len(shown) - g.DisplayLimit
			shown = shown[:g.DisplayLimit]
		}
		for _, f := range shown {
			fmt.Fprintf(&b, "- **%s**: %s\n", f.SourceField, f.Rendered)
		}
		if overflow > 0 {
			fmt.Fprintf(&b, "- *and %d more*\n", overflow)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by caseglance from %d record(s) at %s\n",
			s.RecordCount, s.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}
	return b.String()
}

// Slug derives a filesystem-safe name for a summary's output files.
func Slug(s *model.Summary) string {
	name := s.ClientName
	if name == "" {
		name = "client"
	}
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "client"
	}
	return out
}
