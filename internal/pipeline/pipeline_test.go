package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caseglance/caseglance/internal/model"
)

const exportPayload = `{"records": [
	{"id": "rec1", "fields": {
		"Client Name": ["Maria Rodriguez"],
		"A#": ["234-567-890"],
		"DOB": ["1995-03-22"],
		"Country": ["Guatemala"]
	}},
	{"id": "rec2", "fields": {
		"Client Name": ["Jean Baptiste"],
		"Country": ["Haiti"]
	}}
]}`

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestSummarizeFile(t *testing.T) {
	p := newTestPipeline(t)
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(exportPayload), 0o644); err != nil {
		t.Fatal(err)
	}

	summaries, err := p.SummarizeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("SummarizeFile: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].ClientName != "Maria Rodriguez" {
		t.Errorf("first client = %q", summaries[0].ClientName)
	}
	if got := summaries[0].Narrative(); !strings.Contains(got, "Maria Rodriguez (A# 234-567-890)") {
		t.Errorf("narrative = %q", got)
	}
}

func TestSummarizeFileMissing(t *testing.T) {
	p := newTestPipeline(t)
	if _, err := p.SummarizeFile(context.Background(), "/nonexistent/export.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSummarizeFileCancelled(t *testing.T) {
	p := newTestPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.SummarizeFile(ctx, "whatever.json"); err == nil {
		t.Error("expected context error")
	}
}

func TestWriteReports(t *testing.T) {
	p := newTestPipeline(t)
	dir := t.TempDir()
	summaries := []*model.Summary{
		{ClientName: "Maria Rodriguez", RecordCount: 1},
		{ClientName: "Maria Rodriguez", RecordCount: 1}, // slug collision
	}
	paths, err := p.WriteReports(summaries, dir)
	if err != nil {
		t.Fatalf("WriteReports: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("got %d paths, want 4", len(paths))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output %s: %v", path, err)
		}
	}
	if filepath.Base(paths[0]) == filepath.Base(paths[2]) {
		t.Error("colliding slugs produced the same file name")
	}
}

func TestNewRejectsBadCatalogPath(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.CatalogPath = "/nonexistent/catalog.yaml"
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
