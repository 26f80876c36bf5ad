// Package pipeline orchestrates a full run: load the catalog, obtain
// records (API pull or local export file), bundle them per client,
// summarize, and write reports.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/caseglance/caseglance/internal/cache"
	"github.com/caseglance/caseglance/internal/catalog"
	"github.com/caseglance/caseglance/internal/engine"
	"github.com/caseglance/caseglance/internal/model"
	"github.com/caseglance/caseglance/internal/source"
)

// Pipeline wires the source, engine, and output renderer together.
type Pipeline struct {
	cat      *catalog.Catalog
	engine   *engine.Engine
	client   *source.Client
	registry *source.Registry
	renderer *engine.Renderer
	schemas  *source.SchemaSet
	config   *model.Config
	log      *zap.Logger
}

// New creates a pipeline from configuration. The catalog comes from
// cfg.CatalogPath when set, otherwise the built-in one is used.
func New(cfg *model.Config, log *zap.Logger) (*Pipeline, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}

	var clientOpts []source.ClientOption
	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		clientOpts = append(clientOpts, source.WithCache(layered, cfg.Cache.MemoryTTL))
	}
	clientOpts = append(clientOpts, source.WithClientLogger(log))

	schemas := &source.SchemaSet{}
	return &Pipeline{
		cat: cat,
		engine: engine.New(cat,
			engine.WithSubject(cfg.Narrative.Subject),
			engine.WithSchema(schemas),
			engine.WithLogger(log)),
		client:   source.NewClient(cfg.Source, clientOpts...),
		registry: source.NewRegistry(),
		renderer: engine.NewRenderer(cfg.Output.IncludeFooter),
		schemas:  schemas,
		config:   cfg,
		log:      log,
	}, nil
}

// Catalog exposes the loaded catalog.
func (p *Pipeline) Catalog() *catalog.Catalog {
	return p.cat
}

// SummarizeFile renders per-client summaries from a local export file.
func (p *Pipeline) SummarizeFile(ctx context.Context, path string) ([]*model.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	records, err := p.registry.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decode export %s: %w", path, err)
	}
	p.log.Info("summarizing export",
		zap.String("path", path),
		zap.Int("records", len(records)))
	return p.engine.SummarizeAll(records, time.Now().UTC()), nil
}

// SummarizePull fetches the given tables from the record store API and
// renders per-client summaries across all of them.
func (p *Pipeline) SummarizePull(ctx context.Context, tables []string) ([]*model.Summary, error) {
	var records []*model.RawRecord
	for _, table := range tables {
		// Schema metadata improves structural-field detection but its
		// absence never fails a pull.
		if schema, err := p.client.Schema(ctx, table); err != nil {
			p.log.Warn("schema unavailable", zap.String("table", table), zap.Error(err))
		} else {
			p.schemas.Add(table, schema)
		}

		recs, err := p.client.Records(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("pull %s: %w", table, err)
		}
		records = append(records, recs...)
	}
	p.log.Info("summarizing pull",
		zap.Strings("tables", tables),
		zap.Int("records", len(records)))
	return p.engine.SummarizeAll(records, time.Now().UTC()), nil
}

// WriteReports renders each summary as JSON and Markdown under dir,
// named by client slug. It returns the paths written.
func (p *Pipeline) WriteReports(summaries []*model.Summary, dir string) ([]string, error) {
	var paths []string
	seen := make(map[string]int)
	for _, s := range summaries {
		slug := engine.Slug(s)
		// Distinct clients can slug identically.
		if n := seen[slug]; n > 0 {
			slug = fmt.Sprintf("%s-%d", slug, n+1)
		}
		seen[engine.Slug(s)]++

		jsonPath := filepath.Join(dir, slug+".json")
		if err := p.renderer.RenderJSON(s, jsonPath); err != nil {
			return paths, fmt.Errorf("write %s: %w", jsonPath, err)
		}
		mdPath := filepath.Join(dir, slug+".md")
		if err := p.renderer.RenderMarkdown(s, mdPath); err != nil {
			return paths, fmt.Errorf("write %s: %w", mdPath, err)
		}
		paths = append(paths, jsonPath, mdPath)
	}
	return paths, nil
}
