package cmd

import (
	"context"

	"github.com/duynguyendang/docdates/pkg/config"
	"github.com/duynguyendang/docdates/pkg/extract"
	"github.com/duynguyendang/docdates/pkg/loader"
	"github.com/duynguyendang/docdates/pkg/oracle"
	"github.com/duynguyendang/docdates/pkg/oracle/cache"
	"github.com/duynguyendang/docdates/pkg/report"
)

// pipeline bundles the configured oracle stack for one or more runs.
type pipeline struct {
	client  *oracle.GeminiClient
	cache   *cache.CachingEmbedder
	builder *oracle.Builder
}

func newPipeline(ctx context.Context, cfg *config.Config) (*pipeline, error) {
	client, err := oracle.NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.EmbeddingModel)
	if err != nil {
		return nil, err
	}

	embedder, err := cache.New(client, cfg.CacheDir)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &pipeline{
		client: client,
		cache:  embedder,
		builder: &oracle.Builder{
			Embedder:  embedder,
			Generator: client,
		},
	}, nil
}

func (p *pipeline) close() {
	_ = p.cache.Close()
	p.client.Close()
}

// run executes the full pipeline over docsDir: load, group, extract.
func (p *pipeline) run(ctx context.Context, docsDir string, continueOnError bool) (*report.Report, error) {
	records, err := loader.LoadDirectory(docsDir)
	if err != nil {
		return nil, err
	}

	groups := loader.GroupByFile(records)
	rows, err := extract.Run(ctx, groups, p.builder, extract.Options{ContinueOnError: continueOnError})
	if err != nil {
		return nil, err
	}

	return report.New(rows), nil
}
