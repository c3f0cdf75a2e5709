// Package oracle wraps the question-answering capability used for
// extraction: a per-document retrieval index over embedded content chunks,
// answered by a generative model. One index is built per logical document,
// never shared, so queries cannot leak context from unrelated files.
package oracle

import "context"

// Embedder turns text into a vector. Implementations must be safe for
// sequential reuse across documents.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Generator answers a fully assembled prompt with a display string.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Index answers natural-language questions against one document's content.
type Index interface {
	Query(ctx context.Context, question string) (string, error)
}

// IndexBuilder builds a fresh Index from one document's raw content chunks.
// Tests substitute a deterministic stub here instead of a live provider.
type IndexBuilder interface {
	Build(ctx context.Context, contents []string) (Index, error)
}
