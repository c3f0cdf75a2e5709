package oracle

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Tuning defaults for chunking and retrieval. Small documents fit entirely
// into the prompt anyway; these bound the context for large ones.
const (
	DefaultChunkSize    = 1024
	DefaultChunkOverlap = 128
	DefaultTopK         = 4
)

// Builder builds in-memory vector indexes backed by an Embedder and a
// Generator. Zero values for the tuning fields fall back to the defaults.
type Builder struct {
	Embedder     Embedder
	Generator    Generator
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

type chunk struct {
	text string
	vec  []float32
}

// memoryIndex holds the embedded chunks of a single document. It is built
// once, queried a few times, and discarded.
type memoryIndex struct {
	embedder  Embedder
	generator Generator
	chunks    []chunk
	topK      int
}

// Build splits each content blob into overlapping chunks, embeds them, and
// returns an index over this document alone.
func (b *Builder) Build(ctx context.Context, contents []string) (Index, error) {
	size := b.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	overlap := b.ChunkOverlap
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
	}
	topK := b.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	idx := &memoryIndex{
		embedder:  b.Embedder,
		generator: b.Generator,
		topK:      topK,
	}

	for _, content := range contents {
		for _, text := range splitChunks(content, size, overlap) {
			vec, err := b.Embedder.Embed(ctx, text)
			if err != nil {
				return nil, fmt.Errorf("failed to embed chunk: %w", err)
			}
			idx.chunks = append(idx.chunks, chunk{text: text, vec: normalize(vec)})
		}
	}

	if len(idx.chunks) == 0 {
		return nil, fmt.Errorf("document has no indexable content")
	}
	return idx, nil
}

// Query embeds the question, retrieves the top-k most similar chunks, and
// asks the generator to answer from that context only.
func (m *memoryIndex) Query(ctx context.Context, question string) (string, error) {
	qvec, err := m.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to embed question: %w", err)
	}

	top := m.retrieve(normalize(qvec), m.topK)

	var contextBuilder strings.Builder
	for i, c := range top {
		contextBuilder.WriteString(fmt.Sprintf("### Excerpt %d\n%s\n\n", i+1, c.text))
	}

	prompt := fmt.Sprintf(`You are a document analysis assistant.
Answer the question using only the provided document excerpts.

## Context
%s
## Question
%s

Answer concisely and accurately based on the document content provided.`, contextBuilder.String(), question)

	answer, err := m.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("query failed: %w", err)
	}
	return answer, nil
}

// retrieve returns the k chunks most similar to the query vector, best
// first. Linear scan; per-document chunk counts are small.
func (m *memoryIndex) retrieve(qvec []float32, k int) []chunk {
	type scored struct {
		c     chunk
		score float32
	}

	results := make([]scored, 0, len(m.chunks))
	for _, c := range m.chunks {
		results = append(results, scored{c: c, score: dot(qvec, c.vec)})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if k > len(results) {
		k = len(results)
	}
	top := make([]chunk, 0, k)
	for _, r := range results[:k] {
		top = append(top, r.c)
	}
	return top
}

// splitChunks breaks text into chunks of roughly size bytes on whitespace
// boundaries, overlapping by roughly overlap bytes so dates split across a
// boundary still land whole in one chunk.
func splitChunks(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	words := strings.Fields(text)
	var chunks []string
	var current []string
	currentLen := 0

	for _, w := range words {
		current = append(current, w)
		currentLen += len(w) + 1
		if currentLen >= size {
			chunks = append(chunks, strings.Join(current, " "))

			// Carry the tail forward as overlap.
			var tail []string
			tailLen := 0
			for i := len(current) - 1; i >= 0 && tailLen < overlap; i-- {
				tail = append([]string{current[i]}, tail...)
				tailLen += len(current[i]) + 1
			}
			current = tail
			currentLen = tailLen
		}
	}
	if currentLen > 0 && strings.Join(current, " ") != "" {
		last := strings.Join(current, " ")
		if len(chunks) == 0 || chunks[len(chunks)-1] != last {
			chunks = append(chunks, last)
		}
	}
	return chunks
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return float32(sum)
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	inv := float32(1.0 / math.Sqrt(sum))
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}
