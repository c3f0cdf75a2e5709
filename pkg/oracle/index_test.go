package oracle

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder maps known substrings to fixed orthogonal axes so retrieval
// order is fully deterministic.
type stubEmbedder struct {
	axes  map[string]int
	dim   int
	calls int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	vec := make([]float32, s.dim)
	for needle, axis := range s.axes {
		if strings.Contains(text, needle) {
			vec[axis] = 1
		}
	}
	// Unmatched text still gets a non-zero vector.
	vec[s.dim-1] += 0.01
	return vec, nil
}

// stubGenerator echoes the prompt so tests can inspect what was retrieved.
type stubGenerator struct {
	lastPrompt string
	answer     string
	err        error
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func TestBuilder_Build_EmptyContent(t *testing.T) {
	b := &Builder{
		Embedder:  &stubEmbedder{dim: 4, axes: map[string]int{}},
		Generator: &stubGenerator{},
	}
	_, err := b.Build(context.Background(), []string{"", "   "})
	assert.Error(t, err)
}

func TestIndex_QueryRetrievesMatchingChunk(t *testing.T) {
	emb := &stubEmbedder{
		dim: 4,
		axes: map[string]int{
			"created": 0,
			"posted":  1,
		},
	}
	gen := &stubGenerator{answer: "2023-01-01"}
	b := &Builder{Embedder: emb, Generator: gen, TopK: 1}

	idx, err := b.Build(context.Background(), []string{
		"the created stamp lives here",
		"the posted stamp lives here",
	})
	require.NoError(t, err)

	answer, err := idx.Query(context.Background(), "what is the created date?")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", answer)

	// Only the created chunk should be in the prompt context.
	assert.Contains(t, gen.lastPrompt, "created stamp")
	assert.NotContains(t, gen.lastPrompt, "posted stamp")
	assert.Contains(t, gen.lastPrompt, "what is the created date?")
}

func TestIndex_QueryGeneratorError(t *testing.T) {
	emb := &stubEmbedder{dim: 4, axes: map[string]int{}}
	gen := &stubGenerator{err: fmt.Errorf("provider unavailable")}
	b := &Builder{Embedder: emb, Generator: gen}

	idx, err := b.Build(context.Background(), []string{"some content"})
	require.NoError(t, err)

	_, err = idx.Query(context.Background(), "anything")
	assert.Error(t, err)
}

func TestSplitChunks_ShortTextSingleChunk(t *testing.T) {
	chunks := splitChunks("short text", 1024, 128)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplitChunks_OverlapCarriesTail(t *testing.T) {
	words := make([]string, 100)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}
	text := strings.Join(words, " ")

	chunks := splitChunks(text, 200, 40)
	require.Greater(t, len(chunks), 1)

	// Every word must appear in at least one chunk.
	joined := strings.Join(chunks, " ")
	for _, w := range words {
		assert.Contains(t, joined, w)
	}

	// Consecutive chunks overlap.
	for i := 1; i < len(chunks); i++ {
		prevWords := strings.Fields(chunks[i-1])
		lastWord := prevWords[len(prevWords)-1]
		assert.Contains(t, chunks[i], lastWord)
	}
}

func TestSplitChunks_Empty(t *testing.T) {
	assert.Nil(t, splitChunks("   ", 100, 10))
}

func TestNormalizeAndDot(t *testing.T) {
	v := normalize([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)
	assert.InDelta(t, 1.0, float64(dot(v, v)), 1e-6)

	// Zero vector stays untouched.
	z := normalize([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, z)
}
