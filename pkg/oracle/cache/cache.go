// Package cache adds a two-layer embedding cache in front of an Embedder:
// an in-memory LRU for the current run and an optional BadgerDB directory
// persisted across runs, keyed by content hash. Re-running the pipeline on
// an unchanged directory then re-embeds nothing.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"

	"github.com/dgraph-io/badger/v4"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/duynguyendang/docdates/pkg/oracle"
)

// MemoryCacheSize bounds the in-memory layer.
const MemoryCacheSize = 4096

// CachingEmbedder wraps an Embedder with memory and disk caching.
type CachingEmbedder struct {
	inner oracle.Embedder
	mem   *lru.Cache[string, []float32]
	db    *badger.DB
}

// New creates a caching embedder. An empty dir disables the disk layer.
func New(inner oracle.Embedder, dir string) (*CachingEmbedder, error) {
	mem, err := lru.New[string, []float32](MemoryCacheSize)
	if err != nil {
		return nil, err
	}

	c := &CachingEmbedder{inner: inner, mem: mem}

	if dir != "" {
		opts := badger.DefaultOptions(dir).WithLogger(nil)
		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to open embedding cache at %s: %w", dir, err)
		}
		c.db = db
		slog.Info("embedding cache opened", "dir", dir)
	}

	return c, nil
}

// Close flushes and closes the disk layer.
func (c *CachingEmbedder) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Embed returns the cached vector for text, or delegates to the wrapped
// embedder and stores the result in both layers.
func (c *CachingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := hashKey(text)

	if vec, ok := c.mem.Get(key); ok {
		return vec, nil
	}

	if c.db != nil {
		if vec, err := c.loadVector(key); err == nil {
			c.mem.Add(key, vec)
			return vec, nil
		}
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mem.Add(key, vec)
	if c.db != nil {
		if err := c.storeVector(key, vec); err != nil {
			slog.Warn("failed to persist embedding", "error", err)
		}
	}
	return vec, nil
}

func hashKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "emb:" + hex.EncodeToString(sum[:])
}

// storeVector serializes the vector to bytes (little-endian float32).
func (c *CachingEmbedder) storeVector(key string, vec []float32) error {
	value := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(value[i*4:(i+1)*4], math.Float32bits(v))
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (c *CachingEmbedder) loadVector(key string) ([]float32, error) {
	var vec []float32
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			vec = make([]float32, len(val)/4)
			for i := range vec {
				bits := binary.LittleEndian.Uint32(val[i*4 : (i+1)*4])
				vec[i] = math.Float32frombits(bits)
			}
			return nil
		})
	})
	return vec, err
}
