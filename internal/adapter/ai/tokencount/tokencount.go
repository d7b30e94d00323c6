// Package tokencount estimates token counts for model prompts.
//
// It uses tiktoken-go, a Go port of OpenAI's tiktoken library. Local models
// served through an OpenAI-compatible endpoint rarely publish their own
// tokenizers, so counts here are estimates for logging and capacity planning,
// not billing-grade numbers.
package tokencount

import (
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter provides thread-safe token estimation with per-model encoding cache.
type Counter struct {
	mu    sync.RWMutex
	cache map[string]*tiktoken.Tiktoken
}

// NewCounter creates a new token counter instance.
func NewCounter() *Counter {
	return &Counter{cache: make(map[string]*tiktoken.Tiktoken)}
}

// Count estimates the number of tokens in text for model. When no encoding
// is available it falls back to a rough four-characters-per-token heuristic.
func (c *Counter) Count(model, text string) int {
	enc, err := c.encodingFor(model)
	if err != nil {
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

func (c *Counter) encodingFor(model string) (*tiktoken.Tiktoken, error) {
	c.mu.RLock()
	enc, ok := c.cache[model]
	c.mu.RUnlock()
	if ok {
		return enc, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if enc, ok := c.cache[model]; ok {
		return enc, nil
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		// cl100k_base covers most modern chat models well enough for
		// an estimate.
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, err
		}
	}
	c.cache[model] = enc
	return enc, nil
}
