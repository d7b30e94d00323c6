package tokencount

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountNonEmptyText(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	n := c.Count("gpt-4", "The quick brown fox jumps over the lazy dog.")
	assert.Greater(t, n, 0)
}

func TestCountUnknownModelFallsBack(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	// Unknown model names still produce an estimate via cl100k_base.
	n := c.Count("llama3:latest", "hello world, this is a prompt")
	assert.Greater(t, n, 0)
}

func TestCountEmptyText(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	assert.Equal(t, 0, c.Count("gpt-4", ""))
}

func TestCounterConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Count("llama3:latest", "concurrent estimation call")
		}()
	}
	wg.Wait()
}
