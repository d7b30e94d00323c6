package usecase

import (
	"sync"

	"github.com/hireloop/cv-screener/internal/config"
	"github.com/hireloop/cv-screener/internal/domain"
)

// validModelResponse is a well-formed model reply used across tests.
const validModelResponse = `{
	"match_score": 0.8,
	"strengths": ["Solid Python background"],
	"weaknesses": ["No cloud experience"],
	"key_skills": ["Python", "Imaginary Framework X"],
	"recommendation": "Interview"
}`

// fakeClient scripts model behavior per call. fn receives the 1-based call
// number and the rendered user prompt.
type fakeClient struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, userPrompt string) (string, error)
}

func (f *fakeClient) Chat(_ domain.Context, _ string, userPrompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()
	return f.fn(call, userPrompt)
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testConfig() config.Config {
	return config.Config{
		AppEnv:             "test",
		ModelName:          "stub",
		MaxTextLength:      4000,
		BatchChunkSize:     5,
		MaxAttempts:        3,
		ShortlistThreshold: 0.8,
	}
}

func newTestAnalyzer(client domain.ModelClient) *Analyzer {
	return NewAnalyzer(testConfig(), config.DefaultProfile(), client)
}
