// Package explain generates kid-friendly word explanations through an
// LLM provider, with a deterministic fallback when no provider is
// configured or the call fails.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/llm"
)

// Explanation is a four-part study card for one word.
type Explanation struct {
	WordID        string
	Meaning       string
	FunnySentence string
	Story         string
	Mnemonic      string
	FromFallback  bool
}

// Config tunes explanation generation.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		Timeout:     20 * time.Second,
	}
}

// Service generates explanations asynchronously. One request is
// in-flight at a time, a newer request supersedes the pending result.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	seq     int
	pending *Explanation
	ready   bool
}

// NewService creates a Service. A nil provider means every request
// resolves to the fallback card.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async generation for a word. The result is never an
// error: any failure resolves to the deterministic fallback.
func (s *Service) Request(ctx context.Context, word catalog.WordEntry) {
	s.mu.Lock()
	s.seq++
	id := s.seq
	s.pending = nil
	s.ready = false
	s.mu.Unlock()

	go func() {
		exp := s.generate(ctx, word)

		s.mu.Lock()
		defer s.mu.Unlock()
		// A newer request supersedes this result.
		if id != s.seq {
			return
		}
		s.pending = exp
		s.ready = true
	}()
}

// Consume returns the pending explanation once ready, clearing the
// slot. It returns (nil, false) while generation is still running.
func (s *Service) Consume() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	exp := s.pending
	s.pending = nil
	s.ready = false
	return exp, exp != nil
}

type explanationOutput struct {
	Meaning       string `json:"meaning"`
	FunnySentence string `json:"funnySentence"`
	Story         string `json:"story"`
	Mnemonic      string `json:"mnemonic"`
}

func (s *Service) generate(ctx context.Context, word catalog.WordEntry) *Explanation {
	if s.provider == nil {
		return Fallback(word)
	}

	ctx = llm.WithPurpose(ctx, "word_explanation")
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMessage(word)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Fallback(word)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Fallback(word)
	}

	return &Explanation{
		WordID:        word.ID,
		Meaning:       out.Meaning,
		FunnySentence: out.FunnySentence,
		Story:         out.Story,
		Mnemonic:      out.Mnemonic,
	}
}

// Fallback builds a deterministic card from catalog data alone. Every
// field is populated so the display never has holes.
func Fallback(word catalog.WordEntry) *Explanation {
	return &Explanation{
		WordID:        word.ID,
		Meaning:       fmt.Sprintf("%s 的意思是「%s」。", word.English, word.Translation),
		FunnySentence: fmt.Sprintf("Look! %s %s! 你能在身边找到它吗？", word.VisualCue, word.English),
		Story:         fmt.Sprintf("小小冒险家在第 %d 册的旅途中遇到了 %s，从此记住了「%s」。", word.Grade, word.English, word.Translation),
		Mnemonic:      fmt.Sprintf("把 %s 拆开读一读：%s，一个字母一个字母记住它。", word.English, spellOut(word.English)),
		FromFallback:  true,
	}
}

func spellOut(w string) string {
	out := ""
	for i, r := range w {
		if i > 0 {
			out += "-"
		}
		out += string(r)
	}
	return out
}
