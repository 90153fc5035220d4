package explain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/llm"
)

func testWord() catalog.WordEntry {
	return catalog.WordEntry{
		ID:          "1-1",
		English:     "apple",
		Translation: "苹果",
		Phonetic:    "/ˈæpl/",
		Grade:       1,
		Unit:        1,
		VisualCue:   "🍎",
	}
}

func testConfig() Config {
	return Config{MaxTokens: 256, Temperature: 0.5, Timeout: time.Second}
}

func waitConsume(t *testing.T, svc *Service) *Explanation {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if exp, ok := svc.Consume(); ok {
			return exp
		}
		select {
		case <-deadline:
			t.Fatal("no explanation became ready")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRequestDeliversProviderResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"meaning": "苹果是一种水果。",
			"funnySentence": "The apple ate my homework! 苹果吃了我的作业！",
			"story": "小明有一个会说话的苹果。",
			"mnemonic": "a-p-p-l-e，两个p手拉手。"
		}`),
	})
	svc := NewService(mock, testConfig())

	svc.Request(context.Background(), testWord())
	exp := waitConsume(t, svc)

	assert.Equal(t, "1-1", exp.WordID)
	assert.Equal(t, "苹果是一种水果。", exp.Meaning)
	assert.False(t, exp.FromFallback)
	require.Equal(t, 1, mock.CallCount())
	assert.NotNil(t, mock.Calls[0].Schema)
}

func TestProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, testConfig())

	svc.Request(context.Background(), testWord())
	exp := waitConsume(t, svc)

	assert.True(t, exp.FromFallback)
	assert.NotEmpty(t, exp.Meaning)
	assert.NotEmpty(t, exp.FunnySentence)
	assert.NotEmpty(t, exp.Story)
	assert.NotEmpty(t, exp.Mnemonic)
}

func TestNilProviderFallsBack(t *testing.T) {
	svc := NewService(nil, testConfig())

	svc.Request(context.Background(), testWord())
	exp := waitConsume(t, svc)

	assert.True(t, exp.FromFallback)
	assert.Contains(t, exp.Meaning, "apple")
	assert.Contains(t, exp.Meaning, "苹果")
}

func TestConsumeClearsSlot(t *testing.T) {
	svc := NewService(nil, testConfig())

	svc.Request(context.Background(), testWord())
	waitConsume(t, svc)

	_, ok := svc.Consume()
	assert.False(t, ok)
}

func TestConsumeNotReady(t *testing.T) {
	svc := NewService(nil, testConfig())
	_, ok := svc.Consume()
	assert.False(t, ok)
}

func TestFallbackPopulatesEveryField(t *testing.T) {
	exp := Fallback(testWord())
	assert.True(t, exp.FromFallback)
	assert.NotEmpty(t, exp.Meaning)
	assert.NotEmpty(t, exp.FunnySentence)
	assert.NotEmpty(t, exp.Story)
	assert.NotEmpty(t, exp.Mnemonic)
	assert.Contains(t, exp.Mnemonic, "a-p-p-l-e")
}
