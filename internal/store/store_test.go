package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxi/wordchamp/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testProfile(username string) Profile {
	return Profile{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         "learner",
		CreatedAt:    time.Now(),
	}
}

func TestProfileCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	p := testProfile("xiaoming")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByUsername(ctx, "xiaoming")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "learner", got.Role)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileDuplicateUsername(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	require.NoError(t, repo.Create(ctx, testProfile("mei")))
	err := repo.Create(ctx, testProfile("mei"))
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestProfileListAndCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, testProfile("a")))
	require.NoError(t, repo.Create(ctx, testProfile("b")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestProfileDeleteCascadesProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testProfile("temp")
	require.NoError(t, s.ProfileRepo().Create(ctx, p))

	prog := progress.New()
	prog.RecordCorrect("1-1")
	require.NoError(t, s.ProgressRepo().Save(ctx, p.ID, prog))

	require.NoError(t, s.ProfileRepo().Delete(ctx, p.ID))

	loaded, err := s.ProgressRepo().Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, loaded.MasteredCount())
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testProfile("roundtrip")
	require.NoError(t, s.ProfileRepo().Create(ctx, p))

	prog := progress.New()
	prog.RecordCorrect("1-1")
	prog.RecordCorrect("1-2")
	prog.RecordIncorrect("1-3")
	prog.RecordIncorrect("1-4")
	prog.RecordCorrect("1-4")

	repo := s.ProgressRepo()
	require.NoError(t, repo.Save(ctx, p.ID, prog))
	require.NoError(t, repo.AppendHistory(ctx, p.ID, progress.HistoryRecord{
		Timestamp:    time.Now(),
		WordsStudied: 5,
		WrongCount:   2,
	}))

	loaded, err := repo.Load(ctx, p.ID)
	require.NoError(t, err)

	assert.True(t, loaded.IsMastered("1-1"))
	assert.True(t, loaded.IsMastered("1-2"))
	assert.Equal(t, 2, loaded.WrongCount())

	var counters []int
	for _, w := range loaded.WrongWords() {
		counters = append(counters, w.ConsecutiveCorrect)
	}
	assert.ElementsMatch(t, []int{0, 1}, counters)

	require.Len(t, loaded.History(), 1)
	assert.Equal(t, 5, loaded.History()[0].WordsStudied)
}

func TestProgressLoadEmptyProfile(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.ProgressRepo().Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Zero(t, loaded.MasteredCount())
	assert.Zero(t, loaded.WrongCount())
	assert.Empty(t, loaded.History())
}

func TestProgressSaveReplacesState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testProfile("replace")
	require.NoError(t, s.ProfileRepo().Create(ctx, p))
	repo := s.ProgressRepo()

	prog := progress.New()
	prog.RecordCorrect("1-1")
	prog.RecordIncorrect("1-2")
	require.NoError(t, repo.Save(ctx, p.ID, prog))

	// Retire the wrong word and save again. The old row must not linger.
	for range 3 {
		prog.RecordCorrect("1-2")
	}
	require.NoError(t, repo.Save(ctx, p.ID, prog))

	loaded, err := repo.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, loaded.WrongCount())
	assert.True(t, loaded.IsMastered("1-2"))
}

func TestClearMastered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testProfile("clear")
	require.NoError(t, s.ProfileRepo().Create(ctx, p))
	repo := s.ProgressRepo()

	prog := progress.New()
	prog.RecordCorrect("1-1")
	prog.RecordCorrect("1-2")
	prog.RecordCorrect("2-1")
	require.NoError(t, repo.Save(ctx, p.ID, prog))

	require.NoError(t, repo.ClearMastered(ctx, p.ID, []string{"1-1", "1-2"}))

	loaded, err := repo.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, loaded.IsMastered("1-1"))
	assert.True(t, loaded.IsMastered("2-1"))

	require.NoError(t, repo.ClearMastered(ctx, p.ID, nil))
	loaded, err = repo.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, loaded.MasteredCount())
}

func TestLLMLogAppendListGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.LLMLogRepo()

	require.NoError(t, repo.Append(ctx, LLMCallRecord{
		Model:        "gemini-2.0-flash",
		Purpose:      "word_explanation",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    340,
		Success:      true,
		ResponseBody: `{"meaning":"苹果"}`,
	}))
	require.NoError(t, repo.Append(ctx, LLMCallRecord{
		Model:        "gemini-2.0-flash",
		Purpose:      "word_explanation",
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	events, err := repo.List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.False(t, events[0].Success)
	assert.True(t, events[1].Success)

	got, err := repo.Get(ctx, events[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.InputTokens)

	_, err = repo.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestLLMLogListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.LLMLogRepo()

	for range 5 {
		require.NoError(t, repo.Append(ctx, LLMCallRecord{Model: "mock", Purpose: "test", Success: true}))
	}

	events, err := repo.List(ctx, QueryOpts{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
