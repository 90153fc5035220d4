package store

import (
	"context"
	"errors"
	"time"

	"github.com/linxi/wordchamp/internal/progress"
)

// ErrProfileExists is returned when a username is already taken.
var ErrProfileExists = errors.New("profile already exists")

// ErrProfileNotFound is returned when no profile matches.
var ErrProfileNotFound = errors.New("profile not found")

// ErrEventNotFound is returned when no log event matches.
var ErrEventNotFound = errors.New("event not found")

// Profile is a stored learner account. PasswordHash is a bcrypt hash,
// never the plaintext credential.
type Profile struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string // "learner" or "admin"
	CreatedAt    time.Time
}

// ProfileRepo manages learner accounts.
type ProfileRepo interface {
	// Create stores a new profile. Returns ErrProfileExists when the
	// username is taken.
	Create(ctx context.Context, p Profile) error

	// GetByUsername returns the profile or ErrProfileNotFound.
	GetByUsername(ctx context.Context, username string) (*Profile, error)

	// List returns all profiles ordered by creation time.
	List(ctx context.Context) ([]Profile, error)

	// Delete removes a profile and all of its progress.
	Delete(ctx context.Context, id string) error

	// Count returns the number of profiles.
	Count(ctx context.Context) (int, error)
}

// ProgressRepo persists per-profile learning state.
type ProgressRepo interface {
	// Load restores a profile's progress, empty when none is stored.
	Load(ctx context.Context, profileID string) (*progress.Progress, error)

	// Save replaces the stored mastered set and wrong-word book with the
	// given state. History is untouched, use AppendHistory for that.
	Save(ctx context.Context, profileID string, prog *progress.Progress) error

	// AppendHistory records one finished session.
	AppendHistory(ctx context.Context, profileID string, rec progress.HistoryRecord) error

	// ClearMastered deletes the given mastered word IDs. An empty slice
	// clears the whole mastered set.
	ClearMastered(ctx context.Context, profileID string, wordIDs []string) error
}

// LLMCallRecord captures one LLM API call for the event log.
type LLMCallRecord struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLMCallRecord.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMCallRecord
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// LLMLogRepo provides append and query access to the LLM event log.
type LLMLogRepo interface {
	// Append records an LLM API call.
	Append(ctx context.Context, rec LLMCallRecord) error

	// List returns events newest first.
	List(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// Get returns a single event or ErrEventNotFound.
	Get(ctx context.Context, id int64) (*LLMEvent, error)
}
