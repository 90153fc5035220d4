// Package shared holds the state threaded through all screens: open
// repositories, services, and the signed-in learner.
package shared

import (
	"context"

	"github.com/linxi/wordchamp/internal/explain"
	"github.com/linxi/wordchamp/internal/profile"
	"github.com/linxi/wordchamp/internal/progress"
	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/linxi/wordchamp/internal/store"
)

// State is shared by every screen. Active and Progress are nil until a
// learner signs in.
type State struct {
	Store     *store.Store
	Profiles  *profile.Service
	Explainer *explain.Service
	Builder   *quiz.Builder

	Active   *profile.Profile
	Progress *progress.Progress
}

// SignIn installs the learner and loads their progress.
func (s *State) SignIn(ctx context.Context, p *profile.Profile) error {
	prog, err := s.Store.ProgressRepo().Load(ctx, p.ID)
	if err != nil {
		return err
	}
	s.Active = p
	s.Progress = prog
	return nil
}

// SignOut clears the active learner.
func (s *State) SignOut() {
	s.Active = nil
	s.Progress = nil
}

// SaveProgress writes the mastered set and wrong-word book to disk.
func (s *State) SaveProgress(ctx context.Context) error {
	if s.Active == nil || s.Progress == nil {
		return nil
	}
	return s.Store.ProgressRepo().Save(ctx, s.Active.ID, s.Progress)
}

// AppendHistory persists one finished session record.
func (s *State) AppendHistory(ctx context.Context, rec progress.HistoryRecord) error {
	if s.Active == nil {
		return nil
	}
	return s.Store.ProgressRepo().AppendHistory(ctx, s.Active.ID, rec)
}

// MasteredCount returns the header star count, 0 when signed out.
func (s *State) MasteredCount() int {
	if s.Progress == nil {
		return 0
	}
	return s.Progress.MasteredCount()
}

// WrongCount returns the wrong-book backlog, 0 when signed out.
func (s *State) WrongCount() int {
	if s.Progress == nil {
		return 0
	}
	return s.Progress.WrongCount()
}
