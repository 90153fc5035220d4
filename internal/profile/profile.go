package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linxi/wordchamp/internal/store"
)

// Role distinguishes ordinary learners from the admin account.
type Role string

const (
	RoleLearner Role = "learner"
	RoleAdmin   Role = "admin"
)

// ErrInvalidCredential is returned for a bad username or password. The
// two cases are deliberately indistinguishable.
var ErrInvalidCredential = errors.New("invalid username or password")

// Profile is an authenticated learner account without the credential.
type Profile struct {
	ID        string
	Username  string
	Role      Role
	CreatedAt time.Time
}

// Service manages accounts on top of the profile repository.
type Service struct {
	repo     store.ProfileRepo
	verifier Verifier
}

// NewService creates a Service using bcrypt credentials.
func NewService(repo store.ProfileRepo) *Service {
	return &Service{repo: repo, verifier: BcryptVerifier{}}
}

// NewServiceWithVerifier creates a Service with a custom credential
// verifier, used by tests to avoid bcrypt cost.
func NewServiceWithVerifier(repo store.ProfileRepo, v Verifier) *Service {
	return &Service{repo: repo, verifier: v}
}

// Register creates a new account. The first account of a fresh database
// is a natural admin, callers decide the role.
func (s *Service) Register(ctx context.Context, username, password string, role Role) (*Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username must not be empty")
	}
	if len(username) > 24 {
		return nil, fmt.Errorf("username must be at most 24 characters")
	}
	if len(password) < 4 {
		return nil, fmt.Errorf("password must be at least 4 characters")
	}

	hash, err := s.verifier.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	rec := store.Profile{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         string(role),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return fromRecord(rec), nil
}

// Login authenticates a username and password pair.
func (s *Service) Login(ctx context.Context, username, password string) (*Profile, error) {
	rec, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrProfileNotFound) {
		return nil, ErrInvalidCredential
	}
	if err != nil {
		return nil, err
	}

	if err := s.verifier.Compare(rec.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredential
	}

	return fromRecord(*rec), nil
}

// List returns all accounts ordered by creation time.
func (s *Service) List(ctx context.Context) ([]Profile, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Profile, len(recs))
	for i, rec := range recs {
		out[i] = *fromRecord(rec)
	}
	return out, nil
}

// Delete removes an account and all of its progress.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// HasAny reports whether any account exists yet.
func (s *Service) HasAny(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	return n > 0, err
}

func fromRecord(rec store.Profile) *Profile {
	return &Profile{
		ID:        rec.ID,
		Username:  rec.Username,
		Role:      Role(rec.Role),
		CreatedAt: rec.CreatedAt,
	}
}
