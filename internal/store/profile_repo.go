package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Create(ctx context.Context, p Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, username, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Username, p.PasswordHash, p.Role, p.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *profileRepo) GetByUsername(ctx context.Context, username string) (*Profile, error) {
	var p Profile
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role, created_at
		 FROM profiles WHERE username = ?`, username).
		Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Role, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) List(ctx context.Context) ([]Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password_hash, role, created_at
		 FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Role, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *profileRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}
