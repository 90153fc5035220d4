package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/linxi/wordchamp/internal/progress"
)

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context, profileID string) (*progress.Progress, error) {
	mastered, err := r.loadMastered(ctx, profileID)
	if err != nil {
		return nil, err
	}
	wrong, err := r.loadWrong(ctx, profileID)
	if err != nil {
		return nil, err
	}
	history, err := r.loadHistory(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return progress.Restore(mastered, wrong, history), nil
}

func (r *progressRepo) Save(ctx context.Context, profileID string, prog *progress.Progress) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM mastered_words WHERE profile_id = ?`, profileID); err != nil {
		return fmt.Errorf("clear mastered: %w", err)
	}
	for _, wordID := range prog.MasteredIDs() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO mastered_words (profile_id, word_id, mastered_at) VALUES (?, ?, ?)`,
			profileID, wordID, now); err != nil {
			return fmt.Errorf("insert mastered: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM wrong_words WHERE profile_id = ?`, profileID); err != nil {
		return fmt.Errorf("clear wrong words: %w", err)
	}
	for _, w := range prog.WrongWords() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO wrong_words (profile_id, word_id, consecutive_correct, added_at)
			 VALUES (?, ?, ?, ?)`,
			profileID, w.WordID, w.ConsecutiveCorrect, now); err != nil {
			return fmt.Errorf("insert wrong word: %w", err)
		}
	}

	return tx.Commit()
}

func (r *progressRepo) AppendHistory(ctx context.Context, profileID string, rec progress.HistoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO history (profile_id, ts, words_studied, wrong_count) VALUES (?, ?, ?, ?)`,
		profileID, rec.Timestamp, rec.WordsStudied, rec.WrongCount)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r *progressRepo) ClearMastered(ctx context.Context, profileID string, wordIDs []string) error {
	if len(wordIDs) == 0 {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM mastered_words WHERE profile_id = ?`, profileID)
		if err != nil {
			return fmt.Errorf("clear mastered: %w", err)
		}
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	defer tx.Rollback()

	for _, wordID := range wordIDs {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM mastered_words WHERE profile_id = ? AND word_id = ?`,
			profileID, wordID); err != nil {
			return fmt.Errorf("delete mastered word: %w", err)
		}
	}
	return tx.Commit()
}

func (r *progressRepo) loadMastered(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT word_id FROM mastered_words WHERE profile_id = ?`, profileID)
	if err != nil {
		return nil, fmt.Errorf("load mastered: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *progressRepo) loadWrong(ctx context.Context, profileID string) ([]progress.WrongWordRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT word_id, consecutive_correct FROM wrong_words
		 WHERE profile_id = ? ORDER BY added_at`, profileID)
	if err != nil {
		return nil, fmt.Errorf("load wrong words: %w", err)
	}
	defer rows.Close()

	var out []progress.WrongWordRecord
	for rows.Next() {
		var w progress.WrongWordRecord
		if err := rows.Scan(&w.WordID, &w.ConsecutiveCorrect); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *progressRepo) loadHistory(ctx context.Context, profileID string) ([]progress.HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ts, words_studied, wrong_count FROM history
		 WHERE profile_id = ? ORDER BY ts`, profileID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var out []progress.HistoryRecord
	for rows.Next() {
		var h progress.HistoryRecord
		if err := rows.Scan(&h.Timestamp, &h.WordsStudied, &h.WrongCount); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
