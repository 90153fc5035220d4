package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type llmLogRepo struct {
	db *sql.DB
}

func (r *llmLogRepo) Append(ctx context.Context, rec LLMCallRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (ts, model, purpose, input_tokens, output_tokens, latency_ms, success,
		  error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now(), rec.Model, rec.Purpose, rec.InputTokens, rec.OutputTokens,
		rec.LatencyMs, rec.Success, rec.ErrorMessage, rec.RequestBody, rec.ResponseBody)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *llmLogRepo) List(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	query := `SELECT id, ts, model, purpose, input_tokens, output_tokens,
	                 latency_ms, success, error_message, request_body, response_body
	          FROM llm_events WHERE 1=1`
	var args []any

	if !opts.From.IsZero() {
		query += " AND ts >= ?"
		args = append(args, opts.From)
	}
	if !opts.To.IsZero() {
		query += " AND ts <= ?"
		args = append(args, opts.To)
	}
	query += " ORDER BY id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ev)
	}
	return out, rows.Err()
}

func (r *llmLogRepo) Get(ctx context.Context, id int64) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, ts, model, purpose, input_tokens, output_tokens,
		        latency_ms, success, error_message, request_body, response_body
		 FROM llm_events WHERE id = ?`, id)

	ev, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	return ev, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMEvent, error) {
	var ev LLMEvent
	err := row.Scan(&ev.ID, &ev.Timestamp, &ev.Model, &ev.Purpose,
		&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success,
		&ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
