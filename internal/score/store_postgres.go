// Copyright (c) 2026 CyberSage. All rights reserved.

package score

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybersage/api/internal/platform/dberr"
)

// PostgresStore persists scores in the quiz.score table, one row per account.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Get returns the score row for one account, or (nil, nil) when the account
// has never recorded a score.
func (store *PostgresStore) Get(context context.Context, userID string) (*Entry, error) {
	const query = `
		SELECT userid, score
		FROM quiz.score
		WHERE userid = $1`

	var entry Entry
	err := store.pool.QueryRow(context, query, userID).Scan(&entry.UserID, &entry.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "Score", "")
	}

	return &entry, nil
}

// Add atomically increments an account's score by delta, inserting the row
// on first submission, and returns the new total.
func (store *PostgresStore) Add(context context.Context, userID string, delta int) (int, error) {
	const query = `
		INSERT INTO quiz.score (userid, score)
		VALUES ($1, $2)
		ON CONFLICT (userid) DO UPDATE
		SET score = quiz.score.score + EXCLUDED.score,
		    updatedat = now()
		RETURNING score`

	var total int
	if err := store.pool.QueryRow(context, query, userID, delta).Scan(&total); err != nil {
		return 0, fmt.Errorf("incrementing score: %w", dberr.Wrap(err, "Score", ""))
	}

	return total, nil
}

// ListByJobRole returns the scores of every standard account sharing the
// given job role, highest score first.
func (store *PostgresStore) ListByJobRole(context context.Context, jobRole string) ([]JobRoleEntry, error) {
	const query = `
		SELECT a.id, a.email, COALESCE(s.score, 0)
		FROM users.account a
		LEFT JOIN quiz.score s ON s.userid = a.id
		WHERE a.jobrole = $1
		ORDER BY COALESCE(s.score, 0) DESC, a.email`

	rows, err := store.pool.Query(context, query, jobRole)
	if err != nil {
		return nil, dberr.Wrap(err, "Score", "")
	}
	defer rows.Close()

	var entries []JobRoleEntry
	for rows.Next() {
		var entry JobRoleEntry
		if err := rows.Scan(&entry.UserID, &entry.Email, &entry.Score); err != nil {
			return nil, dberr.Wrap(err, "Score", "")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Score", "")
	}

	return entries, nil
}
