// Copyright (c) 2026 CyberSage. All rights reserved.

package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybersage/api/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const questionColumns = `id, question, options, answer, description, difficulty, role, category, link, createdat, updatedat`

func (repository *PostgresRepository) ListByRole(context context.Context, role string) ([]Question, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM quiz.question
		WHERE role = $1
		ORDER BY createdat`, questionColumns)

	rows, err := repository.pool.Query(context, query, role)
	if err != nil {
		return nil, fmt.Errorf("postgres_quiz_store_list_by_role_failed: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]Question, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM quiz.question
		ORDER BY createdat`, questionColumns)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_quiz_store_list_all_failed: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Question, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM quiz.question
		WHERE id = $1`, questionColumns)

	question := &Question{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&question.ID,
		&question.Question,
		&question.Options,
		&question.Answer,
		&question.Description,
		&question.Difficulty,
		&question.Role,
		&question.Category,
		&question.Link,
		&question.CreatedAt,
		&question.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Quiz question", "")
	}

	return question, nil
}

func (repository *PostgresRepository) Create(context context.Context, question *Question) error {
	const query = `
		INSERT INTO quiz.question (
			id, question, options, answer, description, difficulty, role, category, link, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	if question.CreatedAt.IsZero() {
		question.CreatedAt = now
	}
	question.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		question.ID,
		question.Question,
		question.Options,
		question.Answer,
		question.Description,
		question.Difficulty,
		question.Role,
		question.Category,
		question.Link,
		question.CreatedAt,
		question.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_quiz_store_create_failed: %w", err)
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, question *Question) error {
	const query = `
		UPDATE quiz.question
		SET question = $2, options = $3, answer = $4, description = $5,
		    difficulty = $6, role = $7, category = $8, link = $9, updatedat = $10
		WHERE id = $1`

	question.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		question.ID,
		question.Question,
		question.Options,
		question.Answer,
		question.Description,
		question.Difficulty,
		question.Role,
		question.Category,
		question.Link,
		question.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_quiz_store_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Quiz question", "")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM quiz.question WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_quiz_store_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Quiz", "")
	}

	return nil
}

// scanQuestions drains a row set into hydrated entities.
func scanQuestions(rows pgx.Rows) ([]Question, error) {
	questions := make([]Question, 0)

	for rows.Next() {
		var question Question
		if err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Options,
			&question.Answer,
			&question.Description,
			&question.Difficulty,
			&question.Role,
			&question.Category,
			&question.Link,
			&question.CreatedAt,
			&question.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_quiz_store_scan_failed: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_quiz_store_rows_failed: %w", err)
	}

	return questions, nil
}
