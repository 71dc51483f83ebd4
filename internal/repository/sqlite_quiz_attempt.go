package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/domain"
)

// SQLiteQuizAttemptRepo implements QuizAttemptRepo using a SQLite database.
type SQLiteQuizAttemptRepo struct {
	db db.DBTX
}

func NewSQLiteQuizAttemptRepo(conn db.DBTX) *SQLiteQuizAttemptRepo {
	return &SQLiteQuizAttemptRepo{db: conn}
}

func (r *SQLiteQuizAttemptRepo) Create(ctx context.Context, a *domain.QuizAttempt) error {
	query := `INSERT INTO quiz_attempts (id, quiz_id, field, difficulty, correct, total, score,
		points_awarded, timed_out, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.QuizID,
		a.Field,
		string(a.Difficulty),
		a.Correct,
		a.Total,
		a.Score,
		a.PointsAwarded,
		boolToInt(a.TimedOut),
		a.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting quiz attempt: %w", err)
	}
	return nil
}

// ListRecent returns up to limit attempts, newest first. A non-positive limit
// returns all attempts.
func (r *SQLiteQuizAttemptRepo) ListRecent(ctx context.Context, limit int) ([]*domain.QuizAttempt, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, quiz_id, field, difficulty, correct, total, score, points_awarded, timed_out, finished_at
		FROM quiz_attempts ORDER BY finished_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing quiz attempts: %w", err)
	}
	defer rows.Close()
	return scanAttempts(rows)
}

func scanAttempts(rows *sql.Rows) ([]*domain.QuizAttempt, error) {
	var attempts []*domain.QuizAttempt
	for rows.Next() {
		var a domain.QuizAttempt
		var difficulty, finishedAtStr string
		var timedOut int

		err := rows.Scan(
			&a.ID, &a.QuizID, &a.Field, &difficulty, &a.Correct, &a.Total, &a.Score,
			&a.PointsAwarded, &timedOut, &finishedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning quiz attempt row: %w", err)
		}

		a.Difficulty = domain.Difficulty(difficulty)
		a.TimedOut = intToBool(timedOut)
		a.FinishedAt, err = time.Parse(time.RFC3339, finishedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
		attempts = append(attempts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quiz attempts: %w", err)
	}
	return attempts, nil
}
