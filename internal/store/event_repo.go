package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendHeartEvent(ctx context.Context, data HeartEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO heart_events (sequence, session_id, amount, reason, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.Amount, data.Reason, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save heart event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quiz_events (sequence, session_id, action, questions_total, score, duration_secs, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.Action, data.QuestionsTotal, data.Score, data.DurationSecs, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) HeartTotals(ctx context.Context) (map[string]int, int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT reason, SUM(amount) FROM heart_events GROUP BY reason`)
	if err != nil {
		return nil, 0, fmt.Errorf("query heart totals: %w", err)
	}
	defer rows.Close()

	byReason := make(map[string]int)
	total := 0
	for rows.Next() {
		var reason string
		var amount int
		if err := rows.Scan(&reason, &amount); err != nil {
			return nil, 0, fmt.Errorf("scan heart total: %w", err)
		}
		byReason[reason] = amount
		total += amount
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate heart totals: %w", err)
	}
	return byReason, total, nil
}

func (r *eventRepo) QueryQuizSummaries(ctx context.Context, limit int) ([]QuizSummaryRecord, error) {
	query := `SELECT session_id, questions_total, score, duration_secs, timestamp
	          FROM quiz_events WHERE action = 'end' ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz summaries: %w", err)
	}
	defer rows.Close()

	var records []QuizSummaryRecord
	for rows.Next() {
		var rec QuizSummaryRecord
		var ts int64
		if err := rows.Scan(&rec.SessionID, &rec.QuestionsTotal, &rec.Score, &rec.DurationSecs, &ts); err != nil {
			return nil, fmt.Errorf("scan quiz summary: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz summaries: %w", err)
	}

	// Attach hearts earned per session.
	for i := range records {
		var hearts sql.NullInt64
		err := r.db.QueryRowContext(ctx,
			`SELECT SUM(amount) FROM heart_events WHERE session_id = ?`,
			records[i].SessionID).Scan(&hearts)
		if err != nil {
			return nil, fmt.Errorf("count session hearts: %w", err)
		}
		records[i].HeartsEarned = int(hearts.Int64)
	}
	return records, nil
}
