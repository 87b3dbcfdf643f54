package dispatch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/chat-notifier/internal/model"
)

var (
	ErrDispatchNotFound  = errors.New("dispatch not found")
	ErrNoDispatchesFound = errors.New("no dispatches found")
)

// Repository provides methods to interact with the dispatches table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new dispatch repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// SaveDispatch inserts or updates a dispatch record. The id is chosen by the
// caller so the queued, sent and failed states of one request land on the
// same row.
func (r *Repository) SaveDispatch(ctx context.Context, d model.Dispatch) error {
	query := `
		INSERT INTO dispatches (
		    id, chat_id, sender_id, group_name, status, recipients, success_count, failure_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    recipients = EXCLUDED.recipients,
		    success_count = EXCLUDED.success_count,
		    failure_count = EXCLUDED.failure_count,
		    updated_at = now();
    `

	_, err := r.db.ExecContext(
		ctx, query, d.ID, d.ChatID, d.SenderID, d.GroupName, d.Status, d.Recipients, d.SuccessCount, d.FailureCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save dispatch: %w", err)
	}

	return nil
}

// GetDispatchStatusByID retrieves the status of a dispatch by its ID.
func (r *Repository) GetDispatchStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM dispatches
		WHERE id = $1;
    `

	var status string
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDispatchNotFound
		}

		return "", fmt.Errorf("failed to get dispatch status: %w", err)
	}

	return status, nil
}

// GetRecentDispatches retrieves the most recent dispatches, newest first.
func (r *Repository) GetRecentDispatches(ctx context.Context, limit int) ([]model.Dispatch, error) {
	query := `
		SELECT id, chat_id, sender_id, group_name, status, recipients, success_count, failure_count, created_at, updated_at
		FROM dispatches
		ORDER BY created_at DESC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent dispatches: %w", err)
	}
	defer rows.Close()

	var dispatches []model.Dispatch
	for rows.Next() {
		var d model.Dispatch
		if err := rows.Scan(
			&d.ID, &d.ChatID, &d.SenderID, &d.GroupName, &d.Status,
			&d.Recipients, &d.SuccessCount, &d.FailureCount, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}

		dispatches = append(dispatches, d)
	}

	if len(dispatches) == 0 {
		return nil, ErrNoDispatchesFound
	}

	return dispatches, nil
}
