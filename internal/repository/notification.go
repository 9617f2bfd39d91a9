package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	metadata, err := json.Marshal(n.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `INSERT INTO notifications
			  (id, user_id, type, title, message, category, priority, metadata, action_url, read, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.Category, n.Priority,
		metadata, n.ActionURL, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, type, title, message, category, priority, metadata, action_url, read, created_at
			  FROM notifications
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var (
			n        domain.Notification
			metadata []byte
		)
		if err = rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Category,
			&n.Priority, &metadata, &n.ActionURL, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if len(metadata) > 0 {
			if err = json.Unmarshal(metadata, &n.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	query := `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("notification rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}
