package postgres

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

type notificationRepository struct {
	storage *Storage
}

const notificationColumns = `id, user_id, type, recipient, message, status, order_id, compliance_id, message_sid, created_at`

func (r *notificationRepository) Append(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (id, user_id, type, recipient, message, status, order_id, compliance_id, message_sid, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING ` + notificationColumns
	row := r.storage.db.QueryRow(ctx, query,
		n.ID, n.UserID, n.Type, n.Recipient, n.Message, n.Status,
		n.OrderID, n.ComplianceID, n.MessageSID, n.CreatedAt,
	)
	created, err := scanNotification(row)
	if err != nil {
		return nil, translateError(err)
	}
	return created, nil
}

func (r *notificationRepository) List(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error) {
	where := `WHERE user_id=$1`
	args := []any{userID}
	if filter.Type != "" {
		where += ` AND type=` + placeholder(len(args)+1)
		args = append(args, filter.Type)
	}
	if filter.Status != "" {
		where += ` AND status=` + placeholder(len(args)+1)
		args = append(args, filter.Status)
	}

	var total int
	if err := r.storage.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications `+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications ` + where +
		` ORDER BY created_at DESC LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.storage.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *notificationRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.NotificationStats, error) {
	const query = `SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status='sent'),
            COUNT(*) FILTER (WHERE status='failed'),
            COUNT(*) FILTER (WHERE created_at >= date_trunc('month', $2::timestamptz))
        FROM notifications WHERE user_id=$1`

	stats := model.NotificationStats{ByType: make(map[string]int)}
	err := r.storage.db.QueryRow(ctx, query, userID, now).Scan(
		&stats.Total, &stats.Sent, &stats.Failed, &stats.ThisMonth,
	)
	if err != nil {
		return nil, translateError(err)
	}

	const byTypeQuery = `SELECT type, COUNT(*) FROM notifications WHERE user_id=$1 GROUP BY type`
	rows, err := r.storage.db.Query(ctx, byTypeQuery, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		stats.ByType[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func scanNotification(row rowScanner) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(
		&n.ID, &n.UserID, &n.Type, &n.Recipient, &n.Message, &n.Status,
		&n.OrderID, &n.ComplianceID, &n.MessageSID, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
