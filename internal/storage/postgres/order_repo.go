package postgres

import (
	"context"
	"time"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, client, product, quantity, specifications, delivery_date, notes, status, progress, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (id, user_id, client, product, quantity, specifications, delivery_date, notes, status, progress, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                   RETURNING ` + orderColumns
	row := r.storage.db.QueryRow(ctx, query,
		order.ID, order.UserID, order.Client, order.Product, order.Quantity,
		order.Specifications, order.DeliveryDate, order.Notes,
		order.Status, order.Progress, order.CreatedAt, order.UpdatedAt,
	)
	created, err := scanOrder(row)
	if err != nil {
		return nil, translateError(err)
	}
	return created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, userID, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2`
	order, err := scanOrder(r.storage.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error) {
	where := `WHERE user_id=$1`
	args := []any{userID}
	if filter.Status != "" {
		where += ` AND status=$2`
		args = append(args, filter.Status)
	}

	var total int
	if err := r.storage.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders `+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders ` + where +
		` ORDER BY created_at DESC LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.storage.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// Update applies the patch with check-then-act semantics: the row is loaded
// (scoped to the owner), merged in memory, then written back. Concurrent
// patches to the same row are not serialized.
func (r *orderRepository) Update(ctx context.Context, userID, id string, patch model.OrderPatch, now time.Time) (*model.Order, error) {
	existing, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing, now)

	const query = `UPDATE orders
                   SET status=$1, progress=$2, notes=$3, delivery_date=$4, updated_at=$5
                   WHERE id=$6 AND user_id=$7
                   RETURNING ` + orderColumns
	row := r.storage.db.QueryRow(ctx, query,
		existing.Status, existing.Progress, existing.Notes, existing.DeliveryDate, existing.UpdatedAt,
		id, userID,
	)
	updated, err := scanOrder(row)
	if err != nil {
		return nil, translateError(err)
	}
	return updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM orders WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.db.Exec(ctx, query, id, userID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.OrderStats, error) {
	const query = `SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status='pending'),
            COUNT(*) FILTER (WHERE status='in_production'),
            COUNT(*) FILTER (WHERE status='quality_check'),
            COUNT(*) FILTER (WHERE status='completed'),
            COUNT(*) FILTER (WHERE status='cancelled'),
            COALESCE(SUM(quantity), 0),
            COUNT(*) FILTER (WHERE created_at >= date_trunc('month', $2::timestamptz))
        FROM orders WHERE user_id=$1`

	var stats model.OrderStats
	err := r.storage.db.QueryRow(ctx, query, userID, now).Scan(
		&stats.Total, &stats.Pending, &stats.InProduction, &stats.QualityCheck,
		&stats.Completed, &stats.Cancelled, &stats.TotalQuantity, &stats.ThisMonth,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Client, &o.Product, &o.Quantity,
		&o.Specifications, &o.DeliveryDate, &o.Notes,
		&o.Status, &o.Progress, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
