package postgres

import (
	"context"
	"time"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
)

type complianceRepository struct {
	storage *Storage
}

const complianceColumns = `id, user_id, title, type, description, due_date, priority, status, documents, created_at, updated_at`

func (r *complianceRepository) Create(ctx context.Context, item *model.ComplianceItem) (*model.ComplianceItem, error) {
	const query = `INSERT INTO compliance_items (user_id, title, type, description, due_date, priority, status, documents, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING ` + complianceColumns
	row := r.storage.db.QueryRow(ctx, query,
		item.UserID, item.Title, item.Type, item.Description, item.DueDate,
		item.Priority, item.Status, item.Documents, item.CreatedAt, item.UpdatedAt,
	)
	created, err := scanComplianceItem(row)
	if err != nil {
		return nil, translateError(err)
	}
	return created, nil
}

func (r *complianceRepository) GetByID(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error) {
	const query = `SELECT ` + complianceColumns + ` FROM compliance_items WHERE id=$1 AND user_id=$2`
	item, err := scanComplianceItem(r.storage.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, translateError(err)
	}
	return item, nil
}

func (r *complianceRepository) List(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error) {
	where := `WHERE user_id=$1`
	args := []any{userID}
	for _, f := range []struct {
		column string
		value  string
	}{
		{"type", filter.Type},
		{"status", filter.Status},
		{"priority", filter.Priority},
	} {
		if f.value != "" {
			where += ` AND ` + f.column + `=` + placeholder(len(args)+1)
			args = append(args, f.value)
		}
	}

	var total int
	if err := r.storage.db.QueryRow(ctx, `SELECT COUNT(*) FROM compliance_items `+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	query := `SELECT ` + complianceColumns + ` FROM compliance_items ` + where +
		` ORDER BY created_at DESC LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.storage.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var result []model.ComplianceItem
	for rows.Next() {
		item, err := scanComplianceItem(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *complianceRepository) Update(ctx context.Context, userID string, id int64, patch model.CompliancePatch, now time.Time) (*model.ComplianceItem, error) {
	existing, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing, now)

	const query = `UPDATE compliance_items
                   SET status=$1, priority=$2, description=$3, due_date=$4, documents=$5, updated_at=$6
                   WHERE id=$7 AND user_id=$8
                   RETURNING ` + complianceColumns
	row := r.storage.db.QueryRow(ctx, query,
		existing.Status, existing.Priority, existing.Description, existing.DueDate,
		existing.Documents, existing.UpdatedAt, id, userID,
	)
	updated, err := scanComplianceItem(row)
	if err != nil {
		return nil, translateError(err)
	}
	return updated, nil
}

func (r *complianceRepository) Delete(ctx context.Context, userID string, id int64) error {
	const query = `DELETE FROM compliance_items WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.db.Exec(ctx, query, id, userID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *complianceRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.ComplianceStats, error) {
	const query = `SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status='pending'),
            COUNT(*) FILTER (WHERE status='in_progress'),
            COUNT(*) FILTER (WHERE status='completed'),
            COUNT(*) FILTER (WHERE status <> 'completed' AND due_date < $2::timestamptz),
            COUNT(*) FILTER (WHERE type='certification'),
            COUNT(*) FILTER (WHERE type='audit'),
            COUNT(*) FILTER (WHERE type='report'),
            COUNT(*) FILTER (WHERE type='alert'),
            COUNT(*) FILTER (WHERE priority='low'),
            COUNT(*) FILTER (WHERE priority='medium'),
            COUNT(*) FILTER (WHERE priority='high'),
            COUNT(*) FILTER (WHERE priority='critical'),
            COUNT(*) FILTER (WHERE created_at >= date_trunc('month', $2::timestamptz))
        FROM compliance_items WHERE user_id=$1`

	stats := model.ComplianceStats{
		ByType:     make(map[string]int, 4),
		ByPriority: make(map[string]int, 4),
	}
	var certification, audit, report, alert, low, medium, high, critical int
	err := r.storage.db.QueryRow(ctx, query, userID, now).Scan(
		&stats.Total, &stats.Pending, &stats.InProgress, &stats.Completed, &stats.Overdue,
		&certification, &audit, &report, &alert,
		&low, &medium, &high, &critical,
		&stats.ThisMonth,
	)
	if err != nil {
		return nil, translateError(err)
	}

	stats.ByType["certification"] = certification
	stats.ByType["audit"] = audit
	stats.ByType["report"] = report
	stats.ByType["alert"] = alert
	stats.ByPriority["low"] = low
	stats.ByPriority["medium"] = medium
	stats.ByPriority["high"] = high
	stats.ByPriority["critical"] = critical
	return &stats, nil
}

func (r *complianceRepository) Upcoming(ctx context.Context, userID string, until time.Time) ([]model.ComplianceItem, error) {
	const query = `SELECT ` + complianceColumns + ` FROM compliance_items
                   WHERE user_id=$1 AND status <> 'completed' AND due_date <= $2
                   ORDER BY due_date ASC`
	rows, err := r.storage.db.Query(ctx, query, userID, until)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var result []model.ComplianceItem
	for rows.Next() {
		item, err := scanComplianceItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanComplianceItem(row rowScanner) (*model.ComplianceItem, error) {
	var c model.ComplianceItem
	err := row.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Type, &c.Description, &c.DueDate,
		&c.Priority, &c.Status, &c.Documents, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
