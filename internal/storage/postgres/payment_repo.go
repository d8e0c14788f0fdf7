package postgres

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
)

type paymentRepository struct {
	storage *Storage
}

const paymentColumns = `id, user_id, order_id, amount, currency, receipt, status, razorpay_order_id, razorpay_payment_id, payment_method, refund_id, refund_amount, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	const query = `INSERT INTO payments (id, user_id, order_id, amount, currency, receipt, status, razorpay_order_id, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING ` + paymentColumns
	row := r.storage.db.QueryRow(ctx, query,
		payment.ID, payment.UserID, payment.OrderID, payment.Amount, payment.Currency,
		payment.Receipt, payment.Status, payment.RazorpayOrderID, payment.CreatedAt, payment.UpdatedAt,
	)
	created, err := scanPayment(row)
	if err != nil {
		return nil, translateError(err)
	}
	return created, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, userID, id string) (*model.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1 AND user_id=$2`
	payment, err := scanPayment(r.storage.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}

// GetByProviderOrderID is unscoped: the webhook caller carries no identity
// and correlates purely by the provider's order id.
func (r *paymentRepository) GetByProviderOrderID(ctx context.Context, razorpayOrderID string) (*model.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE razorpay_order_id=$1`
	payment, err := scanPayment(r.storage.db.QueryRow(ctx, query, razorpayOrderID))
	if err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}

func (r *paymentRepository) GetByProviderPaymentID(ctx context.Context, userID, razorpayPaymentID string) (*model.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE razorpay_payment_id=$1 AND user_id=$2`
	payment, err := scanPayment(r.storage.db.QueryRow(ctx, query, razorpayPaymentID, userID))
	if err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}

func (r *paymentRepository) List(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error) {
	where := `WHERE user_id=$1`
	args := []any{userID}
	if filter.Status != "" {
		where += ` AND status=$2`
		args = append(args, filter.Status)
	}

	var total int
	if err := r.storage.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments `+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err)
	}

	query := `SELECT ` + paymentColumns + ` FROM payments ` + where +
		` ORDER BY created_at DESC LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.storage.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *paymentRepository) Update(ctx context.Context, id string, update repository.PaymentUpdate, now time.Time) (*model.Payment, error) {
	set := `updated_at=$1`
	args := []any{now}
	for _, f := range []struct {
		column string
		value  any
		set    bool
	}{
		{"status", update.Status, update.Status != nil},
		{"razorpay_payment_id", update.RazorpayPaymentID, update.RazorpayPaymentID != nil},
		{"payment_method", update.PaymentMethod, update.PaymentMethod != nil},
		{"refund_id", update.RefundID, update.RefundID != nil},
		{"refund_amount", update.RefundAmount, update.RefundAmount != nil},
	} {
		if f.set {
			set += `, ` + f.column + `=` + placeholder(len(args)+1)
			args = append(args, f.value)
		}
	}

	query := `UPDATE payments SET ` + set + ` WHERE id=` + placeholder(len(args)+1) + ` RETURNING ` + paymentColumns
	args = append(args, id)

	payment, err := scanPayment(r.storage.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}

func (r *paymentRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.PaymentStats, error) {
	const query = `SELECT
            COUNT(*),
            COALESCE(SUM(amount), 0),
            COUNT(*) FILTER (WHERE status='captured'),
            COUNT(*) FILTER (WHERE status='failed'),
            COUNT(*) FILTER (WHERE status='refunded'),
            COUNT(*) FILTER (WHERE created_at >= date_trunc('month', $2::timestamptz)),
            COALESCE(SUM(amount) FILTER (WHERE created_at >= date_trunc('month', $2::timestamptz)), 0)
        FROM payments WHERE user_id=$1`

	var stats model.PaymentStats
	err := r.storage.db.QueryRow(ctx, query, userID, now).Scan(
		&stats.Total, &stats.TotalAmount, &stats.Captured, &stats.Failed,
		&stats.Refunded, &stats.ThisMonth, &stats.ThisMonthAmount,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &stats, nil
}

func scanPayment(row rowScanner) (*model.Payment, error) {
	var p model.Payment
	err := row.Scan(
		&p.ID, &p.UserID, &p.OrderID, &p.Amount, &p.Currency, &p.Receipt, &p.Status,
		&p.RazorpayOrderID, &p.RazorpayPaymentID, &p.PaymentMethod,
		&p.RefundID, &p.RefundAmount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
