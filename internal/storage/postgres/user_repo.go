package postgres

import (
	"context"

	"github.com/textileoem/platform/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id, email, role, is_active, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}
