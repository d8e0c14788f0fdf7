package repository

import (
	"context"

	"github.com/textileoem/platform/internal/domain/model"
)

// UserRepository resolves account rows for authentication.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}
