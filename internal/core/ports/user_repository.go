package ports

import (
	"context"

	"github.com/eminentestates/residence-api/internal/core/domain"
)

// UpdateResult mirrors the store's update acknowledgement and is
// serialized to the client as-is.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	// FindByEmail returns ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	// UpdateRole applies a partial field update on the record with the
	// given id. Returns ErrInvalidID when id is not a valid object id.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*UpdateResult, error)
}
