package ports

import (
	"context"

	"github.com/eminentestates/residence-api/internal/core/domain"
)

// DocumentRepository is the persistence contract for the opaque
// collections (apartments, bookings, announcements, coupons): one
// find-all and one insert-one, nothing else.
type DocumentRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	Insert(ctx context.Context, doc domain.Document) (string, error)
}
