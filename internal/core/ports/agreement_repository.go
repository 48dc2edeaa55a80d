package ports

import (
	"context"

	"github.com/eminentestates/residence-api/internal/core/domain"
)

// AgreementRepository defines persistence operations for rental
// agreement requests.
type AgreementRepository interface {
	Insert(ctx context.Context, doc domain.Document) (string, error)
	List(ctx context.Context) ([]domain.Document, error)
	// FindByUserEmail returns (nil, nil) when no agreement matches;
	// absence is not an error at this layer.
	FindByUserEmail(ctx context.Context, email string) (domain.Document, error)
	// UpdateDecision sets status and userRole on the agreement with the
	// given id. Returns ErrInvalidID when id is not a valid object id.
	UpdateDecision(ctx context.Context, id string, status domain.AgreementStatus, role domain.Role) (*UpdateResult, error)
}
