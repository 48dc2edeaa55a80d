package ports

import (
	"context"

	"github.com/eminentestates/residence-api/internal/core/domain"
)

// InsertResult mirrors the store's insert acknowledgement.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// RegisterResult is returned by user registration. On a duplicate
// email the insert is skipped and InsertedID stays null — a sentinel
// success, not an error.
type RegisterResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// TokenService issues signed credentials.
type TokenService interface {
	// Issue signs the caller-supplied claim set with a fixed expiry.
	Issue(claims map[string]any) (string, error)
}

// UserService defines use-case operations on user records.
type UserService interface {
	Register(ctx context.Context, name, email string) (*RegisterResult, error)
	List(ctx context.Context) ([]domain.User, error)
	// RoleOf returns RoleNone for unknown emails; a missing record is
	// not an error for role checks.
	RoleOf(ctx context.Context, email string) (domain.Role, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*UpdateResult, error)
}

// AgreementService defines use-case operations on agreement requests.
type AgreementService interface {
	Submit(ctx context.Context, doc domain.Document) (*InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	FindByUserEmail(ctx context.Context, email string) (domain.Document, error)
	Decide(ctx context.Context, id string, status domain.AgreementStatus, role domain.Role) (*UpdateResult, error)
}

// ResidenceService exposes the pass-through operations on the opaque
// collections.
type ResidenceService interface {
	Apartments(ctx context.Context) ([]domain.Document, error)
	Bookings(ctx context.Context) ([]domain.Document, error)
	AddBooking(ctx context.Context, doc domain.Document) (*InsertResult, error)
	Announcements(ctx context.Context) ([]domain.Document, error)
	AddAnnouncement(ctx context.Context, doc domain.Document) (*InsertResult, error)
	Coupons(ctx context.Context) ([]domain.Document, error)
	AddCoupon(ctx context.Context, doc domain.Document) (*InsertResult, error)
}

// RateLimiter gates expensive public endpoints per caller key.
type RateLimiter interface {
	// Allow reports whether the caller identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
}
