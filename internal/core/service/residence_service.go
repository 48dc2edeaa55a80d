package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// ResidenceService is the pass-through layer over the opaque
// collections. Each operation is exactly one store call; the documents
// themselves are not interpreted.
type ResidenceService struct {
	apartments    ports.DocumentRepository
	bookings      ports.DocumentRepository
	announcements ports.DocumentRepository
	coupons       ports.DocumentRepository
	logger        zerolog.Logger
}

func NewResidenceService(apartments, bookings, announcements, coupons ports.DocumentRepository, logger zerolog.Logger) *ResidenceService {
	return &ResidenceService{
		apartments:    apartments,
		bookings:      bookings,
		announcements: announcements,
		coupons:       coupons,
		logger:        logger,
	}
}

func (s *ResidenceService) Apartments(ctx context.Context) ([]domain.Document, error) {
	return s.apartments.List(ctx)
}

func (s *ResidenceService) Bookings(ctx context.Context) ([]domain.Document, error) {
	return s.bookings.List(ctx)
}

func (s *ResidenceService) AddBooking(ctx context.Context, doc domain.Document) (*ports.InsertResult, error) {
	return s.insert(ctx, s.bookings, "booking", doc)
}

func (s *ResidenceService) Announcements(ctx context.Context) ([]domain.Document, error) {
	return s.announcements.List(ctx)
}

func (s *ResidenceService) AddAnnouncement(ctx context.Context, doc domain.Document) (*ports.InsertResult, error) {
	return s.insert(ctx, s.announcements, "announcement", doc)
}

func (s *ResidenceService) Coupons(ctx context.Context) ([]domain.Document, error) {
	return s.coupons.List(ctx)
}

func (s *ResidenceService) AddCoupon(ctx context.Context, doc domain.Document) (*ports.InsertResult, error) {
	return s.insert(ctx, s.coupons, "coupon", doc)
}

func (s *ResidenceService) insert(ctx context.Context, repo ports.DocumentRepository, kind string, doc domain.Document) (*ports.InsertResult, error) {
	id, err := repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("kind", kind).Str("id", id).Msg("document inserted")
	return &ports.InsertResult{InsertedID: id}, nil
}
