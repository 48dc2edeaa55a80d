package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// AgreementService implements submission and review of rental
// agreement requests.
type AgreementService struct {
	repo   ports.AgreementRepository
	logger zerolog.Logger
}

func NewAgreementService(repo ports.AgreementRepository, logger zerolog.Logger) *AgreementService {
	return &AgreementService{repo: repo, logger: logger}
}

// Submit stores the agreement as submitted. A missing status field is
// stamped pending so every stored agreement carries a review state.
func (s *AgreementService) Submit(ctx context.Context, doc domain.Document) (*ports.InsertResult, error) {
	if _, ok := doc["status"]; !ok {
		doc["status"] = string(domain.AgreementPending)
	}

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("agreement submitted")
	return &ports.InsertResult{InsertedID: id}, nil
}

func (s *AgreementService) List(ctx context.Context) ([]domain.Document, error) {
	return s.repo.List(ctx)
}

func (s *AgreementService) FindByUserEmail(ctx context.Context, email string) (domain.Document, error) {
	return s.repo.FindByUserEmail(ctx, email)
}

// Decide records an admin decision: the new status plus the role the
// tenant is granted on acceptance.
func (s *AgreementService) Decide(ctx context.Context, id string, status domain.AgreementStatus, role domain.Role) (*ports.UpdateResult, error) {
	if !status.IsDecision() {
		return nil, domain.ErrInvalidStatus
	}
	if !role.IsAssignable() {
		return nil, domain.ErrInvalidRole
	}

	res, err := s.repo.UpdateDecision(ctx, id, status, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("status", string(status)).Str("user_role", string(role)).Msg("agreement decided")
	return res, nil
}
