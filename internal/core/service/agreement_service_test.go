package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

type stubAgreementRepo struct {
	inserted  []domain.Document
	byEmail   map[string]domain.Document
	decisions []string
}

func newStubAgreementRepo() *stubAgreementRepo {
	return &stubAgreementRepo{byEmail: make(map[string]domain.Document)}
}

func (r *stubAgreementRepo) Insert(_ context.Context, doc domain.Document) (string, error) {
	r.inserted = append(r.inserted, doc)
	return "65a0000000000000000000bb", nil
}

func (r *stubAgreementRepo) List(context.Context) ([]domain.Document, error) {
	return r.inserted, nil
}

func (r *stubAgreementRepo) FindByUserEmail(_ context.Context, email string) (domain.Document, error) {
	return r.byEmail[email], nil
}

func (r *stubAgreementRepo) UpdateDecision(_ context.Context, id string, status domain.AgreementStatus, role domain.Role) (*ports.UpdateResult, error) {
	r.decisions = append(r.decisions, id+":"+string(status)+":"+string(role))
	return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestAgreementService_Submit_StampsPending(t *testing.T) {
	repo := newStubAgreementRepo()
	svc := NewAgreementService(repo, zerolog.Nop())

	res, err := svc.Submit(context.Background(), domain.Document{"userEmail": "a@x.com"})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.InsertedID == "" {
		t.Fatalf("expected inserted id")
	}
	if got := repo.inserted[0]["status"]; got != "pending" {
		t.Fatalf("expected status pending, got %v", got)
	}
}

func TestAgreementService_Submit_KeepsGivenStatus(t *testing.T) {
	repo := newStubAgreementRepo()
	svc := NewAgreementService(repo, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), domain.Document{"status": "pending", "userEmail": "a@x.com"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if got := repo.inserted[0]["status"]; got != "pending" {
		t.Fatalf("status overwritten: %v", got)
	}
}

func TestAgreementService_Decide_RejectsNonDecisionStatus(t *testing.T) {
	repo := newStubAgreementRepo()
	svc := NewAgreementService(repo, zerolog.Nop())

	for _, status := range []domain.AgreementStatus{domain.AgreementPending, "approved", ""} {
		_, err := svc.Decide(context.Background(), "65a0000000000000000000bb", status, domain.RoleMember)
		if err != domain.ErrInvalidStatus {
			t.Fatalf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}
	if len(repo.decisions) != 0 {
		t.Fatalf("no decision should have been persisted")
	}
}

func TestAgreementService_Decide_RejectsUnknownRole(t *testing.T) {
	repo := newStubAgreementRepo()
	svc := NewAgreementService(repo, zerolog.Nop())

	_, err := svc.Decide(context.Background(), "65a0000000000000000000bb", domain.AgreementChecked, domain.Role("owner"))
	if err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAgreementService_Decide_Persists(t *testing.T) {
	repo := newStubAgreementRepo()
	svc := NewAgreementService(repo, zerolog.Nop())

	res, err := svc.Decide(context.Background(), "65a0000000000000000000bb", domain.AgreementChecked, domain.RoleMember)
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(repo.decisions) != 1 || repo.decisions[0] != "65a0000000000000000000bb:checked:member" {
		t.Fatalf("unexpected decision: %v", repo.decisions)
	}
}
