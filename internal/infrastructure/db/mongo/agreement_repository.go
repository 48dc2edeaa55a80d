package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

const agreementCollection = "agreement"

// AgreementRepository persists rental agreement requests. Documents
// are stored as submitted; only status and userRole are touched by
// the decision update.
type AgreementRepository struct {
	coll *mongo.Collection
}

func NewAgreementRepository(db *mongo.Database) *AgreementRepository {
	return &AgreementRepository{coll: db.Collection(agreementCollection)}
}

func (r *AgreementRepository) Insert(ctx context.Context, doc domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert agreement: %w", err)
	}
	return insertedHex(res.InsertedID), nil
}

func (r *AgreementRepository) List(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	defer cur.Close(ctx)

	docs := []domain.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode agreements: %w", err)
	}
	return docs, nil
}

// FindByUserEmail looks up the agreement submitted by the given email.
// The email is matched against the userEmail field, never against the
// document id. Absence yields (nil, nil).
func (r *AgreementRepository) FindByUserEmail(ctx context.Context, email string) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc domain.Document
	if err := r.coll.FindOne(ctx, bson.M{"userEmail": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find agreement: %w", err)
	}
	return doc, nil
}

func (r *AgreementRepository) UpdateDecision(ctx context.Context, id string, status domain.AgreementStatus, role domain.Role) (*ports.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":   string(status),
		"userRole": string(role),
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update agreement: %w", err)
	}
	return &ports.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
