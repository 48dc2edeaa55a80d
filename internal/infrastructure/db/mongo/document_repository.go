package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eminentestates/residence-api/internal/core/domain"
)

// Collection names for the opaque resources.
const (
	ApartmentCollection    = "apartment"
	BookingCollection      = "booked"
	AnnouncementCollection = "announcement"
	CouponCollection       = "coupon"
)

// DocumentRepository is a pass-through repository over one collection
// of opaque documents. The same type backs apartments, bookings,
// announcements and coupons; only the collection differs.
type DocumentRepository struct {
	name string
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database, name string) *DocumentRepository {
	return &DocumentRepository{name: name, coll: db.Collection(name)}
}

func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	defer cur.Close(ctx)

	docs := []domain.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.name, err)
	}
	return docs, nil
}

func (r *DocumentRepository) Insert(ctx context.Context, doc domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", r.name, err)
	}
	return insertedHex(res.InsertedID), nil
}
