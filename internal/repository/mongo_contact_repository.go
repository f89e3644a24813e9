package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/primelaser/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact records.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, rec *model.ContactRecord) error
	ListRecent(ctx context.Context, limit int) ([]*model.ContactRecord, error)
	Count(ctx context.Context) (int64, error)
}

// MongoContactRepository is the document-store implementation of
// ContactRepository. It resolves the collection through the Supervisor on
// every call, so a reconnect transparently swaps the underlying client.
type MongoContactRepository struct {
	sup       *Supervisor
	opTimeout time.Duration
}

// NewMongoContactRepository creates a MongoContactRepository backed by the
// given Supervisor. Each store operation runs under opTimeout.
func NewMongoContactRepository(sup *Supervisor, opTimeout time.Duration) *MongoContactRepository {
	return &MongoContactRepository{sup: sup, opTimeout: opTimeout}
}

// Ensure MongoContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*MongoContactRepository)(nil)

// contactDoc is the stored shape of a contact record. The model keeps a
// hex-string ID; the store assigns an ObjectID.
type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	ClientIP  string             `bson:"ipAddress,omitempty"`
	UserAgent string             `bson:"userAgent,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *contactDoc) toModel() *model.ContactRecord {
	return &model.ContactRecord{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		Message:     d.Message,
		ClientIP:    d.ClientIP,
		UserAgent:   d.UserAgent,
		SubmittedAt: d.CreatedAt,
	}
}

// Save inserts a new contact document and populates rec.ID from the
// store-assigned ObjectID.
func (r *MongoContactRepository) Save(ctx context.Context, rec *model.ContactRecord) error {
	coll, err := r.sup.Collection()
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := coll.InsertOne(opCtx, contactDoc{
		Name:      rec.Name,
		Email:     rec.Email,
		Message:   rec.Message,
		ClientIP:  rec.ClientIP,
		UserAgent: rec.UserAgent,
		CreatedAt: rec.SubmittedAt,
	})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	return nil
}

// ListRecent returns up to limit records ordered by submission time,
// newest first.
func (r *MongoContactRepository) ListRecent(ctx context.Context, limit int) ([]*model.ContactRecord, error) {
	coll, err := r.sup.Collection()
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := coll.Find(opCtx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(opCtx)

	var docs []contactDoc
	if err := cur.All(opCtx, &docs); err != nil {
		return nil, err
	}

	records := make([]*model.ContactRecord, 0, len(docs))
	for i := range docs {
		records = append(records, docs[i].toModel())
	}
	return records, nil
}

// Count returns the total number of stored contact records.
func (r *MongoContactRepository) Count(ctx context.Context) (int64, error) {
	coll, err := r.sup.Collection()
	if err != nil {
		return 0, err
	}

	opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return coll.CountDocuments(opCtx, bson.D{})
}
