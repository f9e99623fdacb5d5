package registrations

import (
	"context"
	"fmt"
	"time"

	"github.com/hknair/leadgate/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo is the MongoDB-backed Store.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo wraps the registrations collection of db.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection(CollectionName)}
}

func (s *Mongo) Insert(ctx context.Context, reg models.Registration) (models.Registration, error) {
	reg.ID = primitive.NewObjectID().Hex()
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, reg); err != nil {
		return models.Registration{}, mongoErr("insert", err)
	}
	return reg, nil
}

func (s *Mongo) ExistsSince(ctx context.Context, field Field, value string, since time.Time) (bool, error) {
	filter := bson.M{
		string(field): value,
		"created_at":  bson.M{"$gte": since},
	}
	err := s.c.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, mongoErr("exists", err)
}

func (s *Mongo) GetByID(ctx context.Context, id string) (models.Registration, error) {
	var reg models.Registration
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if err == mongo.ErrNoDocuments {
		return models.Registration{}, ErrNoDocument
	}
	if err != nil {
		return models.Registration{}, mongoErr("get", err)
	}
	return reg, nil
}

func (s *Mongo) Update(ctx context.Context, id string, p Patch) (models.Registration, error) {
	set := bson.M{}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	if len(set) == 0 {
		// Nothing to change; behave like a read.
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var reg models.Registration
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&reg)
	if err == mongo.ErrNoDocuments {
		return models.Registration{}, ErrNoDocument
	}
	if err != nil {
		return models.Registration{}, mongoErr("update", err)
	}
	return reg, nil
}

func (s *Mongo) List(ctx context.Context, f Filter, skip, limit int64) ([]models.Registration, int64, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.InquiryType != "" {
		filter["inquiry_type"] = f.InquiryType
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, mongoErr("count", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, mongoErr("find", err)
	}
	defer cur.Close(ctx)

	regs := []models.Registration{}
	if err := cur.All(ctx, &regs); err != nil {
		return nil, 0, mongoErr("decode", err)
	}
	return regs, total, nil
}

func (s *Mongo) Ping(ctx context.Context) error {
	if err := s.c.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// mongoErr wraps driver failures, tagging connectivity and timeout problems
// with ErrUnavailable so the service maps them to a 503.
func mongoErr(op string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("registrations %s: %w", op, err)
}
