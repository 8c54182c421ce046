package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/ipartes/quote-service/pkg/types"
)

const (
	defaultMongoDatabase = "quotes"
	suppliersCollection  = "suppliers"
)

// MongoStore implements Store on a MongoDB collection. One document per
// supplier, keyed by the application-assigned uuid in the "id" field.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and targets database (empty
// means "quotes").
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(suppliersCollection),
	}, nil
}

func (s *MongoStore) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("querying suppliers: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Supplier
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decoding suppliers: %w", err)
	}
	return out, nil
}

func (s *MongoStore) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	var sup domain.Supplier
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sup)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying supplier: %w", err)
	}
	return &sup, nil
}

// FindByManufacturer filters client-side: the loose containment match has
// no index-friendly Mongo form, and the directory stays small.
func (s *MongoStore) FindByManufacturer(ctx context.Context, name string) ([]domain.Supplier, error) {
	all, err := s.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Supplier
	for _, sup := range all {
		if sup.MatchesManufacturer(name) {
			out = append(out, sup)
		}
	}
	return out, nil
}

func (s *MongoStore) UpsertSupplier(
	ctx context.Context,
	manufacturer, email string,
) (*domain.Supplier, bool, error) {
	filter := bson.M{"manufacturer": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(manufacturer) + "$",
		Options: "i",
	}}

	var existing domain.Supplier
	err := s.coll.FindOne(ctx, filter).Decode(&existing)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		now := time.Now().UTC()
		sup := domain.Supplier{
			ID:           uuid.NewString(),
			Manufacturer: manufacturer,
			Emails:       []string{email},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := s.coll.InsertOne(ctx, sup); err != nil {
			return nil, false, fmt.Errorf("inserting supplier: %w", err)
		}
		return &sup, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("querying supplier: %w", err)
	}

	if existing.HasEmail(email) {
		return nil, false, ErrEmailExists
	}

	existing.Emails = append(existing.Emails, email)
	existing.UpdatedAt = time.Now().UTC()
	if err := s.replace(ctx, &existing); err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (s *MongoStore) AddEmail(ctx context.Context, id, email string) (*domain.Supplier, error) {
	sup, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	if sup.HasEmail(email) {
		return nil, ErrEmailExists
	}

	sup.Emails = append(sup.Emails, email)
	sup.UpdatedAt = time.Now().UTC()
	if err := s.replace(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *MongoStore) RemoveEmail(ctx context.Context, id, email string) (*domain.Supplier, bool, error) {
	sup, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !sup.HasEmail(email) {
		return nil, false, ErrNotFound
	}

	kept := make([]string, 0, len(sup.Emails))
	for _, e := range sup.Emails {
		if e != email {
			kept = append(kept, e)
		}
	}
	sup.Emails = kept

	if len(sup.Emails) == 0 {
		if err := s.DeleteSupplier(ctx, id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	sup.UpdatedAt = time.Now().UTC()
	if err := s.replace(ctx, sup); err != nil {
		return nil, false, err
	}
	return sup, false, nil
}

func (s *MongoStore) DeleteSupplier(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CountSuppliers(ctx context.Context) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting suppliers: %w", err)
	}
	return int(n), nil
}

// Migrate ensures the unique index on the supplier id.
func (s *MongoStore) Migrate(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating supplier index: %w", err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) replace(ctx context.Context, sup *domain.Supplier) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"id": sup.ID}, sup)
	if err != nil {
		return fmt.Errorf("updating supplier: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
