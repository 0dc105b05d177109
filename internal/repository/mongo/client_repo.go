package mongo

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const clientCollectionName = "clients"

// mongoClientRepository implements repository.ClientRepository using MongoDB.
// Ids are the uuid strings generated by the service layer, stored as _id.
type mongoClientRepository struct {
	collection *mongo.Collection
}

// NewMongoClientRepository creates a new instance of mongoClientRepository.
// It expects a connected *mongo.Database instance.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{
		collection: db.Collection(clientCollectionName),
	}
}

// Create inserts a new client document. A duplicate _id maps to ErrConflict
// so repeated submits with the same generated id stay idempotent.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) (string, error) {
	if client.ID == "" {
		return "", errors.New("client id is required")
	}
	if client.Email == "" {
		return "", errors.New("client email is required")
	}

	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, client); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrConflict
		}
		return "", err
	}
	return client.ID, nil
}

// GetByID retrieves a client by id.
func (r *mongoClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// List returns all clients in insertion order.
func (r *mongoClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []domain.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

// Update replaces the stored document wholesale.
func (r *mongoClientRepository) Update(ctx context.Context, client *domain.Client) error {
	client.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": client.ID}
	result, err := r.collection.ReplaceOne(ctx, filter, client)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureClientIndexes creates necessary indexes for the clients collection.
// Call this once during application startup.
func EnsureClientIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "joinDate", Value: -1}}, // recent-clients listing
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "nextCheckIn", Value: 1}}, // upcoming check-in window
			Options: options.Index().SetSparse(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
