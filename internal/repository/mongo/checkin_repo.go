package mongo

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const checkInCollectionName = "check_ins"

// mongoCheckInRepository implements repository.CheckInRepository using MongoDB.
type mongoCheckInRepository struct {
	collection *mongo.Collection
}

// NewMongoCheckInRepository creates a new instance of mongoCheckInRepository.
func NewMongoCheckInRepository(db *mongo.Database) repository.CheckInRepository {
	return &mongoCheckInRepository{
		collection: db.Collection(checkInCollectionName),
	}
}

func (r *mongoCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) (string, error) {
	if checkIn.ID == "" {
		return "", errors.New("check-in id is required")
	}
	if checkIn.ClientID == "" {
		return "", errors.New("check-in client id is required")
	}

	if _, err := r.collection.InsertOne(ctx, checkIn); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrConflict
		}
		return "", err
	}
	return checkIn.ID, nil
}

func (r *mongoCheckInRepository) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	var checkIn domain.CheckIn
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&checkIn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &checkIn, nil
}

func (r *mongoCheckInRepository) List(ctx context.Context) ([]domain.CheckIn, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkIns []domain.CheckIn
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	if checkIns == nil {
		checkIns = []domain.CheckIn{}
	}
	return checkIns, nil
}

// UpdateStatus transitions the status field in place without touching the
// rest of the document.
func (r *mongoCheckInRepository) UpdateStatus(ctx context.Context, id string, status domain.CheckInStatus) error {
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCheckInIndexes creates necessary indexes for the check_ins collection.
func EnsureCheckInIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
