package tutorsRepo

import (
	"context"
	"errors"

	"tutorbase/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrTutorNotFound is returned when no tutor matches the given ID.
var ErrTutorNotFound = errors.New("tutor not found")

// GetByID returns a tutor by ID.
func (r *mongoTutorRepo) GetByID(ctx context.Context, id string) (*models.Tutor, error) {
	var tutor models.Tutor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tutor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTutorNotFound
		}
		return nil, err
	}
	return &tutor, nil
}

// ListActive returns all active tutors in display order.
func (r *mongoTutorRepo) ListActive(ctx context.Context) ([]models.Tutor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tutors []models.Tutor
	if err := cursor.All(ctx, &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

// Upsert creates or replaces a tutor profile.
func (r *mongoTutorRepo) Upsert(ctx context.Context, tutor models.Tutor) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": tutor.ID}, tutor, opts)
	return err
}
