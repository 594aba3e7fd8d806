package tutorsRepo

import (
	"context"

	"tutorbase/database"
	"tutorbase/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TutorRepository serves the tutor directory.
type TutorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Tutor, error)
	ListActive(ctx context.Context) ([]models.Tutor, error)
	Upsert(ctx context.Context, tutor models.Tutor) error
}

type mongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo returns a TutorRepository backed by MongoDB.
func NewMongoTutorRepo() TutorRepository {
	return &mongoTutorRepo{
		coll: database.Collection("tutors"),
	}
}
