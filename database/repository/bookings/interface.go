package bookingsRepo

import (
	"context"

	"tutorbase/database"
	"tutorbase/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository is the append-only store of booking traces.
// The scheduling core never reads from it; the calendars remain the
// source of truth for availability.
type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetByTutorID(ctx context.Context, tutorID string) ([]models.BookingRecord, error)
	List(ctx context.Context) ([]models.BookingRecord, error)
}

type mongoBookingRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRecordRepo returns a BookingRecordRepository backed by
// MongoDB.
func NewMongoBookingRecordRepo() BookingRecordRepository {
	return &mongoBookingRecordRepo{
		coll: database.Collection("booking_records"),
	}
}
