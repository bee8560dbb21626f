package bookingsRepo

import (
	"context"
	"errors"

	"resmoke/database"
	"resmoke/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by GetByID when no booking has the given ID.
var ErrNotFound = errors.New("booking not found")

// BookingRepository persists completed bookings. The collection is
// append-only: documents are never updated or deleted once written.
type BookingRepository interface {
	Create(ctx context.Context, doc models.BookingDocument) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingDocument, error)
	GetAll(ctx context.Context) ([]models.BookingDocument, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("resmoke")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
