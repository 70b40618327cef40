package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

const actionsCollection = "enrollment_actions"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

// EnsureIndexes creates the lookup indexes on the actions collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(actionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "session_id", Value: 1}}},
		{Keys: bson.D{{Key: "action_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

// InsertAction persists one settled console action.
func (r *AuditRepository) InsertAction(ctx context.Context, a *domain.EnrollmentAction) error {
	doc := bson.M{
		"action_id":   a.ID,
		"session_id":  a.SessionID,
		"actor":       a.Actor,
		"employee_id": int64(a.EmployeeID),
		"kind":        string(a.Kind),
		"outcome":     string(a.Outcome),
		"at":          a.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if a.EnrollmentID != 0 {
		doc["enrollment_id"] = int64(a.EnrollmentID)
	}
	if a.Detail != "" {
		doc["detail"] = a.Detail
	}

	_, err := r.db.Collection(actionsCollection).InsertOne(ctx, doc)
	return err
}
