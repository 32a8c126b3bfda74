package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

const maintenanceCollection = "maintenance_requests"

// MaintenanceRepository persists maintenance requests.
type MaintenanceRepository struct {
	coll *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{coll: db.Collection(maintenanceCollection)}
}

type mongoStageEntry struct {
	Stage     string `bson:"stage"`
	Timestamp int64  `bson:"timestamp"`
	Notes     string `bson:"notes,omitempty"`
}

type mongoRequest struct {
	ID            string            `bson:"_id"`
	EquipmentID   string            `bson:"equipment_id"`
	EquipmentName string            `bson:"equipment_name"`
	TeamID        string            `bson:"team_id,omitempty"`
	Type          string            `bson:"type"`
	Priority      string            `bson:"priority"`
	Stage         string            `bson:"stage"`
	Description   string            `bson:"description,omitempty"`
	ScheduledFor  int64             `bson:"scheduled_for"`
	CreatedAt     int64             `bson:"created_at"`
	UpdatedAt     int64             `bson:"updated_at"`
	StageHistory  []mongoStageEntry `bson:"stage_history"`
}

func toMongoRequest(req *domain.MaintenanceRequest) mongoRequest {
	history := make([]mongoStageEntry, 0, len(req.StageHistory))
	for _, e := range req.StageHistory {
		history = append(history, mongoStageEntry{
			Stage:     string(e.Stage),
			Timestamp: e.Timestamp.Unix(),
			Notes:     e.Notes,
		})
	}
	return mongoRequest{
		ID:            req.ID,
		EquipmentID:   req.EquipmentID,
		EquipmentName: req.EquipmentName,
		TeamID:        req.TeamID,
		Type:          string(req.Type),
		Priority:      string(req.Priority),
		Stage:         string(req.Stage),
		Description:   req.Description,
		ScheduledFor:  req.ScheduledFor.Unix(),
		CreatedAt:     req.CreatedAt.Unix(),
		UpdatedAt:     req.UpdatedAt.Unix(),
		StageHistory:  history,
	}
}

func (mr mongoRequest) toDomain() domain.MaintenanceRequest {
	history := make([]domain.StageHistoryEntry, 0, len(mr.StageHistory))
	for _, e := range mr.StageHistory {
		history = append(history, domain.StageHistoryEntry{
			Stage:     domain.RequestStage(e.Stage),
			Timestamp: unixToTime(e.Timestamp),
			Notes:     e.Notes,
		})
	}
	return domain.MaintenanceRequest{
		ID:            mr.ID,
		EquipmentID:   mr.EquipmentID,
		EquipmentName: mr.EquipmentName,
		TeamID:        mr.TeamID,
		Type:          domain.RequestType(mr.Type),
		Priority:      domain.RequestPriority(mr.Priority),
		Stage:         domain.RequestStage(mr.Stage),
		Description:   mr.Description,
		ScheduledFor:  unixToTime(mr.ScheduledFor),
		CreatedAt:     unixToTime(mr.CreatedAt),
		UpdatedAt:     unixToTime(mr.UpdatedAt),
		StageHistory:  history,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	if _, err := r.coll.InsertOne(ctx, toMongoRequest(req)); err != nil {
		return fmt.Errorf("insert maintenance request: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	var mr mongoRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find maintenance request: %w", err)
	}
	req := mr.toDomain()
	return &req, nil
}

func (r *MaintenanceRepository) List(ctx context.Context, filter ports.RequestFilter) ([]domain.MaintenanceRequest, error) {
	query := bson.M{}
	if filter.Stage != "" {
		query["stage"] = string(filter.Stage)
	}
	if filter.Priority != "" {
		query["priority"] = string(filter.Priority)
	}
	if filter.EquipmentID != "" {
		query["equipment_id"] = filter.EquipmentID
	}

	return r.find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *MaintenanceRepository) Update(ctx context.Context, req *domain.MaintenanceRequest) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": req.ID}, toMongoRequest(req))
	if err != nil {
		return fmt.Errorf("update maintenance request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete maintenance request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *MaintenanceRepository) CountByStage(ctx context.Context, stage domain.RequestStage) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"stage": string(stage)})
	if err != nil {
		return 0, fmt.Errorf("count maintenance requests: %w", err)
	}
	return n, nil
}

func (r *MaintenanceRepository) ListRecent(ctx context.Context, limit int) ([]domain.MaintenanceRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MaintenanceRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]domain.MaintenanceRequest, error) {
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.MaintenanceRequest
	for cursor.Next(ctx) {
		var mr mongoRequest
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode maintenance request: %w", err)
		}
		out = append(out, mr.toDomain())
	}
	return out, cursor.Err()
}
