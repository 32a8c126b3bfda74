package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
	"github.com/gearguard/maintenance-tracker/internal/core/ports"
)

const equipmentCollection = "equipment"

// EquipmentRepository persists tracked assets.
type EquipmentRepository struct {
	coll *mongo.Collection
}

func NewEquipmentRepository(db *mongo.Database) *EquipmentRepository {
	return &EquipmentRepository{coll: db.Collection(equipmentCollection)}
}

type mongoEquipment struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	SerialNumber string `bson:"serial_number"`
	Status       string `bson:"status"`
	Location     string `bson:"location"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func toMongoEquipment(eq *domain.Equipment) mongoEquipment {
	return mongoEquipment{
		ID:           eq.ID,
		Name:         eq.Name,
		SerialNumber: eq.SerialNumber,
		Status:       string(eq.Status),
		Location:     eq.Location,
		CreatedAt:    eq.CreatedAt.Unix(),
		UpdatedAt:    eq.UpdatedAt.Unix(),
	}
}

func (me mongoEquipment) toDomain() domain.Equipment {
	return domain.Equipment{
		ID:           me.ID,
		Name:         me.Name,
		SerialNumber: me.SerialNumber,
		Status:       domain.EquipmentStatus(me.Status),
		Location:     me.Location,
		CreatedAt:    unixToTime(me.CreatedAt),
		UpdatedAt:    unixToTime(me.UpdatedAt),
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	if _, err := r.coll.InsertOne(ctx, toMongoEquipment(eq)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSerial
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id string) (*domain.Equipment, error) {
	var me mongoEquipment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("find equipment: %w", err)
	}
	eq := me.toDomain()
	return &eq, nil
}

func (r *EquipmentRepository) List(ctx context.Context, filter ports.EquipmentFilter) ([]domain.Equipment, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Search != "" {
		query["$or"] = searchClause(filter.Search)
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Equipment
	for cursor.Next(ctx) {
		var me mongoEquipment
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode equipment: %w", err)
		}
		out = append(out, me.toDomain())
	}
	return out, cursor.Err()
}

// searchClause builds a case-insensitive substring match over name and
// serial number. The term is escaped so user input is matched literally
// rather than interpreted as a pattern.
func searchClause(search string) bson.A {
	pattern := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	return bson.A{
		bson.M{"name": pattern},
		bson.M{"serial_number": pattern},
	}
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update equipment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count equipment: %w", err)
	}
	return n, nil
}
