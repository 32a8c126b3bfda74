package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gearguard/maintenance-tracker/internal/core/domain"
)

const teamCollection = "teams"

// TeamRepository persists maintenance crews.
type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(teamCollection)}
}

type mongoTeam struct {
	ID             string `bson:"_id"`
	Name           string `bson:"name"`
	Members        int    `bson:"members"`
	ActiveTasks    int    `bson:"active_tasks"`
	CompletedTasks int    `bson:"completed_tasks"`
	CreatedAt      int64  `bson:"created_at"`
	UpdatedAt      int64  `bson:"updated_at"`
}

func (mt mongoTeam) toDomain() domain.Team {
	return domain.Team{
		ID:             mt.ID,
		Name:           mt.Name,
		Members:        mt.Members,
		ActiveTasks:    mt.ActiveTasks,
		CompletedTasks: mt.CompletedTasks,
		CreatedAt:      unixToTime(mt.CreatedAt),
		UpdatedAt:      unixToTime(mt.UpdatedAt),
	}
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	doc := mongoTeam{
		ID:             team.ID,
		Name:           team.Name,
		Members:        team.Members,
		ActiveTasks:    team.ActiveTasks,
		CompletedTasks: team.CompletedTasks,
		CreatedAt:      team.CreatedAt.Unix(),
		UpdatedAt:      team.UpdatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	var mt mongoTeam
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	team := mt.toDomain()
	return &team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Team
	for cursor.Next(ctx) {
		var mt mongoTeam
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode team: %w", err)
		}
		out = append(out, mt.toDomain())
	}
	return out, cursor.Err()
}

func (r *TeamRepository) AdjustTasks(ctx context.Context, id string, activeDelta, completedDelta int) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{
			"active_tasks":    activeDelta,
			"completed_tasks": completedDelta,
		},
		"$set": bson.M{"updated_at": time.Now().UTC().Unix()},
	})
	if err != nil {
		return fmt.Errorf("adjust team tasks: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}
