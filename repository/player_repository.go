package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atleti-backend/model"
)

// PlayerRepository is the persistence surface the player service needs.
type PlayerRepository interface {
	Insert(ctx context.Context, player *model.Player) (*model.Player, error)
	Get(ctx context.Context, id string) (*model.Player, error)
	// List filters by exact season match when season is non-empty.
	List(ctx context.Context, season string) ([]model.Player, error)
	Update(ctx context.Context, id string, patch model.PlayerPatch) (*model.Player, error)
	Delete(ctx context.Context, id string) (*model.Player, error)
}

type mongoPlayerRepository struct {
	coll *mongo.Collection
}

// NewPlayerRepository returns a mongo-backed PlayerRepository over the
// "players" collection.
func NewPlayerRepository(db *mongo.Database) PlayerRepository {
	return &mongoPlayerRepository{coll: db.Collection("players")}
}

func (r *mongoPlayerRepository) Insert(ctx context.Context, player *model.Player) (*model.Player, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	player.ID = primitive.NewObjectID()
	player.CreatedAt = now
	player.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, player)
	observe("insert", "players", err)
	if err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}
	return player, nil
}

func (r *mongoPlayerRepository) Get(ctx context.Context, id string) (*model.Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	var player model.Player
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&player)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNoDocument
	}
	observe("findOne", "players", err)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("get player %s: %w", id, err)
	}
	return &player, nil
}

func (r *mongoPlayerRepository) List(ctx context.Context, season string) ([]model.Player, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	filter := bson.M{}
	if season != "" {
		filter["season"] = season
	}

	cursor, err := r.coll.Find(ctx, filter)
	observe("find", "players", err)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer cursor.Close(ctx)

	players := []model.Player{}
	if err := cursor.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	return players, nil
}

func (r *mongoPlayerRepository) Update(ctx context.Context, id string, patch model.PlayerPatch) (*model.Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	update := bson.M{"$set": playerSetDoc(patch)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var player model.Player
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&player)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNoDocument
	}
	observe("findOneAndUpdate", "players", err)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("update player %s: %w", id, err)
	}
	return &player, nil
}

func (r *mongoPlayerRepository) Delete(ctx context.Context, id string) (*model.Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	var player model.Player
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&player)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNoDocument
	}
	observe("findOneAndDelete", "players", err)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("delete player %s: %w", id, err)
	}
	return &player, nil
}

// playerSetDoc builds the $set document from a patch.
func playerSetDoc(patch model.PlayerPatch) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Number != nil {
		set["number"] = *patch.Number
	}
	if patch.PositionSpecific != nil {
		set["position_specific"] = *patch.PositionSpecific
	}
	if patch.PositionExtended != nil {
		set["position_extended"] = *patch.PositionExtended
	}
	if patch.URLImage != nil {
		set["url_image"] = *patch.URLImage
	}
	if patch.Season != nil {
		set["season"] = *patch.Season
	}
	if patch.StatsImage != nil {
		set["stats_image"] = *patch.StatsImage
	}
	if patch.Stats != nil {
		set["stats"] = *patch.Stats
	}
	return set
}
