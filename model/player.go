package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player is one document in the "players" collection.
type Player struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Number           int                `bson:"number" json:"number"`
	PositionSpecific string             `bson:"position_specific" json:"position_specific"`
	PositionExtended string             `bson:"position_extended" json:"position_extended"`
	URLImage         string             `bson:"url_image" json:"url_image"`
	Season           string             `bson:"season" json:"season"`
	StatsImage       string             `bson:"stats_image,omitempty" json:"stats_image,omitempty"`
	Stats            *PlayerStats       `bson:"stats,omitempty" json:"stats,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PlayerStats carries per-season numbers; every field is optional.
type PlayerStats struct {
	MatchesPlayed *int `bson:"matches_played,omitempty" json:"matches_played,omitempty"`
	Goals         *int `bson:"goals,omitempty" json:"goals,omitempty"`
	Assists       *int `bson:"assists,omitempty" json:"assists,omitempty"`
	YellowCards   *int `bson:"yellow_cards,omitempty" json:"yellow_cards,omitempty"`
	RedCards      *int `bson:"red_cards,omitempty" json:"red_cards,omitempty"`
	MinutesPlayed *int `bson:"minutes_played,omitempty" json:"minutes_played,omitempty"`
}

// PlayerPatch is a partial update: nil fields are left untouched.
type PlayerPatch struct {
	Name             *string      `json:"name"`
	Number           *int         `json:"number"`
	PositionSpecific *string      `json:"position_specific"`
	PositionExtended *string      `json:"position_extended"`
	URLImage         *string      `json:"url_image"`
	Season           *string      `json:"season"`
	StatsImage       *string      `json:"stats_image"`
	Stats            *PlayerStats `json:"stats"`
}
