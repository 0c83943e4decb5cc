package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is one document in the "articles" collection.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Content     string             `bson:"content" json:"content"`
	CoverImage  string             `bson:"coverImage" json:"coverImage"`
	Creator     string             `bson:"creator" json:"creator"`
	ReadingTime int                `bson:"readingTime" json:"readingTime"`
	Keywords    []string           `bson:"keywords" json:"keywords"`
	Comments    []Comment          `bson:"comments" json:"comments,omitempty"`
	IsImportant bool               `bson:"isImportant" json:"isImportant"`
	IsDraft     bool               `bson:"isDraft" json:"isDraft"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	Views       int64              `bson:"views" json:"views"`
	Likes       int64              `bson:"likes" json:"likes"`
	Coms        int64              `bson:"coms" json:"coms"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Comment is a nested comment on an article. Replies nest recursively.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	Creator   string    `bson:"creator" json:"creator"`
	Content   string    `bson:"content" json:"content"`
	Likes     int64     `bson:"likes" json:"likes"`
	Replies   []Comment `bson:"replies,omitempty" json:"replies,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ArticleInput is the create payload. The boolean flags are pointers so that
// an omitted flag falls back to its default (isDraft true, the others false).
type ArticleInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CoverImage  string    `json:"coverImage"`
	Creator     string    `json:"creator"`
	ReadingTime int       `json:"readingTime"`
	Keywords    []string  `json:"keywords"`
	Comments    []Comment `json:"comments"`
	IsImportant *bool     `json:"isImportant"`
	IsDraft     *bool     `json:"isDraft"`
	IsFeatured  *bool     `json:"isFeatured"`
}

// ArticlePatch is a partial update: nil fields are left untouched.
// Counters (views, likes, coms) are deliberately absent; they move only
// through the dedicated increment operations.
type ArticlePatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Content     *string    `json:"content"`
	CoverImage  *string    `json:"coverImage"`
	Creator     *string    `json:"creator"`
	ReadingTime *int       `json:"readingTime"`
	Keywords    *[]string  `json:"keywords"`
	Comments    *[]Comment `json:"comments"`
	IsImportant *bool      `json:"isImportant"`
	IsDraft     *bool      `json:"isDraft"`
	IsFeatured  *bool      `json:"isFeatured"`
}
