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

// ArticleRepository is the persistence surface the article service needs.
type ArticleRepository interface {
	Insert(ctx context.Context, article *model.Article) (*model.Article, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error)
	Delete(ctx context.Context, id string) (*model.Article, error)
	IncrementViews(ctx context.Context, id string) (int64, error)
	IncrementLikes(ctx context.Context, id string) (int64, error)
	// Featured returns (nil, nil) when no featured article exists.
	Featured(ctx context.Context) (*model.Article, error)
	Recent(ctx context.Context, limit int64) ([]model.Article, error)
	ByKeywords(ctx context.Context, keywords []string, limit int64) ([]model.Article, error)
}

type mongoArticleRepository struct {
	coll *mongo.Collection
}

// NewArticleRepository returns a mongo-backed ArticleRepository over the
// "articles" collection.
func NewArticleRepository(db *mongo.Database) ArticleRepository {
	return &mongoArticleRepository{coll: db.Collection("articles")}
}

func (r *mongoArticleRepository) Insert(ctx context.Context, article *model.Article) (*model.Article, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	article.ID = primitive.NewObjectID()
	article.CreatedAt = now
	article.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, article)
	observe("insert", "articles", err)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return article, nil
}

func (r *mongoArticleRepository) Get(ctx context.Context, id string) (*model.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	var article model.Article
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNoDocument
	}
	observe("findOne", "articles", err)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) List(ctx context.Context) ([]model.Article, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	observe("find", "articles", err)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := []model.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

func (r *mongoArticleRepository) Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	update := bson.M{"$set": articleSetDoc(patch)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var article model.Article
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNoDocument
	}
	observe("findOneAndUpdate", "articles", err)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("update article %s: %w", id, err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) Delete(ctx context.Context, id string) (*model.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	var article model.Article
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNoDocument
	}
	observe("findOneAndDelete", "articles", err)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("delete article %s: %w", id, err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	article, err := r.incrementCounter(ctx, id, "views")
	if err != nil {
		return 0, err
	}
	return article.Views, nil
}

func (r *mongoArticleRepository) IncrementLikes(ctx context.Context, id string) (int64, error) {
	article, err := r.incrementCounter(ctx, id, "likes")
	if err != nil {
		return 0, err
	}
	return article.Likes, nil
}

// incrementCounter is a single atomic $inc; concurrent callers on the same
// id never lose updates.
func (r *mongoArticleRepository) incrementCounter(ctx context.Context, id, field string) (*model.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{field: 1},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var article model.Article
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNoDocument
	}
	observe("findOneAndUpdate", "articles", err)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("increment %s on article %s: %w", field, id, err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) Featured(ctx context.Context) (*model.Article, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var article model.Article
	err := r.coll.FindOne(ctx, bson.M{"isFeatured": true}, opts).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observe("findOne", "articles", nil)
		return nil, nil
	}
	observe("findOne", "articles", err)
	if err != nil {
		return nil, fmt.Errorf("find featured article: %w", err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) Recent(ctx context.Context, limit int64) ([]model.Article, error) {
	return r.findSorted(ctx, bson.M{}, limit)
}

func (r *mongoArticleRepository) ByKeywords(ctx context.Context, keywords []string, limit int64) ([]model.Article, error) {
	// $all gives the superset match: every requested keyword must be present.
	return r.findSorted(ctx, bson.M{"keywords": bson.M{"$all": keywords}}, limit)
}

// findSorted lists articles newest first with comments projected out;
// list views never need the comment tree and it can dominate payload size.
func (r *mongoArticleRepository) findSorted(ctx context.Context, filter bson.M, limit int64) ([]model.Article, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"comments": 0})

	cursor, err := r.coll.Find(ctx, filter, opts)
	observe("find", "articles", err)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := []model.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

// articleSetDoc builds the $set document from a patch: only non-nil fields
// are written, plus the updatedAt bump.
func articleSetDoc(patch model.ArticlePatch) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.CoverImage != nil {
		set["coverImage"] = *patch.CoverImage
	}
	if patch.Creator != nil {
		set["creator"] = *patch.Creator
	}
	if patch.ReadingTime != nil {
		set["readingTime"] = *patch.ReadingTime
	}
	if patch.Keywords != nil {
		set["keywords"] = *patch.Keywords
	}
	if patch.Comments != nil {
		set["comments"] = *patch.Comments
	}
	if patch.IsImportant != nil {
		set["isImportant"] = *patch.IsImportant
	}
	if patch.IsDraft != nil {
		set["isDraft"] = *patch.IsDraft
	}
	if patch.IsFeatured != nil {
		set["isFeatured"] = *patch.IsFeatured
	}
	return set
}
