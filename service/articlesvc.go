package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"atleti-backend/events"
	"atleti-backend/metrics"
	"atleti-backend/model"
	"atleti-backend/repository"
)

// List limits: 0 means "unspecified" and falls back to the default,
// anything else is clamped into [1, 50].
const (
	defaultListLimit = 10
	minListLimit     = 1
	maxListLimit     = 50
)

// ArticleService implements article operations on top of the repository.
type ArticleService struct {
	repo repository.ArticleRepository
	pub  *events.Publisher // optional, nil when NATS is not configured
}

func NewArticleService(repo repository.ArticleRepository, pub *events.Publisher) *ArticleService {
	return &ArticleService{repo: repo, pub: pub}
}

// Create validates the input, applies defaults and persists a new article.
func (s *ArticleService) Create(ctx context.Context, input model.ArticleInput) (*model.Article, error) {
	if err := validateArticleInput(input); err != nil {
		return nil, err
	}

	article := &model.Article{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		CoverImage:  input.CoverImage,
		Creator:     input.Creator,
		ReadingTime: input.ReadingTime,
		Keywords:    input.Keywords,
		Comments:    input.Comments,
		IsImportant: boolOr(input.IsImportant, false),
		IsDraft:     boolOr(input.IsDraft, true),
		IsFeatured:  boolOr(input.IsFeatured, false),
	}
	if article.Keywords == nil {
		article.Keywords = []string{}
	}
	if article.Comments == nil {
		article.Comments = []model.Comment{}
	}

	created, err := s.repo.Insert(ctx, article)
	if err != nil {
		return nil, err
	}
	s.publish("created", *created)
	return created, nil
}

// Get returns the article or ErrNotFound.
func (s *ArticleService) Get(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return article, nil
}

// List returns every article, comments included.
func (s *ArticleService) List(ctx context.Context) ([]model.Article, error) {
	return s.repo.List(ctx)
}

// Update merges the non-nil patch fields into the stored article and
// returns the post-update record.
func (s *ArticleService) Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error) {
	if err := validateArticlePatch(patch); err != nil {
		return nil, err
	}

	article, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	s.publish("updated", *article)
	return article, nil
}

// Delete removes and returns the article, or ErrNotFound.
func (s *ArticleService) Delete(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	s.publish("deleted", *article)
	return article, nil
}

// IncrementViews atomically adds 1 to views and returns the new value.
func (s *ArticleService) IncrementViews(ctx context.Context, id string) (int64, error) {
	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return 0, mapRepoErr(err, id)
	}
	metrics.CounterIncrementsTotal.WithLabelValues("views").Inc()
	return views, nil
}

// ToggleLike atomically adds 1 to likes and returns the new value.
// Despite the name this is an unconditional increment, not a per-user
// toggle; there is no user identity on this surface.
func (s *ArticleService) ToggleLike(ctx context.Context, id string) (int64, error) {
	likes, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return 0, mapRepoErr(err, id)
	}
	metrics.CounterIncrementsTotal.WithLabelValues("likes").Inc()
	return likes, nil
}

// Featured returns the most recently created article flagged isFeatured,
// or (nil, nil) when none exists. Absence is an expected outcome here,
// not an error.
func (s *ArticleService) Featured(ctx context.Context) (*model.Article, error) {
	return s.repo.Featured(ctx)
}

// Recent lists articles newest first. The limit is clamped into [1, 50]
// and defaults to 10 when zero; comments are excluded from the payload.
func (s *ArticleService) Recent(ctx context.Context, limit int) ([]model.Article, error) {
	return s.repo.Recent(ctx, clampLimit(limit))
}

// ByKeywords lists articles containing every requested keyword, newest
// first. Keywords are trimmed; an empty list after trimming is a
// validation error.
func (s *ArticleService) ByKeywords(ctx context.Context, keywords []string, limit int) ([]model.Article, error) {
	trimmed := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			trimmed = append(trimmed, kw)
		}
	}
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: at least one non-empty keyword is required", ErrValidation)
	}
	return s.repo.ByKeywords(ctx, trimmed, clampLimit(limit))
}

func (s *ArticleService) publish(action string, article model.Article) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishArticle(action, article); err != nil {
		log.Printf("[ERROR] publish article %s event for %s: %v", action, article.ID.Hex(), err)
	}
}

func validateArticleInput(input model.ArticleInput) error {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if input.Content == "" {
		missing = append(missing, "content")
	}
	if input.CoverImage == "" {
		missing = append(missing, "coverImage")
	}
	if input.Creator == "" {
		missing = append(missing, "creator")
	}
	if input.ReadingTime <= 0 {
		missing = append(missing, "readingTime")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// validateArticlePatch rejects patches that would blank out a required field.
func validateArticlePatch(patch model.ArticlePatch) error {
	var empty []string
	if patch.Title != nil && *patch.Title == "" {
		empty = append(empty, "title")
	}
	if patch.Description != nil && *patch.Description == "" {
		empty = append(empty, "description")
	}
	if patch.Content != nil && *patch.Content == "" {
		empty = append(empty, "content")
	}
	if patch.CoverImage != nil && *patch.CoverImage == "" {
		empty = append(empty, "coverImage")
	}
	if patch.Creator != nil && *patch.Creator == "" {
		empty = append(empty, "creator")
	}
	if patch.ReadingTime != nil && *patch.ReadingTime <= 0 {
		empty = append(empty, "readingTime")
	}
	if len(empty) > 0 {
		return fmt.Errorf("%w: required fields cannot be emptied: %s", ErrValidation, strings.Join(empty, ", "))
	}
	return nil
}

func clampLimit(limit int) int64 {
	switch {
	case limit == 0:
		return defaultListLimit
	case limit < minListLimit:
		return minListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return int64(limit)
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func mapRepoErr(err error, id string) error {
	if errors.Is(err, repository.ErrNoDocument) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}
