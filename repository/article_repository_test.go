package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atleti-backend/model"
)

func TestArticleSetDocOnlyPatchedFields(t *testing.T) {
	title := "New title"
	featured := true

	set := articleSetDoc(model.ArticlePatch{Title: &title, IsFeatured: &featured})

	assert.Equal(t, "New title", set["title"])
	assert.Equal(t, true, set["isFeatured"])
	assert.Contains(t, set, "updatedAt")
	assert.Len(t, set, 3, "absent patch fields must not appear in $set")

	// Counters can never be written through a patch.
	assert.NotContains(t, set, "views")
	assert.NotContains(t, set, "likes")
	assert.NotContains(t, set, "coms")
}

func TestArticleSetDocEmptyPatchBumpsTimestampOnly(t *testing.T) {
	set := articleSetDoc(model.ArticlePatch{})

	assert.Len(t, set, 1)
	assert.Contains(t, set, "updatedAt")
}

func TestArticleSetDocNestedComments(t *testing.T) {
	comments := []model.Comment{
		{ID: "c1", Creator: "fan", Content: "Vamos", Replies: []model.Comment{
			{ID: "c2", Creator: "other", Content: "Si"},
		}},
	}

	set := articleSetDoc(model.ArticlePatch{Comments: &comments})
	require.Contains(t, set, "comments")
	got := set["comments"].([]model.Comment)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Replies, 1)
}

func TestArticleInvalidIDShortCircuits(t *testing.T) {
	// An id that cannot be a mongo ObjectID matches no document; the
	// repository reports that without touching the collection.
	r := &mongoArticleRepository{}
	ctx := context.Background()

	_, err := r.Get(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = r.Update(ctx, "not-a-hex-id", model.ArticlePatch{})
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = r.Delete(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = r.IncrementViews(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = r.IncrementLikes(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNoDocument)
}
