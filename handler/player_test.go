package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"atleti-backend/model"
)

func TestCreatePlayerReturns201(t *testing.T) {
	r := newTestRouter(newMemArticleRepo(), newMemPlayerRepo())

	w := doJSON(t, r, http.MethodPost, "/players", gin.H{
		"name":              "J. Oblak",
		"number":            13,
		"position_specific": "Goalkeeper",
		"position_extended": "Goalkeeper",
		"url_image":         "https://images.example.com/oblak.png",
		"season":            "2024-2025",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var player model.Player
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &player))
	assert.False(t, player.ID.IsZero())
}

func TestCreatePlayerMissingFieldReturns400(t *testing.T) {
	r := newTestRouter(newMemArticleRepo(), newMemPlayerRepo())

	w := doJSON(t, r, http.MethodPost, "/players", gin.H{"name": "J. Oblak"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPlayersSeasonFilter(t *testing.T) {
	repo := newMemPlayerRepo()
	r := newTestRouter(newMemArticleRepo(), repo)

	for _, season := range []string{"2023-2024", "2024-2025"} {
		_, err := repo.Insert(context.Background(), &model.Player{Name: "p", Season: season})
		require.NoError(t, err)
	}

	w := doJSON(t, r, http.MethodGet, "/players", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var players []model.Player
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &players))
	assert.Len(t, players, 2)

	w = doJSON(t, r, http.MethodGet, "/players?season=2024-2025", nil)
	require.Equal(t, http.StatusOK, w.Code)
	players = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "2024-2025", players[0].Season)
}

func TestDeletePlayerUnknownIDReturns404(t *testing.T) {
	r := newTestRouter(newMemArticleRepo(), newMemPlayerRepo())

	w := doJSON(t, r, http.MethodDelete, "/players/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
