package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atleti-backend/model"
	"atleti-backend/service"
)

// PlayerHandler exposes the player routes.
type PlayerHandler struct {
	svc *service.PlayerService
}

func NewPlayerHandler(svc *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

// Create handles POST /players.
func (h *PlayerHandler) Create(c *gin.Context) {
	var player model.Player
	if err := c.ShouldBindJSON(&player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), player)
	if err != nil {
		writeError(c, "create player", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get handles GET /players/:id.
func (h *PlayerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	player, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "get player "+id, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// List handles GET /players with an optional ?season= exact-match filter.
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.svc.List(c.Request.Context(), c.Query("season"))
	if err != nil {
		writeError(c, "list players", err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// Update handles PATCH /players/:id.
func (h *PlayerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch model.PlayerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, "update player "+id, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Delete handles DELETE /players/:id.
func (h *PlayerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	player, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, "delete player "+id, err)
		return
	}
	c.JSON(http.StatusOK, player)
}
