package service

import (
	"context"
	"fmt"
	"strings"

	"atleti-backend/model"
	"atleti-backend/repository"
)

// PlayerService implements player operations on top of the repository.
type PlayerService struct {
	repo repository.PlayerRepository
}

func NewPlayerService(repo repository.PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// Create validates the input and persists a new player.
func (s *PlayerService) Create(ctx context.Context, player model.Player) (*model.Player, error) {
	if err := validatePlayer(player); err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, &player)
}

// Get returns the player or ErrNotFound.
func (s *PlayerService) Get(ctx context.Context, id string) (*model.Player, error) {
	player, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return player, nil
}

// List returns all players, optionally filtered to an exact season match.
// The season string is opaque; no format is enforced.
func (s *PlayerService) List(ctx context.Context, season string) ([]model.Player, error) {
	return s.repo.List(ctx, season)
}

// Update merges the non-nil patch fields into the stored player.
func (s *PlayerService) Update(ctx context.Context, id string, patch model.PlayerPatch) (*model.Player, error) {
	if err := validatePlayerPatch(patch); err != nil {
		return nil, err
	}

	player, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return player, nil
}

// Delete removes and returns the player, or ErrNotFound.
func (s *PlayerService) Delete(ctx context.Context, id string) (*model.Player, error) {
	player, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return player, nil
}

func validatePlayer(player model.Player) error {
	var missing []string
	if player.Name == "" {
		missing = append(missing, "name")
	}
	if player.PositionSpecific == "" {
		missing = append(missing, "position_specific")
	}
	if player.PositionExtended == "" {
		missing = append(missing, "position_extended")
	}
	if player.URLImage == "" {
		missing = append(missing, "url_image")
	}
	if player.Season == "" {
		missing = append(missing, "season")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func validatePlayerPatch(patch model.PlayerPatch) error {
	var empty []string
	if patch.Name != nil && *patch.Name == "" {
		empty = append(empty, "name")
	}
	if patch.PositionSpecific != nil && *patch.PositionSpecific == "" {
		empty = append(empty, "position_specific")
	}
	if patch.PositionExtended != nil && *patch.PositionExtended == "" {
		empty = append(empty, "position_extended")
	}
	if patch.URLImage != nil && *patch.URLImage == "" {
		empty = append(empty, "url_image")
	}
	if patch.Season != nil && *patch.Season == "" {
		empty = append(empty, "season")
	}
	if len(empty) > 0 {
		return fmt.Errorf("%w: required fields cannot be emptied: %s", ErrValidation, strings.Join(empty, ", "))
	}
	return nil
}
