package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// Service defines the interface for player account operations
type Service interface {
	Register(ctx context.Context, username, displayName string) (*domain.Player, error)
	Get(ctx context.Context, playerID string) (*domain.Player, error)
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
}

// service implements the Service interface
type service struct {
	repo repository.Game
}

// NewService creates a new player service
func NewService(repo repository.Game) Service {
	return &service{repo: repo}
}

// Register creates a new player with starting progression state
func (s *service) Register(ctx context.Context, username, displayName string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", domain.ErrInvalidInput)
	}
	if displayName == "" {
		displayName = username
	}

	p := &domain.Player{
		Username:     username,
		DisplayName:  displayName,
		CurrentExp:   0,
		TotalExp:     0,
		CurrentLevel: 1,
		HonorPoints:  domain.DefaultHonorPoints,
	}
	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		return nil, err
	}

	log.Info("Player registered", "player_id", p.ID, "username", p.Username)
	return p, nil
}

// Get returns a player by ID
func (s *service) Get(ctx context.Context, playerID string) (*domain.Player, error) {
	return s.repo.GetPlayerByID(ctx, playerID)
}

// GetByUsername returns a player by username
func (s *service) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return s.repo.GetPlayerByUsername(ctx, username)
}
