package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

func TestRegister(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("CreatePlayer", mock.Anything, mock.MatchedBy(func(p *domain.Player) bool {
		return p.Username == "alice" && p.DisplayName == "Alice W"
	})).Return(nil)

	p, err := svc.Register(context.Background(), "  alice  ", "Alice W")

	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, 1, p.CurrentLevel)
	assert.Equal(t, 0, p.TotalExp)
	assert.Equal(t, domain.DefaultHonorPoints, p.HonorPoints)
}

func TestRegister_DefaultsDisplayName(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("CreatePlayer", mock.Anything, mock.AnythingOfType("*domain.Player")).Return(nil)

	p, err := svc.Register(context.Background(), "bob", "")

	require.NoError(t, err)
	assert.Equal(t, "bob", p.DisplayName)
}

func TestRegister_EmptyUsername(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "   ", "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything)
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("CreatePlayer", mock.Anything, mock.AnythingOfType("*domain.Player")).Return(domain.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), "alice", "")

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestGetByUsername(t *testing.T) {
	repo := new(repository.MockGame)
	svc := NewService(repo)

	repo.On("GetPlayerByUsername", mock.Anything, "alice").Return(&domain.Player{
		ID: "11111111-1111-1111-1111-111111111111", Username: "alice",
	}, nil)

	p, err := svc.GetByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
}
