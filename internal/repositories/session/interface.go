package session

import (
	"context"

	"github.com/solomonk/bunker/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/solomonk/bunker/internal/repositories/session Repository

// Repository defines persistence for sessions, their players and the cards
// dealt to them
type Repository interface {
	// CreateSession persists a new session and allocates its ID
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// UpdateSession persists changes to an existing session
	UpdateSession(ctx context.Context, input *UpdateSessionInput) error

	// CreatePlayer persists a new player and allocates its ID
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*models.Player, error)

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// UpdatePlayer persists changes to an existing player
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) error

	// DeletePlayer removes a player and their card assignments
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error

	// GetPlayersBySession retrieves every player in a session, ordered by ID
	GetPlayersBySession(ctx context.Context, input *GetPlayersBySessionInput) ([]*models.Player, error)

	// MarkEliminated flags a player as voted out
	MarkEliminated(ctx context.Context, input *MarkEliminatedInput) error

	// EliminatedCount returns how many players of a session are eliminated
	EliminatedCount(ctx context.Context, input *EliminatedCountInput) (int, error)

	// AssignCard records that a player holds a card
	AssignCard(ctx context.Context, input *AssignCardInput) error

	// GetPlayerAssignments retrieves every card assignment of a player
	GetPlayerAssignments(ctx context.Context, input *GetPlayerAssignmentsInput) ([]*models.CardAssignment, error)

	// RevealCard marks an assignment as revealed; reveals never reverse
	RevealCard(ctx context.Context, input *RevealCardInput) error
}
