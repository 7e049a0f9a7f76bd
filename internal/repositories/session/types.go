package session

import "github.com/solomonk/bunker/internal/models"

// CreateSessionInput contains parameters for persisting a new session
type CreateSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID int64
}

// UpdateSessionInput contains parameters for updating a session
type UpdateSessionInput struct {
	Session *models.Session
}

// CreatePlayerInput contains parameters for persisting a new player
type CreatePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID int64
}

// UpdatePlayerInput contains parameters for updating a player
type UpdatePlayerInput struct {
	Player *models.Player
}

// DeletePlayerInput contains parameters for deleting a player
type DeletePlayerInput struct {
	PlayerID int64
}

// GetPlayersBySessionInput contains parameters for listing session players
type GetPlayersBySessionInput struct {
	SessionID int64
}

// MarkEliminatedInput contains parameters for eliminating a player
type MarkEliminatedInput struct {
	PlayerID int64
}

// EliminatedCountInput contains parameters for counting eliminations
type EliminatedCountInput struct {
	SessionID int64
}

// AssignCardInput contains parameters for dealing a card to a player
type AssignCardInput struct {
	PlayerID int64
	CardID   int64
}

// GetPlayerAssignmentsInput contains parameters for listing a player's cards
type GetPlayerAssignmentsInput struct {
	PlayerID int64
}

// RevealCardInput contains parameters for revealing a dealt card
type RevealCardInput struct {
	PlayerID int64
	CardID   int64
}
