package game

import (
	"context"

	"github.com/solomonk/bunker/internal/common/clock"
	"github.com/solomonk/bunker/internal/common/uuid"
	"github.com/solomonk/bunker/internal/draw"
	"github.com/solomonk/bunker/internal/models"
	"github.com/solomonk/bunker/internal/protocol"
	"github.com/solomonk/bunker/internal/registry"
	contentRepo "github.com/solomonk/bunker/internal/repositories/content"
	sessionRepo "github.com/solomonk/bunker/internal/repositories/session"
	"github.com/solomonk/bunker/internal/services/discovery"
)

// Phase represents where a running session is within its round loop
type Phase string

const (
	// PhaseDealing indicates cards are being dealt and the scenario drawn
	PhaseDealing Phase = "dealing"

	// PhaseDiscussion indicates players are arguing their case
	PhaseDiscussion Phase = "discussion"

	// PhaseVoting indicates votes are being collected
	PhaseVoting Phase = "voting"

	// PhaseFinished indicates the session has ended
	PhaseFinished Phase = "finished"
)

// Config holds configuration for the game service
type Config struct {
	// SessionRepo persists sessions, players and dealt cards
	SessionRepo sessionRepo.Repository

	// ContentRepo serves card pools and scenario content
	ContentRepo contentRepo.Repository

	// Registry delivers messages to live connections
	Registry registry.Registry

	// Advertiser announces joinable lobbies; best-effort
	Advertiser discovery.Advertiser

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator mints user identities
	UUIDGenerator uuid.UUID

	// Picker provides randomness for dealing and tie-breaks
	Picker *draw.Picker

	// ActionResolver handles played action cards; defaults to a
	// broadcast-only resolver
	ActionResolver ActionResolver

	// MinPlayers required before a session may start; defaults to
	// models.MinPlayers
	MinPlayers int
}

// ResolveActionInput contains parameters for resolving a played action card
type ResolveActionInput struct {
	SessionID      int64
	PlayerID       int64
	Card           *models.CharacteristicCard
	TargetPlayerID int64
}

// ActionResolver applies the effect of an action card. The default
// implementation only announces the play; game-altering effects plug in
// here.
type ActionResolver interface {
	Resolve(ctx context.Context, input *ResolveActionInput) error
}

// CreateSessionInput contains parameters for opening a new lobby
type CreateSessionInput struct {
	ConnectionID string
	Settings     protocol.Settings
}

// CreateSessionOutput contains the result of opening a lobby
type CreateSessionOutput struct {
	SessionID int64
	Host      *models.Player
}

// JoinSessionInput contains parameters for joining a lobby
type JoinSessionInput struct {
	ConnectionID string
	SessionID    int64
	Name         string
}

// JoinSessionOutput contains the result of joining
type JoinSessionOutput struct {
	Player *models.Player
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	ConnectionID string
	SessionID    int64
}

// StartSessionOutput contains the result of starting
type StartSessionOutput struct{}

// LeaveSessionInput contains parameters for leaving a session
type LeaveSessionInput struct {
	ConnectionID string
	SessionID    int64
}

// LeaveSessionOutput contains the result of leaving
type LeaveSessionOutput struct{}

// KickPlayerInput contains parameters for removing another player
type KickPlayerInput struct {
	ConnectionID   string
	SessionID      int64
	TargetPlayerID int64
}

// KickPlayerOutput contains the result of a kick
type KickPlayerOutput struct{}

// SelectOrderNumberInput contains parameters for claiming a seat number
type SelectOrderNumberInput struct {
	ConnectionID string
	SessionID    int64
	Number       int
}

// SelectOrderNumberOutput contains the updated player
type SelectOrderNumberOutput struct {
	Player *models.Player
}

// RevealCharacteristicInput contains parameters for flipping a card face up
type RevealCharacteristicInput struct {
	ConnectionID string
	SessionID    int64
	CardID       int64
}

// RevealCharacteristicOutput contains the result of a reveal
type RevealCharacteristicOutput struct{}

// CastVoteInput contains parameters for casting a vote
type CastVoteInput struct {
	ConnectionID   string
	SessionID      int64
	TargetPlayerID int64
}

// CastVoteOutput contains the result of a vote
type CastVoteOutput struct{}

// UseActionInput contains parameters for playing an action card
type UseActionInput struct {
	ConnectionID   string
	SessionID      int64
	CardID         int64
	TargetPlayerID int64
}

// UseActionOutput contains the result of an action play
type UseActionOutput struct{}

// DisconnectInput contains parameters for handling a dropped connection
type DisconnectInput struct {
	ConnectionID string
}

// DisconnectOutput contains the result of a disconnect
type DisconnectOutput struct{}
