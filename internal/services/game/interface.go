package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/solomonk/bunker/internal/services/game Service

// Service is the session directory: it owns every live session and routes
// connection-scoped requests to the right one
type Service interface {
	// CreateSession opens a new lobby with the caller as host
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds the caller to an open lobby
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// StartSession begins the game; host only
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// LeaveSession removes the caller; a host leaving a lobby dissolves it
	LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error)

	// KickPlayer removes another player; host only
	KickPlayer(ctx context.Context, input *KickPlayerInput) (*KickPlayerOutput, error)

	// SelectOrderNumber claims a seat number in the lobby
	SelectOrderNumber(ctx context.Context, input *SelectOrderNumberInput) (*SelectOrderNumberOutput, error)

	// RevealCharacteristic flips one of the caller's cards face up
	RevealCharacteristic(ctx context.Context, input *RevealCharacteristicInput) (*RevealCharacteristicOutput, error)

	// CastVote records or replaces the caller's vote this round
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// UseAction plays one of the caller's action cards
	UseAction(ctx context.Context, input *UseActionInput) (*UseActionOutput, error)

	// Disconnect handles a dropped connection as an implicit leave
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)
}
