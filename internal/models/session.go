package models

import (
	"time"
)

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	// SessionStatusLobby indicates a session is waiting for players to join
	SessionStatusLobby SessionStatus = "lobby"

	// SessionStatusInProgress indicates rounds are being played
	SessionStatusInProgress SessionStatus = "in_progress"

	// SessionStatusFinished indicates the game has ended
	SessionStatusFinished SessionStatus = "finished"
)

// VoteVisibility controls whether individual votes are shown to players
type VoteVisibility string

const (
	// VoteVisibilityAnonymous broadcasts vote counts only
	VoteVisibilityAnonymous VoteVisibility = "anonymous"

	// VoteVisibilityPublic additionally broadcasts who voted for whom
	VoteVisibilityPublic VoteVisibility = "public"
)

// BalanceMode controls how card pools are narrowed while dealing
type BalanceMode string

const (
	// BalanceDisabled deals from the full card pool
	BalanceDisabled BalanceMode = "disabled"

	// BalanceMedium keeps cards within 3 utility points of the pool mean
	BalanceMedium BalanceMode = "medium"

	// BalanceStrict keeps cards within 2 utility points of the pool mean
	BalanceStrict BalanceMode = "strict"
)

// Session represents one game instance, from lobby through finish
type Session struct {
	// ID is the unique identifier for the session
	ID int64

	// HostID is the player ID of the session host
	HostID int64

	// TargetPlayers is the number of seats the host opened
	TargetPlayers int

	// PackID selects the content pack cards are dealt from
	PackID int64

	// DiscussionSecs is the length of each discussion phase
	DiscussionSecs int

	// VoteSecs is the length of each voting phase
	VoteSecs int

	// VoteVisibility is the vote display mode
	VoteVisibility VoteVisibility

	// Balance is the dealing-time balance mode
	Balance BalanceMode

	// Status is the lifecycle state of the session
	Status SessionStatus

	// CurrentRound is the round being played, starting at 1
	CurrentRound int

	// Catastrophe is the scenario catastrophe text, set after dealing
	Catastrophe string

	// Shelter is the scenario shelter name, set after dealing
	Shelter string

	// Ending is the scenario ending text, set after dealing
	Ending string

	// StateJSON is a serialized snapshot of transient round state
	StateJSON string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

const (
	// MinPlayers is the smallest player count a session can start with
	MinPlayers = 4

	// MaxPlayers is the largest supported player count
	MaxPlayers = 18
)

// Capacity returns the number of surviving seats for n players.
func Capacity(n int) int {
	return n / 2
}

// TotalEliminations returns how many players must be eliminated before the
// session finishes.
func TotalEliminations(n int) int {
	return n - Capacity(n)
}
