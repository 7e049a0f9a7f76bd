package protocol

import "github.com/solomonk/bunker/internal/models"

// Client message type tags as they appear on the wire
const (
	MessageTypeCreateSession        = "CreateSession"
	MessageTypeJoinSession          = "JoinSession"
	MessageTypeStartSession         = "StartSession"
	MessageTypeRevealCharacteristic = "RevealCharacteristic"
	MessageTypeVote                 = "Vote"
	MessageTypeUseAction            = "UseAction"
	MessageTypeLeaveSession         = "LeaveSession"
	MessageTypeKickPlayer           = "KickPlayer"
	MessageTypeSelectOrderNumber    = "SelectOrderNumber"
)

// Message is a client to server request
type Message interface {
	// MessageType returns the wire tag for the envelope
	MessageType() string
}

// Settings carries the host's chosen session parameters
type Settings struct {
	// TargetPlayers is the intended table size
	TargetPlayers int

	// PackID selects the content pack to deal from
	PackID int64

	// DiscussionSecs is the discussion phase length in seconds
	DiscussionSecs int

	// VoteSecs is the voting phase length in seconds
	VoteSecs int

	// VoteVisibility controls whether per-voter choices are published
	VoteVisibility models.VoteVisibility

	// Balance selects the card pool balancing mode
	Balance models.BalanceMode
}

// CreateSession asks the server to open a new lobby
type CreateSession struct {
	Settings Settings
}

// MessageType returns the wire tag for the envelope
func (m *CreateSession) MessageType() string { return MessageTypeCreateSession }

// JoinSession asks to join an open lobby
type JoinSession struct {
	SessionID int64
	Name      string
}

// MessageType returns the wire tag for the envelope
func (m *JoinSession) MessageType() string { return MessageTypeJoinSession }

// StartSession asks the host to begin the game
type StartSession struct {
	SessionID int64
}

// MessageType returns the wire tag for the envelope
func (m *StartSession) MessageType() string { return MessageTypeStartSession }

// RevealCharacteristic asks to flip one of the sender's own cards face up
type RevealCharacteristic struct {
	SessionID int64
	CardID    int64
}

// MessageType returns the wire tag for the envelope
func (m *RevealCharacteristic) MessageType() string { return MessageTypeRevealCharacteristic }

// Vote casts or replaces the sender's vote for the current round
type Vote struct {
	SessionID      int64
	TargetPlayerID int64
}

// MessageType returns the wire tag for the envelope
func (m *Vote) MessageType() string { return MessageTypeVote }

// UseAction plays one of the sender's action cards
type UseAction struct {
	SessionID      int64
	CardID         int64
	TargetPlayerID int64
}

// MessageType returns the wire tag for the envelope
func (m *UseAction) MessageType() string { return MessageTypeUseAction }

// LeaveSession removes the sender from the session
type LeaveSession struct {
	SessionID int64
}

// MessageType returns the wire tag for the envelope
func (m *LeaveSession) MessageType() string { return MessageTypeLeaveSession }

// KickPlayer removes another player; host only
type KickPlayer struct {
	SessionID      int64
	TargetPlayerID int64
}

// MessageType returns the wire tag for the envelope
func (m *KickPlayer) MessageType() string { return MessageTypeKickPlayer }

// SelectOrderNumber claims a seat number in the lobby
type SelectOrderNumber struct {
	SessionID int64
	Number    int
}

// MessageType returns the wire tag for the envelope
func (m *SelectOrderNumber) MessageType() string { return MessageTypeSelectOrderNumber }
