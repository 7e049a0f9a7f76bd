package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound     GameError = "session not found"
	ErrPlayerNotFound      GameError = "player not found"
	ErrCardNotFound        GameError = "card not found"
	ErrNotHost             GameError = "only the host may do this"
	ErrInvalidSessionState GameError = "invalid session state"
	ErrInvalidPhase        GameError = "invalid round phase"
	ErrSessionFull         GameError = "session is at maximum capacity"
	ErrOrderNumberTaken    GameError = "order number already taken"
	ErrInvalidVoteTarget   GameError = "invalid vote target"
	ErrNotActionCard       GameError = "card is not an action card"
	ErrInvalidSettings     GameError = "invalid session settings"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilSessionRepo      GameError = "session repository cannot be nil"
	ErrNilContentRepo      GameError = "content repository cannot be nil"
	ErrNilRegistry         GameError = "connection registry cannot be nil"
	ErrNilAdvertiser       GameError = "advertiser cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
	ErrNilPicker           GameError = "picker cannot be nil"
)
