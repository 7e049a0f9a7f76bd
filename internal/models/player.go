package models

// OrderUnselected is the order number of a player who has not picked a seat yet.
const OrderUnselected = -1

// Player represents a participant in a session
type Player struct {
	// ID is the unique identifier for the player
	ID int64

	// SessionID is the session this player belongs to
	SessionID int64

	// Name is the display name of the player
	Name string

	// ConnectionID is the registry handle of the player's live connection
	ConnectionID string

	// UserID is the stable identity token for the user behind the player
	UserID string

	// OrderNumber is the seat index chosen in the lobby, OrderUnselected
	// until the player picks one
	OrderNumber int

	// Eliminated reports whether the player has been voted out
	Eliminated bool

	// Host reports whether this player created the session
	Host bool
}
