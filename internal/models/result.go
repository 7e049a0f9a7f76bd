package models

import (
	"time"
)

// GameResult is assembled once when a session finishes and never mutated
type GameResult struct {
	// SessionID is the session this result belongs to
	SessionID int64

	// EndedAt is when the session finished
	EndedAt time.Time

	// Survivors are the players who kept their bunker seats
	Survivors []*Player

	// Eliminated are the players voted out during the game
	Eliminated []*Player

	// RevealedCards maps each player to the cards they showed
	RevealedCards map[int64][]*CharacteristicCard

	// HiddenCards maps each player to the cards they never showed
	HiddenCards map[int64][]*CharacteristicCard

	// Catastrophe is the scenario catastrophe text
	Catastrophe string

	// Shelter is the scenario shelter name
	Shelter string

	// Ending is the scenario ending text
	Ending string
}
