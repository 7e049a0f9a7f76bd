package models

// ActionCharacteristicID is the reserved characteristic type for action cards.
const ActionCharacteristicID int64 = 0

// Characteristic represents a card category, such as profession or health
type Characteristic struct {
	// ID is the unique identifier for the characteristic type
	ID int64

	// Name is the display name of the characteristic
	Name string
}

// CharacteristicCard is a single piece of static content dealt to players
type CharacteristicCard struct {
	// ID is the unique identifier for the card
	ID int64

	// PackID is the content pack this card belongs to
	PackID int64

	// CharacteristicID is the characteristic type of the card,
	// ActionCharacteristicID for action cards
	CharacteristicID int64

	// Info is the card text shown to players
	Info string

	// UtilityIndex rates how useful the card is, used by balance modes
	UtilityIndex int
}

// CardAssignment links a dealt card to the player holding it
type CardAssignment struct {
	// PlayerID is the holder of the card
	PlayerID int64

	// CardID is the dealt card
	CardID int64

	// Revealed reports whether the holder has shown the card; it never
	// flips back to false
	Revealed bool
}

// Catastrophe is the scenario disaster drawn for a session
type Catastrophe struct {
	// ID is the unique identifier for the catastrophe
	ID int64

	// PackID is the content pack this catastrophe belongs to
	PackID int64

	// Text is the catastrophe description
	Text string
}

// Shelter is the scenario shelter drawn for a session
type Shelter struct {
	// ID is the unique identifier for the shelter
	ID int64

	// PackID is the content pack this shelter belongs to
	PackID int64

	// Name is the shelter description
	Name string
}

// Ending is the scenario epilogue drawn for a session
type Ending struct {
	// ID is the unique identifier for the ending
	ID int64

	// PackID is the content pack this ending belongs to
	PackID int64

	// Text is the ending description
	Text string
}
