package content

import "github.com/solomonk/bunker/internal/models"

// GetCardsInput contains parameters for retrieving a card pool
type GetCardsInput struct {
	PackID           int64
	CharacteristicID int64
}

// GetActionCardsInput contains parameters for retrieving action cards
type GetActionCardsInput struct {
	PackID int64
}

// GetCardInput contains parameters for retrieving a single card
type GetCardInput struct {
	CardID int64
}

// GetRandomInput contains parameters for drawing random scenario content
type GetRandomInput struct {
	PackID int64
}

// SaveCharacteristicInput contains parameters for persisting a characteristic
type SaveCharacteristicInput struct {
	Characteristic *models.Characteristic
}

// SaveCardInput contains parameters for persisting a card
type SaveCardInput struct {
	Card *models.CharacteristicCard
}

// SaveCatastropheInput contains parameters for persisting a catastrophe
type SaveCatastropheInput struct {
	Catastrophe *models.Catastrophe
}

// SaveShelterInput contains parameters for persisting a shelter
type SaveShelterInput struct {
	Shelter *models.Shelter
}

// SaveEndingInput contains parameters for persisting an ending
type SaveEndingInput struct {
	Ending *models.Ending
}
