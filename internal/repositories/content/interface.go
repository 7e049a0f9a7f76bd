package content

import (
	"context"

	"github.com/solomonk/bunker/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/solomonk/bunker/internal/repositories/content Repository

// Repository defines read access to static game content plus the seed
// writes needed to load a pack
type Repository interface {
	// GetCharacteristics retrieves every known characteristic type
	GetCharacteristics(ctx context.Context) ([]*models.Characteristic, error)

	// GetCardsByPackAndCharacteristic retrieves the card pool for one
	// pack and characteristic type
	GetCardsByPackAndCharacteristic(ctx context.Context, input *GetCardsInput) ([]*models.CharacteristicCard, error)

	// GetActionCards retrieves the action-card pool for a pack
	GetActionCards(ctx context.Context, input *GetActionCardsInput) ([]*models.CharacteristicCard, error)

	// GetCard retrieves a single card by ID
	GetCard(ctx context.Context, input *GetCardInput) (*models.CharacteristicCard, error)

	// GetRandomCatastrophe draws a random catastrophe from a pack
	GetRandomCatastrophe(ctx context.Context, input *GetRandomInput) (*models.Catastrophe, error)

	// GetRandomShelter draws a random shelter from a pack
	GetRandomShelter(ctx context.Context, input *GetRandomInput) (*models.Shelter, error)

	// GetRandomEnding draws a random ending from a pack
	GetRandomEnding(ctx context.Context, input *GetRandomInput) (*models.Ending, error)

	// SaveCharacteristic persists a characteristic type
	SaveCharacteristic(ctx context.Context, input *SaveCharacteristicInput) error

	// SaveCard persists a card
	SaveCard(ctx context.Context, input *SaveCardInput) error

	// SaveCatastrophe persists a catastrophe
	SaveCatastrophe(ctx context.Context, input *SaveCatastropheInput) error

	// SaveShelter persists a shelter
	SaveShelter(ctx context.Context, input *SaveShelterInput) error

	// SaveEnding persists an ending
	SaveEnding(ctx context.Context, input *SaveEndingInput) error
}
