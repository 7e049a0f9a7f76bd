package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/solomonk/bunker/internal/models"
)

const (
	// Key prefixes for Redis
	characteristicKeyPrefix = "characteristic:"
	cardKeyPrefix           = "card:"
	catastropheKeyPrefix    = "catastrophe:"
	shelterKeyPrefix        = "shelter:"
	endingKeyPrefix         = "ending:"

	characteristicsKey = "characteristics"
)

// ErrNotFound is returned when the requested content does not exist
var ErrNotFound = errors.New("content not found")

// Config holds configuration for the Redis content repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed content repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func packCardsKey(packID, characteristicID int64) string {
	return fmt.Sprintf("pack:%d:char:%d:cards", packID, characteristicID)
}

func packCatastrophesKey(packID int64) string {
	return fmt.Sprintf("pack:%d:catastrophes", packID)
}

func packSheltersKey(packID int64) string {
	return fmt.Sprintf("pack:%d:shelters", packID)
}

func packEndingsKey(packID int64) string {
	return fmt.Sprintf("pack:%d:endings", packID)
}

// GetCharacteristics retrieves every known characteristic type
func (r *redisRepository) GetCharacteristics(ctx context.Context) ([]*models.Characteristic, error) {
	ids, err := r.client.SMembers(ctx, characteristicsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characteristics: %w", err)
	}

	characteristics := make([]*models.Characteristic, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, characteristicKeyPrefix+id).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get characteristic %s: %w", id, err)
		}

		var characteristic models.Characteristic
		if err := json.Unmarshal([]byte(data), &characteristic); err != nil {
			return nil, fmt.Errorf("failed to unmarshal characteristic: %w", err)
		}
		characteristics = append(characteristics, &characteristic)
	}

	return characteristics, nil
}

// GetCardsByPackAndCharacteristic retrieves the card pool for one pack and
// characteristic type
func (r *redisRepository) GetCardsByPackAndCharacteristic(ctx context.Context, input *GetCardsInput) ([]*models.CharacteristicCard, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	return r.cardsFromSet(ctx, packCardsKey(input.PackID, input.CharacteristicID))
}

// GetActionCards retrieves the action-card pool for a pack
func (r *redisRepository) GetActionCards(ctx context.Context, input *GetActionCardsInput) ([]*models.CharacteristicCard, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	return r.cardsFromSet(ctx, packCardsKey(input.PackID, models.ActionCharacteristicID))
}

// GetCard retrieves a single card by ID
func (r *redisRepository) GetCard(ctx context.Context, input *GetCardInput) (*models.CharacteristicCard, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	data, err := r.client.Get(ctx, fmt.Sprintf("%s%d", cardKeyPrefix, input.CardID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	var card models.CharacteristicCard
	if err := json.Unmarshal([]byte(data), &card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card: %w", err)
	}

	return &card, nil
}

func (r *redisRepository) cardsFromSet(ctx context.Context, key string) ([]*models.CharacteristicCard, error) {
	ids, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	cards := make([]*models.CharacteristicCard, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, cardKeyPrefix+id).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get card %s: %w", id, err)
		}

		var card models.CharacteristicCard
		if err := json.Unmarshal([]byte(data), &card); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card: %w", err)
		}
		cards = append(cards, &card)
	}

	return cards, nil
}

// randomFromSet picks one member of the index set and fetches its value.
func (r *redisRepository) randomFromSet(ctx context.Context, setKey, keyPrefix string, out interface{}) error {
	id, err := r.client.SRandMember(ctx, setKey).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to pick from %s: %w", setKey, err)
	}

	data, err := r.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s%s: %w", keyPrefix, id, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s%s: %w", keyPrefix, id, err)
	}

	return nil
}

// GetRandomCatastrophe draws a random catastrophe from a pack
func (r *redisRepository) GetRandomCatastrophe(ctx context.Context, input *GetRandomInput) (*models.Catastrophe, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var catastrophe models.Catastrophe
	if err := r.randomFromSet(ctx, packCatastrophesKey(input.PackID), catastropheKeyPrefix, &catastrophe); err != nil {
		return nil, err
	}
	return &catastrophe, nil
}

// GetRandomShelter draws a random shelter from a pack
func (r *redisRepository) GetRandomShelter(ctx context.Context, input *GetRandomInput) (*models.Shelter, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var shelter models.Shelter
	if err := r.randomFromSet(ctx, packSheltersKey(input.PackID), shelterKeyPrefix, &shelter); err != nil {
		return nil, err
	}
	return &shelter, nil
}

// GetRandomEnding draws a random ending from a pack
func (r *redisRepository) GetRandomEnding(ctx context.Context, input *GetRandomInput) (*models.Ending, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var ending models.Ending
	if err := r.randomFromSet(ctx, packEndingsKey(input.PackID), endingKeyPrefix, &ending); err != nil {
		return nil, err
	}
	return &ending, nil
}

// SaveCharacteristic persists a characteristic type
func (r *redisRepository) SaveCharacteristic(ctx context.Context, input *SaveCharacteristicInput) error {
	if input == nil || input.Characteristic == nil {
		return errors.New("input and characteristic cannot be nil")
	}

	data, err := json.Marshal(input.Characteristic)
	if err != nil {
		return fmt.Errorf("failed to marshal characteristic: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", characteristicKeyPrefix, input.Characteristic.ID), data, 0)
	pipe.SAdd(ctx, characteristicsKey, fmt.Sprintf("%d", input.Characteristic.ID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save characteristic: %w", err)
	}

	return nil
}

// SaveCard persists a card and indexes it under its pack and characteristic
func (r *redisRepository) SaveCard(ctx context.Context, input *SaveCardInput) error {
	if input == nil || input.Card == nil {
		return errors.New("input and card cannot be nil")
	}

	data, err := json.Marshal(input.Card)
	if err != nil {
		return fmt.Errorf("failed to marshal card: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", cardKeyPrefix, input.Card.ID), data, 0)
	pipe.SAdd(ctx, packCardsKey(input.Card.PackID, input.Card.CharacteristicID), fmt.Sprintf("%d", input.Card.ID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	return nil
}

// SaveCatastrophe persists a catastrophe
func (r *redisRepository) SaveCatastrophe(ctx context.Context, input *SaveCatastropheInput) error {
	if input == nil || input.Catastrophe == nil {
		return errors.New("input and catastrophe cannot be nil")
	}

	data, err := json.Marshal(input.Catastrophe)
	if err != nil {
		return fmt.Errorf("failed to marshal catastrophe: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", catastropheKeyPrefix, input.Catastrophe.ID), data, 0)
	pipe.SAdd(ctx, packCatastrophesKey(input.Catastrophe.PackID), fmt.Sprintf("%d", input.Catastrophe.ID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save catastrophe: %w", err)
	}

	return nil
}

// SaveShelter persists a shelter
func (r *redisRepository) SaveShelter(ctx context.Context, input *SaveShelterInput) error {
	if input == nil || input.Shelter == nil {
		return errors.New("input and shelter cannot be nil")
	}

	data, err := json.Marshal(input.Shelter)
	if err != nil {
		return fmt.Errorf("failed to marshal shelter: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", shelterKeyPrefix, input.Shelter.ID), data, 0)
	pipe.SAdd(ctx, packSheltersKey(input.Shelter.PackID), fmt.Sprintf("%d", input.Shelter.ID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save shelter: %w", err)
	}

	return nil
}

// SaveEnding persists an ending
func (r *redisRepository) SaveEnding(ctx context.Context, input *SaveEndingInput) error {
	if input == nil || input.Ending == nil {
		return errors.New("input and ending cannot be nil")
	}

	data, err := json.Marshal(input.Ending)
	if err != nil {
		return fmt.Errorf("failed to marshal ending: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", endingKeyPrefix, input.Ending.ID), data, 0)
	pipe.SAdd(ctx, packEndingsKey(input.Ending.PackID), fmt.Sprintf("%d", input.Ending.ID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save ending: %w", err)
	}

	return nil
}
