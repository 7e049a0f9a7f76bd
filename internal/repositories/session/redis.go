package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/solomonk/bunker/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "session:"
	playerKeyPrefix  = "player:"

	sessionNextIDKey = "session:next_id"
	playerNextIDKey  = "player:next_id"
)

var (
	// ErrSessionNotFound is returned when a session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrPlayerNotFound is returned when a player does not exist
	ErrPlayerNotFound = errors.New("player not found")

	// ErrAssignmentNotFound is returned when a player does not hold a card
	ErrAssignmentNotFound = errors.New("card assignment not found")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

func sessionKey(sessionID int64) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, sessionID)
}

func playerKey(playerID int64) string {
	return fmt.Sprintf("%s%d", playerKeyPrefix, playerID)
}

func sessionPlayersKey(sessionID int64) string {
	return fmt.Sprintf("session:%d:players", sessionID)
}

func playerCardsKey(playerID int64) string {
	return fmt.Sprintf("player:%d:cards", playerID)
}

// CreateSession persists a new session and allocates its ID
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	id, err := r.client.Incr(ctx, sessionNextIDKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate session ID: %w", err)
	}

	sess := *input.Session
	sess.ID = id

	if err := r.putSession(ctx, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// GetSession retrieves a session by ID
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == 0 {
		return nil, errors.New("input and session ID cannot be empty")
	}

	data, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// UpdateSession persists changes to an existing session
func (r *redisRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == 0 {
		return errors.New("session ID cannot be empty")
	}

	return r.putSession(ctx, input.Session)
}

func (r *redisRepository) putSession(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(sess.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// CreatePlayer persists a new player and allocates its ID
func (r *redisRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*models.Player, error) {
	if input == nil || input.Player == nil {
		return nil, errors.New("input and player cannot be nil")
	}

	id, err := r.client.Incr(ctx, playerNextIDKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate player ID: %w", err)
	}

	player := *input.Player
	player.ID = id

	data, err := json.Marshal(&player)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	if player.SessionID != 0 {
		pipe.SAdd(ctx, sessionPlayersKey(player.SessionID), strconv.FormatInt(player.ID, 10))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	return &player, nil
}

// GetPlayer retrieves a player by ID
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}
	return r.getPlayer(ctx, input.PlayerID)
}

func (r *redisRepository) getPlayer(ctx context.Context, playerID int64) (*models.Player, error) {
	data, err := r.client.Get(ctx, playerKey(playerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(data), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// UpdatePlayer persists changes to an existing player
func (r *redisRepository) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}
	if input.Player.ID == 0 {
		return errors.New("player ID cannot be empty")
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKey(input.Player.ID), data, 0)
	if input.Player.SessionID != 0 {
		pipe.SAdd(ctx, sessionPlayersKey(input.Player.SessionID), strconv.FormatInt(input.Player.ID, 10))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

// DeletePlayer removes a player, their session membership and their cards
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	player, err := r.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, playerKey(player.ID))
	pipe.Del(ctx, playerCardsKey(player.ID))
	if player.SessionID != 0 {
		pipe.SRem(ctx, sessionPlayersKey(player.SessionID), strconv.FormatInt(player.ID, 10))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}

// GetPlayersBySession retrieves every player in a session, ordered by ID
func (r *redisRepository) GetPlayersBySession(ctx context.Context, input *GetPlayersBySessionInput) ([]*models.Player, error) {
	if input == nil || input.SessionID == 0 {
		return nil, errors.New("input and session ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, sessionPlayersKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session players: %w", err)
	}

	players := make([]*models.Player, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad player ID %q in session index: %w", raw, err)
		}

		player, err := r.getPlayer(ctx, id)
		if err != nil {
			if errors.Is(err, ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}

	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	return players, nil
}

// MarkEliminated flags a player as voted out
func (r *redisRepository) MarkEliminated(ctx context.Context, input *MarkEliminatedInput) error {
	if input == nil || input.PlayerID == 0 {
		return errors.New("input and player ID cannot be empty")
	}

	player, err := r.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return err
	}

	player.Eliminated = true

	return r.UpdatePlayer(ctx, &UpdatePlayerInput{Player: player})
}

// EliminatedCount returns how many players of a session are eliminated
func (r *redisRepository) EliminatedCount(ctx context.Context, input *EliminatedCountInput) (int, error) {
	if input == nil || input.SessionID == 0 {
		return 0, errors.New("input and session ID cannot be empty")
	}

	players, err := r.GetPlayersBySession(ctx, &GetPlayersBySessionInput{SessionID: input.SessionID})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, player := range players {
		if player.Eliminated {
			count++
		}
	}

	return count, nil
}

// AssignCard records that a player holds a card
func (r *redisRepository) AssignCard(ctx context.Context, input *AssignCardInput) error {
	if input == nil || input.PlayerID == 0 || input.CardID == 0 {
		return errors.New("input, player ID and card ID cannot be empty")
	}

	assignment := &models.CardAssignment{
		PlayerID: input.PlayerID,
		CardID:   input.CardID,
		Revealed: false,
	}

	data, err := json.Marshal(assignment)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment: %w", err)
	}

	field := strconv.FormatInt(input.CardID, 10)
	if err := r.client.HSet(ctx, playerCardsKey(input.PlayerID), field, data).Err(); err != nil {
		return fmt.Errorf("failed to assign card: %w", err)
	}

	return nil
}

// GetPlayerAssignments retrieves every card assignment of a player
func (r *redisRepository) GetPlayerAssignments(ctx context.Context, input *GetPlayerAssignmentsInput) ([]*models.CardAssignment, error) {
	if input == nil || input.PlayerID == 0 {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerCardsKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*models.CardAssignment, 0, len(fields))
	for _, data := range fields {
		var assignment models.CardAssignment
		if err := json.Unmarshal([]byte(data), &assignment); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assignment: %w", err)
		}
		assignments = append(assignments, &assignment)
	}

	sort.Slice(assignments, func(i, j int) bool { return assignments[i].CardID < assignments[j].CardID })

	return assignments, nil
}

// RevealCard marks an assignment as revealed. Revealing an already revealed
// card leaves it revealed.
func (r *redisRepository) RevealCard(ctx context.Context, input *RevealCardInput) error {
	if input == nil || input.PlayerID == 0 || input.CardID == 0 {
		return errors.New("input, player ID and card ID cannot be empty")
	}

	field := strconv.FormatInt(input.CardID, 10)
	data, err := r.client.HGet(ctx, playerCardsKey(input.PlayerID), field).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	var assignment models.CardAssignment
	if err := json.Unmarshal([]byte(data), &assignment); err != nil {
		return fmt.Errorf("failed to unmarshal assignment: %w", err)
	}

	assignment.Revealed = true

	updated, err := json.Marshal(&assignment)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment: %w", err)
	}

	if err := r.client.HSet(ctx, playerCardsKey(input.PlayerID), field, updated).Err(); err != nil {
		return fmt.Errorf("failed to reveal card: %w", err)
	}

	return nil
}
