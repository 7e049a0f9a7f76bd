package game

import (
	"context"
	"log"
	"sync"

	"github.com/solomonk/bunker/internal/common/clock"
	"github.com/solomonk/bunker/internal/common/uuid"
	"github.com/solomonk/bunker/internal/draw"
	"github.com/solomonk/bunker/internal/models"
	"github.com/solomonk/bunker/internal/protocol"
	"github.com/solomonk/bunker/internal/registry"
	contentRepo "github.com/solomonk/bunker/internal/repositories/content"
	sessionRepo "github.com/solomonk/bunker/internal/repositories/session"
	"github.com/solomonk/bunker/internal/services/discovery"
)

// hostName is the display name given to session creators
const hostName = "Host"

// service implements the Service interface
type service struct {
	sessionRepo    sessionRepo.Repository
	contentRepo    contentRepo.Repository
	registry       registry.Registry
	advertiser     discovery.Advertiser
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	picker         *draw.Picker
	actionResolver ActionResolver
	minPlayers     int

	mu        sync.Mutex
	instances map[int64]*instance
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.ContentRepo == nil {
		return nil, ErrNilContentRepo
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Advertiser == nil {
		return nil, ErrNilAdvertiser
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	minPlayers := cfg.MinPlayers
	if minPlayers <= 0 {
		minPlayers = models.MinPlayers
	}

	resolver := cfg.ActionResolver
	if resolver == nil {
		resolver = &broadcastActionResolver{registry: cfg.Registry}
	}

	return &service{
		sessionRepo:    cfg.SessionRepo,
		contentRepo:    cfg.ContentRepo,
		registry:       cfg.Registry,
		advertiser:     cfg.Advertiser,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		picker:         cfg.Picker,
		actionResolver: resolver,
		minPlayers:     minPlayers,
		instances:      make(map[int64]*instance),
	}, nil
}

// CreateSession opens a new lobby with the caller as host
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	// Presence checks only; whether the table is big enough is decided at start
	settings := input.Settings
	if settings.TargetPlayers <= 0 || settings.DiscussionSecs <= 0 || settings.VoteSecs <= 0 {
		return nil, ErrInvalidSettings
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	sess, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: &models.Session{
			TargetPlayers:  settings.TargetPlayers,
			PackID:         settings.PackID,
			DiscussionSecs: settings.DiscussionSecs,
			VoteSecs:       settings.VoteSecs,
			VoteVisibility: settings.VoteVisibility,
			Balance:        settings.Balance,
			Status:         models.SessionStatusLobby,
			CurrentRound:   1,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	})
	if err != nil {
		return nil, err
	}

	host, err := s.sessionRepo.CreatePlayer(ctx, &sessionRepo.CreatePlayerInput{
		Player: &models.Player{
			SessionID:    sess.ID,
			Name:         hostName,
			ConnectionID: input.ConnectionID,
			UserID:       s.uuidGenerator.NewUUID(),
			OrderNumber:  models.OrderUnselected,
			Host:         true,
		},
	})
	if err != nil {
		return nil, err
	}

	sess.HostID = host.ID
	if err := s.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	s.instances[sess.ID] = newInstance(s, sess)

	s.registry.BindPlayer(host.ID, input.ConnectionID)
	s.registry.JoinSession(sess.ID, input.ConnectionID)

	s.sendToPlayer(host.ID, &protocol.SessionCreated{SessionID: sess.ID})
	s.advertise(ctx, sess.ID, 1, sess.TargetPlayers)

	return &CreateSessionOutput{SessionID: sess.ID, Host: host}, nil
}

// JoinSession adds the caller to an open lobby
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if sess.Status != models.SessionStatusLobby {
		return nil, ErrInvalidSessionState
	}

	players, err := s.sessionRepo.GetPlayersBySession(ctx, &sessionRepo.GetPlayersBySessionInput{SessionID: sess.ID})
	if err != nil {
		return nil, err
	}

	if len(players) >= sess.TargetPlayers {
		return nil, ErrSessionFull
	}

	player, err := s.sessionRepo.CreatePlayer(ctx, &sessionRepo.CreatePlayerInput{
		Player: &models.Player{
			SessionID:    sess.ID,
			Name:         input.Name,
			ConnectionID: input.ConnectionID,
			UserID:       s.uuidGenerator.NewUUID(),
			OrderNumber:  models.OrderUnselected,
		},
	})
	if err != nil {
		return nil, err
	}

	s.registry.BindPlayer(player.ID, input.ConnectionID)
	s.registry.JoinSession(sess.ID, input.ConnectionID)

	s.sendToPlayer(player.ID, &protocol.SessionJoined{SessionID: sess.ID, Player: player})
	s.broadcast(sess.ID, &protocol.PlayerJoined{Player: player}, player.ID)
	s.advertise(ctx, sess.ID, len(players)+1, sess.TargetPlayers)

	return &JoinSessionOutput{Player: player}, nil
}

// StartSession begins the game; host only
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, sess, err := s.resolveCaller(ctx, input.ConnectionID, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !caller.Host {
		return nil, ErrNotHost
	}

	if sess.Status != models.SessionStatusLobby {
		return nil, ErrInvalidSessionState
	}

	players, err := s.sessionRepo.GetPlayersBySession(ctx, &sessionRepo.GetPlayersBySessionInput{SessionID: sess.ID})
	if err != nil {
		return nil, err
	}

	if len(players) < s.minPlayers {
		return nil, ErrInvalidSessionState
	}

	for _, p := range players {
		if p.OrderNumber == models.OrderUnselected {
			return nil, ErrInvalidSessionState
		}
	}

	inst, ok := s.instances[sess.ID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Start persists the session itself once dealing succeeds, so a failed
	// start never strands the session mid-transition
	sess.Status = models.SessionStatusInProgress
	sess.UpdatedAt = s.clock.Now()
	if err := inst.Start(ctx, sess); err != nil {
		sess.Status = models.SessionStatusLobby
		return nil, err
	}

	if err := s.advertiser.Stop(ctx, sess.ID); err != nil {
		log.Printf("game: stop advertising session %d: %v", sess.ID, err)
	}

	return &StartSessionOutput{}, nil
}

// LeaveSession removes the caller; a host leaving a lobby dissolves it
func (s *service) LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.leaveLocked(ctx, input.ConnectionID, input.SessionID); err != nil {
		return nil, err
	}

	return &LeaveSessionOutput{}, nil
}

func (s *service) leaveLocked(ctx context.Context, connectionID string, sessionID int64) error {
	caller, sess, err := s.resolveCaller(ctx, connectionID, sessionID)
	if err != nil {
		return err
	}

	if caller.Host && sess.Status == models.SessionStatusLobby {
		return s.dissolveLobbyLocked(ctx, sess)
	}

	if err := s.sessionRepo.DeletePlayer(ctx, &sessionRepo.DeletePlayerInput{PlayerID: caller.ID}); err != nil {
		return err
	}

	s.registry.LeaveSession(sess.ID, connectionID)
	s.broadcast(sess.ID, &protocol.PlayerLeft{PlayerID: caller.ID}, registry.NoExclude)

	players, err := s.sessionRepo.GetPlayersBySession(ctx, &sessionRepo.GetPlayersBySessionInput{SessionID: sess.ID})
	if err != nil {
		log.Printf("game: session %d roster after leave: %v", sess.ID, err)
		return nil
	}

	if sess.Status == models.SessionStatusLobby {
		s.advertise(ctx, sess.ID, len(players), sess.TargetPlayers)
	}

	// The last player out of a finished session reaps it
	if len(players) == 0 {
		if inst, ok := s.instances[sess.ID]; ok && inst.finished() {
			inst.teardown()
			delete(s.instances, sess.ID)
		}
	}

	return nil
}

// dissolveLobbyLocked tears a lobby down when its host walks away
func (s *service) dissolveLobbyLocked(ctx context.Context, sess *models.Session) error {
	players, err := s.sessionRepo.GetPlayersBySession(ctx, &sessionRepo.GetPlayersBySessionInput{SessionID: sess.ID})
	if err != nil {
		return err
	}

	s.broadcast(sess.ID, &protocol.SessionEnded{}, registry.NoExclude)

	for _, p := range players {
		if connID, ok := s.registry.ConnFor(p.ID); ok {
			s.registry.LeaveSession(sess.ID, connID)
		}
		if err := s.sessionRepo.DeletePlayer(ctx, &sessionRepo.DeletePlayerInput{PlayerID: p.ID}); err != nil {
			log.Printf("game: delete player %d during teardown: %v", p.ID, err)
		}
	}

	if inst, ok := s.instances[sess.ID]; ok {
		inst.teardown()
		delete(s.instances, sess.ID)
	}

	sess.Status = models.SessionStatusFinished
	sess.UpdatedAt = s.clock.Now()
	if err := s.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{Session: sess}); err != nil {
		return err
	}

	if err := s.advertiser.Stop(ctx, sess.ID); err != nil {
		log.Printf("game: stop advertising session %d: %v", sess.ID, err)
	}

	return nil
}

// KickPlayer removes another player; host only
func (s *service) KickPlayer(ctx context.Context, input *KickPlayerInput) (*KickPlayerOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, sess, err := s.resolveCaller(ctx, input.ConnectionID, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !caller.Host {
		return nil, ErrNotHost
	}

	target, err := s.sessionRepo.GetPlayer(ctx, &sessionRepo.GetPlayerInput{PlayerID: input.TargetPlayerID})
	if err != nil || target.SessionID != sess.ID {
		return nil, ErrPlayerNotFound
	}

	if err := s.sessionRepo.DeletePlayer(ctx, &sessionRepo.DeletePlayerInput{PlayerID: target.ID}); err != nil {
		return nil, err
	}

	s.sendToPlayer(target.ID, &protocol.Error{Message: "kicked from session"})
	if connID, ok := s.registry.ConnFor(target.ID); ok {
		s.registry.LeaveSession(sess.ID, connID)
	}

	s.broadcast(sess.ID, &protocol.PlayerLeft{PlayerID: target.ID}, registry.NoExclude)

	return &KickPlayerOutput{}, nil
}

// SelectOrderNumber claims a seat number in the lobby
func (s *service) SelectOrderNumber(ctx context.Context, input *SelectOrderNumberInput) (*SelectOrderNumberOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, sess, err := s.resolveCaller(ctx, input.ConnectionID, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusLobby {
		return nil, ErrInvalidSessionState
	}

	if input.Number < 1 || input.Number > sess.TargetPlayers {
		return nil, ErrInvalidSettings
	}

	players, err := s.sessionRepo.GetPlayersBySession(ctx, &sessionRepo.GetPlayersBySessionInput{SessionID: sess.ID})
	if err != nil {
		return nil, err
	}

	for _, p := range players {
		if p.OrderNumber == input.Number && p.ID != caller.ID {
			return nil, ErrOrderNumberTaken
		}
	}

	caller.OrderNumber = input.Number
	if err := s.sessionRepo.UpdatePlayer(ctx, &sessionRepo.UpdatePlayerInput{Player: caller}); err != nil {
		return nil, err
	}

	s.broadcast(sess.ID, &protocol.PlayerUpdated{Player: caller}, registry.NoExclude)

	return &SelectOrderNumberOutput{Player: caller}, nil
}

// RevealCharacteristic flips one of the caller's cards face up
func (s *service) RevealCharacteristic(ctx context.Context, input *RevealCharacteristicInput) (*RevealCharacteristicOutput, error) {
	playerID, inst, err := s.resolveInstanceCaller(input.ConnectionID, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := inst.RevealCharacteristic(ctx, playerID, input.CardID); err != nil {
		return nil, err
	}

	return &RevealCharacteristicOutput{}, nil
}

// CastVote records or replaces the caller's vote this round
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	playerID, inst, err := s.resolveInstanceCaller(input.ConnectionID, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := inst.CastVote(ctx, playerID, input.TargetPlayerID); err != nil {
		return nil, err
	}

	return &CastVoteOutput{}, nil
}

// UseAction plays one of the caller's action cards
func (s *service) UseAction(ctx context.Context, input *UseActionInput) (*UseActionOutput, error) {
	playerID, inst, err := s.resolveInstanceCaller(input.ConnectionID, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := inst.UseAction(ctx, playerID, input.CardID, input.TargetPlayerID); err != nil {
		return nil, err
	}

	return &UseActionOutput{}, nil
}

// Disconnect handles a dropped connection as an implicit leave
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if playerID, ok := s.registry.PlayerFor(input.ConnectionID); ok {
		player, err := s.sessionRepo.GetPlayer(ctx, &sessionRepo.GetPlayerInput{PlayerID: playerID})
		if err == nil {
			if err := s.leaveLocked(ctx, input.ConnectionID, player.SessionID); err != nil {
				log.Printf("game: implicit leave for connection %s: %v", input.ConnectionID, err)
			}
		}
	}

	s.registry.Unregister(input.ConnectionID)

	return &DisconnectOutput{}, nil
}

// resolveCaller maps a connection to its player and checks session membership
func (s *service) resolveCaller(ctx context.Context, connectionID string, sessionID int64) (*models.Player, *models.Session, error) {
	playerID, ok := s.registry.PlayerFor(connectionID)
	if !ok {
		return nil, nil, ErrPlayerNotFound
	}

	player, err := s.sessionRepo.GetPlayer(ctx, &sessionRepo.GetPlayerInput{PlayerID: playerID})
	if err != nil {
		return nil, nil, ErrPlayerNotFound
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, nil, ErrSessionNotFound
	}

	if player.SessionID != sess.ID {
		return nil, nil, ErrPlayerNotFound
	}

	return player, sess, nil
}

// resolveInstanceCaller maps a connection to its player and the live instance
func (s *service) resolveInstanceCaller(connectionID string, sessionID int64) (int64, *instance, error) {
	playerID, ok := s.registry.PlayerFor(connectionID)
	if !ok {
		return 0, nil, ErrPlayerNotFound
	}

	s.mu.Lock()
	inst, ok := s.instances[sessionID]
	s.mu.Unlock()

	if !ok {
		return 0, nil, ErrSessionNotFound
	}

	return playerID, inst, nil
}

func (s *service) sendToPlayer(playerID int64, resp protocol.Response) {
	data, err := protocol.EncodeResponse(resp)
	if err != nil {
		log.Printf("game: encode %s: %v", resp.ResponseType(), err)
		return
	}

	s.registry.SendToPlayer(playerID, data)
}

func (s *service) broadcast(sessionID int64, resp protocol.Response, excludePlayerID int64) {
	data, err := protocol.EncodeResponse(resp)
	if err != nil {
		log.Printf("game: encode %s: %v", resp.ResponseType(), err)
		return
	}

	s.registry.Broadcast(sessionID, data, excludePlayerID)
}

func (s *service) advertise(ctx context.Context, sessionID int64, players, capacity int) {
	err := s.advertiser.Advertise(ctx, &discovery.AdvertiseInput{
		SessionID: sessionID,
		Players:   players,
		Capacity:  capacity,
	})
	if err != nil {
		log.Printf("game: advertise session %d: %v", sessionID, err)
	}
}

// broadcastActionResolver announces action card plays without applying
// any game effect
type broadcastActionResolver struct {
	registry registry.Registry
}

func (r *broadcastActionResolver) Resolve(_ context.Context, input *ResolveActionInput) error {
	log.Printf("game: player %d used action card %d in session %d", input.PlayerID, input.Card.ID, input.SessionID)

	data, err := protocol.EncodeResponse(&protocol.ActionUsed{
		PlayerID:       input.PlayerID,
		CardID:         input.Card.ID,
		TargetPlayerID: input.TargetPlayerID,
	})
	if err != nil {
		return err
	}

	r.registry.Broadcast(input.SessionID, data, registry.NoExclude)

	return nil
}
