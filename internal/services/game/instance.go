package game

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sync"
	"time"

	"github.com/solomonk/bunker/internal/common/clock"
	"github.com/solomonk/bunker/internal/draw"
	"github.com/solomonk/bunker/internal/models"
	"github.com/solomonk/bunker/internal/protocol"
	"github.com/solomonk/bunker/internal/registry"
	contentRepo "github.com/solomonk/bunker/internal/repositories/content"
	sessionRepo "github.com/solomonk/bunker/internal/repositories/session"
)

// stateSnapshot is what gets persisted on the session after each round
type stateSnapshot struct {
	Round              int
	Phase              string
	Votes              map[int64]int64
	EliminatedPlayerID int64
}

// instance runs one session's round loop. All state transitions happen
// under its mutex; phase timers carry a generation so a stale callback
// fired after a manual transition is a no-op.
type instance struct {
	sessionID      int64
	packID         int64
	discussionSecs int
	voteSecs       int
	visibility     models.VoteVisibility
	balance        models.BalanceMode

	sessionRepo sessionRepo.Repository
	contentRepo contentRepo.Repository
	registry    registry.Registry
	clock       clock.Clock
	picker      *draw.Picker
	resolver    ActionResolver

	mu         sync.Mutex
	phase      Phase
	round      int
	votes      map[int64]int64
	timer      *time.Timer
	generation uint64

	// fixed at Start from the live table size
	playerCount          int
	requiredEliminations int

	// eliminations counts voted-out players for the stop rule. It only
	// grows, so a departing eliminated player cannot reopen the session.
	eliminations int
}

func newInstance(s *service, sess *models.Session) *instance {
	return &instance{
		sessionID:      sess.ID,
		packID:         sess.PackID,
		discussionSecs: sess.DiscussionSecs,
		voteSecs:       sess.VoteSecs,
		visibility:     sess.VoteVisibility,
		balance:        sess.Balance,
		sessionRepo:    s.sessionRepo,
		contentRepo:    s.contentRepo,
		registry:       s.registry,
		clock:          s.clock,
		picker:         s.picker,
		resolver:       s.actionResolver,
	}
}

// Start deals everyone in, draws the scenario and opens round 1. The
// session is only persisted once dealing and the scenario draws have all
// succeeded, so a failed start leaves it joinable in the lobby.
func (i *instance) Start(ctx context.Context, sess *models.Session) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.phase = PhaseDealing

	players, err := i.sessionRepo.GetPlayersBySession(ctx, &sessionRepo.GetPlayersBySessionInput{SessionID: i.sessionID})
	if err != nil {
		return err
	}

	i.playerCount = len(players)
	i.requiredEliminations = models.TotalEliminations(len(players))
	i.eliminations = 0

	hands, err := i.deal(ctx, players)
	if err != nil {
		return err
	}

	catastrophe, err := i.contentRepo.GetRandomCatastrophe(ctx, &contentRepo.GetRandomInput{PackID: i.packID})
	if err != nil {
		return err
	}

	shelter, err := i.contentRepo.GetRandomShelter(ctx, &contentRepo.GetRandomInput{PackID: i.packID})
	if err != nil {
		return err
	}

	ending, err := i.contentRepo.GetRandomEnding(ctx, &contentRepo.GetRandomInput{PackID: i.packID})
	if err != nil {
		return err
	}

	sess.Catastrophe = catastrophe.Text
	sess.Shelter = shelter.Name
	sess.Ending = ending.Text
	sess.UpdatedAt = i.clock.Now()
	if err := i.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{Session: sess}); err != nil {
		return err
	}

	// Each player only ever sees their own hand
	for _, p := range players {
		i.sendToPlayer(p.ID, &protocol.SessionState{
			Session:   sess,
			Players:   players,
			YourCards: hands[p.ID],
		})
	}

	i.startDiscussionLocked(1)

	return nil
}

// deal draws one card per characteristic per player, plus one action card
// each when the pack carries any
func (i *instance) deal(ctx context.Context, players []*models.Player) (map[int64][]*protocol.HandCard, error) {
	hands := make(map[int64][]*protocol.HandCard, len(players))

	characteristics, err := i.contentRepo.GetCharacteristics(ctx)
	if err != nil {
		return nil, err
	}

	for _, char := range characteristics {
		if char.ID == models.ActionCharacteristicID {
			continue
		}

		pool, err := i.contentRepo.GetCardsByPackAndCharacteristic(ctx, &contentRepo.GetCardsInput{
			PackID:           i.packID,
			CharacteristicID: char.ID,
		})
		if err != nil {
			return nil, err
		}

		if len(pool) == 0 {
			continue
		}

		pool = balancePool(pool, i.balance)

		// Draw without replacement until the pool runs dry
		deck := append([]*models.CharacteristicCard(nil), pool...)
		for _, p := range players {
			if len(deck) == 0 {
				deck = append([]*models.CharacteristicCard(nil), pool...)
			}

			idx := i.picker.Intn(len(deck))
			card := deck[idx]
			deck[idx] = deck[len(deck)-1]
			deck = deck[:len(deck)-1]

			err := i.sessionRepo.AssignCard(ctx, &sessionRepo.AssignCardInput{PlayerID: p.ID, CardID: card.ID})
			if err != nil {
				return nil, err
			}

			hands[p.ID] = append(hands[p.ID], &protocol.HandCard{Card: card})
		}
	}

	actions, err := i.contentRepo.GetActionCards(ctx, &contentRepo.GetActionCardsInput{PackID: i.packID})
	if err != nil {
		return nil, err
	}

	if len(actions) > 0 {
		for _, p := range players {
			card := actions[i.picker.Intn(len(actions))]

			err := i.sessionRepo.AssignCard(ctx, &sessionRepo.AssignCardInput{PlayerID: p.ID, CardID: card.ID})
			if err != nil {
				return nil, err
			}

			hands[p.ID] = append(hands[p.ID], &protocol.HandCard{Card: card})
		}
	}

	return hands, nil
}

// balancePool narrows a card pool to cards whose utility sits close to the
// pool mean. An over-aggressive filter falls back to the full pool.
func balancePool(pool []*models.CharacteristicCard, mode models.BalanceMode) []*models.CharacteristicCard {
	var maxDeviation float64
	switch mode {
	case models.BalanceMedium:
		maxDeviation = 3
	case models.BalanceStrict:
		maxDeviation = 2
	default:
		return pool
	}

	var sum float64
	for _, card := range pool {
		sum += float64(card.UtilityIndex)
	}
	mean := sum / float64(len(pool))

	filtered := make([]*models.CharacteristicCard, 0, len(pool))
	for _, card := range pool {
		if math.Abs(float64(card.UtilityIndex)-mean) <= maxDeviation {
			filtered = append(filtered, card)
		}
	}

	if len(filtered) == 0 {
		return pool
	}

	return filtered
}

// CastVote records or replaces the voter's choice for this round
func (i *instance) CastVote(ctx context.Context, voterID, targetID int64) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.phase != PhaseVoting {
		return ErrInvalidPhase
	}

	voter, err := i.sessionRepo.GetPlayer(ctx, &sessionRepo.GetPlayerInput{PlayerID: voterID})
	if err != nil || voter.SessionID != i.sessionID {
		return ErrPlayerNotFound
	}

	target, err := i.sessionRepo.GetPlayer(ctx, &sessionRepo.GetPlayerInput{PlayerID: targetID})
	if err != nil || target.SessionID != i.sessionID {
		return ErrPlayerNotFound
	}

	if target.Eliminated {
		return ErrInvalidVoteTarget
	}

	i.votes[voterID] = targetID

	counts := make(map[int64]int, len(i.votes))
	for _, t := range i.votes {
		counts[t]++
	}

	update := &protocol.VoteUpdate{Counts: counts}
	if i.visibility == models.VoteVisibilityPublic {
		update.Votes = make(map[int64]int64, len(i.votes))
		for voter, t := range i.votes {
			update.Votes[voter] = t
		}
	}

	i.broadcast(update)

	return nil
}

// RevealCharacteristic flips one of the player's dealt cards face up.
// Revealing an already revealed card does nothing.
func (i *instance) RevealCharacteristic(ctx context.Context, playerID, cardID int64) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.phase != PhaseDiscussion && i.phase != PhaseVoting {
		return ErrInvalidPhase
	}

	player, err := i.sessionRepo.GetPlayer(ctx, &sessionRepo.GetPlayerInput{PlayerID: playerID})
	if err != nil || player.SessionID != i.sessionID {
		return ErrPlayerNotFound
	}

	assignment, err := i.findAssignment(ctx, playerID, cardID)
	if err != nil {
		return err
	}

	if assignment.Revealed {
		return nil
	}

	err = i.sessionRepo.RevealCard(ctx, &sessionRepo.RevealCardInput{PlayerID: playerID, CardID: cardID})
	if err != nil {
		return err
	}

	card, err := i.contentRepo.GetCard(ctx, &contentRepo.GetCardInput{CardID: cardID})
	if err != nil {
		return err
	}

	i.broadcast(&protocol.CharacteristicRevealed{PlayerID: playerID, CardID: cardID, Card: card})

	return nil
}

// UseAction plays one of the player's action cards through the resolver
func (i *instance) UseAction(ctx context.Context, playerID, cardID, targetID int64) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.phase != PhaseDiscussion && i.phase != PhaseVoting {
		return ErrInvalidPhase
	}

	if _, err := i.findAssignment(ctx, playerID, cardID); err != nil {
		return err
	}

	card, err := i.contentRepo.GetCard(ctx, &contentRepo.GetCardInput{CardID: cardID})
	if err != nil {
		return ErrCardNotFound
	}

	if card.CharacteristicID != models.ActionCharacteristicID {
		return ErrNotActionCard
	}

	return i.resolver.Resolve(ctx, &ResolveActionInput{
		SessionID:      i.sessionID,
		PlayerID:       playerID,
		Card:           card,
		TargetPlayerID: targetID,
	})
}

func (i *instance) findAssignment(ctx context.Context, playerID, cardID int64) (*models.CardAssignment, error) {
	assignments, err := i.sessionRepo.GetPlayerAssignments(ctx, &sessionRepo.GetPlayerAssignmentsInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}

	for _, a := range assignments {
		if a.CardID == cardID {
			return a, nil
		}
	}

	return nil, ErrCardNotFound
}

// finished reports whether the round loop has reached its terminal phase
func (i *instance) finished() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.phase == PhaseFinished
}

// teardown stops the round loop; any pending timer callback becomes stale
func (i *instance) teardown() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.timer != nil {
		i.timer.Stop()
	}
	i.generation++
	i.phase = PhaseFinished
}

// scheduleLocked arms the phase timer, invalidating any previous one
func (i *instance) scheduleLocked(d time.Duration, expire func(gen uint64)) {
	if i.timer != nil {
		i.timer.Stop()
	}

	i.generation++
	gen := i.generation
	i.timer = time.AfterFunc(d, func() { expire(gen) })
}

func (i *instance) startDiscussionLocked(round int) {
	i.phase = PhaseDiscussion
	i.round = round
	i.scheduleLocked(time.Duration(i.discussionSecs)*time.Second, i.onDiscussionExpired)

	i.broadcast(&protocol.RoundStarted{
		Round:       round,
		Phase:       string(PhaseDiscussion),
		Seconds:     i.discussionSecs,
		ToEliminate: EliminationsForRound(i.playerCount, round),
	})
}

func (i *instance) onDiscussionExpired(gen uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if gen != i.generation || i.phase != PhaseDiscussion {
		return
	}

	i.startVotingLocked()
}

func (i *instance) startVotingLocked() {
	i.phase = PhaseVoting
	i.votes = make(map[int64]int64)
	i.scheduleLocked(time.Duration(i.voteSecs)*time.Second, i.onVotingExpired)

	i.broadcast(&protocol.RoundStarted{
		Round:       i.round,
		Phase:       string(PhaseVoting),
		Seconds:     i.voteSecs,
		ToEliminate: EliminationsForRound(i.playerCount, i.round),
	})
}

func (i *instance) onVotingExpired(gen uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if gen != i.generation || i.phase != PhaseVoting {
		return
	}

	i.endVotingLocked(context.Background())
}

// endVotingLocked tallies the round. No votes at all restarts the vote;
// a tie eliminates one of the leaders at random. The session finishes
// when enough players have been voted out, whatever round it is.
func (i *instance) endVotingLocked(ctx context.Context) {
	players, err := i.sessionRepo.GetPlayersBySession(ctx, &sessionRepo.GetPlayersBySessionInput{SessionID: i.sessionID})
	if err != nil {
		log.Printf("game: session %d tally: %v", i.sessionID, err)
		return
	}

	alive := make(map[int64]bool, len(players))
	for _, p := range players {
		if !p.Eliminated {
			alive[p.ID] = true
		}
	}

	counts := make(map[int64]int)
	for _, target := range i.votes {
		if alive[target] {
			counts[target]++
		}
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	if max == 0 {
		i.startVotingLocked()
		return
	}

	// Iterate in player order so the tie-break draw is reproducible
	var leaders []int64
	for _, p := range players {
		if counts[p.ID] == max {
			leaders = append(leaders, p.ID)
		}
	}

	eliminatedID := leaders[i.picker.Intn(len(leaders))]

	err = i.sessionRepo.MarkEliminated(ctx, &sessionRepo.MarkEliminatedInput{PlayerID: eliminatedID})
	if err != nil {
		log.Printf("game: session %d eliminate player %d: %v", i.sessionID, eliminatedID, err)
		return
	}

	for _, p := range players {
		if p.ID == eliminatedID {
			p.Eliminated = true
		}
	}

	i.eliminations++

	sess, err := i.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: i.sessionID})
	if err != nil {
		log.Printf("game: session %d load: %v", i.sessionID, err)
		return
	}

	finished := i.eliminations >= i.requiredEliminations
	nextRound := i.round + 1
	if finished {
		nextRound = 0
	}

	snapshot, err := json.Marshal(&stateSnapshot{
		Round:              i.round,
		Phase:              string(i.phase),
		Votes:              i.votes,
		EliminatedPlayerID: eliminatedID,
	})
	if err == nil {
		sess.StateJSON = string(snapshot)
	}

	sess.CurrentRound = i.round
	sess.UpdatedAt = i.clock.Now()
	if err := i.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{Session: sess}); err != nil {
		log.Printf("game: session %d save: %v", i.sessionID, err)
	}

	i.broadcast(&protocol.RoundEnded{EliminatedPlayerID: eliminatedID, NextRound: nextRound})

	if finished {
		i.finishLocked(ctx, sess, players)
		return
	}

	i.startDiscussionLocked(i.round + 1)
}

// finishLocked closes the session and publishes the full result, hidden
// cards included
func (i *instance) finishLocked(ctx context.Context, sess *models.Session, players []*models.Player) {
	if i.timer != nil {
		i.timer.Stop()
	}
	i.generation++
	i.phase = PhaseFinished

	sess.Status = models.SessionStatusFinished
	sess.UpdatedAt = i.clock.Now()
	if err := i.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{Session: sess}); err != nil {
		log.Printf("game: session %d close: %v", i.sessionID, err)
	}

	result, err := i.buildResult(ctx, sess, players)
	if err != nil {
		log.Printf("game: session %d result: %v", i.sessionID, err)
	}

	i.broadcast(&protocol.SessionEnded{Result: result})
}

func (i *instance) buildResult(ctx context.Context, sess *models.Session, players []*models.Player) (*models.GameResult, error) {
	result := &models.GameResult{
		SessionID:     sess.ID,
		EndedAt:       i.clock.Now(),
		RevealedCards: make(map[int64][]*models.CharacteristicCard),
		HiddenCards:   make(map[int64][]*models.CharacteristicCard),
		Catastrophe:   sess.Catastrophe,
		Shelter:       sess.Shelter,
		Ending:        sess.Ending,
	}

	for _, p := range players {
		if p.Eliminated {
			result.Eliminated = append(result.Eliminated, p)
		} else {
			result.Survivors = append(result.Survivors, p)
		}

		assignments, err := i.sessionRepo.GetPlayerAssignments(ctx, &sessionRepo.GetPlayerAssignmentsInput{PlayerID: p.ID})
		if err != nil {
			return nil, err
		}

		for _, a := range assignments {
			card, err := i.contentRepo.GetCard(ctx, &contentRepo.GetCardInput{CardID: a.CardID})
			if err != nil {
				return nil, err
			}

			if a.Revealed {
				result.RevealedCards[p.ID] = append(result.RevealedCards[p.ID], card)
			} else {
				result.HiddenCards[p.ID] = append(result.HiddenCards[p.ID], card)
			}
		}
	}

	return result, nil
}

func (i *instance) sendToPlayer(playerID int64, resp protocol.Response) {
	data, err := protocol.EncodeResponse(resp)
	if err != nil {
		log.Printf("game: encode %s: %v", resp.ResponseType(), err)
		return
	}

	i.registry.SendToPlayer(playerID, data)
}

func (i *instance) broadcast(resp protocol.Response) {
	data, err := protocol.EncodeResponse(resp)
	if err != nil {
		log.Printf("game: encode %s: %v", resp.ResponseType(), err)
		return
	}

	i.registry.Broadcast(i.sessionID, data, registry.NoExclude)
}
