package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/solomonk/bunker/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) createSession() *models.Session {
	sess, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.Session{
			TargetPlayers:  8,
			PackID:         1,
			DiscussionSecs: 60,
			VoteSecs:       30,
			VoteVisibility: models.VoteVisibilityAnonymous,
			Balance:        models.BalanceMedium,
			Status:         models.SessionStatusLobby,
			CurrentRound:   1,
			CreatedAt:      s.testNow,
			UpdatedAt:      s.testNow,
		},
	})
	s.Require().NoError(err)
	return sess
}

func (s *RedisRepositoryTestSuite) createPlayer(sessionID int64, name string) *models.Player {
	player, err := s.repo.CreatePlayer(s.ctx, &CreatePlayerInput{
		Player: &models.Player{
			SessionID:   sessionID,
			Name:        name,
			OrderNumber: models.OrderUnselected,
		},
	})
	s.Require().NoError(err)
	return player
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	sess := s.createSession()
	s.Require().NotZero(sess.ID)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)
	s.Equal(8, retrieved.TargetPlayers)
	s.Equal(models.SessionStatusLobby, retrieved.Status)

	// IDs are allocated sequentially
	second := s.createSession()
	s.Equal(sess.ID+1, second.ID)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: 42})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateSession() {
	sess := s.createSession()

	sess.Status = models.SessionStatusInProgress
	sess.Catastrophe = "Asteroid impact"
	s.Require().NoError(s.repo.UpdateSession(s.ctx, &UpdateSessionInput{Session: sess}))

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusInProgress, retrieved.Status)
	s.Equal("Asteroid impact", retrieved.Catastrophe)
}

func (s *RedisRepositoryTestSuite) TestPlayersBySession() {
	sess := s.createSession()
	alice := s.createPlayer(sess.ID, "Alice")
	bob := s.createPlayer(sess.ID, "Bob")

	players, err := s.repo.GetPlayersBySession(s.ctx, &GetPlayersBySessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(alice.ID, players[0].ID)
	s.Equal(bob.ID, players[1].ID)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayerCascades() {
	sess := s.createSession()
	player := s.createPlayer(sess.ID, "Alice")

	s.Require().NoError(s.repo.AssignCard(s.ctx, &AssignCardInput{PlayerID: player.ID, CardID: 7}))

	s.Require().NoError(s.repo.DeletePlayer(s.ctx, &DeletePlayerInput{PlayerID: player.ID}))

	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: player.ID})
	s.Require().ErrorIs(err, ErrPlayerNotFound)

	players, err := s.repo.GetPlayersBySession(s.ctx, &GetPlayersBySessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Empty(players)

	assignments, err := s.repo.GetPlayerAssignments(s.ctx, &GetPlayerAssignmentsInput{PlayerID: player.ID})
	s.Require().NoError(err)
	s.Empty(assignments)
}

func (s *RedisRepositoryTestSuite) TestMarkEliminatedAndCount() {
	sess := s.createSession()
	alice := s.createPlayer(sess.ID, "Alice")
	s.createPlayer(sess.ID, "Bob")

	count, err := s.repo.EliminatedCount(s.ctx, &EliminatedCountInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Zero(count)

	s.Require().NoError(s.repo.MarkEliminated(s.ctx, &MarkEliminatedInput{PlayerID: alice.ID}))

	count, err = s.repo.EliminatedCount(s.ctx, &EliminatedCountInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(1, count)

	retrieved, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: alice.ID})
	s.Require().NoError(err)
	s.True(retrieved.Eliminated)
}

func (s *RedisRepositoryTestSuite) TestAssignAndRevealCards() {
	sess := s.createSession()
	player := s.createPlayer(sess.ID, "Alice")

	s.Require().NoError(s.repo.AssignCard(s.ctx, &AssignCardInput{PlayerID: player.ID, CardID: 3}))
	s.Require().NoError(s.repo.AssignCard(s.ctx, &AssignCardInput{PlayerID: player.ID, CardID: 9}))

	assignments, err := s.repo.GetPlayerAssignments(s.ctx, &GetPlayerAssignmentsInput{PlayerID: player.ID})
	s.Require().NoError(err)
	s.Require().Len(assignments, 2)
	s.Equal(int64(3), assignments[0].CardID)
	s.False(assignments[0].Revealed)

	s.Require().NoError(s.repo.RevealCard(s.ctx, &RevealCardInput{PlayerID: player.ID, CardID: 3}))

	// Revealing again is a no-op, the card stays revealed
	s.Require().NoError(s.repo.RevealCard(s.ctx, &RevealCardInput{PlayerID: player.ID, CardID: 3}))

	assignments, err = s.repo.GetPlayerAssignments(s.ctx, &GetPlayerAssignmentsInput{PlayerID: player.ID})
	s.Require().NoError(err)
	s.True(assignments[0].Revealed)
	s.False(assignments[1].Revealed)
}

func (s *RedisRepositoryTestSuite) TestRevealUnknownCard() {
	sess := s.createSession()
	player := s.createPlayer(sess.ID, "Alice")

	err := s.repo.RevealCard(s.ctx, &RevealCardInput{PlayerID: player.ID, CardID: 77})
	s.Require().ErrorIs(err, ErrAssignmentNotFound)
}
