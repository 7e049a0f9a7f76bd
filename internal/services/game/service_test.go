package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmock "github.com/solomonk/bunker/internal/common/clock/mocks"
	uuidmock "github.com/solomonk/bunker/internal/common/uuid/mocks"
	"github.com/solomonk/bunker/internal/draw"
	"github.com/solomonk/bunker/internal/models"
	"github.com/solomonk/bunker/internal/protocol"
	"github.com/solomonk/bunker/internal/registry"
	registrymock "github.com/solomonk/bunker/internal/registry/mocks"
	contentmock "github.com/solomonk/bunker/internal/repositories/content/mocks"
	sessionRepo "github.com/solomonk/bunker/internal/repositories/session"
	sessionmock "github.com/solomonk/bunker/internal/repositories/session/mocks"
	discoverymock "github.com/solomonk/bunker/internal/services/discovery/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	sessionRepo *sessionmock.MockRepository
	contentRepo *contentmock.MockRepository
	registry    *registrymock.MockRegistry
	advertiser  *discoverymock.MockAdvertiser
	clock       *clockmock.MockClock
	uuidGen     *uuidmock.MockUUID
	service     *service
	ctx         context.Context
	testNow     time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessionRepo = sessionmock.NewMockRepository(s.ctrl)
	s.contentRepo = contentmock.NewMockRepository(s.ctrl)
	s.registry = registrymock.NewMockRegistry(s.ctrl)
	s.advertiser = discoverymock.NewMockAdvertiser(s.ctrl)
	s.clock = clockmock.NewMockClock(s.ctrl)
	s.uuidGen = uuidmock.NewMockUUID(s.ctrl)
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.clock.EXPECT().Now().Return(s.testNow).AnyTimes()

	svc, err := New(&Config{
		SessionRepo:   s.sessionRepo,
		ContentRepo:   s.contentRepo,
		Registry:      s.registry,
		Advertiser:    s.advertiser,
		Clock:         s.clock,
		UUIDGenerator: s.uuidGen,
		Picker:        draw.New(&draw.Config{Seed: 1}),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) lobbySession() *models.Session {
	return &models.Session{
		ID:             1,
		HostID:         10,
		TargetPlayers:  4,
		PackID:         1,
		DiscussionSecs: 60,
		VoteSecs:       30,
		Status:         models.SessionStatusLobby,
		CurrentRound:   1,
	}
}

func (s *ServiceTestSuite) hostPlayer() *models.Player {
	return &models.Player{ID: 10, SessionID: 1, Name: "Host", OrderNumber: 1, Host: true}
}

func (s *ServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.Require().ErrorIs(err, ErrNilSessionRepo)
}

func (s *ServiceTestSuite) TestCreateSession() {
	s.sessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CreateSessionInput) (*models.Session, error) {
			s.Equal(models.SessionStatusLobby, input.Session.Status)
			s.Equal(1, input.Session.CurrentRound)
			input.Session.ID = 1
			return input.Session, nil
		})
	s.uuidGen.EXPECT().NewUUID().Return("user-1")
	s.sessionRepo.EXPECT().CreatePlayer(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CreatePlayerInput) (*models.Player, error) {
			s.True(input.Player.Host)
			s.Equal(models.OrderUnselected, input.Player.OrderNumber)
			input.Player.ID = 10
			return input.Player, nil
		})
	s.sessionRepo.EXPECT().UpdateSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.UpdateSessionInput) error {
			s.Equal(int64(10), input.Session.HostID)
			return nil
		})
	s.registry.EXPECT().BindPlayer(int64(10), "conn-1")
	s.registry.EXPECT().JoinSession(int64(1), "conn-1")
	s.registry.EXPECT().SendToPlayer(int64(10), gomock.Any())
	s.advertiser.EXPECT().Advertise(s.ctx, gomock.Any()).Return(nil)

	output, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		ConnectionID: "conn-1",
		Settings: protocol.Settings{
			TargetPlayers:  4,
			PackID:         1,
			DiscussionSecs: 60,
			VoteSecs:       30,
		},
	})
	s.Require().NoError(err)
	s.Equal(int64(1), output.SessionID)
	s.Equal(int64(10), output.Host.ID)
	s.NotNil(s.service.instances[1])
}

func (s *ServiceTestSuite) TestCreateSessionRejectsMissingSettings() {
	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		ConnectionID: "conn-1",
		Settings:     protocol.Settings{DiscussionSecs: 60, VoteSecs: 30},
	})
	s.Require().ErrorIs(err, ErrInvalidSettings)

	_, err = s.service.CreateSession(s.ctx, &CreateSessionInput{
		ConnectionID: "conn-1",
		Settings:     protocol.Settings{TargetPlayers: 4, VoteSecs: 30},
	})
	s.Require().ErrorIs(err, ErrInvalidSettings)
}

func (s *ServiceTestSuite) TestJoinSessionAtCapacity() {
	sess := s.lobbySession()
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(sess, nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{
		{ID: 10}, {ID: 11}, {ID: 12}, {ID: 13},
	}, nil)

	_, err := s.service.JoinSession(s.ctx, &JoinSessionInput{ConnectionID: "conn-5", SessionID: 1, Name: "Eve"})
	s.Require().ErrorIs(err, ErrSessionFull)
}

func (s *ServiceTestSuite) TestJoinSessionAfterStart() {
	sess := s.lobbySession()
	sess.Status = models.SessionStatusInProgress
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(sess, nil)

	_, err := s.service.JoinSession(s.ctx, &JoinSessionInput{ConnectionID: "conn-5", SessionID: 1, Name: "Eve"})
	s.Require().ErrorIs(err, ErrInvalidSessionState)
}

func (s *ServiceTestSuite) TestJoinSession() {
	sess := s.lobbySession()
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(sess, nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{{ID: 10}}, nil)
	s.uuidGen.EXPECT().NewUUID().Return("user-2")
	s.sessionRepo.EXPECT().CreatePlayer(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CreatePlayerInput) (*models.Player, error) {
			s.Equal("Bob", input.Player.Name)
			s.False(input.Player.Host)
			input.Player.ID = 11
			return input.Player, nil
		})
	s.registry.EXPECT().BindPlayer(int64(11), "conn-2")
	s.registry.EXPECT().JoinSession(int64(1), "conn-2")
	s.registry.EXPECT().SendToPlayer(int64(11), gomock.Any())
	s.registry.EXPECT().Broadcast(int64(1), gomock.Any(), int64(11))
	s.advertiser.EXPECT().Advertise(s.ctx, gomock.Any()).Return(nil)

	output, err := s.service.JoinSession(s.ctx, &JoinSessionInput{ConnectionID: "conn-2", SessionID: 1, Name: "Bob"})
	s.Require().NoError(err)
	s.Equal(int64(11), output.Player.ID)
}

func (s *ServiceTestSuite) TestStartSessionRequiresHost() {
	s.registry.EXPECT().PlayerFor("conn-2").Return(int64(11), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(
		&models.Player{ID: 11, SessionID: 1, Name: "Bob", OrderNumber: 2}, nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{ConnectionID: "conn-2", SessionID: 1})
	s.Require().ErrorIs(err, ErrNotHost)
}

func (s *ServiceTestSuite) TestStartSessionUnboundConnection() {
	s.registry.EXPECT().PlayerFor("conn-9").Return(int64(0), false)

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{ConnectionID: "conn-9", SessionID: 1})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *ServiceTestSuite) TestStartSessionNeedsAllOrderNumbers() {
	s.registry.EXPECT().PlayerFor("conn-1").Return(int64(10), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.hostPlayer(), nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{
		{ID: 10, OrderNumber: 1},
		{ID: 11, OrderNumber: 2},
		{ID: 12, OrderNumber: 3},
		{ID: 13, OrderNumber: models.OrderUnselected},
	}, nil)

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{ConnectionID: "conn-1", SessionID: 1})
	s.Require().ErrorIs(err, ErrInvalidSessionState)
}

func (s *ServiceTestSuite) TestStartSessionNeedsEnoughPlayers() {
	s.registry.EXPECT().PlayerFor("conn-1").Return(int64(10), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.hostPlayer(), nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{
		{ID: 10, OrderNumber: 1},
		{ID: 11, OrderNumber: 2},
	}, nil)

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{ConnectionID: "conn-1", SessionID: 1})
	s.Require().ErrorIs(err, ErrInvalidSessionState)
}

func (s *ServiceTestSuite) TestStartSessionFailureKeepsLobby() {
	sess := s.lobbySession()
	s.service.instances[1] = newInstance(s.service, sess)

	s.registry.EXPECT().PlayerFor("conn-1").Return(int64(10), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.hostPlayer(), nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(sess, nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{
		{ID: 10, OrderNumber: 1},
		{ID: 11, OrderNumber: 2},
		{ID: 12, OrderNumber: 3},
		{ID: 13, OrderNumber: 4},
	}, nil).Times(2)
	s.contentRepo.EXPECT().GetCharacteristics(s.ctx).Return(nil, errors.New("content unavailable"))

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{ConnectionID: "conn-1", SessionID: 1})
	s.Require().Error(err)

	// nothing was persisted, so the session is still a joinable lobby
	s.Equal(models.SessionStatusLobby, sess.Status)
}

func (s *ServiceTestSuite) TestSelectOrderNumberConflict() {
	caller := &models.Player{ID: 11, SessionID: 1, Name: "Bob", OrderNumber: models.OrderUnselected}
	s.registry.EXPECT().PlayerFor("conn-2").Return(int64(11), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(caller, nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{
		{ID: 10, OrderNumber: 3},
		caller,
	}, nil)

	_, err := s.service.SelectOrderNumber(s.ctx, &SelectOrderNumberInput{ConnectionID: "conn-2", SessionID: 1, Number: 3})
	s.Require().ErrorIs(err, ErrOrderNumberTaken)
}

func (s *ServiceTestSuite) TestSelectOrderNumber() {
	caller := &models.Player{ID: 11, SessionID: 1, Name: "Bob", OrderNumber: models.OrderUnselected}
	s.registry.EXPECT().PlayerFor("conn-2").Return(int64(11), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(caller, nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{
		{ID: 10, OrderNumber: 1},
		caller,
	}, nil)
	s.sessionRepo.EXPECT().UpdatePlayer(s.ctx, gomock.Any()).Return(nil)
	s.registry.EXPECT().Broadcast(int64(1), gomock.Any(), registry.NoExclude)

	output, err := s.service.SelectOrderNumber(s.ctx, &SelectOrderNumberInput{ConnectionID: "conn-2", SessionID: 1, Number: 2})
	s.Require().NoError(err)
	s.Equal(2, output.Player.OrderNumber)
}

func (s *ServiceTestSuite) TestHostLeavingLobbyDissolvesIt() {
	s.registry.EXPECT().PlayerFor("conn-1").Return(int64(10), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.hostPlayer(), nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{
		{ID: 10, SessionID: 1, Host: true},
		{ID: 11, SessionID: 1},
	}, nil)
	s.registry.EXPECT().Broadcast(int64(1), gomock.Any(), registry.NoExclude)
	s.registry.EXPECT().ConnFor(int64(10)).Return("conn-1", true)
	s.registry.EXPECT().ConnFor(int64(11)).Return("conn-2", true)
	s.registry.EXPECT().LeaveSession(int64(1), "conn-1")
	s.registry.EXPECT().LeaveSession(int64(1), "conn-2")
	s.sessionRepo.EXPECT().DeletePlayer(s.ctx, gomock.Any()).Return(nil).Times(2)
	s.sessionRepo.EXPECT().UpdateSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.UpdateSessionInput) error {
			s.Equal(models.SessionStatusFinished, input.Session.Status)
			return nil
		})
	s.advertiser.EXPECT().Stop(s.ctx, int64(1)).Return(nil)

	_, err := s.service.LeaveSession(s.ctx, &LeaveSessionInput{ConnectionID: "conn-1", SessionID: 1})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestLeaveSessionAsGuest() {
	guest := &models.Player{ID: 11, SessionID: 1, Name: "Bob", OrderNumber: 2}
	s.registry.EXPECT().PlayerFor("conn-2").Return(int64(11), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(guest, nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().DeletePlayer(s.ctx, gomock.Any()).Return(nil)
	s.registry.EXPECT().LeaveSession(int64(1), "conn-2")
	s.registry.EXPECT().Broadcast(int64(1), gomock.Any(), registry.NoExclude)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{{ID: 10}}, nil)
	s.advertiser.EXPECT().Advertise(s.ctx, gomock.Any()).Return(nil)

	_, err := s.service.LeaveSession(s.ctx, &LeaveSessionInput{ConnectionID: "conn-2", SessionID: 1})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestLastLeaverReapsFinishedSession() {
	sess := s.lobbySession()
	sess.Status = models.SessionStatusFinished

	inst := newInstance(s.service, sess)
	inst.phase = PhaseFinished
	s.service.instances[1] = inst

	guest := &models.Player{ID: 11, SessionID: 1, Name: "Bob", OrderNumber: 2}
	s.registry.EXPECT().PlayerFor("conn-2").Return(int64(11), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(guest, nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(sess, nil)
	s.sessionRepo.EXPECT().DeletePlayer(s.ctx, gomock.Any()).Return(nil)
	s.registry.EXPECT().LeaveSession(int64(1), "conn-2")
	s.registry.EXPECT().Broadcast(int64(1), gomock.Any(), registry.NoExclude)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return(nil, nil)

	_, err := s.service.LeaveSession(s.ctx, &LeaveSessionInput{ConnectionID: "conn-2", SessionID: 1})
	s.Require().NoError(err)

	_, ok := s.service.instances[1]
	s.False(ok)
}

func (s *ServiceTestSuite) TestKickPlayer() {
	target := &models.Player{ID: 11, SessionID: 1, Name: "Bob"}
	s.registry.EXPECT().PlayerFor("conn-1").Return(int64(10), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, &sessionRepo.GetPlayerInput{PlayerID: 10}).Return(s.hostPlayer(), nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, &sessionRepo.GetPlayerInput{PlayerID: 11}).Return(target, nil)
	s.sessionRepo.EXPECT().DeletePlayer(s.ctx, gomock.Any()).Return(nil)
	s.registry.EXPECT().SendToPlayer(int64(11), gomock.Any())
	s.registry.EXPECT().ConnFor(int64(11)).Return("conn-2", true)
	s.registry.EXPECT().LeaveSession(int64(1), "conn-2")
	s.registry.EXPECT().Broadcast(int64(1), gomock.Any(), registry.NoExclude)

	_, err := s.service.KickPlayer(s.ctx, &KickPlayerInput{ConnectionID: "conn-1", SessionID: 1, TargetPlayerID: 11})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestKickPlayerRequiresHost() {
	guest := &models.Player{ID: 11, SessionID: 1, Name: "Bob"}
	s.registry.EXPECT().PlayerFor("conn-2").Return(int64(11), true)
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(guest, nil)
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)

	_, err := s.service.KickPlayer(s.ctx, &KickPlayerInput{ConnectionID: "conn-2", SessionID: 1, TargetPlayerID: 10})
	s.Require().ErrorIs(err, ErrNotHost)
}

func (s *ServiceTestSuite) TestDisconnectActsAsLeave() {
	guest := &models.Player{ID: 11, SessionID: 1, Name: "Bob", OrderNumber: 2}
	s.registry.EXPECT().PlayerFor("conn-2").Return(int64(11), true).AnyTimes()
	s.sessionRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(guest, nil).AnyTimes()
	s.sessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.lobbySession(), nil)
	s.sessionRepo.EXPECT().DeletePlayer(s.ctx, gomock.Any()).Return(nil)
	s.registry.EXPECT().LeaveSession(int64(1), "conn-2")
	s.registry.EXPECT().Broadcast(int64(1), gomock.Any(), registry.NoExclude)
	s.sessionRepo.EXPECT().GetPlayersBySession(s.ctx, gomock.Any()).Return([]*models.Player{{ID: 10}}, nil)
	s.advertiser.EXPECT().Advertise(s.ctx, gomock.Any()).Return(nil)
	s.registry.EXPECT().Unregister("conn-2")

	_, err := s.service.Disconnect(s.ctx, &DisconnectInput{ConnectionID: "conn-2"})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestDisconnectUnboundConnection() {
	s.registry.EXPECT().PlayerFor("conn-9").Return(int64(0), false)
	s.registry.EXPECT().Unregister("conn-9")

	_, err := s.service.Disconnect(s.ctx, &DisconnectInput{ConnectionID: "conn-9"})
	s.Require().NoError(err)
}
