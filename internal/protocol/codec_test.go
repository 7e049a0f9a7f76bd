package protocol

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/solomonk/bunker/internal/models"
)

type CodecTestSuite struct {
	suite.Suite
}

func TestCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) TestMessageRoundTrip() {
	raw, err := EncodeMessage(&JoinSession{SessionID: 7, Name: "Alice"})
	s.Require().NoError(err)

	decoded, err := DecodeMessage(raw)
	s.Require().NoError(err)

	join, ok := decoded.(*JoinSession)
	s.Require().True(ok)
	s.Equal(int64(7), join.SessionID)
	s.Equal("Alice", join.Name)
}

func (s *CodecTestSuite) TestMessageDispatch() {
	// Every client tag must come back as its own concrete type
	messages := []Message{
		&CreateSession{Settings: Settings{TargetPlayers: 8, PackID: 1}},
		&JoinSession{SessionID: 1, Name: "Bob"},
		&StartSession{SessionID: 1},
		&RevealCharacteristic{SessionID: 1, CardID: 3},
		&Vote{SessionID: 1, TargetPlayerID: 2},
		&UseAction{SessionID: 1, CardID: 4, TargetPlayerID: 2},
		&LeaveSession{SessionID: 1},
		&KickPlayer{SessionID: 1, TargetPlayerID: 2},
		&SelectOrderNumber{SessionID: 1, Number: 5},
	}

	for _, msg := range messages {
		raw, err := EncodeMessage(msg)
		s.Require().NoError(err)

		decoded, err := DecodeMessage(raw)
		s.Require().NoError(err, msg.MessageType())
		s.Equal(msg, decoded, msg.MessageType())
	}
}

func (s *CodecTestSuite) TestResponseDispatch() {
	responses := []Response{
		&SessionCreated{SessionID: 9},
		&SessionJoined{SessionID: 9, Player: &models.Player{ID: 2, Name: "Bob"}},
		&SessionState{Session: &models.Session{ID: 9}},
		&PlayerJoined{Player: &models.Player{ID: 2}},
		&PlayerUpdated{Player: &models.Player{ID: 2, OrderNumber: 3}},
		&PlayerLeft{PlayerID: 2},
		&CharacteristicRevealed{PlayerID: 2, CardID: 3, Card: &models.CharacteristicCard{ID: 3}},
		&VoteUpdate{Counts: map[int64]int{2: 1}},
		&RoundStarted{Round: 2, Phase: "voting", Seconds: 30, ToEliminate: 1},
		&RoundEnded{EliminatedPlayerID: 2, NextRound: 3},
		&ActionUsed{PlayerID: 2, CardID: 4, TargetPlayerID: 3},
		&SessionEnded{},
		&Error{Message: "session not found"},
	}

	for _, resp := range responses {
		raw, err := EncodeResponse(resp)
		s.Require().NoError(err)

		decoded, err := DecodeResponse(raw)
		s.Require().NoError(err, resp.ResponseType())
		s.Equal(resp, decoded, resp.ResponseType())
	}
}

func (s *CodecTestSuite) TestPublicVotesSurviveTheWire() {
	raw, err := EncodeResponse(&VoteUpdate{
		Counts: map[int64]int{3: 2},
		Votes:  map[int64]int64{1: 3, 2: 3},
	})
	s.Require().NoError(err)

	decoded, err := DecodeResponse(raw)
	s.Require().NoError(err)

	update, ok := decoded.(*VoteUpdate)
	s.Require().True(ok)
	s.Equal(int64(3), update.Votes[1])
	s.Equal(2, update.Counts[3])
}

func (s *CodecTestSuite) TestUnknownMessageType() {
	_, err := DecodeMessage([]byte(`{"type":"TradeCards","data":{}}`))
	s.Require().ErrorIs(err, ErrUnknownType)

	_, err = DecodeResponse([]byte(`{"type":"TradeCards","data":{}}`))
	s.Require().ErrorIs(err, ErrUnknownType)
}

func (s *CodecTestSuite) TestMalformedEnvelope() {
	_, err := DecodeMessage([]byte(`{"type":`))
	s.Require().Error(err)
}

func (s *CodecTestSuite) TestMalformedPayload() {
	_, err := DecodeMessage([]byte(`{"type":"JoinSession","data":{"SessionID":"not a number"}}`))
	s.Require().Error(err)
}

func (s *CodecTestSuite) TestEmptyPayloadDecodesToZeroValue() {
	decoded, err := DecodeMessage([]byte(`{"type":"LeaveSession"}`))
	s.Require().NoError(err)

	leave, ok := decoded.(*LeaveSession)
	s.Require().True(ok)
	s.Zero(leave.SessionID)
}
