package content

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/solomonk/bunker/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) seedCards() {
	cards := []*models.CharacteristicCard{
		{ID: 1, PackID: 1, CharacteristicID: 1, Info: "Doctor", UtilityIndex: 9},
		{ID: 2, PackID: 1, CharacteristicID: 1, Info: "Clown", UtilityIndex: 2},
		{ID: 3, PackID: 1, CharacteristicID: 2, Info: "Healthy", UtilityIndex: 8},
		{ID: 4, PackID: 1, CharacteristicID: models.ActionCharacteristicID, Info: "Swap cards", UtilityIndex: 5},
		{ID: 5, PackID: 2, CharacteristicID: 1, Info: "Farmer", UtilityIndex: 6},
	}
	for _, card := range cards {
		s.Require().NoError(s.repo.SaveCard(s.ctx, &SaveCardInput{Card: card}))
	}
}

func (s *RedisRepositoryTestSuite) TestGetCharacteristics() {
	s.Require().NoError(s.repo.SaveCharacteristic(s.ctx, &SaveCharacteristicInput{
		Characteristic: &models.Characteristic{ID: 1, Name: "Profession"},
	}))
	s.Require().NoError(s.repo.SaveCharacteristic(s.ctx, &SaveCharacteristicInput{
		Characteristic: &models.Characteristic{ID: 2, Name: "Health"},
	}))

	characteristics, err := s.repo.GetCharacteristics(s.ctx)
	s.Require().NoError(err)
	s.Len(characteristics, 2)

	names := map[string]bool{}
	for _, c := range characteristics {
		names[c.Name] = true
	}
	s.True(names["Profession"])
	s.True(names["Health"])
}

func (s *RedisRepositoryTestSuite) TestGetCardsByPackAndCharacteristic() {
	s.seedCards()

	cards, err := s.repo.GetCardsByPackAndCharacteristic(s.ctx, &GetCardsInput{
		PackID:           1,
		CharacteristicID: 1,
	})
	s.Require().NoError(err)
	s.Len(cards, 2)

	for _, card := range cards {
		s.Equal(int64(1), card.PackID)
		s.Equal(int64(1), card.CharacteristicID)
	}

	// A pack the cards do not belong to yields an empty pool, not an error
	cards, err = s.repo.GetCardsByPackAndCharacteristic(s.ctx, &GetCardsInput{
		PackID:           9,
		CharacteristicID: 1,
	})
	s.Require().NoError(err)
	s.Empty(cards)
}

func (s *RedisRepositoryTestSuite) TestGetActionCards() {
	s.seedCards()

	cards, err := s.repo.GetActionCards(s.ctx, &GetActionCardsInput{PackID: 1})
	s.Require().NoError(err)
	s.Require().Len(cards, 1)
	s.Equal("Swap cards", cards[0].Info)
}

func (s *RedisRepositoryTestSuite) TestGetCard() {
	s.seedCards()

	card, err := s.repo.GetCard(s.ctx, &GetCardInput{CardID: 3})
	s.Require().NoError(err)
	s.Equal("Healthy", card.Info)

	_, err = s.repo.GetCard(s.ctx, &GetCardInput{CardID: 99})
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetRandomScenarioContent() {
	s.Require().NoError(s.repo.SaveCatastrophe(s.ctx, &SaveCatastropheInput{
		Catastrophe: &models.Catastrophe{ID: 1, PackID: 1, Text: "Nuclear winter"},
	}))
	s.Require().NoError(s.repo.SaveShelter(s.ctx, &SaveShelterInput{
		Shelter: &models.Shelter{ID: 1, PackID: 1, Name: "Missile silo"},
	}))
	s.Require().NoError(s.repo.SaveEnding(s.ctx, &SaveEndingInput{
		Ending: &models.Ending{ID: 1, PackID: 1, Text: "The doors open"},
	}))

	catastrophe, err := s.repo.GetRandomCatastrophe(s.ctx, &GetRandomInput{PackID: 1})
	s.Require().NoError(err)
	s.Equal("Nuclear winter", catastrophe.Text)

	shelter, err := s.repo.GetRandomShelter(s.ctx, &GetRandomInput{PackID: 1})
	s.Require().NoError(err)
	s.Equal("Missile silo", shelter.Name)

	ending, err := s.repo.GetRandomEnding(s.ctx, &GetRandomInput{PackID: 1})
	s.Require().NoError(err)
	s.Equal("The doors open", ending.Text)
}

func (s *RedisRepositoryTestSuite) TestGetRandomFromEmptyPack() {
	_, err := s.repo.GetRandomCatastrophe(s.ctx, &GetRandomInput{PackID: 7})
	s.Require().ErrorIs(err, ErrNotFound)
}
