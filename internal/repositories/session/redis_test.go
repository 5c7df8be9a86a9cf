package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skullking/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	sess := &models.Session{
		Mode:  models.ModeActive,
		Round: 2,
		Players: []*models.Player{
			{ID: "p1", Name: "Ann", Total: 30},
		},
		Current: map[string]*models.RoundEntry{
			"p1": {Bid: 1, Won: 1, Pirates: 0, Mermaid: false},
		},
		History: []*models.RoundRecord{
			{
				Round: 1,
				Entries: map[string]*models.RoundResult{
					"p1": {Bid: 0, Won: 0, Pts: 10},
				},
				Totals:     map[string]int{"p1": 10},
				RecordedAt: s.testNow,
			},
		},
		UpdatedAt: s.testNow,
	}

	err := s.repo.Save(context.Background(), &SaveInput{Session: sess})
	s.Require().NoError(err)

	out, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)
	s.Require().NotNil(out)

	var loaded models.Session
	s.Require().NoError(json.Unmarshal(out.Raw, &loaded))

	s.Equal(models.ModeActive, loaded.Mode)
	s.Equal(2, loaded.Round)
	s.Require().Len(loaded.Players, 1)
	s.Equal("Ann", loaded.Players[0].Name)
	s.Equal(30, loaded.Players[0].Total)
	s.Require().Len(loaded.History, 1)
	s.Equal(10, loaded.History[0].Entries["p1"].Pts)
	s.Equal(s.testNow.Unix(), loaded.History[0].RecordedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestLoadAbsent() {
	out, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().Error(err)
	s.Equal(ErrSessionNotFound, err)
	s.Nil(out)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	first := models.NewSession()
	first.Players = []*models.Player{{ID: "p1", Name: "Ann"}}

	second := models.NewSession()
	second.Players = []*models.Player{{ID: "p2", Name: "Ben"}}

	s.Require().NoError(s.repo.Save(context.Background(), &SaveInput{Session: first}))
	s.Require().NoError(s.repo.Save(context.Background(), &SaveInput{Session: second}))

	out, err := s.repo.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)

	var loaded models.Session
	s.Require().NoError(json.Unmarshal(out.Raw, &loaded))
	s.Require().Len(loaded.Players, 1)
	s.Equal("Ben", loaded.Players[0].Name)
}

func (s *RedisRepositoryTestSuite) TestSaveNilInput() {
	s.Error(s.repo.Save(context.Background(), nil))
	s.Error(s.repo.Save(context.Background(), &SaveInput{}))
}

func (s *RedisRepositoryTestSuite) TestCustomKey() {
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Key:         "other:session",
	})
	s.Require().NoError(err)

	s.Require().NoError(repo.Save(context.Background(), &SaveInput{Session: models.NewSession()}))

	s.True(s.mr.Exists("other:session"))
	s.False(s.mr.Exists(defaultKey))
}
