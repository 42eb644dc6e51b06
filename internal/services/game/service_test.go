package game_test

import (
	"context"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/tanktrivia/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/tanktrivia/internal/common/uuid/mocks"
	"github.com/KirkDiggler/tanktrivia/internal/match"
	"github.com/KirkDiggler/tanktrivia/internal/models"
	questionRepo "github.com/KirkDiggler/tanktrivia/internal/repositories/question"
	questionMocks "github.com/KirkDiggler/tanktrivia/internal/repositories/question/mocks"
	"github.com/KirkDiggler/tanktrivia/internal/services/game"
	gameMocks "github.com/KirkDiggler/tanktrivia/internal/services/game/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// noopShuffler keeps the pool order fixed so tests know which question
// comes up in which round (the pool is consumed from the back)
type noopShuffler struct{}

func (noopShuffler) Shuffle(pool []*models.Question) {}

// recorder captures presenter calls made from the round loop goroutine
type recorder struct {
	mu         sync.Mutex
	rounds     []*game.AnnounceRoundInput
	countdowns []*game.UpdateCountdownInput
	winners    []*game.AnnounceWinnerInput
	timeouts   []*game.AnnounceTimeoutInput
	stops      int
	earlyEnds  int
	standings  [][]*models.Standing

	// roundStarted signals each AnnounceRound so tests know when to guess
	roundStarted chan *game.AnnounceRoundInput

	// panicOnRound makes AnnounceRound panic for that round number
	panicOnRound int
}

func newRecorder() *recorder {
	return &recorder{
		roundStarted: make(chan *game.AnnounceRoundInput, 64),
	}
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockQuestionRepo *questionMocks.MockRepository
	mockPresenter    *gameMocks.MockPresenter
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	rec              *recorder
	ctx              context.Context

	testTime      time.Time
	testChannelID string
	bank          []*models.Question
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuestionRepo = questionMocks.NewMockRepository(s.mockCtrl)
	s.mockPresenter = gameMocks.NewMockPresenter(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.rec = newRecorder()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testChannelID = "test-channel-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-game-id").AnyTimes()

	// Pool pops from the back, so with noopShuffler the round order for
	// the full range is t34.jpg, sherman.jpg, tiger1.jpg
	s.bank = []*models.Question{
		{ID: "tiger1.jpg", Aliases: []string{"Tiger", "Tiger I"}, Year: 1942},
		{ID: "sherman.jpg", Aliases: []string{"Sherman", "M4 Sherman"}, Year: 1943},
		{ID: "t34.jpg", Aliases: []string{"T-34"}, Year: 1940},
	}

	s.mockQuestionRepo.EXPECT().GetQuestions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *questionRepo.GetQuestionsInput) (*questionRepo.GetQuestionsOutput, error) {
			return &questionRepo.GetQuestionsOutput{Questions: s.bank}, nil
		}).AnyTimes()

	rec := s.rec
	s.mockPresenter.EXPECT().AnnounceRound(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.AnnounceRoundInput) (*game.AnnounceRoundOutput, error) {
			rec.mu.Lock()
			if rec.panicOnRound == input.Round {
				rec.mu.Unlock()
				panic("presenter failure")
			}
			rec.rounds = append(rec.rounds, input)
			rec.mu.Unlock()
			rec.roundStarted <- input
			return &game.AnnounceRoundOutput{MessageRef: "msg-ref"}, nil
		}).AnyTimes()
	s.mockPresenter.EXPECT().UpdateCountdown(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.UpdateCountdownInput) error {
			rec.mu.Lock()
			rec.countdowns = append(rec.countdowns, input)
			rec.mu.Unlock()
			return nil
		}).AnyTimes()
	s.mockPresenter.EXPECT().AnnounceWinner(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.AnnounceWinnerInput) error {
			rec.mu.Lock()
			rec.winners = append(rec.winners, input)
			rec.mu.Unlock()
			return nil
		}).AnyTimes()
	s.mockPresenter.EXPECT().AnnounceTimeout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.AnnounceTimeoutInput) error {
			rec.mu.Lock()
			rec.timeouts = append(rec.timeouts, input)
			rec.mu.Unlock()
			return nil
		}).AnyTimes()
	s.mockPresenter.EXPECT().AnnounceStopped(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.AnnounceStoppedInput) error {
			rec.mu.Lock()
			rec.stops++
			rec.mu.Unlock()
			return nil
		}).AnyTimes()
	s.mockPresenter.EXPECT().AnnounceEarlyEnd(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.AnnounceEarlyEndInput) error {
			rec.mu.Lock()
			rec.earlyEnds++
			rec.mu.Unlock()
			return nil
		}).AnyTimes()
	s.mockPresenter.EXPECT().AnnounceStandings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.AnnounceStandingsInput) error {
			rec.mu.Lock()
			rec.standings = append(rec.standings, input.Standings)
			rec.mu.Unlock()
			return nil
		}).AnyTimes()
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// baseConfig keeps rounds short enough that whole games run in tens of
// milliseconds while still exercising multiple ticks
func (s *GameServiceTestSuite) baseConfig() *game.Config {
	return &game.Config{
		TickInterval:  5 * time.Millisecond,
		QuestionRepo:  s.mockQuestionRepo,
		Matcher:       match.New(nil),
		Shuffler:      noopShuffler{},
		Presenter:     s.mockPresenter,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}
}

func (s *GameServiceTestSuite) newService(cfg *game.Config) game.Service {
	svc, err := game.New(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *GameServiceTestSuite) startGame(svc game.Service, startYear, endYear, rounds int) *game.StartGameOutput {
	output, err := svc.StartGame(s.ctx, &game.StartGameInput{
		ChannelID:  s.testChannelID,
		PlayerID:   "starter-id",
		PlayerName: "Starter",
		StartYear:  startYear,
		EndYear:    endYear,
		Rounds:     rounds,
	})
	s.Require().NoError(err)
	return output
}

func (s *GameServiceTestSuite) guess(svc game.Service, playerID, playerName, content string) {
	_, err := svc.SubmitGuess(s.ctx, &game.SubmitGuessInput{
		ChannelID:  s.testChannelID,
		PlayerID:   playerID,
		PlayerName: playerName,
		Content:    content,
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) waitRoundStart() *game.AnnounceRoundInput {
	select {
	case input := <-s.rec.roundStarted:
		return input
	case <-time.After(2 * time.Second):
		s.Require().FailNow("round did not start in time")
		return nil
	}
}

func (s *GameServiceTestSuite) waitDone(done <-chan struct{}) {
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.Require().FailNow("game did not finish in time")
	}
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := game.New(nil)
	s.ErrorIs(err, game.ErrNilConfig)

	cfg := s.baseConfig()
	cfg.QuestionRepo = nil
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilQuestionRepo)

	cfg = s.baseConfig()
	cfg.Presenter = nil
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilPresenter)
}

func (s *GameServiceTestSuite) TestStartGame_InvalidRoundCount() {
	svc := s.newService(s.baseConfig())

	for _, rounds := range []int{0, -1, 51} {
		_, err := svc.StartGame(s.ctx, &game.StartGameInput{
			ChannelID: s.testChannelID,
			StartYear: 1900,
			EndYear:   2025,
			Rounds:    rounds,
		})
		s.ErrorIs(err, game.ErrInvalidRoundCount)
	}
}

func (s *GameServiceTestSuite) TestStartGame_NoQuestionsInRange() {
	svc := s.newService(s.baseConfig())

	_, err := svc.StartGame(s.ctx, &game.StartGameInput{
		ChannelID: s.testChannelID,
		StartYear: 2000,
		EndYear:   2010,
		Rounds:    5,
	})
	s.ErrorIs(err, game.ErrNoQuestionsInRange)

	// The rejection must not leave a registry entry behind
	output := s.startGame(svc, 1940, 1950, 1)
	s.waitDone(output.Done)
}

func (s *GameServiceTestSuite) TestStartGame_AlreadyRunning() {
	cfg := s.baseConfig()
	cfg.RoundTicks = 200 // keep the game alive until we stop it
	svc := s.newService(cfg)

	output := s.startGame(svc, 1940, 1950, 3)
	s.waitRoundStart()

	_, err := svc.StartGame(s.ctx, &game.StartGameInput{
		ChannelID: s.testChannelID,
		StartYear: 1940,
		EndYear:   1950,
		Rounds:    3,
	})
	s.ErrorIs(err, game.ErrGameAlreadyRunning)

	_, err = svc.StopGame(s.ctx, &game.StopGameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.waitDone(output.Done)
}

func (s *GameServiceTestSuite) TestStartGame_WarnsWhenPoolSmallerThanRounds() {
	svc := s.newService(s.baseConfig())

	output := s.startGame(svc, 1942, 1942, 10)
	s.True(output.EarlyEndPossible)
	s.Equal(1, output.PoolSize)

	s.waitRoundStart()
	s.guess(svc, "player-1", "PlayerOne", "tiger")
	s.waitDone(output.Done)

	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()
	s.Len(s.rec.rounds, 1)
	s.Equal(1, s.rec.earlyEnds)
	s.Require().Len(s.rec.standings, 1)
	s.Require().Len(s.rec.standings[0], 1)
	s.Equal("player-1", s.rec.standings[0][0].PlayerID)
	s.Equal(1, s.rec.standings[0][0].Score)
}

func (s *GameServiceTestSuite) TestFirstQualifyingGuessWins() {
	svc := s.newService(s.baseConfig())

	output := s.startGame(svc, 1942, 1942, 1)
	s.waitRoundStart()

	// Wrong guess first, then two correct guesses; only the earlier
	// correct one gets the point
	s.guess(svc, "loser-id", "Loser", "kv-1")
	s.guess(svc, "winner-id", "Winner", "tigr")
	s.guess(svc, "late-id", "Latecomer", "tiger")

	s.waitDone(output.Done)

	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()
	s.Require().Len(s.rec.winners, 1)
	s.Equal("winner-id", s.rec.winners[0].PlayerID)
	s.Equal("Winner", s.rec.winners[0].PlayerName)

	s.Require().Len(s.rec.standings, 1)
	s.Require().Len(s.rec.standings[0], 1)
	s.Equal("winner-id", s.rec.standings[0][0].PlayerID)
	s.Equal(1, s.rec.standings[0][0].Score)
}

func (s *GameServiceTestSuite) TestRoundTimeout() {
	cfg := s.baseConfig()
	cfg.RoundTicks = 6
	cfg.CountdownTicks = 5
	svc := s.newService(cfg)

	output := s.startGame(svc, 1942, 1942, 1)
	s.waitRoundStart()
	s.waitDone(output.Done)

	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()

	s.Empty(s.rec.winners)
	s.Require().Len(s.rec.timeouts, 1)
	s.Equal([]string{"Tiger", "Tiger I"}, s.rec.timeouts[0].Aliases)

	// Countdown fires for each of the final five ticks
	s.Require().Len(s.rec.countdowns, 5)
	for i, countdown := range s.rec.countdowns {
		s.Equal(5-i, countdown.Remaining)
		s.Equal("msg-ref", countdown.MessageRef)
		s.Equal(1942, countdown.Year)
	}

	// Scoreless game still reports standings
	s.Require().Len(s.rec.standings, 1)
	s.Empty(s.rec.standings[0])
}

func (s *GameServiceTestSuite) TestRoundPanicScoresAsTimeout() {
	svc := s.newService(s.baseConfig())

	// The presenter blows up announcing round 1; the game must log it,
	// score the round as unsolved, and carry on with round 2
	s.rec.panicOnRound = 1

	output := s.startGame(svc, 1940, 1950, 2)

	round := s.waitRoundStart()
	s.Equal(2, round.Round)
	s.guess(svc, "player-1", "PlayerOne", "sherman")
	s.waitDone(output.Done)

	s.rec.mu.Lock()
	s.Require().Len(s.rec.rounds, 1)
	s.Require().Len(s.rec.timeouts, 1)
	s.Equal([]string{"T-34"}, s.rec.timeouts[0].Aliases)
	s.Require().Len(s.rec.winners, 1)
	s.Equal("player-1", s.rec.winners[0].PlayerID)
	s.Require().Len(s.rec.standings, 1)
	s.Require().Len(s.rec.standings[0], 1)
	s.Equal(1, s.rec.standings[0][0].Score)
	s.rec.mu.Unlock()

	// The registry entry is gone despite the panic
	_, err := svc.StopGame(s.ctx, &game.StopGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, game.ErrNoActiveGame)
}

func (s *GameServiceTestSuite) TestStopTokenCancelsGame() {
	svc := s.newService(s.baseConfig())

	output := s.startGame(svc, 1940, 1950, 3)
	s.waitRoundStart()
	s.guess(svc, "player-1", "PlayerOne", "!stop")
	s.waitDone(output.Done)

	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()
	s.Equal(1, s.rec.stops)
	s.Len(s.rec.rounds, 1) // no further round started
	s.Empty(s.rec.winners)
}

func (s *GameServiceTestSuite) TestStopGame() {
	cfg := s.baseConfig()
	cfg.RoundTicks = 200
	svc := s.newService(cfg)

	output := s.startGame(svc, 1940, 1950, 3)
	s.waitRoundStart()

	stopOutput, err := svc.StopGame(s.ctx, &game.StopGameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.True(stopOutput.Stopped)
	s.waitDone(output.Done)

	// The registry entry is gone, so stopping again reports no game
	_, err = svc.StopGame(s.ctx, &game.StopGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, game.ErrNoActiveGame)

	// A command stop is acked by the handler, not announced by the loop
	s.rec.mu.Lock()
	s.Equal(0, s.rec.stops)
	s.rec.mu.Unlock()

	// And the channel is free for a new game
	output = s.startGame(svc, 1940, 1950, 3)
	s.waitRoundStart()
	_, err = svc.StopGame(s.ctx, &game.StopGameInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.waitDone(output.Done)
}

func (s *GameServiceTestSuite) TestPoolExhaustedAtRoundLimit() {
	svc := s.newService(s.baseConfig())

	answers := map[string]string{
		"tiger1.jpg":  "tiger",
		"sherman.jpg": "sherman",
		"t34.jpg":     "t-34",
	}

	output := s.startGame(svc, 1940, 1950, 3)
	for i := 0; i < 3; i++ {
		round := s.waitRoundStart()
		s.guess(svc, "player-1", "PlayerOne", answers[round.QuestionID])
	}
	s.waitDone(output.Done)

	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()

	// Exactly rounds_total rounds ran, sequentially, no question repeated
	s.Require().Len(s.rec.rounds, 3)
	seen := make(map[string]bool)
	for i, round := range s.rec.rounds {
		s.Equal(i+1, round.Round)
		s.Equal(3, round.RoundsTotal)
		s.False(seen[round.QuestionID])
		seen[round.QuestionID] = true
	}

	// Pool ran out exactly at the round limit; that is not an early end
	s.Equal(0, s.rec.earlyEnds)

	s.Require().Len(s.rec.standings, 1)
	s.Require().Len(s.rec.standings[0], 1)
	s.Equal(3, s.rec.standings[0][0].Score)
}

func (s *GameServiceTestSuite) TestStandingsSortedByScore() {
	svc := s.newService(s.baseConfig())

	winners := []struct{ id, name string }{
		{"alice-id", "Alice"},
		{"bob-id", "Bob"},
		{"bob-id", "Bob"},
	}
	answers := map[string]string{
		"tiger1.jpg":  "tiger",
		"sherman.jpg": "sherman",
		"t34.jpg":     "t-34",
	}

	output := s.startGame(svc, 1940, 1950, 3)
	for i := 0; i < 3; i++ {
		round := s.waitRoundStart()
		s.guess(svc, winners[i].id, winners[i].name, answers[round.QuestionID])
	}
	s.waitDone(output.Done)

	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()
	s.Require().Len(s.rec.standings, 1)
	standings := s.rec.standings[0]
	s.Require().Len(standings, 2)
	s.Equal("bob-id", standings[0].PlayerID)
	s.Equal(2, standings[0].Score)
	s.Equal("alice-id", standings[1].PlayerID)
	s.Equal(1, standings[1].Score)
}

func (s *GameServiceTestSuite) TestSubmitGuess_NoActiveGame() {
	svc := s.newService(s.baseConfig())

	output, err := svc.SubmitGuess(s.ctx, &game.SubmitGuessInput{
		ChannelID:  s.testChannelID,
		PlayerID:   "player-1",
		PlayerName: "PlayerOne",
		Content:    "tiger",
	})
	s.Require().NoError(err)
	s.False(output.Accepted)
}

func (s *GameServiceTestSuite) TestStopGame_NoActiveGame() {
	svc := s.newService(s.baseConfig())

	_, err := svc.StopGame(s.ctx, &game.StopGameInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, game.ErrNoActiveGame)
}
