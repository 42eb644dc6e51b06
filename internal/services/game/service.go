package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/tanktrivia/internal/common/clock"
	"github.com/KirkDiggler/tanktrivia/internal/common/uuid"
	"github.com/KirkDiggler/tanktrivia/internal/models"
	questionRepo "github.com/KirkDiggler/tanktrivia/internal/repositories/question"
)

const (
	defaultRoundTicks     = 20
	defaultCountdownTicks = 5
	defaultTickInterval   = time.Second
	defaultMaxRounds      = 50
	defaultGuessBuffer    = 32
	defaultStopToken      = "!stop"
)

// service implements the Service interface
type service struct {
	config       *Config
	questionRepo questionRepo.Repository
	matcher      Matcher
	shuffler     Shuffler
	presenter    Presenter
	clock        clock.Clock
	uuider       uuid.UUID

	// mu guards the sessions map only. Each session's mutable state is
	// owned by its round loop goroutine, so no further locking is needed.
	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.QuestionRepo == nil {
		return nil, ErrNilQuestionRepo
	}

	if cfg.Matcher == nil {
		return nil, ErrNilMatcher
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	// Fill in defaults
	config := *cfg
	if config.RoundTicks <= 0 {
		config.RoundTicks = defaultRoundTicks
	}
	if config.CountdownTicks <= 0 {
		config.CountdownTicks = defaultCountdownTicks
	}
	if config.TickInterval <= 0 {
		config.TickInterval = defaultTickInterval
	}
	if config.MaxRounds <= 0 {
		config.MaxRounds = defaultMaxRounds
	}
	if config.GuessBuffer <= 0 {
		config.GuessBuffer = defaultGuessBuffer
	}
	if config.StopToken == "" {
		config.StopToken = defaultStopToken
	}
	if config.Clock == nil {
		config.Clock = &clock.DefaultClock{}
	}
	if config.UUIDGenerator == nil {
		config.UUIDGenerator = uuid.New()
	}

	return &service{
		config:       &config,
		questionRepo: config.QuestionRepo,
		matcher:      config.Matcher,
		shuffler:     config.Shuffler,
		presenter:    config.Presenter,
		clock:        config.Clock,
		uuider:       config.UUIDGenerator,
		sessions:     make(map[string]*session),
	}, nil
}

// StartGame validates a start request, registers the session for its
// channel, and launches the round loop. Registration and the
// one-game-per-channel check are atomic under the service mutex.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[input.ChannelID]; exists {
		return nil, ErrGameAlreadyRunning
	}

	if input.Rounds < 1 || input.Rounds > s.config.MaxRounds {
		return nil, ErrInvalidRoundCount
	}

	bank, err := s.questionRepo.GetQuestions(ctx, &questionRepo.GetQuestionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	pool := make([]*models.Question, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		if q.Year >= input.StartYear && q.Year <= input.EndYear {
			pool = append(pool, q)
		}
	}

	if len(pool) == 0 {
		return nil, ErrNoQuestionsInRange
	}

	s.shuffler.Shuffle(pool)

	// The loop outlives the start request, so it gets its own context
	gameCtx, cancel := context.WithCancel(context.Background())

	sess := &session{
		game: &models.Game{
			ID:          s.uuider.NewUUID(),
			ChannelID:   input.ChannelID,
			StartedBy:   input.PlayerID,
			StartYear:   input.StartYear,
			EndYear:     input.EndYear,
			RoundsTotal: input.Rounds,
			Status:      models.GameStatusActive,
			CreatedAt:   s.clock.Now(),
		},
		pool:    pool,
		scores:  make(map[string]int),
		names:   make(map[string]string),
		guesses: make(chan models.Guess, s.config.GuessBuffer),
		ctx:     gameCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	s.sessions[input.ChannelID] = sess
	go s.run(sess)

	return &StartGameOutput{
		GameID:           sess.game.ID,
		PoolSize:         len(pool),
		Rounds:           input.Rounds,
		EarlyEndPossible: len(pool) < input.Rounds,
		Done:             sess.done,
	}, nil
}

// StopGame flags a channel's running game to stop. The in-flight round
// observes the cancellation within one tick; no new round starts after it.
func (s *service) StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}

	s.mu.Lock()
	sess, ok := s.sessions[input.ChannelID]
	s.mu.Unlock()

	if !ok {
		return nil, ErrNoActiveGame
	}

	sess.cancel()

	return &StopGameOutput{
		Stopped: true,
	}, nil
}

// SubmitGuess feeds a participant's message into the channel's active
// round. Messages for channels without a running game are dropped cheaply.
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil || input.ChannelID == "" || strings.TrimSpace(input.Content) == "" {
		return &SubmitGuessOutput{Accepted: false}, nil
	}

	s.mu.Lock()
	sess, ok := s.sessions[input.ChannelID]
	s.mu.Unlock()

	if !ok {
		return &SubmitGuessOutput{Accepted: false}, nil
	}

	select {
	case sess.guesses <- models.Guess{
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		Content:    input.Content,
	}:
		return &SubmitGuessOutput{Accepted: true}, nil
	default:
		// Buffer full; the round consumes at most one guess per tick anyway
		return &SubmitGuessOutput{Accepted: false}, nil
	}
}

// removeSession drops a channel's registry entry. Called exactly once per
// session, from the round loop's deferred cleanup.
func (s *service) removeSession(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, channelID)
}
