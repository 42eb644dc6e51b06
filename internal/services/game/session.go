package game

import (
	"context"
	"log"
	"sort"

	"github.com/KirkDiggler/tanktrivia/internal/models"
)

// session owns all mutable state for one channel's game. After StartGame
// registers it, only the round loop goroutine touches these fields; the
// service interacts through the guess channel and the cancel func.
type session struct {
	game    *models.Game
	pool    []*models.Question
	scores  map[string]int
	names   map[string]string
	order   []string // player IDs in first-scored order, for stable standings
	guesses chan models.Guess
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	// tokenStop records that the stop token was guessed in-channel, which
	// gets its own announcement; a /trivia stop command is acked by the
	// command handler instead
	tokenStop bool
}

// creditWinner adds one point, remembering first-scored order for ties
func (sess *session) creditWinner(playerID, playerName string) {
	if _, seen := sess.scores[playerID]; !seen {
		sess.order = append(sess.order, playerID)
	}
	sess.scores[playerID]++
	sess.names[playerID] = playerName
}

// standings returns the leaderboard sorted by descending score. Equal
// scores keep first-scored order.
func (sess *session) standings() []*models.Standing {
	standings := make([]*models.Standing, 0, len(sess.order))
	for _, playerID := range sess.order {
		standings = append(standings, &models.Standing{
			PlayerID:   playerID,
			PlayerName: sess.names[playerID],
			Score:      sess.scores[playerID],
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	return standings
}

// drainGuesses drops anything buffered from an earlier round
func (sess *session) drainGuesses() {
	for {
		select {
		case <-sess.guesses:
		default:
			return
		}
	}
}

// run drives the round loop for one game session: pop a question, run the
// round, fold the outcome into the scores, repeat until the round count,
// the pool, or the running flag gives out. The deferred cleanup always
// deregisters the channel, so a failed game can never block future ones.
func (s *service) run(sess *session) {
	defer close(sess.done)
	defer s.removeSession(sess.game.ChannelID)
	defer sess.cancel()

	channelID := sess.game.ChannelID

	for sess.game.RoundNum < sess.game.RoundsTotal && len(sess.pool) > 0 && sess.ctx.Err() == nil {
		q := sess.pool[len(sess.pool)-1]
		sess.pool = sess.pool[:len(sess.pool)-1]
		sess.game.RoundNum++

		outcome := s.runRound(sess, q)

		switch {
		case outcome.Cancelled:
			sess.game.Status = models.GameStatusStopped
			if sess.tokenStop {
				if err := s.presenter.AnnounceStopped(context.Background(), &AnnounceStoppedInput{
					ChannelID: channelID,
				}); err != nil {
					log.Printf("failed to announce stop in channel %s: %v", channelID, err)
				}
			}

		case outcome.WinnerID != "":
			sess.creditWinner(outcome.WinnerID, outcome.WinnerName)
			if err := s.presenter.AnnounceWinner(sess.ctx, &AnnounceWinnerInput{
				ChannelID:  channelID,
				PlayerID:   outcome.WinnerID,
				PlayerName: outcome.WinnerName,
			}); err != nil {
				log.Printf("failed to announce winner in channel %s: %v", channelID, err)
			}

		default:
			if err := s.presenter.AnnounceTimeout(sess.ctx, &AnnounceTimeoutInput{
				ChannelID: channelID,
				Aliases:   q.Aliases,
			}); err != nil {
				log.Printf("failed to announce timeout in channel %s: %v", channelID, err)
			}
		}
	}

	if sess.ctx.Err() == nil && len(sess.pool) == 0 && sess.game.RoundNum < sess.game.RoundsTotal {
		if err := s.presenter.AnnounceEarlyEnd(context.Background(), &AnnounceEarlyEndInput{
			ChannelID: channelID,
		}); err != nil {
			log.Printf("failed to announce early end in channel %s: %v", channelID, err)
		}
	}

	// A stop can also land between rounds, where no Cancelled outcome is
	// produced; the context records it either way
	if sess.ctx.Err() != nil {
		sess.game.Status = models.GameStatusStopped
	} else {
		sess.game.Status = models.GameStatusCompleted
	}

	if err := s.presenter.AnnounceStandings(context.Background(), &AnnounceStandingsInput{
		ChannelID: channelID,
		Standings: sess.standings(),
	}); err != nil {
		log.Printf("failed to announce standings in channel %s: %v", channelID, err)
	}
}
