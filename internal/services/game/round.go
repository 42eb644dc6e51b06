package game

import (
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/tanktrivia/internal/models"
)

// runRound presents one question and polls for guesses, one tick at a
// time, until a winner, the stop token, cancellation, or the time budget
// running out. A panic inside a round is logged and scored as no winner;
// the session moves on to the next round instead of crashing the game.
func (s *service) runRound(sess *session, q *models.Question) (outcome *models.RoundOutcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("round %d/%d in channel %s failed: %v",
				sess.game.RoundNum, sess.game.RoundsTotal, sess.game.ChannelID, r)
			outcome = &models.RoundOutcome{TimedOut: true}
		}
	}()

	// Guesses buffered before this question was shown are stale
	sess.drainGuesses()

	messageRef := ""
	announced, err := s.presenter.AnnounceRound(sess.ctx, &AnnounceRoundInput{
		ChannelID:   sess.game.ChannelID,
		QuestionID:  q.ID,
		Round:       sess.game.RoundNum,
		RoundsTotal: sess.game.RoundsTotal,
		Year:        q.Year,
	})
	if err != nil {
		// Transient presentation failure; run the round without countdown edits
		log.Printf("failed to announce round in channel %s: %v", sess.game.ChannelID, err)
	} else {
		messageRef = announced.MessageRef
	}

	stopToken := strings.ToLower(s.config.StopToken)

	for remaining := s.config.RoundTicks; remaining > 0; remaining-- {
		timer := time.NewTimer(s.config.TickInterval)

		var guess *models.Guess
		select {
		case <-sess.ctx.Done():
			timer.Stop()
			return &models.RoundOutcome{Cancelled: true}
		case g := <-sess.guesses:
			timer.Stop()
			guess = &g
		case <-timer.C:
		}

		if guess != nil {
			if strings.ToLower(strings.TrimSpace(guess.Content)) == stopToken {
				sess.tokenStop = true
				sess.cancel()
				return &models.RoundOutcome{Cancelled: true}
			}

			if s.matcher.Matches(guess.Content, q.Aliases) {
				return &models.RoundOutcome{
					WinnerID:   guess.PlayerID,
					WinnerName: guess.PlayerName,
				}
			}
		}

		if remaining <= s.config.CountdownTicks && messageRef != "" {
			// Best-effort; a deleted round message must never abort the round
			_ = s.presenter.UpdateCountdown(sess.ctx, &UpdateCountdownInput{
				ChannelID:   sess.game.ChannelID,
				MessageRef:  messageRef,
				Round:       sess.game.RoundNum,
				RoundsTotal: sess.game.RoundsTotal,
				Year:        q.Year,
				Remaining:   remaining,
			})
		}
	}

	return &models.RoundOutcome{TimedOut: true}
}
