package round

import (
	"context"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// StartHighLow starts a single-player high-low round. Both numbers are drawn
// immediately; only the first is revealed until the player guesses.
func (s *service) StartHighLow(ctx context.Context, input *StartHighLowInput) (*StartHighLowOutput, error) {
	if input.Surface == nil {
		return nil, ErrNilSurface
	}

	r := s.newRound(models.KindHighLow, input.ChannelID, input.Surface)
	if err := s.register(r); err != nil {
		return nil, err
	}

	out, err := s.wallet.Wager(ctx, &wallet.WagerInput{
		AccountID: input.PlayerID,
		Bet:       input.Bet,
	})
	if err != nil {
		s.unregister(r)
		return nil, err
	}

	st := &models.Stake{
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		Amount:     out.Amount,
	}
	r.mu.Lock()
	r.stakes = append(r.stakes, st)
	r.byPlayer[input.PlayerID] = st

	r.phase = models.PhaseActive
	r.first = s.rand.Intn(100) + 1
	r.second = s.rand.Intn(100) + 1
	r.idleTimer = s.newIdleTimer(r, s.timing.HighLowTimeout)
	first := r.first
	r.mu.Unlock()

	s.pushView(ctx, r)
	go s.watch(r)

	return &StartHighLowOutput{
		RoundID: r.id,
		Amount:  out.Amount,
		First:   first,
	}, nil
}

// Guess resolves the round in a single step. Higher and lower pay double the
// stake; an exact-match jackpot call pays the stake plus nine times profit.
func (s *service) Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindHighLow)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()

	if r.phase != models.PhaseActive {
		r.mu.Unlock()
		return nil, ErrRoundClosed
	}

	st, ok := r.byPlayer[input.PlayerID]
	if !ok {
		r.mu.Unlock()
		return nil, ErrNotParticipant
	}

	r.guess = input.Guess

	switch input.Guess {
	case models.GuessHigher:
		r.won = r.second > r.first
	case models.GuessLower:
		r.won = r.second < r.first
	case models.GuessJackpot:
		r.won = r.second == r.first
	}

	var payout float64
	if r.won {
		if input.Guess == models.GuessJackpot {
			payout = rng.Round2(st.Amount * (highLowJackpotProfit + 1))
		} else {
			payout = rng.Round2(st.Amount * 2)
		}
	}

	r.phase = models.PhaseSettlement
	s.settleLocked(ctx, r, st, payout)

	out := &GuessOutput{
		First:  r.first,
		Second: r.second,
		Won:    r.won,
		Payout: payout,
	}
	r.mu.Unlock()

	s.closeRound(ctx, r)

	return out, nil
}
