package round

import (
	"context"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// StartCrash opens a crash lobby, takes the host's stake and starts the
// countdown
func (s *service) StartCrash(ctx context.Context, input *StartCrashInput) (*StartCrashOutput, error) {
	if input.Surface == nil {
		return nil, ErrNilSurface
	}

	r := s.newRound(models.KindCrash, input.ChannelID, input.Surface)
	if err := s.register(r); err != nil {
		return nil, err
	}

	out, err := s.wallet.Wager(ctx, &wallet.WagerInput{
		AccountID: input.HostID,
		Bet:       input.Bet,
	})
	if err != nil {
		s.unregister(r)
		return nil, err
	}

	st := &models.Stake{
		PlayerID:    input.HostID,
		PlayerName:  input.HostName,
		Amount:      out.Amount,
		AutoCashout: input.AutoCashout,
	}
	r.mu.Lock()
	r.stakes = append(r.stakes, st)
	r.byPlayer[input.HostID] = st
	r.mu.Unlock()

	go s.runCrash(r)
	go s.watch(r)

	s.logger.Info().
		Str("round", r.id).
		Str("channel", r.channelID).
		Str("host", input.HostID).
		Float64("stake", out.Amount).
		Msg("crash round opened")

	return &StartCrashOutput{RoundID: r.id, Amount: out.Amount}, nil
}

// JoinCrash adds a player during the countdown. The stake is debited as part
// of the join.
func (s *service) JoinCrash(ctx context.Context, input *JoinCrashInput) (*JoinCrashOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindCrash)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.phase {
	case models.PhaseLobby, models.PhaseCountdown:
	case models.PhaseClosed:
		return nil, ErrRoundClosed
	default:
		return nil, ErrAlreadyStarted
	}
	if len(r.stakes) >= maxParticipants {
		return nil, ErrRoundFull
	}
	if _, joined := r.byPlayer[input.PlayerID]; joined {
		return nil, ErrAlreadyJoined
	}

	out, err := s.wallet.Wager(ctx, &wallet.WagerInput{
		AccountID: input.PlayerID,
		Bet:       input.Bet,
	})
	if err != nil {
		return nil, err
	}

	st := &models.Stake{
		PlayerID:    input.PlayerID,
		PlayerName:  input.PlayerName,
		Amount:      out.Amount,
		AutoCashout: input.AutoCashout,
	}
	r.stakes = append(r.stakes, st)
	r.byPlayer[input.PlayerID] = st

	return &JoinCrashOutput{Amount: out.Amount}, nil
}

// CashOut settles the caller's stake at the multiplier as of this call. The
// read of the multiplier and the settlement happen under the round lock, so a
// concurrent tick cannot slip between them.
func (s *service) CashOut(ctx context.Context, input *CashOutInput) (*CashOutOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindCrash)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()

	if r.phase != models.PhaseActive {
		r.mu.Unlock()
		if r.phase == models.PhaseClosed {
			return nil, ErrRoundClosed
		}
		return nil, ErrAlreadyStarted
	}

	st, ok := r.byPlayer[input.PlayerID]
	if !ok {
		r.mu.Unlock()
		return nil, ErrNotParticipant
	}
	if st.Settled {
		r.mu.Unlock()
		return nil, ErrAlreadySettled
	}

	multiplier := r.multiplier
	payout := rng.Round2(st.Amount * multiplier)
	st.CashoutAt = multiplier
	s.settleLocked(ctx, r, st, payout)

	r.mu.Unlock()

	s.pushView(ctx, r)

	return &CashOutOutput{Multiplier: multiplier, Payout: payout}, nil
}

// runCrash drives one crash round from countdown to settlement
func (s *service) runCrash(r *Round) {
	ctx := context.Background()

	if !s.runCountdown(ctx, r) {
		return
	}

	r.mu.Lock()
	r.phase = models.PhaseActive
	r.multiplier = 1.00
	r.crashPoint = rng.CrashPoint(s.rand)
	r.mu.Unlock()

	s.pushView(ctx, r)

	ticker := s.clock.NewTicker(s.timing.CrashTick)
	defer ticker.Stop()

	for {
		select {
		case <-r.closed:
			return
		case <-ticker.C():
		}

		r.mu.Lock()
		if r.phase != models.PhaseActive {
			r.mu.Unlock()
			return
		}

		r.multiplier = rng.Round2(r.multiplier + crashMultiplierStep)

		// Auto-cashouts settle at their declared threshold, not at
		// whatever tick observed them
		for _, st := range r.stakes {
			if !st.Settled && st.AutoCashout > 0 && r.multiplier >= st.AutoCashout {
				st.CashoutAt = st.AutoCashout
				s.settleLocked(ctx, r, st, rng.Round2(st.Amount*st.AutoCashout))
			}
		}

		if r.multiplier >= r.crashPoint {
			r.crashed = true
			r.phase = models.PhaseSettlement
			for _, st := range r.stakes {
				if !st.Settled {
					st.Settle(0)
				}
			}
			r.mu.Unlock()

			s.closeRound(ctx, r)

			s.logger.Info().
				Str("round", r.id).
				Float64("crash_point", r.crashPoint).
				Msg("crash round settled")
			return
		}
		r.mu.Unlock()

		s.pushView(ctx, r)
	}
}
