package round

import (
	"context"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// StartTower starts a single-player climb. The safe tiles for all ten levels
// are drawn up front; an idle timer refunds the stake if the player walks
// away.
func (s *service) StartTower(ctx context.Context, input *StartTowerInput) (*StartTowerOutput, error) {
	if input.Surface == nil {
		return nil, ErrNilSurface
	}

	r := s.newRound(models.KindTower, input.ChannelID, input.Surface)
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
	r.safeTiles = rng.SafeTiles(s.rand, towerLevels, towerLanes, towerSafePerLevel)
	r.idleTimer = s.newIdleTimer(r, s.timing.TowerTimeout)
	r.mu.Unlock()

	s.pushView(ctx, r)
	go s.watch(r)

	s.logger.Info().
		Str("round", r.id).
		Str("player", input.PlayerID).
		Float64("stake", out.Amount).
		Msg("tower round opened")

	return &StartTowerOutput{RoundID: r.id, Amount: out.Amount}, nil
}

// TowerMove picks a lane on the current level. A safe lane advances the
// climb; clearing the top level settles at the maximum multiplier. An unsafe
// lane forfeits the stake and reveals the whole board.
func (s *service) TowerMove(ctx context.Context, input *TowerMoveInput) (*TowerMoveOutput, error) {
	if input.Lane < 0 || input.Lane >= towerLanes {
		return nil, ErrInvalidLane
	}

	r, err := s.getRound(input.RoundID, models.KindTower)
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

	r.idleTimer.Reset(s.timing.TowerTimeout)

	safe := false
	for _, lane := range r.safeTiles[r.level] {
		if lane == input.Lane {
			safe = true
			break
		}
	}

	if !safe {
		r.fell = true
		r.fellLane = input.Lane
		r.phase = models.PhaseSettlement
		s.settleLocked(ctx, r, st, 0)
		level := r.level
		r.mu.Unlock()

		s.closeRound(ctx, r)

		return &TowerMoveOutput{Level: level, Settled: true}, nil
	}

	r.level++
	level := r.level

	if level == towerLevels {
		payout := rng.Round2(st.Amount * towerMultipliers[towerLevels-1])
		r.phase = models.PhaseSettlement
		s.settleLocked(ctx, r, st, payout)
		r.mu.Unlock()

		s.closeRound(ctx, r)

		return &TowerMoveOutput{Safe: true, Level: level, Settled: true, Payout: payout}, nil
	}

	r.mu.Unlock()

	s.pushView(ctx, r)

	return &TowerMoveOutput{Safe: true, Level: level}, nil
}

// TowerCashOut settles the climb at the multiplier for the levels cleared. A
// cash-out before clearing any level forfeits the stake.
func (s *service) TowerCashOut(ctx context.Context, input *TowerCashOutInput) (*TowerCashOutOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindTower)
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

	var payout float64
	if r.level > 0 {
		payout = rng.Round2(st.Amount * towerMultipliers[r.level-1])
	}

	r.phase = models.PhaseSettlement
	s.settleLocked(ctx, r, st, payout)
	level := r.level
	r.mu.Unlock()

	s.closeRound(ctx, r)

	s.logger.Info().
		Str("round", r.id).
		Int("level", level).
		Float64("payout", payout).
		Msg("tower cash-out")

	return &TowerCashOutOutput{Level: level, Payout: payout}, nil
}
