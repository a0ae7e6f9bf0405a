package round

import (
	"context"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// StartSlider opens a slider lobby, takes the host's split stake and starts
// the countdown
func (s *service) StartSlider(ctx context.Context, input *StartSliderInput) (*StartSliderOutput, error) {
	if input.Surface == nil {
		return nil, ErrNilSurface
	}

	r := s.newRound(models.KindSlider, input.ChannelID, input.Surface)
	if err := s.register(r); err != nil {
		return nil, err
	}

	out, err := s.wallet.WagerSplit(ctx, &wallet.WagerSplitInput{
		AccountID: input.HostID,
		Bets:      input.Bets,
	})
	if err != nil {
		s.unregister(r)
		return nil, err
	}

	st := &models.Stake{
		PlayerID:   input.HostID,
		PlayerName: input.HostName,
		Amount:     out.Total,
		Bands:      out.Amounts,
	}
	r.mu.Lock()
	r.stakes = append(r.stakes, st)
	r.byPlayer[input.HostID] = st
	r.mu.Unlock()

	go s.runSlider(r)
	go s.watch(r)

	s.logger.Info().
		Str("round", r.id).
		Str("channel", r.channelID).
		Str("host", input.HostID).
		Float64("stake", out.Total).
		Msg("slider round opened")

	return &StartSliderOutput{RoundID: r.id, Amount: out.Total}, nil
}

// JoinSlider adds a player during the countdown
func (s *service) JoinSlider(ctx context.Context, input *JoinSliderInput) (*JoinSliderOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindSlider)
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

	out, err := s.wallet.WagerSplit(ctx, &wallet.WagerSplitInput{
		AccountID: input.PlayerID,
		Bets:      input.Bets,
	})
	if err != nil {
		return nil, err
	}

	st := &models.Stake{
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		Amount:     out.Total,
		Bands:      out.Amounts,
	}
	r.stakes = append(r.stakes, st)
	r.byPlayer[input.PlayerID] = st

	return &JoinSliderOutput{Amount: out.Total}, nil
}

// runSlider drives one slider round: countdown, weighted band draw, payout of
// every stake on the winning band
func (s *service) runSlider(r *Round) {
	ctx := context.Background()

	if !s.runCountdown(ctx, r) {
		return
	}

	r.mu.Lock()
	if r.phase == models.PhaseClosed {
		r.mu.Unlock()
		return
	}
	r.phase = models.PhaseActive
	r.winningBand = sliderBandOrder[rng.WeightedIndex(s.rand, sliderBandWeights)]
	r.mu.Unlock()

	// The winning band is fixed above; the frames are decoration
	if s.timing.SliderFrames > 0 && s.timing.SliderFrameInterval > 0 {
		ticker := s.clock.NewTicker(s.timing.SliderFrameInterval)
		defer ticker.Stop()

		for frame := 0; frame < s.timing.SliderFrames; frame++ {
			r.mu.Lock()
			if r.phase != models.PhaseActive {
				r.mu.Unlock()
				return
			}
			r.strip = s.drawStrip()
			r.mu.Unlock()
			s.pushView(ctx, r)

			select {
			case <-r.closed:
				return
			case <-ticker.C():
			}
		}
	}

	r.mu.Lock()
	if r.phase != models.PhaseActive {
		r.mu.Unlock()
		return
	}

	strip := s.drawStrip()
	strip[len(strip)/2] = r.winningBand
	r.strip = strip

	r.phase = models.PhaseSettlement
	for _, st := range r.stakes {
		winnings := rng.Round2(st.Bands[r.winningBand] * sliderMultipliers[r.winningBand])
		s.settleLocked(ctx, r, st, winnings)
	}
	winner := r.winningBand
	r.mu.Unlock()

	s.closeRound(ctx, r)

	s.logger.Info().
		Str("round", r.id).
		Str("band", string(winner)).
		Msg("slider round settled")
}

// drawStrip rolls one animation frame of weighted band symbols
func (s *service) drawStrip() []models.Band {
	strip := make([]models.Band, sliderStripWidth)
	for i := range strip {
		strip[i] = sliderBandOrder[rng.WeightedIndex(s.rand, sliderBandWeights)]
	}
	return strip
}
