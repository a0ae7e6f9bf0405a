package round

import (
	"context"
	"sort"

	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

const (
	maxBattleHumans    = 8
	maxBotTeamSize     = 4
	maxCaseQuantity    = 5
	defaultBotTeamSize = 2
)

var (
	botNamePrefixes = []string{"Cyber", "Quantum", "Nexus", "Astro", "Cosmic", "Nova", "Stellar", "Galactic"}
	botNameSuffixes = []string{"Bot", "AI", "Mind", "Core", "Unit", "Droid", "Sentinel", "Agent"}
)

func (s *service) botName() string {
	return botNamePrefixes[s.rand.Intn(len(botNamePrefixes))] +
		botNameSuffixes[s.rand.Intn(len(botNameSuffixes))]
}

// StartBattle opens a case battle lobby. Nothing is debited until the host
// begins the battle; the host's balance is only checked to cover the pot.
func (s *service) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input.Surface == nil {
		return nil, ErrNilSurface
	}
	if len(input.Cases) == 0 {
		return nil, ErrNoCasesSelected
	}

	var pot float64
	total := 0
	for key, qty := range input.Cases {
		c, ok := s.catalog.Get(key)
		if !ok {
			return nil, ErrUnknownCase
		}
		if qty < 1 || qty > maxCaseQuantity {
			return nil, ErrTooManyCases
		}
		total += qty
		pot += c.Price * float64(qty)
	}
	if total > maxBattleCases {
		return nil, ErrTooManyCases
	}
	pot = rng.Round2(pot)

	balance, err := s.wallet.GetBalance(ctx, &wallet.GetBalanceInput{
		AccountID: input.HostID,
	})
	if err != nil {
		return nil, err
	}
	if balance.Account.Wallet < pot {
		return nil, ErrInsufficientFunds
	}

	r := s.newRound(models.KindBattle, input.ChannelID, input.Surface)
	if err := s.register(r); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cases = input.Cases
	r.pot = pot
	r.botBattle = input.BotBattle
	r.teamTotals = map[int]float64{1: 0, 2: 0}
	r.playerTotals = map[string]float64{}
	r.members = []*battleMember{{id: input.HostID, name: input.HostName, team: 1}}

	if input.BotBattle {
		size := input.TeamSize
		if size < 1 || size > maxBotTeamSize {
			size = defaultBotTeamSize
		}
		for i := 1; i < size; i++ {
			r.members = append(r.members, &battleMember{name: s.botName(), team: 1})
		}
		for i := 0; i < size; i++ {
			r.members = append(r.members, &battleMember{name: s.botName(), team: 2})
		}
	}
	r.mu.Unlock()

	s.pushView(ctx, r)
	go s.watch(r)

	s.logger.Info().
		Str("round", r.id).
		Str("host", input.HostID).
		Float64("pot", pot).
		Bool("bots", input.BotBattle).
		Msg("case battle opened")

	return &StartBattleOutput{RoundID: r.id, Pot: pot}, nil
}

// JoinBattle adds a player to whichever team currently has fewer members
func (s *service) JoinBattle(ctx context.Context, input *JoinBattleInput) (*JoinBattleOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindBattle)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != models.PhaseLobby {
		if r.phase == models.PhaseClosed {
			return nil, ErrRoundClosed
		}
		return nil, ErrAlreadyStarted
	}
	if r.botBattle {
		return nil, ErrHumansJoined
	}

	humans := 0
	teamSizes := map[int]int{1: 0, 2: 0}
	for _, m := range r.members {
		if m.id == input.PlayerID {
			return nil, ErrAlreadyJoined
		}
		if m.id != "" {
			humans++
		}
		teamSizes[m.team]++
	}
	if humans >= maxBattleHumans {
		return nil, ErrRoundFull
	}

	balance, err := s.wallet.GetBalance(ctx, &wallet.GetBalanceInput{
		AccountID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}
	if balance.Account.Wallet < r.pot {
		return nil, ErrInsufficientFunds
	}

	team := 1
	if teamSizes[1] > teamSizes[2] {
		team = 2
	}
	r.members = append(r.members, &battleMember{id: input.PlayerID, name: input.PlayerName, team: team})

	return &JoinBattleOutput{Team: team}, nil
}

// BeginBattle collects every human's team share of the pot and starts the
// opening sequence. If any debit fails, the ones already taken are returned
// and the lobby stays open.
func (s *service) BeginBattle(ctx context.Context, input *BeginBattleInput) (*BeginBattleOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindBattle)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != models.PhaseLobby {
		if r.phase == models.PhaseClosed {
			return nil, ErrRoundClosed
		}
		return nil, ErrAlreadyStarted
	}
	if len(r.members) == 0 || r.members[0].id != input.PlayerID {
		return nil, ErrNotHost
	}

	teamSizes := map[int]int{}
	humans := 0
	for _, m := range r.members {
		teamSizes[m.team]++
		if m.id != "" {
			humans++
		}
	}
	if !r.botBattle && humans < 2 {
		return nil, ErrNotEnoughPlayers
	}

	// One debit per human: their team's per-head share of the pot
	var taken []*models.Stake
	for _, m := range r.members {
		if m.id == "" {
			continue
		}
		share := rng.Round2(r.pot / float64(teamSizes[m.team]))
		if _, err := s.wallet.Debit(ctx, &wallet.DebitInput{
			AccountID: m.id,
			Amount:    share,
		}); err != nil {
			for _, st := range taken {
				st.Settle(st.Amount)
				if _, cerr := s.wallet.Credit(ctx, &wallet.CreditInput{
					AccountID: st.PlayerID,
					Amount:    st.Amount,
				}); cerr != nil {
					s.logger.Error().Err(cerr).
						Str("player", st.PlayerID).
						Msg("failed to return stake after aborted start")
				}
			}
			if err == wallet.ErrInsufficientFunds {
				return nil, ErrInsufficientFunds
			}
			return nil, err
		}

		st := &models.Stake{PlayerID: m.id, PlayerName: m.name, Amount: share}
		taken = append(taken, st)
	}

	r.stakes = taken
	for _, st := range taken {
		r.byPlayer[st.PlayerID] = st
	}
	r.phase = models.PhaseActive

	go s.runBattle(r)

	return &BeginBattleOutput{}, nil
}

// CancelBattle closes a lobby that never started. No stakes exist yet, so
// there is nothing to refund.
func (s *service) CancelBattle(ctx context.Context, input *CancelBattleInput) (*CancelBattleOutput, error) {
	r, err := s.getRound(input.RoundID, models.KindBattle)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()

	if r.phase != models.PhaseLobby {
		r.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	if len(r.members) == 0 || r.members[0].id != input.PlayerID {
		r.mu.Unlock()
		return nil, ErrNotHost
	}
	r.mu.Unlock()

	s.closeRound(ctx, r)

	return &CancelBattleOutput{}, nil
}

// runBattle opens every purchased case once per participant, then pays the
// winning team the pot
func (s *service) runBattle(r *Round) {
	ctx := context.Background()

	s.pushView(ctx, r)

	caseKeys := make([]string, 0, len(r.cases))
	for key := range r.cases {
		caseKeys = append(caseKeys, key)
	}
	sort.Strings(caseKeys)

	for _, key := range caseKeys {
		c, _ := s.catalog.Get(key)
		for i := 0; i < r.cases[key]; i++ {
			for team := 1; team <= 2; team++ {
				for _, m := range r.members {
					if m.team != team {
						continue
					}

					r.mu.Lock()
					if r.phase != models.PhaseActive {
						r.mu.Unlock()
						return
					}

					rarity := models.RarityOrder[rng.WeightedIndex(s.rand, models.RarityWeights)]
					items := c.ItemsByRarity(rarity)
					item := items[s.rand.Intn(len(items))]

					r.playerTotals[m.name] += item.Value
					r.teamTotals[m.team] += item.Value
					r.lastOpen = &CaseOpen{
						PlayerName: m.name,
						Team:       m.team,
						ItemName:   item.Name,
						ItemValue:  item.Value,
						Rarity:     rarity,
					}
					r.mu.Unlock()

					s.pushView(ctx, r)

					select {
					case <-r.closed:
						return
					case <-s.clock.After(s.timing.BattleOpenDelay):
					}
				}
			}
		}
	}

	s.settleBattle(ctx, r)
}

// settleBattle pays the pot to the winning team, or returns stakes on a tie.
// Bots hold no stakes, so only humans touch the ledger.
func (s *service) settleBattle(ctx context.Context, r *Round) {
	r.mu.Lock()

	if r.phase != models.PhaseActive {
		r.mu.Unlock()
		return
	}
	r.phase = models.PhaseSettlement

	switch {
	case r.teamTotals[1] == r.teamTotals[2]:
		// A tie returns every stake untouched
		for _, st := range r.stakes {
			s.settleLocked(ctx, r, st, st.Amount)
		}
	default:
		r.winningTeam = 1
		if r.teamTotals[2] > r.teamTotals[1] {
			r.winningTeam = 2
		}

		winners := 0
		for _, m := range r.members {
			if m.team == r.winningTeam {
				winners++
			}
		}

		// Per-head share of the pot; the first human winner absorbs the
		// rounding remainder so the pot pays out exactly
		winShare := rng.Round2(r.pot / float64(winners))
		remainder := rng.Round2(r.pot - winShare*float64(winners))

		for _, m := range r.members {
			if m.id == "" {
				continue
			}
			st := r.byPlayer[m.id]
			if m.team != r.winningTeam {
				s.settleLocked(ctx, r, st, 0)
				continue
			}
			credit := rng.Round2(st.Amount + winShare + remainder)
			remainder = 0
			s.settleLocked(ctx, r, st, credit)
		}
	}

	winner := r.winningTeam
	r.mu.Unlock()

	s.closeRound(ctx, r)

	s.logger.Info().
		Str("round", r.id).
		Int("winning_team", winner).
		Float64("pot", r.pot).
		Msg("case battle settled")
}
