package round

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fortunabot/fortuna/internal/catalog"
	"github.com/fortunabot/fortuna/internal/common/clock"
	"github.com/fortunabot/fortuna/internal/common/uuid"
	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// battleMember is one battle participant. Bots have an empty id and never
// touch the ledger.
type battleMember struct {
	id   string
	name string
	team int
}

// Round holds the shared state of one running game. All fields behind mu are
// mutated only while it is held; the per-round goroutine and player actions
// serialize through it.
type Round struct {
	mu sync.Mutex

	id        string
	kind      models.Kind
	channelID string
	phase     models.Phase
	surface   Surface
	createdAt time.Time

	stakes   []*models.Stake
	byPlayer map[string]*models.Stake

	// closed is shut exactly once, when the round leaves the registry
	closed      chan struct{}
	closeOnce   sync.Once
	forceClosed bool

	countdown int

	// crash
	multiplier float64
	crashPoint float64
	crashed    bool

	// slider
	winningBand models.Band
	strip       []models.Band

	// tower
	level     int
	safeTiles [][]int
	fell      bool
	fellLane  int
	idleTimer clock.Timer

	// highlow
	first  int
	second int
	guess  models.Guess
	won    bool

	// battle
	members      []*battleMember
	cases        map[string]int
	pot          float64
	botBattle    bool
	teamTotals   map[int]float64
	playerTotals map[string]float64
	winningTeam  int
	lastOpen     *CaseOpen
}

// signalClosed wakes everything waiting on the round
func (r *Round) signalClosed() {
	r.closeOnce.Do(func() { close(r.closed) })
}

// viewLocked snapshots the round for the surface; callers hold r.mu
func (r *Round) viewLocked() *View {
	v := &View{
		ID:          r.id,
		Kind:        r.kind,
		Phase:       r.phase,
		ChannelID:   r.channelID,
		Countdown:   r.countdown,
		Multiplier:  r.multiplier,
		Crashed:     r.crashed,
		WinningBand: r.winningBand,
		Level:       r.level,
		Multipliers: towerMultipliers,
		Fell:        r.fell,
		FellLane:    r.fellLane,
		First:       r.first,
		Second:      r.second,
		Guess:       r.guess,
		Won:         r.won,
		Pot:         r.pot,
		WinningTeam: r.winningTeam,
		LastOpen:    r.lastOpen,
		ForceClosed: r.forceClosed,
	}

	for _, st := range r.stakes {
		v.Stakes = append(v.Stakes, *st)
	}

	// The crash point stays hidden until the round is over
	if r.crashed || r.phase == models.PhaseClosed {
		v.CrashPoint = r.crashPoint
	}

	if r.safeTiles != nil {
		v.SafeTiles = r.safeTiles
	}

	if r.strip != nil {
		v.Strip = append([]models.Band(nil), r.strip...)
	}

	if r.members != nil {
		v.Teams = map[int][]string{}
		for _, m := range r.members {
			v.Teams[m.team] = append(v.Teams[m.team], m.name)
		}
		v.TeamTotals = map[int]float64{}
		for team, total := range r.teamTotals {
			v.TeamTotals[team] = total
		}
		v.PlayerTotals = map[string]float64{}
		for name, total := range r.playerTotals {
			v.PlayerTotals[name] = total
		}
	}

	return v
}

type service struct {
	wallet  wallet.Service
	clock   clock.Clock
	uuid    uuid.UUID
	rand    rng.Source
	catalog *catalog.Catalog
	timing  *Timing
	logger  zerolog.Logger

	mu     sync.Mutex
	rounds map[string]*Round
	active map[string]string
}

// New creates a new round service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.WalletService == nil {
		return nil, ErrNilWalletService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Rand == nil {
		return nil, ErrNilRandSource
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	timing := cfg.Timing
	if timing == nil {
		timing = DefaultTiming()
	}

	return &service{
		wallet:  cfg.WalletService,
		clock:   cfg.Clock,
		uuid:    cfg.UUIDGenerator,
		rand:    cfg.Rand,
		catalog: cfg.Catalog,
		timing:  timing,
		logger:  cfg.Logger.With().Str("service", "round").Logger(),
		rounds:  map[string]*Round{},
		active:  map[string]string{},
	}, nil
}

func channelKey(channelID string, kind models.Kind) string {
	return fmt.Sprintf("%s/%s", channelID, kind)
}

// newRound builds a round in the lobby phase
func (s *service) newRound(kind models.Kind, channelID string, surface Surface) *Round {
	return &Round{
		id:        s.uuid.NewUUID(),
		kind:      kind,
		channelID: channelID,
		phase:     models.PhaseLobby,
		surface:   surface,
		createdAt: s.clock.Now(),
		byPlayer:  map[string]*models.Stake{},
		closed:    make(chan struct{}),
	}
}

// register adds a round to the registry, enforcing one live round per channel
// and kind
func (s *service) register(r *Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := channelKey(r.channelID, r.kind)
	if _, busy := s.active[key]; busy {
		return ErrRoundInProgress
	}

	s.rounds[r.id] = r
	s.active[key] = r.id
	return nil
}

// unregister drops a closed round and wakes its waiters
func (s *service) unregister(r *Round) {
	s.mu.Lock()
	delete(s.rounds, r.id)
	key := channelKey(r.channelID, r.kind)
	if s.active[key] == r.id {
		delete(s.active, key)
	}
	s.mu.Unlock()

	r.signalClosed()
}

// ActiveRound looks up the live round of a kind in a channel
func (s *service) ActiveRound(ctx context.Context, input *ActiveRoundInput) (*ActiveRoundOutput, error) {
	s.mu.Lock()
	id, ok := s.active[channelKey(input.ChannelID, input.Kind)]
	r := s.rounds[id]
	s.mu.Unlock()

	if !ok || r == nil {
		return nil, ErrRoundNotFound
	}

	r.mu.Lock()
	phase := r.phase
	r.mu.Unlock()

	return &ActiveRoundOutput{RoundID: id, Phase: phase}, nil
}

func (s *service) getRound(id string, kind models.Kind) (*Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[id]
	if !ok || r.kind != kind {
		return nil, ErrRoundNotFound
	}
	return r, nil
}

// settleLocked pays out a stake at most once; callers hold r.mu. Zero-amount
// settlements only flip the guard. Bots never reach the ledger.
func (s *service) settleLocked(ctx context.Context, r *Round, st *models.Stake, amount float64) bool {
	if !st.Settle(amount) {
		return false
	}

	if amount > 0 && !st.IsBot() {
		if _, err := s.wallet.Credit(ctx, &wallet.CreditInput{
			AccountID: st.PlayerID,
			Amount:    amount,
		}); err != nil {
			s.logger.Error().Err(err).
				Str("round", r.id).
				Str("player", st.PlayerID).
				Float64("amount", amount).
				Msg("failed to credit settlement")
		}
	}

	return true
}

// refundUnsettledLocked returns every open stake; callers hold r.mu
func (s *service) refundUnsettledLocked(ctx context.Context, r *Round) {
	for _, st := range r.stakes {
		if !st.Settled {
			s.settleLocked(ctx, r, st, st.Amount)
		}
	}
}

// pushView sends a snapshot to the surface, outside the round lock
func (s *service) pushView(ctx context.Context, r *Round) {
	r.mu.Lock()
	v := r.viewLocked()
	surface := r.surface
	r.mu.Unlock()

	if err := surface.Update(ctx, v); err != nil {
		s.logger.Warn().Err(err).Str("round", r.id).Msg("surface update failed")
	}
}

// watch polls the surface until the round closes. A vanished surface means
// nobody can see or act on the round anymore, so open stakes are reimbursed
// and the round is torn down.
func (s *service) watch(r *Round) {
	ticker := s.clock.NewTicker(s.timing.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.closed:
			return
		case <-ticker.C():
			if !r.surface.Exists(context.Background()) {
				s.forceClose(r)
				return
			}
		}
	}
}

// forceClose reimburses all open stakes and tears the round down
func (s *service) forceClose(r *Round) {
	ctx := context.Background()

	r.mu.Lock()
	if r.phase == models.PhaseClosed {
		r.mu.Unlock()
		return
	}
	r.forceClosed = true
	s.refundUnsettledLocked(ctx, r)
	r.phase = models.PhaseClosed
	if r.idleTimer != nil {
		r.idleTimer.Stop()
	}
	r.mu.Unlock()

	s.unregister(r)

	s.logger.Warn().
		Str("round", r.id).
		Str("kind", string(r.kind)).
		Str("channel", r.channelID).
		Msg("surface lost, round reimbursed")
}

// runCountdown walks the lobby countdown to zero, pushing a view every step.
// It returns false if the round was closed underneath it.
func (s *service) runCountdown(ctx context.Context, r *Round) bool {
	r.mu.Lock()
	r.phase = models.PhaseCountdown
	r.countdown = s.timing.CountdownSeconds
	r.mu.Unlock()

	for i := s.timing.CountdownSeconds; i > 0; i-- {
		r.mu.Lock()
		if r.phase == models.PhaseClosed {
			r.mu.Unlock()
			return false
		}
		r.countdown = i
		r.mu.Unlock()

		s.pushView(ctx, r)

		select {
		case <-r.closed:
			return false
		case <-s.clock.After(s.timing.CountdownInterval):
		}
	}

	return true
}

// newIdleTimer arms the inactivity timeout for single-player rounds
func (s *service) newIdleTimer(r *Round, d time.Duration) clock.Timer {
	return s.clock.AfterFunc(d, func() { s.idleClose(r) })
}

// idleClose refunds an abandoned single-player round and closes it
func (s *service) idleClose(r *Round) {
	ctx := context.Background()

	r.mu.Lock()
	if r.phase != models.PhaseActive {
		r.mu.Unlock()
		return
	}
	s.refundUnsettledLocked(ctx, r)
	r.phase = models.PhaseClosed
	r.mu.Unlock()

	s.pushView(ctx, r)
	s.unregister(r)

	s.logger.Info().
		Str("round", r.id).
		Str("kind", string(r.kind)).
		Msg("idle round refunded")
}

// closeRound marks the round closed, pushes the final view and drops it from
// the registry
func (s *service) closeRound(ctx context.Context, r *Round) {
	r.mu.Lock()
	r.phase = models.PhaseClosed
	if r.idleTimer != nil {
		r.idleTimer.Stop()
	}
	r.mu.Unlock()

	s.pushView(ctx, r)
	s.unregister(r)
}
