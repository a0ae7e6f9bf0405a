package round

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/fortunabot/fortuna/internal/catalog"
	"github.com/fortunabot/fortuna/internal/common/clock"
	"github.com/fortunabot/fortuna/internal/common/uuid"
	"github.com/fortunabot/fortuna/internal/models"
	"github.com/fortunabot/fortuna/internal/repositories/account"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

// scriptedSource replays queued values, then falls back to 0.5 / 0. Draws can
// come from round goroutines, so it is locked.
type scriptedSource struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// fakeSurface records every snapshot it receives and can be declared dead to
// trigger the liveness watcher.
type fakeSurface struct {
	alive atomic.Bool

	mu    sync.Mutex
	views []*View
}

func newFakeSurface() *fakeSurface {
	f := &fakeSurface{}
	f.alive.Store(true)
	return f
}

func (f *fakeSurface) Update(_ context.Context, v *View) error {
	f.mu.Lock()
	f.views = append(f.views, v)
	f.mu.Unlock()
	return nil
}

func (f *fakeSurface) Exists(context.Context) bool {
	return f.alive.Load()
}

func (f *fakeSurface) last() *View {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.views) == 0 {
		return nil
	}
	return f.views[len(f.views)-1]
}

type RoundServiceTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   account.Repository
	wallet wallet.Service
	rand   *scriptedSource
	svc    *service
	ctx    context.Context
}

func (s *RoundServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := account.NewRedis(&account.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	walletSvc, err := wallet.New(&wallet.Config{
		AccountRepo: s.repo,
		Clock:       &clock.DefaultClock{},
		Rand:        rng.New(&rng.Config{Seed: 1}),
		Logger:      zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.wallet = walletSvc

	s.rand = &scriptedSource{}
	s.ctx = context.Background()

	s.buildService(s.fastTiming())
}

func (s *RoundServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRoundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoundServiceTestSuite))
}

// fastTiming keeps full round lifecycles in the low hundreds of milliseconds
// while leaving the countdown wide enough to join during it
func (s *RoundServiceTestSuite) fastTiming() *Timing {
	return &Timing{
		CountdownSeconds:    50,
		CountdownInterval:   2 * time.Millisecond,
		CrashTick:           time.Millisecond,
		SliderFrames:        2,
		SliderFrameInterval: time.Millisecond,
		BattleOpenDelay:     time.Millisecond,
		WatchInterval:       10 * time.Millisecond,
		TowerTimeout:        150 * time.Millisecond,
		HighLowTimeout:      150 * time.Millisecond,
	}
}

// slowTiming holds lobbies open long enough to exercise join rules without
// racing the countdown
func (s *RoundServiceTestSuite) slowTiming() *Timing {
	t := s.fastTiming()
	t.CountdownSeconds = 1000
	t.CountdownInterval = 10 * time.Millisecond
	return t
}

func (s *RoundServiceTestSuite) buildService(timing *Timing) {
	cat, err := catalog.Load()
	s.Require().NoError(err)

	svc, err := New(&Config{
		WalletService: s.wallet,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Rand:          s.rand,
		Catalog:       cat,
		Logger:        zerolog.Nop(),
		Timing:        timing,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *RoundServiceTestSuite) seed(id string, amount float64) {
	err := s.repo.SaveAccount(s.ctx, &account.SaveAccountInput{
		Account: &models.Account{ID: id, Wallet: amount},
	})
	s.Require().NoError(err)
}

func (s *RoundServiceTestSuite) walletBalance(id string) float64 {
	out, err := s.wallet.GetBalance(s.ctx, &wallet.GetBalanceInput{AccountID: id})
	s.Require().NoError(err)
	return out.Account.Wallet
}

func (s *RoundServiceTestSuite) waitClosed(roundID string, kind models.Kind) {
	s.Require().Eventually(func() bool {
		_, err := s.svc.getRound(roundID, kind)
		return err != nil
	}, 3*time.Second, 5*time.Millisecond)
}

func (s *RoundServiceTestSuite) TestCrash_AutoCashoutBeatsTheCrash() {
	// 0.99/(1-0.67) busts at exactly 3.00
	s.rand.floats = []float64{0.67}
	s.seed("host", 1000)
	s.seed("rider", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartCrash(s.ctx, &StartCrashInput{
		ChannelID:   "chan-1",
		HostID:      "host",
		HostName:    "Host",
		Bet:         "100",
		AutoCashout: 1.5,
		Surface:     surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(100), start.Amount)
	s.Equal(float64(900), s.walletBalance("host"))

	join, err := s.svc.JoinCrash(s.ctx, &JoinCrashInput{
		RoundID:    start.RoundID,
		PlayerID:   "rider",
		PlayerName: "Rider",
		Bet:        "100",
	})
	s.Require().NoError(err)
	s.Equal(float64(100), join.Amount)

	s.waitClosed(start.RoundID, models.KindCrash)

	s.Equal(float64(1050), s.walletBalance("host"))
	s.Equal(float64(900), s.walletBalance("rider"))

	final := surface.last()
	s.Require().NotNil(final)
	s.Equal(models.PhaseClosed, final.Phase)
	s.True(final.Crashed)
	s.Equal(3.00, final.CrashPoint)
}

func (s *RoundServiceTestSuite) TestCrash_ManualCashOutSettlesOnce() {
	// 0.99/(1-0.9) keeps the round alive for roughly nine hundred ticks
	s.rand.floats = []float64{0.9}
	s.seed("host", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartCrash(s.ctx, &StartCrashInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Bet:       "100",
		Surface:   surface,
	})
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		v := surface.last()
		return v != nil && v.Phase == models.PhaseActive && v.Multiplier >= 1.01
	}, 3*time.Second, 2*time.Millisecond)

	out, err := s.svc.CashOut(s.ctx, &CashOutInput{
		RoundID:  start.RoundID,
		PlayerID: "host",
	})
	s.Require().NoError(err)
	s.GreaterOrEqual(out.Multiplier, 1.01)
	s.Equal(rng.Round2(100*out.Multiplier), out.Payout)
	s.Equal(rng.Round2(900+out.Payout), s.walletBalance("host"))

	_, err = s.svc.CashOut(s.ctx, &CashOutInput{
		RoundID:  start.RoundID,
		PlayerID: "host",
	})
	s.ErrorIs(err, ErrAlreadySettled)

	// The stake is settled; tearing the surface down must not pay again
	surface.alive.Store(false)
	s.waitClosed(start.RoundID, models.KindCrash)
	s.Equal(rng.Round2(900+out.Payout), s.walletBalance("host"))
}

func (s *RoundServiceTestSuite) TestCrash_JoinContract() {
	s.buildService(s.slowTiming())
	s.seed("host", 1000)
	s.seed("rider", 1000)
	s.seed("broke", 50)
	surface := newFakeSurface()

	start, err := s.svc.StartCrash(s.ctx, &StartCrashInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Bet:       "100",
		Surface:   surface,
	})
	s.Require().NoError(err)

	_, err = s.svc.JoinCrash(s.ctx, &JoinCrashInput{
		RoundID:    start.RoundID,
		PlayerID:   "rider",
		PlayerName: "Rider",
		Bet:        "100",
	})
	s.Require().NoError(err)

	_, err = s.svc.JoinCrash(s.ctx, &JoinCrashInput{
		RoundID:    start.RoundID,
		PlayerID:   "rider",
		PlayerName: "Rider",
		Bet:        "100",
	})
	s.ErrorIs(err, ErrAlreadyJoined)

	_, err = s.svc.JoinCrash(s.ctx, &JoinCrashInput{
		RoundID:    start.RoundID,
		PlayerID:   "broke",
		PlayerName: "Broke",
		Bet:        "100",
	})
	s.ErrorIs(err, wallet.ErrInsufficientFunds)
	s.Equal(float64(50), s.walletBalance("broke"))

	_, err = s.svc.StartCrash(s.ctx, &StartCrashInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Bet:       "100",
		Surface:   newFakeSurface(),
	})
	s.ErrorIs(err, ErrRoundInProgress)

	_, err = s.svc.JoinCrash(s.ctx, &JoinCrashInput{
		RoundID:  "no-such-round",
		PlayerID: "rider",
		Bet:      "100",
	})
	s.ErrorIs(err, ErrRoundNotFound)

	// Losing the surface reimburses everyone still in the lobby
	surface.alive.Store(false)
	s.waitClosed(start.RoundID, models.KindCrash)
	s.Equal(float64(1000), s.walletBalance("host"))
	s.Equal(float64(1000), s.walletBalance("rider"))
}

func (s *RoundServiceTestSuite) TestCrash_LobbyCapacity() {
	s.buildService(s.slowTiming())
	surface := newFakeSurface()

	for i := 0; i < 11; i++ {
		s.seed(fmt.Sprintf("p%d", i), 1000)
	}

	start, err := s.svc.StartCrash(s.ctx, &StartCrashInput{
		ChannelID: "chan-1",
		HostID:    "p0",
		HostName:  "p0",
		Bet:       "100",
		Surface:   surface,
	})
	s.Require().NoError(err)

	for i := 1; i < 10; i++ {
		_, err := s.svc.JoinCrash(s.ctx, &JoinCrashInput{
			RoundID:    start.RoundID,
			PlayerID:   fmt.Sprintf("p%d", i),
			PlayerName: fmt.Sprintf("p%d", i),
			Bet:        "100",
		})
		s.Require().NoError(err)
	}

	_, err = s.svc.JoinCrash(s.ctx, &JoinCrashInput{
		RoundID:    start.RoundID,
		PlayerID:   "p10",
		PlayerName: "p10",
		Bet:        "100",
	})
	s.ErrorIs(err, ErrRoundFull)

	surface.alive.Store(false)
	s.waitClosed(start.RoundID, models.KindCrash)
}

func (s *RoundServiceTestSuite) TestSlider_GoldTakesAll() {
	// A roll of 95 lands in the gold band
	s.rand.ints = []int{95}
	s.seed("host", 1000)
	s.seed("spread", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartSlider(s.ctx, &StartSliderInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Bets:      map[models.Band]string{models.BandGold: "100"},
		Surface:   surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(100), start.Amount)

	join, err := s.svc.JoinSlider(s.ctx, &JoinSliderInput{
		RoundID:    start.RoundID,
		PlayerID:   "spread",
		PlayerName: "Spread",
		Bets: map[models.Band]string{
			models.BandBronze: "100",
			models.BandSilver: "100",
		},
	})
	s.Require().NoError(err)
	s.Equal(float64(200), join.Amount)

	s.waitClosed(start.RoundID, models.KindSlider)

	// Gold pays 14x the band stake; the bronze and silver stakes are gone
	s.Equal(float64(2300), s.walletBalance("host"))
	s.Equal(float64(800), s.walletBalance("spread"))

	final := surface.last()
	s.Require().NotNil(final)
	s.Equal(models.BandGold, final.WinningBand)
}

func (s *RoundServiceTestSuite) TestSlider_BronzePaysDouble() {
	// A roll of 10 lands in the bronze band
	s.rand.ints = []int{10}
	s.seed("host", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartSlider(s.ctx, &StartSliderInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Bets: map[models.Band]string{
			models.BandBronze: "100",
			models.BandSilver: "100",
		},
		Surface: surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(200), start.Amount)

	s.waitClosed(start.RoundID, models.KindSlider)

	// The bronze stake doubled, the silver stake is gone
	s.Equal(float64(1000), s.walletBalance("host"))
}

func (s *RoundServiceTestSuite) TestTower_ClimbOneAndCashOut() {
	// The scripted zeroes make lanes 0 and 1 safe on every level
	s.seed("climber", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartTower(s.ctx, &StartTowerInput{
		ChannelID:  "chan-1",
		PlayerID:   "climber",
		PlayerName: "Climber",
		Bet:        "half",
		Surface:    surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(500), start.Amount)
	s.Equal(float64(500), s.walletBalance("climber"))

	move, err := s.svc.TowerMove(s.ctx, &TowerMoveInput{
		RoundID:  start.RoundID,
		PlayerID: "climber",
		Lane:     0,
	})
	s.Require().NoError(err)
	s.True(move.Safe)
	s.Equal(1, move.Level)
	s.False(move.Settled)

	out, err := s.svc.TowerCashOut(s.ctx, &TowerCashOutInput{
		RoundID:  start.RoundID,
		PlayerID: "climber",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Level)
	s.Equal(float64(600), out.Payout)
	s.Equal(float64(1100), s.walletBalance("climber"))

	s.waitClosed(start.RoundID, models.KindTower)
}

func (s *RoundServiceTestSuite) TestTower_FallForfeitsTheStake() {
	s.seed("climber", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartTower(s.ctx, &StartTowerInput{
		ChannelID:  "chan-1",
		PlayerID:   "climber",
		PlayerName: "Climber",
		Bet:        "500",
		Surface:    surface,
	})
	s.Require().NoError(err)

	// Lane 2 is never safe with the scripted zeroes
	move, err := s.svc.TowerMove(s.ctx, &TowerMoveInput{
		RoundID:  start.RoundID,
		PlayerID: "climber",
		Lane:     2,
	})
	s.Require().NoError(err)
	s.False(move.Safe)
	s.True(move.Settled)
	s.Equal(float64(0), move.Payout)
	s.Equal(float64(500), s.walletBalance("climber"))

	s.waitClosed(start.RoundID, models.KindTower)

	_, err = s.svc.TowerMove(s.ctx, &TowerMoveInput{
		RoundID:  start.RoundID,
		PlayerID: "climber",
		Lane:     0,
	})
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RoundServiceTestSuite) TestTower_ClearingTheTopPaysSix() {
	s.seed("climber", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartTower(s.ctx, &StartTowerInput{
		ChannelID:  "chan-1",
		PlayerID:   "climber",
		PlayerName: "Climber",
		Bet:        "100",
		Surface:    surface,
	})
	s.Require().NoError(err)

	var last *TowerMoveOutput
	for i := 0; i < 10; i++ {
		move, err := s.svc.TowerMove(s.ctx, &TowerMoveInput{
			RoundID:  start.RoundID,
			PlayerID: "climber",
			Lane:     0,
		})
		s.Require().NoError(err)
		s.True(move.Safe)
		last = move
	}

	s.Require().NotNil(last)
	s.True(last.Settled)
	s.Equal(10, last.Level)
	s.Equal(float64(600), last.Payout)
	s.Equal(float64(1500), s.walletBalance("climber"))
}

func (s *RoundServiceTestSuite) TestTower_IdleRefund() {
	s.seed("climber", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartTower(s.ctx, &StartTowerInput{
		ChannelID:  "chan-1",
		PlayerID:   "climber",
		PlayerName: "Climber",
		Bet:        "400",
		Surface:    surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(600), s.walletBalance("climber"))

	s.waitClosed(start.RoundID, models.KindTower)
	s.Equal(float64(1000), s.walletBalance("climber"))
}

// A caller that resolves the round through ActiveRound the instant the
// channel key appears must see fully initialized state. Run with the race
// detector: this exercises the window between registering the round and
// publishing its stakes and phase.
func (s *RoundServiceTestSuite) TestTower_MoveDuringStartSeesConsistentState() {
	s.seed("climber", 1000)

	for i := 0; i < 10; i++ {
		surface := newFakeSurface()
		channel := fmt.Sprintf("chan-race-%d", i)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for j := 0; j < 500; j++ {
				out, err := s.svc.ActiveRound(s.ctx, &ActiveRoundInput{
					ChannelID: channel,
					Kind:      models.KindTower,
				})
				if err != nil {
					continue
				}
				// Lane 0 is safe with the scripted zeroes, so a landed
				// move leaves the stake unsettled for the idle refund.
				_, _ = s.svc.TowerMove(s.ctx, &TowerMoveInput{
					RoundID:  out.RoundID,
					PlayerID: "climber",
					Lane:     0,
				})
				return
			}
		}()

		start, err := s.svc.StartTower(s.ctx, &StartTowerInput{
			ChannelID:  channel,
			PlayerID:   "climber",
			PlayerName: "Climber",
			Bet:        "10",
			Surface:    surface,
		})
		s.Require().NoError(err)
		<-done

		s.waitClosed(start.RoundID, models.KindTower)
	}

	s.Equal(float64(1000), s.walletBalance("climber"))
}

func (s *RoundServiceTestSuite) TestHighLow_HigherWinsDouble() {
	// First draw 40, second draw 70
	s.rand.ints = []int{39, 69}
	s.seed("guesser", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartHighLow(s.ctx, &StartHighLowInput{
		ChannelID:  "chan-1",
		PlayerID:   "guesser",
		PlayerName: "Guesser",
		Bet:        "100",
		Surface:    surface,
	})
	s.Require().NoError(err)
	s.Equal(40, start.First)
	s.Equal(float64(900), s.walletBalance("guesser"))

	out, err := s.svc.Guess(s.ctx, &GuessInput{
		RoundID:  start.RoundID,
		PlayerID: "guesser",
		Guess:    models.GuessHigher,
	})
	s.Require().NoError(err)
	s.Equal(40, out.First)
	s.Equal(70, out.Second)
	s.True(out.Won)
	s.Equal(float64(200), out.Payout)
	s.Equal(float64(1100), s.walletBalance("guesser"))

	s.waitClosed(start.RoundID, models.KindHighLow)
}

func (s *RoundServiceTestSuite) TestHighLow_JackpotPaysTen() {
	s.rand.ints = []int{41, 41}
	s.seed("guesser", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartHighLow(s.ctx, &StartHighLowInput{
		ChannelID:  "chan-1",
		PlayerID:   "guesser",
		PlayerName: "Guesser",
		Bet:        "100",
		Surface:    surface,
	})
	s.Require().NoError(err)
	s.Equal(42, start.First)

	out, err := s.svc.Guess(s.ctx, &GuessInput{
		RoundID:  start.RoundID,
		PlayerID: "guesser",
		Guess:    models.GuessJackpot,
	})
	s.Require().NoError(err)
	s.True(out.Won)
	s.Equal(float64(1000), out.Payout)
	s.Equal(float64(1900), s.walletBalance("guesser"))
}

func (s *RoundServiceTestSuite) TestHighLow_WrongCallLoses() {
	s.rand.ints = []int{39, 69}
	s.seed("guesser", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartHighLow(s.ctx, &StartHighLowInput{
		ChannelID:  "chan-1",
		PlayerID:   "guesser",
		PlayerName: "Guesser",
		Bet:        "100",
		Surface:    surface,
	})
	s.Require().NoError(err)

	_, err = s.svc.Guess(s.ctx, &GuessInput{
		RoundID:  start.RoundID,
		PlayerID: "stranger",
		Guess:    models.GuessLower,
	})
	s.ErrorIs(err, ErrNotParticipant)

	out, err := s.svc.Guess(s.ctx, &GuessInput{
		RoundID:  start.RoundID,
		PlayerID: "guesser",
		Guess:    models.GuessLower,
	})
	s.Require().NoError(err)
	s.False(out.Won)
	s.Equal(float64(0), out.Payout)
	s.Equal(float64(900), s.walletBalance("guesser"))
}

func (s *RoundServiceTestSuite) TestHighLow_IdleRefund() {
	s.seed("guesser", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartHighLow(s.ctx, &StartHighLowInput{
		ChannelID:  "chan-1",
		PlayerID:   "guesser",
		PlayerName: "Guesser",
		Bet:        "250",
		Surface:    surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(750), s.walletBalance("guesser"))

	s.waitClosed(start.RoundID, models.KindHighLow)
	s.Equal(float64(1000), s.walletBalance("guesser"))
}

func (s *RoundServiceTestSuite) TestHighLow_SurfaceLossRefunds() {
	s.buildService(s.slowTiming())
	s.seed("guesser", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartHighLow(s.ctx, &StartHighLowInput{
		ChannelID:  "chan-1",
		PlayerID:   "guesser",
		PlayerName: "Guesser",
		Bet:        "100",
		Surface:    surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(900), s.walletBalance("guesser"))

	surface.alive.Store(false)
	s.waitClosed(start.RoundID, models.KindHighLow)
	s.Equal(float64(1000), s.walletBalance("guesser"))

	_, err = s.svc.Guess(s.ctx, &GuessInput{
		RoundID:  start.RoundID,
		PlayerID: "guesser",
		Guess:    models.GuessHigher,
	})
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RoundServiceTestSuite) TestBattle_TieReturnsStakes() {
	// With no script both players pull the same common item
	s.seed("host", 2000)
	s.seed("rival", 2000)
	surface := newFakeSurface()

	start, err := s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Cases:     map[string]int{"starter_spark": 1},
		Surface:   surface,
	})
	s.Require().NoError(err)
	s.Equal(float64(500), start.Pot)

	join, err := s.svc.JoinBattle(s.ctx, &JoinBattleInput{
		RoundID:    start.RoundID,
		PlayerID:   "rival",
		PlayerName: "Rival",
	})
	s.Require().NoError(err)
	s.Equal(2, join.Team)

	_, err = s.svc.BeginBattle(s.ctx, &BeginBattleInput{
		RoundID:  start.RoundID,
		PlayerID: "host",
	})
	s.Require().NoError(err)

	s.waitClosed(start.RoundID, models.KindBattle)

	s.Equal(float64(2000), s.walletBalance("host"))
	s.Equal(float64(2000), s.walletBalance("rival"))

	final := surface.last()
	s.Require().NotNil(final)
	s.Equal(0, final.WinningTeam)
}

func (s *RoundServiceTestSuite) TestBattle_HigherPullTakesThePot() {
	// Host pulls a common, the rival pulls a rare
	s.rand.ints = []int{0, 0, 65, 0}
	s.seed("host", 2000)
	s.seed("rival", 2000)
	surface := newFakeSurface()

	start, err := s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Cases:     map[string]int{"starter_spark": 1},
		Surface:   surface,
	})
	s.Require().NoError(err)

	_, err = s.svc.JoinBattle(s.ctx, &JoinBattleInput{
		RoundID:    start.RoundID,
		PlayerID:   "rival",
		PlayerName: "Rival",
	})
	s.Require().NoError(err)

	_, err = s.svc.BeginBattle(s.ctx, &BeginBattleInput{
		RoundID:  start.RoundID,
		PlayerID: "host",
	})
	s.Require().NoError(err)

	s.waitClosed(start.RoundID, models.KindBattle)

	s.Equal(float64(1500), s.walletBalance("host"))
	s.Equal(float64(2500), s.walletBalance("rival"))

	final := surface.last()
	s.Require().NotNil(final)
	s.Equal(2, final.WinningTeam)
}

func (s *RoundServiceTestSuite) TestBattle_BotTeamsNeverTouchTheLedger() {
	s.seed("host", 2000)
	surface := newFakeSurface()

	start, err := s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Cases:     map[string]int{"starter_spark": 1},
		BotBattle: true,
		TeamSize:  2,
		Surface:   surface,
	})
	s.Require().NoError(err)

	_, err = s.svc.JoinBattle(s.ctx, &JoinBattleInput{
		RoundID:    start.RoundID,
		PlayerID:   "rival",
		PlayerName: "Rival",
	})
	s.ErrorIs(err, ErrHumansJoined)

	_, err = s.svc.BeginBattle(s.ctx, &BeginBattleInput{
		RoundID:  start.RoundID,
		PlayerID: "host",
	})
	s.Require().NoError(err)

	s.waitClosed(start.RoundID, models.KindBattle)

	// Every pull is the same common item, so the teams tie and the human's
	// team share comes back
	s.Equal(float64(2000), s.walletBalance("host"))
}

func (s *RoundServiceTestSuite) TestBattle_LobbyContract() {
	s.seed("host", 2000)
	s.seed("poor", 100)
	surface := newFakeSurface()

	_, err := s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Cases:     map[string]int{},
		Surface:   surface,
	})
	s.ErrorIs(err, ErrNoCasesSelected)

	_, err = s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Cases:     map[string]int{"no_such_case": 1},
		Surface:   surface,
	})
	s.ErrorIs(err, ErrUnknownCase)

	_, err = s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Cases:     map[string]int{"starter_spark": 6},
		Surface:   surface,
	})
	s.ErrorIs(err, ErrTooManyCases)

	_, err = s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "poor",
		HostName:  "Poor",
		Cases:     map[string]int{"starter_spark": 1},
		Surface:   surface,
	})
	s.ErrorIs(err, ErrInsufficientFunds)

	start, err := s.svc.StartBattle(s.ctx, &StartBattleInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Cases:     map[string]int{"starter_spark": 1},
		Surface:   surface,
	})
	s.Require().NoError(err)

	_, err = s.svc.JoinBattle(s.ctx, &JoinBattleInput{
		RoundID:    start.RoundID,
		PlayerID:   "poor",
		PlayerName: "Poor",
	})
	s.ErrorIs(err, ErrInsufficientFunds)

	_, err = s.svc.BeginBattle(s.ctx, &BeginBattleInput{
		RoundID:  start.RoundID,
		PlayerID: "host",
	})
	s.ErrorIs(err, ErrNotEnoughPlayers)

	_, err = s.svc.CancelBattle(s.ctx, &CancelBattleInput{
		RoundID:  start.RoundID,
		PlayerID: "poor",
	})
	s.ErrorIs(err, ErrNotHost)

	_, err = s.svc.CancelBattle(s.ctx, &CancelBattleInput{
		RoundID:  start.RoundID,
		PlayerID: "host",
	})
	s.Require().NoError(err)
	s.waitClosed(start.RoundID, models.KindBattle)

	// Nothing was debited at any point
	s.Equal(float64(2000), s.walletBalance("host"))
	s.Equal(float64(100), s.walletBalance("poor"))
}

func (s *RoundServiceTestSuite) TestOneRoundPerChannelAndKind() {
	s.buildService(s.slowTiming())
	s.seed("host", 1000)
	surface := newFakeSurface()

	start, err := s.svc.StartCrash(s.ctx, &StartCrashInput{
		ChannelID: "chan-1",
		HostID:    "host",
		HostName:  "Host",
		Bet:       "100",
		Surface:   surface,
	})
	s.Require().NoError(err)

	active, err := s.svc.ActiveRound(s.ctx, &ActiveRoundInput{
		ChannelID: "chan-1",
		Kind:      models.KindCrash,
	})
	s.Require().NoError(err)
	s.Equal(start.RoundID, active.RoundID)

	_, err = s.svc.ActiveRound(s.ctx, &ActiveRoundInput{
		ChannelID: "chan-9",
		Kind:      models.KindCrash,
	})
	s.ErrorIs(err, ErrRoundNotFound)

	// A different kind in the same channel is fine
	tower, err := s.svc.StartTower(s.ctx, &StartTowerInput{
		ChannelID:  "chan-1",
		PlayerID:   "host",
		PlayerName: "Host",
		Bet:        "100",
		Surface:    newFakeSurface(),
	})
	s.Require().NoError(err)

	// So is the same kind in a different channel
	otherSurface := newFakeSurface()
	other, err := s.svc.StartCrash(s.ctx, &StartCrashInput{
		ChannelID: "chan-2",
		HostID:    "host",
		HostName:  "Host",
		Bet:       "100",
		Surface:   otherSurface,
	})
	s.Require().NoError(err)
	s.NotEqual(start.RoundID, other.RoundID)

	_, err = s.svc.TowerCashOut(s.ctx, &TowerCashOutInput{
		RoundID:  tower.RoundID,
		PlayerID: "host",
	})
	s.Require().NoError(err)

	surface.alive.Store(false)
	otherSurface.alive.Store(false)
	s.waitClosed(start.RoundID, models.KindCrash)
	s.waitClosed(other.RoundID, models.KindCrash)
}
