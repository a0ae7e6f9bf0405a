package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fortunabot/fortuna/internal/models"
	rngMocks "github.com/fortunabot/fortuna/internal/rng/mocks"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRand *rngMocks.MockSource
	svc      Service
	ctx      context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRand = rngMocks.NewMockSource(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{Rand: s.mockRand})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MessagingServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRandSource)
}

func (s *MessagingServiceTestSuite) TestRewardMessageFormatsAmount() {
	s.mockRand.EXPECT().Intn(len(begLines)).Return(1)

	out, err := s.svc.GetRewardMessage(s.ctx, &GetRewardMessageInput{
		Kind:   models.RewardBeg,
		Amount: 42.5,
	})
	s.Require().NoError(err)
	s.Equal("Someone heard your story and slipped you 42.50 coins.", out.Message)
}

func (s *MessagingServiceTestSuite) TestRewardMessageTrimsWholeAmounts() {
	s.mockRand.EXPECT().Intn(len(searchLines)).Return(0)

	out, err := s.svc.GetRewardMessage(s.ctx, &GetRewardMessageInput{
		Kind:   models.RewardSearch,
		Amount: 100,
	})
	s.Require().NoError(err)
	s.Equal("You searched under the couch and found 100 coins.", out.Message)
}

func (s *MessagingServiceTestSuite) TestCrimeBustUsesAbsoluteAmount() {
	s.mockRand.EXPECT().Intn(len(crimeBustLines)).Return(0)

	out, err := s.svc.GetRewardMessage(s.ctx, &GetRewardMessageInput{
		Kind:   models.RewardCrime,
		Amount: -75,
	})
	s.Require().NoError(err)
	s.Equal("You got caught and paid 75 coins in legal fees.", out.Message)
}

func (s *MessagingServiceTestSuite) TestCrimeWinPicksWinLine() {
	s.mockRand.EXPECT().Intn(len(crimeWinLines)).Return(3)

	out, err := s.svc.GetRewardMessage(s.ctx, &GetRewardMessageInput{
		Kind:   models.RewardCrime,
		Amount: 200,
	})
	s.Require().NoError(err)
	s.Equal("Clean getaway. 200 coins in the bag.", out.Message)
}

func (s *MessagingServiceTestSuite) TestUnknownRewardKind() {
	_, err := s.svc.GetRewardMessage(s.ctx, &GetRewardMessageInput{
		Kind: models.RewardKind("lottery"),
	})
	s.ErrorIs(err, ErrUnknownReward)
}

func (s *MessagingServiceTestSuite) TestOutcomeMessageWin() {
	s.mockRand.EXPECT().Intn(len(winLines)).Return(1)

	out, err := s.svc.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{
		Game:   "slots",
		Won:    true,
		Payout: 1000,
	})
	s.Require().NoError(err)
	s.Equal("Winner winner. 1000 coins is yours.", out.Message)
}

func (s *MessagingServiceTestSuite) TestOutcomeMessageLoss() {
	s.mockRand.EXPECT().Intn(len(lossLines)).Return(0)

	out, err := s.svc.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{
		Game: "coinflip",
	})
	s.Require().NoError(err)
	s.Equal("The house always wins. Eventually.", out.Message)
}

func (s *MessagingServiceTestSuite) TestOutcomeMessageRequiresGame() {
	_, err := s.svc.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Won: true})
	s.ErrorIs(err, ErrUnknownOutcome)
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
