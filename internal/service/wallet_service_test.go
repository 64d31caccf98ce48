package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/internal/service/mocks"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
	uowmocks "github.com/jhanaviii/digital-wallet/pkg/uow/mocks"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockWalletRepo      *mocks.MockWalletRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	walletService       *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	walletService, servErr := NewWalletService(s.mockUOW)
	s.Require().NoError(servErr)
	s.walletService = walletService
}

func (s *WalletServiceTestSuite) TestGetOrCreateExisting() {
	userID := uuid.New()
	existing := &domain.Wallet{ID: uuid.New(), UserID: userID, Currency: domain.DefaultCurrency}

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), userID, domain.DefaultCurrency).
		Return(existing, nil)

	wallet, err := s.walletService.GetOrCreate(s.T().Context(), userID, domain.DefaultCurrency)
	s.Require().NoError(err)
	s.Equal(existing, wallet)
}

func (s *WalletServiceTestSuite) TestGetOrCreateCreatesMissing() {
	userID := uuid.New()
	created := &domain.Wallet{
		ID:       uuid.New(),
		UserID:   userID,
		Balance:  decimal.Zero,
		Currency: domain.DefaultCurrency,
	}

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), userID, domain.DefaultCurrency).
		Return(nil, domain.ErrRecordNotFound)
	s.mockWalletRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateWallet{UserID: userID, Currency: domain.DefaultCurrency}).
		Return(created, nil)

	wallet, err := s.walletService.GetOrCreate(s.T().Context(), userID, domain.DefaultCurrency)
	s.Require().NoError(err)
	s.Equal(created, wallet)
}

func (s *WalletServiceTestSuite) TestGetOrCreateLosesCreateRace() {
	userID := uuid.New()
	winner := &domain.Wallet{ID: uuid.New(), UserID: userID, Currency: domain.DefaultCurrency}

	gomock.InOrder(
		s.mockWalletRepo.EXPECT().
			FindByUserAndCurrency(gomock.Any(), userID, domain.DefaultCurrency).
			Return(nil, domain.ErrRecordNotFound),
		s.mockWalletRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDuplicateKey),
		s.mockWalletRepo.EXPECT().
			FindByUserAndCurrency(gomock.Any(), userID, domain.DefaultCurrency).
			Return(winner, nil),
	)

	wallet, err := s.walletService.GetOrCreate(s.T().Context(), userID, domain.DefaultCurrency)
	s.Require().NoError(err)
	s.Equal(winner, wallet)
}

func (s *WalletServiceTestSuite) TestTransactionsPassesFilter() {
	userID := uuid.New()
	from := time.Now().Add(-24 * time.Hour)
	filter := repoargs.HistoryFilter{
		Type:  domain.TransactionTypeDeposit,
		From:  from,
		Limit: 10,
	}
	history := []domain.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}

	s.mockTransactionRepo.EXPECT().
		GetByUser(gomock.Any(), userID, filter).
		Return(history, nil)

	transactions, err := s.walletService.Transactions(s.T().Context(), userID, filter)
	s.Require().NoError(err)
	s.Equal(history, transactions)
}
