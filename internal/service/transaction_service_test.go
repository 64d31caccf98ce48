package service

import (
	"context"
	"testing"

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

type TransactionServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockWalletRepo      *mocks.MockWalletRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockFlagRepo        *mocks.MockFraudFlagRepository
	transactionService  *TransactionService
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockFlagRepo = mocks.NewMockFraudFlagRepository(mockCtrl)

	// Мок транзакции uow: сервис достает все репозитории из tx.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.FraudFlagRepoName)).
		Return(s.mockFlagRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	s.transactionService = NewTransactionService(s.mockUOW)
}

func (s *TransactionServiceTestSuite) wallet(userID uuid.UUID, balance int64) *domain.Wallet {
	return &domain.Wallet{
		ID:       uuid.New(),
		UserID:   userID,
		Balance:  decimal.NewFromInt(balance),
		Currency: domain.DefaultCurrency,
		IsActive: true,
	}
}

func (s *TransactionServiceTestSuite) TestDepositCompleted() {
	senderID := uuid.New()
	senderWallet := s.wallet(senderID, 50)
	amount := decimal.NewFromInt(100)

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(senderWallet, nil)
	s.mockTransactionRepo.EXPECT().
		CountRecentByType(gomock.Any(), senderID, domain.TransactionTypeDeposit, gomock.Any()).
		Return(int64(0), nil)
	s.mockWalletRepo.EXPECT().
		Credit(gomock.Any(), senderWallet.ID, amount).
		Return(senderWallet, nil)

	created := &domain.Transaction{
		ID:       uuid.New(),
		SenderID: senderID,
		Amount:   amount,
		Currency: domain.DefaultCurrency,
		Type:     domain.TransactionTypeDeposit,
		Status:   domain.TransactionStatusCompleted,
	}
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateTransaction{
			SenderID: senderID,
			Amount:   amount,
			Currency: domain.DefaultCurrency,
			Type:     domain.TransactionTypeDeposit,
			Status:   domain.TransactionStatusCompleted,
			Note:     "Deposit",
		}).
		Return(created, nil)

	transaction, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:     domain.TransactionTypeDeposit,
		SenderID: senderID,
		Amount:   amount,
	})
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusCompleted, transaction.Status)
}

func (s *TransactionServiceTestSuite) TestInvalidAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
			Type:     domain.TransactionTypeDeposit,
			SenderID: uuid.New(),
			Amount:   amount,
		})
		s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *TransactionServiceTestSuite) TestInsufficientTransferLeavesBalancesUntouched() {
	senderID := uuid.New()
	recipient := &domain.User{ID: uuid.New(), Username: "bob"}
	senderWallet := s.wallet(senderID, 50)
	recipientWallet := s.wallet(recipient.ID, 0)

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(senderWallet, nil)
	s.mockUserRepo.EXPECT().
		FindUserByUsername(gomock.Any(), recipient.Username).
		Return(recipient, nil)
	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), recipient.ID, domain.DefaultCurrency).
		Return(recipientWallet, nil)

	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockWalletRepo.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:              domain.TransactionTypeTransfer,
		SenderID:          senderID,
		RecipientUsername: recipient.Username,
		Amount:            decimal.NewFromInt(100),
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *TransactionServiceTestSuite) TestLargeDepositFlaggedWithoutMutation() {
	senderID := uuid.New()
	senderWallet := s.wallet(senderID, 10000)
	amount := decimal.NewFromInt(2500)

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(senderWallet, nil)
	s.mockTransactionRepo.EXPECT().
		CountRecentByType(gomock.Any(), senderID, domain.TransactionTypeDeposit, gomock.Any()).
		Return(int64(0), nil)

	created := &domain.Transaction{
		ID:       uuid.New(),
		SenderID: senderID,
		Amount:   amount,
		Currency: domain.DefaultCurrency,
		Type:     domain.TransactionTypeDeposit,
		Status:   domain.TransactionStatusFlagged,
	}
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateTransaction{
			SenderID: senderID,
			Amount:   amount,
			Currency: domain.DefaultCurrency,
			Type:     domain.TransactionTypeDeposit,
			Status:   domain.TransactionStatusFlagged,
			Note:     "Deposit",
		}).
		Return(created, nil)
	s.mockFlagRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateFraudFlag{
			TransactionID: created.ID,
			Reason:        "unusually large amount",
			Severity:      domain.SeverityMedium,
		}).
		Return(&domain.FraudFlag{ID: uuid.New(), TransactionID: created.ID}, nil)

	// Балансы не трогаем.
	s.mockWalletRepo.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	transaction, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:     domain.TransactionTypeDeposit,
		SenderID: senderID,
		Amount:   amount,
	})
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusFlagged, transaction.Status)
}

func (s *TransactionServiceTestSuite) TestWithdrawalOverHalfBalanceFlagged() {
	senderID := uuid.New()
	senderWallet := s.wallet(senderID, 1000)
	amount := decimal.NewFromInt(600)

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(senderWallet, nil)
	s.mockTransactionRepo.EXPECT().
		CountRecentByType(gomock.Any(), senderID, domain.TransactionTypeWithdrawal, gomock.Any()).
		Return(int64(0), nil)

	created := &domain.Transaction{
		ID:     uuid.New(),
		Status: domain.TransactionStatusFlagged,
	}
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(created, nil)
	s.mockFlagRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateFraudFlag{
			TransactionID: created.ID,
			Reason:        "withdrawal exceeds half of wallet balance",
			Severity:      domain.SeverityMedium,
		}).
		Return(&domain.FraudFlag{}, nil)

	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	transaction, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:     domain.TransactionTypeWithdrawal,
		SenderID: senderID,
		Amount:   amount,
	})
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusFlagged, transaction.Status)
}

func (s *TransactionServiceTestSuite) TestTransferDebitsAndCredits() {
	senderID := uuid.New()
	recipient := &domain.User{ID: uuid.New(), Username: "bob"}
	senderWallet := s.wallet(senderID, 1000)
	recipientWallet := s.wallet(recipient.ID, 10)
	amount := decimal.NewFromInt(300)

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(senderWallet, nil)
	s.mockUserRepo.EXPECT().
		FindUserByUsername(gomock.Any(), recipient.Username).
		Return(recipient, nil)
	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), recipient.ID, domain.DefaultCurrency).
		Return(recipientWallet, nil)
	s.mockTransactionRepo.EXPECT().
		CountRecentByType(gomock.Any(), senderID, domain.TransactionTypeTransfer, gomock.Any()).
		Return(int64(0), nil)

	gomock.InOrder(
		s.mockWalletRepo.EXPECT().
			Debit(gomock.Any(), senderWallet.ID, amount).
			Return(senderWallet, nil),
		s.mockWalletRepo.EXPECT().
			Credit(gomock.Any(), recipientWallet.ID, amount).
			Return(recipientWallet, nil),
	)

	created := &domain.Transaction{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: &recipient.ID,
		Status:      domain.TransactionStatusCompleted,
	}
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateTransaction{
			SenderID:    senderID,
			RecipientID: &recipient.ID,
			Amount:      amount,
			Currency:    domain.DefaultCurrency,
			Type:        domain.TransactionTypeTransfer,
			Status:      domain.TransactionStatusCompleted,
			Note:        "Transfer to bob",
		}).
		Return(created, nil)

	transaction, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:              domain.TransactionTypeTransfer,
		SenderID:          senderID,
		RecipientUsername: recipient.Username,
		Amount:            amount,
	})
	s.Require().NoError(err)
	s.Equal(created, transaction)
}

func (s *TransactionServiceTestSuite) TestTransferCreatesRecipientWallet() {
	senderID := uuid.New()
	recipient := &domain.User{ID: uuid.New(), Username: "newbie"}
	senderWallet := s.wallet(senderID, 1000)
	recipientWallet := s.wallet(recipient.ID, 0)
	amount := decimal.NewFromInt(100)

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(senderWallet, nil)
	s.mockUserRepo.EXPECT().
		FindUserByUsername(gomock.Any(), recipient.Username).
		Return(recipient, nil)
	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), recipient.ID, domain.DefaultCurrency).
		Return(nil, domain.ErrRecordNotFound)
	s.mockWalletRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateWallet{UserID: recipient.ID, Currency: domain.DefaultCurrency}).
		Return(recipientWallet, nil)
	s.mockTransactionRepo.EXPECT().
		CountRecentByType(gomock.Any(), senderID, domain.TransactionTypeTransfer, gomock.Any()).
		Return(int64(0), nil)
	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), senderWallet.ID, amount).Return(senderWallet, nil)
	s.mockWalletRepo.EXPECT().Credit(gomock.Any(), recipientWallet.ID, amount).Return(recipientWallet, nil)
	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{Status: domain.TransactionStatusCompleted}, nil)

	_, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:              domain.TransactionTypeTransfer,
		SenderID:          senderID,
		RecipientUsername: recipient.Username,
		Amount:            amount,
	})
	s.Require().NoError(err)
}

func (s *TransactionServiceTestSuite) TestSenderWalletNotFound() {
	senderID := uuid.New()
	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:     domain.TransactionTypeWithdrawal,
		SenderID: senderID,
		Amount:   decimal.NewFromInt(10),
	})
	s.Require().ErrorIs(err, domain.ErrSenderWalletNotFound)
}

func (s *TransactionServiceTestSuite) TestRecipientNotFound() {
	senderID := uuid.New()
	senderWallet := s.wallet(senderID, 1000)

	s.mockWalletRepo.EXPECT().
		FindByUserAndCurrency(gomock.Any(), senderID, domain.DefaultCurrency).
		Return(senderWallet, nil)
	s.mockUserRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "ghost").
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.transactionService.Process(s.T().Context(), ProcessTransactionArgs{
		Type:              domain.TransactionTypeTransfer,
		SenderID:          senderID,
		RecipientUsername: "ghost",
		Amount:            decimal.NewFromInt(10),
	})
	s.Require().ErrorIs(err, domain.ErrRecipientNotFound)
}
