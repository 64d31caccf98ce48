package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/internal/service/mocks"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
	uowmocks "github.com/jhanaviii/digital-wallet/pkg/uow/mocks"
)

type FraudServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockTransactionRepo *mocks.MockTransactionRepository
	mockFlagRepo        *mocks.MockFraudFlagRepository
	fraudService        *FraudService
}

func TestFraudServiceSuite(t *testing.T) {
	suite.Run(t, new(FraudServiceTestSuite))
}

func (s *FraudServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockFlagRepo = mocks.NewMockFraudFlagRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.FraudFlagRepoName)).
		Return(s.mockFlagRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.FraudFlagRepoName)).
		Return(s.mockFlagRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	fraudService, servErr := NewFraudService(s.mockUOW)
	s.Require().NoError(servErr)
	s.fraudService = fraudService
}

func (s *FraudServiceTestSuite) TestResolveFlag() {
	flagID := uuid.New()
	adminID := uuid.New()
	resolvedAt := time.Now()

	resolved := &domain.FraudFlag{
		ID:             flagID,
		IsResolved:     true,
		ResolvedBy:     &adminID,
		ResolvedAt:     &resolvedAt,
		ResolutionNote: "checked",
	}

	s.mockFlagRepo.EXPECT().
		Resolve(gomock.Any(), repoargs.ResolveFraudFlag{
			FlagID:         flagID,
			ResolvedBy:     adminID,
			ResolutionNote: "checked",
		}).
		Return(resolved, nil)

	flag, err := s.fraudService.ResolveFlag(s.T().Context(), ResolveFlagArgs{
		FlagID:         flagID,
		AdminID:        adminID,
		ResolutionNote: "checked",
	})
	s.Require().NoError(err)
	s.True(flag.IsResolved)
	s.Equal(&adminID, flag.ResolvedBy)
}

func (s *FraudServiceTestSuite) TestResolveFlagIdempotent() {
	flagID := uuid.New()
	firstAdmin := uuid.New()
	secondAdmin := uuid.New()
	resolvedAt := time.Now().Add(-time.Hour)

	alreadyResolved := &domain.FraudFlag{
		ID:             flagID,
		IsResolved:     true,
		ResolvedBy:     &firstAdmin,
		ResolvedAt:     &resolvedAt,
		ResolutionNote: "first pass",
	}

	// Условный UPDATE не находит строку, сервис перечитывает флаг.
	s.mockFlagRepo.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)
	s.mockFlagRepo.EXPECT().
		FindByID(gomock.Any(), flagID).
		Return(alreadyResolved, nil)

	flag, err := s.fraudService.ResolveFlag(s.T().Context(), ResolveFlagArgs{
		FlagID:         flagID,
		AdminID:        secondAdmin,
		ResolutionNote: "second pass",
	})
	s.Require().NoError(err)

	// Данные первого разрешения не перезаписаны.
	s.Equal(&firstAdmin, flag.ResolvedBy)
	s.Equal("first pass", flag.ResolutionNote)
}

func (s *FraudServiceTestSuite) TestResolveUnknownFlag() {
	flagID := uuid.New()

	s.mockFlagRepo.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)
	s.mockFlagRepo.EXPECT().
		FindByID(gomock.Any(), flagID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.fraudService.ResolveFlag(s.T().Context(), ResolveFlagArgs{
		FlagID:  flagID,
		AdminID: uuid.New(),
	})
	s.Require().ErrorIs(err, domain.ErrFlagNotFound)
}

func (s *FraudServiceTestSuite) TestFlagTransaction() {
	transactionID := uuid.New()

	gomock.InOrder(
		s.mockTransactionRepo.EXPECT().
			MarkFlagged(gomock.Any(), transactionID).
			Return(nil),
		s.mockFlagRepo.EXPECT().
			Create(gomock.Any(), repoargs.CreateFraudFlag{
				TransactionID: transactionID,
				Reason:        "some reason",
				Severity:      domain.SeverityHigh,
			}).
			Return(&domain.FraudFlag{ID: uuid.New(), TransactionID: transactionID}, nil),
	)

	flag, err := s.fraudService.FlagTransaction(
		s.T().Context(), transactionID, "some reason", domain.SeverityHigh)
	s.Require().NoError(err)
	s.Equal(transactionID, flag.TransactionID)
}

// Уже flagged транзакция не получает второго флага: MarkFlagged не находит строку
// и до создания флага дело не доходит.
func (s *FraudServiceTestSuite) TestFlagTransactionAlreadyFlagged() {
	transactionID := uuid.New()

	s.mockTransactionRepo.EXPECT().
		MarkFlagged(gomock.Any(), transactionID).
		Return(domain.ErrRecordNotFound)
	s.mockFlagRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Times(0)

	_, err := s.fraudService.FlagTransaction(
		s.T().Context(), transactionID, "some reason", domain.SeverityHigh)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *FraudServiceTestSuite) TestFlagTransactionRollsBackOnFlagError() {
	transactionID := uuid.New()
	boom := errors.New("boom")

	s.mockTransactionRepo.EXPECT().
		MarkFlagged(gomock.Any(), transactionID).
		Return(nil)
	s.mockFlagRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, boom)

	_, err := s.fraudService.FlagTransaction(
		s.T().Context(), transactionID, "some reason", domain.SeverityHigh)
	s.Require().ErrorIs(err, boom)
}

func (s *FraudServiceTestSuite) TestFlaggedTransactions() {
	transaction := domain.Transaction{ID: uuid.New(), Status: domain.TransactionStatusFlagged}
	flag := domain.FraudFlag{ID: uuid.New(), TransactionID: transaction.ID}

	s.mockTransactionRepo.EXPECT().
		GetFlagged(gomock.Any(), uint(50), uint(0)).
		Return([]domain.Transaction{transaction}, nil)
	s.mockFlagRepo.EXPECT().
		FindByTransactionID(gomock.Any(), transaction.ID).
		Return([]domain.FraudFlag{flag}, nil)

	items, err := s.fraudService.FlaggedTransactions(s.T().Context(), 50, 0)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(transaction.ID, items[0].Transaction.ID)
	s.Require().Len(items[0].Flags, 1)
}
