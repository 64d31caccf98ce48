package service

import (
	"context"
	"fmt"

	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

const (
	defaultTopLimit   = 10
	defaultVolumeDays = 30
)

// ReportService отдает агрегаты для админских отчетов. Все методы только читают.
type ReportService struct {
	walletRepo      WalletRepository
	transactionRepo TransactionRepository
}

func NewReportService(u uow.UOW) (*ReportService, error) {
	walletRepo, walletRepoErr := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr
	}
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &ReportService{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
	}, nil
}

// TotalBalances возвращает суммарный баланс и число кошельков по каждой валюте.
func (s *ReportService) TotalBalances(ctx context.Context) ([]repoargs.CurrencyBalance, error) {
	balances, err := s.walletRepo.TotalBalancesByCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("balances report: %w", err)
	}
	return balances, nil
}

type TopUsersReport struct {
	ByBalance          []repoargs.UserBalance
	ByTransactionCount []repoargs.UserTransactionCount
}

// TopUsers собирает два топа: по балансу кошелька и по числу отправленных транзакций.
func (s *ReportService) TopUsers(ctx context.Context, limit uint) (*TopUsersReport, error) {
	if limit == 0 {
		limit = defaultTopLimit
	}
	byBalance, balanceErr := s.walletRepo.TopByBalance(ctx, limit)
	if balanceErr != nil {
		return nil, fmt.Errorf("top users report: %w", balanceErr)
	}
	byCount, countErr := s.transactionRepo.TopSendersByCount(ctx, limit)
	if countErr != nil {
		return nil, fmt.Errorf("top users report: %w", countErr)
	}
	return &TopUsersReport{ByBalance: byBalance, ByTransactionCount: byCount}, nil
}

// Volume возвращает количество и сумму транзакций по дням за последние days дней.
func (s *ReportService) Volume(ctx context.Context, days uint) ([]repoargs.DayVolume, error) {
	if days == 0 {
		days = defaultVolumeDays
	}
	volume, err := s.transactionRepo.VolumeByDay(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("volume report: %w", err)
	}
	return volume, nil
}
