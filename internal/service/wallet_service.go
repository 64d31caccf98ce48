package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type WalletService struct {
	uow             uow.UOW
	walletRepo      WalletRepository
	transactionRepo TransactionRepository
}

func NewWalletService(u uow.UOW) (*WalletService, error) {
	walletRepo, walletRepoErr := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr
	}
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &WalletService{
		uow:             u,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
	}, nil
}

// GetOrCreate возвращает кошелек юзера в валюте currency, лениво создавая его с нулевым
// балансом при первом обращении. Гонку двух одновременных созданий разрешает уникальный
// индекс (user_id, currency): проигравший перечитывает созданный кошелек.
func (s *WalletService) GetOrCreate(
	ctx context.Context,
	userID uuid.UUID,
	currency string,
) (*domain.Wallet, error) {
	wallet, findErr := s.walletRepo.FindByUserAndCurrency(ctx, userID, currency)
	if findErr == nil {
		return wallet, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("get or create wallet: %w", findErr)
	}

	wallet, createErr := s.walletRepo.Create(ctx, repoargs.CreateWallet{
		UserID:   userID,
		Currency: currency,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			wallet, findErr = s.walletRepo.FindByUserAndCurrency(ctx, userID, currency)
			if findErr != nil {
				return nil, fmt.Errorf("get or create wallet: %w", findErr)
			}
			return wallet, nil
		}
		return nil, fmt.Errorf("get or create wallet: %w", createErr)
	}
	return wallet, nil
}

// Transactions возвращает историю юзера (отправитель либо получатель), новые первыми.
func (s *WalletService) Transactions(
	ctx context.Context,
	userID uuid.UUID,
	filter repoargs.HistoryFilter,
) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetByUser(ctx, userID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}
