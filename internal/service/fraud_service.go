package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/fraud"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type FraudService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
	flagRepo        FraudFlagRepository
}

func NewFraudService(u uow.UOW) (*FraudService, error) {
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	flagRepo, flagRepoErr :=
		uow.GetRepositoryAs[FraudFlagRepository](u, uow.RepositoryName(repoargs.FraudFlagRepoName))
	if flagRepoErr != nil {
		return nil, flagRepoErr
	}
	return &FraudService{
		uow:             u,
		transactionRepo: transactionRepo,
		flagRepo:        flagRepo,
	}, nil
}

// FlaggedTransaction - flagged транзакция вместе со всеми ее флагами.
type FlaggedTransaction struct {
	Transaction domain.Transaction
	Flags       []domain.FraudFlag
}

// FlaggedTransactions возвращает страницу flagged транзакций для админки, новые первыми.
func (s *FraudService) FlaggedTransactions(
	ctx context.Context,
	limit uint,
	offset uint,
) ([]FlaggedTransaction, error) {
	transactions, getErr := s.transactionRepo.GetFlagged(ctx, limit, offset)
	if getErr != nil {
		return nil, fmt.Errorf("listing flagged transactions: %w", getErr)
	}

	items := make([]FlaggedTransaction, 0, len(transactions))
	for _, transaction := range transactions {
		flags, flagsErr := s.flagRepo.FindByTransactionID(ctx, transaction.ID)
		if flagsErr != nil {
			return nil, fmt.Errorf("listing flagged transactions: %w", flagsErr)
		}
		items = append(items, FlaggedTransaction{Transaction: transaction, Flags: flags})
	}
	return items, nil
}

type ResolveFlagArgs struct {
	FlagID         uuid.UUID
	AdminID        uuid.UUID
	ResolutionNote string
}

// ResolveFlag помечает флаг разрешенным. Операция идемпотентна: повторный вызов по уже
// разрешенному флагу возвращает его как есть, не перезаписывая ResolvedBy и ResolvedAt
// первого разрешения. Неизвестный флаг - domain.ErrFlagNotFound.
func (s *FraudService) ResolveFlag(ctx context.Context, args ResolveFlagArgs) (*domain.FraudFlag, error) {
	flag, resolveErr := s.flagRepo.Resolve(ctx, repoargs.ResolveFraudFlag{
		FlagID:         args.FlagID,
		ResolvedBy:     args.AdminID,
		ResolutionNote: args.ResolutionNote,
	})
	if resolveErr == nil {
		return flag, nil
	}
	if !errors.Is(resolveErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("resolving fraud flag: %w", resolveErr)
	}

	// Условный UPDATE не нашел строку: либо флаг уже разрешен, либо его нет вовсе.
	flag, findErr := s.flagRepo.FindByID(ctx, args.FlagID)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("resolving fraud flag: %w", domain.ErrFlagNotFound)
		}
		return nil, fmt.Errorf("resolving fraud flag: %w", findErr)
	}
	return flag, nil
}

// LargeWithdrawalCandidates возвращает снятия, попавшие под правило "серия крупных
// снятий за сутки". Уже flagged транзакции в выборку не попадают.
func (s *FraudService) LargeWithdrawalCandidates(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindLargeWithdrawals(ctx, repoargs.LargeWithdrawalScan{
		Window:    fraud.LargeWithdrawalWindow,
		MinAmount: fraud.LargeWithdrawalMinAmount,
		MinCount:  fraud.LargeWithdrawalMinCount,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning large withdrawals: %w", err)
	}
	return transactions, nil
}

// DepositWithdrawalCandidates возвращает снятия, сделанные вскоре после сопоставимого
// по сумме депозита того же отправителя в той же валюте.
func (s *FraudService) DepositWithdrawalCandidates(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindDepositWithdrawalPattern(ctx, repoargs.DepositWithdrawalScan{
		Lookback:     fraud.DepositWithdrawalLookback,
		MaxGap:       fraud.DepositWithdrawalMaxGap,
		DepositRatio: fraud.DepositWithdrawalRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning deposit-withdrawal pairs: %w", err)
	}
	return transactions, nil
}

// FlagTransaction переводит транзакцию в статус flagged и создает фрод-флаг одной
// транзакцией БД. Если транзакция уже flagged или не существует - domain.ErrRecordNotFound.
func (s *FraudService) FlagTransaction(
	ctx context.Context,
	transactionID uuid.UUID,
	reason string,
	severity domain.SeverityType,
) (*domain.FraudFlag, error) {
	var flag *domain.FraudFlag
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		flagRepo, flagRepoErr := uow.GetAs[FraudFlagRepository](tx, uow.RepositoryName(repoargs.FraudFlagRepoName))
		if flagRepoErr != nil {
			return flagRepoErr //nolint:wrapcheck
		}

		if markErr := transactionRepo.MarkFlagged(c, transactionID); markErr != nil {
			return markErr //nolint:wrapcheck
		}

		var createErr error
		flag, createErr = flagRepo.Create(c, repoargs.CreateFraudFlag{
			TransactionID: transactionID,
			Reason:        reason,
			Severity:      severity,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("flagging transaction %s: %w", transactionID, txErr)
	}
	return flag, nil
}
