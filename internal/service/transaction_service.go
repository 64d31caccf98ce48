package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/fraud"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type TransactionService struct {
	uow uow.UOW
}

func NewTransactionService(u uow.UOW) *TransactionService {
	return &TransactionService{uow: u}
}

type ProcessTransactionArgs struct {
	Type              domain.TransactionType
	SenderID          uuid.UUID
	RecipientUsername string
	Amount            decimal.Decimal
	Currency          string
	Note              string
}

// Process проводит одну транзакцию: валидация суммы, поиск кошельков, проверка достаточности
// средств, встроенные правила фрода, мутация балансов и запись в журнал. Весь набор шагов
// выполняется в одной транзакции БД, поэтому частично примененных переводов не бывает.
//
// Порядок существенный: достаточность средств проверяется ДО оценки правил, а flagged
// транзакция записывается в журнал без какой-либо мутации балансов. Списание делает
// условный UPDATE (balance >= amount), так что два конкурентных перевода не могут
// одновременно пройти проверку и увести баланс в минус.
//
// Ошибки: domain.ErrInvalidAmount, domain.ErrSenderWalletNotFound, domain.ErrRecipientNotFound,
// domain.ErrInsufficientFunds, *domain.WalletInactiveError.
func (s *TransactionService) Process(
	ctx context.Context,
	args ProcessTransactionArgs,
) (*domain.Transaction, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("processing transaction: %w", domain.ErrInvalidAmount)
	}
	currency := args.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var doErr error
		transaction, doErr = s.process(c, tx, args, currency)
		return doErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("processing transaction: %w", txErr)
	}
	return transaction, nil
}

func (s *TransactionService) process(
	ctx context.Context,
	tx uow.TX,
	args ProcessTransactionArgs,
	currency string,
) (*domain.Transaction, error) {
	walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr //nolint:wrapcheck
	}
	transactionRepo, transactionRepoErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr //nolint:wrapcheck
	}

	senderWallet, senderWalletErr := walletRepo.FindByUserAndCurrency(ctx, args.SenderID, currency)
	if senderWalletErr != nil {
		if errors.Is(senderWalletErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrSenderWalletNotFound
		}
		return nil, senderWalletErr //nolint:wrapcheck
	}
	if !senderWallet.IsActive {
		return nil, domain.NewWalletInactiveError(senderWallet.ID)
	}

	var recipientID *uuid.UUID
	var recipientWallet *domain.Wallet
	if args.Type == domain.TransactionTypeTransfer {
		recipient, recipientErr := s.resolveRecipient(ctx, tx, args.RecipientUsername)
		if recipientErr != nil {
			return nil, recipientErr
		}
		recipientID = &recipient.ID

		var recipientWalletErr error
		recipientWallet, recipientWalletErr = s.getOrCreateWallet(ctx, walletRepo, recipient.ID, currency)
		if recipientWalletErr != nil {
			return nil, recipientWalletErr
		}
	}

	// Достаточность средств проверяется до оценки правил: нехватка денег - ошибка вызова,
	// а не повод для фрод-флага.
	if args.Type != domain.TransactionTypeDeposit && senderWallet.Balance.LessThan(args.Amount) {
		return nil, domain.ErrInsufficientFunds
	}

	candidate := domain.Transaction{
		SenderID:    args.SenderID,
		RecipientID: recipientID,
		Amount:      args.Amount,
		Currency:    currency,
		Type:        args.Type,
		Status:      domain.TransactionStatusCompleted,
		Note:        noteOrDefault(args),
		CreatedAt:   time.Now(),
	}

	recentCount, recentCountErr := transactionRepo.CountRecentByType(
		ctx, args.SenderID, args.Type, time.Now().Add(-fraud.RecentWindow))
	if recentCountErr != nil {
		return nil, recentCountErr //nolint:wrapcheck
	}

	verdict := fraud.Evaluate(candidate, *senderWallet, recentCount)
	if verdict.Flagged {
		return s.appendFlagged(ctx, tx, transactionRepo, candidate, verdict)
	}

	if mutateErr := s.mutateBalances(ctx, walletRepo, senderWallet, recipientWallet, args); mutateErr != nil {
		return nil, mutateErr
	}

	// Запись в журнал - последний шаг: обрыв между мутацией и записью оставит балансы
	// согласованными ценой отсутствующей записи в журнале.
	transaction, createErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		SenderID:    candidate.SenderID,
		RecipientID: candidate.RecipientID,
		Amount:      candidate.Amount,
		Currency:    candidate.Currency,
		Type:        candidate.Type,
		Status:      domain.TransactionStatusCompleted,
		Note:        candidate.Note,
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}
	return transaction, nil
}

// appendFlagged записывает flagged транзакцию и фрод-флаг, не трогая балансы.
func (s *TransactionService) appendFlagged(
	ctx context.Context,
	tx uow.TX,
	transactionRepo TransactionRepository,
	candidate domain.Transaction,
	verdict fraud.Verdict,
) (*domain.Transaction, error) {
	flagRepo, flagRepoErr := uow.GetAs[FraudFlagRepository](tx, uow.RepositoryName(repoargs.FraudFlagRepoName))
	if flagRepoErr != nil {
		return nil, flagRepoErr //nolint:wrapcheck
	}

	transaction, createErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		SenderID:    candidate.SenderID,
		RecipientID: candidate.RecipientID,
		Amount:      candidate.Amount,
		Currency:    candidate.Currency,
		Type:        candidate.Type,
		Status:      domain.TransactionStatusFlagged,
		Note:        candidate.Note,
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}

	if _, flagErr := flagRepo.Create(ctx, repoargs.CreateFraudFlag{
		TransactionID: transaction.ID,
		Reason:        verdict.Reason,
		Severity:      verdict.Severity,
	}); flagErr != nil {
		return nil, flagErr //nolint:wrapcheck
	}
	return transaction, nil
}

func (s *TransactionService) mutateBalances(
	ctx context.Context,
	walletRepo WalletRepository,
	senderWallet *domain.Wallet,
	recipientWallet *domain.Wallet,
	args ProcessTransactionArgs,
) error {
	switch args.Type {
	case domain.TransactionTypeDeposit:
		if _, err := walletRepo.Credit(ctx, senderWallet.ID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
	case domain.TransactionTypeWithdrawal:
		if _, err := walletRepo.Debit(ctx, senderWallet.ID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
	case domain.TransactionTypeTransfer:
		if _, err := walletRepo.Debit(ctx, senderWallet.ID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := walletRepo.Credit(ctx, recipientWallet.ID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
	}
	return nil
}

func (s *TransactionService) resolveRecipient(
	ctx context.Context,
	tx uow.TX,
	username string,
) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrRecipientNotFound
	}
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	recipient, findErr := userRepo.FindUserByUsername(ctx, username)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrRecipientNotFound
		}
		return nil, findErr //nolint:wrapcheck
	}
	return recipient, nil
}

// getOrCreateWallet лениво создает кошелек получателя в валюте отправителя.
func (s *TransactionService) getOrCreateWallet(
	ctx context.Context,
	walletRepo WalletRepository,
	userID uuid.UUID,
	currency string,
) (*domain.Wallet, error) {
	wallet, findErr := walletRepo.FindByUserAndCurrency(ctx, userID, currency)
	if findErr == nil {
		return wallet, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, findErr //nolint:wrapcheck
	}
	wallet, createErr := walletRepo.Create(ctx, repoargs.CreateWallet{
		UserID:   userID,
		Currency: currency,
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}
	return wallet, nil
}

func noteOrDefault(args ProcessTransactionArgs) string {
	if args.Note != "" {
		return args.Note
	}
	switch args.Type {
	case domain.TransactionTypeDeposit:
		return "Deposit"
	case domain.TransactionTypeWithdrawal:
		return "Withdrawal"
	case domain.TransactionTypeTransfer:
		return "Transfer to " + args.RecipientUsername
	}
	return ""
}
