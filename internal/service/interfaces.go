package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type WalletRepository interface {
	Create(ctx context.Context, args repoargs.CreateWallet) (*domain.Wallet, error)
	FindByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency string) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
	TotalBalancesByCurrency(ctx context.Context) ([]repoargs.CurrencyBalance, error)
	TopByBalance(ctx context.Context, limit uint) ([]repoargs.UserBalance, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	GetByUser(ctx context.Context, userID uuid.UUID, filter repoargs.HistoryFilter) ([]domain.Transaction, error)
	CountRecentByType(
		ctx context.Context,
		senderID uuid.UUID,
		txType domain.TransactionType,
		since time.Time,
	) (int64, error)
	MarkFlagged(ctx context.Context, transactionID uuid.UUID) error
	GetFlagged(ctx context.Context, limit uint, offset uint) ([]domain.Transaction, error)
	FindLargeWithdrawals(ctx context.Context, scan repoargs.LargeWithdrawalScan) ([]domain.Transaction, error)
	FindDepositWithdrawalPattern(
		ctx context.Context,
		scan repoargs.DepositWithdrawalScan,
	) ([]domain.Transaction, error)
	VolumeByDay(ctx context.Context, days uint) ([]repoargs.DayVolume, error)
	TopSendersByCount(ctx context.Context, limit uint) ([]repoargs.UserTransactionCount, error)
}

type FraudFlagRepository interface {
	Create(ctx context.Context, args repoargs.CreateFraudFlag) (*domain.FraudFlag, error)
	FindByID(ctx context.Context, flagID uuid.UUID) (*domain.FraudFlag, error)
	Resolve(ctx context.Context, args repoargs.ResolveFraudFlag) (*domain.FraudFlag, error)
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]domain.FraudFlag, error)
}
