package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type WalletServicer interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*domain.Wallet, error)
	Transactions(ctx context.Context, userID uuid.UUID, filter repoargs.HistoryFilter) ([]domain.Transaction, error)
}

type TransactionServicer interface {
	Process(ctx context.Context, args service.ProcessTransactionArgs) (*domain.Transaction, error)
}

type FraudServicer interface {
	FlaggedTransactions(ctx context.Context, limit uint, offset uint) ([]service.FlaggedTransaction, error)
	ResolveFlag(ctx context.Context, args service.ResolveFlagArgs) (*domain.FraudFlag, error)
}

type ReportServicer interface {
	TotalBalances(ctx context.Context) ([]repoargs.CurrencyBalance, error)
	TopUsers(ctx context.Context, limit uint) (*service.TopUsersReport, error)
	Volume(ctx context.Context, days uint) ([]repoargs.DayVolume, error)
}
