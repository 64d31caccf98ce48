package fraudscan

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhanaviii/digital-wallet/internal/domain"
)

type Servicer interface {
	LargeWithdrawalCandidates(ctx context.Context) ([]domain.Transaction, error)
	DepositWithdrawalCandidates(ctx context.Context) ([]domain.Transaction, error)
	FlagTransaction(
		ctx context.Context,
		transactionID uuid.UUID,
		reason string,
		severity domain.SeverityType,
	) (*domain.FraudFlag, error)
}
