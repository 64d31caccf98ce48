package repoargs

import (
	"github.com/google/uuid"

	"github.com/jhanaviii/digital-wallet/internal/domain"
)

type CreateFraudFlag struct {
	TransactionID uuid.UUID
	Reason        string
	Severity      domain.SeverityType
}

type ResolveFraudFlag struct {
	FlagID         uuid.UUID
	ResolvedBy     uuid.UUID
	ResolutionNote string
}
