package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Email     string
	Password  string
	IsAdmin   bool
}

type Wallet struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Balance     decimal.Decimal
	Currency    string
	IsActive    bool
	CreatedAt   time.Time
	LastUpdated time.Time
}

type Transaction struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID *uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Type        TransactionType
	Status      TransactionStatus
	Note        string
	CreatedAt   time.Time
}

type FraudFlag struct {
	ID             uuid.UUID
	TransactionID  uuid.UUID
	Reason         string
	Severity       SeverityType
	IsResolved     bool
	ResolvedBy     *uuid.UUID
	ResolvedAt     *time.Time
	ResolutionNote string
	CreatedAt      time.Time
}
