package repoargs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateWallet struct {
	UserID   uuid.UUID
	Currency string
}

type CurrencyBalance struct {
	Currency string
	Total    decimal.Decimal
	Wallets  int64
}

type UserBalance struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Currency string
	Balance  decimal.Decimal
}
