package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhanaviii/digital-wallet/internal/domain"
)

type CreateTransaction struct {
	SenderID    uuid.UUID
	RecipientID *uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Type        domain.TransactionType
	Status      domain.TransactionStatus
	Note        string
}

// HistoryFilter фильтрует историю транзакций юзера. Нулевые значения означают отсутствие фильтра.
type HistoryFilter struct {
	Type   domain.TransactionType
	From   time.Time
	To     time.Time
	Limit  uint
	Offset uint
}

// LargeWithdrawalScan параметры правила "множественные крупные снятия".
type LargeWithdrawalScan struct {
	Window    time.Duration
	MinAmount decimal.Decimal
	MinCount  int64
}

// DepositWithdrawalScan параметры правила "снятие вскоре после депозита".
type DepositWithdrawalScan struct {
	Lookback     time.Duration
	MaxGap       time.Duration
	DepositRatio decimal.Decimal
}

type DayVolume struct {
	Day    time.Time
	Count  int64
	Amount decimal.Decimal
}

type UserTransactionCount struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Count    int64
}
