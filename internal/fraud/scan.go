package fraud

import (
	"time"

	"github.com/shopspring/decimal"
)

// Параметры отложенных правил, которые прогоняет периодический скан.
// В отличие от Evaluate они смотрят на уже записанные транзакции.
const (
	// ScanReasonSuffix добавляется к причине каждого флага, поставленного сканом,
	// чтобы в админке его можно было отличить от встроенных правил.
	ScanReasonSuffix = " - Daily scan"

	ReasonMultipleLargeWithdrawals = "Multiple large withdrawals in 24 hours"
	ReasonDepositWithdrawalPattern = "Suspicious deposit-withdrawal pattern"

	// LargeWithdrawalWindow окно правила "серия крупных снятий".
	LargeWithdrawalWindow = 24 * time.Hour
	// LargeWithdrawalMinCount минимальное число крупных снятий в окне.
	LargeWithdrawalMinCount = 3

	// DepositWithdrawalLookback как далеко назад скан ищет пары депозит-снятие.
	DepositWithdrawalLookback = 48 * time.Hour
	// DepositWithdrawalMaxGap максимальный разрыв между депозитом и снятием в паре.
	DepositWithdrawalMaxGap = 6 * time.Hour
)

// LargeWithdrawalMinAmount порог "крупного" снятия для периодического скана.
var LargeWithdrawalMinAmount = decimal.NewFromInt(200)

// DepositWithdrawalRatio доля депозита, превышение которой последующим снятием
// считается подозрительным.
var DepositWithdrawalRatio = decimal.NewFromFloat(0.7)
