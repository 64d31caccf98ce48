// Package fraud содержит встроенные правила проверки транзакций. Оценка чистая:
// результат зависит только от переданных аргументов, обращения к хранилищу здесь нет.
package fraud

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhanaviii/digital-wallet/internal/domain"
)

const (
	// RecentWindow окно для подсчета недавних транзакций одного типа.
	RecentWindow = time.Hour
	// RecentCountThreshold минимальное число недавних транзакций, начиная с которого
	// транзакция считается подозрительной.
	RecentCountThreshold = 3
)

// LargeAmountThreshold порог "крупной" суммы. Порог фиксированный и не учитывает валюту.
var LargeAmountThreshold = decimal.NewFromInt(2000)

// WithdrawalBalanceRatio доля баланса, превышение которой одним снятием считается подозрительным.
var WithdrawalBalanceRatio = decimal.NewFromFloat(0.5)

type Verdict struct {
	Flagged  bool
	Reason   string
	Severity domain.SeverityType
}

// Evaluate прогоняет транзакцию-кандидата через три правила:
//  1. сумма больше LargeAmountThreshold;
//  2. за последний час у отправителя уже было RecentCountThreshold и более транзакций того же типа,
//     включая flagged: отклоненная попытка тоже сигнал;
//  3. снятие превышает WithdrawalBalanceRatio от баланса ДО применения транзакции.
//
// Достаточно срабатывания любого правила. senderWallet передается с балансом до мутации,
// recentSameTypeCount - количество транзакций отправителя того же типа за RecentWindow.
func Evaluate(
	candidate domain.Transaction,
	senderWallet domain.Wallet,
	recentSameTypeCount int64,
) Verdict {
	var reasons []string

	if candidate.Amount.GreaterThan(LargeAmountThreshold) {
		reasons = append(reasons, "unusually large amount")
	}

	if recentSameTypeCount >= RecentCountThreshold {
		reasons = append(reasons, "multiple "+string(candidate.Type)+" transactions in a short period")
	}

	if candidate.Type == domain.TransactionTypeWithdrawal &&
		candidate.Amount.GreaterThan(senderWallet.Balance.Mul(WithdrawalBalanceRatio)) {
		reasons = append(reasons, "withdrawal exceeds half of wallet balance")
	}

	if len(reasons) == 0 {
		return Verdict{}
	}
	return Verdict{
		Flagged:  true,
		Reason:   strings.Join(reasons, "; "),
		Severity: domain.SeverityMedium,
	}
}
