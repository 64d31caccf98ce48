package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

const walletColumns = `id, user_id, balance, currency, is_active, created_at, last_updated`

// Create создает кошелек с нулевым балансом. При конфликте пары (user_id, currency)
// возвращает domain.ErrDuplicateKey.
func (w *WalletRepository) Create(ctx context.Context, args repoargs.CreateWallet) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `
		INSERT INTO wallets (user_id, currency)
		VALUES ($1, $2)
		RETURNING `+walletColumns,
		args.UserID, args.Currency)

	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "creating wallet")
	}
	return wallet, nil
}

// FindByUserAndCurrency ищет активный кошелек юзера в валюте currency. Если запись не найдена,
// вернется domain.ErrRecordNotFound.
func (w *WalletRepository) FindByUserAndCurrency(
	ctx context.Context,
	userID uuid.UUID,
	currency string,
) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `
		SELECT `+walletColumns+`
		FROM wallets
		WHERE user_id = $1 AND currency = $2 AND is_active = true`,
		userID, currency)

	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "finding wallet for user %s currency %s", userID, currency)
	}
	return wallet, nil
}

// Debit списывает amount с кошелька одним условным UPDATE: строка меняется только если средств
// хватает, поэтому два конкурентных списания не могут увести баланс в минус. Ноль затронутых
// строк означает нехватку средств - domain.ErrInsufficientFunds.
func (w *WalletRepository) Debit(
	ctx context.Context,
	walletID uuid.UUID,
	amount decimal.Decimal,
) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `
		UPDATE wallets
		SET balance = balance - $2, last_updated = now()
		WHERE id = $1 AND balance >= $2
		RETURNING `+walletColumns,
		walletID, amount)

	wallet, err := scanWallet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("debit wallet %s: %w", walletID, domain.ErrInsufficientFunds)
		}
		return nil, convertErr(err, "debit wallet %s", walletID)
	}
	return wallet, nil
}

// Credit зачисляет amount на кошелек.
func (w *WalletRepository) Credit(
	ctx context.Context,
	walletID uuid.UUID,
	amount decimal.Decimal,
) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `
		UPDATE wallets
		SET balance = balance + $2, last_updated = now()
		WHERE id = $1
		RETURNING `+walletColumns,
		walletID, amount)

	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "credit wallet %s", walletID)
	}
	return wallet, nil
}

// TotalBalancesByCurrency возвращает сумму балансов всех кошельков с разбивкой по валютам.
func (w *WalletRepository) TotalBalancesByCurrency(ctx context.Context) ([]repoargs.CurrencyBalance, error) {
	rows, err := w.conn.Query(ctx, `
		SELECT currency, COALESCE(SUM(balance), 0), COUNT(*)
		FROM wallets
		WHERE is_active = true
		GROUP BY currency
		ORDER BY currency`)
	if err != nil {
		return nil, convertErr(err, "total balances by currency")
	}
	defer rows.Close()

	var balances []repoargs.CurrencyBalance
	for rows.Next() {
		var b repoargs.CurrencyBalance
		if scanErr := rows.Scan(&b.Currency, &b.Total, &b.Wallets); scanErr != nil {
			return nil, convertErr(scanErr, "total balances by currency")
		}
		balances = append(balances, b)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "total balances by currency")
	}
	return balances, nil
}

// TopByBalance возвращает limit кошельков с наибольшим балансом вместе с владельцами.
func (w *WalletRepository) TopByBalance(ctx context.Context, limit uint) ([]repoargs.UserBalance, error) {
	rows, err := w.conn.Query(ctx, `
		SELECT u.id, u.username, u.email, w.currency, w.balance
		FROM wallets w
		JOIN users u ON u.id = w.user_id
		WHERE w.is_active = true
		ORDER BY w.balance DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, convertErr(err, "top users by balance")
	}
	defer rows.Close()

	var result []repoargs.UserBalance
	for rows.Next() {
		var ub repoargs.UserBalance
		if scanErr := rows.Scan(&ub.UserID, &ub.Username, &ub.Email, &ub.Currency, &ub.Balance); scanErr != nil {
			return nil, convertErr(scanErr, "top users by balance")
		}
		result = append(result, ub)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "top users by balance")
	}
	return result, nil
}

func scanWallet(row rowScanner) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.Balance,
		&wallet.Currency,
		&wallet.IsActive,
		&wallet.CreatedAt,
		&wallet.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
