package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

const transactionColumns = `id, sender_id, recipient_id, amount, currency, type, status, note, created_at`

// Create добавляет запись в журнал транзакций. Журнал append-only: других мутаций,
// кроме перевода статуса в flagged (MarkFlagged), не предусмотрено.
func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `
		INSERT INTO transactions (sender_id, recipient_id, amount, currency, type, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+transactionColumns,
		args.SenderID, args.RecipientID, args.Amount, args.Currency, args.Type, args.Status, args.Note)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction")
	}
	return transaction, nil
}

// GetByUser возвращает транзакции, где юзер является отправителем либо получателем,
// отсортированные по дате создания по убыванию.
func (t *TransactionRepository) GetByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter repoargs.HistoryFilter,
) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE (sender_id = $1 OR recipient_id = $1)`
	queryArgs := []any{userID}

	if filter.Type != "" {
		queryArgs = append(queryArgs, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(queryArgs))
	}
	if !filter.From.IsZero() {
		queryArgs = append(queryArgs, filter.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(queryArgs))
	}
	if !filter.To.IsZero() {
		queryArgs = append(queryArgs, filter.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(queryArgs))
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		queryArgs = append(queryArgs, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(queryArgs))
	}
	if filter.Offset > 0 {
		queryArgs = append(queryArgs, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(queryArgs))
	}

	rows, err := t.conn.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "transactions for user %s", userID)
	}
	return collectTransactions(rows, "transactions for user %s", userID)
}

// CountRecentByType считает транзакции отправителя данного типа начиная с since.
// Учитываются все статусы, включая flagged.
func (t *TransactionRepository) CountRecentByType(
	ctx context.Context,
	senderID uuid.UUID,
	txType domain.TransactionType,
	since time.Time,
) (int64, error) {
	var count int64
	err := t.conn.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM transactions
		WHERE sender_id = $1 AND type = $2 AND created_at > $3`,
		senderID, txType, since).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting recent %s transactions for %s", txType, senderID)
	}
	return count, nil
}

// MarkFlagged переводит статус транзакции в flagged. Условие status <> flagged делает
// операцию однократной: если запись не найдена либо уже flagged, вернется
// domain.ErrRecordNotFound и повторный флаг не появится.
func (t *TransactionRepository) MarkFlagged(ctx context.Context, transactionID uuid.UUID) error {
	tag, err := t.conn.Exec(ctx, `
		UPDATE transactions SET status = $2 WHERE id = $1 AND status <> $2`,
		transactionID, domain.TransactionStatusFlagged)
	if err != nil {
		return convertErr(err, "flagging transaction %s", transactionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flagging transaction %s: %w", transactionID, domain.ErrRecordNotFound)
	}
	return nil
}

// GetFlagged возвращает flagged транзакции постранично, новые первыми.
func (t *TransactionRepository) GetFlagged(
	ctx context.Context,
	limit uint,
	offset uint,
) ([]domain.Transaction, error) {
	rows, err := t.conn.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		domain.TransactionStatusFlagged, limit, offset)
	if err != nil {
		return nil, convertErr(err, "flagged transactions")
	}
	return collectTransactions(rows, "flagged transactions")
}

// FindLargeWithdrawals выбирает нефлагнутые снятия крупнее MinAmount за окно Window
// у отправителей, накопивших таких снятий не меньше MinCount. Уже flagged снятия
// не учитываются и в подсчете.
func (t *TransactionRepository) FindLargeWithdrawals(
	ctx context.Context,
	scan repoargs.LargeWithdrawalScan,
) ([]domain.Transaction, error) {
	windowStart := time.Now().Add(-scan.Window)
	rows, err := t.conn.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE type = $1
		  AND status <> $2
		  AND amount > $3
		  AND created_at > $4
		  AND sender_id IN (
			SELECT sender_id
			FROM transactions
			WHERE type = $1 AND status <> $2 AND amount > $3 AND created_at > $4
			GROUP BY sender_id
			HAVING COUNT(*) >= $5
		  )
		ORDER BY created_at`,
		domain.TransactionTypeWithdrawal,
		domain.TransactionStatusFlagged,
		scan.MinAmount,
		windowStart,
		scan.MinCount)
	if err != nil {
		return nil, convertErr(err, "large withdrawals scan")
	}
	return collectTransactions(rows, "large withdrawals scan")
}

// FindDepositWithdrawalPattern выбирает нефлагнутые снятия, совершенные в пределах MaxGap
// после депозита того же отправителя в той же валюте и превышающие DepositRatio от его суммы.
// Глубина просмотра ограничена Lookback.
func (t *TransactionRepository) FindDepositWithdrawalPattern(
	ctx context.Context,
	scan repoargs.DepositWithdrawalScan,
) ([]domain.Transaction, error) {
	lookbackStart := time.Now().Add(-scan.Lookback)
	rows, err := t.conn.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions w
		WHERE w.type = $1
		  AND w.status <> $2
		  AND w.created_at > $3
		  AND EXISTS (
			SELECT 1
			FROM transactions d
			WHERE d.type = $4
			  AND d.sender_id = w.sender_id
			  AND d.currency = w.currency
			  AND d.created_at > $3
			  AND d.created_at < w.created_at
			  AND w.created_at - d.created_at < make_interval(secs => $5)
			  AND w.amount > d.amount * $6
		  )
		ORDER BY w.created_at`,
		domain.TransactionTypeWithdrawal,
		domain.TransactionStatusFlagged,
		lookbackStart,
		domain.TransactionTypeDeposit,
		scan.MaxGap.Seconds(),
		scan.DepositRatio)
	if err != nil {
		return nil, convertErr(err, "deposit-withdrawal pattern scan")
	}
	return collectTransactions(rows, "deposit-withdrawal pattern scan")
}

// VolumeByDay возвращает количество и сумму транзакций по дням за последние days дней.
func (t *TransactionRepository) VolumeByDay(ctx context.Context, days uint) ([]repoargs.DayVolume, error) {
	rows, err := t.conn.Query(ctx, `
		SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE created_at > now() - make_interval(days => $1)
		GROUP BY day
		ORDER BY day`, days)
	if err != nil {
		return nil, convertErr(err, "transaction volume by day")
	}
	defer rows.Close()

	var volumes []repoargs.DayVolume
	for rows.Next() {
		var v repoargs.DayVolume
		if scanErr := rows.Scan(&v.Day, &v.Count, &v.Amount); scanErr != nil {
			return nil, convertErr(scanErr, "transaction volume by day")
		}
		volumes = append(volumes, v)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "transaction volume by day")
	}
	return volumes, nil
}

// TopSendersByCount возвращает limit юзеров с наибольшим числом отправленных транзакций.
func (t *TransactionRepository) TopSendersByCount(
	ctx context.Context,
	limit uint,
) ([]repoargs.UserTransactionCount, error) {
	rows, err := t.conn.Query(ctx, `
		SELECT u.id, u.username, u.email, COUNT(tr.id) AS cnt
		FROM users u
		JOIN transactions tr ON tr.sender_id = u.id
		GROUP BY u.id, u.username, u.email
		ORDER BY cnt DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, convertErr(err, "top users by transaction count")
	}
	defer rows.Close()

	var result []repoargs.UserTransactionCount
	for rows.Next() {
		var uc repoargs.UserTransactionCount
		if scanErr := rows.Scan(&uc.UserID, &uc.Username, &uc.Email, &uc.Count); scanErr != nil {
			return nil, convertErr(scanErr, "top users by transaction count")
		}
		result = append(result, uc)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "top users by transaction count")
	}
	return result, nil
}

type pgxRows interface {
	rowScanner
	Next() bool
	Err() error
	Close()
}

func collectTransactions(rows pgxRows, format string, args ...any) ([]domain.Transaction, error) {
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, format, args...)
		}
		transactions = append(transactions, *transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, format, args...)
	}
	return transactions, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID,
		&transaction.SenderID,
		&transaction.RecipientID,
		&transaction.Amount,
		&transaction.Currency,
		&transaction.Type,
		&transaction.Status,
		&transaction.Note,
		&transaction.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
