package pgrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type FraudFlagRepository struct {
	conn uow.DBTX
}

func NewFraudFlagRepository(conn uow.DBTX) *FraudFlagRepository {
	return &FraudFlagRepository{conn: conn}
}

const fraudFlagColumns = `id, transaction_id, reason, severity, is_resolved,
	resolved_by, resolved_at, resolution_note, created_at`

func (f *FraudFlagRepository) Create(
	ctx context.Context,
	args repoargs.CreateFraudFlag,
) (*domain.FraudFlag, error) {
	row := f.conn.QueryRow(ctx, `
		INSERT INTO fraud_flags (transaction_id, reason, severity)
		VALUES ($1, $2, $3)
		RETURNING `+fraudFlagColumns,
		args.TransactionID, args.Reason, args.Severity)

	flag, err := scanFraudFlag(row)
	if err != nil {
		return nil, convertErr(err, "creating fraud flag")
	}
	return flag, nil
}

// FindByID ищет флаг по id. Если запись не найдена, вернется domain.ErrRecordNotFound.
func (f *FraudFlagRepository) FindByID(ctx context.Context, flagID uuid.UUID) (*domain.FraudFlag, error) {
	row := f.conn.QueryRow(ctx, `SELECT `+fraudFlagColumns+` FROM fraud_flags WHERE id = $1`, flagID)
	flag, err := scanFraudFlag(row)
	if err != nil {
		return nil, convertErr(err, "finding fraud flag %s", flagID)
	}
	return flag, nil
}

// Resolve помечает флаг разрешенным. Условие is_resolved = false делает операцию однократной:
// если флаг уже разрешен, строка не меняется и вернется domain.ErrRecordNotFound -
// сервисный слой различает этот случай повторным чтением.
func (f *FraudFlagRepository) Resolve(
	ctx context.Context,
	args repoargs.ResolveFraudFlag,
) (*domain.FraudFlag, error) {
	row := f.conn.QueryRow(ctx, `
		UPDATE fraud_flags
		SET is_resolved = true, resolved_by = $2, resolved_at = now(), resolution_note = $3
		WHERE id = $1 AND is_resolved = false
		RETURNING `+fraudFlagColumns,
		args.FlagID, args.ResolvedBy, args.ResolutionNote)

	flag, err := scanFraudFlag(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, convertErr(pgx.ErrNoRows, "resolving fraud flag %s", args.FlagID)
		}
		return nil, convertErr(err, "resolving fraud flag %s", args.FlagID)
	}
	return flag, nil
}

// FindByTransactionID возвращает флаги транзакции, новые первыми.
func (f *FraudFlagRepository) FindByTransactionID(
	ctx context.Context,
	transactionID uuid.UUID,
) ([]domain.FraudFlag, error) {
	rows, err := f.conn.Query(ctx, `
		SELECT `+fraudFlagColumns+`
		FROM fraud_flags
		WHERE transaction_id = $1
		ORDER BY created_at DESC`, transactionID)
	if err != nil {
		return nil, convertErr(err, "fraud flags for transaction %s", transactionID)
	}
	defer rows.Close()

	var flags []domain.FraudFlag
	for rows.Next() {
		flag, scanErr := scanFraudFlag(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "fraud flags for transaction %s", transactionID)
		}
		flags = append(flags, *flag)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "fraud flags for transaction %s", transactionID)
	}
	return flags, nil
}

func scanFraudFlag(row rowScanner) (*domain.FraudFlag, error) {
	var flag domain.FraudFlag
	err := row.Scan(
		&flag.ID,
		&flag.TransactionID,
		&flag.Reason,
		&flag.Severity,
		&flag.IsResolved,
		&flag.ResolvedBy,
		&flag.ResolvedAt,
		&flag.ResolutionNote,
		&flag.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &flag, nil
}
