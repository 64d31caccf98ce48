package pgrepo

import (
	"context"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = `id, created_at, updated_at, username, email, encrypted_password, is_admin`

// CreateUser создает юзера. При конфликте юзернейма или email возвращает domain.ErrDuplicateKey.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		INSERT INTO users (username, email, encrypted_password, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Username, args.Email, args.Password, args.IsAdmin)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindUserByEmail ищет юзера по email. Если запись не найдена, вернется domain.ErrRecordNotFound.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

// FindUserByUsername ищет юзера по юзернейму. Если запись не найдена, вернется domain.ErrRecordNotFound.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.IsAdmin,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
