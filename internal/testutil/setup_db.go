// Package testutil - общая инфраструктура интеграционных тестов: одноразовый Postgres
// в контейнере с накатанными миграциями.
package testutil

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const connectAttempts = 20

// SetupTestDB поднимает контейнер Postgres, накатывает боевые миграции и возвращает пул
// вместе с функцией очистки. Тест падает, если докер недоступен.
func SetupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()
	ctx := context.Background()

	postgresC, err := tcpostgres.Run(ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("wallet"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("secret"),
	)
	require.NoError(t, err)

	dsn, err := postgresC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var pool *pgxpool.Pool
	for range connectAttempts {
		pool, err = pgxpool.New(ctx, dsn)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "postgres did not become ready in time")

	m, err := migrate.New("file://"+migrationsDir(t), dsn)
	require.NoError(t, err)
	if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		require.NoError(t, upErr)
	}

	return pool, func() {
		pool.Close()
		_ = postgresC.Terminate(ctx)
	}
}

// migrationsDir возвращает абсолютный путь к миграциям независимо от того, из какого
// пакета запущен тест.
func migrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(thisFile), "..", "db", "migrations")
}
