// Package seed наполняет пустую базу демо-данными: админ, несколько юзеров с кошельками
// и небольшая история транзакций. Запускается по флагу и безопасен при повторном старте.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/internal/service"
	"github.com/jhanaviii/digital-wallet/internal/service/psswd"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@wallet.local"
	seedPassword  = "password123"
	demoUsers     = 5
)

func Run(ctx context.Context, u uow.UOW, services *service.AppServices, l *logrus.Logger) error {
	userRepo, userRepoErr := uow.GetRepositoryAs[service.UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return fmt.Errorf("seed: %w", userRepoErr)
	}

	if _, err := userRepo.FindUserByEmail(ctx, adminEmail); err == nil {
		l.Info("seed already applied, skipping")
		return nil
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("seed: %w", err)
	}

	password, hashErr := psswd.Hasher{}.HashPassword(seedPassword)
	if hashErr != nil {
		return fmt.Errorf("seed: %s", hashErr.Error())
	}

	if _, err := userRepo.CreateUser(ctx, repoargs.CreateUser{
		Username: adminUsername,
		Email:    adminEmail,
		Password: password,
		IsAdmin:  true,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	faker := gofakeit.New(0)
	for i := 0; i < demoUsers; i++ {
		username := faker.Username()
		user, userErr := userRepo.CreateUser(ctx, repoargs.CreateUser{
			Username: username,
			Email:    faker.Email(),
			Password: password,
		})
		if userErr != nil {
			return fmt.Errorf("seed user: %w", userErr)
		}

		if _, walletErr := services.WalletService.GetOrCreate(ctx, user.ID, domain.DefaultCurrency); walletErr != nil {
			return fmt.Errorf("seed wallet: %w", walletErr)
		}

		amount := decimal.NewFromFloat(faker.Price(50, 1500)).Round(2)
		if _, depositErr := services.TransactionService.Process(ctx, service.ProcessTransactionArgs{
			Type:     domain.TransactionTypeDeposit,
			SenderID: user.ID,
			Amount:   amount,
		}); depositErr != nil {
			return fmt.Errorf("seed deposit: %w", depositErr)
		}

		l.WithFields(logrus.Fields{
			"username": username,
			"deposit":  amount.String(),
		}).Debug("seeded user")
	}

	l.Info("seed finished")
	return nil
}
