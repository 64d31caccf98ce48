package pgrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/pgrepo"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/internal/testutil"
)

type PgRepoTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	teardown func()

	userRepo        *pgrepo.UserRepository
	walletRepo      *pgrepo.WalletRepository
	transactionRepo *pgrepo.TransactionRepository
	flagRepo        *pgrepo.FraudFlagRepository
}

func TestPgRepoSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test, requires docker")
	}
	suite.Run(t, new(PgRepoTestSuite))
}

func (s *PgRepoTestSuite) SetupSuite() {
	s.pool, s.teardown = testutil.SetupTestDB(s.T())

	s.userRepo = pgrepo.NewUserRepository(s.pool)
	s.walletRepo = pgrepo.NewWalletRepository(s.pool)
	s.transactionRepo = pgrepo.NewTransactionRepository(s.pool)
	s.flagRepo = pgrepo.NewFraudFlagRepository(s.pool)
}

func (s *PgRepoTestSuite) TearDownSuite() {
	if s.teardown != nil {
		s.teardown()
	}
}

// newFundedWallet создает юзера с кошельком и зачисляет на него balance.
func (s *PgRepoTestSuite) newFundedWallet(ctx context.Context, balance decimal.Decimal) *domain.Wallet {
	name := "u" + uuid.NewString()[:8]
	user, err := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		Username: name,
		Email:    name + "@example.com",
		Password: "hash",
	})
	s.Require().NoError(err)

	wallet, err := s.walletRepo.Create(ctx, repoargs.CreateWallet{
		UserID:   user.ID,
		Currency: domain.DefaultCurrency,
	})
	s.Require().NoError(err)

	if !balance.IsZero() {
		wallet, err = s.walletRepo.Credit(ctx, wallet.ID, balance)
		s.Require().NoError(err)
	}
	return wallet
}

func (s *PgRepoTestSuite) newCompletedTransaction(ctx context.Context, wallet *domain.Wallet) *domain.Transaction {
	transaction, err := s.transactionRepo.Create(ctx, repoargs.CreateTransaction{
		SenderID: wallet.UserID,
		Amount:   decimal.NewFromInt(100),
		Currency: wallet.Currency,
		Type:     domain.TransactionTypeDeposit,
		Status:   domain.TransactionStatusCompleted,
	})
	s.Require().NoError(err)
	return transaction
}

// Конкурентные списания не должны увести баланс в минус: строка меняется только при
// достаточном балансе, лишние списания получают ErrInsufficientFunds.
func (s *PgRepoTestSuite) TestConcurrentDebitNeverOverdraws() {
	ctx := context.Background()
	wallet := s.newFundedWallet(ctx, decimal.NewFromInt(100))
	debit := decimal.NewFromInt(30)

	const attempts = 10
	errs := make([]error, attempts)

	wg := new(sync.WaitGroup)
	wg.Add(attempts)
	for i := range attempts {
		go func() {
			defer wg.Done()
			_, errs[i] = s.walletRepo.Debit(ctx, wallet.ID, debit)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	}
	// 100 / 30: максимум три списания проходят.
	s.Equal(3, succeeded)

	got, err := s.walletRepo.FindByUserAndCurrency(ctx, wallet.UserID, wallet.Currency)
	s.Require().NoError(err)
	s.True(got.Balance.Equal(decimal.NewFromInt(10)), "got balance %s", got.Balance)
}

func (s *PgRepoTestSuite) TestDebitInsufficientFunds() {
	ctx := context.Background()
	wallet := s.newFundedWallet(ctx, decimal.NewFromInt(50))

	_, err := s.walletRepo.Debit(ctx, wallet.ID, decimal.NewFromInt(51))
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)

	got, findErr := s.walletRepo.FindByUserAndCurrency(ctx, wallet.UserID, wallet.Currency)
	s.Require().NoError(findErr)
	s.True(got.Balance.Equal(decimal.NewFromInt(50)))
}

func (s *PgRepoTestSuite) TestCreateWalletDuplicate() {
	ctx := context.Background()
	wallet := s.newFundedWallet(ctx, decimal.Zero)

	_, err := s.walletRepo.Create(ctx, repoargs.CreateWallet{
		UserID:   wallet.UserID,
		Currency: wallet.Currency,
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

// Повторное разрешение флага не перезаписывает данные первого разрешения.
func (s *PgRepoTestSuite) TestResolveFlagOnlyOnce() {
	ctx := context.Background()
	wallet := s.newFundedWallet(ctx, decimal.Zero)
	transaction := s.newCompletedTransaction(ctx, wallet)

	flag, err := s.flagRepo.Create(ctx, repoargs.CreateFraudFlag{
		TransactionID: transaction.ID,
		Reason:        "unusually large amount",
		Severity:      domain.SeverityMedium,
	})
	s.Require().NoError(err)
	s.False(flag.IsResolved)

	firstAdmin := s.newFundedWallet(ctx, decimal.Zero).UserID
	resolved, err := s.flagRepo.Resolve(ctx, repoargs.ResolveFraudFlag{
		FlagID:         flag.ID,
		ResolvedBy:     firstAdmin,
		ResolutionNote: "first pass",
	})
	s.Require().NoError(err)
	s.True(resolved.IsResolved)
	s.Require().NotNil(resolved.ResolvedBy)
	s.Equal(firstAdmin, *resolved.ResolvedBy)

	secondAdmin := s.newFundedWallet(ctx, decimal.Zero).UserID
	_, err = s.flagRepo.Resolve(ctx, repoargs.ResolveFraudFlag{
		FlagID:         flag.ID,
		ResolvedBy:     secondAdmin,
		ResolutionNote: "second pass",
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	got, err := s.flagRepo.FindByID(ctx, flag.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.ResolvedBy)
	s.Equal(firstAdmin, *got.ResolvedBy)
	s.Equal("first pass", got.ResolutionNote)
}

func (s *PgRepoTestSuite) TestCountRecentByType() {
	ctx := context.Background()
	wallet := s.newFundedWallet(ctx, decimal.Zero)

	for range 3 {
		s.newCompletedTransaction(ctx, wallet)
	}

	since := time.Now().Add(-time.Hour)
	count, err := s.transactionRepo.CountRecentByType(ctx, wallet.UserID, domain.TransactionTypeDeposit, since)
	s.Require().NoError(err)
	s.EqualValues(3, count)

	count, err = s.transactionRepo.CountRecentByType(ctx, wallet.UserID, domain.TransactionTypeWithdrawal, since)
	s.Require().NoError(err)
	s.EqualValues(0, count)
}

func (s *PgRepoTestSuite) newWithdrawal(
	ctx context.Context,
	wallet *domain.Wallet,
	amount decimal.Decimal,
) *domain.Transaction {
	transaction, err := s.transactionRepo.Create(ctx, repoargs.CreateTransaction{
		SenderID: wallet.UserID,
		Amount:   amount,
		Currency: wallet.Currency,
		Type:     domain.TransactionTypeWithdrawal,
		Status:   domain.TransactionStatusCompleted,
	})
	s.Require().NoError(err)
	return transaction
}

// Уже flagged снятия не участвуют в подсчете серии: отправитель с двумя нефлагнутыми
// снятиями под порог не попадает, сколько бы flagged у него ни было.
func (s *PgRepoTestSuite) TestFindLargeWithdrawalsSkipsFlaggedInCount() {
	ctx := context.Background()
	scan := repoargs.LargeWithdrawalScan{
		Window:    24 * time.Hour,
		MinAmount: decimal.NewFromInt(200),
		MinCount:  3,
	}
	amount := decimal.NewFromInt(500)

	heavySender := s.newFundedWallet(ctx, decimal.Zero)
	heavyIDs := make(map[uuid.UUID]struct{})
	for range 3 {
		heavyIDs[s.newWithdrawal(ctx, heavySender, amount).ID] = struct{}{}
	}
	flagged := s.newWithdrawal(ctx, heavySender, amount)
	s.Require().NoError(s.transactionRepo.MarkFlagged(ctx, flagged.ID))

	lightSender := s.newFundedWallet(ctx, decimal.Zero)
	s.newWithdrawal(ctx, lightSender, amount)
	s.newWithdrawal(ctx, lightSender, amount)
	lightFlagged := s.newWithdrawal(ctx, lightSender, amount)
	s.Require().NoError(s.transactionRepo.MarkFlagged(ctx, lightFlagged.ID))

	candidates, err := s.transactionRepo.FindLargeWithdrawals(ctx, scan)
	s.Require().NoError(err)

	s.Require().Len(candidates, len(heavyIDs))
	for _, candidate := range candidates {
		s.Contains(heavyIDs, candidate.ID)
	}
}

func (s *PgRepoTestSuite) TestMarkFlagged() {
	ctx := context.Background()
	wallet := s.newFundedWallet(ctx, decimal.Zero)
	transaction := s.newCompletedTransaction(ctx, wallet)

	s.Require().NoError(s.transactionRepo.MarkFlagged(ctx, transaction.ID))

	// Повторное флагование той же транзакции - ноль затронутых строк.
	err := s.transactionRepo.MarkFlagged(ctx, transaction.ID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	err = s.transactionRepo.MarkFlagged(ctx, uuid.New())
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	flagged, err := s.transactionRepo.GetFlagged(ctx, 10, 0)
	s.Require().NoError(err)

	var found bool
	for _, item := range flagged {
		if item.ID == transaction.ID {
			found = true
			s.Equal(domain.TransactionStatusFlagged, item.Status)
		}
	}
	s.True(found)
}
