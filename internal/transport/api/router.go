package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jhanaviii/digital-wallet/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	RegisterRoute     = "/user/register"
	LoginRoute        = "/user/login"
	WalletRoute       = "/wallet"
	TransactionsRoute = "/wallet/transactions"
	DepositRoute      = "/wallet/deposit"
	WithdrawRoute     = "/wallet/withdraw"
	TransferRoute     = "/wallet/transfer"

	AdminFlagsRoute    = "/admin/flags"
	AdminResolveRoute  = "/admin/flags/resolve"
	AdminBalancesRoute = "/admin/reports/balances"
	AdminTopUsersRoute = "/admin/reports/top-users"
	AdminVolumeRoute   = "/admin/reports/volume"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	WalletService      WalletServicer
	TransactionService TransactionServicer
	FraudService       FraudServicer
	ReportService      ReportServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	walletHandler := NewWalletHandler(args.WalletService, args.TransactionService)
	adminHandler := NewAdminHandler(args.FraudService, args.ReportService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(WalletRoute, walletHandler.Show)
	api.GET(TransactionsRoute, walletHandler.Transactions)
	api.POST(DepositRoute, walletHandler.Deposit)
	api.POST(WithdrawRoute, walletHandler.Withdraw)
	api.POST(TransferRoute, walletHandler.Transfer)

	admin := api.Group("", middlewares.AdminRequired())
	admin.GET(AdminFlagsRoute, adminHandler.Flags)
	admin.POST(AdminResolveRoute, adminHandler.ResolveFlag)
	admin.GET(AdminBalancesRoute, adminHandler.Balances)
	admin.GET(AdminTopUsersRoute, adminHandler.TopUsers)
	admin.GET(AdminVolumeRoute, adminHandler.Volume)
	return r
}
