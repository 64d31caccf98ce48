package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/gin-gonic/gin"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/logger"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/internal/service"
	"github.com/jhanaviii/digital-wallet/internal/service/tokens"
	"github.com/jhanaviii/digital-wallet/internal/transport/api/mocks"
	"github.com/jhanaviii/digital-wallet/internal/transport/api/testutils"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockFraudService  *mocks.MockFraudServicer
	mockReportService *mocks.MockReportServicer
	jwtSecret         []byte
	adminID           uuid.UUID
	adminToken        string
	userToken         string
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockFraudService = mocks.NewMockFraudServicer(mockCtrl)
	s.mockReportService = mocks.NewMockReportServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.adminID = uuid.New()

	adminToken, adminTokenErr := tokens.GenerateUserJWT(s.adminID, true, time.Hour, s.jwtSecret)
	s.Require().NoError(adminTokenErr)
	s.adminToken = adminToken

	userToken, userTokenErr := tokens.GenerateUserJWT(uuid.New(), false, time.Hour, s.jwtSecret)
	s.Require().NoError(userTokenErr)
	s.userToken = userToken

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		FraudService:  s.mockFraudService,
		ReportService: s.mockReportService,
		JWTSecretKey:  s.jwtSecret,
	})
}

// TestAdminGating проверяет, что все админские роуты закрыты от обычных юзеров и анонимов.
func (s *AdminHandlerTestSuite) TestAdminGating() {
	routes := []struct {
		method string
		url    string
	}{
		{http.MethodGet, RouteGroup + AdminFlagsRoute},
		{http.MethodPost, RouteGroup + AdminResolveRoute},
		{http.MethodGet, RouteGroup + AdminBalancesRoute},
		{http.MethodGet, RouteGroup + AdminTopUsersRoute},
		{http.MethodGet, RouteGroup + AdminVolumeRoute},
	}

	for _, route := range routes {
		s.Run(fmt.Sprintf("%s %s", route.method, route.url), func() {
			// Без токена.
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: route.method,
				URL:    route.url,
			})
			s.Require().NoError(err)
			s.Require().NoError(res.Body.Close())
			s.Equal(http.StatusUnauthorized, res.StatusCode)

			// С токеном обычного юзера.
			res, err = testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: route.method,
				URL:    route.url,
			}, testutils.WithBearerToken(s.userToken))
			s.Require().NoError(err)
			s.Require().NoError(res.Body.Close())
			s.Equal(http.StatusForbidden, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestFlags() {
	transaction := domain.Transaction{
		ID:       uuid.New(),
		SenderID: uuid.New(),
		Amount:   decimal.NewFromInt(5000),
		Currency: domain.DefaultCurrency,
		Type:     domain.TransactionTypeDeposit,
		Status:   domain.TransactionStatusFlagged,
	}
	flag := domain.FraudFlag{
		ID:            uuid.New(),
		TransactionID: transaction.ID,
		Reason:        "unusually large amount",
		Severity:      domain.SeverityMedium,
	}

	s.mockFraudService.EXPECT().
		FlaggedTransactions(gomock.Any(), uint(50), uint(0)).
		Return([]service.FlaggedTransaction{
			{Transaction: transaction, Flags: []domain.FraudFlag{flag}},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminFlagsRoute,
	}, testutils.WithBearerToken(s.adminToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var got []FlaggedTransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
	s.Require().Len(got, 1)
	s.Equal(transaction.ID, got[0].Transaction.ID)
	s.Require().Len(got[0].Flags, 1)
	s.Equal(flag.Reason, got[0].Flags[0].Reason)
}

func (s *AdminHandlerTestSuite) TestResolveFlag() {
	flagID := uuid.New()
	resolvedAt := time.Now()
	resolved := &domain.FraudFlag{
		ID:             flagID,
		TransactionID:  uuid.New(),
		IsResolved:     true,
		ResolvedBy:     &s.adminID,
		ResolvedAt:     &resolvedAt,
		ResolutionNote: "verified manually",
	}

	s.mockFraudService.EXPECT().
		ResolveFlag(gomock.Any(), service.ResolveFlagArgs{
			FlagID:         flagID,
			AdminID:        s.adminID,
			ResolutionNote: "verified manually",
		}).
		Return(resolved, nil)

	payload := fmt.Sprintf(`{"flagId": %q, "note": "verified manually"}`, flagID)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + AdminResolveRoute,
		Body:   bytes.NewReader([]byte(payload)),
	},
		testutils.WithBearerToken(s.adminToken),
		testutils.WithHeader("Content-Type", "application/json"),
	)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var got struct {
		Flag FraudFlagResponse `json:"flag"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
	s.True(got.Flag.IsResolved)
}

func (s *AdminHandlerTestSuite) TestResolveUnknownFlag() {
	s.mockFraudService.EXPECT().
		ResolveFlag(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrFlagNotFound)

	payload := fmt.Sprintf(`{"flagId": %q}`, uuid.New())
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + AdminResolveRoute,
		Body:   bytes.NewReader([]byte(payload)),
	},
		testutils.WithBearerToken(s.adminToken),
		testutils.WithHeader("Content-Type", "application/json"),
	)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestBalancesReport() {
	s.mockReportService.EXPECT().
		TotalBalances(gomock.Any()).
		Return([]repoargs.CurrencyBalance{
			{Currency: "USD", Total: decimal.NewFromInt(12345), Wallets: 42},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminBalancesRoute,
	}, testutils.WithBearerToken(s.adminToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var got []CurrencyBalanceResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
	s.Require().Len(got, 1)
	s.Equal("USD", got[0].Currency)
	s.EqualValues(42, got[0].Wallets)
}

func (s *AdminHandlerTestSuite) TestVolumeReport() {
	day := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	s.mockReportService.EXPECT().
		Volume(gomock.Any(), uint(7)).
		Return([]repoargs.DayVolume{
			{Day: day, Count: 3, Amount: decimal.NewFromInt(900)},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminVolumeRoute + "?days=7",
	}, testutils.WithBearerToken(s.adminToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var got []DayVolumeResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
	s.Require().Len(got, 1)
	s.Equal("2025-08-30", got[0].Day)
}
