package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/service"
)

const defaultFlagsPageSize = 50

type AdminHandler struct {
	fraudService  FraudServicer
	reportService ReportServicer
}

func NewAdminHandler(fraudService FraudServicer, reportService ReportServicer) *AdminHandler {
	return &AdminHandler{
		fraudService:  fraudService,
		reportService: reportService,
	}
}

type FraudFlagResponse struct {
	ID             uuid.UUID  `json:"id"`
	TransactionID  uuid.UUID  `json:"transactionId"`
	Reason         string     `json:"reason"`
	Severity       string     `json:"severity"`
	IsResolved     bool       `json:"isResolved"`
	ResolvedBy     *uuid.UUID `json:"resolvedBy,omitempty"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	ResolutionNote string     `json:"resolutionNote,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type FlaggedTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Flags       []FraudFlagResponse `json:"flags"`
}

type FlagsParams struct {
	Limit  uint `form:"limit"  binding:"omitempty,max=100"`
	Offset uint `form:"offset"`
}

// Flags GET RouteGroup + AdminFlagsRoute. Страница flagged транзакций, новые первыми.
func (h *AdminHandler) Flags(c *gin.Context) {
	var params FlagsParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Limit == 0 {
		params.Limit = defaultFlagsPageSize
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.fraudService.FlaggedTransactions(reqCtx, params.Limit, params.Offset)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]FlaggedTransactionResponse, len(items))
	for i, item := range items {
		flags := make([]FraudFlagResponse, len(item.Flags))
		for j, flag := range item.Flags {
			flags[j] = newFraudFlagResponse(&flag)
		}
		response[i] = FlaggedTransactionResponse{
			Transaction: newTransactionResponse(&item.Transaction),
			Flags:       flags,
		}
	}
	c.JSON(http.StatusOK, response)
}

type ResolveFlagParams struct {
	FlagID uuid.UUID `binding:"required"          json:"flagId"`
	Note   string    `binding:"omitempty,max=255" json:"note"`
}

// ResolveFlag POST RouteGroup + AdminResolveRoute. Повторное разрешение того же флага
// безопасно: вернется флаг в том виде, в котором его оставило первое разрешение.
func (h *AdminHandler) ResolveFlag(c *gin.Context) {
	var params ResolveFlagParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	flag, err := h.fraudService.ResolveFlag(reqCtx, service.ResolveFlagArgs{
		FlagID:         params.FlagID,
		AdminID:        getUserIDFromContext(c),
		ResolutionNote: params.Note,
	})
	if err != nil {
		if errors.Is(err, domain.ErrFlagNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"flag": newFraudFlagResponse(flag)})
}

type CurrencyBalanceResponse struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
	Wallets  int64   `json:"wallets"`
}

// Balances GET RouteGroup + AdminBalancesRoute. Суммарные балансы по валютам.
func (h *AdminHandler) Balances(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balances, err := h.reportService.TotalBalances(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CurrencyBalanceResponse, len(balances))
	for i, balance := range balances {
		response[i] = CurrencyBalanceResponse{
			Currency: balance.Currency,
			Total:    balance.Total.InexactFloat64(),
			Wallets:  balance.Wallets,
		}
	}
	c.JSON(http.StatusOK, response)
}

type TopUsersParams struct {
	Limit uint `form:"limit" binding:"omitempty,max=100"`
}

type UserBalanceResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Currency string    `json:"currency"`
	Balance  float64   `json:"balance"`
}

type UserTransactionCountResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Count    int64     `json:"count"`
}

// TopUsers GET RouteGroup + AdminTopUsersRoute. Топ юзеров по балансу и по числу транзакций.
func (h *AdminHandler) TopUsers(c *gin.Context) {
	var params TopUsersParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.reportService.TopUsers(reqCtx, params.Limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	byBalance := make([]UserBalanceResponse, len(report.ByBalance))
	for i, item := range report.ByBalance {
		byBalance[i] = UserBalanceResponse{
			UserID:   item.UserID,
			Username: item.Username,
			Email:    item.Email,
			Currency: item.Currency,
			Balance:  item.Balance.InexactFloat64(),
		}
	}
	byCount := make([]UserTransactionCountResponse, len(report.ByTransactionCount))
	for i, item := range report.ByTransactionCount {
		byCount[i] = UserTransactionCountResponse{
			UserID:   item.UserID,
			Username: item.Username,
			Email:    item.Email,
			Count:    item.Count,
		}
	}
	c.JSON(http.StatusOK, gin.H{"byBalance": byBalance, "byTransactionCount": byCount})
}

type VolumeParams struct {
	Days uint `form:"days" binding:"omitempty,max=365"`
}

type DayVolumeResponse struct {
	Day    string  `json:"day"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// Volume GET RouteGroup + AdminVolumeRoute. Объем транзакций по дням.
func (h *AdminHandler) Volume(c *gin.Context) {
	var params VolumeParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	volume, err := h.reportService.Volume(reqCtx, params.Days)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]DayVolumeResponse, len(volume))
	for i, day := range volume {
		response[i] = DayVolumeResponse{
			Day:    day.Day.Format("2006-01-02"),
			Count:  day.Count,
			Amount: day.Amount.InexactFloat64(),
		}
	}
	c.JSON(http.StatusOK, response)
}

func newFraudFlagResponse(flag *domain.FraudFlag) FraudFlagResponse {
	return FraudFlagResponse{
		ID:             flag.ID,
		TransactionID:  flag.TransactionID,
		Reason:         flag.Reason,
		Severity:       string(flag.Severity),
		IsResolved:     flag.IsResolved,
		ResolvedBy:     flag.ResolvedBy,
		ResolvedAt:     flag.ResolvedAt,
		ResolutionNote: flag.ResolutionNote,
		CreatedAt:      flag.CreatedAt,
	}
}
