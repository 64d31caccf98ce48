package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/repository/repoargs"
	"github.com/jhanaviii/digital-wallet/internal/service"
)

type WalletHandler struct {
	walletService      WalletServicer
	transactionService TransactionServicer
}

func NewWalletHandler(walletService WalletServicer, transactionService TransactionServicer) *WalletHandler {
	return &WalletHandler{
		walletService:      walletService,
		transactionService: transactionService,
	}
}

type WalletResponse struct {
	ID          uuid.UUID `json:"id"`
	Balance     float64   `json:"balance"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"isActive"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Show GET RouteGroup + WalletRoute. Возвращает кошелек текущего юзера в запрошенной валюте,
// лениво создавая его при первом обращении.
func (h *WalletHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	currency := c.DefaultQuery("currency", domain.DefaultCurrency)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := h.walletService.GetOrCreate(reqCtx, currentUserID, currency)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

type TransactionsParams struct {
	Type   string `form:"type"  binding:"omitempty,oneof=deposit withdrawal transfer"`
	From   string `form:"from"  binding:"omitempty"`
	To     string `form:"to"    binding:"omitempty"`
	Limit  uint   `form:"limit" binding:"omitempty,max=100"`
	Offset uint   `form:"offset"`
}

type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID *uuid.UUID `json:"recipientId,omitempty"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Note        string     `json:"note"`
	CreatedAt   string     `json:"createdAt"`
}

// Transactions GET RouteGroup + TransactionsRoute. История текущего юзера, новые первыми.
// Фильтры type/from/to и пагинация limit/offset опциональны, from/to в RFC3339.
func (h *WalletHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransactionsParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	filter := repoargs.HistoryFilter{
		Type:   domain.TransactionType(params.Type),
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.From != "" {
		from, parseErr := time.Parse(time.RFC3339, params.From)
		if parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
			return
		}
		filter.From = from
	}
	if params.To != "" {
		to, parseErr := time.Parse(time.RFC3339, params.To)
		if parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
			return
		}
		filter.To = to
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.walletService.Transactions(reqCtx, currentUserID, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = newTransactionResponse(&transaction)
	}
	c.JSON(http.StatusOK, response)
}

type SubmitTransactionParams struct {
	Amount    decimal.Decimal `binding:"required"          json:"amount"`
	Currency  string          `binding:"omitempty,len=3"   json:"currency"`
	Recipient string          `binding:"omitempty,max=30"  json:"recipient"`
	Note      string          `binding:"omitempty,max=255" json:"note"`
}

// Deposit POST RouteGroup + DepositRoute.
func (h *WalletHandler) Deposit(c *gin.Context) {
	h.submit(c, domain.TransactionTypeDeposit)
}

// Withdraw POST RouteGroup + WithdrawRoute.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	h.submit(c, domain.TransactionTypeWithdrawal)
}

// Transfer POST RouteGroup + TransferRoute. Получатель задается юзернеймом в поле recipient.
func (h *WalletHandler) Transfer(c *gin.Context) {
	h.submit(c, domain.TransactionTypeTransfer)
}

// submit общий путь всех трех операций. Транзакция, попавшая под правила фрода,
// возвращается со статусом flagged и кодом 200: для клиента это не ошибка.
func (h *WalletHandler) submit(c *gin.Context, txType domain.TransactionType) {
	currentUserID := getUserIDFromContext(c)

	var params SubmitTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.transactionService.Process(reqCtx, service.ProcessTransactionArgs{
		Type:              txType,
		SenderID:          currentUserID,
		RecipientUsername: params.Recipient,
		Amount:            params.Amount,
		Currency:          params.Currency,
		Note:              params.Note,
	})
	if err != nil {
		h.abortSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": newTransactionResponse(transaction)})
}

func (h *WalletHandler) abortSubmitError(c *gin.Context, err error) {
	var inactiveErr *domain.WalletInactiveError
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.AbortWithStatus(http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrRecipientNotFound),
		errors.Is(err, domain.ErrSenderWalletNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
	case errors.As(err, &inactiveErr):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

func newWalletResponse(wallet *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:          wallet.ID,
		Balance:     wallet.Balance.InexactFloat64(),
		Currency:    wallet.Currency,
		IsActive:    wallet.IsActive,
		LastUpdated: wallet.LastUpdated,
	}
}

func newTransactionResponse(transaction *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		RecipientID: transaction.RecipientID,
		Type:        string(transaction.Type),
		Status:      string(transaction.Status),
		Amount:      transaction.Amount.InexactFloat64(),
		Currency:    transaction.Currency,
		Note:        transaction.Note,
		CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
	}
}
