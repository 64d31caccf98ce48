package domain

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusFlagged   TransactionStatus = "flagged"
)

type SeverityType string

const (
	SeverityLow    SeverityType = "low"
	SeverityMedium SeverityType = "medium"
	SeverityHigh   SeverityType = "high"
)

const DefaultCurrency = "USD"
