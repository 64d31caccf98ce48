package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrSenderWalletNotFound = errors.New("sender wallet not found")
	ErrFlagNotFound         = errors.New("fraud flag not found")
)

type WalletInactiveError struct {
	WalletID uuid.UUID
}

func NewWalletInactiveError(walletID uuid.UUID) error {
	return &WalletInactiveError{WalletID: walletID}
}

func (e *WalletInactiveError) Error() string {
	return fmt.Sprintf("wallet %s is not active", e.WalletID)
}
