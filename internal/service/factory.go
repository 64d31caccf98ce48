package service

import (
	"fmt"

	"github.com/jhanaviii/digital-wallet/internal/service/psswd"
	"github.com/jhanaviii/digital-wallet/pkg/uow"
)

type AppServices struct {
	UserService        *UserService
	WalletService      *WalletService
	TransactionService *TransactionService
	FraudService       *FraudService
	ReportService      *ReportService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.Hasher{})
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(unitOfWork)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	fraudService, fraudServiceErr := NewFraudService(unitOfWork)
	if fraudServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", fraudServiceErr.Error())
	}

	reportService, reportServiceErr := NewReportService(unitOfWork)
	if reportServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", reportServiceErr.Error())
	}

	return &AppServices{
		UserService:        userService,
		WalletService:      walletService,
		TransactionService: NewTransactionService(unitOfWork),
		FraudService:       fraudService,
		ReportService:      reportService,
	}, nil
}
