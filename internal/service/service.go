package service

import (
	"github.com/hance08/statement/internal/config"
	"github.com/hance08/statement/internal/ledger"
	"github.com/hance08/statement/internal/store"
	"github.com/sirupsen/logrus"
)

type Service struct {
	Passcode    *PasscodeService
	Transaction *TransactionService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, log logrus.FieldLogger, opts ...ledger.Option) *Service {
	passcode := NewPasscodeService(repo, log)
	return &Service{
		Passcode:    passcode,
		Transaction: NewTransactionService(repo, passcode, cfg, log, opts...),
		Config:      cfg,
	}
}
