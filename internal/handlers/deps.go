package handlers

import (
	"log/slog"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	AuthSvc         AuthService
	AccountSvc      AccountService
	CustomerSvc     CustomerService
	TransactionSvc  TransactionService
	DashboardSvc    DashboardService
	SyncSvc         SyncService
	Exporter        ReportExporter
}
