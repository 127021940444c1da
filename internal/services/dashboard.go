package services

import (
	"context"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/dto"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

type dashboardAccountCache interface {
	GetAll() ([]*models.Account, error)
}

type dashboardTransactionCache interface {
	GetAll() ([]*models.Transaction, error)
}

type dashboardPositionCache interface {
	Get(date string) (*models.CashPosition, error)
}

type dashboardOutbox interface {
	List() ([]*models.PendingTransaction, error)
}

type dashboardService struct {
	accounts     dashboardAccountCache
	transactions dashboardTransactionCache
	positions    dashboardPositionCache
	outbox       dashboardOutbox
	now          func() time.Time
}

func NewDashboardService(accounts dashboardAccountCache, transactions dashboardTransactionCache, positions dashboardPositionCache, ob dashboardOutbox) *dashboardService {
	return &dashboardService{
		accounts:     accounts,
		transactions: transactions,
		positions:    positions,
		outbox:       ob,
		now:          time.Now,
	}
}

// Summary aggregates the cached state into the numbers the dashboard shows.
// Everything is computed from the local cache, so the summary stays available
// offline; balances may lag the remote until the next pull.
func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	today := s.now().Format(dateLayout)
	summary := &dto.DashboardSummary{Date: today}

	accounts, err := cachedOrEmpty(ctx, s.accounts.GetAll)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if !a.IsActive {
			continue
		}
		summary.AccountCount++
		summary.TotalBalance += a.CurrentBalance
		if a.Type == models.AccountCash {
			summary.CashInHand += a.CurrentBalance
		}
	}

	transactions, err := cachedOrEmpty(ctx, s.transactions.GetAll)
	if err != nil {
		return nil, err
	}
	for _, t := range transactions {
		if t.TransactionDate != today {
			continue
		}
		summary.TodayCount++
		summary.TodayVolume += t.Amount
		summary.TodayFees += t.FeeAmount
	}

	if pos, err := s.positions.Get(today); err == nil {
		summary.CashPosition = pos
	}

	if pending, err := s.outbox.List(); err == nil {
		summary.PendingOutbox = len(pending)
	}

	return summary, nil
}
