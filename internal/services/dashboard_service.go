package services

import (
	"sync"
	"time"

	"financafacil/internal/models"
	"financafacil/internal/store"
)

type dashboardService struct {
	store *store.Store

	mu      sync.Mutex
	gen     uint64
	summary *Summary
}

// NewDashboardService creates a dashboard service over the store. The
// summary is memoized and recomputed lazily after any of the backing
// collections change.
func NewDashboardService(s *store.Store) DashboardServicer {
	svc := &dashboardService{store: s}
	for _, key := range []string{models.KeyAccounts, models.KeyTransactions, models.KeyCategories, models.KeyCalendarEvents} {
		s.Subscribe(key, svc.invalidate)
	}
	return svc
}

func (s *dashboardService) invalidate() {
	s.mu.Lock()
	s.gen++
	s.summary = nil
	s.mu.Unlock()
}

func (s *dashboardService) accounts() []models.Account {
	return store.Get(s.store, models.KeyAccounts, models.DefaultAccounts())
}

func (s *dashboardService) categories() []models.Category {
	return store.Get(s.store, models.KeyCategories, models.DefaultCategories())
}

func (s *dashboardService) transactions() []models.Transaction {
	return store.Get(s.store, models.KeyTransactions, models.DefaultTransactions())
}

func (s *dashboardService) events() []models.CalendarEvent {
	return store.Get(s.store, models.KeyCalendarEvents, models.DefaultCalendarEvents())
}

// Summary reads the slots outside the lock: a first read can seed
// defaults, and seeding fires invalidate on the calling goroutine. The
// generation counter drops the cache write when an invalidation lands
// mid-computation.
func (s *dashboardService) Summary() Summary {
	s.mu.Lock()
	if s.summary != nil {
		cached := *s.summary
		s.mu.Unlock()
		return cached
	}
	gen := s.gen
	s.mu.Unlock()

	accounts := s.accounts()
	transactions := s.transactions()
	income, expense := TotalsByType(transactions)
	summary := Summary{
		TotalBalance:     TotalBalance(accounts),
		TotalIncome:      income,
		TotalExpense:     expense,
		AccountCount:     len(accounts),
		TransactionCount: len(transactions),
	}

	s.mu.Lock()
	if s.gen == gen {
		s.summary = &summary
	}
	s.mu.Unlock()
	return summary
}

func (s *dashboardService) CategoryDistribution() []CategorySlice {
	return CategoryDistribution(s.categories(), s.transactions())
}

func (s *dashboardService) AccountSplit() []AccountFlow {
	return AccountSplit(s.accounts(), s.transactions())
}

func (s *dashboardService) MonthlySeries(year int) []MonthPoint {
	return MonthlySeries(s.transactions(), year)
}

func (s *dashboardService) BudgetUsage() []BudgetUsage {
	return ComputeBudgetUsage(s.categories(), s.transactions())
}

func (s *dashboardService) PendingItems(now time.Time) []models.PendingItem {
	return ProjectPending(s.events(), now)
}
