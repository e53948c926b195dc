package services

import (
	"time"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/store"
)

// ReportPeriod selects the date window of a report.
type ReportPeriod string

const (
	PeriodMonth   ReportPeriod = "month"
	PeriodQuarter ReportPeriod = "quarter"
	PeriodYear    ReportPeriod = "year"
	PeriodCustom  ReportPeriod = "custom"
)

// ReportOptions narrows a report to a period and optional dimensions.
// From/To are only consulted for the custom period.
type ReportOptions struct {
	Period   ReportPeriod
	From     string
	To       string
	Type     models.TransactionType
	Category string
	Account  string
}

// Report is a period-filtered view over the transaction collection with
// precomputed totals and breakdowns.
type Report struct {
	From         string               `json:"from"`
	To           string               `json:"to"`
	TotalIncome  float64              `json:"totalIncome"`
	TotalExpense float64              `json:"totalExpense"`
	Net          float64              `json:"net"`
	ByCategory   []CategorySlice      `json:"byCategory"`
	ByAccount    []AccountFlow        `json:"byAccount"`
	Transactions []models.Transaction `json:"transactions"`
}

type reportService struct {
	store *store.Store
}

// NewReportService creates a report service over the store.
func NewReportService(s *store.Store) ReportServicer {
	return &reportService{store: s}
}

// resolveWindow turns a period into an inclusive [from, to] date window
// anchored on now. Quarters follow the calendar (Jan-Mar, Apr-Jun, ...).
func resolveWindow(opts ReportOptions, now time.Time) (time.Time, time.Time, error) {
	today := dateOnly(now)

	switch opts.Period {
	case PeriodMonth:
		from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		return from, to, nil
	case PeriodQuarter:
		quarterStart := time.Month((int(today.Month())-1)/3*3 + 1)
		from := time.Date(today.Year(), quarterStart, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 3, -1)
		return from, to, nil
	case PeriodYear:
		from := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return from, to, nil
	case PeriodCustom:
		from, err := time.ParseInLocation("2006-01-02", opts.From, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "invalid 'from' date, expected YYYY-MM-DD")
		}
		to, err := time.ParseInLocation("2006-01-02", opts.To, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "invalid 'to' date, expected YYYY-MM-DD")
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "'to' must not precede 'from'")
		}
		return from, to, nil
	default:
		return time.Time{}, time.Time{}, apperrors.ErrInvalidPeriod
	}
}

func matchesDimensions(tx models.Transaction, opts ReportOptions) bool {
	if opts.Type != "" && tx.Type != opts.Type {
		return false
	}
	if opts.Category != "" && tx.Category != opts.Category {
		return false
	}
	if opts.Account != "" && tx.AccountID != opts.Account {
		return false
	}
	return true
}

// Build filters the transaction collection down to the resolved window
// and dimensions, then aggregates the survivors. Transactions with
// unparseable dates are excluded from reports.
func (s *reportService) Build(opts ReportOptions, now time.Time) (*Report, error) {
	from, to, err := resolveWindow(opts, now)
	if err != nil {
		return nil, err
	}

	all := store.Get(s.store, models.KeyTransactions, models.DefaultTransactions())

	filtered := make([]models.Transaction, 0, len(all))
	for _, tx := range all {
		date, err := time.ParseInLocation("2006-01-02", tx.Date, time.UTC)
		if err != nil {
			continue
		}
		if date.Before(from) || date.After(to) {
			continue
		}
		if !matchesDimensions(tx, opts) {
			continue
		}
		filtered = append(filtered, tx)
	}

	income, expense := TotalsByType(filtered)
	categories := store.Get(s.store, models.KeyCategories, models.DefaultCategories())
	accounts := store.Get(s.store, models.KeyAccounts, models.DefaultAccounts())

	return &Report{
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income - expense,
		ByCategory:   CategoryDistribution(categories, filtered),
		ByAccount:    AccountSplit(accounts, filtered),
		Transactions: filtered,
	}, nil
}
