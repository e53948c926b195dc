package services

import (
	"time"

	"financafacil/internal/models"
)

// Summary is the headline figure set shown on the dashboard. The balance
// is the sum of account balances and is independent of the transaction
// totals; the two are reconciled manually by the user.
type Summary struct {
	TotalBalance     float64 `json:"totalBalance"`
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpense     float64 `json:"totalExpense"`
	AccountCount     int     `json:"accountCount"`
	TransactionCount int     `json:"transactionCount"`
}

// CategorySlice is one wedge of the expense-by-category distribution.
type CategorySlice struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Value      float64 `json:"value"`
}

// AccountFlow is the per-account income/expense breakdown.
type AccountFlow struct {
	AccountID string  `json:"accountId"`
	Name      string  `json:"name"`
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
}

// MonthPoint is one month of the yearly income/expense series.
type MonthPoint struct {
	Month   time.Month `json:"month"`
	Income  float64    `json:"income"`
	Expense float64    `json:"expense"`
}

// BudgetUsage tracks spending against a category's monthly budget.
type BudgetUsage struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// TotalsByType sums transaction amounts per direction.
func TotalsByType(transactions []models.Transaction) (income, expense float64) {
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			income += tx.Amount
		case models.TransactionTypeExpense:
			expense += tx.Amount
		}
	}
	return income, expense
}

// TotalBalance sums account balances, negative ones included.
func TotalBalance(accounts []models.Account) float64 {
	var total float64
	for _, account := range accounts {
		total += account.Balance
	}
	return total
}

// CategoryDistribution sums expense transactions per category. Categories
// with no expense activity are excluded so empty wedges never render.
// Slices follow the category collection's order.
func CategoryDistribution(categories []models.Category, transactions []models.Transaction) []CategorySlice {
	sums := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeExpense {
			sums[tx.Category] += tx.Amount
		}
	}

	slices := make([]CategorySlice, 0, len(categories))
	for _, category := range categories {
		value, ok := sums[category.ID]
		if !ok || value == 0 {
			continue
		}
		slices = append(slices, CategorySlice{
			CategoryID: category.ID,
			Name:       category.Name,
			Color:      category.Color,
			Value:      value,
		})
	}
	return slices
}

// AccountSplit computes income and expense totals per account, in the
// account collection's order. Accounts without activity still appear
// with zero flows.
func AccountSplit(accounts []models.Account, transactions []models.Transaction) []AccountFlow {
	flows := make([]AccountFlow, 0, len(accounts))
	index := make(map[string]int, len(accounts))
	for _, account := range accounts {
		index[account.ID] = len(flows)
		flows = append(flows, AccountFlow{AccountID: account.ID, Name: account.Name})
	}

	for _, tx := range transactions {
		i, ok := index[tx.AccountID]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			flows[i].Income += tx.Amount
		case models.TransactionTypeExpense:
			flows[i].Expense += tx.Amount
		}
	}
	return flows
}

// MonthlySeries buckets a year's transactions by calendar month. The
// result always holds twelve points, January through December;
// transactions outside the year or with unparseable dates contribute
// nothing.
func MonthlySeries(transactions []models.Transaction, year int) []MonthPoint {
	points := make([]MonthPoint, 12)
	for i := range points {
		points[i].Month = time.Month(i + 1)
	}

	for _, tx := range transactions {
		date, err := time.ParseInLocation("2006-01-02", tx.Date, time.UTC)
		if err != nil || date.Year() != year {
			continue
		}
		point := &points[int(date.Month())-1]
		switch tx.Type {
		case models.TransactionTypeIncome:
			point.Income += tx.Amount
		case models.TransactionTypeExpense:
			point.Expense += tx.Amount
		}
	}
	return points
}

// ComputeBudgetUsage reports spending against each budgeted category.
// Categories without a budget are skipped. Percentage is clamped only at
// zero budgets, where it is reported as 0 to avoid division noise.
func ComputeBudgetUsage(categories []models.Category, transactions []models.Transaction) []BudgetUsage {
	sums := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeExpense {
			sums[tx.Category] += tx.Amount
		}
	}

	usage := make([]BudgetUsage, 0, len(categories))
	for _, category := range categories {
		if category.Budget == nil {
			continue
		}
		budget := *category.Budget
		spent := sums[category.ID]
		entry := BudgetUsage{
			CategoryID: category.ID,
			Name:       category.Name,
			Budget:     budget,
			Spent:      spent,
			Remaining:  budget - spent,
		}
		if budget > 0 {
			entry.Percentage = spent / budget * 100
		}
		usage = append(usage, entry)
	}
	return usage
}
