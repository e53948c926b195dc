package services

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"financafacil/internal/models"
	"financafacil/internal/testutil"
)

func TestTotalsByType(t *testing.T) {
	transactions := models.DefaultTransactions()

	income, expense := TotalsByType(transactions)

	if income != 5000 {
		t.Errorf("expected income 5000, got %v", income)
	}
	if expense != 1750 {
		t.Errorf("expected expense 1750, got %v", expense)
	}
}

func TestTotalsByType_OrderIndependent(t *testing.T) {
	transactions := models.DefaultTransactions()
	wantIncome, wantExpense := TotalsByType(transactions)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(transactions), func(a, b int) {
			transactions[a], transactions[b] = transactions[b], transactions[a]
		})
		income, expense := TotalsByType(transactions)
		if income != wantIncome || expense != wantExpense {
			t.Fatalf("totals changed under reordering: got %v/%v, want %v/%v", income, expense, wantIncome, wantExpense)
		}
	}
}

func TestCategoryDistribution_OrderIndependent(t *testing.T) {
	categories := models.DefaultCategories()
	transactions := models.DefaultTransactions()
	want := CategoryDistribution(categories, transactions)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(transactions), func(a, b int) {
			transactions[a], transactions[b] = transactions[b], transactions[a]
		})
		if got := CategoryDistribution(categories, transactions); !reflect.DeepEqual(got, want) {
			t.Fatalf("distribution changed under reordering: got %+v, want %+v", got, want)
		}
	}
}

func TestAccountSplit_OrderIndependent(t *testing.T) {
	accounts := models.DefaultAccounts()
	transactions := models.DefaultTransactions()
	want := AccountSplit(accounts, transactions)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(transactions), func(a, b int) {
			transactions[a], transactions[b] = transactions[b], transactions[a]
		})
		if got := AccountSplit(accounts, transactions); !reflect.DeepEqual(got, want) {
			t.Fatalf("flows changed under reordering: got %+v, want %+v", got, want)
		}
	}
}

func TestMonthlySeries_OrderIndependent(t *testing.T) {
	transactions := models.DefaultTransactions()
	want := MonthlySeries(transactions, 2023)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(transactions), func(a, b int) {
			transactions[a], transactions[b] = transactions[b], transactions[a]
		})
		if got := MonthlySeries(transactions, 2023); !reflect.DeepEqual(got, want) {
			t.Fatalf("series changed under reordering: got %+v, want %+v", got, want)
		}
	}
}

func TestTotalBalance(t *testing.T) {
	if got := TotalBalance(models.DefaultAccounts()); got != 4000 {
		t.Errorf("expected balance 4000, got %v", got)
	}
}

func TestCategoryDistribution_ExcludesZeroSums(t *testing.T) {
	categories := models.DefaultCategories()
	transactions := models.DefaultTransactions()

	slices := CategoryDistribution(categories, transactions)

	// Seed expenses touch food, transport, and housing only.
	if len(slices) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(slices))
	}
	for _, s := range slices {
		if s.Value == 0 {
			t.Errorf("category %s has a zero-value slice", s.Name)
		}
	}
}

func TestCategoryDistribution_IgnoresIncome(t *testing.T) {
	categories := []models.Category{{ID: "1", Name: "Salary", Type: models.CategoryTypeIncome}}
	transactions := []models.Transaction{{ID: "t", Amount: 5000, Category: "1", Type: models.TransactionTypeIncome}}

	if slices := CategoryDistribution(categories, transactions); len(slices) != 0 {
		t.Errorf("expected no slices for income-only activity, got %d", len(slices))
	}
}

func TestAccountSplit(t *testing.T) {
	accounts := models.DefaultAccounts()
	transactions := models.DefaultTransactions()

	flows := AccountSplit(accounts, transactions)

	if len(flows) != len(accounts) {
		t.Fatalf("expected %d flows, got %d", len(accounts), len(flows))
	}
	// Account "1" carries the salary plus groceries and rent.
	if flows[0].Income != 5000 {
		t.Errorf("expected income 5000 on first account, got %v", flows[0].Income)
	}
	if flows[0].Expense != 1550 {
		t.Errorf("expected expense 1550 on first account, got %v", flows[0].Expense)
	}
	// The credit card account has no transactions but still appears.
	if flows[2].Income != 0 || flows[2].Expense != 0 {
		t.Errorf("expected zero flows on idle account, got %v/%v", flows[2].Income, flows[2].Expense)
	}
}

func TestMonthlySeries(t *testing.T) {
	points := MonthlySeries(models.DefaultTransactions(), 2023)

	if len(points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(points))
	}
	dec := points[11]
	if dec.Income != 5000 || dec.Expense != 1750 {
		t.Errorf("expected December 5000/1750, got %v/%v", dec.Income, dec.Expense)
	}
	for i := 0; i < 11; i++ {
		if points[i].Income != 0 || points[i].Expense != 0 {
			t.Errorf("month %v should be empty, got %v/%v", points[i].Month, points[i].Income, points[i].Expense)
		}
	}
}

func TestMonthlySeries_ExcludesOtherYears(t *testing.T) {
	points := MonthlySeries(models.DefaultTransactions(), 2024)

	for _, p := range points {
		if p.Income != 0 || p.Expense != 0 {
			t.Fatalf("expected empty series for 2024, got %v/%v in %v", p.Income, p.Expense, p.Month)
		}
	}
}

func TestComputeBudgetUsage(t *testing.T) {
	budget := 1000.0
	categories := []models.Category{
		{ID: "1", Name: "Food", Type: models.CategoryTypeExpense, Budget: &budget},
		{ID: "2", Name: "Misc", Type: models.CategoryTypeExpense},
	}
	transactions := []models.Transaction{
		{ID: "a", Amount: 250, Category: "1", Type: models.TransactionTypeExpense},
		{ID: "b", Amount: 500, Category: "1", Type: models.TransactionTypeExpense},
		{ID: "c", Amount: 100, Category: "2", Type: models.TransactionTypeExpense},
	}

	usage := ComputeBudgetUsage(categories, transactions)

	if len(usage) != 1 {
		t.Fatalf("expected 1 budgeted category, got %d", len(usage))
	}
	entry := usage[0]
	if entry.Spent != 750 {
		t.Errorf("expected spent 750, got %v", entry.Spent)
	}
	if entry.Remaining != 250 {
		t.Errorf("expected remaining 250, got %v", entry.Remaining)
	}
	if entry.Percentage != 75 {
		t.Errorf("expected 75%%, got %v", entry.Percentage)
	}
}

func TestDashboardService_SummarySeedsDefaults(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewDashboardService(s)

	summary := svc.Summary()

	if summary.TotalBalance != 4000 {
		t.Errorf("expected total balance 4000, got %v", summary.TotalBalance)
	}
	if summary.TotalIncome != 5000 {
		t.Errorf("expected total income 5000, got %v", summary.TotalIncome)
	}
	if summary.TotalExpense != 1750 {
		t.Errorf("expected total expense 1750, got %v", summary.TotalExpense)
	}
}

func TestDashboardService_SummaryFirstReadDoesNotBlock(t *testing.T) {
	// Reading an unseeded store writes the defaults back, which fires
	// the invalidation callbacks on the reading goroutine.
	s := testutil.SetupTestStore(t)
	svc := NewDashboardService(s)

	done := make(chan Summary, 1)
	go func() {
		done <- svc.Summary()
	}()

	select {
	case summary := <-done:
		if summary.TotalBalance != 4000 {
			t.Errorf("expected total balance 4000, got %v", summary.TotalBalance)
		}
		if summary.AccountCount != 3 {
			t.Errorf("expected 3 accounts, got %d", summary.AccountCount)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Summary did not return on first read of an unseeded store")
	}

	// A second read serves the memoized value.
	if got := svc.Summary().TotalIncome; got != 5000 {
		t.Errorf("expected total income 5000 on cached read, got %v", got)
	}
}

func TestDashboardService_SummaryInvalidatesOnWrite(t *testing.T) {
	s := testutil.SetupEmptyStore(t)
	svc := NewDashboardService(s)

	if got := svc.Summary().TransactionCount; got != 0 {
		t.Fatalf("expected empty store summary, got %d transactions", got)
	}

	account := testutil.CreateTestAccount(t, s, 100)
	category := testutil.CreateTestCategory(t, s, models.CategoryTypeExpense)
	testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, 40, "2024-05-01", account.ID, category.ID)

	summary := svc.Summary()
	if summary.TransactionCount != 1 {
		t.Errorf("expected 1 transaction after write, got %d", summary.TransactionCount)
	}
	if summary.TotalBalance != 100 {
		t.Errorf("expected balance 100, got %v", summary.TotalBalance)
	}
	if summary.TotalExpense != 40 {
		t.Errorf("expected expense 40, got %v", summary.TotalExpense)
	}
}
