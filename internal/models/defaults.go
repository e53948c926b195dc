package models

// Seed data stored on first access, mirroring the application's original
// starter dataset.

func budget(v float64) *float64 { return &v }

// DefaultAccounts returns the initial account collection.
func DefaultAccounts() []Account {
	return []Account{
		{ID: "1", Name: "Conta Principal", Balance: 5000, Type: AccountTypeBank, Color: "#3B82F6"},
		{ID: "2", Name: "Dinheiro", Balance: 500, Type: AccountTypeCash, Color: "#10B981"},
		{ID: "3", Name: "Cartão de Crédito", Balance: -1500, Type: AccountTypeCredit, Color: "#EF4444"},
	}
}

// DefaultCategories returns the initial category collection.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Salário", Color: "#10B981", Type: CategoryTypeIncome, Budget: budget(5000)},
		{ID: "2", Name: "Alimentação", Color: "#F59E0B", Type: CategoryTypeExpense, Budget: budget(1000)},
		{ID: "3", Name: "Transporte", Color: "#3B82F6", Type: CategoryTypeExpense, Budget: budget(500)},
		{ID: "4", Name: "Moradia", Color: "#8B5CF6", Type: CategoryTypeExpense, Budget: budget(1500)},
		{ID: "5", Name: "Lazer", Color: "#EC4899", Type: CategoryTypeExpense, Budget: budget(300)},
		{ID: "6", Name: "Saúde", Color: "#EF4444", Type: CategoryTypeExpense, Budget: budget(400)},
	}
}

// DefaultTransactions returns the initial transaction collection.
func DefaultTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Description: "Salário", Amount: 5000, Date: "2023-12-05", Category: "1", Type: TransactionTypeIncome, AccountID: "1"},
		{ID: "2", Description: "Supermercado", Amount: 350, Date: "2023-12-10", Category: "2", Type: TransactionTypeExpense, AccountID: "1"},
		{ID: "3", Description: "Gasolina", Amount: 200, Date: "2023-12-12", Category: "3", Type: TransactionTypeExpense, AccountID: "2"},
		{ID: "4", Description: "Aluguel", Amount: 1200, Date: "2023-12-15", Category: "4", Type: TransactionTypeExpense, AccountID: "1"},
	}
}

// DefaultCalendarEvents returns the initial calendar event collection.
func DefaultCalendarEvents() []CalendarEvent {
	return []CalendarEvent{
		{ID: "1", Title: "Pagamento Aluguel", Date: "2023-12-10", Amount: 1200, Type: EventTypeExpense, Recurrence: RecurrenceMonthly, Description: "Pagamento mensal do aluguel"},
		{ID: "2", Title: "Salário", Date: "2023-12-05", Amount: 5000, Type: EventTypeIncome, Recurrence: RecurrenceMonthly, Description: "Salário mensal"},
		{ID: "3", Title: "Fatura Cartão", Date: "2023-12-15", Amount: 1500, Type: EventTypeInvoice, Recurrence: RecurrenceMonthly, Description: "Fatura do cartão de crédito"},
	}
}
