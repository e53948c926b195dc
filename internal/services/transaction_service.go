package services

import (
	"strings"
	"time"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/store"
	"financafacil/internal/uuid"
)

// TransactionFilter narrows the transaction listing. Zero values match
// everything.
type TransactionFilter struct {
	Type      models.TransactionType
	Category  string
	AccountID string
}

// transactionService handles transaction-related business logic.
type transactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s *store.Store) TransactionServicer {
	return &transactionService{store: s}
}

func (s *transactionService) transactions() []models.Transaction {
	return store.Get(s.store, models.KeyTransactions, models.DefaultTransactions())
}

func validateTransaction(description string, amount float64, date string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction description is required")
	}
	if amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be in yyyy-MM-dd form")
	}
	return nil
}

// CreateTransaction validates the draft, assigns a fresh id, and appends
// it to the stored collection. Account and category references are not
// checked for existence; agreement between transaction type and category
// type is advisory.
func (s *transactionService) CreateTransaction(description string, amount float64, date, categoryID string, transactionType models.TransactionType, accountID string) (*models.Transaction, error) {
	if err := validateTransaction(description, amount, date); err != nil {
		return nil, err
	}

	tx := models.Transaction{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Date:        date,
		Category:    categoryID,
		Type:        transactionType,
		AccountID:   accountID,
	}

	store.Set(s.store, models.KeyTransactions, append(s.transactions(), tx))
	return &tx, nil
}

// GetTransactions returns the transactions matching the filter.
func (s *transactionService) GetTransactions(filter TransactionFilter) []models.Transaction {
	all := s.transactions()
	matched := make([]models.Transaction, 0, len(all))
	for _, tx := range all {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}
		if filter.AccountID != "" && tx.AccountID != filter.AccountID {
			continue
		}
		matched = append(matched, tx)
	}
	return matched
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	for _, tx := range s.transactions() {
		if tx.ID == id {
			return &tx, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

// UpdateTransaction replaces the transaction with the given id by the
// patched value.
func (s *transactionService) UpdateTransaction(id, description string, amount float64, date, categoryID string, transactionType models.TransactionType, accountID string) (*models.Transaction, error) {
	if err := validateTransaction(description, amount, date); err != nil {
		return nil, err
	}

	transactions := s.transactions()
	for i := range transactions {
		if transactions[i].ID != id {
			continue
		}

		updated := models.Transaction{
			ID:          id,
			Description: description,
			Amount:      amount,
			Date:        date,
			Category:    categoryID,
			Type:        transactionType,
			AccountID:   accountID,
		}
		transactions[i] = updated
		store.Set(s.store, models.KeyTransactions, transactions)
		return &updated, nil
	}
	return nil, apperrors.ErrTransactionNotFound
}

// DeleteTransaction removes the transaction with the given id. No
// referential guard applies.
func (s *transactionService) DeleteTransaction(id string) error {
	transactions := s.transactions()
	for i := range transactions {
		if transactions[i].ID == id {
			store.Set(s.store, models.KeyTransactions, append(transactions[:i], transactions[i+1:]...))
			return nil
		}
	}
	return apperrors.ErrTransactionNotFound
}
