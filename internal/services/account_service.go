package services

import (
	"strings"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/store"
	"financafacil/internal/uuid"
)

// accountService handles account-related business logic.
type accountService struct {
	store *store.Store
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(s *store.Store) AccountServicer {
	return &accountService{store: s}
}

func (s *accountService) accounts() []models.Account {
	return store.Get(s.store, models.KeyAccounts, models.DefaultAccounts())
}

func (s *accountService) transactions() []models.Transaction {
	return store.Get(s.store, models.KeyTransactions, models.DefaultTransactions())
}

// CreateAccount validates the draft, assigns a fresh id, and appends it to
// the stored collection.
func (s *accountService) CreateAccount(name string, accountType models.AccountType, balance float64, color string, closeDate *string) (*models.Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	account := models.Account{
		ID:        uuid.New(),
		Name:      name,
		Balance:   balance,
		Type:      accountType,
		Color:     color,
		CloseDate: closeDate,
	}
	if account.Type != models.AccountTypeCredit {
		// Billing-cycle close dates only make sense for credit accounts.
		account.CloseDate = nil
	}

	store.Set(s.store, models.KeyAccounts, append(s.accounts(), account))
	return &account, nil
}

// GetAccounts returns the full account collection.
func (s *accountService) GetAccounts() []models.Account {
	return s.accounts()
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(id string) (*models.Account, error) {
	for _, account := range s.accounts() {
		if account.ID == id {
			return &account, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

// UpdateAccount replaces the account with the given id by the patched value.
func (s *accountService) UpdateAccount(id, name string, accountType models.AccountType, balance float64, color string, closeDate *string) (*models.Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	accounts := s.accounts()
	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}

		updated := models.Account{
			ID:        id,
			Name:      name,
			Balance:   balance,
			Type:      accountType,
			Color:     color,
			CloseDate: closeDate,
		}
		if updated.Type != models.AccountTypeCredit {
			updated.CloseDate = nil
		}

		accounts[i] = updated
		store.Set(s.store, models.KeyAccounts, accounts)
		return &updated, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

// DeleteAccount removes the account with the given id unless a transaction
// still references it, in which case the collection is left unchanged.
func (s *accountService) DeleteAccount(id string) error {
	accounts := s.accounts()
	idx := -1
	for i := range accounts {
		if accounts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrAccountNotFound
	}

	for _, tx := range s.transactions() {
		if tx.AccountID == id {
			return apperrors.ErrAccountInUse
		}
	}

	store.Set(s.store, models.KeyAccounts, append(accounts[:idx], accounts[idx+1:]...))
	return nil
}
