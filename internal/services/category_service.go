package services

import (
	"strings"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/store"
	"financafacil/internal/uuid"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store *store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(s *store.Store) CategoryServicer {
	return &categoryService{store: s}
}

func (s *categoryService) categories() []models.Category {
	return store.Get(s.store, models.KeyCategories, models.DefaultCategories())
}

func (s *categoryService) transactions() []models.Transaction {
	return store.Get(s.store, models.KeyTransactions, models.DefaultTransactions())
}

// CreateCategory validates the draft, assigns a fresh id, and appends it
// to the stored collection.
func (s *categoryService) CreateCategory(name, color string, categoryType models.CategoryType, budget *float64) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if budget != nil && *budget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
	}

	category := models.Category{
		ID:     uuid.New(),
		Name:   name,
		Color:  color,
		Type:   categoryType,
		Budget: budget,
	}

	store.Set(s.store, models.KeyCategories, append(s.categories(), category))
	return &category, nil
}

// GetCategories returns the full category collection.
func (s *categoryService) GetCategories() []models.Category {
	return s.categories()
}

// GetCategoryByID retrieves a single category.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	for _, category := range s.categories() {
		if category.ID == id {
			return &category, nil
		}
	}
	return nil, apperrors.ErrCategoryNotFound
}

// UpdateCategory replaces the category with the given id by the patched
// value. Changing the type does not rewrite the type of transactions
// already tagged with the category; the type agreement between the two is
// advisory.
func (s *categoryService) UpdateCategory(id, name, color string, categoryType models.CategoryType, budget *float64) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if budget != nil && *budget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
	}

	categories := s.categories()
	for i := range categories {
		if categories[i].ID != id {
			continue
		}

		updated := models.Category{
			ID:     id,
			Name:   name,
			Color:  color,
			Type:   categoryType,
			Budget: budget,
		}
		categories[i] = updated
		store.Set(s.store, models.KeyCategories, categories)
		return &updated, nil
	}
	return nil, apperrors.ErrCategoryNotFound
}

// DeleteCategory removes the category with the given id unless a
// transaction still references it, in which case the collection is left
// unchanged.
func (s *categoryService) DeleteCategory(id string) error {
	categories := s.categories()
	idx := -1
	for i := range categories {
		if categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrCategoryNotFound
	}

	for _, tx := range s.transactions() {
		if tx.Category == id {
			return apperrors.ErrCategoryInUse
		}
	}

	store.Set(s.store, models.KeyCategories, append(categories[:idx], categories[idx+1:]...))
	return nil
}
