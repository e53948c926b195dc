package services

import (
	"strings"
	"time"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/store"
	"financafacil/internal/uuid"
)

// calendarService handles calendar event business logic.
type calendarService struct {
	store *store.Store
}

// NewCalendarService creates a new CalendarServicer.
func NewCalendarService(s *store.Store) CalendarServicer {
	return &calendarService{store: s}
}

func (s *calendarService) events() []models.CalendarEvent {
	return store.Get(s.store, models.KeyCalendarEvents, models.DefaultCalendarEvents())
}

func validateEvent(title, date string, amount float64) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "event title is required")
	}
	if amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be in yyyy-MM-dd form")
	}
	return nil
}

// CreateEvent validates the draft, assigns a fresh id, and appends it to
// the stored collection. The date is the anchor occurrence; recurrence is
// evaluated on read.
func (s *calendarService) CreateEvent(title, date string, amount float64, eventType models.EventType, recurrence models.Recurrence, description string) (*models.CalendarEvent, error) {
	if err := validateEvent(title, date, amount); err != nil {
		return nil, err
	}

	event := models.CalendarEvent{
		ID:          uuid.New(),
		Title:       title,
		Date:        date,
		Amount:      amount,
		Type:        eventType,
		Recurrence:  recurrence,
		Description: description,
	}

	store.Set(s.store, models.KeyCalendarEvents, append(s.events(), event))
	return &event, nil
}

// GetEvents returns the full calendar event collection.
func (s *calendarService) GetEvents() []models.CalendarEvent {
	return s.events()
}

// GetEventByID retrieves a single calendar event.
func (s *calendarService) GetEventByID(id string) (*models.CalendarEvent, error) {
	for _, event := range s.events() {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

// UpdateEvent replaces the event with the given id by the patched value.
// Marked paid dates survive the edit.
func (s *calendarService) UpdateEvent(id, title, date string, amount float64, eventType models.EventType, recurrence models.Recurrence, description string) (*models.CalendarEvent, error) {
	if err := validateEvent(title, date, amount); err != nil {
		return nil, err
	}

	events := s.events()
	for i := range events {
		if events[i].ID != id {
			continue
		}

		updated := models.CalendarEvent{
			ID:          id,
			Title:       title,
			Date:        date,
			Amount:      amount,
			Type:        eventType,
			Recurrence:  recurrence,
			Description: description,
			PaidDates:   events[i].PaidDates,
		}
		events[i] = updated
		store.Set(s.store, models.KeyCalendarEvents, events)
		return &updated, nil
	}
	return nil, apperrors.ErrEventNotFound
}

// DeleteEvent removes the event with the given id. Calendar events carry
// no referential constraints to other entities.
func (s *calendarService) DeleteEvent(id string) error {
	events := s.events()
	for i := range events {
		if events[i].ID == id {
			store.Set(s.store, models.KeyCalendarEvents, append(events[:i], events[i+1:]...))
			return nil
		}
	}
	return apperrors.ErrEventNotFound
}

// MarkPaid records that the event's current-cycle occurrence was paid on
// the given day. Unlike the derived pending flag, the mark is persisted
// with the event and survives recomputation.
func (s *calendarService) MarkPaid(id string, now time.Time) (*models.CalendarEvent, error) {
	day := now.Format("2006-01-02")

	events := s.events()
	for i := range events {
		if events[i].ID != id {
			continue
		}

		already := false
		for _, paid := range events[i].PaidDates {
			if paid == day {
				already = true
				break
			}
		}
		if !already {
			events[i].PaidDates = append(events[i].PaidDates, day)
			store.Set(s.store, models.KeyCalendarEvents, events)
		}
		return &events[i], nil
	}
	return nil, apperrors.ErrEventNotFound
}
