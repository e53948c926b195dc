package services

import (
	"time"

	"financafacil/internal/models"
)

// The pending projection derives one PendingItem per calendar event by
// deciding whether the event's current-cycle occurrence has already
// elapsed relative to "now". The recurrence heuristics reproduce the
// application's original behavior, which compares raw day/month/year
// components instead of projecting the anchor date into the current
// period; they are intentionally not calendar-accurate (see DESIGN.md).

// paidChecker decides whether an event's current-cycle occurrence is
// considered already paid as of now. One implementation per recurrence.
type paidChecker interface {
	IsPaid(eventDate, now time.Time) bool
	CoversCycle(paidDate, now time.Time) bool
}

// onceChecker marks a one-off event paid as soon as its date has passed.
type onceChecker struct{}

func (onceChecker) IsPaid(eventDate, now time.Time) bool {
	return eventDate.Before(now)
}

// CoversCycle reports any recorded payment: a one-off has a single cycle.
func (onceChecker) CoversCycle(_, _ time.Time) bool { return true }

// weeklyChecker compares the day distance against the current weekday
// (Sunday = 0). The modulo keeps the dividend's sign for events anchored
// in the future, matching the original arithmetic.
type weeklyChecker struct{}

func (weeklyChecker) IsPaid(eventDate, now time.Time) bool {
	days := int(now.Sub(eventDate).Hours() / 24)
	return days%7 < int(now.Weekday())
}

func (weeklyChecker) CoversCycle(paidDate, now time.Time) bool {
	since := now.Sub(paidDate)
	return since >= 0 && since < 7*24*time.Hour
}

// monthlyChecker compares the anchor's raw components against today's.
type monthlyChecker struct{}

func (monthlyChecker) IsPaid(eventDate, now time.Time) bool {
	return eventDate.Day() < now.Day() &&
		eventDate.Month() <= now.Month() &&
		eventDate.Year() <= now.Year()
}

func (monthlyChecker) CoversCycle(paidDate, now time.Time) bool {
	return paidDate.Year() == now.Year() && paidDate.Month() == now.Month()
}

var paidCheckers = map[models.Recurrence]paidChecker{
	models.RecurrenceOnce:    onceChecker{},
	models.RecurrenceWeekly:  weeklyChecker{},
	models.RecurrenceMonthly: monthlyChecker{},
}

// dateOnly truncates t to midnight UTC so comparisons ignore time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// pendingType maps an event type onto the pending item classification.
func pendingType(eventType models.EventType) models.PendingItemType {
	switch eventType {
	case models.EventTypeIncome:
		return models.PendingItemTypeIncome
	case models.EventTypeOther:
		return models.PendingItemTypeGoal
	default:
		// expense and invoice are both bills
		return models.PendingItemTypeBill
	}
}

// ProjectPending computes the pending item for every calendar event as of
// now. The result is always 1:1 with the input collection and is fully
// recomputed on every call; nothing is persisted.
func ProjectPending(events []models.CalendarEvent, now time.Time) []models.PendingItem {
	today := dateOnly(now)

	items := make([]models.PendingItem, 0, len(events))
	for _, event := range events {
		item := models.PendingItem{
			ID:      event.ID,
			Title:   event.Title,
			Amount:  event.Amount,
			DueDate: event.Date,
			Type:    pendingType(event.Type),
		}

		eventDate, err := time.ParseInLocation("2006-01-02", event.Date, time.UTC)
		if err != nil {
			// Unparseable anchors stay pending rather than dropping the item.
			items = append(items, item)
			continue
		}

		checker, ok := paidCheckers[event.Recurrence]
		if !ok {
			checker = onceChecker{}
		}

		item.IsPaid = checker.IsPaid(eventDate, today)
		if !item.IsPaid {
			for _, paid := range event.PaidDates {
				paidDate, err := time.ParseInLocation("2006-01-02", paid, time.UTC)
				if err != nil {
					continue
				}
				if checker.CoversCycle(paidDate, today) {
					item.IsPaid = true
					break
				}
			}
		}

		item.IsOverdue = eventDate.Before(today) && !item.IsPaid

		items = append(items, item)
	}
	return items
}
