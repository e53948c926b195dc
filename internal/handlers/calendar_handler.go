package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/pagination"
	"financafacil/internal/services"
)

// CalendarHandler handles financial calendar requests.
type CalendarHandler struct {
	calendarService services.CalendarServicer
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(calendarService services.CalendarServicer) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// CalendarEventRequest represents the request payload for creating or
// updating a calendar event.
type CalendarEventRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Date        string  `json:"date" binding:"required,iso_date"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Type        string  `json:"type" binding:"required,event_type"`
	Recurrence  string  `json:"recurrence" binding:"required,recurrence"`
	Description string  `json:"description" binding:"max=500"`
}

// CreateEvent handles the creation of a new calendar event
// @Summary     Create a calendar event
// @Description Create a new financial calendar event with a recurrence rule
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CalendarEventRequest true "Event details"
// @Success     201 {object} models.CalendarEvent "Event created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendar [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	event, err := h.calendarService.CreateEvent(
		req.Title,
		req.Date,
		req.Amount,
		models.EventType(req.Type),
		models.Recurrence(req.Recurrence),
		req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// GetEvents handles the retrieval of calendar events
// @Summary     Get calendar events
// @Description Get a paginated list of calendar events
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CalendarEvent] "Paginated events"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendar [get]
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result := pagination.Paginate(h.calendarService.GetEvents(), page)
	c.JSON(http.StatusOK, result)
}

// GetEventByID handles the retrieval of a specific calendar event
// @Summary     Get event by ID
// @Description Get a specific calendar event by ID
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Event ID"
// @Success     200 {object} models.CalendarEvent "Event details"
// @Failure     400 {object} ErrorResponse "Invalid event ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendar/{id} [get]
func (h *CalendarHandler) GetEventByID(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.calendarService.GetEventByID(eventID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// UpdateEvent handles updating a calendar event.
// @Summary     Update event
// @Description Update an existing calendar event. Recorded payments are preserved.
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Event ID"
// @Param       request body CalendarEventRequest true "Updated event details"
// @Success     200 {object} models.CalendarEvent "Updated event"
// @Failure     400 {object} ErrorResponse "Invalid input or event ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendar/{id} [put]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	event, err := h.calendarService.UpdateEvent(
		eventID,
		req.Title,
		req.Date,
		req.Amount,
		models.EventType(req.Type),
		models.Recurrence(req.Recurrence),
		req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// DeleteEvent handles deleting a calendar event.
// @Summary     Delete event
// @Description Delete a calendar event
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Event ID"
// @Success     204 "Event deleted"
// @Failure     400 {object} ErrorResponse "Invalid event ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendar/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.calendarService.DeleteEvent(eventID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkPaid handles recording a payment against an event's current cycle.
// @Summary     Mark event as paid
// @Description Record today's date as a payment for the event's current cycle
// @Tags        calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Event ID"
// @Success     200 {object} models.CalendarEvent "Updated event"
// @Failure     400 {object} ErrorResponse "Invalid event ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calendar/{id}/paid [post]
func (h *CalendarHandler) MarkPaid(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.calendarService.MarkPaid(eventID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}
