package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/middleware"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/booking"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// BookingHandler exposes the scheduling core over HTTP.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetBookedSlots returns the occupied slots for a technician, either for a
// single date (?date=2006-01-02) or a whole month (?month=2006-01), so the
// wizard can grey out taken times and mark fully booked days.
func (h *BookingHandler) GetBookedSlots(c *gin.Context) {
	technicianID := c.Query("technician_id")

	var from, to string
	switch {
	case c.Query("date") != "":
		date := c.Query("date")
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected format "+models.DateLayout)
			return
		}
		from, to = date, date
	case c.Query("month") != "":
		month, err := time.Parse("2006-01", c.Query("month"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid month", "expected format 2006-01")
			return
		}
		from = month.Format(models.DateLayout)
		to = month.AddDate(0, 1, -1).Format(models.DateLayout)
	default:
		utils.JSONError(c, http.StatusBadRequest, "missing range", "provide either date or month")
		return
	}

	booked := h.Svc.BookedSlots(c.Request.Context(), technicianID, from, to)
	c.JSON(http.StatusOK, gin.H{
		"booked":       booked,
		"fully_booked": h.Svc.FullyBookedDates(booked),
	})
}

// CreateAppointment commits a new appointment for the authenticated customer.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.CustomerID = middleware.CustomerID(c)

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// RescheduleAppointment moves an existing appointment to a new slot.
func (h *BookingHandler) RescheduleAppointment(c *gin.Context) {
	var input struct {
		TechnicianID string `json:"technician_id"`
		Date         string `json:"appointment_date"`
		Time         string `json:"appointment_time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.Reschedule(c.Request.Context(), middleware.CustomerID(c), c.Param("id"),
		input.TechnicianID, input.Date, input.Time)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelAppointment cancels the customer's appointment, freeing its slot.
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	appt, err := h.Svc.Cancel(c.Request.Context(), middleware.CustomerID(c), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// respondBookingError maps the booking error taxonomy onto HTTP responses.
// SlotUnavailable tells the client to refresh availability and send the user
// back to the time step; it is never retried server-side.
func respondBookingError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	var serr *booking.SlotUnavailableError
	switch {
	case errors.Is(err, booking.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.As(err, &serr):
		c.JSON(http.StatusConflict, gin.H{
			"error":                "This time slot is no longer available. Please pick a new time.",
			"refresh_availability": true,
			"technician_id":        serr.TechnicianID,
			"appointment_date":     serr.Date,
		})
	case errors.Is(err, appointmentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", "Something went wrong. Please try again.")
	}
}
