package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/booking"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// AdminHandler covers the staff dashboard operations that touch scheduling:
// looking up a day's appointments and driving status transitions.
type AdminHandler struct {
	Svc  booking.BookingService
	Repo appointmentRepo.AppointmentRepository
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc booking.BookingService, repo appointmentRepo.AppointmentRepository) *AdminHandler {
	return &AdminHandler{Svc: svc, Repo: repo}
}

// ListAppointments returns appointments for a technician and/or date range.
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	filter := appointmentRepo.Filter{
		TechnicianID: c.Query("technician_id"),
		DateFrom:     c.Query("from"),
		DateTo:       c.Query("to"),
	}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []string{status}
	}

	appts, err := h.Repo.Query(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointmentStatus applies a staff status transition (confirm,
// complete, pay, cancel). Terminal statuses admit no further changes.
func (h *AdminHandler) UpdateAppointmentStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	switch input.Status {
	case models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled, models.StatusPaid:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid status", "unknown status "+input.Status)
		return
	}

	appt, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
