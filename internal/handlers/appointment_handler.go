package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbapp/booking-api/internal/audit"
	domain "github.com/barbapp/booking-api/internal/domain/appointment"
	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/httpresp"
	"github.com/barbapp/booking-api/internal/models"
)

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAppointmentHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{
		db:    db,
		audit: auditDispatcher,
	}
}

// --------- Requests ---------

type AppointmentRequest struct {
	CustomerID      uint   `json:"customer_id" binding:"required"`
	BarberID        uint   `json:"barber_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Status          string `json:"status"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.db.Order("id ASC").Find(&appointments).Error; err != nil {
		slog.Error("listing appointments", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if len(appointments) == 0 {
		httperr.NotFound(c, "No appointments found")
		return
	}

	httpresp.OK(c, appointments)
}

func (h *AppointmentHandler) GetOne(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		slog.Error("fetching appointment", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Cannot create appointment")
		return
	}

	status := req.Status
	if status == "" {
		status = string(domain.StatusScheduled)
	}

	ap := models.Appointment{
		CustomerID:      req.CustomerID,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          status,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		slog.Error("creating appointment", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		slog.Error("fetching appointment", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "Internal Server Error")
		return
	}

	ap.CustomerID = req.CustomerID
	ap.BarberID = req.BarberID
	ap.ServiceID = req.ServiceID
	ap.AppointmentDate = req.AppointmentDate
	ap.AppointmentTime = req.AppointmentTime
	ap.Status = req.Status

	if err := h.db.Save(&ap).Error; err != nil {
		slog.Error("updating appointment", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		slog.Error("fetching appointment for delete", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		slog.Error("deleting appointment", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

// Complete marks an appointment as completed. The status field is free-form
// and there is no state machine here: whatever the current status is, it
// becomes "completed".
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		slog.Error("fetching appointment", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	ap.Status = string(domain.StatusCompleted)

	if err := h.db.Save(&ap).Error; err != nil {
		slog.Error("completing appointment", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}
