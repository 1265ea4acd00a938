package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/httpresp"
	"github.com/barbapp/booking-api/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *ScheduleHandler) List(c *gin.Context) {
	var schedules []models.BarberSchedule
	if err := h.db.Order("id ASC").Find(&schedules).Error; err != nil {
		slog.Error("listing schedules", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if len(schedules) == 0 {
		httperr.NotFound(c, "No schedule found")
		return
	}

	httpresp.OK(c, schedules)
}

func (h *ScheduleHandler) GetOne(c *gin.Context) {
	id := c.Param("id")

	var s models.BarberSchedule
	if err := h.db.Where("id = ?", id).First(&s).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "schedule not found")
			return
		}
		slog.Error("fetching schedule", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Cannot create schedule")
		return
	}

	s := models.BarberSchedule{
		BarberID:  req.BarberID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&s).Error; err != nil {
		slog.Error("creating schedule", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.Created(c, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var s models.BarberSchedule
	if err := h.db.Where("id = ?", id).First(&s).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "schedule not found")
			return
		}
		slog.Error("fetching schedule", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "Internal Server Error")
		return
	}

	s.BarberID = req.BarberID
	s.DayOfWeek = req.DayOfWeek
	s.StartTime = req.StartTime
	s.EndTime = req.EndTime

	if err := h.db.Save(&s).Error; err != nil {
		slog.Error("updating schedule", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var s models.BarberSchedule
	if err := h.db.Where("id = ?", id).First(&s).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Error deleting schedule")
			return
		}
		slog.Error("fetching schedule for delete", "id", id, "err", err)
		httperr.Internal(c, "Internal server Error")
		return
	}

	if err := h.db.Delete(&s).Error; err != nil {
		slog.Error("deleting schedule", "id", id, "err", err)
		httperr.Internal(c, "Internal server Error")
		return
	}

	httpresp.OK(c, s)
}
