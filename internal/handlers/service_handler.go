package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/httpresp"
	"github.com/barbapp/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	BarberID    uint    `json:"barber_id" binding:"required"`
	ServiceName string  `json:"service_name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		slog.Error("listing services", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if len(services) == 0 {
		httperr.NotFound(c, "No services found")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) GetOne(c *gin.Context) {
	id := c.Param("id")

	var s models.Service
	if err := h.db.Where("id = ?", id).First(&s).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		slog.Error("fetching service", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Cannot create service")
		return
	}

	s := models.Service{
		BarberID:    req.BarberID,
		ServiceName: req.ServiceName,
		Price:       req.Price,
	}

	if err := h.db.Create(&s).Error; err != nil {
		slog.Error("creating service", "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var s models.Service
	if err := h.db.Where("id = ?", id).First(&s).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		slog.Error("fetching service", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "Internal Server Error")
		return
	}

	s.BarberID = req.BarberID
	s.ServiceName = req.ServiceName
	s.Price = req.Price

	if err := h.db.Save(&s).Error; err != nil {
		slog.Error("updating service", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var s models.Service
	if err := h.db.Where("id = ?", id).First(&s).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		slog.Error("fetching service for delete", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if err := h.db.Delete(&s).Error; err != nil {
		slog.Error("deleting service", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, s)
}
