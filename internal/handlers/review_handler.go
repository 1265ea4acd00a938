package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/httpresp"
	"github.com/barbapp/booking-api/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// Rating is deliberately unbounded; the store takes whatever the client
// sends. Review failures map to 500 across the board, the one entity whose
// routes have no 400 path.
type ReviewRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	BarberID   uint   `json:"barber_id" binding:"required"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []models.Review
	if err := h.db.Order("id ASC").Find(&reviews).Error; err != nil {
		slog.Error("listing reviews", "err", err)
		httperr.Internal(c, "Internal server error")
		return
	}

	if len(reviews) == 0 {
		httperr.NotFound(c, "No reviews found")
		return
	}

	httpresp.OK(c, reviews)
}

func (h *ReviewHandler) GetOne(c *gin.Context) {
	id := c.Param("id")

	var r models.Review
	if err := h.db.Where("id = ?", id).First(&r).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Review not found")
			return
		}
		slog.Error("fetching review", "id", id, "err", err)
		httperr.Internal(c, "Internal server error")
		return
	}

	httpresp.OK(c, r)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "Internal Error")
		return
	}

	r := models.Review{
		CustomerID: req.CustomerID,
		BarberID:   req.BarberID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	if err := h.db.Create(&r).Error; err != nil {
		slog.Error("creating review", "err", err)
		httperr.Internal(c, "Internal Error")
		return
	}

	httpresp.Created(c, r)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var r models.Review
	if err := h.db.Where("id = ?", id).First(&r).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Review not found")
			return
		}
		slog.Error("fetching review", "id", id, "err", err)
		httperr.Internal(c, "Internal Error")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Internal(c, "Internal Error")
		return
	}

	r.CustomerID = req.CustomerID
	r.BarberID = req.BarberID
	r.Rating = req.Rating
	r.ReviewText = req.ReviewText

	if err := h.db.Save(&r).Error; err != nil {
		slog.Error("updating review", "id", id, "err", err)
		httperr.Internal(c, "Internal Error")
		return
	}

	httpresp.OK(c, r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var r models.Review
	if err := h.db.Where("id = ?", id).First(&r).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Error deleting review")
			return
		}
		slog.Error("fetching review for delete", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	if err := h.db.Delete(&r).Error; err != nil {
		slog.Error("deleting review", "id", id, "err", err)
		httperr.Internal(c, "Internal Server Error")
		return
	}

	httpresp.OK(c, r)
}

// ListByBarber returns every review left for one barber.
func (h *ReviewHandler) ListByBarber(c *gin.Context) {
	barberID := c.Param("barberId")

	var reviews []models.Review
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		slog.Error("listing reviews for barber", "barber_id", barberID, "err", err)
		httperr.Internal(c, "Internal server error")
		return
	}

	if len(reviews) == 0 {
		httperr.NotFound(c, "No reviews found")
		return
	}

	httpresp.OK(c, reviews)
}
