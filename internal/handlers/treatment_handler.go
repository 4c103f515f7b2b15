package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/httpresp"
	"github.com/noursalon/salon-scheduler/internal/models"
)

type TreatmentHandler struct {
	db *gorm.DB
}

func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTreatmentRequest struct {
	NameAr          string  `json:"name_ar" binding:"required"`
	NameHe          string  `json:"name_he" binding:"required"`
	NameEn          string  `json:"name_en" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

type UpdateTreatmentRequest struct {
	NameAr          *string  `json:"name_ar"`
	NameHe          *string  `json:"name_he"`
	NameEn          *string  `json:"name_en"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	IsActive        *bool    `json:"is_active"`
}

// ======================================================
// HANDLERS
// ======================================================

// ListPublic returns active treatments only, for the booking flow.
func (h *TreatmentHandler) ListPublic(c *gin.Context) {
	var treatments []models.Treatment
	if err := h.db.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Could not load treatments.")
		return
	}
	httpresp.OK(c, treatments)
}

// ListAdmin returns everything, inactive included.
func (h *TreatmentHandler) ListAdmin(c *gin.Context) {
	var treatments []models.Treatment
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Could not load treatments.")
		return
	}
	httpresp.List(c, treatments)
}

func (h *TreatmentHandler) Get(c *gin.Context) {
	var treatment models.Treatment
	if err := h.db.WithContext(c.Request.Context()).
		First(&treatment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_treatment", "Could not load treatment.")
		return
	}
	httpresp.OK(c, treatment)
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	treatment := models.Treatment{
		NameAr:          req.NameAr,
		NameHe:          req.NameHe,
		NameEn:          req.NameEn,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        active,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_treatment", "Could not create treatment.")
		return
	}

	httpresp.Created(c, treatment)
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var treatment models.Treatment
	if err := h.db.WithContext(c.Request.Context()).
		First(&treatment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_treatment", "Could not load treatment.")
		return
	}

	if req.NameAr != nil {
		treatment.NameAr = *req.NameAr
	}
	if req.NameHe != nil {
		treatment.NameHe = *req.NameHe
	}
	if req.NameEn != nil {
		treatment.NameEn = *req.NameEn
	}
	if req.DurationMinutes != nil {
		treatment.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		treatment.Price = *req.Price
	}
	if req.IsActive != nil {
		treatment.IsActive = *req.IsActive
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_treatment", "Could not update treatment.")
		return
	}

	httpresp.OK(c, treatment)
}

// Delete deactivates instead of removing the row: historical appointments
// reference treatments and must keep resolving.
func (h *TreatmentHandler) Delete(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Treatment{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_treatment", "Could not delete treatment.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Treatment deactivated successfully"})
}
