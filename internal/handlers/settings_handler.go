package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/httpresp"
	"github.com/noursalon/salon-scheduler/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func (h *SettingsHandler) List(c *gin.Context) {
	var settings []models.Setting
	if err := h.db.WithContext(c.Request.Context()).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Could not load settings.")
		return
	}
	httpresp.List(c, settings)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var setting models.Setting
	if err := h.db.WithContext(c.Request.Context()).
		First(&setting, "key = ?", c.Param("key")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "setting_not_found", "Setting not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_setting", "Could not load setting.")
		return
	}
	httpresp.OK(c, setting)
}

// Put upserts the key.
func (h *SettingsHandler) Put(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	setting := models.Setting{
		Key:   c.Param("key"),
		Value: req.Value,
	}

	if err := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error; err != nil {
		httperr.Internal(c, "failed_to_update_setting", "Could not update setting.")
		return
	}

	httpresp.OK(c, setting)
}
