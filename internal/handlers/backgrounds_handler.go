package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/httpresp"
	"github.com/noursalon/salon-scheduler/internal/logger"
	"github.com/noursalon/salon-scheduler/internal/media"
	"github.com/noursalon/salon-scheduler/internal/models"
)

type BackgroundsHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewBackgroundsHandler(db *gorm.DB, uploader *media.Uploader) *BackgroundsHandler {
	return &BackgroundsHandler{db: db, uploader: uploader}
}

func (h *BackgroundsHandler) List(c *gin.Context) {
	var backgrounds []models.Background
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&backgrounds).Error; err != nil {
		httperr.Internal(c, "failed_to_list_backgrounds", "Could not load backgrounds.")
		return
	}
	httpresp.List(c, backgrounds)
}

func (h *BackgroundsHandler) Active(c *gin.Context) {
	var bg models.Background
	err := h.db.WithContext(c.Request.Context()).
		First(&bg, "is_active = ?", true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.OK(c, nil)
			return
		}
		httperr.Internal(c, "failed_to_get_background", "Could not load background.")
		return
	}
	httpresp.OK(c, bg)
}

func (h *BackgroundsHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "media_storage_unavailable", "Image storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Expected multipart field 'image'.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_image", "Could not read uploaded file.")
		return
	}
	defer file.Close()

	url, publicID, err := h.uploader.UploadBackground(c.Request.Context(), file)
	if err != nil {
		logger.Get().Error("background upload failed", zap.Error(err))
		httperr.Internal(c, "failed_to_upload", "Could not upload image.")
		return
	}

	bg := models.Background{URL: url, PublicID: publicID}
	if err := h.db.WithContext(c.Request.Context()).Create(&bg).Error; err != nil {
		httperr.Internal(c, "failed_to_save_background", "Could not save background.")
		return
	}

	httpresp.Created(c, bg)
}

// Activate marks one background active and all others inactive.
func (h *BackgroundsHandler) Activate(c *gin.Context) {
	id := c.Param("id")

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Background{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Background{}).
			Where("id = ?", id).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("background_not_found")
		}
		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, "background_not_found") {
			httperr.NotFound(c, "background_not_found", "Background not found.")
			return
		}
		httperr.Internal(c, "failed_to_activate", "Could not activate background.")
		return
	}

	var bg models.Background
	h.db.First(&bg, "id = ?", id)
	httpresp.OK(c, bg)
}

func (h *BackgroundsHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var bg models.Background
	if err := h.db.WithContext(c.Request.Context()).
		First(&bg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "background_not_found", "Background not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_background", "Could not load background.")
		return
	}

	// Remote cleanup is best-effort; the row is the source of truth.
	if h.uploader != nil {
		if err := h.uploader.Destroy(c.Request.Context(), bg.PublicID); err != nil {
			logger.Get().Warn("cloudinary destroy failed",
				zap.String("public_id", bg.PublicID),
				zap.Error(err),
			)
		}
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&bg).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_background", "Could not delete background.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Background deleted successfully"})
}
