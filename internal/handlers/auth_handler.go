package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/noursalon/salon-scheduler/internal/config"
	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/middleware"
	"github.com/noursalon/salon-scheduler/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type SetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Setup creates the first (and only) admin account. Once any admin exists
// the endpoint refuses.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	if err := h.db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_check_admin", "Could not complete setup.")
		return
	}
	if count > 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not complete setup.")
		return
	}

	admin := models.AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
	}
	if err := h.db.Create(&admin).Error; err != nil {
		httperr.Internal(c, "failed_to_create_admin", "Could not complete setup.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": admin.ID, "email": admin.Email})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var admin models.AdminUser
	if err := h.db.
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&admin).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  admin.ID,
		"role": middleware.RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Could not complete login.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}
