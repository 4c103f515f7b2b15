package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/httpresp"
	"github.com/noursalon/salon-scheduler/internal/models"
	ucAvailability "github.com/noursalon/salon-scheduler/internal/usecase/availability"
)

var dateParamRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type AvailabilityHandler struct {
	db         *gorm.DB
	getDates   *ucAvailability.GetAvailableDates
	getSlots   *ucAvailability.GetAvailableTimeSlots
	createRule *ucAvailability.CreateRule
	deleteRule *ucAvailability.DeleteRule
}

func NewAvailabilityHandler(
	db *gorm.DB,
	getDates *ucAvailability.GetAvailableDates,
	getSlots *ucAvailability.GetAvailableTimeSlots,
	createRule *ucAvailability.CreateRule,
	deleteRule *ucAvailability.DeleteRule,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:         db,
		getDates:   getDates,
		getSlots:   getSlots,
		createRule: createRule,
		deleteRule: deleteRule,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRuleRequest struct {
	SpecificDate        string `json:"specificDate" binding:"required"`
	StartTime           string `json:"startTime" binding:"required"`
	EndTime             string `json:"endTime" binding:"required"`
	SlotIntervalMinutes int    `json:"slotIntervalMinutes" binding:"required,gt=0"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *AvailabilityHandler) Dates(c *gin.Context) {
	dates, err := h.getDates.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_dates", "Could not load available dates.")
		return
	}
	httpresp.OK(c, dates)
}

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	dateStr := c.Query("date")
	if !dateParamRE.MatchString(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	slots, err := h.getSlots.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_resolve_slots", "Could not resolve time slots.")
		return
	}

	httpresp.OK(c, slots)
}

func (h *AvailabilityHandler) ListRules(c *gin.Context) {
	var rules []models.AvailabilityRule
	if err := h.db.WithContext(c.Request.Context()).
		Order("specific_date ASC, start_time ASC").
		Find(&rules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_rules", "Could not load availability rules.")
		return
	}
	httpresp.OK(c, rules)
}

// ======================================================
// ADMIN
// ======================================================

func (h *AvailabilityHandler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rule, err := h.createRule.Execute(c.Request.Context(), ucAvailability.CreateRuleInput{
		SpecificDate:        req.SpecificDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotIntervalMinutes: req.SlotIntervalMinutes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Expected specificDate as YYYY-MM-DD.")
		case httperr.IsBusiness(err, "invalid_start_time"),
			httperr.IsBusiness(err, "invalid_end_time"):
			httperr.BadRequest(c, "invalid_time", "Expected times as HH:MM.")
		case httperr.IsBusiness(err, "start_after_end"):
			httperr.BadRequest(c, "start_after_end", "Start time must be before end time.")
		case httperr.IsBusiness(err, "invalid_interval"):
			httperr.BadRequest(c, "invalid_interval", "Slot interval must be positive.")
		default:
			httperr.Internal(c, "failed_to_create_rule", "Could not create availability rule.")
		}
		return
	}

	httpresp.Created(c, rule)
}

func (h *AvailabilityHandler) DeleteRule(c *gin.Context) {
	id := c.Param("id")

	if err := h.deleteRule.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "rule_not_found") {
			httperr.NotFound(c, "rule_not_found", "Availability rule not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_rule", "Could not delete availability rule.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Availability rule deleted successfully"})
}
