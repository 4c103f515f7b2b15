package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noursalon/salon-scheduler/internal/httperr"
	"github.com/noursalon/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/noursalon/salon-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	cancel   *ucAppointment.CancelAppointment
	list     *ucAppointment.ListAppointments
	upcoming *ucAppointment.ListUpcoming
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	list *ucAppointment.ListAppointments,
	upcoming *ucAppointment.ListUpcoming,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		cancel:   cancel,
		list:     list,
		upcoming: upcoming,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName   string    `json:"customerName" binding:"required"`
	Phone          string    `json:"phone" binding:"required"`
	Notes          string    `json:"notes"`
	TreatmentID    string    `json:"treatmentId" binding:"required,uuid"`
	StartDatetime  time.Time `json:"startDatetime" binding:"required"`
	EndDatetime    time.Time `json:"endDatetime" binding:"required"`
	PriceAtBooking float64   `json:"priceAtBooking" binding:"gte=0"`
	CreatedBy      string    `json:"createdBy" binding:"omitempty,oneof=admin customer"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Notes:          req.Notes,
		TreatmentID:    req.TreatmentID,
		StartDatetime:  req.StartDatetime,
		EndDatetime:    req.EndDatetime,
		PriceAtBooking: req.PriceAtBooking,
		CreatedBy:      req.CreatedBy,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_conflict"):
			// A lost race is an expected outcome; the message must read as
			// "just taken", not as a server fault.
			httperr.Conflict(c, "slot_conflict", "Time slot is no longer available.")
		case httperr.IsBusiness(err, "tx_timeout"):
			httperr.Unavailable(c, "tx_timeout", "Booking timed out, please try again.")
		case httperr.IsBusiness(err, "treatment_not_found"):
			httperr.BadRequest(c, "treatment_not_found", "Treatment not found.")
		case httperr.IsBusiness(err, "invalid_interval"):
			httperr.BadRequest(c, "invalid_interval", "End must be after start.")
		case httperr.IsBusiness(err, "invalid_price"):
			httperr.BadRequest(c, "invalid_price", "Price must be non-negative.")
		case httperr.IsBusiness(err, "invalid_created_by"):
			httperr.BadRequest(c, "invalid_created_by", "createdBy must be admin or customer.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	status := c.Query("status")

	aps, err := h.list.Execute(c.Request.Context(), status)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "status must be booked or canceled.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	aps, err := h.upcoming.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_upcoming", "Could not load upcoming appointments.")
		return
	}
	httpresp.OK(c, aps)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Could not cancel appointment.")
		return
	}

	httpresp.OK(c, ap)
}
