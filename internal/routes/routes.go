package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/noursalon/salon-scheduler/internal/audit"
	"github.com/noursalon/salon-scheduler/internal/cache"
	"github.com/noursalon/salon-scheduler/internal/config"
	"github.com/noursalon/salon-scheduler/internal/handlers"
	infraRepo "github.com/noursalon/salon-scheduler/internal/infra/repository"
	"github.com/noursalon/salon-scheduler/internal/media"
	"github.com/noursalon/salon-scheduler/internal/middleware"
	"github.com/noursalon/salon-scheduler/internal/notify"
	"github.com/noursalon/salon-scheduler/internal/timezone"
	ucAppointment "github.com/noursalon/salon-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/noursalon/salon-scheduler/internal/usecase/availability"
)

type Deps struct {
	DB       *gorm.DB
	Cache    *cache.Cache
	Sender   notify.Sender
	Uploader *media.Uploader
	Loc      *time.Location
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := deps.Loc
	if loc == nil {
		loc = timezone.Location(cfg.BusinessTimezone)
	}

	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB, cfg.BookingTxTimeout)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(deps.Sender, loc)

	// ======================================================
	// USE CASES
	// ======================================================
	getDatesUC := ucAvailability.NewGetAvailableDates(bookingRepo, deps.Cache)
	getSlotsUC := ucAvailability.NewGetAvailableTimeSlots(bookingRepo, deps.Cache, loc)
	createRuleUC := ucAvailability.NewCreateRule(bookingRepo, deps.Cache)
	deleteRuleUC := ucAvailability.NewDeleteRule(bookingRepo, deps.Cache)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		deps.Cache,
		loc,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		deps.Cache,
		loc,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(bookingRepo)
	listUpcomingUC := ucAppointment.NewListUpcoming(bookingRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, cfg)
	availabilityHandler := handlers.NewAvailabilityHandler(
		deps.DB,
		getDatesUC,
		getSlotsUC,
		createRuleUC,
		deleteRuleUC,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		listUpcomingUC,
	)
	treatmentHandler := handlers.NewTreatmentHandler(deps.DB)
	settingsHandler := handlers.NewSettingsHandler(deps.DB)
	backgroundsHandler := handlers.NewBackgroundsHandler(deps.DB, deps.Uploader)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/availability/dates", availabilityHandler.Dates)
		api.GET("/availability/slots", availabilityHandler.Slots)
		api.GET("/availability/rules", availabilityHandler.ListRules)

		api.GET("/treatments", treatmentHandler.ListPublic)
		api.GET("/backgrounds/active", backgroundsHandler.Active)

		api.POST("/appointments", appointmentHandler.Create)

		api.POST("/auth/setup", authHandler.Setup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.POST("/availability/rules", availabilityHandler.CreateRule)
			admin.DELETE("/availability/rules/:id", availabilityHandler.DeleteRule)

			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/upcoming", appointmentHandler.Upcoming)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			admin.GET("/admin/treatments", treatmentHandler.ListAdmin)
			admin.POST("/treatments", treatmentHandler.Create)
			admin.GET("/treatments/:id", treatmentHandler.Get)
			admin.PATCH("/treatments/:id", treatmentHandler.Update)
			admin.DELETE("/treatments/:id", treatmentHandler.Delete)

			admin.GET("/settings", settingsHandler.List)
			admin.GET("/settings/:key", settingsHandler.Get)
			admin.PUT("/settings/:key", settingsHandler.Put)

			admin.GET("/backgrounds", backgroundsHandler.List)
			admin.POST("/backgrounds", backgroundsHandler.Upload)
			admin.PATCH("/backgrounds/:id/activate", backgroundsHandler.Activate)
			admin.DELETE("/backgrounds/:id", backgroundsHandler.Delete)
		}
	}
}
