package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbapp/booking-api/internal/audit"
	"github.com/barbapp/booking-api/internal/config"
	"github.com/barbapp/booking-api/internal/handlers"
	"github.com/barbapp/booking-api/internal/httperr"
	infraRepo "github.com/barbapp/booking-api/internal/infra/repository"
	"github.com/barbapp/booking-api/internal/metrics"
	"github.com/barbapp/booking-api/internal/middleware"
	ucUser "github.com/barbapp/booking-api/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// INFRA
	// ------------------------------
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES — CREDENTIALS
	// ------------------------------
	createUserUC := ucUser.NewCreateUser(userRepo, auditDispatcher, cfg.BcryptCost)
	authenticateUserUC := ucUser.NewAuthenticateUser(userRepo, cfg.BcryptCost)
	updateUserUC := ucUser.NewUpdateUser(userRepo, cfg.BcryptCost)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	userHandler := handlers.NewUserHandler(
		db,
		cfg,
		auditDispatcher,
		createUserUC,
		authenticateUserUC,
		updateUserUC,
	)
	appointmentHandler := handlers.NewAppointmentHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------
	// ROUTES
	// ------------------------------
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Barbapp")
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	users := r.Group("/users")
	{
		users.POST("/login", userHandler.Login)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetOne)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	appointments := r.Group("/appointments")
	{
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.GetOne)
		appointments.POST("", appointmentHandler.Create)
		appointments.PUT("/:id", appointmentHandler.Update)
		appointments.PUT("/:id/complete", appointmentHandler.Complete)
		appointments.DELETE("/:id", appointmentHandler.Delete)
	}

	services := r.Group("/services")
	{
		services.GET("", serviceHandler.List)
		services.GET("/:id", serviceHandler.GetOne)
		services.POST("", serviceHandler.Create)
		services.PUT("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewHandler.List)
		reviews.GET("/barber/:barberId", reviewHandler.ListByBarber)
		reviews.GET("/:id", reviewHandler.GetOne)
		reviews.POST("", reviewHandler.Create)
		reviews.PUT("/:id", reviewHandler.Update)
		reviews.DELETE("/:id", reviewHandler.Delete)
	}

	schedules := r.Group("/barber_schedules")
	{
		schedules.GET("", scheduleHandler.List)
		schedules.GET("/:id", scheduleHandler.GetOne)
		schedules.POST("", scheduleHandler.Create)
		schedules.PUT("/:id", scheduleHandler.Update)
		schedules.DELETE("/:id", scheduleHandler.Delete)
	}

	r.GET("/audit_logs", middleware.AuthMiddleware(cfg), auditLogsHandler.List)

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "page not found")
	})
}
