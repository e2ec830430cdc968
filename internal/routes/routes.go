package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/uvcaspaces/booking-portal/internal/audit"
	"github.com/uvcaspaces/booking-portal/internal/auth"
	"github.com/uvcaspaces/booking-portal/internal/config"
	"github.com/uvcaspaces/booking-portal/internal/handlers"
	infraRepo "github.com/uvcaspaces/booking-portal/internal/infra/repository"
	"github.com/uvcaspaces/booking-portal/internal/media"
	"github.com/uvcaspaces/booking-portal/internal/middleware"
	"github.com/uvcaspaces/booking-portal/internal/notify"
	"github.com/uvcaspaces/booking-portal/internal/store"
	ucBooking "github.com/uvcaspaces/booking-portal/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	tokens := auth.NewTokenService(cfg.JWTSecret)
	denylist := auth.NewDenylist(rdb)

	users := store.NewUserStore(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var sender notify.Sender
	if m := notify.NewSMTPMailer(cfg); m != nil {
		sender = m
	}
	notifier := notify.NewDispatcher(sender)

	uploader := media.NewUploader(cfg)

	// ------------------------------
	// Use cases — bookings
	// ------------------------------
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	listMyBookingsUC := ucBooking.NewListMyBookings(bookingRepo)
	listAllBookingsUC := ucBooking.NewListAllBookings(bookingRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(users, tokens, denylist)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listMyBookingsUC,
		listAllBookingsUC,
	)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	contactHandler := handlers.NewContactHandler(store.NewInquiryStore(db), notifier, auditDispatcher)
	userHandler := handlers.NewUserHandler(users, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(users, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authRequired := middleware.AuthMiddleware(tokens, denylist)

	api := r.Group("/api")
	{
		// ------------------------------
		// Public
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.POST("/contact", contactHandler.Submit)

		// ------------------------------
		// Authenticated
		// ------------------------------
		secured := api.Group("/")
		secured.Use(authRequired)
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.PUT("/profile", middleware.Authorize("profile", "update"), profileHandler.Update)
			secured.POST("/profile/avatar", middleware.Authorize("profile", "update"), profileHandler.UploadAvatar)

			// Bookings: listing everything is privileged; single-booking
			// access is ownership-scoped inside the use cases.
			secured.GET("/bookings", middleware.Authorize("booking", "list_all"), bookingHandler.ListAll)
			secured.GET("/bookings/my", middleware.Authorize("booking", "list_mine"), bookingHandler.ListMine)
			secured.POST("/bookings", middleware.Authorize("booking", "create"), bookingHandler.Create)
			secured.GET("/bookings/:id", middleware.Authorize("booking", "get"), bookingHandler.Get)
			secured.PUT("/bookings/:id", middleware.Authorize("booking", "update"), bookingHandler.Update)
			secured.DELETE("/bookings/:id", middleware.Authorize("booking", "delete"), bookingHandler.Delete)

			// Admin-only service mutation
			secured.POST("/services", middleware.Authorize("service", "create"), serviceHandler.Create)
			secured.PUT("/services/:id", middleware.Authorize("service", "update"), serviceHandler.Update)
			secured.DELETE("/services/:id", middleware.Authorize("service", "delete"), serviceHandler.Delete)

			// Admin dashboard
			secured.GET("/contact", middleware.Authorize("contact", "list"), contactHandler.List)
			secured.PUT("/contact/:id/status", middleware.Authorize("contact", "update_status"), contactHandler.UpdateStatus)

			secured.GET("/users", middleware.Authorize("user", "list"), userHandler.List)
			secured.PUT("/users/admin/email", middleware.Authorize("user", "promote_admin"), userHandler.UpdateAdminEmail)

			secured.GET("/admin/audit-logs", middleware.Authorize("audit_log", "list"), auditLogsHandler.List)
		}
	}
}
