package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"invoicing-backend/internal/auth"
	"invoicing-backend/internal/config"
	handler "invoicing-backend/internal/handlers"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/services/clients"
	"invoicing-backend/internal/services/invoicing"
	"invoicing-backend/internal/services/mailer"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	invoiceRepo := repository.NewInvoiceRepository(db, log)
	clientRepo := repository.NewClientRepository(db, log)
	profileRepo := repository.NewProfileRepository(db)
	userRepo := repository.NewUserRepository(db)

	invoiceService := invoicing.NewService(invoiceRepo, log)
	clientService := clients.NewService(clientRepo)
	authService := auth.NewService(userRepo, log)
	authService.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword)

	mail := &mailer.LogMailer{
		SenderEmail:    cfg.SenderEmail,
		SenderPassword: cfg.SenderPassword,
		Log:            log,
	}

	authHandler := handler.NewAuthHandler(authService, sessionStore, log)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, mail, log)
	clientHandler := handler.NewClientHandler(clientService, log)
	settingsHandler := handler.NewSettingsHandler(profileRepo, log)

	// Public routes
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)

	// Health check
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Everything below requires a session.
	guarded := r.Group("/", handler.RequireLogin(sessionStore))

	// Pages
	guarded.GET("/", invoiceHandler.Dashboard)
	guarded.GET("/create-invoice", invoiceHandler.CreateForm)
	guarded.GET("/invoice/:id", invoiceHandler.View)
	guarded.GET("/debug/invoice-full/:id", invoiceHandler.DebugView)
	guarded.GET("/clients", clientHandler.Page)
	guarded.GET("/settings", settingsHandler.Page)

	api := guarded.Group("/api")

	invoices := api.Group("/invoices")
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id/status", invoiceHandler.UpdateStatus)
		invoices.POST("/:id/send-email", invoiceHandler.SendEmail)
	}

	clientRoutes := api.Group("/clients")
	{
		clientRoutes.GET("", clientHandler.List)
		clientRoutes.POST("", clientHandler.Create)
		clientRoutes.GET("/search", clientHandler.Search)
		clientRoutes.GET("/:id", clientHandler.Get)
		clientRoutes.PUT("/:id", clientHandler.Update)
		clientRoutes.DELETE("/:id", clientHandler.Delete)
	}

	api.GET("/settings/profile", settingsHandler.GetProfile)
	api.POST("/settings/profile", settingsHandler.SaveProfile)
}
