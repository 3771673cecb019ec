package server

import (
	"estate-server/confs"
	"estate-server/db"
	"estate-server/handlers"
	httpHandler "estate-server/handlers/http"
	"estate-server/mailer"
	"estate-server/middleware"
	"estate-server/repositories"
	"estate-server/usecases"
	"estate-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	propertyRepo := repositories.NewPropertyPgRepository(s.db)
	interestRepo := repositories.NewInterestPgRepository(s.db)
	messageRepo := repositories.NewMessagePgRepository(s.db)
	meetingRepo := repositories.NewMeetingPgRepository(s.db)
	otpRepo := repositories.NewOTPPgRepository(s.db)

	// Outbound email collaborator
	mail := mailer.NewSMTPMailer(s.cfg.SMTP)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, otpRepo, mail, s.cfg.JWTSecret, s.cfg.OTPTTL)
	propertyUseCase := usecases.NewPropertyUseCase(propertyRepo, interestRepo, mail)
	messagingUseCase := usecases.NewMessagingUseCase(messageRepo, meetingRepo, userRepo, propertyRepo)

	// WebSocket manager for live message notifications
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, s.cfg.JWTSecret)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	propertyHandler := httpHandler.NewPropertyHandler(propertyUseCase)
	messageHandler := httpHandler.NewMessageHandler(messagingUseCase, manager)
	userHandler := httpHandler.NewUserHandler(authUseCase)

	authed := middleware.Auth(s.cfg.JWTSecret)

	// Auth routes
	auth := s.app.Group("/auth")
	{
		auth.POST("/send-signup-otp", authHandler.SendSignupOTP)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/set-password", authHandler.SetPassword)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// Property routes
	properties := s.app.Group("/properties")
	{
		properties.GET("", propertyHandler.ListProperties)
		properties.GET("/search", propertyHandler.SearchProperties)
		properties.POST("", authed, propertyHandler.CreateProperty)
		properties.GET("/pending", authed, propertyHandler.PendingProperties)
		properties.PUT("/approve/:id", authed, propertyHandler.ApproveProperty)
		properties.POST("/interest", authed, propertyHandler.ExpressInterest)
		properties.GET("/interests", authed, propertyHandler.ListInterests)
	}

	// Message and meeting routes
	messages := s.app.Group("/messages", authed)
	{
		messages.POST("", messageHandler.SendMessage)
		messages.GET("/conversation/:withUserId", messageHandler.Conversation)
		messages.POST("/meeting", messageHandler.ScheduleMeeting)
		messages.GET("/meetings", messageHandler.ListMeetings)
	}

	// User routes
	users := s.app.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/profile", authed, userHandler.Profile)
	}

	s.app.GET("/ws", wsHandler.HandleUserWS)

	if err := s.app.Run("0.0.0.0:" + s.cfg.Port); err != nil {
		panic(err)
	}
}
