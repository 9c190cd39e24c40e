package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"college-assist/internal/ai"
	"college-assist/internal/app"
	"college-assist/internal/bootstrap"
	"college-assist/internal/cache"
	"college-assist/internal/platform/rabbitmq"
	"college-assist/internal/repository"
	"college-assist/internal/session"
	"college-assist/internal/snapshot"
	"college-assist/internal/transport/http/handler"
	"college-assist/internal/transport/http/middleware"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(a *bootstrap.App) *gin.Engine {
	cfg := a.Config
	gin.SetMode(cfg.App.GinMode)

	store := repository.NewStore(a.MySQL)

	var promptCache *cache.PromptCache
	if a.Redis != nil {
		promptCache = cache.NewPromptCache(a.Redis, time.Duration(cfg.Redis.PromptTTLSeconds)*time.Second)
	}
	syncer := snapshot.NewSyncer(store, cfg.Snapshot.Path, promptCache)

	llm := ai.NewClient(ai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		TopP:        cfg.LLM.TopP,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	sessions := session.NewStore(
		time.Duration(cfg.Chat.SessionTTLMinute)*time.Minute,
		cfg.Chat.MaxHistoryMessage,
	)

	var publisher app.TicketEventPublisher
	if a.MQConn != nil {
		publisher = rabbitmq.NewTicketPublisher(a.MQConn, cfg.RabbitMQ.TicketEventQueue)
	}

	authService := app.NewAuthService(
		store.Admins,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.JWTExpireMinute)*time.Minute,
	)
	contentService := app.NewContentService(store, syncer)
	chatService := app.NewChatService(store, promptCache, llm, sessions)
	ticketService := app.NewTicketService(
		store.Tickets,
		publisher,
		cfg.Uploads.Dir,
		cfg.Uploads.PDFExcerptLength,
	)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(contentService, ticketService)
	chatbotHandler := handler.NewChatbotHandler(chatService, contentService, ticketService)
	healthHandler := handler.NewHealthHandler(
		cfg.App.Name, cfg.App.Env, a.StartedAt,
		a.MySQL, a.Redis, a.MQConn,
	)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", healthHandler.Check)

	chatbot := api.Group("/chatbot")
	{
		chatbot.POST("/message", chatbotHandler.Message)
		chatbot.POST("/help-ticket", chatbotHandler.CreateHelpTicket)
		chatbot.GET("/admission-documents", chatbotHandler.AdmissionDocuments)
		chatbot.GET("/fees", chatbotHandler.Fees)
		chatbot.GET("/scholarships", chatbotHandler.Scholarships)
	}

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AuthJWT(cfg.Auth.JWTSecret))
	{
		protected.GET("/me", authHandler.Me)

		protected.GET("/fees", adminHandler.ListFees)
		protected.POST("/fees", adminHandler.CreateFee)
		protected.PUT("/fees/:id", adminHandler.UpdateFee)
		protected.DELETE("/fees/:id", adminHandler.DeleteFee)

		protected.GET("/documents", adminHandler.ListDocuments)
		protected.POST("/documents", adminHandler.CreateDocument)
		protected.PUT("/documents/:id", adminHandler.UpdateDocument)
		protected.DELETE("/documents/:id", adminHandler.DeleteDocument)

		protected.GET("/library/books", adminHandler.ListLibraryBooks)
		protected.POST("/library/books", adminHandler.CreateLibraryBook)
		protected.PUT("/library/books/:id", adminHandler.UpdateLibraryBook)
		protected.DELETE("/library/books/:id", adminHandler.DeleteLibraryBook)
		protected.GET("/library/timings", adminHandler.GetLibraryTimings)
		protected.PUT("/library/timings", adminHandler.UpdateLibraryTimings)

		protected.GET("/hostel/facilities", adminHandler.ListHostelFacilities)
		protected.POST("/hostel/facilities", adminHandler.CreateHostelFacility)
		protected.PUT("/hostel/facilities/:id", adminHandler.UpdateHostelFacility)
		protected.DELETE("/hostel/facilities/:id", adminHandler.DeleteHostelFacility)
		protected.GET("/hostel/fees", adminHandler.GetHostelFees)
		protected.PUT("/hostel/fees", adminHandler.UpdateHostelFees)

		protected.GET("/scholarships", adminHandler.ListScholarships)
		protected.POST("/scholarships", adminHandler.CreateScholarship)
		protected.PUT("/scholarships/:id", adminHandler.UpdateScholarship)
		protected.DELETE("/scholarships/:id", adminHandler.DeleteScholarship)

		protected.GET("/faculty", adminHandler.ListFaculty)
		protected.POST("/faculty", adminHandler.CreateFaculty)
		protected.PUT("/faculty/:id", adminHandler.UpdateFaculty)
		protected.DELETE("/faculty/:id", adminHandler.DeleteFaculty)
		protected.GET("/principal", adminHandler.GetPrincipal)
		protected.PUT("/principal", adminHandler.UpdatePrincipal)

		protected.GET("/events", adminHandler.ListEvents)
		protected.POST("/events", adminHandler.CreateEvent)
		protected.PUT("/events/:id", adminHandler.UpdateEvent)
		protected.DELETE("/events/:id", adminHandler.DeleteEvent)

		protected.GET("/timings", adminHandler.GetCollegeTimings)
		protected.PUT("/timings", adminHandler.UpdateCollegeTimings)

		protected.GET("/student-fees", adminHandler.ListPayments)
		protected.POST("/student-fees", adminHandler.CreatePayment)
		protected.PUT("/student-fees/:id", adminHandler.UpdatePayment)
		protected.DELETE("/student-fees/:id", adminHandler.DeletePayment)
		protected.GET("/student-fees/search", adminHandler.SearchPayment)

		protected.GET("/tickets", adminHandler.ListTickets)
		protected.PUT("/tickets/:id/status", adminHandler.UpdateTicketStatus)
		protected.GET("/tickets/:id/pdf", adminHandler.DownloadTicketPDF)
	}

	return r
}
