package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bffgym/pos-be/controllers"
	"github.com/bffgym/pos-be/middleware"
	"github.com/bffgym/pos-be/services"
	"github.com/bffgym/pos-be/websocket"
)

// Deps carries the constructed core services into the router; controllers
// never reach for globals.
type Deps struct {
	Ledger      *services.Ledger
	Sessions    *services.SessionService
	Queue       *services.DurableQueue
	Pump        *services.DeliveryPump
	AuthService *services.AuthService
	Hub         *websocket.Hub
}

func SetupRoutes(deps Deps) *gin.Engine {
	r := gin.Default()

	// Initialize controllers
	authController := controllers.NewAuthController(deps.AuthService)
	memberController := controllers.NewMemberController(deps.Ledger)
	paymentController := controllers.NewPaymentController(deps.Ledger)
	checkinController := controllers.NewCheckinController(deps.Ledger, deps.Sessions)
	sessionController := controllers.NewSessionController(deps.Sessions)
	syncController := controllers.NewSyncController(deps.Queue, deps.Pump)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authController.Login)
	}

	// UI redraw notifications
	r.GET("/ws", websocket.HandleWebSocket(deps.Hub))

	// Staff routes
	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/members", memberController.GetMembers)
		protected.POST("/members", memberController.CreateMember)

		protected.GET("/sessions", sessionController.GetSessions)
		protected.GET("/sessions/selected", sessionController.GetSelected)
		protected.PUT("/sessions/selected", sessionController.SelectSession)

		protected.GET("/payments", paymentController.GetPayments)
		protected.POST("/payments", paymentController.ApplyPayment)

		protected.GET("/checkins", checkinController.GetCheckIns)
		protected.POST("/checkins", checkinController.CheckIn)

		protected.POST("/sync/flush", syncController.Flush)
		protected.GET("/sync/queue", syncController.GetQueue)
	}

	// Admin only routes
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminOnly())
	{
		admin.DELETE("/members/:id", memberController.DeleteMember)
		admin.DELETE("/transactions", paymentController.ClearTransactions)
	}

	return r
}
