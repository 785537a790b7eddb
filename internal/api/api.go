package api

import (
	"context"
	"net/http"

	authHandler "countdown-server/internal/auth/handler"
	countdownHandler "countdown-server/internal/countdown/handler"
	"countdown-server/internal/ratelimit"
	receiverHandler "countdown-server/internal/receiver/handler"
	"countdown-server/internal/store"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	countdownHandler countdownHandler.Handler
	receiverHandler  receiverHandler.Handler
	authLimiter      *ratelimit.Limiter
	database         HealthChecker
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	countdownHandler countdownHandler.Handler,
	receiverHandler receiverHandler.Handler,
	authLimiter *ratelimit.Limiter,
	database HealthChecker,
) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		countdownHandler: countdownHandler,
		receiverHandler:  receiverHandler,
		authLimiter:      authLimiter,
		database:         database,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/signup", a.authLimiter.Middleware("auth"), a.authHandler.HandleSignup)
		authGroup.POST("/login", a.authLimiter.Middleware("auth"), a.authHandler.HandleLogin)
		authGroup.GET("/me", a.authHandler.HandleJWTMiddleware, a.authHandler.HandleGetMe)
	}

	// Invitation preview is public; everything else needs a bearer token.
	apiGroup.GET("/countdowns/invite/check/:token", a.countdownHandler.HandleCheckInvitation)

	countdowns := apiGroup.Group("/countdowns", a.authHandler.HandleJWTMiddleware)
	{
		countdowns.POST("/invite/accept/:token", a.countdownHandler.HandleAcceptInvitation)
		// Owners and assigned receivers both read a countdown; the processor decides the projection.
		countdowns.GET("/:id", a.countdownHandler.HandleGetCountdown)

		creator := countdowns.Group("", authHandler.RequireRole(store.RoleCreator))
		creator.POST("", a.countdownHandler.HandleCreateCountdown)
		creator.GET("", a.countdownHandler.HandleListCountdowns)
		creator.PUT("/:id", a.countdownHandler.HandleUpdateCountdown)
		creator.DELETE("/:id", a.countdownHandler.HandleDeleteCountdown)
		creator.PUT("/:id/days", a.countdownHandler.HandleSaveDayCards)
		creator.PUT("/:id/days/:day", a.countdownHandler.HandleSaveDayCard)
		creator.POST("/:id/generate-qr", a.countdownHandler.HandleGenerateQR)
		creator.POST("/:id/assign", a.countdownHandler.HandleAssign)
		creator.POST("/:id/invite", a.countdownHandler.HandleCreateInvitation)
		creator.GET("/:id/print-cards", a.countdownHandler.HandleListPrintCards)
		creator.GET("/:id/print-cards/:day", a.countdownHandler.HandleGetPrintCard)
		creator.PUT("/:id/print-cards/:day", a.countdownHandler.HandleSavePrintCard)
	}

	receiver := apiGroup.Group("/receiver", a.authHandler.HandleJWTMiddleware, authHandler.RequireRole(store.RoleReceiver))
	{
		receiver.GET("/countdowns", a.receiverHandler.HandleListCountdowns)
		receiver.GET("/countdowns/:assignmentId", a.receiverHandler.HandleGetCountdown)
		receiver.GET("/countdowns/:assignmentId/days/:day", a.receiverHandler.HandleGetDay)
		receiver.POST("/unlock-day", a.receiverHandler.HandleUnlockDay)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if a.database != nil {
			if err := a.database.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
