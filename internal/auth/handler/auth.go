package handler

import (
	"net/http"
	"strings"

	"countdown-server/internal/apierrors"
	"countdown-server/internal/auth"
	"countdown-server/internal/auth/processor"
	"countdown-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey   = "User-ID"
	userRoleKey = "User-Role"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=creator receiver"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// HandleSignup handles POST /api/auth/signup
func (h *Handler) HandleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.authProcessor.Signup(ctx, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HandleLogin handles POST /api/auth/login
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleGetMe handles GET /api/auth/me
func (h *Handler) HandleGetMe(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	user, err := h.authProcessor.GetUser(ctx, caller.UserID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// HandleJWTMiddleware validates the bearer token and stores the caller on the
// request context.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")
	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		c.Abort()
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		h.logger.WarnWithError(ctx, "token subject is not a uuid", err)
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	ctx = auth.WithCaller(ctx, auth.Caller{UserID: userID, Role: claims.Role})
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "user_role", Value: claims.Role},
	)
	c.Request = c.Request.WithContext(ctx)
	c.Set(userIDKey, userID.String())
	c.Set(userRoleKey, claims.Role)
	c.Next()
}

// RequireRole rejects callers whose role is not role. It must run after
// HandleJWTMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := auth.FromContext(c.Request.Context())
		if !ok {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
			c.Abort()
			return
		}
		if caller.Role != role {
			apierrors.RespondWithError(c, apierrors.Forbidden("This action requires the "+role+" role"))
			c.Abort()
			return
		}
		c.Next()
	}
}
