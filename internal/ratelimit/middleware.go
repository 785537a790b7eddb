package ratelimit

import (
	"countdown-server/internal/apierrors"
	"countdown-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware throttles requests per client IP under the given scope, for
// unauthenticated endpoints such as login. A limiter failure lets the request
// through.
func (l *Limiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		allowed, err := l.Allow(ctx, scope+":"+observability.GetRealClientIP(c))
		if err != nil {
			l.logger.WarnWithError(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", "60")
			apierrors.RespondWithError(c, apierrors.TooManyRequests(apierrors.CodeTooManyRequests, "Too many requests. Please try again later."))
			c.Abort()
			return
		}
		c.Next()
	}
}
