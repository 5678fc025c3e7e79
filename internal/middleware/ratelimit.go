package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lingua/api/internal/logging"
	"github.com/lingua/api/internal/ratelimit"
)

// Checker decides whether a client may perform an action.
type Checker interface {
	Check(ctx context.Context, clientID, action string) (*ratelimit.CheckResult, error)
}

// RateLimit rejects requests once the client has used up the action's budget.
// Limiter failures let the request through.
func RateLimit(limiter Checker, action string, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.ClientIP()
		if p, ok := PrincipalFrom(c); ok {
			clientID = p.UserID
		}

		result, err := limiter.Check(c.Request.Context(), clientID, action)
		if err != nil {
			log.Warn(c.Request.Context(), "rate limiter unavailable", "action", action, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			recordRateLimited(action)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
